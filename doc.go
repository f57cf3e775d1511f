// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheets-dashboard renders a growth dashboard for a running total (e.g. a personal
finance tracker) kept in a Google Sheets worksheet.

sheets-dashboard fetches the worksheet with a service account, calculates the percentage
growth between the first and latest non-zero 'Total' entries (along with the average daily
and yearly growth rates) and renders the result, the raw data and a line chart of the
'Total' column.

sheets-dashboard supports the following commands:

  - growth, to print the growth summary for a worksheet
  - dashboard, to serve the dashboard over HTTP
  - report, to render the dashboard to a standalone HTML file
  - get, to download the worksheet as a TSV file
  - export, to export the worksheet and growth summary to an XLSX workbook
*/
package sheets
