// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package dashboard renders the growth summary panels, raw data table and Total line chart
for a tracker worksheet as a single self-contained HTML page.
*/
package dashboard
