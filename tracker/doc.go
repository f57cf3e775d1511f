// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package tracker converts the rows of a Google Sheets worksheet into a table of field-named
records and extracts the (timestamp, total) series used for the growth calculation.
*/
package tracker
