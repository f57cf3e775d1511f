// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package growth calculates the percentage growth of a running total between the first and
latest non-zero entries of a series, along with the average daily and yearly growth rates
when both entries carry a timestamp.
*/
package growth
