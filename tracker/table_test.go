package tracker

import (
	"reflect"
	"testing"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/sheets-dashboard/growth"
)

func TestMakeTable(t *testing.T) {
	expected := Table{
		Header: []string{"Timestamp", "Savings", "Investments", "Total"},
		Rows: [][]string{
			{"01/03/2024 09:30:00", "$1,000.00", "$500.00", "$1,500.00"},
			{"11/03/2024 09:30:00", "$1,200.00", "$1,050.00", "$2,250.00"},
		},
		timestamp: 0,
		total:     3,
		layout:    LAYOUT,
	}

	data := sheets.ValueRange{
		Values: [][]any{
			{"Timestamp", "Savings", "Investments", "Total"},
			{"01/03/2024 09:30:00", "$1,000.00", "$500.00", "$1,500.00"},
			{"11/03/2024 09:30:00", "$1,200.00", "$1,050.00", "$2,250.00"},
		},
	}

	table, err := MakeTable(&data, DefaultColumns())
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	if table == nil {
		t.Fatalf("MakeTable returned %v", table)
	}

	if !reflect.DeepEqual(*table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *table)
	}
}

func TestMakeTableWithShortRows(t *testing.T) {
	expected := [][]string{
		{"01/03/2024 09:30:00", "1000", ""},
		{"02/03/2024 09:30:00", "", ""},
	}

	data := sheets.ValueRange{
		Values: [][]any{
			{"Timestamp", "Total", "Notes"},
			{"01/03/2024 09:30:00", 1000},
			{"02/03/2024 09:30:00"},
			{},
		},
	}

	table, err := MakeTable(&data, DefaultColumns())
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	if !reflect.DeepEqual(table.Rows, expected) {
		t.Errorf("Incorrect rows\n   expected: %v\n   got:      %v\n", expected, table.Rows)
	}
}

func TestMakeTableWithEmptySheet(t *testing.T) {
	_, err := MakeTable(&sheets.ValueRange{}, DefaultColumns())
	if err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestMakeTableWithoutHeaders(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{},
		},
	}

	_, err := MakeTable(&data, DefaultColumns())
	if err == nil {
		t.Fatalf("Expected error return for missing headers, got %v", err)
	}
}

func TestMakeTableWithMissingTotal(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Timestamp", "Savings"},
		},
	}

	_, err := MakeTable(&data, DefaultColumns())
	if err == nil {
		t.Fatalf("Expected error return for missing 'Total' column, got %v", err)
	}
}

func TestMakeTableWithDuplicatedColumn(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Timestamp", "Total", "total"},
		},
	}

	_, err := MakeTable(&data, DefaultColumns())
	if err == nil {
		t.Fatalf("Expected error return for duplicated column, got %v", err)
	}
}

func TestMakeTableWithCustomColumns(t *testing.T) {
	columns := Columns{
		Timestamp: "Date",
		Total:     "Net Worth",
		Layout:    "2006-01-02",
	}

	data := sheets.ValueRange{
		Values: [][]any{
			{"Net Worth", "Date"},
			{"100", "2024-01-01"},
			{"150", "2024-01-11"},
		},
	}

	table, err := MakeTable(&data, columns)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	expected := []growth.Record{
		{Timestamp: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), Total: 100, Valid: true},
		{Timestamp: time.Date(2024, time.January, 11, 0, 0, 0, 0, time.Local), Total: 150, Valid: true},
	}

	if series := table.Series(); !reflect.DeepEqual(series, expected) {
		t.Errorf("Incorrect series\n   expected: %v\n   got:      %v\n", expected, series)
	}
}

func TestSeries(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Timestamp", "Total"},
			{"01/03/2024 09:30:00", "$1,500.00"},
			{"not a date", "0"},
			{"03/03/2024 10:00:00", "n/a"},
			{"", "-250.5"},
		},
	}

	expected := []growth.Record{
		{Timestamp: time.Date(2024, time.March, 1, 9, 30, 0, 0, time.Local), Total: 1500, Valid: true},
		{Total: 0, Valid: true},
		{Timestamp: time.Date(2024, time.March, 3, 10, 0, 0, 0, time.Local)},
		{Total: -250.5, Valid: true},
	}

	table, err := MakeTable(&data, DefaultColumns())
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	if series := table.Series(); !reflect.DeepEqual(series, expected) {
		t.Errorf("Incorrect series\n   expected: %v\n   got:      %v\n", expected, series)
	}
}

func TestSeriesWithoutTimestampColumn(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Total"},
			{"100"},
			{"200"},
		},
	}

	table, err := MakeTable(&data, DefaultColumns())
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	for i, r := range table.Series() {
		if !r.Timestamp.IsZero() {
			t.Errorf("Expected zero timestamp for row %v, got %v", i, r.Timestamp)
		}
	}
}

func TestTotals(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Total"},
			{"100"},
			{"?"},
			{"0"},
			{"300"},
		},
	}

	table, err := MakeTable(&data, DefaultColumns())
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	rows, values := table.Totals()

	if !reflect.DeepEqual(rows, []int{0, 2, 3}) {
		t.Errorf("Incorrect rows - expected:%v, got:%v", []int{0, 2, 3}, rows)
	}

	if !reflect.DeepEqual(values, []float64{100, 0, 300}) {
		t.Errorf("Incorrect values - expected:%v, got:%v", []float64{100, 0, 300}, values)
	}
}

func TestParseAmount(t *testing.T) {
	tests := map[string]float64{
		"$1,234.56":   1234.56,
		"1234":        1234,
		" -12.5 ":     -12.5,
		"R 10,000":    10000,
		"(1,234.56)":  -1234.56,
		" ($250.00) ": -250,
	}

	for v, expected := range tests {
		if amount, err := ParseAmount(v); err != nil {
			t.Errorf("Unexpected error parsing '%v' (%v)", v, err)
		} else if amount != expected {
			t.Errorf("Incorrect amount for '%v' - expected:%v, got:%v", v, expected, amount)
		}
	}

	for _, v := range []string{"", "n/a", "--", "()", "(-5)"} {
		if _, err := ParseAmount(v); err == nil {
			t.Errorf("Expected error parsing '%v'", v)
		}
	}
}
