package tracker

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/sheets-dashboard/growth"
)

// Default worksheet column names and timestamp layout (DD/MM/YYYY HH:MM:SS).
const (
	TIMESTAMP = "Timestamp"
	TOTAL     = "Total"
	LAYOUT    = "02/01/2006 15:04:05"
)

type Columns struct {
	Timestamp string
	Total     string
	Layout    string
}

type Table struct {
	Header []string
	Rows   [][]string

	timestamp int
	total     int
	layout    string
}

func DefaultColumns() Columns {
	return Columns{
		Timestamp: TIMESTAMP,
		Total:     TOTAL,
		Layout:    LAYOUT,
	}
}

func MakeTable(data *sheets.ValueRange, columns Columns) (*Table, error) {
	if data == nil || len(data.Values) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	// .. build index
	index := map[string]int{}
	header := []string{}
	for i, v := range data.Values[0] {
		h := clean(v)
		k := normalise(h)
		if k == "" {
			continue
		}

		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("duplicate column name '%s'", h)
		}

		index[k] = i
		header = append(header, h)
	}

	if len(header) == 0 {
		return nil, fmt.Errorf("missing/invalid header row")
	}

	total, ok := index[normalise(columns.Total)]
	if !ok {
		return nil, fmt.Errorf("missing '%s' column", columns.Total)
	}

	timestamp, ok := index[normalise(columns.Timestamp)]
	if !ok {
		timestamp = -1
	}

	// ... records
	columnOf := make([]int, len(header))
	for i, h := range header {
		columnOf[i] = index[normalise(h)]
	}

	rows := [][]string{}
	for _, row := range data.Values[1:] {
		record := make([]string, len(header))
		empty := true
		for i, ix := range columnOf {
			if ix < len(row) {
				record[i] = clean(row[ix])
			}

			if record[i] != "" {
				empty = false
			}
		}

		if !empty {
			rows = append(rows, record)
		}
	}

	layout := columns.Layout
	if layout == "" {
		layout = LAYOUT
	}

	table := Table{
		Header:    header,
		Rows:      rows,
		timestamp: -1,
		total:     -1,
		layout:    layout,
	}

	for i, ix := range columnOf {
		if ix == total {
			table.total = i
		}

		if ix == timestamp {
			table.timestamp = i
		}
	}

	return &table, nil
}

// Series returns the rows as (timestamp, total) records in row order. Unparseable
// timestamps are left as the zero time and missing or malformed totals are marked
// invalid.
func (t *Table) Series() []growth.Record {
	records := make([]growth.Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := growth.Record{}

		if t.timestamp >= 0 {
			if dt, err := time.ParseInLocation(t.layout, row[t.timestamp], time.Local); err == nil {
				record.Timestamp = dt
			}
		}

		if t.total >= 0 {
			if v, err := ParseAmount(row[t.total]); err == nil {
				record.Total = v
				record.Valid = true
			}
		}

		records = append(records, record)
	}

	return records
}

// Totals returns the parseable Total values with their row numbers (0-based).
func (t *Table) Totals() ([]int, []float64) {
	rows := []int{}
	values := []float64{}
	for i, r := range t.Series() {
		if r.Valid {
			rows = append(rows, i)
			values = append(values, r.Total)
		}
	}

	return rows, values
}

// ParseAmount parses a formatted currency amount e.g. '$1,234.56', '-12.5' or the
// accounting style '(1,234.56)' for negative amounts.
func ParseAmount(v string) (float64, error) {
	amount := strings.TrimSpace(v)
	negative := false
	if len(amount) > 2 && strings.HasPrefix(amount, "(") && strings.HasSuffix(amount, ")") {
		negative = true
		amount = amount[1 : len(amount)-1]
	}

	s := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-', r == '+', r == 'e', r == 'E':
			return r
		default:
			return -1
		}
	}, amount)

	if s == "" {
		return 0, fmt.Errorf("invalid amount '%v'", v)
	}

	if negative {
		if strings.ContainsAny(s, "+-") {
			return 0, fmt.Errorf("invalid amount '%v'", v)
		}

		s = "-" + s
	}

	return strconv.ParseFloat(s, 64)
}

func clean(v any) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}

	return strings.TrimSpace(fmt.Sprintf("%v", v))
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}

// TotalColumn returns the 0-based index of the Total field in the header, or -1.
func (t *Table) TotalColumn() int {
	return t.total
}
