package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/uhppoted/sheets-dashboard/dashboard"
	"github.com/uhppoted/sheets-dashboard/growth"
	"github.com/uhppoted/sheets-dashboard/tracker"
)

const (
	DATA_SHEET   = "Data"
	GROWTH_SHEET = "Growth"
)

var ExportCmd = Export{
	command: defaultCommand(),
	file:    time.Now().Format("dashboard-2006-01-02T150405.xlsx"),
}

type Export struct {
	command
	file string
}

func (cmd *Export) Name() string {
	return "export"
}

func (cmd *Export) Description() string {
	return "Exports the tracker worksheet and growth summary to an Excel workbook"
}

func (cmd *Export) Usage() string {
	return "--credentials <file> --name <spreadsheet> --file <file>"
}

func (cmd *Export) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] export [options] --name <spreadsheet> --file <file>\n", APP)
	fmt.Println()
	fmt.Printf("  Writes the tracker rows to the '%s' sheet and the growth summary to the '%s' sheet of an XLSX workbook\n", DATA_SHEET, GROWTH_SHEET)
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s export --name "Personal Finance Tracker" --file "tracker.xlsx"`+"\n", APP)
	fmt.Println()
}

func (cmd *Export) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("export")

	flagset.StringVar(&cmd.file, "file", cmd.file, "XLSX file name. Defaults to 'dashboard-<yyyy-mm-ddTHHmmss>.xlsx'")

	return flagset
}

func (cmd *Export) Execute(args ...any) error {
	ctx, options := parse(args...)

	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	settings, err := cmd.settings()
	if err != nil {
		return err
	}

	table, err := cmd.load(ctx, settings)
	if err != nil {
		return err
	}

	workbook, err := makeWorkbook(table)
	if err != nil {
		return fmt.Errorf("error creating workbook (%v)", err)
	}

	defer workbook.Close()

	if err := write(cmd.file, func(w io.Writer) error { _, err := workbook.WriteTo(w); return err }); err != nil {
		return fmt.Errorf("error creating XLSX file (%v)", err)
	}

	infof("Exported worksheet to file %s", cmd.file)

	return nil
}

func makeWorkbook(table *tracker.Table) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", DATA_SHEET); err != nil {
		return nil, err
	}

	// ... data
	for i, h := range table.Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(DATA_SHEET, cell, h); err != nil {
			return nil, err
		}
	}

	series := table.Series()
	total := column(table)
	for r, row := range table.Rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(DATA_SHEET, cell, v); err != nil {
				return nil, err
			}
		}

		if total > 0 && series[r].Valid {
			cell, _ := excelize.CoordinatesToCellName(total, r+2)
			if err := f.SetCellFloat(DATA_SHEET, cell, series[r].Total, -1, 64); err != nil {
				return nil, err
			}
		}
	}

	// ... growth summary
	if _, err := f.NewSheet(GROWTH_SHEET); err != nil {
		return nil, err
	}

	summary := [][]any{}
	result, err := growth.Compute(series)
	switch {
	case errors.Is(err, growth.ErrInsufficientData):
		summary = append(summary, []any{"Warning", dashboard.WARNING})

	case err != nil:
		return nil, err

	default:
		summary = append(summary,
			[]any{"First", result.First},
			[]any{"Latest", result.Latest},
			[]any{"Change (%)", result.PercentChange},
			[]any{"Direction", result.Direction().String()},
			[]any{"Data points", result.Points})

		if result.Dated {
			summary = append(summary,
				[]any{"From", result.FirstTimestamp.Format("2006-01-02 15:04:05")},
				[]any{"To", result.LatestTimestamp.Format("2006-01-02 15:04:05")},
				[]any{"Days", result.DaysElapsed},
				[]any{"Average daily growth (%)", result.AvgDailyGrowth},
				[]any{"Average yearly growth (%)", result.AvgYearlyGrowth})
		}
	}

	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(GROWTH_SHEET, cell, &row); err != nil {
			return nil, err
		}
	}

	f.SetColWidth(GROWTH_SHEET, "A", "A", 28)

	return f, nil
}

// column returns the 1-based spreadsheet column of the Total field, or 0 if missing.
func column(table *tracker.Table) int {
	if ix := table.TotalColumn(); ix >= 0 {
		return ix + 1
	}

	return 0
}
