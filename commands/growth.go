package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/uhppoted/sheets-dashboard/dashboard"
	"github.com/uhppoted/sheets-dashboard/growth"
	"github.com/uhppoted/sheets-dashboard/tracker"
)

var GrowthCmd = Growth{
	command: defaultCommand(),
}

type Growth struct {
	command
}

func (cmd *Growth) Name() string {
	return "growth"
}

func (cmd *Growth) Description() string {
	return "Calculates the growth in the tracker 'Total' between the first and latest non-zero entries"
}

func (cmd *Growth) Usage() string {
	return "--credentials <file> --name <spreadsheet>"
}

func (cmd *Growth) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] growth [options] --name <spreadsheet>\n", APP)
	fmt.Println()
	fmt.Println("  Fetches the tracker worksheet and prints the total growth along with the average daily")
	fmt.Println("  and yearly growth rates")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s growth --credentials "credentials.json" --name "Personal Finance Tracker"`+"\n", APP)
	fmt.Println()
}

func (cmd *Growth) FlagSet() *flag.FlagSet {
	return cmd.flagset("growth")
}

func (cmd *Growth) Execute(args ...any) error {
	ctx, options := parse(args...)

	cmd.debug = options.Debug

	settings, err := cmd.settings()
	if err != nil {
		return err
	}

	table, err := cmd.load(ctx, settings)
	if err != nil {
		return err
	}

	return summarise(os.Stdout, table, settings.Currency)
}

func summarise(w io.Writer, table *tracker.Table, currency string) error {
	result, err := growth.Compute(table.Series())
	if errors.Is(err, growth.ErrInsufficientData) {
		warnf("%v", dashboard.WARNING)
		return nil
	} else if err != nil {
		return err
	}

	return dashboard.NewPanel(*result, currency).Summary(w)
}
