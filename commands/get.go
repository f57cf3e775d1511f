package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/uhppoted/sheets-dashboard/tracker"
)

var GetCmd = Get{
	command: defaultCommand(),
	file:    time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the tracker worksheet from Google Sheets and stores it to a local TSV file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --name <spreadsheet> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --name <spreadsheet> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets worksheet to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s --debug get --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`                   --name "Personal Finance Tracker" \`)
	fmt.Println(`                   --file "tracker.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
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

	if err := write(cmd.file, func(w io.Writer) error { return tracker.MakeTSV(w, table) }); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	infof("Retrieved worksheet to file %s", cmd.file)

	return nil
}
