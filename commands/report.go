package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/uhppoted/sheets-dashboard/dashboard"
)

var ReportCmd = Report{
	command: defaultCommand(),
	file:    time.Now().Format("dashboard-2006-01-02T150405.html"),
}

type Report struct {
	command
	file string
}

func (cmd *Report) Name() string {
	return "report"
}

func (cmd *Report) Description() string {
	return "Renders the dashboard to a standalone HTML file"
}

func (cmd *Report) Usage() string {
	return "--credentials <file> --name <spreadsheet> --file <file>"
}

func (cmd *Report) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] report [options] --name <spreadsheet> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Fetches the tracker worksheet and renders the growth summary, data table and chart")
	fmt.Println("  to an HTML file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s report --name "Personal Finance Tracker" --file "dashboard.html"`+"\n", APP)
	fmt.Println()
}

func (cmd *Report) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("report")

	flagset.StringVar(&cmd.file, "file", cmd.file, "HTML file name. Defaults to 'dashboard-<yyyy-mm-ddTHHmmss>.html'")

	return flagset
}

func (cmd *Report) Execute(args ...any) error {
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

	page, _, err := dashboard.NewPage(table, settings.page())
	if err != nil {
		return err
	}

	if page.Warning != "" {
		warnf("%v", page.Warning)
	}

	if err := write(cmd.file, func(w io.Writer) error { return dashboard.Render(w, page) }); err != nil {
		return fmt.Errorf("error creating HTML file (%v)", err)
	}

	infof("Rendered dashboard to file %s", cmd.file)

	return nil
}
