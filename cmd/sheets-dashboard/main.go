package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	lib "github.com/uhppoted/uhppoted-lib/command"

	"github.com/uhppoted/sheets-dashboard/commands"
)

var cli = []lib.CommandV{
	&commands.VersionCmd,
	&commands.GrowthCmd,
	&commands.DashboardCmd,
	&commands.ReportCmd,
	&commands.GetCmd,
	&commands.ExportCmd,
}

var options = commands.Options{
	Debug: false,
}

var help = lib.NewHelpV("sheets-dashboard", cli, nil)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	commands.SetDebug(options.Debug)

	if err := commands.LoadEnv(".env"); err != nil {
		log.Printf("WARN  %v", err)
	}

	cmd, err := lib.ParseV(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if cmd == nil {
		help.Execute(ctx)
		os.Exit(1)
	}

	if err = cmd.Execute(ctx, &options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
