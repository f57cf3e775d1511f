package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/uhppoted/sheets-dashboard/tracker"
)

const APP = "sheets-dashboard"

type Options struct {
	Debug bool
}

// command holds the options common to all the commands that fetch a worksheet.
type command struct {
	workdir     string
	config      string
	credentials string
	name        string
	url         string
	worksheet   string
	debug       bool
}

func defaultCommand() command {
	return command{
		workdir: DEFAULT_WORKDIR,
		config:  DEFAULT_CONFIG,
	}
}

// newClient is replaced in tests.
var newClient = func(ctx context.Context, provider CredentialProvider, workdir string) (SpreadsheetClient, error) {
	return NewGoogle(ctx, provider, workdir)
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&c.config, "config", c.config, "Dashboard configuration file")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, fmt.Sprintf("Path for the 'credentials.json' file (or %v for the credentials JSON)", ENV_CREDENTIALS))
	flagset.StringVar(&c.name, "name", c.name, "Spreadsheet name e.g. 'Personal Finance Tracker'")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL")
	flagset.StringVar(&c.worksheet, "worksheet", c.worksheet, "Worksheet name. Defaults to the first worksheet")

	return flagset
}

// settings resolves the configuration file, environment and command line into the
// effective dashboard settings.
func (c *command) settings() (*Settings, error) {
	settings, err := loadSettings(c.config)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(c.credentials); v != "" {
		settings.Credentials = v
	}

	if v := strings.TrimSpace(c.url); v != "" {
		settings.Spreadsheet.URL = v
	} else if v := strings.TrimSpace(c.name); v != "" {
		settings.Spreadsheet.Name = v
		settings.Spreadsheet.URL = ""
	}

	if v := strings.TrimSpace(c.worksheet); v != "" {
		settings.Spreadsheet.Worksheet = v
	}

	if strings.TrimSpace(settings.Credentials) == "" {
		return nil, fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(settings.Columns.Total) == "" {
		return nil, fmt.Errorf("missing 'total' column name")
	}

	if _, err := settings.sheet(); err != nil {
		return nil, err
	}

	return settings, nil
}

// load fetches the worksheet and converts it to a tracker table.
func (c *command) load(ctx context.Context, settings *Settings) (*tracker.Table, error) {
	sheet, err := settings.sheet()
	if err != nil {
		return nil, err
	}

	client, err := newClient(ctx, settings.provider(), c.workdir)
	if err != nil {
		return nil, err
	}

	response, err := client.Fetch(ctx, sheet)
	if err != nil {
		return nil, err
	}

	table, err := tracker.MakeTable(response, settings.columns())
	if err != nil {
		return nil, fmt.Errorf("invalid worksheet (%v)", err)
	}

	debugf("retrieved %v rows", len(table.Rows))

	return table, nil
}

// write writes the file via a temporary file in the same directory and renames it
// once complete.
func write(file string, f func(w io.Writer) error) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".dashboard-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := f(tmp); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}

// parse extracts the context and global options from the arguments passed to Execute.
func parse(args ...any) (context.Context, *Options) {
	ctx := context.Background()
	options := &Options{}

	for _, arg := range args {
		switch v := arg.(type) {
		case context.Context:
			ctx = v
		case *Options:
			options = v
		}
	}

	return ctx, options
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Global options:")
	flag.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})
}
