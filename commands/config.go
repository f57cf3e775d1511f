package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/uhppoted/sheets-dashboard/dashboard"
	"github.com/uhppoted/sheets-dashboard/tracker"
)

const (
	ENV_CREDENTIALS = "DASHBOARD_CREDENTIALS"
	ENV_SPREADSHEET = "DASHBOARD_SPREADSHEET"
	ENV_WORKSHEET   = "DASHBOARD_WORKSHEET"
	ENV_BIND        = "DASHBOARD_BIND"
)

// Settings holds the dashboard configuration. Values are taken from the (optional) YAML
// configuration file, then overridden by the environment and finally by the command
// line.
type Settings struct {
	Title       string `yaml:"title"`
	Credentials string `yaml:"credentials"`
	Currency    string `yaml:"currency"`
	Bind        string `yaml:"bind"`

	Spreadsheet struct {
		Name      string `yaml:"name"`
		URL       string `yaml:"url"`
		Worksheet string `yaml:"worksheet"`
	} `yaml:"spreadsheet"`

	Columns struct {
		Timestamp string `yaml:"timestamp"`
		Total     string `yaml:"total"`
		Layout    string `yaml:"layout"`
	} `yaml:"columns"`
}

func DefaultSettings() Settings {
	settings := Settings{
		Title:       "Google Sheets Dashboard",
		Credentials: DEFAULT_CREDENTIALS,
		Currency:    "$",
		Bind:        "127.0.0.1:8080",
	}

	settings.Spreadsheet.Name = "Personal Finance Tracker"
	settings.Columns.Timestamp = tracker.TIMESTAMP
	settings.Columns.Total = tracker.TOTAL
	settings.Columns.Layout = tracker.LAYOUT

	return settings
}

// LoadEnv loads environment variables from the .env files (if any). Missing files are
// not an error.
func LoadEnv(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return fmt.Errorf("error loading %v (%v)", file, err)
		}
	}

	return nil
}

func loadSettings(file string) (*Settings, error) {
	settings := DefaultSettings()

	if file != "" {
		bytes, err := os.ReadFile(file)
		switch {
		case errors.Is(err, fs.ErrNotExist) && file == DEFAULT_CONFIG:
			debugf("no configuration file at %v", file)

		case err != nil:
			return nil, fmt.Errorf("unable to read configuration file %v (%v)", file, err)

		default:
			if err := yaml.Unmarshal(bytes, &settings); err != nil {
				return nil, fmt.Errorf("invalid configuration file %v (%v)", file, err)
			}
		}
	}

	if v := getEnv(ENV_CREDENTIALS, ""); v != "" {
		settings.Credentials = v
	}

	if v := getEnv(ENV_SPREADSHEET, ""); v != "" {
		if isURL(v) {
			settings.Spreadsheet.URL = v
			settings.Spreadsheet.Name = ""
		} else {
			settings.Spreadsheet.Name = v
			settings.Spreadsheet.URL = ""
		}
	}

	if v := getEnv(ENV_WORKSHEET, ""); v != "" {
		settings.Spreadsheet.Worksheet = v
	}

	if v := getEnv(ENV_BIND, ""); v != "" {
		settings.Bind = v
	}

	return &settings, nil
}

// provider returns the credentials provider for the settings. Credentials taken from the
// environment are read through the environment variable.
func (s Settings) provider() CredentialProvider {
	if v := getEnv(ENV_CREDENTIALS, ""); v != "" && v == s.Credentials {
		return EnvCredentials(ENV_CREDENTIALS)
	}

	return credentials(s.Credentials)
}

func (s Settings) columns() tracker.Columns {
	return tracker.Columns{
		Timestamp: s.Columns.Timestamp,
		Total:     s.Columns.Total,
		Layout:    s.Columns.Layout,
	}
}

// sheet identifies the worksheet to fetch. A spreadsheet URL takes precedence over the
// spreadsheet name.
func (s Settings) sheet() (Sheet, error) {
	sheet := Sheet{
		Worksheet: strings.TrimSpace(s.Spreadsheet.Worksheet),
	}

	if url := strings.TrimSpace(s.Spreadsheet.URL); url != "" {
		match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(url)
		if len(match) < 2 || match[1] == "" {
			return sheet, fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
		}

		sheet.ID = match[1]

		return sheet, nil
	}

	if name := strings.TrimSpace(s.Spreadsheet.Name); name != "" {
		sheet.Name = name

		return sheet, nil
	}

	return sheet, fmt.Errorf("--name or --url is a required option")
}

func isURL(v string) bool {
	return strings.HasPrefix(strings.TrimSpace(v), "https://")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func (s Settings) page() dashboard.Options {
	return dashboard.Options{
		Title:    s.Title,
		Currency: s.Currency,
		Total:    s.Columns.Total,
	}
}
