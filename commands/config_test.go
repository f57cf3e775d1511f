package commands

import (
	"os"
	"path/filepath"
	"testing"
)

const yamlConfig = `
title: My Net Worth
credentials: /etc/dashboard/credentials.json
currency: "R "
spreadsheet:
  name: Household
  worksheet: Monthly
columns:
  timestamp: Date
  total: Net Worth
  layout: "2006-01-02"
`

func clearEnv(t *testing.T) {
	for _, v := range []string{ENV_CREDENTIALS, ENV_SPREADSHEET, ENV_WORKSHEET, ENV_BIND} {
		t.Setenv(v, "")
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	clearEnv(t)

	settings, err := loadSettings("")
	if err != nil {
		t.Fatalf("Unexpected error loading default settings (%v)", err)
	}

	if *settings != DefaultSettings() {
		t.Errorf("Incorrect settings\n   expected: %+v\n   got:      %+v\n", DefaultSettings(), *settings)
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "dashboard.yaml")
	if err := os.WriteFile(file, []byte(yamlConfig), 0600); err != nil {
		t.Fatalf("Error writing configuration file (%v)", err)
	}

	settings, err := loadSettings(file)
	if err != nil {
		t.Fatalf("Unexpected error loading settings (%v)", err)
	}

	expected := DefaultSettings()
	expected.Title = "My Net Worth"
	expected.Credentials = "/etc/dashboard/credentials.json"
	expected.Currency = "R "
	expected.Spreadsheet.Name = "Household"
	expected.Spreadsheet.Worksheet = "Monthly"
	expected.Columns.Timestamp = "Date"
	expected.Columns.Total = "Net Worth"
	expected.Columns.Layout = "2006-01-02"

	if *settings != expected {
		t.Errorf("Incorrect settings\n   expected: %+v\n   got:      %+v\n", expected, *settings)
	}
}

func TestLoadSettingsWithMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := loadSettings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected error loading missing configuration file")
	}
}

func TestLoadSettingsWithInvalidFile(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "dashboard.yaml")
	if err := os.WriteFile(file, []byte("title: [unterminated"), 0600); err != nil {
		t.Fatalf("Error writing configuration file (%v)", err)
	}

	if _, err := loadSettings(file); err == nil {
		t.Errorf("Expected error loading invalid configuration file")
	}
}

func TestLoadSettingsFromEnv(t *testing.T) {
	clearEnv(t)

	t.Setenv(ENV_CREDENTIALS, `{"type":"service_account"}`)
	t.Setenv(ENV_SPREADSHEET, "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit")
	t.Setenv(ENV_WORKSHEET, "Sheet2")
	t.Setenv(ENV_BIND, "0.0.0.0:9000")

	settings, err := loadSettings("")
	if err != nil {
		t.Fatalf("Unexpected error loading settings (%v)", err)
	}

	if settings.Credentials != `{"type":"service_account"}` {
		t.Errorf("Incorrect credentials - expected:%v, got:%v", `{"type":"service_account"}`, settings.Credentials)
	}

	if settings.Spreadsheet.Worksheet != "Sheet2" {
		t.Errorf("Incorrect worksheet - expected:%v, got:%v", "Sheet2", settings.Spreadsheet.Worksheet)
	}

	if settings.Bind != "0.0.0.0:9000" {
		t.Errorf("Incorrect bind address - expected:%v, got:%v", "0.0.0.0:9000", settings.Bind)
	}

	sheet, err := settings.sheet()
	if err != nil {
		t.Fatalf("Unexpected error resolving sheet (%v)", err)
	}

	if sheet.ID != "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" {
		t.Errorf("Incorrect spreadsheet ID - expected:%v, got:%v", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", sheet.ID)
	}
}

func TestLoadSettingsEnvNameOverridesFileURL(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "dashboard.yaml")
	config := "spreadsheet:\n  url: https://docs.google.com/spreadsheets/d/FILEID/edit\n"
	if err := os.WriteFile(file, []byte(config), 0600); err != nil {
		t.Fatalf("Error writing configuration file (%v)", err)
	}

	t.Setenv(ENV_SPREADSHEET, "Env Tracker")

	settings, err := loadSettings(file)
	if err != nil {
		t.Fatalf("Unexpected error loading settings (%v)", err)
	}

	sheet, err := settings.sheet()
	if err != nil {
		t.Fatalf("Unexpected error resolving sheet (%v)", err)
	}

	expected := Sheet{Name: "Env Tracker"}
	if sheet != expected {
		t.Errorf("Incorrect sheet - expected:%+v, got:%+v", expected, sheet)
	}
}

func TestLoadSettingsEnvURLOverridesFileName(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "dashboard.yaml")
	if err := os.WriteFile(file, []byte(yamlConfig), 0600); err != nil {
		t.Fatalf("Error writing configuration file (%v)", err)
	}

	t.Setenv(ENV_SPREADSHEET, "https://docs.google.com/spreadsheets/d/ENVID/edit")

	settings, err := loadSettings(file)
	if err != nil {
		t.Fatalf("Unexpected error loading settings (%v)", err)
	}

	if settings.Spreadsheet.Name != "" {
		t.Errorf("Expected spreadsheet name to be cleared, got:%v", settings.Spreadsheet.Name)
	}

	sheet, err := settings.sheet()
	if err != nil {
		t.Fatalf("Unexpected error resolving sheet (%v)", err)
	}

	expected := Sheet{ID: "ENVID", Worksheet: "Monthly"}
	if sheet != expected {
		t.Errorf("Incorrect sheet - expected:%+v, got:%+v", expected, sheet)
	}
}

func TestSettingsProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv(ENV_CREDENTIALS, `{"type":"service_account"}`)

	settings, err := loadSettings("")
	if err != nil {
		t.Fatalf("Unexpected error loading settings (%v)", err)
	}

	if p, ok := settings.provider().(EnvCredentials); !ok || string(p) != ENV_CREDENTIALS {
		t.Errorf("Expected %v credentials provider, got:%#v", ENV_CREDENTIALS, settings.provider())
	}

	settings.Credentials = "/etc/dashboard/credentials.json"
	if _, ok := settings.provider().(FileCredentials); !ok {
		t.Errorf("Expected file credentials provider, got:%#v", settings.provider())
	}
}

func TestCommandSettingsOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(ENV_SPREADSHEET, "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms")

	cmd := command{
		credentials: "credentials.json",
		name:        "Savings",
		worksheet:   "2024",
	}

	settings, err := cmd.settings()
	if err != nil {
		t.Fatalf("Unexpected error resolving settings (%v)", err)
	}

	sheet, _ := settings.sheet()
	expected := Sheet{Name: "Savings", Worksheet: "2024"}

	if sheet != expected {
		t.Errorf("Incorrect sheet - expected:%+v, got:%+v", expected, sheet)
	}
}

func TestSheetWithInvalidURL(t *testing.T) {
	settings := DefaultSettings()
	settings.Spreadsheet.URL = "https://example.com/spreadsheets/1234"

	if _, err := settings.sheet(); err == nil {
		t.Errorf("Expected error for invalid spreadsheet URL")
	}
}

func TestSheetWithoutSpreadsheet(t *testing.T) {
	settings := DefaultSettings()
	settings.Spreadsheet.Name = ""

	if _, err := settings.sheet(); err == nil {
		t.Errorf("Expected error for missing spreadsheet name and URL")
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(file, []byte("DASHBOARD_WORKSHEET=FromDotEnv\n"), 0600); err != nil {
		t.Fatalf("Error writing .env file (%v)", err)
	}

	os.Unsetenv(ENV_WORKSHEET)

	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"), file); err != nil {
		t.Fatalf("Unexpected error loading .env file (%v)", err)
	}

	if v := os.Getenv(ENV_WORKSHEET); v != "FromDotEnv" {
		t.Errorf("Incorrect %v - expected:%v, got:%v", ENV_WORKSHEET, "FromDotEnv", v)
	}
}
