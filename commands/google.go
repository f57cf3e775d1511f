package commands

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const SPREADSHEET = "application/vnd.google-apps.spreadsheet"

// Sheet identifies a worksheet either by spreadsheet ID or by spreadsheet name. An empty
// Worksheet selects the first worksheet in the spreadsheet.
type Sheet struct {
	ID        string
	Name      string
	Worksheet string
}

// SpreadsheetClient fetches all the rows of a worksheet.
type SpreadsheetClient interface {
	Fetch(ctx context.Context, sheet Sheet) (*sheets.ValueRange, error)
}

type Google struct {
	sheets *sheets.Service
	drive  *drive.Service
}

func NewGoogle(ctx context.Context, provider CredentialProvider, workdir string) (*Google, error) {
	client, err := authorize(ctx, provider, workdir, SHEETS, DRIVE)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	gsheets, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	return &Google{
		sheets: gsheets,
		drive:  gdrive,
	}, nil
}

func (g *Google) Fetch(ctx context.Context, sheet Sheet) (*sheets.ValueRange, error) {
	id := sheet.ID
	if id == "" {
		if v, err := g.find(ctx, sheet.Name); err != nil {
			return nil, err
		} else {
			id = v
		}
	}

	spreadsheet, err := getSpreadsheet(ctx, g.sheets, id)
	if err != nil {
		return nil, err
	}

	worksheet, err := getSheet(spreadsheet, sheet.Worksheet)
	if err != nil {
		return nil, err
	}

	debugf("Spreadsheet - ID:%s  worksheet:%s", id, worksheet.Properties.Title)

	response, err := g.sheets.Spreadsheets.Values.Get(id, quote(worksheet.Properties.Title)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	if len(response.Values) == 0 {
		return nil, fmt.Errorf("no data in spreadsheet/worksheet")
	}

	return response, nil
}

// find looks up the spreadsheet ID by name, using the most recently modified spreadsheet
// if there is more than one with the same name.
func (g *Google) find(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("missing spreadsheet name")
	}

	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escape(name), SPREADSHEET)

	list, err := g.drive.Files.List().
		Q(q).
		Fields("files(id, name, modifiedTime)").
		OrderBy("modifiedTime desc").
		PageSize(10).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("unable to find spreadsheet '%s' (%v)", name, err)
	}

	if len(list.Files) == 0 {
		return "", fmt.Errorf("no spreadsheet named '%s'", name)
	}

	if len(list.Files) > 1 {
		warnf("found %v spreadsheets named '%s', using %v (modified %v)", len(list.Files), name, list.Files[0].Id, list.Files[0].ModifiedTime)
	}

	return list.Files[0].Id, nil
}

func getSpreadsheet(ctx context.Context, google *sheets.Service, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Fields("spreadsheetId", "sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

// getSheet returns the named worksheet or the first worksheet if name is blank.
func getSheet(spreadsheet *sheets.Spreadsheet, name string) (*sheets.Sheet, error) {
	if len(spreadsheet.Sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no worksheets")
	}

	if strings.TrimSpace(name) == "" {
		first := spreadsheet.Sheets[0]
		for _, sheet := range spreadsheet.Sheets[1:] {
			if sheet.Properties != nil && first.Properties != nil && sheet.Properties.Index < first.Properties.Index {
				first = sheet
			}
		}

		if first.Properties == nil {
			return nil, fmt.Errorf("missing worksheet properties")
		}

		return first, nil
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && normalise(sheet.Properties.Title) == normalise(name) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("unable to identify worksheet '%s'", name)
}

// quote returns the worksheet title as an A1 range for the whole sheet.
func quote(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func escape(v string) string {
	return strings.ReplaceAll(strings.ReplaceAll(v, `\`, `\\`), `'`, `\'`)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
