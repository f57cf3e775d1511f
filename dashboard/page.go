package dashboard

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"time"

	"github.com/uhppoted/sheets-dashboard/growth"
	"github.com/uhppoted/sheets-dashboard/tracker"
)

//go:embed html
var HTML embed.FS

var page = template.Must(template.New("dashboard.html").ParseFS(HTML, "html/dashboard.html"))

const WARNING = "Not enough non-zero data points to calculate percentage increase."

type Page struct {
	Title   string
	Warning string
	Growth  *Panel
	Header  []string
	Rows    [][]string
	Chart   template.HTML
	Updated string
}

type Options struct {
	Title    string
	Currency string
	Total    string
}

// NewPage computes the growth for the table and assembles the dashboard page. An
// insufficient number of data points is reported as a page warning rather than an error.
func NewPage(table *tracker.Table, options Options) (*Page, *growth.Result, error) {
	p := Page{
		Title:   options.Title,
		Header:  table.Header,
		Rows:    table.Rows,
		Updated: time.Now().Format("2006-01-02 15:04:05"),
	}

	result, err := growth.Compute(table.Series())
	switch {
	case errors.Is(err, growth.ErrInsufficientData):
		p.Warning = WARNING

	case err != nil:
		return nil, nil, err

	default:
		panel := NewPanel(*result, options.Currency)
		p.Growth = &panel
	}

	rows, values := table.Totals()
	svg, err := Chart(options.Total, rows, values)
	if err != nil {
		return nil, nil, err
	}

	p.Chart = template.HTML(inline(svg))

	return &p, result, nil
}

func Render(w io.Writer, p *Page) error {
	return page.Execute(w, p)
}
