package dashboard

import (
	"fmt"
	"io"

	"github.com/uhppoted/sheets-dashboard/growth"
)

type Panel struct {
	Arrow  string
	Colour string
	Change string
	From   string
	To     string

	Dated  bool
	Since  string
	Until  string
	Days   string
	Daily  string
	Yearly string
}

var arrows = map[growth.Direction]string{
	growth.Up:   "🔺",
	growth.Flat: "➖",
	growth.Down: "🔻",
}

var colours = map[growth.Direction]string{
	growth.Up:   "green",
	growth.Flat: "black",
	growth.Down: "red",
}

func NewPanel(result growth.Result, currency string) Panel {
	direction := result.Direction()

	panel := Panel{
		Arrow:  arrows[direction],
		Colour: colours[direction],
		Change: percent(result.PercentChange),
		From:   money(currency, result.First),
		To:     money(currency, result.Latest),
		Dated:  result.Dated,
	}

	if result.Dated {
		panel.Since = date(result.FirstTimestamp)
		panel.Until = date(result.LatestTimestamp)
		panel.Days = fmt.Sprintf("%.1f", result.DaysElapsed)
		panel.Daily = percent(result.AvgDailyGrowth)
		panel.Yearly = percent(result.AvgYearlyGrowth)
	}

	return panel
}

// Summary writes the panel as plain text for the command line.
func (p Panel) Summary(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Total Growth  %s %s\n", p.Arrow, p.Change); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "  from %s to %s\n", p.From, p.To); err != nil {
		return err
	}

	if p.Dated {
		if _, err := fmt.Fprintf(w, "  %s - %s (%s days)\n", p.Since, p.Until, p.Days); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "  average daily growth:  %s\n  average yearly growth: %s\n", p.Daily, p.Yearly); err != nil {
			return err
		}
	}

	return nil
}
