package dashboard

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DATE = "02 Jan 2006"

var printer = message.NewPrinter(language.English)

// money formats an amount with thousands separators e.g. $12,345.67
func money(currency string, v float64) string {
	return currency + printer.Sprintf("%.2f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(DATE)
}
