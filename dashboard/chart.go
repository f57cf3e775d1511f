package dashboard

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var lineColour = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Chart plots the values against their row numbers and returns the chart as SVG.
func Chart(title string, rows []int, values []float64) ([]byte, error) {
	if len(rows) != len(values) {
		return nil, fmt.Errorf("mismatched chart data (%v rows, %v values)", len(rows), len(values))
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Row"
	p.Y.Label.Text = title

	p.Add(plotter.NewGrid())

	if len(values) > 0 {
		points := make(plotter.XYs, len(values))
		for i := range values {
			points[i].X = float64(rows[i])
			points[i].Y = values[i]
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return nil, err
		}

		line.Color = lineColour
		line.Width = vg.Points(2)

		p.Add(line)
	}

	wt, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if _, err := wt.WriteTo(&b); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// inline strips the XML prolog so the SVG can be embedded directly in an HTML page.
func inline(svg []byte) string {
	s := string(svg)
	if ix := strings.Index(s, "<svg"); ix > 0 {
		return s[ix:]
	}

	return s
}
