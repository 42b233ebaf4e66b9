// report/chart.go
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rustyeddy/botwatch/botlog"
)

// Point is one chart sample.
type Point struct {
	T time.Time
	V float64
}

// ChartSeries is one named line on a chart.
type ChartSeries struct {
	Label  string
	Color  string
	Points []Point
}

// Chart palette, roughly matching the bot's original dashboard colors.
var chartColors = []string{"#1f77b4", "#2ca02c", "#ff7f0e", "#d62728", "#9467bd", "#e377c2"}

// ChartColor returns a palette color for the i-th series on a chart.
func ChartColor(i int) string {
	return chartColors[i%len(chartColors)]
}

// LineChart renders one or more time series as a minimal SVG line chart.
// All series share the combined time and value range. Charts with no points
// render as an empty frame with the title, never an error.
func LineChart(w, h int, title string, series ...ChartSeries) []byte {
	if w <= 0 {
		w = 900
	}
	if h <= 0 {
		h = 300
	}

	const (
		padLeft = 40
		padTop  = 30
		padBot  = 30
		padRght = 40
	)
	plotW := float64(w - padLeft - padRght)
	plotH := float64(h - padTop - padBot)

	var (
		haveAny    bool
		minT, maxT time.Time
		minV, maxV float64
	)
	for _, s := range series {
		for _, p := range s.Points {
			if !haveAny {
				minT, maxT = p.T, p.T
				minV, maxV = p.V, p.V
				haveAny = true
				continue
			}
			if p.T.Before(minT) {
				minT = p.T
			}
			if p.T.After(maxT) {
				maxT = p.T
			}
			if p.V < minV {
				minV = p.V
			}
			if p.V > maxV {
				maxV = p.V
			}
		}
	}

	spanT := maxT.Sub(minT).Seconds() + 1e-9
	spanV := maxV - minV + 1e-9

	var b bytes.Buffer
	fmt.Fprintf(&b, "<svg xmlns='http://www.w3.org/2000/svg' width='%d' height='%d' viewBox='0 0 %d %d'>", w, h, w, h)
	b.WriteString("<rect width='100%' height='100%' fill='#ffffff'/>")
	fmt.Fprintf(&b, "<text x='12' y='20' fill='#333' font-family='sans-serif' font-size='14'>%s</text>", title)
	fmt.Fprintf(&b, "<g transform='translate(%d,%d)'>", padLeft, padTop)

	// Axes.
	fmt.Fprintf(&b, "<line x1='0' y1='0' x2='0' y2='%.0f' stroke='#cccccc'/>", plotH)
	fmt.Fprintf(&b, "<line x1='0' y1='%.0f' x2='%.0f' y2='%.0f' stroke='#cccccc'/>", plotH, plotW, plotH)

	for i, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		color := s.Color
		if color == "" {
			color = ChartColor(i)
		}
		fmt.Fprintf(&b, "<polyline fill='none' stroke='%s' stroke-width='1.5' points='", color)
		for j, p := range s.Points {
			x := p.T.Sub(minT).Seconds() / spanT * plotW
			y := plotH - (p.V-minV)/spanV*plotH
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.2f,%.2f", x, y)
		}
		b.WriteString("'/>")

		// Legend entry.
		lx := float64(i) * 130
		fmt.Fprintf(&b, "<rect x='%.0f' y='-18' width='10' height='10' fill='%s'/>", lx, color)
		fmt.Fprintf(&b, "<text x='%.0f' y='-9' fill='#333' font-family='sans-serif' font-size='11'>%s</text>", lx+14, s.Label)
	}

	b.WriteString("</g></svg>")
	return b.Bytes()
}

// AccountPoints extracts one chart series from account snapshots, dropping
// snapshots whose timestamp does not resolve.
func AccountPoints(recs []botlog.AccountRecord, pick func(botlog.AccountRecord) float64) []Point {
	pts := make([]Point, 0, len(recs))
	for _, r := range recs {
		t, err := r.Time()
		if err != nil {
			continue
		}
		pts = append(pts, Point{T: t, V: pick(r)})
	}
	return pts
}

// MarketPoints extracts one chart series from market observations, dropping
// records whose timestamp does not resolve.
func MarketPoints(recs []botlog.MarketRecord, pick func(botlog.MarketRecord) float64) []Point {
	pts := make([]Point, 0, len(recs))
	for _, r := range recs {
		t, err := r.Time()
		if err != nil {
			continue
		}
		pts = append(pts, Point{T: t, V: pick(r)})
	}
	return pts
}
