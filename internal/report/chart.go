package report

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// barColor matches the default blue of common plotting tools.
var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// barSpec describes one bar chart before it is drawn.
type barSpec struct {
	Title      string
	XLabel     string
	YLabel     string
	Labels     []string
	Values     []float64
	Horizontal bool
}

// newBarPlot builds a bar chart with one bar per value, labelled along the
// category axis in the given order. No values yield titled, empty axes.
func newBarPlot(bc barSpec, barWidth vg.Length) (*plot.Plot, error) {
	if len(bc.Labels) != len(bc.Values) {
		return nil, fmt.Errorf("bar chart %q: %d labels for %d values", bc.Title, len(bc.Labels), len(bc.Values))
	}

	p := plot.New()
	p.Title.Text = bc.Title
	p.X.Label.Text = bc.XLabel
	p.Y.Label.Text = bc.YLabel

	if len(bc.Values) == 0 {
		return p, nil
	}

	bars, err := plotter.NewBarChart(plotter.Values(bc.Values), barWidth)
	if err != nil {
		return nil, fmt.Errorf("bar chart %q: %w", bc.Title, err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	bars.Horizontal = bc.Horizontal
	p.Add(bars)

	if bc.Horizontal {
		p.NominalY(bc.Labels...)
		p.X.Min = 0
	} else {
		p.NominalX(bc.Labels...)
		p.Y.Min = 0
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	return p, nil
}
