package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Renderer is the optional rendering capability offered to checks.
type Renderer interface {
	// SaveDistribution draws a value-distribution histogram.
	SaveDistribution(title string, values []float64, path string) error
	// SaveBox draws a box plot with a horizontal threshold marker.
	SaveBox(title string, values []float64, threshold float64, path string) error
}

// Nop is the default renderer; it draws nothing.
var Nop Renderer = nopRenderer{}

type nopRenderer struct{}

func (nopRenderer) SaveDistribution(string, []float64, string) error { return nil }
func (nopRenderer) SaveBox(string, []float64, float64, string) error { return nil }

// PlotRenderer renders charts to PNG files using gonum/plot.
type PlotRenderer struct{}

func (PlotRenderer) SaveDistribution(title string, values []float64, path string) error {
	p := plot.New()
	p.Title.Text = title

	h, err := plotter.NewHist(plotter.Values(values), 100)
	if err != nil {
		return fmt.Errorf("render: histogram: %w", err)
	}
	h.Normalize(1)
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

func (PlotRenderer) SaveBox(title string, values []float64, threshold float64, path string) error {
	p := plot.New()
	p.Title.Text = title

	box, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(values))
	if err != nil {
		return fmt.Errorf("render: box plot: %w", err)
	}
	p.Add(box)

	marker, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: threshold}, {X: 0.5, Y: threshold}})
	if err != nil {
		return fmt.Errorf("render: threshold marker: %w", err)
	}
	marker.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(marker)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
