package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Renderer draws one bar chart to path.
type Renderer interface {
	Render(title string, bars []Bar, path string) error
}

// PlotRenderer renders PNG bar charts with gonum/plot.
type PlotRenderer struct {
	Height vg.Length
}

func NewPlotRenderer() *PlotRenderer {
	return &PlotRenderer{Height: 4 * vg.Inch}
}

func (r *PlotRenderer) Render(title string, bars []Bar, path string) error {
	if len(bars) == 0 {
		return fmt.Errorf("no bars to draw")
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Average time (seconds)"
	p.Y.Min = 0

	values := make(plotter.Values, len(bars))
	labels := make([]string, len(bars))
	for i, b := range bars {
		values[i] = b.Value
		labels[i] = b.Label()
	}

	chart, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	chart.Color = plotutil.Color(0)
	chart.LineStyle.Width = vg.Length(0)
	p.Add(chart)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 6

	width := vg.Length(math.Max(6, 1.2*float64(len(bars)))) * vg.Inch
	wt, err := p.WriterTo(width, r.Height, "png")
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	// Write next to the target and rename, so a failed render leaves no
	// truncated image behind.
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := wt.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
