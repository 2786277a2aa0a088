package report

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"pqbench/internal/benchmark"
)

// Status is the outcome of one view.
type Status string

const (
	StatusRendered Status = "rendered"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// Outcome describes what happened to one view.
type Outcome struct {
	View   string
	Title  string
	Path   string
	Status Status
	Reason string
	Err    error
}

// Generator renders views into a graphs directory.
type Generator struct {
	GraphsDir string
	Renderer  Renderer
}

func NewGenerator(graphsDir string, r Renderer) *Generator {
	return &Generator{GraphsDir: graphsDir, Renderer: r}
}

// Generate renders every view independently: an empty view is skipped and a
// failing view (error or panic) is recorded without stopping the others.
// The returned error covers only the graphs directory itself.
func (g *Generator) Generate(views []View) ([]Outcome, error) {
	if err := benchmark.EnsureDir(g.GraphsDir); err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(views))
	for _, v := range views {
		out := g.render(v)
		switch out.Status {
		case StatusSkipped:
			slog.Info("Skipping chart", "view", v.Name, "title", v.Title, "reason", out.Reason)
		case StatusFailed:
			slog.Error("Chart failed", "view", v.Name, "title", v.Title, "error", out.Err)
		default:
			slog.Info("Saved chart", "view", v.Name, "path", out.Path)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

func (g *Generator) render(v View) (out Outcome) {
	out = Outcome{View: v.Name, Title: v.Title}
	if len(v.Rows) == 0 {
		out.Status = StatusSkipped
		out.Reason = v.Reason
		return out
	}

	out.Path = filepath.Join(g.GraphsDir, v.Filename)
	defer func() {
		if r := recover(); r != nil {
			out.Status = StatusFailed
			out.Err = fmt.Errorf("panic rendering %s: %v", v.Name, r)
		}
	}()

	if err := g.Renderer.Render(v.Title, v.Rows.GroupMean(), out.Path); err != nil {
		out.Status = StatusFailed
		out.Err = fmt.Errorf("%s: %w", v.Name, err)
		return out
	}
	out.Status = StatusRendered
	return out
}

// Failures joins the errors of every failed outcome, or returns nil.
func Failures(outcomes []Outcome) error {
	var errs []error
	for _, o := range outcomes {
		if o.Status == StatusFailed {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}
