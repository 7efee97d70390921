// SPDX-License-Identifier: MIT

package progress

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/crs/iterative"
)

// ErrNoData is returned when a chart is requested but no positive metric
// was recorded (the log axis cannot show zero).
var ErrNoData = errors.New("progress: nothing to plot")

// Default chart size.
const (
	DefaultPlotWidth  = 6 * vg.Inch
	DefaultPlotHeight = 4 * vg.Inch
)

// Recorder keeps every report it receives.
type Recorder struct {
	mu      sync.Mutex
	history []iterative.Progress
}

var _ iterative.Reporter = (*Recorder)(nil)

// Report implements iterative.Reporter.
func (r *Recorder) Report(p iterative.Progress) {
	r.mu.Lock()
	r.history = append(r.history, p)
	r.mu.Unlock()
}

// History returns a copy of the recorded reports in arrival order.
func (r *Recorder) History() []iterative.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.history)
}

// Last returns the most recent report; ok is false when nothing was recorded.
func (r *Recorder) Last() (p iterative.Progress, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return p, false
	}

	return r.history[len(r.history)-1], true
}

// Reset drops the recorded history.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.history = r.history[:0]
	r.mu.Unlock()
}

// Plot builds the convergence chart: one line per method, iteration on X,
// metric on a logarithmic Y axis. Non-positive metrics are skipped.
// Errors: ErrNoData when no point remains.
func (r *Recorder) Plot() (*plot.Plot, error) {
	hist := r.History()

	var order []iterative.Method
	series := make(map[iterative.Method]plotter.XYs)
	for _, h := range hist {
		if !(h.Metric > 0) {
			continue
		}
		if _, seen := series[h.Method]; !seen {
			order = append(order, h.Method)
		}
		series[h.Method] = append(series[h.Method], plotter.XY{X: float64(h.Iteration), Y: h.Metric})
	}
	if len(order) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "error metric"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	for i, m := range order {
		line, err := plotter.NewLine(series[m])
		if err != nil {
			return nil, fmt.Errorf("progress: %s series: %w", m, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(m.String(), line)
	}

	return p, nil
}

// WritePlot renders the chart in the given format ("png", "svg", "pdf",
// "eps", "jpg", "tif") at the default size.
func (r *Recorder) WritePlot(w io.Writer, format string) error {
	p, err := r.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultPlotWidth, DefaultPlotHeight, format)
	if err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

// SavePlot writes the chart to path; the extension selects the format.
func (r *Recorder) SavePlot(path string) error {
	p, err := r.Plot()
	if err != nil {
		return err
	}

	return p.Save(DefaultPlotWidth, DefaultPlotHeight, path)
}
