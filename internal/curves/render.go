package curves

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/seminar06/kadai/internal/tensor"
)

// ErrUnsupportedFormat is returned for image formats the renderer cannot write.
var ErrUnsupportedFormat = errors.New("curves: unsupported image format")

var formats = map[string]bool{"png": true, "svg": true, "pdf": true, "jpg": true, "jpeg": true}

// series names in legend order.
const (
	nameSigmoid = "sigmoid"
	nameSoftmax = "softmax"
	nameTanh    = "tanh"
)

// Plot builds the figure: one line per activation, a legend, grid lines and
// the fixed y range from cfg.
func Plot(c *Curves, cfg Config) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	series := []struct {
		name string
		y    *tensor.RawTensor
	}{
		{nameSigmoid, c.Sigmoid},
		{nameSoftmax, c.Softmax},
		{nameTanh, c.Tanh},
	}

	for i, s := range series {
		line, err := plotter.NewLine(xys(c.X, s.y))
		if err != nil {
			return nil, fmt.Errorf("curves: %s line: %w", s.name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	// Set after Add, which widens the axes to the data range.
	p.Y.Min = cfg.YMin
	p.Y.Max = cfg.YMax

	return p, nil
}

// Render writes the figure to w in the given format (png, svg, pdf, jpg).
func Render(c *Curves, cfg Config, format string, w io.Writer) error {
	format = strings.ToLower(format)
	if !formats[format] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	p, err := Plot(c, cfg)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(cfg.Width, cfg.Height, format)
	if err != nil {
		return fmt.Errorf("curves: render %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("curves: write %s: %w", format, err)
	}
	return nil
}

// Save renders the figure to path; the extension selects the format.
func Save(c *Curves, cfg Config, path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !formats[strings.ToLower(format)] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	p, err := Plot(c, cfg)
	if err != nil {
		return err
	}
	if err := p.Save(cfg.Width, cfg.Height, path); err != nil {
		return fmt.Errorf("curves: save %s: %w", path, err)
	}
	return nil
}

func xys(x, y *tensor.RawTensor) plotter.XYs {
	xs, ys := x.Data(), y.Data()
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
