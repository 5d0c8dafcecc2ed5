package curves

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("curves: invalid config")

// Config controls the sample grid and the rendered figure.
type Config struct {
	Start float64 // first grid value (inclusive)
	Stop  float64 // grid end (exclusive)
	Step  float64 // grid spacing

	Title  string
	XLabel string
	YLabel string
	YMin   float64
	YMax   float64

	Width  vg.Length
	Height vg.Length
}

// DefaultConfig returns the exercise settings: x in [-5, 5) with step 0.1,
// y axis fixed to [-1.2, 1.2], title "graph".
func DefaultConfig() Config {
	return Config{
		Start:  -5.0,
		Stop:   5.0,
		Step:   0.1,
		Title:  "graph",
		XLabel: "x",
		YLabel: "y",
		YMin:   -1.2,
		YMax:   1.2,
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// Validate checks that the grid is non-empty and the figure has a usable size.
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"start": c.Start, "stop": c.Stop, "step": c.Step, "y min": c.YMin, "y max": c.YMax,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s %v is not finite", ErrInvalidConfig, name, v)
		}
	}
	if c.Step <= 0 {
		return fmt.Errorf("%w: step %v must be positive", ErrInvalidConfig, c.Step)
	}
	if c.Stop <= c.Start {
		return fmt.Errorf("%w: stop %v must exceed start %v", ErrInvalidConfig, c.Stop, c.Start)
	}
	if c.YMax <= c.YMin {
		return fmt.Errorf("%w: y range [%v, %v] is empty", ErrInvalidConfig, c.YMin, c.YMax)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: figure size %vx%v", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}
