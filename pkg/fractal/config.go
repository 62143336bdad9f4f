package fractal

import (
	"fmt"

	"github.com/willbeason/julia-fractal/pkg/transforms"
)

// Config describes one render of a Julia set. It is immutable for the
// lifetime of the render.
type Config struct {
	// Width and Height are the raster dimensions in pixels.
	Width, Height int

	// MinX, MinY, MaxX, MaxY bound the sampled rectangle of the complex
	// plane. MinX/MaxX span the real axis, MinY/MaxY the imaginary axis.
	MinX, MinY, MaxX, MaxY float64

	// Function is the iteration step applied to each sample.
	Function transforms.Transform

	// Constant is the c passed to Function on every step.
	Constant complex128

	// Iterations caps the number of steps per pixel.
	Iterations int

	// Threshold is compared against the squared displacement of the current
	// iterate from the pixel's starting point. Note: squared, not a raw
	// magnitude.
	Threshold float64

	// Scheme maps escape iteration counts to colors.
	Scheme Scheme

	// Workers is the number of goroutines sharing the row loop.
	// Zero means runtime.NumCPU.
	Workers int
}

// Default returns the render configuration used when no flags are given:
// a 500x500 view of [-1.5,1.5]² under z³+c with c = 0.6-0.66i.
func Default() Config {
	return Config{
		Width:      500,
		Height:     500,
		MinX:       -1.5,
		MinY:       -1.5,
		MaxX:       1.5,
		MaxY:       1.5,
		Function:   transforms.Cubic{},
		Constant:   complex(0.6, -0.66),
		Iterations: 100,
		Threshold:  10,
		Scheme:     SchemeGray,
	}
}

// Validate reports the first configuration problem, if any. Render calls
// this before touching any pixel, so an invalid Config never produces a
// partial image.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("image size %dx%d: both dimensions must be positive", cfg.Width, cfg.Height)
	}
	if cfg.MinX >= cfg.MaxX {
		return fmt.Errorf("grid bounds: min x %v must be less than max x %v", cfg.MinX, cfg.MaxX)
	}
	if cfg.MinY >= cfg.MaxY {
		return fmt.Errorf("grid bounds: min y %v must be less than max y %v", cfg.MinY, cfg.MaxY)
	}
	if cfg.Function == nil {
		return fmt.Errorf("no iteration function configured")
	}
	if cfg.Iterations < 1 {
		return fmt.Errorf("iteration cap %d: must be at least 1", cfg.Iterations)
	}
	if cfg.Threshold <= 0 {
		return fmt.Errorf("escape threshold %v: must be positive", cfg.Threshold)
	}
	if _, err := SchemeByID(int(cfg.Scheme)); err != nil {
		return err
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers %d: must not be negative", cfg.Workers)
	}

	return nil
}
