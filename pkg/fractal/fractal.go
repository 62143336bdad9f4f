// Package fractal renders Julia-set escape-time fractals.
//
// A render samples a rectangle of the complex plane onto a pixel raster,
// iterates a configured transform from each sample, and colors each pixel by
// the iteration count at which the iterate's squared displacement from the
// starting point first exceeds a threshold.
package fractal

import (
	"image"
	"image/color"
	"runtime"
	"sync"
)

// Interior is the color of pixels whose iterate never exceeds the threshold
// within the iteration cap.
var Interior = color.RGBA{A: 0xff}

// Render produces the raster for cfg. The returned image addresses the real
// axis with x and the imaginary axis with y; each pixel is written exactly
// once and the buffer is not touched again after Render returns.
func Render(cfg Config) (*image.RGBA, error) {
	return RenderWithProgress(cfg, nil)
}

// RenderWithProgress is Render with a completion callback, invoked with the
// cumulative number of finished rows. The callback runs on a single
// goroutine.
func RenderWithProgress(cfg Config, progress func(rowsDone int)) (*image.RGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))

	rows := make(chan int)
	go func() {
		for y := 0; y < cfg.Height; y++ {
			rows <- y
		}
		close(rows)
	}()

	finished := make(chan int, cfg.Height)

	ywg := sync.WaitGroup{}
	ywg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			for y := range rows {
				for x := 0; x < cfg.Width; x++ {
					img.SetRGBA(x, y, pixelColor(cfg, samplePoint(cfg, x, y)))
				}
				finished <- y
			}
			ywg.Done()
		}()
	}

	pwg := sync.WaitGroup{}
	pwg.Add(1)
	go func() {
		done := 0
		for range finished {
			done++
			if progress != nil {
				progress(done)
			}
		}
		pwg.Done()
	}()

	ywg.Wait()
	close(finished)
	pwg.Wait()

	return img, nil
}

// samplePoint maps pixel indices to the complex plane. x spans the real
// axis over [MinX, MaxX), y the imaginary axis over [MinY, MaxY).
func samplePoint(cfg Config, x, y int) complex128 {
	re := cfg.MinX + float64(x)*(cfg.MaxX-cfg.MinX)/float64(cfg.Width)
	im := cfg.MinY + float64(y)*(cfg.MaxY-cfg.MinY)/float64(cfg.Height)

	return complex(re, im)
}

// pixelColor runs the escape loop for one starting point. The escape test
// measures the squared displacement of the current iterate from the starting
// point z0, not the iterate's own magnitude.
func pixelColor(cfg Config, z0 complex128) color.RGBA {
	z := z0
	for n := 1; n <= cfg.Iterations; n++ {
		z = cfg.Function.Next(z, cfg.Constant)

		dr := real(z) - real(z0)
		di := imag(z) - imag(z0)
		if dr*dr+di*di > cfg.Threshold {
			return quantize(cfg.Scheme.Map(n, cfg.Iterations))
		}
	}

	return Interior
}

// quantize truncates normalized channels to 8 bits.
func quantize(r, g, b float64) color.RGBA {
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 0xff,
	}
}
