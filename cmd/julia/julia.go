package main

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/willbeason/julia-fractal/pkg/fractal"
	"github.com/willbeason/julia-fractal/pkg/imgio"
	"github.com/willbeason/julia-fractal/pkg/transforms"
)

type options struct {
	size       []int
	grid       []float64
	function   int
	constant   []float64
	iterations int
	threshold  float64
	palette    int
	output     string
	workers    int
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Generate a Julia set fractal image",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntSliceVarP(&opts.size, "size", "s", []int{500, 500}, "image size as width,height")
	flags.Float64SliceVarP(&opts.grid, "grid", "g", []float64{-1.5, -1.5, 1.5, 1.5}, "grid bounds as xmin,ymin,xmax,ymax")
	flags.IntVarP(&opts.function, "function", "f", 2, "iteration function: 1 (z²+c) or 2 (z³+c)")
	flags.Float64SliceVarP(&opts.constant, "constant", "c", []float64{0.6, -0.66}, "constant as re,im")
	flags.IntVarP(&opts.iterations, "iterations", "i", 100, "maximum number of iterations")
	flags.Float64VarP(&opts.threshold, "threshold", "t", 10, "squared-displacement escape threshold")
	flags.IntVarP(&opts.palette, "palette", "p", 2, "color scheme: 1 (hue) or 2 (grayscale)")
	flags.StringVarP(&opts.output, "output", "o", "output.png", "path of the generated image")
	flags.IntVar(&opts.workers, "workers", 0, "render goroutines; 0 uses all CPUs")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg, err := opts.config()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	bar := progressbar.Default(int64(cfg.Height), "Generating")

	img, err := fractal.RenderWithProgress(cfg, func(rowsDone int) {
		_ = bar.Set(rowsDone)
	})
	if err != nil {
		return err
	}
	_ = bar.Finish()

	return imgio.Write(opts.output, img)
}

// config assembles the render configuration from parsed flags. Selector flags
// are resolved here so a bad function or palette id fails before any pixel is
// computed.
func (opts *options) config() (fractal.Config, error) {
	var cfg fractal.Config

	if len(opts.size) != 2 {
		return cfg, fmt.Errorf("--size needs exactly 2 values, got %d", len(opts.size))
	}
	if len(opts.grid) != 4 {
		return cfg, fmt.Errorf("--grid needs exactly 4 values, got %d", len(opts.grid))
	}
	if len(opts.constant) != 2 {
		return cfg, fmt.Errorf("--constant needs exactly 2 values, got %d", len(opts.constant))
	}

	function, err := transforms.ByID(opts.function)
	if err != nil {
		return cfg, err
	}

	scheme, err := fractal.SchemeByID(opts.palette)
	if err != nil {
		return cfg, err
	}

	return fractal.Config{
		Width:      opts.size[0],
		Height:     opts.size[1],
		MinX:       opts.grid[0],
		MinY:       opts.grid[1],
		MaxX:       opts.grid[2],
		MaxY:       opts.grid[3],
		Function:   function,
		Constant:   complex(opts.constant[0], opts.constant[1]),
		Iterations: opts.iterations,
		Threshold:  opts.threshold,
		Scheme:     scheme,
		Workers:    opts.workers,
	}, nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
