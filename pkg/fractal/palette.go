package fractal

import (
	"fmt"
	"math"
)

// A Scheme converts escape iteration counts to normalized RGB colors.
type Scheme int

const (
	// SchemeHue treats the iteration count as a hue in degrees and converts
	// it to RGB at full saturation and value.
	SchemeHue Scheme = 1

	// SchemeGray is a brightness ramp over the iteration count, saturating
	// at white around half the iteration cap.
	SchemeGray Scheme = 2
)

// SchemeByID validates a numeric palette selector.
func SchemeByID(id int) (Scheme, error) {
	switch Scheme(id) {
	case SchemeHue, SchemeGray:
		return Scheme(id), nil
	default:
		return 0, fmt.Errorf("unknown palette id %d: must be 1 (hue) or 2 (grayscale)", id)
	}
}

// Map returns the normalized RGB color for the iteration count at which a
// pixel escaped. Each channel is in [0, 1]. maxIterations only affects
// SchemeGray.
func (s Scheme) Map(count, maxIterations int) (r, g, b float64) {
	switch s {
	case SchemeHue:
		return hueColor(count)
	default:
		return grayColor(count, maxIterations)
	}
}

// hueColor is the standard HSV-to-RGB conversion with s = v = 1, walking
// six 60°-wide sectors of the color wheel.
func hueColor(count int) (r, g, b float64) {
	h := float64(count % 360)
	x := 1 - math.Abs(math.Mod(h/60, 2)-1)

	switch {
	case h < 60:
		return 1, x, 0
	case h < 120:
		return x, 1, 0
	case h < 180:
		return 0, 1, x
	case h < 240:
		return 0, x, 1
	case h < 300:
		return x, 0, 1
	default:
		return 1, 0, x
	}
}

func grayColor(count, maxIterations int) (r, g, b float64) {
	i := float64(count+1) / float64(maxIterations) * 2
	if i > 1 {
		i = 1
	}

	return i, i, i
}
