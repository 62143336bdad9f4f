package fractal

import "testing"

func TestSchemeByID(t *testing.T) {
	if s, err := SchemeByID(1); err != nil || s != SchemeHue {
		t.Errorf("SchemeByID(1) = (%v, %v), want (SchemeHue, nil)", s, err)
	}
	if s, err := SchemeByID(2); err != nil || s != SchemeGray {
		t.Errorf("SchemeByID(2) = (%v, %v), want (SchemeGray, nil)", s, err)
	}

	for _, id := range []int{0, 3, -1, 100} {
		if _, err := SchemeByID(id); err == nil {
			t.Errorf("SchemeByID(%d): expected error", id)
		}
	}
}

func TestHueSectorBoundaries(t *testing.T) {
	tests := []struct {
		count   int
		r, g, b float64
	}{
		{360, 1, 0, 0}, // hue 0: red
		{60, 1, 1, 0},  // yellow
		{120, 0, 1, 0}, // green
		{180, 0, 1, 1}, // cyan
		{240, 0, 0, 1}, // blue
		{300, 1, 0, 1}, // magenta
	}

	for _, tt := range tests {
		r, g, b := SchemeHue.Map(tt.count, 1000)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("SchemeHue.Map(%d) = (%v, %v, %v), want (%v, %v, %v)",
				tt.count, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestHuePeriodic(t *testing.T) {
	for count := 1; count <= 360; count += 7 {
		r1, g1, b1 := SchemeHue.Map(count, 1000)
		r2, g2, b2 := SchemeHue.Map(count+360, 1000)

		if r1 != r2 || g1 != g2 || b1 != b2 {
			t.Errorf("SchemeHue.Map(%d) != SchemeHue.Map(%d)", count, count+360)
		}
	}
}

func TestHueChannelsNormalized(t *testing.T) {
	for count := 1; count <= 720; count++ {
		r, g, b := SchemeHue.Map(count, 1000)
		for _, ch := range []float64{r, g, b} {
			if ch < 0 || ch > 1 {
				t.Fatalf("SchemeHue.Map(%d) channel %v outside [0, 1]", count, ch)
			}
		}
	}
}

func TestGrayMonotonicAndSaturating(t *testing.T) {
	const maxIterations = 100

	prev := -1.0
	for count := 1; count <= maxIterations; count++ {
		r, g, b := SchemeGray.Map(count, maxIterations)

		if r != g || g != b {
			t.Fatalf("SchemeGray.Map(%d) = (%v, %v, %v): channels differ", count, r, g, b)
		}
		if r < prev {
			t.Fatalf("SchemeGray.Map(%d) = %v: decreased from %v", count, r, prev)
		}
		if r > 1 {
			t.Fatalf("SchemeGray.Map(%d) = %v: exceeds 1", count, r)
		}

		// Saturation point: i = (count+1)/N*2 reaches 1 once count+1 >= N/2.
		if count+1 >= maxIterations/2 && r != 1 {
			t.Fatalf("SchemeGray.Map(%d) = %v, want saturated 1", count, r)
		}

		prev = r
	}
}

func TestGrayRampValues(t *testing.T) {
	tests := []struct {
		count, maxIterations int
		want                 float64
	}{
		{1, 100, 0.04},
		{9, 100, 0.2},
		{49, 100, 1},
		{100, 100, 1},
		{1, 4, 1},
	}

	for _, tt := range tests {
		r, _, _ := SchemeGray.Map(tt.count, tt.maxIterations)
		if r != tt.want {
			t.Errorf("SchemeGray.Map(%d, N=%d) = %v, want %v", tt.count, tt.maxIterations, r, tt.want)
		}
	}
}
