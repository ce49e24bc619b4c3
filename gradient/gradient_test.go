package gradient

import (
	"image/color"
	"math"
	"testing"
)

func TestMagmaEndpoints(t *testing.T) {
	g := Magma()
	tests := []struct {
		name string
		x    float64
		want color.RGBA
	}{
		{"zero", 0, color.RGBA{0, 0, 3, 255}},
		{"one", 1, color.RGBA{251, 252, 73, 255}},
		{"below range", -0.5, color.RGBA{0, 0, 3, 255}},
		{"above range", 7.2, color.RGBA{251, 252, 73, 255}},
		{"nan", math.NaN(), color.RGBA{0, 0, 3, 255}},
		{"negative infinity", math.Inf(-1), color.RGBA{0, 0, 3, 255}},
		{"positive infinity", math.Inf(1), color.RGBA{251, 252, 73, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.At(tt.x)
			if got != tt.want {
				t.Errorf("At(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

// Gamma shaping means a stop color appears at pos^(1/gamma), not at pos.
func TestMagmaStopColors(t *testing.T) {
	g := Magma()
	tests := []struct {
		name string
		x    float64
		want color.RGBA
	}{
		{"quarter stop", math.Pow(0.25, 2.5), color.RGBA{30, 16, 68, 255}},
		{"half stop", math.Pow(0.5, 2.5), color.RGBA{83, 18, 123, 255}},
		{"three quarter stop", math.Pow(0.75, 2.5), color.RGBA{187, 55, 84, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.At(tt.x)
			if !closeRGBA(got, tt.want, 1) {
				t.Errorf("At(%v) = %v, want %v within 1", tt.x, got, tt.want)
			}
		})
	}
}

func TestMagmaLuminanceMonotonic(t *testing.T) {
	g := Magma()
	prev := luminance(g.At(0))
	for x := 0.05; x <= 0.65; x += 0.05 {
		cur := luminance(g.At(x))
		if cur < prev {
			t.Fatalf("luminance decreased at x=%.2f: %.2f < %.2f", x, cur, prev)
		}
		prev = cur
	}
}

func TestAtDeterministic(t *testing.T) {
	g := Magma()
	for _, x := range []float64{0, 0.1, 0.33, 0.5, 0.87, 1} {
		if a, b := g.At(x), g.At(x); a != b {
			t.Fatalf("At(%v) not deterministic: %v vs %v", x, a, b)
		}
	}
}

func TestInterpolateDegenerate(t *testing.T) {
	empty := &Gradient{Gamma: 1, BoostPivot: 1}
	if got := empty.At(0.5); got != (color.RGBA{A: 255}) {
		t.Errorf("empty gradient At(0.5) = %v, want opaque black", got)
	}

	single := &Gradient{
		Stops: []Stop{{Pos: 0.5, Color: color.RGBA{10, 20, 30, 255}}},
		Gamma: 1, BoostPivot: 1,
	}
	if got := single.At(0.1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("single stop At(0.1) = %v, want the stop color", got)
	}
	if got := single.At(0.9); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("single stop At(0.9) = %v, want the stop color", got)
	}
}

func closeRGBA(a, b color.RGBA, tol int) bool {
	return absInt(int(a.R)-int(b.R)) <= tol &&
		absInt(int(a.G)-int(b.G)) <= tol &&
		absInt(int(a.B)-int(b.B)) <= tol &&
		a.A == b.A
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func luminance(c color.RGBA) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}
