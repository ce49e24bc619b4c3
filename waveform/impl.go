package waveform

import "image"
import "math"

import "github.com/fogleman/gg"

func peakAbs(samples []float64) float64 {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

func extrema(segment []float64) (lo, hi float64) {
	lo, hi = segment[0], segment[0]
	for _, s := range segment[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return lo, hi
}

// vline paints pixels in column x from y1 down to y2 inclusive, clipped to
// the image. Endpoints are truncated to rows, so a zero-span line still
// paints its single row.
func vline(dc *gg.Context, x int, y1, y2 float64, height int) {
	a, b := int(y1), int(y2)
	if a > b {
		a, b = b, a
	}
	if a < 0 {
		a = 0
	}
	if b > height-1 {
		b = height - 1
	}
	for y := a; y <= b; y++ {
		dc.SetPixel(x, y)
	}
}

func canvas(dc *gg.Context) *image.RGBA {
	return dc.Image().(*image.RGBA)
}
