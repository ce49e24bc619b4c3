package gradient

import "image/color"
import "math"

// Stop anchors a color at a position in [0,1] along the ramp.
type Stop struct {
	Pos   float64
	Color color.RGBA
}

// Gradient represents the configuration for mapping normalized intensities
// to colors.
type Gradient struct {
	Stops []Stop

	// Gamma shapes the intensity before interpolation.
	Gamma float64

	// Intensities above BoostPivot are stretched by 1+BoostStrength and
	// clamped again, steepening contrast in the brightest range.
	BoostPivot    float64
	BoostStrength float64
}

// Magma creates the dark-background, warm-highlight ramp used by the
// spectrogram renderer.
func Magma() *Gradient {
	return &Gradient{
		Stops: []Stop{
			{Pos: 0.0, Color: color.RGBA{0, 0, 3, 255}},
			{Pos: 0.25, Color: color.RGBA{30, 16, 68, 255}},
			{Pos: 0.5, Color: color.RGBA{83, 18, 123, 255}},
			{Pos: 0.75, Color: color.RGBA{187, 55, 84, 255}},
			{Pos: 1.0, Color: color.RGBA{251, 252, 73, 255}},
		},
		Gamma:         0.4,
		BoostPivot:    0.85,
		BoostStrength: 0.6,
	}
}

// At maps one normalized intensity to a color. Inputs outside [0,1], NaN and
// infinities are clamped before shaping, so degenerate values coming out of
// log scaling cannot produce invalid colors.
func (g *Gradient) At(x float64) color.RGBA {
	if math.IsNaN(x) {
		x = 0
	}
	t := math.Pow(clamp01(x), g.Gamma)
	if t > g.BoostPivot {
		t = g.BoostPivot + (t-g.BoostPivot)*(1+g.BoostStrength)
	}
	return g.interpolate(clamp01(t))
}

func (g *Gradient) interpolate(t float64) color.RGBA {
	stops := g.Stops
	if len(stops) == 0 {
		return color.RGBA{A: 255}
	}
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	for i := 0; i+1 < len(stops); i++ {
		hi := stops[i+1]
		if t > hi.Pos {
			continue
		}
		lo := stops[i]
		span := hi.Pos - lo.Pos
		if span <= 0 {
			return hi.Color
		}
		u := (t - lo.Pos) / span
		return color.RGBA{
			R: lerp(lo.Color.R, hi.Color.R, u),
			G: lerp(lo.Color.G, hi.Color.G, u),
			B: lerp(lo.Color.B, hi.Color.B, u),
			A: 255,
		}
	}
	return stops[len(stops)-1].Color
}

// lerp interpolates a single channel, truncating like a float-to-byte cast.
func lerp(a, b uint8, u float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*u)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
