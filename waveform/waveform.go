package waveform

import "image"
import "image/color"

import "github.com/fogleman/gg"

// Waveform represents the configuration for rendering a peak-normalized
// min/max envelope of a PCM clip.
type Waveform struct {
	Width      int
	Height     int
	Background color.RGBA
	Foreground color.RGBA
}

// NewWaveform creates a renderer with the default 800x200 white-on-black
// canvas.
func NewWaveform() *Waveform {
	return &Waveform{
		Width:      800,
		Height:     200,
		Background: color.RGBA{0, 0, 0, 255},
		Foreground: color.RGBA{255, 255, 255, 255},
	}
}

// Render paints the envelope of samples onto a fresh image. The input is
// never modified. An empty clip yields the bare background.
func (w *Waveform) Render(samples []float64) *image.RGBA {
	dc := gg.NewContext(w.Width, w.Height)
	dc.SetColor(w.Background)
	dc.Clear()

	total := len(samples)
	if total == 0 {
		return canvas(dc)
	}

	peak := peakAbs(samples)
	mid := float64(w.Height) / 2
	dc.SetColor(w.Foreground)

	for x := 0; x < w.Width; x++ {
		start := x * total / w.Width
		end := (x + 1) * total / w.Width
		if end <= start {
			end = start + 1
			if end > total {
				end = total
			}
		}
		if start >= end {
			continue
		}
		lo, hi := extrema(samples[start:end])
		if peak > 0 {
			lo /= peak
			hi /= peak
		}
		vline(dc, x, mid-hi*mid, mid-lo*mid, w.Height)
	}
	return canvas(dc)
}
