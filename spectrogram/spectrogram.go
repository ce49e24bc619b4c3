package spectrogram

import "image"

import "github.com/fogleman/gg"
import "github.com/r9y9/gossp/stft"

import "github.com/soundglass/audioviz/gradient"

// Spectrogram represents the configuration for converting PCM samples to a
// colored mel spectrogram image.
type Spectrogram struct {
	Width   int
	Height  int
	NumMels int

	// FMin and FMax bound the filterbank in Hz. FMax <= 0 means the
	// Nyquist frequency of the rendered clip.
	FMin float64
	FMax float64

	// DynamicRange is the decibel span kept below the loudest bin.
	// FloorDB caps how far down the lower edge may reach.
	DynamicRange float64
	FloorDB      float64

	Ramp *gradient.Gradient
}

// NewSpectrogram creates a renderer with the default 800x200 canvas, a
// 512 band filterbank and a 100 dB window.
func NewSpectrogram() *Spectrogram {
	return &Spectrogram{
		Width:        800,
		Height:       200,
		NumMels:      512,
		FMin:         0,
		FMax:         0,
		DynamicRange: 100,
		FloorDB:      -120,
		Ramp:         gradient.Magma(),
	}
}

// Render computes the mel spectrogram of samples and paints it onto a fresh
// image. The input is never modified. An empty clip yields a black canvas.
func (s *Spectrogram) Render(samples []float64, sampleRate int) *image.RGBA {
	dc := gg.NewContext(s.Width, s.Height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	if len(samples) == 0 {
		return canvas(dc)
	}

	nfft := chooseNFFT(len(samples))
	buf := padTail(samples, nfft)
	hop := hopLength(len(buf), nfft, s.Width)

	st := stft.New(hop, nfft)
	st.Window = hann(nfft)
	power := powerSpectrum(st.STFT(buf), nfft)

	numMels := s.NumMels
	if numMels <= 0 {
		numMels = 2 * s.Height
		if numMels < 512 {
			numMels = 512
		}
	}
	fmax := s.FMax
	if fmax <= 0 {
		fmax = float64(sampleRate) / 2
	}
	bank := melFilterbank(numMels, nfft, float64(sampleRate), s.FMin, fmax)
	melDB := toDecibels(applyFilterbank(bank, power))

	globalMax := matrixMax(melDB)
	minDB := globalMax - s.DynamicRange
	if minDB < s.FloorDB {
		minDB = s.FloorDB
	}
	denom := globalMax - minDB
	if denom < 1e-6 {
		denom = 1e-6
	}

	rows := warpRows(resampleTime(melDB, s.Width), s.Height)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			dc.SetColor(s.Ramp.At((rows[y][x] - minDB) / denom))
			dc.SetPixel(x, y)
		}
	}
	return canvas(dc)
}
