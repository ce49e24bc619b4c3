package spectrogram

import "image"
import "math"

import "github.com/fogleman/gg"
import "github.com/mjibson/go-dsp/window"

// chooseNFFT picks a power-of-two FFT size between 1024 and 4096, capped by
// the clip length so short clips stay analyzable.
func chooseNFFT(n int) int {
	if n <= 0 {
		return 1024
	}
	nfft := 1024
	for nfft*2 <= n && nfft < 4096 {
		nfft *= 2
	}
	if nfft > n {
		nfft = n
	}
	return nfft
}

// padTail zero-extends samples to at least nfft without touching the input.
func padTail(samples []float64, nfft int) []float64 {
	if len(samples) >= nfft {
		return samples
	}
	buf := make([]float64, nfft)
	copy(buf, samples)
	return buf
}

// hopLength spreads the analysis frames across the image width.
func hopLength(n, nfft, width int) int {
	span := width - 1
	if span < 1 {
		span = 1
	}
	hop := (n - nfft) / span
	if hop < 1 {
		hop = 1
	}
	return hop
}

func hann(n int) []float64 {
	if n < 2 {
		return []float64{1}
	}
	return window.Hann(n)
}

// powerSpectrum keeps the squared magnitudes of the non-negative frequency
// bins of each frame.
func powerSpectrum(frames [][]complex128, nfft int) [][]float64 {
	bins := nfft/2 + 1
	power := make([][]float64, len(frames))
	for i, frame := range frames {
		row := make([]float64, bins)
		for k := 0; k < bins && k < len(frame); k++ {
			re := real(frame[k])
			im := imag(frame[k])
			row[k] = re*re + im*im
		}
		power[i] = row
	}
	return power
}

// toDecibels log-compresses the matrix in place with a silence floor.
func toDecibels(m [][]float64) [][]float64 {
	for _, row := range m {
		for i, v := range row {
			if v < 1e-12 {
				v = 1e-12
			}
			row[i] = 10 * math.Log10(v)
		}
	}
	return m
}

func matrixMax(m [][]float64) float64 {
	max := math.Inf(-1)
	for _, row := range m {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// resampleTime linearly interpolates each mel band from frame count onto
// width columns.
func resampleTime(m [][]float64, width int) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		frames := len(row)
		dst := make([]float64, width)
		span := width - 1
		if span < 1 {
			span = 1
		}
		for x := 0; x < width; x++ {
			pos := float64(x) * float64(frames-1) / float64(span)
			j := int(pos)
			frac := pos - float64(j)
			jn := j + 1
			if jn > frames-1 {
				jn = frames - 1
			}
			dst[x] = (1-frac)*row[j] + frac*row[jn]
		}
		out[i] = dst
	}
	return out
}

// warpRows maps mel bands onto image rows with a quadratic frequency warp,
// putting low bands at the bottom and smoothing each row over its band
// neighbors. m is indexed [band][column].
func warpRows(m [][]float64, height int) [][]float64 {
	maxBin := len(m) - 1
	width := 0
	if maxBin >= 0 {
		width = len(m[0])
	}
	span := height - 1
	if span < 1 {
		span = 1
	}
	rows := make([][]float64, height)
	for y := 0; y < height; y++ {
		frac := 1 - float64(y)/float64(span)
		idx := frac * frac * float64(maxBin)
		i0 := int(idx)
		alpha := idx - float64(i0)
		i1 := i0 + 1
		if i1 > maxBin {
			i1 = maxBin
		}
		il := i0 - 1
		if il < 0 {
			il = 0
		}
		ir := i1 + 1
		if ir > maxBin {
			ir = maxBin
		}
		row := make([]float64, width)
		for x := 0; x < width; x++ {
			base := (1-alpha)*m[i0][x] + alpha*m[i1][x]
			left := (1-alpha)*m[il][x] + alpha*m[i0][x]
			right := (1-alpha)*m[i1][x] + alpha*m[ir][x]
			row[x] = 0.5*base + 0.25*left + 0.25*right
		}
		rows[y] = row
	}
	return rows
}

func canvas(dc *gg.Context) *image.RGBA {
	return dc.Image().(*image.RGBA)
}
