package spectrogram

import "math"

const melBreakFrequency = 700.0
const melHighFrequencyQ = 1127.0

func hzToMel(hz float64) float64 {
	return melHighFrequencyQ * math.Log(1+hz/melBreakFrequency)
}

func melToHz(mel float64) float64 {
	return melBreakFrequency * (math.Exp(mel/melHighFrequencyQ) - 1)
}

// melFilterbank builds numMels triangular filters over the nfft/2+1 FFT
// bins, with band edges spaced evenly on the mel scale between fmin and
// fmax. Filters too narrow to cover a bin stay empty.
func melFilterbank(numMels, nfft int, sampleRate, fmin, fmax float64) [][]float64 {
	bins := nfft/2 + 1
	freqs := make([]float64, bins)
	for k := range freqs {
		freqs[k] = sampleRate * float64(k) / float64(nfft)
	}

	points := make([]float64, numMels+2)
	melLo := hzToMel(fmin)
	melHi := hzToMel(fmax)
	for i := range points {
		points[i] = melToHz(melLo + (melHi-melLo)*float64(i)/float64(numMels+1))
	}

	bank := make([][]float64, numMels)
	for m := range bank {
		filter := make([]float64, bins)
		f0, f1, f2 := points[m], points[m+1], points[m+2]
		for k, f := range freqs {
			if f <= f0 || f >= f2 {
				continue
			}
			if f <= f1 {
				if d := f1 - f0; d > 0 {
					filter[k] = (f - f0) / d
				}
			} else {
				if d := f2 - f1; d > 0 {
					filter[k] = (f2 - f) / d
				}
			}
		}
		bank[m] = filter
	}
	return bank
}

// applyFilterbank collapses the [frame][bin] power matrix into a
// [band][frame] mel energy matrix. Only the nonzero span of each filter is
// visited.
func applyFilterbank(bank [][]float64, power [][]float64) [][]float64 {
	mel := make([][]float64, len(bank))
	for m, filter := range bank {
		lo, hi := filterSpan(filter)
		row := make([]float64, len(power))
		for t, frame := range power {
			sum := 0.0
			for k := lo; k < hi; k++ {
				sum += filter[k] * frame[k]
			}
			row[t] = sum
		}
		mel[m] = row
	}
	return mel
}

func filterSpan(filter []float64) (lo, hi int) {
	lo = len(filter)
	for k, w := range filter {
		if w != 0 {
			if k < lo {
				lo = k
			}
			hi = k + 1
		}
	}
	if hi < lo {
		return 0, 0
	}
	return lo, hi
}
