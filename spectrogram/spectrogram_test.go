package spectrogram

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func sineWave(freq float64, rate, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(rate))
	}
	return out
}

func TestChooseNFFT(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{-5, 1024},
		{0, 1024},
		{1, 1},
		{500, 500},
		{1023, 1023},
		{1024, 1024},
		{1025, 1024},
		{2048, 2048},
		{2049, 2048},
		{4095, 2048},
		{4096, 4096},
		{100000, 4096},
	}
	for _, tt := range tests {
		if got := chooseNFFT(tt.n); got != tt.want {
			t.Errorf("chooseNFFT(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestHopLength(t *testing.T) {
	tests := []struct {
		n, nfft, width, want int
	}{
		{88200, 4096, 800, 105},
		{2048, 2048, 800, 1},
		{4096, 1024, 2, 3072},
		{1024, 1024, 1, 1},
	}
	for _, tt := range tests {
		if got := hopLength(tt.n, tt.nfft, tt.width); got != tt.want {
			t.Errorf("hopLength(%d, %d, %d) = %d, want %d", tt.n, tt.nfft, tt.width, got, tt.want)
		}
	}
}

func TestHann(t *testing.T) {
	w := hann(16)
	if len(w) != 16 {
		t.Fatalf("hann(16) length = %d", len(w))
	}
	if math.Abs(w[0]) > 1e-12 {
		t.Errorf("hann(16)[0] = %v, want 0", w[0])
	}
	if mid := hann(17)[8]; math.Abs(mid-1) > 1e-12 {
		t.Errorf("hann(17) center = %v, want 1", mid)
	}
	if w := hann(1); len(w) != 1 || w[0] != 1 {
		t.Errorf("hann(1) = %v, want [1]", w)
	}
}

func TestPadTail(t *testing.T) {
	s := []float64{1, 2, 3}
	got := padTail(s, 5)
	if len(got) != 5 {
		t.Fatalf("padTail length = %d, want 5", len(got))
	}
	for i, v := range []float64{1, 2, 3, 0, 0} {
		if got[i] != v {
			t.Errorf("padTail[%d] = %v, want %v", i, got[i], v)
		}
	}
	if len(s) != 3 {
		t.Errorf("input length changed to %d", len(s))
	}
	if short := padTail(s, 2); len(short) != 3 {
		t.Errorf("padTail with small nfft length = %d, want 3", len(short))
	}
}

func TestToDecibels(t *testing.T) {
	m := [][]float64{{1, 0, 0.001}}
	toDecibels(m)
	want := []float64{0, -120, -30}
	for i, v := range want {
		if math.Abs(m[0][i]-v) > 1e-9 {
			t.Errorf("toDecibels[%d] = %v, want %v", i, m[0][i], v)
		}
	}
}

func TestMatrixMax(t *testing.T) {
	if got := matrixMax([][]float64{{-5, 3}, {2, -7}}); got != 3 {
		t.Errorf("matrixMax = %v, want 3", got)
	}
	if got := matrixMax(nil); !math.IsInf(got, -1) {
		t.Errorf("matrixMax(nil) = %v, want -Inf", got)
	}
}

func TestResampleTime(t *testing.T) {
	got := resampleTime([][]float64{{0, 10}}, 3)
	for i, v := range []float64{0, 5, 10} {
		if math.Abs(got[0][i]-v) > 1e-12 {
			t.Errorf("resampled[%d] = %v, want %v", i, got[0][i], v)
		}
	}

	single := resampleTime([][]float64{{7}}, 4)
	for i, v := range single[0] {
		if v != 7 {
			t.Errorf("single frame column %d = %v, want 7", i, v)
		}
	}
}

// The top output row must hold the highest band and the bottom row the
// lowest, with the quadratic warp compressing the top.
func TestWarpRowsOrientation(t *testing.T) {
	rows := warpRows([][]float64{{0}, {10}, {20}}, 3)
	want := []float64{17.5, 6.25, 2.5}
	for y, v := range want {
		if math.Abs(rows[y][0]-v) > 1e-12 {
			t.Errorf("row %d = %v, want %v", y, rows[y][0], v)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	s := NewSpectrogram()
	want := image.Rect(0, 0, 800, 200)
	for _, n := range []int{1, 1000, 44100} {
		img := s.Render(make([]float64, n), 44100)
		if img.Bounds() != want {
			t.Errorf("Render with %d samples: bounds %v, want %v", n, img.Bounds(), want)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	img := NewSpectrogram().Render(nil, 44100)
	black := color.RGBA{0, 0, 0, 255}
	for _, p := range []image.Point{{0, 0}, {400, 100}, {799, 199}} {
		if got := img.RGBAAt(p.X, p.Y); got != black {
			t.Errorf("pixel %v = %v, want black", p, got)
		}
	}
}

// Silence normalizes to the bottom of the ramp everywhere.
func TestRenderSilence(t *testing.T) {
	img := NewSpectrogram().Render(make([]float64, 22050), 22050)
	floor := color.RGBA{0, 0, 3, 255}
	for y := 0; y < 200; y += 50 {
		for x := 0; x < 800; x += 50 {
			if got := img.RGBAAt(x, y); got != floor {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, floor)
			}
		}
	}
}

func TestRenderSineBand(t *testing.T) {
	img := NewSpectrogram().Render(sineWave(1000, 44100, 2*44100), 44100)
	row := brightestRow(img, 400)
	if row < 94 || row > 104 {
		t.Errorf("1 kHz band at row %d, want near 99", row)
	}
}

func TestRenderFrequencyOrientation(t *testing.T) {
	low := brightestRow(NewSpectrogram().Render(sineWave(100, 44100, 2*44100), 44100), 400)
	high := brightestRow(NewSpectrogram().Render(sineWave(8000, 44100, 2*44100), 44100), 400)
	if high >= low {
		t.Fatalf("8 kHz row %d not above 100 Hz row %d", high, low)
	}
	if high < 24 || high > 36 {
		t.Errorf("8 kHz band at row %d, want near 30", high)
	}
	if low < 153 || low > 169 {
		t.Errorf("100 Hz band at row %d, want near 161", low)
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	samples := sineWave(440, 22050, 22050)
	orig := make([]float64, len(samples))
	copy(orig, samples)

	NewSpectrogram().Render(samples, 22050)

	for i := range samples {
		if samples[i] != orig[i] {
			t.Fatalf("sample %d changed from %v to %v", i, orig[i], samples[i])
		}
	}
}

func brightestRow(img *image.RGBA, x int) int {
	best, bestLum := 0, -1.0
	for y := 0; y < img.Bounds().Dy(); y++ {
		c := img.RGBAAt(x, y)
		lum := 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
		if lum > bestLum {
			best, bestLum = y, lum
		}
	}
	return best
}

func BenchmarkRender(b *testing.B) {
	samples := sineWave(440, 22050, 22050)
	s := NewSpectrogram()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Render(samples, 22050)
	}
}
