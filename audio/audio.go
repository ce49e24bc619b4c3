package audio

import "errors"
import "fmt"
import "path/filepath"
import "strings"

// ErrUnsupportedFormat reports a file extension no decoder is registered for.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Load decodes an audio file into a mono sample vector and its sample rate.
// The decoder is picked from the file extension.
func Load(path string) ([]float64, int, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return loadwav(path)
	case ".flac":
		return loadflac(path)
	case ".mp3":
		return loadmp3(path)
	case ".ogg", ".oga":
		return loadogg(path)
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadWav loads a WAV file to a mono sample vector and its sample rate.
func LoadWav(path string) ([]float64, int, error) {
	return loadwav(path)
}

// LoadFlac loads a FLAC file to a mono sample vector and its sample rate.
func LoadFlac(path string) ([]float64, int, error) {
	return loadflac(path)
}

// LoadMP3 loads an MP3 file to a mono sample vector and its sample rate.
func LoadMP3(path string) ([]float64, int, error) {
	return loadmp3(path)
}

// LoadOgg loads an Ogg Vorbis file to a mono sample vector and its sample rate.
func LoadOgg(path string) ([]float64, int, error) {
	return loadogg(path)
}

// SaveWav writes a mono sample vector as a 16-bit PCM WAV file.
func SaveWav(path string, samples []float64, sampleRate int) error {
	return dumpwav(path, samples, sampleRate)
}
