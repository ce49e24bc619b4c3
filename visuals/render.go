package visuals

import "encoding/base64"
import "fmt"
import "os"
import "path/filepath"

import "github.com/rs/zerolog/log"

import "github.com/soundglass/audioviz/audio"
import "github.com/soundglass/audioviz/spectrogram"
import "github.com/soundglass/audioviz/waveform"

// PlaceholderEnv switches generation to fixed placeholder images when set
// to "1", for pipelines that need the files but not the pixels.
const PlaceholderEnv = "AUDIOVIZ_PLACEHOLDER"

// 1x1 transparent PNG.
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mP8/x8AAusB9YnpWj4AAAAASUVORK5CYII="

// Renderer produces the output images for one audio file.
type Renderer interface {
	RenderFile(path string, out Outputs, force bool) error
}

// PNGRenderer decodes the audio and renders real images.
type PNGRenderer struct {
	Waveform    *waveform.Waveform
	Spectrogram *spectrogram.Spectrogram
}

// NewPNGRenderer creates a renderer with the default image settings.
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{
		Waveform:    waveform.NewWaveform(),
		Spectrogram: spectrogram.NewSpectrogram(),
	}
}

// RenderFile loads path once and writes each requested image that is
// missing or forced.
func (r *PNGRenderer) RenderFile(path string, out Outputs, force bool) error {
	log.Info().Str("file", path).Msg("loading audio")
	samples, rate, err := audio.Load(path)
	if err != nil {
		return err
	}

	if out.Waveform != "" {
		if force || !exists(out.Waveform) {
			log.Info().Str("output", out.Waveform).Msg("rendering waveform")
			if err := EncodePNG(r.Waveform.Render(samples), out.Waveform); err != nil {
				return fmt.Errorf("write waveform: %w", err)
			}
		} else {
			log.Info().Str("output", out.Waveform).Msg("waveform exists, skipping")
		}
	}
	if out.Spectrogram != "" {
		if force || !exists(out.Spectrogram) {
			log.Info().Str("output", out.Spectrogram).Msg("rendering spectrogram")
			if err := EncodePNG(r.Spectrogram.Render(samples, rate), out.Spectrogram); err != nil {
				return fmt.Errorf("write spectrogram: %w", err)
			}
		} else {
			log.Info().Str("output", out.Spectrogram).Msg("spectrogram exists, skipping")
		}
	}
	return nil
}

// PlaceholderRenderer writes a fixed 1x1 PNG for every requested output
// without decoding anything.
type PlaceholderRenderer struct{}

func (PlaceholderRenderer) RenderFile(path string, out Outputs, force bool) error {
	raw, err := base64.StdEncoding.DecodeString(placeholderPNG)
	if err != nil {
		return err
	}
	for _, p := range out.paths() {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(p, raw, 0o644); err != nil {
			return err
		}
		log.Info().Str("output", p).Msg("placeholder written")
	}
	return nil
}
