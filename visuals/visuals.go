package visuals

import "fmt"
import "os"
import "path/filepath"
import "strings"

import "github.com/rs/zerolog/log"

// Image kinds selectable on a Generator.
const (
	KindWaveform    = "waveform"
	KindSpectrogram = "spectrogram"
	KindBoth        = "both"
)

// DefaultExts lists the audio extensions scanned in directory mode.
var DefaultExts = []string{".flac", ".mp3", ".ogg", ".wav"}

// Outputs names the image files one audio file maps to. Empty fields are
// not requested.
type Outputs struct {
	Waveform    string
	Spectrogram string
}

func (o Outputs) paths() []string {
	var ps []string
	if o.Waveform != "" {
		ps = append(ps, o.Waveform)
	}
	if o.Spectrogram != "" {
		ps = append(ps, o.Spectrogram)
	}
	return ps
}

func (o Outputs) allExist() bool {
	ps := o.paths()
	if len(ps) == 0 {
		return false
	}
	for _, p := range ps {
		if !exists(p) {
			return false
		}
	}
	return true
}

// Generator turns audio files into waveform and spectrogram images.
type Generator struct {
	// Kind selects which images to produce, one of KindWaveform,
	// KindSpectrogram or KindBoth.
	Kind string

	// OutputDir replaces the per-file default of writing next to the
	// audio file. WaveformOut and SpectrogramOut override single output
	// paths outright.
	OutputDir      string
	WaveformOut    string
	SpectrogramOut string

	// Force regenerates images that already exist.
	Force bool

	// Exts filters directory scans.
	Exts []string

	Renderer Renderer
}

// NewGenerator creates a Generator producing both images with the default
// renderer.
func NewGenerator() *Generator {
	return &Generator{
		Kind:     KindBoth,
		Exts:     DefaultExts,
		Renderer: NewPNGRenderer(),
	}
}

// OutputPaths resolves where the images for audioPath go. Explicit output
// paths win over OutputDir, which wins over the audio file's directory.
func (g *Generator) OutputPaths(audioPath string) Outputs {
	base := g.OutputDir
	if base == "" {
		base = filepath.Dir(audioPath)
	}
	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	var out Outputs
	if g.Kind == KindWaveform || g.Kind == KindBoth {
		out.Waveform = filepath.Join(base, stem+".waveform.png")
		if g.WaveformOut != "" {
			out.Waveform = g.WaveformOut
		}
	}
	if g.Kind == KindSpectrogram || g.Kind == KindBoth {
		out.Spectrogram = filepath.Join(base, stem+".spectrogram.png")
		if g.SpectrogramOut != "" {
			out.Spectrogram = g.SpectrogramOut
		}
	}
	return out
}

// File generates the requested images for one audio file. Files whose
// outputs all exist are skipped unless Force is set.
func (g *Generator) File(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("audio file not found: %s", abs)
	}

	out := g.OutputPaths(abs)
	if len(out.paths()) == 0 {
		log.Info().Msg("no visualization type selected")
		return nil
	}
	if !g.Force && out.allExist() {
		log.Info().Str("file", abs).Msg("outputs exist, skipping")
		return nil
	}
	return g.renderer().RenderFile(abs, out, g.Force)
}

// Directory generates images for every audio file under root whose
// extension is in Exts. Failures are logged and the scan continues. The
// returned code is 0 when everything succeeded and 1 otherwise, matching
// a process exit code.
func (g *Generator) Directory(root string) int {
	abs, err := filepath.Abs(root)
	if err != nil {
		log.Error().Err(err).Str("root", root).Msg("resolve root")
		return 1
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		log.Error().Str("root", abs).Msg("root directory not found")
		return 1
	}

	files, err := listAudioFiles(abs, g.Exts)
	if err != nil {
		log.Error().Err(err).Str("root", abs).Msg("directory scan failed")
		return 1
	}
	if len(files) == 0 {
		log.Info().Str("root", abs).Msg("no audio files found")
		return 0
	}

	code := 0
	for _, f := range files {
		if err := g.File(f); err != nil {
			log.Error().Err(err).Str("file", f).Msg("generation failed")
			code = 1
		}
	}
	return code
}

func (g *Generator) renderer() Renderer {
	if g.Renderer == nil {
		return NewPNGRenderer()
	}
	return g.Renderer
}
