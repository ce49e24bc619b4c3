package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/soundglass/audioviz/visuals"
)

var (
	flagFile           string
	flagRoot           string
	flagType           string
	flagOutputDir      string
	flagWaveformOut    string
	flagSpectrogramOut string
	flagExts           []string
	flagForce          bool
)

var rootCmd = &cobra.Command{
	Use:          "audioviz",
	Short:        "Generate waveform and mel spectrogram images from audio files",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagFile, "file", "i", "", "process a single audio file")
	rootCmd.Flags().StringVarP(&flagRoot, "root", "r", ".", "directory to scan for audio files")
	rootCmd.Flags().StringVar(&flagType, "type", visuals.KindBoth, "image type: waveform, spectrogram or both")
	rootCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "directory for generated images (default: next to the audio file)")
	rootCmd.Flags().StringVar(&flagWaveformOut, "waveform-output", "", "explicit waveform image path (requires --file)")
	rootCmd.Flags().StringVar(&flagSpectrogramOut, "spectrogram-output", "", "explicit spectrogram image path (requires --file)")
	rootCmd.Flags().StringSliceVar(&flagExts, "ext", visuals.DefaultExts, "audio extensions to scan for")
	rootCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "regenerate images that already exist")
}

func run(cmd *cobra.Command, args []string) error {
	switch flagType {
	case visuals.KindWaveform, visuals.KindSpectrogram, visuals.KindBoth:
	default:
		return fmt.Errorf("invalid --type %q: want waveform, spectrogram or both", flagType)
	}
	if flagFile == "" && (flagWaveformOut != "" || flagSpectrogramOut != "") {
		return fmt.Errorf("custom output paths require --file")
	}

	gen := visuals.NewGenerator()
	gen.Kind = flagType
	gen.OutputDir = flagOutputDir
	gen.WaveformOut = flagWaveformOut
	gen.SpectrogramOut = flagSpectrogramOut
	gen.Force = flagForce
	gen.Exts = flagExts
	if os.Getenv(visuals.PlaceholderEnv) == "1" {
		gen.Renderer = visuals.PlaceholderRenderer{}
	}

	if flagFile != "" {
		if err := gen.File(flagFile); err != nil {
			log.Error().Err(err).Str("file", flagFile).Msg("generation failed")
			os.Exit(1)
		}
		return nil
	}
	if code := gen.Directory(flagRoot); code != 0 {
		os.Exit(code)
	}
	return nil
}

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
