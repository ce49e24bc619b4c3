// Command audioviz generates waveform and mel spectrogram images (PNG) from audio files.
//
// In single file mode one audio file is rendered; in directory mode the root
// is scanned recursively and every matching audio file is rendered in turn,
// with per-file failures logged and skipped. Images land next to their source
// file unless an output directory or explicit output paths are given, and
// existing images are kept unless --force is set.
//
// Usage:
//
//	audioviz --file song.mp3
//	audioviz --root ./music --type spectrogram --output-dir ./images
//
// The output PNG files are named <stem>.waveform.png and <stem>.spectrogram.png
//
// Supported input formats: .wav, .flac, .mp3, .ogg
package main
