// Package audio decodes audio files to mono float64 sample vectors.
//
// Supported formats are WAV, FLAC, MP3 and Ogg Vorbis, dispatched on the
// file extension. Multi-channel input is mixed down by averaging. The
// package also writes mono 16-bit WAV, which the tests use to build
// fixtures.
package audio
