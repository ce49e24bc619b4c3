// Package spectrogram renders mono PCM samples to a mel spectrogram image.
//
// The pipeline follows the usual analysis chain:
//
//   - Hann-windowed STFT with a power-of-two FFT size picked from the
//     clip length, hop chosen so the frames span the image width
//   - triangular mel filterbank over the power spectrum
//   - log compression to decibels with a bounded dynamic range
//   - per-row time resampling and a perceptual frequency warp that
//     stretches low frequencies toward the bottom of the image
//   - color mapping through the gradient package
package spectrogram
