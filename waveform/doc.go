// Package waveform renders mono PCM samples to a min/max envelope image.
//
// Each output column covers a contiguous slice of the input and is painted
// as a vertical line between the slice's minimum and maximum amplitude,
// scaled so the loudest sample in the clip reaches the image edge:
//
//   - fixed 800x200 canvas, white on black
//   - per-column min/max envelope, peak normalized
//   - silence collapses to the horizontal mid line
package waveform
