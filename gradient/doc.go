// Package gradient provides the color ramp used to paint spectrogram energy.
//
// A Gradient maps normalized intensities in [0,1] onto RGB colors through a
// fixed stop table with perceptual shaping. It supports:
//   - Piecewise-linear interpolation across ordered (position, color) stops
//   - Gamma shaping that expands low intensities before interpolation
//   - A highlight boost that steepens contrast above a pivot intensity
//   - Safe handling of NaN and infinite inputs from degenerate log scaling
package gradient
