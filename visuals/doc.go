// Package visuals orchestrates image generation around the rendering
// packages.
//
//   - resolves output paths from the audio path or explicit overrides
//   - skips files whose outputs all exist, unless forced
//   - walks directory trees for batch runs, continuing past per-file
//     failures
//   - swaps real rendering for a fixed placeholder image on demand
package visuals
