// SPDX-License-Identifier: MIT

// Package audio provides the mono sample buffer used by the aligner together
// with the signal-level helpers the pipeline needs: part extraction, frame
// intensity and feature contours, and an energy based silence trimmer.
//
// ✨ Key features:
//   - Sound keeps its absolute start time, so parts extracted from a long
//     recording stay on the recording's time axis
//   - frame analysis with a configurable window width and time step
//   - EnergyTrimmer removes leading and trailing silence, with minimum
//     silence and sounding durations to ignore short dips and clicks
//
// Nothing in this package decodes or encodes audio files.
package audio
