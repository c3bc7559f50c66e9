// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping (DTW) alignments between
// sequences and turns the alignment of two sounds into a time map that
// re-times annotations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance. Here it pairs the frames of a
//	recording with the frames of a synthesized rendition of the same text,
//	so the synthesizer's own word and phoneme boundaries can be carried
//	over to the recording.
//
// ✨ Key features:
//   - scalar series (DTW) and feature-vector sequences (Vectors)
//   - full-matrix mode with path recovery, rolling mode for distance only
//   - optional band around the diagonal joining both ends
//   - four slope-constraint classes, from unconstrained to 2/3 < slope < 3/2
//   - slope penalty on unequal steps
//   - Warper: frame features of two sounds, DTW, and a Mapping whose
//     Retime moves every boundary and point of a document
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	opts.Constraint = dtw.SlopeHalf
//	dist, path, err := dtw.DTW(a, b, &opts)
//
//	m, err := (&dtw.Warper{}).Warp(recording, synthesis, dtw.DefaultWarpParams())
//	aligned, err := m.Retime(synthesisDoc, recording.Dx())
//
// Performance:
//
//   - Time:   O(N·M·S) for S steps in the slope pattern
//   - Memory: O(N·M) (FullMatrix) or O(M) (Rolling)
package dtw
