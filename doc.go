// SPDX-License-Identifier: MIT

// Package tieralign times symbolic annotations against speech: interval and
// point tiers are cut, patched, compared and carried across a warp between a
// recording and a synthesized rendition of its transcript.
//
// 🚀 What is in the box?
//
//	A small set of focused packages:
//		• tier: interval tiers, point tiers, documents, boundary insertion
//		• cutpatch: remove labelled spans from every tier and put them back
//		• editdist: weighted edit distance with a deterministic path
//		• textalign: word-by-word alignment table of two tiers
//		• audio: sounds, frame features, energy-based silence trimming
//		• dtw: feature DTW with slope classes, warp maps and re-timing
//		• align: the forced-alignment pipeline tying it all together
//
// ✨ Why tieralign?
//
//   - Durations add up: cut then patch restores the original tier
//   - Every time comparison takes an explicit precision
//   - Inputs are never mutated; results are fresh values
//   - Whole tiers are aligned interval by interval in parallel
//
// Quick picture of a cut:
//
//	A:  |  a  |  b  |  c  |
//	B:  |  x  |           |
//	    cut(A, B, "x") → |  b  |  c  |
//
// The synthesizer is always yours: plug any text-to-speech engine into
// align.Synthesizer.
//
//	go get github.com/katalvlaran/tieralign
package tieralign
