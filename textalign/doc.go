// SPDX-License-Identifier: MIT

// Package textalign builds word-level alignment tables between two interval
// tiers.
//
// 🚀 What is an alignment table?
//
//	Each tier is projected to the sequence of its labelled intervals. An
//	edit-distance path between the two sequences is then turned into one
//	row per step, carrying both sides' interval index, label and times:
//
//	  op  target             source
//	  " " 1 "the" [0.2,0.4)  0 "the" [0.0,0.3)
//	  "s" 3 "cat" [0.4,0.9)  2 "cap" [0.3,0.7)
//	  "i" 5 "sat" [0.9,1.3)  -
//
// ✨ Key features:
//   - unlabelled intervals are skipped, but rows still point at the original
//     interval indices
//   - labels are compared after Unicode NFC normalization (golang.org/x/text),
//     so composed and decomposed spellings match
//   - any editdist.Costs may be supplied; unit costs by default
//
// Rows of an absent side have Interval -1, an empty Text and NaN times.
package textalign
