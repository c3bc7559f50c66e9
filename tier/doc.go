// SPDX-License-Identifier: MIT

// Package tier defines the annotation data model used across tieralign:
// time domains, interval tiers, point tiers and annotation documents.
//
// 🚀 What is a tier?
//
//	An interval tier is an ordered, gap-free sequence of labelled spans that
//	covers its domain exactly:
//
//	  [0.0 ─ a ─ 0.4)[0.4 ─ "" ─ 1.1)[1.1 ─ b ─ 2.0)
//
//	A point tier is an ordered sequence of time-stamped marks with no
//	coverage requirement. A Document groups tiers that share one Domain.
//
// ✨ Key features:
//   - InsertBoundary: the single primitive that changes interval structure,
//     suppressing boundaries closer than a caller-supplied precision.
//   - Builder: left-to-right construction of a tier on top of InsertBoundary.
//   - Label queries (LabelInfo, MatchingSpans, StartOfFirst, EndOfLast).
//   - Document helpers: ExtractPart, WithEdges, Shift, Concat.
//
// Values are snapshots: every helper that returns a tier or document returns
// a fresh copy and leaves its inputs untouched. Only InsertBoundary (and the
// Builder wrapping it) mutates, and it is meant for freshly created output
// tiers.
//
// Errors:
//
//	ErrDomainMismatch  - two tiers/documents expected to share a domain do not.
//	ErrInvalidTierKind - an interval tier was expected and a point tier found, or vice versa.
//	ErrInvalidRange    - index out of bounds, broken coverage or empty selection.
//	ErrEmptyInput      - nothing to work on (no text, no labelled interval).
package tier
