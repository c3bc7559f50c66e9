// SPDX-License-Identifier: MIT

// Package cutpatch implements the cut/patch algebra over annotation tiers.
//
// A cut removes every span of a reference interval tier that carries a
// given label from all tiers of a document, compressing time; a patch is
// the inverse and re-inserts duration at the matching spans of a longer
// reference tier.
//
//	original    [0 ── a ── 1)[1 ── b ── 2)[2 ── c ── 3)
//	reference   [0 ── x ── 1)[1 ──── "" ──────────── 3)
//	cut "x"     [0 ── b ── 1)[1 ── c ── 2)
//	patch "x"   [0 ── "" ─ 1)[1 ── b ── 2)[2 ── c ── 3)
//
// ✨ Key features:
//   - CutIntervals / CutPoints / CutDocument: remove labelled spans.
//   - PatchIntervals / PatchPoints / PatchDocument: re-insert labelled spans.
//   - Two interval patch variants: the default "no boundaries" variant
//     lengthens the neighbouring interval for interior spans and inserts
//     empty intervals only at the very start and end; the general variant
//     (WithBoundaries) inserts an empty interval for every span.
//
// All comparisons use the caller-supplied precision eps (typically one
// sample period). Inputs are read-only; outputs are freshly built through
// tier.Builder, so every output interval tier satisfies the coverage
// invariant.
//
// Round trip: cutting spans that sit at the start and/or end of a tier and
// patching them back with the default variant restores the tier's boundaries;
// for interior spans the general variant does. Labels of intervals that were
// consumed entirely come back empty.
package cutpatch
