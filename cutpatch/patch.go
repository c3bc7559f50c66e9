// SPDX-License-Identifier: MIT

package cutpatch

import (
	"fmt"

	"github.com/katalvlaran/tieralign/tier"
)

// PatchIntervals re-inserts the spans of b labelled label into a, producing a
// tier over b's domain ("no boundaries" variant).
//
// Implementation:
//   - Stage 1: validate that a is not longer than b.
//   - Stage 2: fold b's matching spans into per-interval duration increments
//     (see patchIntervals); the run of adjacent spans at the very start or
//     end of b goes into a leading or trailing slot instead.
//   - Stage 3: rebuild over b's domain, emitting an empty interval for a
//     non-zero leading/trailing slot.
//
// Errors:
//   - tier.ErrDomainMismatch if a is longer than b.
//
// Complexity:
//   - Time O(n + m) plus O(n) per boundary insert, Space O(n).
func PatchIntervals(a, b *tier.IntervalTier, label string, eps float64) (*tier.IntervalTier, error) {
	if a.Duration() > b.Duration()+eps {
		return nil, fmt.Errorf("PatchIntervals(%q, %q): %v longer than %v: %w", a.Name, b.Name, a.Domain, b.Domain, tier.ErrDomainMismatch)
	}

	return patchIntervals(a, b.Domain, b.MatchingSpans(label), eps), nil
}

// PatchIntervalsWithBoundaries is the general variant of PatchIntervals: every
// patch span becomes its own empty-labelled interval, splitting the interval
// of a it falls into. It restores interior boundaries removed by CutIntervals.
//
// Errors:
//   - tier.ErrDomainMismatch if a is longer than b.
func PatchIntervalsWithBoundaries(a, b *tier.IntervalTier, label string, eps float64) (*tier.IntervalTier, error) {
	if a.Duration() > b.Duration()+eps {
		return nil, fmt.Errorf("PatchIntervalsWithBoundaries(%q, %q): %v longer than %v: %w", a.Name, b.Name, a.Domain, b.Domain, tier.ErrDomainMismatch)
	}

	return patchIntervalsWithBoundaries(a, b.Domain, b.MatchingSpans(label), eps), nil
}

// PatchPoints moves the points of a onto b's domain, shifting each point by
// the duration of the patch spans that precede it.
//
// Errors:
//   - tier.ErrDomainMismatch if a is longer than b.
func PatchPoints(a *tier.PointTier, b *tier.IntervalTier, label string, eps float64) (*tier.PointTier, error) {
	if a.Domain.Duration() > b.Duration()+eps {
		return nil, fmt.Errorf("PatchPoints(%q, %q): %v longer than %v: %w", a.Name, b.Name, a.Domain, b.Domain, tier.ErrDomainMismatch)
	}

	return patchPoints(a, b.Domain, b.MatchingSpans(label), eps), nil
}

// PatchDocument applies the interval and point patchers to every tier of doc,
// expanding its domain to b's.
//
// Behavior highlights:
//   - If b carries no patch duration, or doc is already at least as long as
//     b, the document is returned as a plain copy.
//   - WithBoundaries selects PatchIntervalsWithBoundaries for interval tiers.
//
// Errors:
//   - tier.ErrDomainMismatch if a tier of doc does not share doc's domain.
func PatchDocument(doc *tier.Document, b *tier.IntervalTier, label string, eps float64, opts ...Option) (*tier.Document, error) {
	o := gatherOptions(opts)
	patches := b.MatchingSpans(label)
	if totalDuration(patches) <= 0 || doc.Duration() >= b.Duration() {
		return doc.Clone(), nil
	}
	if err := checkTierDomains(doc, eps); err != nil {
		return nil, fmt.Errorf("PatchDocument(%q): %w", b.Name, err)
	}

	out := &tier.Document{Domain: b.Domain, Tiers: make([]tier.Tier, len(doc.Tiers))}
	for i, t := range doc.Tiers {
		switch tt := t.(type) {
		case *tier.IntervalTier:
			if o.withBoundaries {
				out.Tiers[i] = patchIntervalsWithBoundaries(tt, b.Domain, patches, eps)
			} else {
				out.Tiers[i] = patchIntervals(tt, b.Domain, patches, eps)
			}
		case *tier.PointTier:
			out.Tiers[i] = patchPoints(tt, b.Domain, patches, eps)
		}
	}

	return out, nil
}

// patchIntervals is the "no boundaries" fold.
//
// shift is the offset of the cursor interval's start in reference time: the
// domain offset plus the leading slot plus everything added to intervals
// left of the cursor. An interior span is credited to the first interval
// whose shifted extent contains the span's start; a tie on a boundary goes to
// the left interval.
func patchIntervals(a *tier.IntervalTier, ref tier.Domain, patches []tier.Interval, eps float64) *tier.IntervalTier {
	n := len(a.Intervals)
	grow := make([]float64, n)
	var lead, trail float64
	shift := ref.Xmin - a.Domain.Xmin

	// Adjacent spans touching either end all go to the edge slots.
	first, last := 0, len(patches)-1
	for first <= last && tier.Close(patches[first].Xmin, ref.Xmin+lead, eps) {
		lead += patches[first].Duration()
		first++
	}
	for last >= first && tier.Close(patches[last].Xmax, ref.Xmax-trail, eps) {
		trail += patches[last].Duration()
		last--
	}
	shift += lead

	k := 0
	for _, p := range patches[first : last+1] {
		for k < n {
			iv := a.Intervals[k]
			lo, hi := iv.Xmin+shift, iv.Xmax+shift+grow[k]
			if p.Xmin > lo-eps && p.Xmin < hi+eps {
				grow[k] += p.Duration()
				break
			}
			shift += grow[k]
			k++
		}
	}

	b := tier.NewBuilder(a.Name, ref, eps)
	t := ref.Xmin + lead
	if lead > 0 {
		b.Emit(t, "")
	}
	for i, iv := range a.Intervals {
		t += iv.Duration() + grow[i]
		b.Emit(t, iv.Text)
	}
	if trail > 0 {
		t += trail
		b.Emit(t, "")
	}

	return b.Tier()
}

// patchIntervalsWithBoundaries walks the reference spans and a's intervals
// together in reference time. rem is what is left of the cursor interval;
// an interval straddling a patch start is split there and resumed after the
// patch with the same label.
func patchIntervalsWithBoundaries(a *tier.IntervalTier, ref tier.Domain, patches []tier.Interval, eps float64) *tier.IntervalTier {
	n := len(a.Intervals)
	b := tier.NewBuilder(a.Name, ref, eps)
	t := ref.Xmin
	k := 0
	rem := 0.0
	if n > 0 {
		rem = a.Intervals[0].Duration()
	}
	next := func() {
		k++
		if k < n {
			rem = a.Intervals[k].Duration()
		}
	}

	for _, p := range patches {
		for k < n && t+rem <= p.Xmin+eps {
			t += rem
			b.Emit(t, a.Intervals[k].Text)
			next()
		}
		if k < n && t < p.Xmin-eps {
			rem -= p.Xmin - t
			t = p.Xmin
			b.Emit(t, a.Intervals[k].Text)
		}
		t += p.Duration()
		b.Emit(t, "")
	}
	for k < n {
		t += rem
		b.Emit(t, a.Intervals[k].Text)
		next()
	}

	return b.Tier()
}

// patchPoints shifts points past every patch span that starts at or before
// them. A span at the very start of the reference is applied before the
// first point, mirroring the leading slot of patchIntervals.
func patchPoints(a *tier.PointTier, ref tier.Domain, patches []tier.Interval, eps float64) *tier.PointTier {
	out := &tier.PointTier{Name: a.Name, Domain: ref}
	shift := ref.Xmin - a.Domain.Xmin
	k := 0
	if len(patches) > 0 && tier.Close(patches[0].Xmin, ref.Xmin, eps) {
		shift += patches[0].Duration()
		k = 1
	}
	for _, p := range a.Points {
		for k < len(patches) && p.Time+shift >= patches[k].Xmin+eps {
			shift += patches[k].Duration()
			k++
		}
		t := p.Time + shift
		if t > ref.Xmax+eps {
			break
		}
		out.Points = append(out.Points, tier.Point{Time: t, Mark: p.Mark})
	}

	return out
}
