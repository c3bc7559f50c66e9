// SPDX-License-Identifier: MIT

package cutpatch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tieralign/tier"
)

// CutIntervals removes from a every span of b labelled label and returns a
// new tier over [0, duration(a) - cut duration).
//
// Implementation:
//   - Stage 1: validate that a and b share a domain.
//   - Stage 2: collect b's matching spans and fold them into a's surviving
//     durations in one forward pass (see cutIntervals).
//   - Stage 3: rebuild the tier from the surviving durations.
//
// Errors:
//   - tier.ErrDomainMismatch if the domains differ by eps or more.
//
// Complexity:
//   - Time O(n + m) for n intervals in a and m in b, plus O(n) per boundary
//     insert in the rebuild. Space O(n).
func CutIntervals(a, b *tier.IntervalTier, label string, eps float64) (*tier.IntervalTier, error) {
	if !a.Domain.Close(b.Domain, eps) {
		return nil, fmt.Errorf("CutIntervals(%q, %q): %v vs %v: %w", a.Name, b.Name, a.Domain, b.Domain, tier.ErrDomainMismatch)
	}

	return cutIntervals(a, b.MatchingSpans(label), eps), nil
}

// CutPoints removes the points of a that fall strictly inside the spans of b
// labelled label and shifts the others left by the duration cut before them.
//
// Errors:
//   - tier.ErrDomainMismatch if the domains differ by eps or more.
func CutPoints(a *tier.PointTier, b *tier.IntervalTier, label string, eps float64) (*tier.PointTier, error) {
	if !a.Domain.Close(b.Domain, eps) {
		return nil, fmt.Errorf("CutPoints(%q, %q): %v vs %v: %w", a.Name, b.Name, a.Domain, b.Domain, tier.ErrDomainMismatch)
	}
	cuts := b.MatchingSpans(label)
	dom := tier.Domain{Xmin: 0, Xmax: math.Max(0, a.Domain.Duration()-totalDuration(cuts))}

	return cutPoints(a, cuts, dom, eps), nil
}

// CutDocument applies CutIntervals / CutPoints to every tier of doc with one
// shared list of cut spans. The result's domain is [0, duration - cut).
//
// Behavior highlights:
//   - If the total cut duration is at most eps the document is returned as a
//     plain copy, so no boundary is touched.
//   - All tier domains are checked before anything is built.
//
// Errors:
//   - tier.ErrDomainMismatch if b or any tier of doc does not share doc's domain.
func CutDocument(doc *tier.Document, b *tier.IntervalTier, label string, eps float64) (*tier.Document, error) {
	if !doc.Domain.Close(b.Domain, eps) {
		return nil, fmt.Errorf("CutDocument(%q): document %v, cut tier %v: %w", b.Name, doc.Domain, b.Domain, tier.ErrDomainMismatch)
	}
	cuts := b.MatchingSpans(label)
	cutTotal := totalDuration(cuts)
	if cutTotal <= eps {
		return doc.Clone(), nil
	}
	if err := checkTierDomains(doc, eps); err != nil {
		return nil, fmt.Errorf("CutDocument(%q): %w", b.Name, err)
	}

	dom := tier.Domain{Xmin: 0, Xmax: math.Max(0, doc.Duration()-cutTotal)}
	out := &tier.Document{Domain: dom, Tiers: make([]tier.Tier, len(doc.Tiers))}
	for i, t := range doc.Tiers {
		switch tt := t.(type) {
		case *tier.IntervalTier:
			nt := cutIntervals(tt, cuts, eps)
			snapDomain(nt, dom)
			out.Tiers[i] = nt
		case *tier.PointTier:
			out.Tiers[i] = cutPoints(tt, cuts, dom, eps)
		}
	}

	return out, nil
}

// cutIntervals folds the cut spans into per-interval surviving durations.
//
// A cursor k walks a's intervals once; for every cut span the interval under
// the cursor is in one of these cases:
//  1. entirely inside the cut: nothing survives, advance;
//  2. the cut starts inside and runs past its end: drop the overlap, advance;
//  3. the cut lies entirely inside: drop the cut length, stay (more cuts may follow);
//  4. the cut starts before and ends inside: drop the overlap, stay;
//  5. the interval ends before the cut starts: advance.
//
// Durations under eps are clamped to zero and skipped in the rebuild.
func cutIntervals(a *tier.IntervalTier, cuts []tier.Interval, eps float64) *tier.IntervalTier {
	n := len(a.Intervals)
	durations := make([]float64, n)
	for i, iv := range a.Intervals {
		durations[i] = iv.Duration()
	}

	k := 0
	for _, cut := range cuts {
	scan:
		for k < n {
			iv := a.Intervals[k]
			switch {
			case iv.Xmin > cut.Xmin-eps && iv.Xmax < cut.Xmax+eps:
				durations[k] = 0
				k++
			case iv.Xmin < cut.Xmin+eps && cut.Xmin < iv.Xmax+eps:
				if cut.Xmax > iv.Xmax-eps {
					durations[k] -= iv.Xmax - cut.Xmin
					k++
				} else {
					durations[k] -= cut.Duration()
					break scan
				}
			case cut.Xmax > iv.Xmin-eps && cut.Xmin < iv.Xmax+eps:
				durations[k] -= cut.Xmax - iv.Xmin
				break scan
			case iv.Xmax < cut.Xmin+eps:
				k++
			default:
				// interval lies after the cut
				break scan
			}
		}
	}

	total := 0.0
	for i := range durations {
		if durations[i] < eps {
			durations[i] = 0
		}
		total += durations[i]
	}

	b := tier.NewBuilder(a.Name, tier.Domain{Xmin: 0, Xmax: total}, eps)
	t := 0.0
	for i, d := range durations {
		if d <= 0 {
			continue
		}
		t += d
		b.Emit(t, a.Intervals[i].Text)
	}

	return b.Tier()
}

// cutPoints keeps the points outside the cut spans, shifted by the duration
// removed before them. A point landing within eps of the previous kept point
// (both sides of a cut) is dropped to keep times strictly increasing.
func cutPoints(a *tier.PointTier, cuts []tier.Interval, dom tier.Domain, eps float64) *tier.PointTier {
	out := &tier.PointTier{Name: a.Name, Domain: dom}
	removed := 0.0
	k := 0
	for _, p := range a.Points {
		for k < len(cuts) && cuts[k].Xmax < p.Time+eps {
			removed += cuts[k].Duration()
			k++
		}
		if k < len(cuts) && p.Time > cuts[k].Xmin+eps {
			continue
		}
		t := p.Time - removed - a.Domain.Xmin
		if n := len(out.Points); n > 0 && tier.Close(out.Points[n-1].Time, t, eps) {
			continue
		}
		out.Points = append(out.Points, tier.Point{Time: t, Mark: p.Mark})
	}

	return out
}

// totalDuration sums the durations of spans.
func totalDuration(spans []tier.Interval) float64 {
	total := 0.0
	for _, s := range spans {
		total += s.Duration()
	}

	return total
}

// checkTierDomains verifies every tier of doc shares doc's domain.
func checkTierDomains(doc *tier.Document, eps float64) error {
	for i, t := range doc.Tiers {
		if !t.Span().Close(doc.Domain, eps) {
			return fmt.Errorf("tier %d domain %v, document %v: %w", i, t.Span(), doc.Domain, tier.ErrDomainMismatch)
		}
	}

	return nil
}

// snapDomain pins the outer boundaries of t onto dom, absorbing the rounding
// left by summing surviving durations.
func snapDomain(t *tier.IntervalTier, dom tier.Domain) {
	t.Domain = dom
	t.Intervals[0].Xmin = dom.Xmin
	t.Intervals[len(t.Intervals)-1].Xmax = dom.Xmax
}
