// SPDX-License-Identifier: MIT

package tier

import (
	"fmt"
	"math"
)

// Document is an annotation document: an ordered sequence of tiers sharing Domain.
type Document struct {
	Domain Domain
	Tiers  []Tier
}

// NewDocument returns a document over d holding the given tiers (not copied).
func NewDocument(d Domain, tiers ...Tier) *Document {
	return &Document{Domain: d, Tiers: tiers}
}

// Clone returns a deep copy of the document and all of its tiers.
func (d *Document) Clone() *Document {
	out := &Document{Domain: d.Domain, Tiers: make([]Tier, len(d.Tiers))}
	for i, t := range d.Tiers {
		out.Tiers[i] = t.Clone()
	}

	return out
}

// Duration returns the duration of the document's domain.
func (d *Document) Duration() float64 { return d.Domain.Duration() }

// Validate checks that every tier shares the document domain within eps and
// that each tier satisfies its own structural invariant.
func (d *Document) Validate(eps float64) error {
	for i, t := range d.Tiers {
		if !t.Span().Close(d.Domain, eps) {
			return fmt.Errorf("Document: tier %d domain %v, document %v: %w", i, t.Span(), d.Domain, ErrDomainMismatch)
		}
		switch tt := t.(type) {
		case *IntervalTier:
			if err := tt.Validate(eps); err != nil {
				return fmt.Errorf("Document: tier %d: %w", i, err)
			}
		case *PointTier:
			if err := tt.Validate(); err != nil {
				return fmt.Errorf("Document: tier %d: %w", i, err)
			}
		}
	}

	return nil
}

// IntervalTier returns tier i as an interval tier.
//
// Errors:
//   - ErrInvalidRange if i is out of bounds.
//   - ErrInvalidTierKind if tier i is a point tier.
func (d *Document) IntervalTier(i int) (*IntervalTier, error) {
	if i < 0 || i >= len(d.Tiers) {
		return nil, fmt.Errorf("Document.IntervalTier(%d): %d tiers: %w", i, len(d.Tiers), ErrInvalidRange)
	}
	t, ok := d.Tiers[i].(*IntervalTier)
	if !ok {
		return nil, fmt.Errorf("Document.IntervalTier(%d): %s tier: %w", i, d.Tiers[i].Kind(), ErrInvalidTierKind)
	}

	return t, nil
}

// Shift returns a copy of the document moved by dt.
func (d *Document) Shift(dt float64) *Document {
	out := &Document{Domain: d.Domain.Shift(dt), Tiers: make([]Tier, len(d.Tiers))}
	for i, t := range d.Tiers {
		out.Tiers[i] = t.shifted(dt)
	}

	return out
}

// ExtractPart returns the part of the document between t0 and t1, keeping
// the original times. Intervals are clipped to [t0, t1]; slivers shorter
// than eps are dropped. Points within eps of the range are kept.
//
// Errors:
//   - ErrInvalidRange if t1 <= t0 or the range lies outside the domain.
//
// Complexity:
//   - Time O(total intervals + points).
func (d *Document) ExtractPart(t0, t1, eps float64) (*Document, error) {
	t0 = math.Max(t0, d.Domain.Xmin)
	t1 = math.Min(t1, d.Domain.Xmax)
	if t1 <= t0 {
		return nil, fmt.Errorf("Document.ExtractPart(%g,%g): %w", t0, t1, ErrInvalidRange)
	}
	part := Domain{Xmin: t0, Xmax: t1}
	out := &Document{Domain: part, Tiers: make([]Tier, len(d.Tiers))}
	for i, t := range d.Tiers {
		switch tt := t.(type) {
		case *IntervalTier:
			nt := &IntervalTier{Name: tt.Name, Domain: part}
			for _, iv := range tt.Intervals {
				lo, hi := math.Max(iv.Xmin, t0), math.Min(iv.Xmax, t1)
				if hi-lo < eps || hi <= lo {
					continue
				}
				nt.Intervals = append(nt.Intervals, Interval{Xmin: lo, Xmax: hi, Text: iv.Text})
			}
			if len(nt.Intervals) == 0 {
				nt.Intervals = []Interval{{Xmin: t0, Xmax: t1}}
			}
			// Snap the outer boundaries onto the part's domain.
			nt.Intervals[0].Xmin = t0
			nt.Intervals[len(nt.Intervals)-1].Xmax = t1
			out.Tiers[i] = nt
		case *PointTier:
			nt := &PointTier{Name: tt.Name, Domain: part}
			for _, p := range tt.Points {
				if p.Time > t0-eps && p.Time < t1+eps {
					nt.Points = append(nt.Points, p)
				}
			}
			out.Tiers[i] = nt
		}
	}

	return out, nil
}

// WithEdges returns a copy of the document stretched to dom. Interval tiers
// gain an empty leading and/or trailing interval where dom extends beyond the
// current domain by more than eps; point tiers only change their domain.
//
// Errors:
//   - ErrDomainMismatch if dom does not contain the current domain.
func (d *Document) WithEdges(dom Domain, eps float64) (*Document, error) {
	if dom.Xmin > d.Domain.Xmin+eps || dom.Xmax < d.Domain.Xmax-eps {
		return nil, fmt.Errorf("Document.WithEdges(%v): current %v: %w", dom, d.Domain, ErrDomainMismatch)
	}
	out := d.Clone()
	out.Domain = dom
	for _, t := range out.Tiers {
		switch tt := t.(type) {
		case *IntervalTier:
			if d.Domain.Xmin-dom.Xmin > eps {
				tt.Intervals = append([]Interval{{Xmin: dom.Xmin, Xmax: d.Domain.Xmin}}, tt.Intervals...)
			} else {
				tt.Intervals[0].Xmin = dom.Xmin
			}
			if dom.Xmax-d.Domain.Xmax > eps {
				tt.Intervals = append(tt.Intervals, Interval{Xmin: d.Domain.Xmax, Xmax: dom.Xmax})
			} else {
				tt.Intervals[len(tt.Intervals)-1].Xmax = dom.Xmax
			}
			tt.Domain = dom
		case *PointTier:
			tt.Domain = dom
		}
	}

	return out, nil
}

// Concat joins documents end to end. The first document keeps its times;
// every following document is shifted to start where the previous one ended.
//
// Errors:
//   - ErrEmptyInput if no document is given.
//   - ErrInvalidTierKind if tier counts or kinds differ between documents.
//
// Complexity:
//   - Time O(total intervals + points).
func Concat(docs ...*Document) (*Document, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("Concat: %w", ErrEmptyInput)
	}
	out := docs[0].Clone()
	for k, next := range docs[1:] {
		if len(next.Tiers) != len(out.Tiers) {
			return nil, fmt.Errorf("Concat: document %d has %d tiers, want %d: %w",
				k+1, len(next.Tiers), len(out.Tiers), ErrInvalidTierKind)
		}
		moved := next.Shift(out.Domain.Xmax - next.Domain.Xmin)
		for i, t := range moved.Tiers {
			if t.Kind() != out.Tiers[i].Kind() {
				return nil, fmt.Errorf("Concat: document %d tier %d is %s, want %s: %w",
					k+1, i, t.Kind(), out.Tiers[i].Kind(), ErrInvalidTierKind)
			}
			switch tt := t.(type) {
			case *IntervalTier:
				dst := out.Tiers[i].(*IntervalTier)
				dst.Intervals = append(dst.Intervals, tt.Intervals...)
				dst.Domain.Xmax = moved.Domain.Xmax
			case *PointTier:
				dst := out.Tiers[i].(*PointTier)
				dst.Points = append(dst.Points, tt.Points...)
				dst.Domain.Xmax = moved.Domain.Xmax
			}
		}
		out.Domain.Xmax = moved.Domain.Xmax
	}

	return out, nil
}
