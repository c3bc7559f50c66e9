// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tieralign/tier"
)

// Mapping is a monotone piecewise-linear map from the synthesis time axis
// onto the recording time axis.
type Mapping struct {
	syn []float64 // strictly increasing
	rec []float64 // non-decreasing
}

// NewMapping builds a map through the breakpoints (syn[k], rec[k]). The
// first and last breakpoints fix both domains.
//
// Errors:
//   - ErrBadInput unless there are at least two breakpoints, syn is strictly
//     increasing and rec is non-decreasing with rec[0] < rec[last].
func NewMapping(syn, rec []float64) (*Mapping, error) {
	if len(syn) < 2 || len(syn) != len(rec) {
		return nil, fmt.Errorf("NewMapping: %d and %d breakpoints: %w", len(syn), len(rec), ErrBadInput)
	}
	for k := 1; k < len(syn); k++ {
		if !(syn[k] > syn[k-1]) || rec[k] < rec[k-1] {
			return nil, fmt.Errorf("NewMapping: breakpoint %d not monotone: %w", k, ErrBadInput)
		}
	}
	if !(rec[len(rec)-1] > rec[0]) {
		return nil, fmt.Errorf("NewMapping: empty recording domain: %w", ErrBadInput)
	}

	return &Mapping{syn: append([]float64(nil), syn...), rec: append([]float64(nil), rec...)}, nil
}

// SynDomain returns the domain the map accepts.
func (m *Mapping) SynDomain() tier.Domain {
	return tier.Domain{Xmin: m.syn[0], Xmax: m.syn[len(m.syn)-1]}
}

// RecDomain returns the domain the map produces.
func (m *Mapping) RecDomain() tier.Domain {
	return tier.Domain{Xmin: m.rec[0], Xmax: m.rec[len(m.rec)-1]}
}

// Map returns the recording time of synthesis time t. Times outside the
// synthesis domain map to the nearest end.
func (m *Mapping) Map(t float64) float64 {
	k := sort.SearchFloat64s(m.syn, t)
	switch {
	case k == 0:
		return m.rec[0]
	case k == len(m.syn):
		return m.rec[len(m.rec)-1]
	}
	x0, x1 := m.syn[k-1], m.syn[k]
	y0, y1 := m.rec[k-1], m.rec[k]

	return y0 + (t-x0)*(y1-y0)/(x1-x0)
}

// Retime maps every boundary and point of doc onto the recording axis.
//
// Behavior highlights:
//   - the result's domain is RecDomain; each tier keeps its name and labels
//   - an interval squeezed below eps merges into its neighbour
//   - a point landing within eps of the previous kept point is dropped
//
// Errors:
//   - tier.ErrDomainMismatch if doc's domain is not SynDomain within eps.
func (m *Mapping) Retime(doc *tier.Document, eps float64) (*tier.Document, error) {
	if !doc.Domain.Close(m.SynDomain(), eps) {
		return nil, fmt.Errorf("Retime: document [%g, %g] vs map [%g, %g]: %w",
			doc.Domain.Xmin, doc.Domain.Xmax, m.syn[0], m.syn[len(m.syn)-1], tier.ErrDomainMismatch)
	}
	dom := m.RecDomain()
	out := tier.NewDocument(dom)
	for _, t := range doc.Tiers {
		switch src := t.(type) {
		case *tier.IntervalTier:
			b := tier.NewBuilder(src.Name, dom, eps)
			last := len(src.Intervals) - 1
			for k, iv := range src.Intervals {
				end := dom.Xmax
				if k < last {
					end = m.Map(iv.Xmax)
				}
				b.Emit(end, iv.Text)
			}
			out.Tiers = append(out.Tiers, b.Tier())
		case *tier.PointTier:
			pt := tier.NewPointTier(src.Name, dom)
			for _, p := range src.Points {
				at := m.Map(p.Time)
				if n := len(pt.Points); n > 0 && at-pt.Points[n-1].Time < eps {
					continue
				}
				pt.Points = append(pt.Points, tier.Point{Time: at, Mark: p.Mark})
			}
			out.Tiers = append(out.Tiers, pt)
		}
	}

	return out, nil
}
