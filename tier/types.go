// SPDX-License-Identifier: MIT

package tier

import "math"

// Kind distinguishes interval tiers from point tiers.
type Kind int

const (
	// IntervalKind marks a domain-covering sequence of labelled spans.
	IntervalKind Kind = iota

	// PointKind marks an ordered sequence of time-stamped marks.
	PointKind
)

// String returns "interval" or "point".
func (k Kind) String() string {
	switch k {
	case IntervalKind:
		return "interval"
	case PointKind:
		return "point"
	default:
		return "unknown"
	}
}

// Close reports whether a and b are equal within eps.
// Exactly equal values are always close, so eps == 0 means exact comparison.
func Close(a, b, eps float64) bool {
	return a == b || math.Abs(a-b) < eps
}

// Domain is the half-open time range [Xmin, Xmax) shared by all tiers of a document.
type Domain struct {
	Xmin float64
	Xmax float64
}

// Duration returns Xmax - Xmin.
func (d Domain) Duration() float64 { return d.Xmax - d.Xmin }

// Close reports whether both ends of d and o agree within eps.
func (d Domain) Close(o Domain, eps float64) bool {
	return Close(d.Xmin, o.Xmin, eps) && Close(d.Xmax, o.Xmax, eps)
}

// Contains reports whether t lies in [Xmin-eps, Xmax+eps].
func (d Domain) Contains(t, eps float64) bool {
	return t > d.Xmin-eps && t < d.Xmax+eps || t == d.Xmin || t == d.Xmax
}

// Shift returns d moved by dt.
func (d Domain) Shift(dt float64) Domain {
	return Domain{Xmin: d.Xmin + dt, Xmax: d.Xmax + dt}
}

// Tier is implemented by *IntervalTier and *PointTier only.
type Tier interface {
	// Kind reports whether the tier holds intervals or points.
	Kind() Kind

	// Span returns the tier's time domain.
	Span() Domain

	// Clone returns a deep copy.
	Clone() Tier

	// shifted returns a deep copy moved by dt; it also seals the interface.
	shifted(dt float64) Tier
}

// Compile-time interface checks.
var (
	_ Tier = (*IntervalTier)(nil)
	_ Tier = (*PointTier)(nil)
)
