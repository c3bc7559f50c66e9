// SPDX-License-Identifier: MIT

package tier

import (
	"fmt"
	"slices"
)

// Point is a time-stamped mark.
type Point struct {
	Time float64
	Mark string
}

// PointTier is an ordered, strictly increasing sequence of points.
type PointTier struct {
	Name   string
	Domain Domain
	Points []Point
}

// NewPointTier returns a tier over d holding a copy of points.
func NewPointTier(name string, d Domain, points ...Point) *PointTier {
	return &PointTier{Name: name, Domain: d, Points: slices.Clone(points)}
}

// Kind returns PointKind.
func (t *PointTier) Kind() Kind { return PointKind }

// Span returns the tier's domain.
func (t *PointTier) Span() Domain { return t.Domain }

// Clone returns a deep copy as a Tier.
func (t *PointTier) Clone() Tier { return t.Copy() }

// Copy returns a deep copy with the concrete type.
func (t *PointTier) Copy() *PointTier {
	return &PointTier{Name: t.Name, Domain: t.Domain, Points: slices.Clone(t.Points)}
}

func (t *PointTier) shifted(dt float64) Tier {
	out := t.Copy()
	out.Domain = out.Domain.Shift(dt)
	for i := range out.Points {
		out.Points[i].Time += dt
	}

	return out
}

// Times returns the point times in order.
func (t *PointTier) Times() []float64 {
	out := make([]float64, len(t.Points))
	for i, p := range t.Points {
		out[i] = p.Time
	}

	return out
}

// Validate checks that times are strictly increasing.
func (t *PointTier) Validate() error {
	for i := 1; i < len(t.Points); i++ {
		if t.Points[i].Time <= t.Points[i-1].Time {
			return fmt.Errorf("PointTier(%q): point %d (%g) not after %g: %w",
				t.Name, i, t.Points[i].Time, t.Points[i-1].Time, ErrInvalidRange)
		}
	}

	return nil
}
