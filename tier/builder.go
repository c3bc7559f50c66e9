// SPDX-License-Identifier: MIT

package tier

// Builder grows an interval tier from left to right by closing one interval
// at a time. It carries the search cursor for InsertBoundary so every split
// is found in O(1) scans.
type Builder struct {
	tier   *IntervalTier
	cursor int
	eps    float64
}

// NewBuilder starts a tier over d with a single empty interval.
func NewBuilder(name string, d Domain, eps float64) *Builder {
	return &Builder{tier: NewIntervalTier(name, d), eps: eps}
}

// Emit closes the current interval at end and labels it.
//
// When end lies within eps of the domain end, the last interval is relabelled
// instead of split, so rounding never leaves a sliver at the end of the tier.
// Otherwise the boundary goes through InsertBoundary; a suppressed boundary
// leaves the cursor where it is.
func (b *Builder) Emit(end float64, label string) {
	last := len(b.tier.Intervals) - 1
	if Close(end, b.tier.Domain.Xmax, b.eps) {
		b.tier.Intervals[last].Text = label
		return
	}
	if b.tier.InsertBoundary(end, label, b.cursor, b.eps) {
		b.cursor++
	}
}

// Tier returns the tier built so far. The builder must not be used afterwards.
func (b *Builder) Tier() *IntervalTier { return b.tier }
