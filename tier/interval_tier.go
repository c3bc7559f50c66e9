// SPDX-License-Identifier: MIT

package tier

import (
	"fmt"
	"slices"
)

// Interval is one labelled span [Xmin, Xmax) of an interval tier. Text may be empty.
type Interval struct {
	Xmin float64
	Xmax float64
	Text string
}

// Duration returns Xmax - Xmin.
func (iv Interval) Duration() float64 { return iv.Xmax - iv.Xmin }

// IntervalTier is an ordered, contiguous sequence of intervals covering Domain:
// Intervals[0].Xmin == Domain.Xmin, Intervals[n-1].Xmax == Domain.Xmax and
// Intervals[i].Xmax == Intervals[i+1].Xmin.
type IntervalTier struct {
	Name      string
	Domain    Domain
	Intervals []Interval
}

// NewIntervalTier returns a tier holding a single empty-labelled interval
// that covers d. It is the starting point for Builder and InsertBoundary.
func NewIntervalTier(name string, d Domain) *IntervalTier {
	return &IntervalTier{
		Name:      name,
		Domain:    d,
		Intervals: []Interval{{Xmin: d.Xmin, Xmax: d.Xmax}},
	}
}

// NewIntervalTierFromBounds builds a tier from n+1 boundary times and n labels.
//
// Implementation:
//   - Stage 1: validate len(bounds) == len(labels)+1 and len(labels) >= 1.
//   - Stage 2: validate bounds are strictly increasing (a single degenerate
//     interval [t,t] is accepted).
//   - Stage 3: emit one interval per label.
//
// Errors:
//   - ErrInvalidRange when the shapes disagree or bounds go backwards.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewIntervalTierFromBounds(name string, bounds []float64, labels []string) (*IntervalTier, error) {
	if len(labels) == 0 || len(bounds) != len(labels)+1 {
		return nil, fmt.Errorf("NewIntervalTierFromBounds(%q): %d bounds for %d labels: %w",
			name, len(bounds), len(labels), ErrInvalidRange)
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i] < bounds[i-1] || (bounds[i] == bounds[i-1] && len(labels) > 1) {
			return nil, fmt.Errorf("NewIntervalTierFromBounds(%q): bound %d (%g) not after %g: %w",
				name, i, bounds[i], bounds[i-1], ErrInvalidRange)
		}
	}

	t := &IntervalTier{
		Name:      name,
		Domain:    Domain{Xmin: bounds[0], Xmax: bounds[len(bounds)-1]},
		Intervals: make([]Interval, len(labels)),
	}
	for i, label := range labels {
		t.Intervals[i] = Interval{Xmin: bounds[i], Xmax: bounds[i+1], Text: label}
	}

	return t, nil
}

// Kind returns IntervalKind.
func (t *IntervalTier) Kind() Kind { return IntervalKind }

// Span returns the tier's domain.
func (t *IntervalTier) Span() Domain { return t.Domain }

// Clone returns a deep copy as a Tier.
func (t *IntervalTier) Clone() Tier { return t.Copy() }

// Copy returns a deep copy with the concrete type.
func (t *IntervalTier) Copy() *IntervalTier {
	return &IntervalTier{
		Name:      t.Name,
		Domain:    t.Domain,
		Intervals: slices.Clone(t.Intervals),
	}
}

func (t *IntervalTier) shifted(dt float64) Tier {
	out := t.Copy()
	out.Domain = out.Domain.Shift(dt)
	for i := range out.Intervals {
		out.Intervals[i].Xmin += dt
		out.Intervals[i].Xmax += dt
	}

	return out
}

// Duration returns the duration of the tier's domain.
func (t *IntervalTier) Duration() float64 { return t.Domain.Duration() }

// Bounds returns the n+1 boundary times of the tier, left to right.
func (t *IntervalTier) Bounds() []float64 {
	if len(t.Intervals) == 0 {
		return nil
	}
	out := make([]float64, 0, len(t.Intervals)+1)
	for _, iv := range t.Intervals {
		out = append(out, iv.Xmin)
	}

	return append(out, t.Intervals[len(t.Intervals)-1].Xmax)
}

// Labels returns the interval texts, left to right.
func (t *IntervalTier) Labels() []string {
	out := make([]string, len(t.Intervals))
	for i, iv := range t.Intervals {
		out[i] = iv.Text
	}

	return out
}

// Validate checks the coverage invariant within eps: at least one interval,
// first and last boundary on the domain, consecutive intervals contiguous and
// none of negative length.
func (t *IntervalTier) Validate(eps float64) error {
	n := len(t.Intervals)
	if n == 0 {
		return fmt.Errorf("IntervalTier(%q): no intervals: %w", t.Name, ErrInvalidRange)
	}
	if !Close(t.Intervals[0].Xmin, t.Domain.Xmin, eps) || !Close(t.Intervals[n-1].Xmax, t.Domain.Xmax, eps) {
		return fmt.Errorf("IntervalTier(%q): intervals span [%g,%g], domain [%g,%g]: %w",
			t.Name, t.Intervals[0].Xmin, t.Intervals[n-1].Xmax, t.Domain.Xmin, t.Domain.Xmax, ErrDomainMismatch)
	}
	for i, iv := range t.Intervals {
		if iv.Xmax < iv.Xmin-eps {
			return fmt.Errorf("IntervalTier(%q): interval %d has negative length: %w", t.Name, i, ErrInvalidRange)
		}
		if i > 0 && !Close(t.Intervals[i-1].Xmax, iv.Xmin, eps) {
			return fmt.Errorf("IntervalTier(%q): gap between interval %d (%g) and %d (%g): %w",
				t.Name, i-1, t.Intervals[i-1].Xmax, i, iv.Xmin, ErrInvalidRange)
		}
	}

	return nil
}

// InsertBoundary splits the interval containing at, starting the search at
// index from.
//
// Implementation:
//   - Stage 1: scan forward from `from` for the first interval with
//     Xmin-eps < at < Xmax+eps.
//   - Stage 2: if none is found, or at is within eps of that interval's Xmin
//     or Xmax, do nothing.
//   - Stage 3: otherwise move the interval's Xmin to at and insert
//     [oldXmin, at) labelled leftLabel immediately before it.
//
// Behavior highlights:
//   - Idempotent near existing boundaries: no zero-length or duplicate intervals.
//   - The right-hand part keeps the original label.
//
// Returns:
//   - true when a boundary was inserted.
//
// Complexity:
//   - Time O(n) (scan + slice insert), Space O(1) amortized.
func (t *IntervalTier) InsertBoundary(at float64, leftLabel string, from int, eps float64) bool {
	if from < 0 {
		from = 0
	}
	index := -1
	for i := from; i < len(t.Intervals); i++ {
		iv := t.Intervals[i]
		if at < iv.Xmax+eps && at > iv.Xmin-eps {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}
	iv := &t.Intervals[index]
	if Close(at, iv.Xmin, eps) || Close(at, iv.Xmax, eps) {
		return false
	}
	left := Interval{Xmin: iv.Xmin, Xmax: at, Text: leftLabel}
	iv.Xmin = at
	t.Intervals = slices.Insert(t.Intervals, index, left)

	return true
}

// MatchingSpans returns copies of the intervals labelled exactly label, in time order.
func (t *IntervalTier) MatchingSpans(label string) []Interval {
	var spans []Interval
	for _, iv := range t.Intervals {
		if iv.Text == label {
			spans = append(spans, iv)
		}
	}

	return spans
}

// LabelInfo returns the summed duration and the number of intervals labelled label.
func (t *IntervalTier) LabelInfo(label string) (total float64, count int) {
	for _, iv := range t.Intervals {
		if iv.Text == label {
			total += iv.Duration()
			count++
		}
	}

	return total, count
}

// StartOfFirst returns the start time of the first interval labelled label.
func (t *IntervalTier) StartOfFirst(label string) (float64, bool) {
	for _, iv := range t.Intervals {
		if iv.Text == label {
			return iv.Xmin, true
		}
	}

	return 0, false
}

// EndOfLast returns the end time of the last interval labelled label.
func (t *IntervalTier) EndOfLast(label string) (float64, bool) {
	for i := len(t.Intervals) - 1; i >= 0; i-- {
		if t.Intervals[i].Text == label {
			return t.Intervals[i].Xmax, true
		}
	}

	return 0, false
}
