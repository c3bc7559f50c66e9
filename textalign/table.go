// SPDX-License-Identifier: MIT

package textalign

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tieralign/editdist"
	"github.com/katalvlaran/tieralign/tier"
)

// Op classifies one alignment step.
type Op uint8

const (
	// Match pairs equal target and source tokens.
	Match Op = iota

	// Substitution pairs a target token with a different source token.
	Substitution

	// Insertion is a target token without a source counterpart.
	Insertion

	// Deletion is a source token without a target counterpart.
	Deletion
)

// String returns the lower-case operation name.
func (op Op) String() string {
	switch op {
	case Match:
		return "match"
	case Substitution:
		return "substitution"
	case Insertion:
		return "insertion"
	case Deletion:
		return "deletion"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Code returns the one-letter table code: " ", "s", "i" or "d".
func (op Op) Code() string {
	switch op {
	case Substitution:
		return "s"
	case Insertion:
		return "i"
	case Deletion:
		return "d"
	default:
		return " "
	}
}

// Side is one tier's half of a row.
type Side struct {
	Interval int // index into the tier, -1 when absent
	Text     string
	Start    float64 // NaN when absent
	End      float64 // NaN when absent
}

// Present reports whether the side refers to an interval.
func (s Side) Present() bool { return s.Interval >= 0 }

var absent = Side{Interval: -1, Start: math.NaN(), End: math.NaN()}

// Row is one step of the alignment path.
type Row struct {
	Op     Op
	Target Side
	Source Side
}

// Counts holds per-operation row totals.
type Counts struct {
	Matches       int
	Substitutions int
	Insertions    int
	Deletions     int
}

// Total returns the number of rows counted.
func (c Counts) Total() int {
	return c.Matches + c.Substitutions + c.Insertions + c.Deletions
}

// Table is the alignment of a source tier onto a target tier.
type Table struct {
	TargetName string
	SourceName string

	// Distance is the edit cost of the alignment.
	Distance float64

	Rows []Row
}

// Counts tallies the rows by operation.
func (tb *Table) Counts() Counts {
	var c Counts
	for _, r := range tb.Rows {
		switch r.Op {
		case Match:
			c.Matches++
		case Substitution:
			c.Substitutions++
		case Insertion:
			c.Insertions++
		case Deletion:
			c.Deletions++
		}
	}

	return c
}

// Build aligns the labelled intervals of source onto those of target.
//
// Implementation:
//   - Stage 1: project both tiers to Tokens, keeping origin indices.
//   - Stage 2: editdist.Align over the token keys with the configured costs.
//   - Stage 3: one Row per path step after the origin: a step that does not
//     advance the target is a Deletion, one that does not advance the source
//     an Insertion, otherwise a Match when the keys are equal and a
//     Substitution when they differ.
//
// Errors:
//   - tier.ErrEmptyInput if either tier is nil.
//
// Complexity: O(N·M) time and memory over the token counts.
func Build(target, source *tier.IntervalTier, opts ...Option) (*Table, error) {
	if target == nil || source == nil {
		return nil, fmt.Errorf("Build: nil tier: %w", tier.ErrEmptyInput)
	}
	o := gatherOptions(opts)

	tt := tokens(target, o.normalize)
	st := tokens(source, o.normalize)
	res := editdist.Align(keys(tt), keys(st), o.costs)

	tb := &Table{
		TargetName: target.Name,
		SourceName: source.Name,
		Distance:   res.Distance,
		Rows:       make([]Row, 0, len(res.Path)-1),
	}
	for k := 1; k < len(res.Path); k++ {
		prev, cur := res.Path[k-1], res.Path[k]
		var r Row
		switch {
		case cur.I == prev.I:
			r = Row{Op: Deletion, Target: absent, Source: side(source, st[cur.J-1])}
		case cur.J == prev.J:
			r = Row{Op: Insertion, Target: side(target, tt[cur.I-1]), Source: absent}
		default:
			tk, sk := tt[cur.I-1], st[cur.J-1]
			r = Row{Op: Substitution, Target: side(target, tk), Source: side(source, sk)}
			if tk.Key == sk.Key {
				r.Op = Match
			}
		}
		tb.Rows = append(tb.Rows, r)
	}

	return tb, nil
}

// BuildFromDocuments runs Build on interval tier ttier of target and stier of
// source.
//
// Errors:
//   - tier.ErrEmptyInput if either document is nil.
//   - tier.ErrInvalidRange for an index out of range.
//   - tier.ErrInvalidTierKind when an index names a point tier.
func BuildFromDocuments(target *tier.Document, ttier int, source *tier.Document, stier int, opts ...Option) (*Table, error) {
	if target == nil || source == nil {
		return nil, fmt.Errorf("BuildFromDocuments: nil document: %w", tier.ErrEmptyInput)
	}
	tt, err := target.IntervalTier(ttier)
	if err != nil {
		return nil, fmt.Errorf("BuildFromDocuments(target): %w", err)
	}
	st, err := source.IntervalTier(stier)
	if err != nil {
		return nil, fmt.Errorf("BuildFromDocuments(source): %w", err)
	}

	return Build(tt, st, opts...)
}

func side(t *tier.IntervalTier, tk Token) Side {
	iv := t.Intervals[tk.Interval]

	return Side{Interval: tk.Interval, Text: iv.Text, Start: iv.Xmin, End: iv.Xmax}
}
