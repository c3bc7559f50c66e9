// SPDX-License-Identifier: MIT

package dtw

import "fmt"

// MemoryMode controls how DTW stores its DP matrix.
type MemoryMode int

const (
	// FullMatrix keeps every row and supports path recovery. Memory O(N·M).
	FullMatrix MemoryMode = iota

	// Rolling keeps only as many rows as the longest step needs. Memory
	// O(M), distance only.
	Rolling
)

// SlopeConstraint bounds the local slope of the warping path. The values
// are the classic constraint classes 1 to 4.
type SlopeConstraint int

const (
	// Unconstrained allows horizontal, vertical and diagonal unit steps.
	Unconstrained SlopeConstraint = iota + 1

	// SlopeThird keeps the slope between 1/3 and 3.
	SlopeThird

	// SlopeHalf keeps the slope between 1/2 and 2.
	SlopeHalf

	// SlopeTwoThirds keeps the slope between 2/3 and 3/2.
	SlopeTwoThirds
)

// String returns the slope range of the class.
func (c SlopeConstraint) String() string {
	switch c {
	case Unconstrained:
		return "no restriction"
	case SlopeThird:
		return "1/3 < slope < 3"
	case SlopeHalf:
		return "1/2 < slope < 2"
	case SlopeTwoThirds:
		return "2/3 < slope < 3/2"
	default:
		return fmt.Sprintf("SlopeConstraint(%d)", int(c))
	}
}

// ConstraintForRatio picks the strictest class that still admits two
// sequences whose durations differ by ratio r. r and 1/r are equivalent.
//
//	r < 1.5 → SlopeTwoThirds, r < 2 → SlopeHalf, r < 3 → SlopeThird,
//	otherwise Unconstrained.
func ConstraintForRatio(r float64) SlopeConstraint {
	if r > 0 && r < 1 {
		r = 1 / r
	}
	switch {
	case r < 1.5:
		return SlopeTwoThirds
	case r < 2:
		return SlopeHalf
	case r < 3:
		return SlopeThird
	default:
		return Unconstrained
	}
}

// step moves di frames along a and dj along b.
type step struct{ di, dj int }

// steps returns the step pattern of c, diagonal first.
func (c SlopeConstraint) steps() []step {
	switch c {
	case SlopeThird:
		return []step{{1, 1}, {1, 2}, {2, 1}, {1, 3}, {3, 1}}
	case SlopeHalf:
		return []step{{1, 1}, {1, 2}, {2, 1}}
	case SlopeTwoThirds:
		return []step{{1, 1}, {2, 3}, {3, 2}}
	default:
		return []step{{1, 1}, {1, 0}, {0, 1}}
	}
}

// Options configures DTW.
//
// Fields:
//   - Window      : band half-width in frames of a around the straight line
//     joining (0,0) and (n,m). -1 disables the band.
//   - SlopePenalty: added for every step that is not diagonal.
//   - Constraint  : slope-constraint class; zero means Unconstrained.
//   - ReturnPath  : backtrack and return the warping path (FullMatrix only).
//   - MemoryMode  : FullMatrix or Rolling.
type Options struct {
	Window       int
	SlopePenalty float64
	Constraint   SlopeConstraint
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, unbanded full-matrix DTW without
// path recovery.
func DefaultOptions() Options {
	return Options{
		Window:     -1,
		Constraint: Unconstrained,
		MemoryMode: FullMatrix,
	}
}

func (o *Options) validate() error {
	if o.Window < -1 {
		return fmt.Errorf("Window=%d: %w", o.Window, ErrBadInput)
	}
	if !(o.SlopePenalty >= 0) {
		return fmt.Errorf("SlopePenalty=%g: %w", o.SlopePenalty, ErrBadInput)
	}
	if o.Constraint < 0 || o.Constraint > SlopeTwoThirds {
		return fmt.Errorf("Constraint=%d: %w", o.Constraint, ErrBadInput)
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != Rolling {
		return fmt.Errorf("MemoryMode=%d: %w", o.MemoryMode, ErrBadInput)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}

	return nil
}
