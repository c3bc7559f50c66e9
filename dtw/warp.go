// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tieralign/audio"
)

// Default analysis of WarpParams.
const (
	DefaultAnalysisWidth = 0.02
	DefaultTimeStep      = 0.005
)

// WarpParams configures the frame analysis and DTW of Warper.Warp.
type WarpParams struct {
	// AnalysisWidth is the frame window in seconds.
	AnalysisWidth float64

	// TimeStep is the frame hop in seconds.
	TimeStep float64

	// Band is the band half-width in seconds; 0 disables it.
	Band float64

	// Constraint is the slope-constraint class.
	Constraint SlopeConstraint
}

// DefaultWarpParams returns 20 ms frames every 5 ms, no band and the
// strictest slope class.
func DefaultWarpParams() WarpParams {
	return WarpParams{
		AnalysisWidth: DefaultAnalysisWidth,
		TimeStep:      DefaultTimeStep,
		Constraint:    SlopeTwoThirds,
	}
}

// Warper aligns a recording with a synthesized rendition of its text.
type Warper struct {
	// SlopePenalty is added to every non-diagonal DTW step.
	SlopePenalty float64
}

// Warp returns the time map from syn's axis onto rec's axis.
//
// Implementation:
//   - Stage 1: audio.Features of both sounds, each dimension standardized
//     per sound so level differences between the voices cancel.
//   - Stage 2: Vectors with the requested slope class; when no path fits the
//     class, retry Unconstrained.
//   - Stage 3: NewMapping from frame centres along the path, anchored at
//     both domain ends.
//
// Errors:
//   - audio.ErrEmptySound, audio.ErrBadAnalysis from the frame analysis.
//   - ErrNoPath if even the unconstrained search fails (band too narrow).
func (w *Warper) Warp(rec, syn *audio.Sound, p WarpParams) (*Mapping, error) {
	featRec, framesRec, err := audio.Features(rec, p.AnalysisWidth, p.TimeStep)
	if err != nil {
		return nil, fmt.Errorf("Warp(recording): %w", err)
	}
	featSyn, framesSyn, err := audio.Features(syn, p.AnalysisWidth, p.TimeStep)
	if err != nil {
		return nil, fmt.Errorf("Warp(synthesis): %w", err)
	}
	standardize(featRec)
	standardize(featSyn)

	opts := DefaultOptions()
	opts.ReturnPath = true
	opts.SlopePenalty = w.SlopePenalty
	opts.Constraint = p.Constraint
	if p.Band > 0 {
		opts.Window = int(math.Ceil(p.Band / framesRec.Step()))
	}
	_, path, err := Vectors(featRec, featSyn, &opts)
	if errors.Is(err, ErrNoPath) && opts.Constraint > Unconstrained {
		opts.Constraint = Unconstrained
		_, path, err = Vectors(featRec, featSyn, &opts)
	}
	if err != nil {
		return nil, fmt.Errorf("Warp: %w", err)
	}

	syns := make([]float64, 0, len(path)+2)
	recs := make([]float64, 0, len(path)+2)
	syns = append(syns, syn.Xmin)
	recs = append(recs, rec.Xmin)
	for k := 0; k < len(path); {
		j := path[k].J
		sum, cnt := 0.0, 0
		for ; k < len(path) && path[k].J == j; k++ {
			sum += framesRec.Time(path[k].I)
			cnt++
		}
		syns = append(syns, framesSyn.Time(j))
		recs = append(recs, sum/float64(cnt))
	}
	syns = append(syns, syn.Xmax())
	recs = append(recs, rec.Xmax())

	return NewMapping(syns, recs)
}

// standardize rescales every dimension to zero mean and unit variance. A
// constant dimension is only centred.
func standardize(frames [][]float64) {
	n := float64(len(frames))
	for d := range frames[0] {
		mean := 0.0
		for _, v := range frames {
			mean += v[d]
		}
		mean /= n
		variance := 0.0
		for _, v := range frames {
			variance += (v[d] - mean) * (v[d] - mean)
		}
		sd := math.Sqrt(variance / n)
		for _, v := range frames {
			v[d] -= mean
			if sd > 1e-9 {
				v[d] /= sd
			}
		}
	}
}
