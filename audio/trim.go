// SPDX-License-Identifier: MIT

package audio

import (
	"fmt"
	"math"
	"slices"
)

// Default frame analysis of EnergyTrimmer: a 3.2-period window at a 200 Hz
// pitch floor, 5 ms steps.
const (
	DefaultTrimFrameWidth = 0.016
	DefaultTrimTimeStep   = 0.005
)

// TrimParams selects what counts as silence.
type TrimParams struct {
	// SilenceThresholdDB is relative to the loudest frame; frames quieter than
	// max+SilenceThresholdDB are silent. Negative, e.g. -35.
	SilenceThresholdDB float64

	// MinSilenceDuration is the shortest silent stretch that is trimmed.
	MinSilenceDuration float64

	// MinSoundingDuration is the shortest sounding stretch that stops trimming.
	MinSoundingDuration float64

	// KeepDuration of silence is left at each trimmed edge.
	KeepDuration float64
}

// EnergyTrimmer trims leading and trailing silence by frame intensity.
// Zero fields take the Default* values.
type EnergyTrimmer struct {
	FrameWidth float64
	TimeStep   float64
}

type run struct {
	sounding bool
	start    float64
	end      float64
}

// TrimSilence returns the sounding part of s together with its start and end
// times. When nothing is trimmed, or nothing is sounding, a copy of s and its
// own domain are returned.
//
// Implementation:
//   - Stage 1: frame intensity; a frame sounds when within SilenceThresholdDB
//     of the loudest frame.
//   - Stage 2: collapse frames into runs; sounding runs shorter than
//     MinSoundingDuration become silent, then silent runs shorter than
//     MinSilenceDuration become sounding.
//   - Stage 3: cut a silent first and last run, keeping KeepDuration.
//
// Errors:
//   - ErrEmptySound, ErrBadAnalysis from the frame analysis.
func (tr *EnergyTrimmer) TrimSilence(s *Sound, p TrimParams) (*Sound, float64, float64, error) {
	width, step := tr.FrameWidth, tr.TimeStep
	if width == 0 {
		width = DefaultTrimFrameWidth
	}
	if step == 0 {
		step = DefaultTrimTimeStep
	}
	db, f, err := Intensity(s, width, step)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("TrimSilence: %w", err)
	}

	floor := slices.Max(db) + p.SilenceThresholdDB
	runs := make([]run, 0, 8)
	for k, v := range db {
		sounding := v >= floor
		start := f.Time(k) - f.Step()/2
		if k == 0 {
			start = s.Xmin
		}
		if len(runs) > 0 && runs[len(runs)-1].sounding == sounding {
			continue
		}
		if len(runs) > 0 {
			runs[len(runs)-1].end = start
		}
		runs = append(runs, run{sounding: sounding, start: start})
	}
	runs[len(runs)-1].end = s.Xmax()

	runs = absorb(runs, true, p.MinSoundingDuration)
	runs = absorb(runs, false, p.MinSilenceDuration)

	t1, t2 := s.Xmin, s.Xmax()
	if !slices.ContainsFunc(runs, func(r run) bool { return r.sounding }) {
		return s.Clone(), t1, t2, nil
	}
	if first := runs[0]; !first.sounding {
		t1 = math.Max(s.Xmin, first.end-p.KeepDuration)
	}
	if last := runs[len(runs)-1]; !last.sounding {
		t2 = math.Min(s.Xmax(), last.start+p.KeepDuration)
	}
	dx := s.Dx()
	if t1-s.Xmin < dx && s.Xmax()-t2 < dx {
		return s.Clone(), s.Xmin, s.Xmax(), nil
	}

	part, err := s.ExtractPart(t1, t2)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("TrimSilence: %w", err)
	}

	return part, part.Xmin, part.Xmax(), nil
}

// absorb flips runs of the given kind shorter than minDur and merges
// neighbours of equal kind. A sole run is never flipped.
func absorb(runs []run, sounding bool, minDur float64) []run {
	if len(runs) < 2 {
		return runs
	}
	out := make([]run, 0, len(runs))
	for _, r := range runs {
		if r.sounding == sounding && r.end-r.start < minDur {
			r.sounding = !sounding
		}
		if n := len(out); n > 0 && out[n-1].sounding == r.sounding {
			out[n-1].end = r.end
			continue
		}
		out = append(out, r)
	}

	return out
}
