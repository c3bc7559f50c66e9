// SPDX-License-Identifier: MIT

package audio

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tieralign/tier"
)

// Sound is a mono signal. Sample i covers [Xmin+i·Dx, Xmin+(i+1)·Dx).
type Sound struct {
	Xmin       float64
	SampleRate float64
	Samples    []float64
}

// New validates the sampling rate and wraps samples without copying.
func New(xmin, rate float64, samples []float64) (*Sound, error) {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return nil, fmt.Errorf("New: rate %g: %w", rate, ErrBadSampleRate)
	}

	return &Sound{Xmin: xmin, SampleRate: rate, Samples: samples}, nil
}

// Dx returns the sampling period.
func (s *Sound) Dx() float64 { return 1 / s.SampleRate }

// Duration returns len(Samples)·Dx.
func (s *Sound) Duration() float64 { return float64(len(s.Samples)) / s.SampleRate }

// Xmax returns the end time of the last sample.
func (s *Sound) Xmax() float64 { return s.Xmin + s.Duration() }

// Domain returns [Xmin, Xmax).
func (s *Sound) Domain() tier.Domain { return tier.Domain{Xmin: s.Xmin, Xmax: s.Xmax()} }

// Clone returns a deep copy.
func (s *Sound) Clone() *Sound {
	return &Sound{Xmin: s.Xmin, SampleRate: s.SampleRate, Samples: append([]float64(nil), s.Samples...)}
}

// ExtractPart returns a copy of the samples in [t0, t1), snapped to the
// nearest sample boundaries. The part keeps its absolute times.
//
// Errors:
//   - ErrInvalidRange if the snapped range is empty or t0, t1 fall outside
//     the sound by more than half a sample.
func (s *Sound) ExtractPart(t0, t1 float64) (*Sound, error) {
	dx := s.Dx()
	if t0 < s.Xmin-dx/2 || t1 > s.Xmax()+dx/2 {
		return nil, fmt.Errorf("ExtractPart(%g, %g): outside [%g, %g]: %w", t0, t1, s.Xmin, s.Xmax(), ErrInvalidRange)
	}
	i0 := clampIndex(int(math.Round((t0-s.Xmin)/dx)), len(s.Samples))
	i1 := clampIndex(int(math.Round((t1-s.Xmin)/dx)), len(s.Samples))
	if i1 <= i0 {
		return nil, fmt.Errorf("ExtractPart(%g, %g): empty: %w", t0, t1, ErrInvalidRange)
	}

	return &Sound{
		Xmin:       s.Xmin + float64(i0)*dx,
		SampleRate: s.SampleRate,
		Samples:    append([]float64(nil), s.Samples[i0:i1]...),
	}, nil
}

// Concat joins sounds end to end. The result starts at the first sound's Xmin.
//
// Errors:
//   - ErrEmptySound when no sounds are given.
//   - ErrSamplingRateMismatch when the rates differ.
func Concat(parts ...*Sound) (*Sound, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("Concat: %w", ErrEmptySound)
	}
	n := 0
	for i, p := range parts {
		if p.SampleRate != parts[0].SampleRate {
			return nil, fmt.Errorf("Concat: part %d at %g Hz, want %g Hz: %w",
				i, p.SampleRate, parts[0].SampleRate, ErrSamplingRateMismatch)
		}
		n += len(p.Samples)
	}
	out := &Sound{Xmin: parts[0].Xmin, SampleRate: parts[0].SampleRate, Samples: make([]float64, 0, n)}
	for _, p := range parts {
		out.Samples = append(out.Samples, p.Samples...)
	}

	return out, nil
}

// NewSine returns a sine tone of the given duration starting at time 0.
func NewSine(rate, duration, freq, amplitude float64) *Sound {
	n := int(math.Round(duration * rate))
	s := &Sound{SampleRate: rate, Samples: make([]float64, n)}
	for i := range s.Samples {
		s.Samples[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/rate)
	}

	return s
}

// NewSilence returns a zero signal of the given duration starting at time 0.
func NewSilence(rate, duration float64) *Sound {
	return &Sound{SampleRate: rate, Samples: make([]float64, int(math.Round(duration*rate)))}
}

func clampIndex(i, n int) int {
	return max(0, min(i, n))
}
