// SPDX-License-Identifier: MIT

package audio

import (
	"fmt"
	"math"
)

// minPower floors frame power so digital silence maps to -120 dB.
const minPower = 1e-12

// Framing is a frame analysis grid over one sound.
//
// Frame k covers samples [k·Hop, k·Hop+Win) and is centred at Time(k).
type Framing struct {
	N   int // number of frames, at least 1
	Win int // window length in samples
	Hop int // step in samples

	xmin float64
	dx   float64
}

// NewFraming lays frames of the given width and step over s. A sound shorter
// than one window yields a single frame covering all of it.
//
// Errors:
//   - ErrEmptySound if s has no samples.
//   - ErrBadAnalysis if width or step is not positive.
func NewFraming(s *Sound, width, step float64) (Framing, error) {
	if len(s.Samples) == 0 {
		return Framing{}, fmt.Errorf("NewFraming: %w", ErrEmptySound)
	}
	if !(width > 0) || !(step > 0) {
		return Framing{}, fmt.Errorf("NewFraming(width=%g, step=%g): %w", width, step, ErrBadAnalysis)
	}
	f := Framing{
		Win:  max(1, int(math.Round(width*s.SampleRate))),
		Hop:  max(1, int(math.Round(step*s.SampleRate))),
		xmin: s.Xmin,
		dx:   s.Dx(),
	}
	if f.Win >= len(s.Samples) {
		f.Win = len(s.Samples)
		f.N = 1
		return f, nil
	}
	f.N = 1 + (len(s.Samples)-f.Win)/f.Hop

	return f, nil
}

// Time returns the centre time of frame k.
func (f Framing) Time(k int) float64 {
	return f.xmin + (float64(k*f.Hop)+float64(f.Win)/2)*f.dx
}

// Step returns the hop in seconds.
func (f Framing) Step() float64 { return float64(f.Hop) * f.dx }

// Intensity returns the frame power in dB.
func Intensity(s *Sound, width, step float64) ([]float64, Framing, error) {
	f, err := NewFraming(s, width, step)
	if err != nil {
		return nil, f, err
	}
	db := make([]float64, f.N)
	for k := range db {
		db[k] = 10 * math.Log10(power(s.Samples[k*f.Hop:k*f.Hop+f.Win]))
	}

	return db, f, nil
}

// Features returns one vector per frame: intensity in dB, zero-crossing rate
// and the intensity change from the previous frame.
func Features(s *Sound, width, step float64) ([][]float64, Framing, error) {
	db, f, err := Intensity(s, width, step)
	if err != nil {
		return nil, f, err
	}
	out := make([][]float64, f.N)
	for k := range out {
		frame := s.Samples[k*f.Hop : k*f.Hop+f.Win]
		delta := 0.0
		if k > 0 {
			delta = db[k] - db[k-1]
		}
		out[k] = []float64{db[k], zeroCrossingRate(frame), delta}
	}

	return out, f, nil
}

func power(frame []float64) float64 {
	sum := 0.0
	for _, x := range frame {
		sum += x * x
	}

	return max(sum/float64(len(frame)), minPower)
}

func zeroCrossingRate(frame []float64) float64 {
	if len(frame) < 2 {
		return 0
	}
	n := 0
	for i := 1; i < len(frame); i++ {
		if (frame[i-1] >= 0) != (frame[i] >= 0) {
			n++
		}
	}

	return float64(n) / float64(len(frame)-1)
}
