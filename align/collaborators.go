// SPDX-License-Identifier: MIT

package align

import (
	"context"

	"github.com/katalvlaran/tieralign/audio"
	"github.com/katalvlaran/tieralign/dtw"
	"github.com/katalvlaran/tieralign/tier"
)

// Request is one synthesis job.
type Request struct {
	Text string

	// WordsPerMinute is the speaking rate; 0 leaves the synthesizer's own.
	WordsPerMinute int
}

// Synthesizer renders text to speech together with its ground-truth
// annotation. The returned document must cover the returned sound's domain.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) (*audio.Sound, *tier.Document, error)

	// SampleRate is the rate of every sound Synthesize returns.
	SampleRate() float64
}

// Trimmer finds the sounding part of a sound. It returns the part and its
// start and end times, or the whole sound when there is nothing to trim.
type Trimmer interface {
	TrimSilence(s *audio.Sound, p audio.TrimParams) (*audio.Sound, float64, float64, error)
}

// Retimer moves an annotation of the synthesis onto the recording's time axis.
type Retimer interface {
	Retime(doc *tier.Document, eps float64) (*tier.Document, error)
}

// Warper aligns a recording with a synthesis.
type Warper interface {
	Warp(rec, syn *audio.Sound, p dtw.WarpParams) (Retimer, error)
}

// DTWWarper adapts a dtw.Warper to the Warper interface.
func DTWWarper(w *dtw.Warper) Warper { return dtwWarper{w: w} }

type dtwWarper struct{ w *dtw.Warper }

func (d dtwWarper) Warp(rec, syn *audio.Sound, p dtw.WarpParams) (Retimer, error) {
	m, err := d.w.Warp(rec, syn, p)
	if err != nil {
		return nil, err
	}

	return m, nil
}
