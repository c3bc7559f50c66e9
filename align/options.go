// SPDX-License-Identifier: MIT

package align

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/tieralign/audio"
	"github.com/katalvlaran/tieralign/dtw"
)

// Option configures an Aligner. Constructors panic on nonsensical values.
type Option func(*Aligner)

// WithConfig replaces the whole configuration. It is validated by New.
func WithConfig(cfg Config) Option {
	return func(a *Aligner) { a.cfg = cfg }
}

// WithTrimmer replaces the default audio.EnergyTrimmer.
func WithTrimmer(t Trimmer) Option {
	if t == nil {
		panic("align: WithTrimmer(nil)")
	}
	return func(a *Aligner) { a.trimmer = t }
}

// WithWarper replaces the default dtw.Warper.
func WithWarper(w Warper) Option {
	if w == nil {
		panic("align: WithWarper(nil)")
	}
	return func(a *Aligner) { a.warper = w }
}

// WithLogger sets the logger; stage transitions go to Debug, skipped
// intervals to Info and failures to Warn.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("align: WithLogger(nil)")
	}
	return func(a *Aligner) { a.log = l }
}

// WithParallelism bounds the intervals AlignTier aligns at once.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("align: parallelism must be >= 1")
	}
	return func(a *Aligner) { a.cfg.Parallelism = n }
}

// WithTrimRecording toggles trimming and re-patching of recording silence.
func WithTrimRecording(on bool) Option {
	return func(a *Aligner) { a.cfg.TrimRecording = on }
}

// WithWordsPerMinute fixes the speaking rate passed to the synthesizer and
// disables its estimation.
func WithWordsPerMinute(wpm int) Option {
	if wpm < 0 {
		panic("align: words per minute must be >= 0")
	}
	return func(a *Aligner) {
		a.cfg.WordsPerMinute = wpm
		a.cfg.EstimateWordsPerMinute = false
	}
}

// WithEstimatedWordsPerMinute derives the speaking rate from each recording.
func WithEstimatedWordsPerMinute() Option {
	return func(a *Aligner) { a.cfg.EstimateWordsPerMinute = true }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultAligner(s Synthesizer) *Aligner {
	return &Aligner{
		synth:   s,
		trimmer: &audio.EnergyTrimmer{},
		warper:  DTWWarper(&dtw.Warper{}),
		cfg:     DefaultConfig(),
		log:     discardLogger(),
	}
}
