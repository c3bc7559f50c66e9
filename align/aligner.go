// SPDX-License-Identifier: MIT

package align

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/tieralign/audio"
	"github.com/katalvlaran/tieralign/cutpatch"
	"github.com/katalvlaran/tieralign/dtw"
	"github.com/katalvlaran/tieralign/tier"
)

// Aligner runs the alignment pipeline. It holds no per-call state and is
// safe for concurrent use when its collaborators are.
type Aligner struct {
	synth   Synthesizer
	trimmer Trimmer
	warper  Warper
	cfg     Config
	log     *slog.Logger
}

// New returns an Aligner around s.
//
// Errors:
//   - ErrInvalidConfig if s is nil or the resulting Config does not validate.
func New(s Synthesizer, opts ...Option) (*Aligner, error) {
	if s == nil {
		return nil, fmt.Errorf("New: nil synthesizer: %w", ErrInvalidConfig)
	}
	a := defaultAligner(s)
	for _, opt := range opts {
		opt(a)
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return a, nil
}

// Config returns a copy of the effective configuration.
func (a *Aligner) Config() Config { return a.cfg }

// AlignInterval aligns recording rec with the text of ti and returns the
// synthesizer's annotation re-timed onto rec. The result covers rec's domain.
//
// Implementation:
//   - Stage 1 (init): ti holds at least one token, rec and ti share a domain
//     within one sample period, the sampling rates agree.
//   - Stage 2 (trim-recording): leading and trailing silence of rec is found
//     when Config.TrimRecording is set.
//   - Stage 3 (synthesize): the text is rendered, with an estimated speaking
//     rate when Config.EstimateWordsPerMinute is set.
//   - Stage 4 (trim-synthesis): silence around the synthesis is cut from the
//     sound and from its annotation.
//   - Stage 5 (warp): the slope class follows the duration ratio of the two
//     sounds; the annotation is re-timed through the warp.
//   - Stage 6 (patch): trimmed recording silence returns as empty intervals,
//     with precision two sample periods.
//
// Errors:
//   - *StageError wrapping tier.ErrEmptyInput, tier.ErrDomainMismatch,
//     audio.ErrSamplingRateMismatch, ctx.Err() or a collaborator's error.
func (a *Aligner) AlignInterval(ctx context.Context, rec *audio.Sound, ti tier.Interval) (*tier.Document, error) {
	log := a.log.With("xmin", ti.Xmin, "xmax", ti.Xmax)
	fail := func(s Stage, err error) error {
		log.Warn("alignment failed", "stage", s, "err", err)
		return stageErr(s, err)
	}

	// Stage 1: preconditions.
	if rec == nil || len(rec.Samples) == 0 {
		return nil, fail(StageInit, fmt.Errorf("AlignInterval: no recording: %w", tier.ErrEmptyInput))
	}
	words := strings.Fields(ti.Text)
	if len(words) == 0 {
		return nil, fail(StageInit, fmt.Errorf("AlignInterval: no text: %w", tier.ErrEmptyInput))
	}
	eps := rec.Dx()
	if !rec.Domain().Close(tier.Domain{Xmin: ti.Xmin, Xmax: ti.Xmax}, eps) {
		return nil, fail(StageInit, fmt.Errorf("AlignInterval: recording %v, interval [%g, %g]: %w",
			rec.Domain(), ti.Xmin, ti.Xmax, tier.ErrDomainMismatch))
	}
	if rate := a.synth.SampleRate(); rate != rec.SampleRate {
		return nil, fail(StageInit, fmt.Errorf("AlignInterval: recording %g Hz, synthesizer %g Hz: %w",
			rec.SampleRate, rate, audio.ErrSamplingRateMismatch))
	}

	// Stage 2: recording silence.
	trimmed, t1, t2 := rec, rec.Xmin, rec.Xmax()
	if a.cfg.TrimRecording {
		if err := ctx.Err(); err != nil {
			return nil, fail(StageTrimRecording, err)
		}
		log.Debug("stage", "stage", StageTrimRecording)
		var err error
		trimmed, t1, t2, err = a.trimmer.TrimSilence(rec, a.cfg.Recording)
		if err != nil {
			return nil, fail(StageTrimRecording, err)
		}
	}
	recSilence := t1-rec.Xmin > eps || rec.Xmax()-t2 > eps

	// Stage 3: synthesis.
	if err := ctx.Err(); err != nil {
		return nil, fail(StageSynthesize, err)
	}
	req := Request{Text: strings.Join(words, " "), WordsPerMinute: a.cfg.WordsPerMinute}
	if a.cfg.EstimateWordsPerMinute {
		req.WordsPerMinute = EstimateWordsPerMinute(ti.Text, trimmed.Duration())
	}
	log.Debug("stage", "stage", StageSynthesize, "wpm", req.WordsPerMinute)
	syn, synDoc, err := a.synth.Synthesize(ctx, req)
	if err != nil {
		return nil, fail(StageSynthesize, err)
	}
	if syn == nil || len(syn.Samples) == 0 || synDoc == nil {
		return nil, fail(StageSynthesize, fmt.Errorf("AlignInterval: nothing synthesized: %w", tier.ErrEmptyInput))
	}
	if syn.SampleRate != rec.SampleRate {
		return nil, fail(StageSynthesize, fmt.Errorf("AlignInterval: synthesis at %g Hz: %w",
			syn.SampleRate, audio.ErrSamplingRateMismatch))
	}
	if !synDoc.Domain.Close(syn.Domain(), eps) {
		return nil, fail(StageSynthesize, fmt.Errorf("AlignInterval: synthesis %v, annotation %v: %w",
			syn.Domain(), synDoc.Domain, tier.ErrDomainMismatch))
	}

	// Stage 4: synthesis silence.
	if err := ctx.Err(); err != nil {
		return nil, fail(StageTrimSynthesis, err)
	}
	log.Debug("stage", "stage", StageTrimSynthesis)
	synPart, s1, s2, err := a.trimmer.TrimSilence(syn, a.cfg.Synthesis)
	if err != nil {
		return nil, fail(StageTrimSynthesis, err)
	}
	if s1-syn.Xmin > eps || syn.Xmax()-s2 > eps {
		if synDoc, err = synDoc.ExtractPart(s1, s2, eps); err != nil {
			return nil, fail(StageTrimSynthesis, err)
		}
	}

	// Stage 5: warp.
	if err := ctx.Err(); err != nil {
		return nil, fail(StageWarp, err)
	}
	params := dtw.WarpParams{
		AnalysisWidth: a.cfg.AnalysisWidth,
		TimeStep:      a.cfg.TimeStep,
		Band:          a.cfg.Band,
		Constraint:    dtw.ConstraintForRatio(trimmed.Duration() / synPart.Duration()),
	}
	log.Debug("stage", "stage", StageWarp, "constraint", params.Constraint.String())
	ret, err := a.warper.Warp(trimmed, synPart, params)
	if err != nil {
		return nil, fail(StageWarp, err)
	}
	out, err := ret.Retime(synDoc, eps)
	if err != nil {
		return nil, fail(StageWarp, err)
	}
	if !recSilence {
		return out, nil
	}

	// Stage 6: put the trimmed silence back.
	log.Debug("stage", "stage", StagePatch, "t1", t1, "t2", t2)
	trimTier := a.trimTier(rec.Domain(), t1, t2, eps)
	if out, err = cutpatch.PatchDocument(out, trimTier, a.cfg.TrimLabel, 2*eps); err != nil {
		return nil, fail(StagePatch, err)
	}

	return out, nil
}

// trimTier marks [Xmin, t1) and [t2, Xmax) of d with the trim label. Edges
// not longer than eps are left out.
func (a *Aligner) trimTier(d tier.Domain, t1, t2, eps float64) *tier.IntervalTier {
	b := tier.NewBuilder(a.cfg.TrimLabel, d, eps)
	if t1-d.Xmin > eps {
		b.Emit(t1, a.cfg.TrimLabel)
	}
	if d.Xmax-t2 > eps {
		b.Emit(t2, "")
		b.Emit(d.Xmax, a.cfg.TrimLabel)
	}

	return b.Tier()
}

// SynthesizeInterval renders the text of one interval of an interval tier
// of doc. Indices are 0-based.
//
// Errors:
//   - *StageError wrapping tier.ErrInvalidRange, tier.ErrInvalidTierKind,
//     tier.ErrEmptyInput or the synthesizer's error.
func (a *Aligner) SynthesizeInterval(ctx context.Context, doc *tier.Document, tierIndex, interval int) (*audio.Sound, *tier.Document, error) {
	if doc == nil {
		return nil, nil, stageErr(StageInit, fmt.Errorf("SynthesizeInterval: nil document: %w", tier.ErrEmptyInput))
	}
	t, err := doc.IntervalTier(tierIndex)
	if err != nil {
		return nil, nil, stageErr(StageInit, fmt.Errorf("SynthesizeInterval: %w", err))
	}
	if interval < 0 || interval >= len(t.Intervals) {
		return nil, nil, stageErr(StageInit, fmt.Errorf("SynthesizeInterval: interval %d of %d: %w",
			interval, len(t.Intervals), tier.ErrInvalidRange))
	}
	words := strings.Fields(t.Intervals[interval].Text)
	if len(words) == 0 {
		return nil, nil, stageErr(StageInit, fmt.Errorf("SynthesizeInterval: interval %d has no text: %w",
			interval, tier.ErrEmptyInput))
	}
	snd, ann, err := a.synth.Synthesize(ctx, Request{Text: strings.Join(words, " "), WordsPerMinute: a.cfg.WordsPerMinute})
	if err != nil {
		return nil, nil, stageErr(StageSynthesize, err)
	}

	return snd, ann, nil
}

// EstimateWordsPerMinute estimates the speaking rate of text spoken in
// duration seconds: the mean of the token rate and the rate of five-rune
// words. It returns 0 for a non-positive duration.
func EstimateWordsPerMinute(text string, duration float64) int {
	if !(duration > 0) {
		return 0
	}
	tokens := float64(len(strings.Fields(text)))
	runes := float64(len([]rune(text)))

	return int(0.5 * (60*tokens/duration + 60*(runes/5)/duration))
}
