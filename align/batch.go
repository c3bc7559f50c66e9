// SPDX-License-Identifier: MIT

package align

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tieralign/audio"
	"github.com/katalvlaran/tieralign/tier"
)

// AlignTier aligns intervals istart..iend (0-based, inclusive) of t with the
// matching parts of rec and joins the results end to end. The first result
// keeps its times; each following one starts where the previous ended.
//
// Implementation:
//   - Stage 1: validate the range and that rec covers it.
//   - Stage 2: skip intervals without text.
//   - Stage 3: AlignInterval on rec's part under each remaining interval, at
//     most Config.Parallelism at a time. The first failure cancels the rest.
//   - Stage 4: tier.Concat in interval order.
//
// Errors:
//   - *StageError wrapping tier.ErrInvalidRange, tier.ErrDomainMismatch,
//     tier.ErrEmptyInput (nothing to align) or the first AlignInterval error.
//
// Complexity:
//   - One AlignInterval per non-empty interval; the DTW dominates.
func (a *Aligner) AlignTier(ctx context.Context, rec *audio.Sound, t *tier.IntervalTier, istart, iend int) (*tier.Document, error) {
	if t == nil || rec == nil {
		return nil, stageErr(StageInit, fmt.Errorf("AlignTier: %w", tier.ErrEmptyInput))
	}
	if istart < 0 || iend < istart || iend >= len(t.Intervals) {
		return nil, stageErr(StageInit, fmt.Errorf("AlignTier(%q): range [%d, %d] of %d intervals: %w",
			t.Name, istart, iend, len(t.Intervals), tier.ErrInvalidRange))
	}
	lo, hi := t.Intervals[istart].Xmin, t.Intervals[iend].Xmax
	if d, eps := rec.Domain(), rec.Dx()/2; !d.Contains(lo, eps) || !d.Contains(hi, eps) {
		return nil, stageErr(StageInit, fmt.Errorf("AlignTier(%q): [%g, %g] outside recording %v: %w",
			t.Name, lo, hi, d, tier.ErrDomainMismatch))
	}

	var jobs []tier.Interval
	for i := istart; i <= iend; i++ {
		iv := t.Intervals[i]
		if strings.TrimSpace(iv.Text) == "" {
			a.log.Info("skipping empty interval", "tier", t.Name, "interval", i)
			continue
		}
		jobs = append(jobs, iv)
	}
	if len(jobs) == 0 {
		return nil, stageErr(StageConcat, fmt.Errorf("AlignTier(%q): no text in [%d, %d]: %w",
			t.Name, istart, iend, tier.ErrEmptyInput))
	}

	results := make([]*tier.Document, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Parallelism)
	for k, iv := range jobs {
		g.Go(func() error {
			part, err := rec.ExtractPart(iv.Xmin, iv.Xmax)
			if err != nil {
				return stageErr(StageInit, fmt.Errorf("AlignTier(%q): %w", t.Name, err))
			}
			doc, err := a.AlignInterval(gctx, part, iv)
			if err != nil {
				return err
			}
			results[k] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out, err := tier.Concat(results...)
	if err != nil {
		return nil, stageErr(StageConcat, fmt.Errorf("AlignTier(%q): %w", t.Name, err))
	}
	a.log.Debug("tier aligned", "tier", t.Name, "intervals", len(jobs))

	return out, nil
}

// AlignDocument is AlignTier on interval tier tierIndex (0-based) of doc.
//
// Errors:
//   - *StageError wrapping tier.ErrInvalidRange or tier.ErrInvalidTierKind
//     for a bad tier index, plus everything AlignTier returns.
func (a *Aligner) AlignDocument(ctx context.Context, rec *audio.Sound, doc *tier.Document, tierIndex, istart, iend int) (*tier.Document, error) {
	if doc == nil {
		return nil, stageErr(StageInit, fmt.Errorf("AlignDocument: nil document: %w", tier.ErrEmptyInput))
	}
	t, err := doc.IntervalTier(tierIndex)
	if err != nil {
		return nil, stageErr(StageInit, fmt.Errorf("AlignDocument: %w", err))
	}

	return a.AlignTier(ctx, rec, t, istart, iend)
}
