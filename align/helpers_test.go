// SPDX-License-Identifier: MIT

package align_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/katalvlaran/tieralign/align"
	"github.com/katalvlaran/tieralign/audio"
	"github.com/katalvlaran/tieralign/dtw"
	"github.com/katalvlaran/tieralign/tier"
)

const (
	testRate = 8000.0
	perRune  = 0.06
	wordGap  = 0.08
)

var errBoom = errors.New("boom")

// render draws one tone burst per word, alternating 300 Hz and 1200 Hz,
// separated by silent gaps, and returns it with its ground truth: a "words"
// interval tier and a "marks" point tier holding each word start.
func render(words []string, stretch, lead, trail, amp float64) (*audio.Sound, *tier.Document) {
	var samples []float64
	now := func() float64 { return float64(len(samples)) / testRate }
	add := func(dur, freq float64) {
		n := int(math.Round(dur * testRate))
		for i := 0; i < n; i++ {
			v := 0.0
			if freq > 0 {
				v = amp * math.Sin(2*math.Pi*freq*float64(i)/testRate)
			}
			samples = append(samples, v)
		}
	}

	bounds := []float64{0}
	var labels []string
	var marks []tier.Point
	add(lead, 0)
	bounds = append(bounds, now())
	labels = append(labels, "")
	for k, w := range words {
		if k > 0 {
			add(wordGap*stretch, 0)
			bounds = append(bounds, now())
			labels = append(labels, "")
		}
		marks = append(marks, tier.Point{Time: now(), Mark: w})
		freq := 300.0
		if k%2 == 1 {
			freq = 1200
		}
		add(perRune*stretch*float64(utf8.RuneCountInString(w)), freq)
		bounds = append(bounds, now())
		labels = append(labels, w)
	}
	add(trail, 0)
	bounds = append(bounds, now())
	labels = append(labels, "")

	snd, err := audio.New(0, testRate, samples)
	if err != nil {
		panic(err)
	}
	wt, err := tier.NewIntervalTierFromBounds("words", bounds, labels)
	if err != nil {
		panic(err)
	}

	return snd, tier.NewDocument(snd.Domain(), wt, tier.NewPointTier("marks", snd.Domain(), marks...))
}

// fakeSynth renders Request.Text with render. It records every request
// and the peak number of concurrent calls.
type fakeSynth struct {
	rate   float64
	delays map[string]time.Duration
	fail   map[string]bool

	mu       sync.Mutex
	reqs     []align.Request
	inflight int
	peak     int
}

func newFakeSynth() *fakeSynth { return &fakeSynth{rate: testRate} }

func (f *fakeSynth) SampleRate() float64 { return f.rate }

func (f *fakeSynth) Synthesize(ctx context.Context, req align.Request) (*audio.Sound, *tier.Document, error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	f.inflight++
	f.peak = max(f.peak, f.inflight)
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inflight--
		f.mu.Unlock()
	}()

	if d := f.delays[req.Text]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}
	if f.fail[req.Text] {
		return nil, nil, errBoom
	}
	snd, doc := render(strings.Fields(req.Text), 1, 0.1, 0.1, 0.5)

	return snd, doc, nil
}

func (f *fakeSynth) requests() []align.Request {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]align.Request(nil), f.reqs...)
}

// keepTrimmer never trims.
type keepTrimmer struct{}

func (keepTrimmer) TrimSilence(s *audio.Sound, _ audio.TrimParams) (*audio.Sound, float64, float64, error) {
	return s.Clone(), s.Xmin, s.Xmax(), nil
}

// linearWarper stretches the synthesis uniformly onto the recording.
type linearWarper struct{}

func (linearWarper) Warp(rec, syn *audio.Sound, _ dtw.WarpParams) (align.Retimer, error) {
	return dtw.NewMapping([]float64{syn.Xmin, syn.Xmax()}, []float64{rec.Xmin, rec.Xmax()})
}

// labels returns the non-empty labels of an interval tier in order.
func labels(t *tier.IntervalTier) []string {
	var out []string
	for _, iv := range t.Intervals {
		if iv.Text != "" {
			out = append(out, iv.Text)
		}
	}

	return out
}

// spanOf returns the first interval labelled label.
func spanOf(t *tier.IntervalTier, label string) (tier.Interval, bool) {
	for _, iv := range t.Intervals {
		if iv.Text == label {
			return iv, true
		}
	}

	return tier.Interval{}, false
}
