// SPDX-License-Identifier: MIT

package audio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tieralign/audio"
)

const rate = 8000

var recordingTrim = audio.TrimParams{
	SilenceThresholdDB:  -35,
	MinSilenceDuration:  0.1,
	MinSoundingDuration: 0.1,
}

func concat(t *testing.T, parts ...*audio.Sound) *audio.Sound {
	t.Helper()
	s, err := audio.Concat(parts...)
	require.NoError(t, err)
	return s
}

func TestTrimSilence_Edges(t *testing.T) {
	s := concat(t,
		audio.NewSilence(rate, 0.3),
		audio.NewSine(rate, 0.5, 440, 0.5),
		audio.NewSilence(rate, 0.2),
	)
	tr := &audio.EnergyTrimmer{}

	trimmed, t1, t2, err := tr.TrimSilence(s, recordingTrim)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, t1, 0.015)
	assert.InDelta(t, 0.8, t2, 0.015)
	assert.InDelta(t, t1, trimmed.Xmin, 1e-12)
	assert.InDelta(t, t2, trimmed.Xmax(), 1e-12)

	keep := recordingTrim
	keep.KeepDuration = 0.1
	_, k1, k2, err := tr.TrimSilence(s, keep)
	require.NoError(t, err)
	assert.InDelta(t, t1-0.1, k1, 1e-3)
	assert.InDelta(t, t2+0.1, k2, 1e-3)
}

func TestTrimSilence_NothingToTrim(t *testing.T) {
	tr := &audio.EnergyTrimmer{}

	tone := audio.NewSine(rate, 0.4, 300, 0.3)
	out, t1, t2, err := tr.TrimSilence(tone, recordingTrim)
	require.NoError(t, err)
	assert.Equal(t, tone.Samples, out.Samples)
	assert.Zero(t, t1)
	assert.InDelta(t, 0.4, t2, 1e-12)

	quiet := audio.NewSilence(rate, 0.4)
	out, t1, t2, err = tr.TrimSilence(quiet, recordingTrim)
	require.NoError(t, err)
	assert.Len(t, out.Samples, len(quiet.Samples))
	assert.Zero(t, t1)
	assert.InDelta(t, 0.4, t2, 1e-12)
}

// TestTrimSilence_ShortClick checks that a click shorter than the minimum
// sounding duration does not stop the leading trim.
func TestTrimSilence_ShortClick(t *testing.T) {
	s := concat(t,
		audio.NewSilence(rate, 0.2),
		audio.NewSine(rate, 0.01, 440, 0.5),
		audio.NewSilence(rate, 0.19),
		audio.NewSine(rate, 0.4, 440, 0.5),
		audio.NewSilence(rate, 0.2),
	)
	tr := &audio.EnergyTrimmer{}

	_, t1, _, err := tr.TrimSilence(s, recordingTrim)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, t1, 0.015)

	eager := recordingTrim
	eager.MinSoundingDuration = 0
	_, t1, _, err = tr.TrimSilence(s, eager)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, t1, 0.015)
}

func TestTrimSilence_Errors(t *testing.T) {
	tr := &audio.EnergyTrimmer{TimeStep: -1}
	_, _, _, err := tr.TrimSilence(audio.NewSine(rate, 0.1, 440, 1), recordingTrim)
	assert.ErrorIs(t, err, audio.ErrBadAnalysis)

	_, _, _, err = (&audio.EnergyTrimmer{}).TrimSilence(&audio.Sound{SampleRate: rate}, recordingTrim)
	assert.ErrorIs(t, err, audio.ErrEmptySound)
}
