// SPDX-License-Identifier: MIT

package audio

import "errors"

var (
	// ErrSamplingRateMismatch indicates two sounds (or a sound and a
	// synthesizer) do not share a sampling rate.
	ErrSamplingRateMismatch = errors.New("audio: sampling rate mismatch")

	// ErrBadSampleRate indicates a sampling rate that is not a positive finite number.
	ErrBadSampleRate = errors.New("audio: bad sampling rate")

	// ErrEmptySound indicates a sound without samples.
	ErrEmptySound = errors.New("audio: empty sound")

	// ErrInvalidRange indicates a time range outside the sound or of non-positive length.
	ErrInvalidRange = errors.New("audio: invalid range")

	// ErrBadAnalysis indicates a non-positive frame width or time step.
	ErrBadAnalysis = errors.New("audio: bad analysis parameters")
)
