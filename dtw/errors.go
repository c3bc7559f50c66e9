// SPDX-License-Identifier: MIT

package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options or ragged feature vectors.
	ErrBadInput = errors.New("dtw: bad input")

	// ErrPathNeedsMatrix indicates path recovery was requested in Rolling mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrNoPath indicates no admissible path joins both ends under the band and slope constraints.
	ErrNoPath = errors.New("dtw: no admissible path")
)
