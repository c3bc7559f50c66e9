// SPDX-License-Identifier: MIT

package align

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a configuration value out of range or unparsable.
var ErrInvalidConfig = errors.New("align: invalid config")

// Stage names one step of the alignment pipeline.
type Stage string

const (
	StageInit          Stage = "init"
	StageTrimRecording Stage = "trim-recording"
	StageSynthesize    Stage = "synthesize"
	StageTrimSynthesis Stage = "trim-synthesis"
	StageWarp          Stage = "warp"
	StagePatch         Stage = "patch"
	StageConcat        Stage = "concat"
)

// StageError reports the stage at which an alignment failed. Err keeps the
// underlying error, so errors.Is reaches sentinels such as
// tier.ErrEmptyInput.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("align: %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(s Stage, err error) error {
	return &StageError{Stage: s, Err: err}
}
