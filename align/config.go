// SPDX-License-Identifier: MIT

package align

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/tieralign/audio"
	"github.com/katalvlaran/tieralign/dtw"
)

// Recording silence detection defaults.
const (
	DefaultSilenceThresholdDB  = -35.0
	DefaultMinSilenceDuration  = 0.1
	DefaultMinSoundingDuration = 0.1
)

// Synthesis silence detection defaults. Synthesized silence is close to
// digital zero, and short final plosives must still count as sounding.
const (
	DefaultSynthSilenceThresholdDB  = -40.0
	DefaultSynthMinSilenceDuration  = 0.05
	DefaultSynthMinSoundingDuration = 0.05
)

// Pipeline defaults.
const (
	DefaultBand          = 0.0
	DefaultTrimRecording = true
	DefaultEstimateWPM   = false
	DefaultParallelism   = 4
	DefaultTrimLabel     = "trim"
)

// EnvPrefix prefixes every environment key read by LoadConfig.
const EnvPrefix = "TIERALIGN_"

// Config holds every tunable of the pipeline.
type Config struct {
	// Recording selects the silence trimmed from the recording.
	Recording audio.TrimParams

	// Synthesis selects the silence cut from the synthesis.
	Synthesis audio.TrimParams

	// AnalysisWidth, TimeStep and Band configure the warp (seconds).
	AnalysisWidth float64
	TimeStep      float64
	Band          float64

	// TrimRecording enables trimming and re-patching of recording silence.
	TrimRecording bool

	// EstimateWordsPerMinute derives the speaking rate from the trimmed
	// recording; otherwise WordsPerMinute is passed as is.
	EstimateWordsPerMinute bool
	WordsPerMinute         int

	// Parallelism bounds the intervals aligned at once by AlignTier.
	Parallelism int

	// TrimLabel marks trimmed silence in the patch tier.
	TrimLabel string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Recording: audio.TrimParams{
			SilenceThresholdDB:  DefaultSilenceThresholdDB,
			MinSilenceDuration:  DefaultMinSilenceDuration,
			MinSoundingDuration: DefaultMinSoundingDuration,
		},
		Synthesis: audio.TrimParams{
			SilenceThresholdDB:  DefaultSynthSilenceThresholdDB,
			MinSilenceDuration:  DefaultSynthMinSilenceDuration,
			MinSoundingDuration: DefaultSynthMinSoundingDuration,
		},
		AnalysisWidth:          dtw.DefaultAnalysisWidth,
		TimeStep:               dtw.DefaultTimeStep,
		Band:                   DefaultBand,
		TrimRecording:          DefaultTrimRecording,
		EstimateWordsPerMinute: DefaultEstimateWPM,
		Parallelism:            DefaultParallelism,
		TrimLabel:              DefaultTrimLabel,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	for name, p := range map[string]audio.TrimParams{"Recording": c.Recording, "Synthesis": c.Synthesis} {
		switch {
		case p.SilenceThresholdDB > 0 || math.IsNaN(p.SilenceThresholdDB):
			return fmt.Errorf("%s.SilenceThresholdDB=%g: %w", name, p.SilenceThresholdDB, ErrInvalidConfig)
		case !(p.MinSilenceDuration >= 0), !(p.MinSoundingDuration >= 0), !(p.KeepDuration >= 0):
			return fmt.Errorf("%s: negative duration: %w", name, ErrInvalidConfig)
		}
	}
	switch {
	case !(c.AnalysisWidth > 0):
		return fmt.Errorf("AnalysisWidth=%g: %w", c.AnalysisWidth, ErrInvalidConfig)
	case !(c.TimeStep > 0):
		return fmt.Errorf("TimeStep=%g: %w", c.TimeStep, ErrInvalidConfig)
	case !(c.Band >= 0):
		return fmt.Errorf("Band=%g: %w", c.Band, ErrInvalidConfig)
	case c.WordsPerMinute < 0:
		return fmt.Errorf("WordsPerMinute=%d: %w", c.WordsPerMinute, ErrInvalidConfig)
	case c.Parallelism < 1:
		return fmt.Errorf("Parallelism=%d: %w", c.Parallelism, ErrInvalidConfig)
	case c.TrimLabel == "":
		return fmt.Errorf("empty TrimLabel: %w", ErrInvalidConfig)
	}

	return nil
}

func floatField(dst *float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}
}

func intField(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func boolField(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func (c *Config) fields() map[string]func(string) error {
	return map[string]func(string) error{
		"SILENCE_THRESHOLD_DB":        floatField(&c.Recording.SilenceThresholdDB),
		"MIN_SILENCE_DURATION":        floatField(&c.Recording.MinSilenceDuration),
		"MIN_SOUNDING_DURATION":       floatField(&c.Recording.MinSoundingDuration),
		"KEEP_SILENCE":                floatField(&c.Recording.KeepDuration),
		"SYNTH_SILENCE_THRESHOLD_DB":  floatField(&c.Synthesis.SilenceThresholdDB),
		"SYNTH_MIN_SILENCE_DURATION":  floatField(&c.Synthesis.MinSilenceDuration),
		"SYNTH_MIN_SOUNDING_DURATION": floatField(&c.Synthesis.MinSoundingDuration),
		"ANALYSIS_WIDTH":              floatField(&c.AnalysisWidth),
		"TIME_STEP":                   floatField(&c.TimeStep),
		"BAND":                        floatField(&c.Band),
		"TRIM_RECORDING":              boolField(&c.TrimRecording),
		"ESTIMATE_WPM":                boolField(&c.EstimateWordsPerMinute),
		"WORDS_PER_MINUTE":            intField(&c.WordsPerMinute),
		"PARALLELISM":                 intField(&c.Parallelism),
		"TRIM_LABEL": func(v string) error {
			c.TrimLabel = v
			return nil
		},
	}
}

// LoadConfig builds a Config from DefaultConfig, the given .env files and
// the process environment, in increasing precedence. Keys carry EnvPrefix,
// e.g. TIERALIGN_PARALLELISM=8. With no files, ./.env is read if present.
//
// Errors:
//   - the file error of godotenv.Read for an explicitly named file.
//   - ErrInvalidConfig for an unparsable value or a failed Validate.
func LoadConfig(files ...string) (Config, error) {
	env, err := godotenv.Read(files...)
	if err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("LoadConfig: %w", err)
		}
		env = map[string]string{}
	}

	cfg := DefaultConfig()
	for name, set := range cfg.fields() {
		key := EnvPrefix + name
		v, ok := os.LookupEnv(key)
		if !ok {
			v, ok = env[key]
		}
		if !ok {
			continue
		}
		if err := set(strings.TrimSpace(v)); err != nil {
			return Config{}, fmt.Errorf("LoadConfig: %s=%q: %v: %w", key, v, err, ErrInvalidConfig)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}
