// SPDX-License-Identifier: MIT

// Package align is the forced-alignment pipeline: it aligns a recording with
// its transcript by synthesizing the transcript, warping the synthesis onto
// the recording and carrying the synthesizer's own annotation across.
//
// 🚀 Pipeline for one transcript interval:
//
//	INIT → TRIM_RECORDING → SYNTHESIZE → TRIM_SYNTHESIS → WARP → RE-PATCH → DONE
//
//	  - INIT checks the text, the domains and the sampling rates
//	  - leading and trailing silence of the recording is trimmed and later
//	    patched back as empty intervals
//	  - silence around the synthesis is cut from its annotation
//	  - the slope constraint of the warp follows the duration ratio of the
//	    two trimmed sounds
//
// ✨ Key features:
//   - collaborators behind small interfaces: Synthesizer (always supplied by
//     the caller), Trimmer (audio.EnergyTrimmer by default) and Warper
//     (dtw.Warper by default)
//   - whole tiers aligned interval by interval in parallel, results joined
//     in interval order
//   - every failure reported as a *StageError naming the pipeline stage
//   - configuration from functional options or from .env files and
//     TIERALIGN_* environment variables (LoadConfig)
//   - optional speaking-rate estimate passed to the synthesizer
package align
