// SPDX-License-Identifier: MIT

package dtw_test

import (
	"testing"

	"github.com/katalvlaran/tieralign/audio"
	"github.com/katalvlaran/tieralign/dtw"
)

// benchmarkDTW is a helper that runs DTW on sequences of lengths n and m using opts.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkDTW(b *testing.B, n, m int, opts dtw.Options) {
	a := make([]float64, n)
	bSeq := make([]float64, m)
	for i := 0; i < n; i++ {
		a[i] = float64(i)
	}
	for j := 0; j < m; j++ {
		bSeq[j] = float64(j) * float64(n) / float64(m)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dtw.DTW(a, bSeq, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDTW_FullMatrixSmall benchmarks FullMatrix mode on small 100×100 sequences.
func BenchmarkDTW_FullMatrixSmall(b *testing.B) {
	benchmarkDTW(b, 100, 100, dtw.DefaultOptions())
}

// BenchmarkDTW_FullMatrixMedium benchmarks FullMatrix mode on medium 500×500 sequences.
func BenchmarkDTW_FullMatrixMedium(b *testing.B) {
	benchmarkDTW(b, 500, 500, dtw.DefaultOptions())
}

// BenchmarkDTW_RollingMedium benchmarks Rolling mode on medium 500×500 sequences.
func BenchmarkDTW_RollingMedium(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.Rolling
	benchmarkDTW(b, 500, 500, opts)
}

// BenchmarkDTW_SlopeThirdPath benchmarks the five-step pattern with path recovery.
func BenchmarkDTW_SlopeThirdPath(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Constraint = dtw.SlopeThird
	opts.ReturnPath = true
	benchmarkDTW(b, 400, 600, opts)
}

// BenchmarkDTW_Band benchmarks a narrow band on mismatched lengths.
func BenchmarkDTW_Band(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Window = 10
	benchmarkDTW(b, 500, 700, opts)
}

// BenchmarkWarper_OneSecond benchmarks feature extraction, DTW and mapping
// for one second of 16 kHz audio against a faster rendition.
func BenchmarkWarper_OneSecond(b *testing.B) {
	rec := audio.NewSine(16000, 1, 220, 0.3)
	syn := audio.NewSine(16000, 0.8, 220, 0.3)
	params := dtw.DefaultWarpParams()
	params.Constraint = dtw.SlopeHalf
	w := &dtw.Warper{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.Warp(rec, syn, params); err != nil {
			b.Fatalf("Warp failed: %v", err)
		}
	}
}
