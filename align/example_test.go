// SPDX-License-Identifier: MIT

package align_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tieralign/align"
	"github.com/katalvlaran/tieralign/audio"
	"github.com/katalvlaran/tieralign/tier"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAligner_AlignInterval
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One second of speech holding "hello world". The synthesizer renders it
//	in 0.88 s: 0.1 s silence, "hello" 0.3 s, 0.08 s gap, "world" 0.3 s,
//	0.1 s silence.
//
// Collaborators:
//   - a trimmer that never trims
//   - a warper that stretches the synthesis uniformly
//
// Effect:
//
//	Every boundary of the synthesized annotation is scaled by 1/0.88.
func ExampleAligner_AlignInterval() {
	a, err := align.New(newFakeSynth(),
		align.WithTrimmer(keepTrimmer{}), align.WithWarper(linearWarper{}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	rec := audio.NewSine(testRate, 1, 300, 0.3)

	doc, err := a.AlignInterval(context.Background(), rec, tier.Interval{Xmin: 0, Xmax: 1, Text: "hello world"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	words, _ := doc.IntervalTier(0)
	for _, iv := range words.Intervals {
		fmt.Printf("[%.3f, %.3f) %q\n", iv.Xmin, iv.Xmax, iv.Text)
	}
	// Output:
	// [0.000, 0.114) ""
	// [0.114, 0.455) "hello"
	// [0.455, 0.545) ""
	// [0.545, 0.886) "world"
	// [0.886, 1.000) ""
}

// ExampleEstimateWordsPerMinute averages the token rate (90) and the rate of
// five-letter words (78) over two seconds.
func ExampleEstimateWordsPerMinute() {
	fmt.Println(align.EstimateWordsPerMinute("one two three", 2))
	// Output: 84
}
