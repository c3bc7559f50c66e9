// SPDX-License-Identifier: MIT

package textalign

import (
	"github.com/katalvlaran/tieralign/tier"
	"golang.org/x/text/unicode/norm"
)

// Token is one labelled interval projected for alignment.
type Token struct {
	// Key is the label as compared, normalized when enabled.
	Key string

	// Interval is the index of the originating interval in its tier.
	Interval int
}

// Tokens returns the labelled intervals of t in order. Intervals with an
// empty label are skipped.
func Tokens(t *tier.IntervalTier, opts ...Option) []Token {
	o := gatherOptions(opts)

	return tokens(t, o.normalize)
}

func tokens(t *tier.IntervalTier, normalize bool) []Token {
	out := make([]Token, 0, len(t.Intervals))
	for i, iv := range t.Intervals {
		if iv.Text == "" {
			continue
		}
		key := iv.Text
		if normalize {
			key = norm.NFC.String(key)
		}
		out = append(out, Token{Key: key, Interval: i})
	}

	return out
}

func keys(toks []Token) []string {
	out := make([]string, len(toks))
	for i, tk := range toks {
		out[i] = tk.Key
	}

	return out
}
