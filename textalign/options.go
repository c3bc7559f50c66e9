// SPDX-License-Identifier: MIT

package textalign

import "github.com/katalvlaran/tieralign/editdist"

// DefaultNormalize enables NFC normalization of labels before comparison.
const DefaultNormalize = true

// Option mutates Options.
type Option func(*Options)

// Options holds the effective table-building configuration.
type Options struct {
	costs     *editdist.Costs
	normalize bool
}

// WithCosts sets the edit costs. A nil costs restores unit costs.
func WithCosts(c *editdist.Costs) Option {
	return func(o *Options) { o.costs = c }
}

// WithNormalization toggles NFC normalization of labels.
func WithNormalization(on bool) Option {
	return func(o *Options) { o.normalize = on }
}

func gatherOptions(opts []Option) Options {
	o := Options{normalize: DefaultNormalize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.costs == nil {
		o.costs = editdist.DefaultCosts()
	}

	return o
}
