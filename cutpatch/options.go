// SPDX-License-Identifier: MIT

package cutpatch

// DefaultWithBoundaries selects the "no boundaries" interval patch variant.
const DefaultWithBoundaries = false

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective patch configuration.
type Options struct {
	withBoundaries bool
}

// WithBoundaries makes PatchDocument insert an empty interval for every patch
// span, splitting the interval a span falls into.
func WithBoundaries() Option {
	return func(o *Options) { o.withBoundaries = true }
}

// WithoutBoundaries restores the default variant: interior patch spans
// lengthen the interval they fall into.
func WithoutBoundaries() Option {
	return func(o *Options) { o.withBoundaries = false }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := Options{withBoundaries: DefaultWithBoundaries}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
