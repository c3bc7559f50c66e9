// SPDX-License-Identifier: MIT

package editdist

import "math"

// Default unit weights.
const (
	DefaultInsertion    = 1.0
	DefaultDeletion     = 1.0
	DefaultSubstitution = 1.0
)

const panicBadWeight = "editdist: weight must be finite and non-negative"

// Costs holds the weights of the three edit operations. Matching tokens cost
// nothing unless a pair weight says otherwise.
//
// Per-token and per-pair weights take precedence over the defaults:
//   - insertion of target token t: InsertionOf(t)
//   - deletion of source token s:  DeletionOf(s)
//   - substitution of s for t:     SubstitutionOf(t, s)
type Costs struct {
	Insertion    float64
	Deletion     float64
	Substitution float64

	insertion map[string]float64
	deletion  map[string]float64
	pair      map[[2]string]float64
}

// CostOption configures Costs. Constructors panic on negative or non-finite
// weights, which are programmer errors.
type CostOption func(*Costs)

// DefaultCosts returns unit costs for all three operations.
func DefaultCosts() *Costs {
	return &Costs{
		Insertion:    DefaultInsertion,
		Deletion:     DefaultDeletion,
		Substitution: DefaultSubstitution,
	}
}

// NewCosts returns DefaultCosts with opts applied.
func NewCosts(opts ...CostOption) *Costs {
	c := DefaultCosts()
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// WithInsertion sets the default insertion weight.
func WithInsertion(w float64) CostOption {
	checkWeight(w)
	return func(c *Costs) { c.Insertion = w }
}

// WithDeletion sets the default deletion weight.
func WithDeletion(w float64) CostOption {
	checkWeight(w)
	return func(c *Costs) { c.Deletion = w }
}

// WithSubstitution sets the default substitution weight.
func WithSubstitution(w float64) CostOption {
	checkWeight(w)
	return func(c *Costs) { c.Substitution = w }
}

// WithTokenInsertion sets the insertion weight of one target token.
func WithTokenInsertion(token string, w float64) CostOption {
	checkWeight(w)
	return func(c *Costs) {
		if c.insertion == nil {
			c.insertion = make(map[string]float64)
		}
		c.insertion[token] = w
	}
}

// WithTokenDeletion sets the deletion weight of one source token.
func WithTokenDeletion(token string, w float64) CostOption {
	checkWeight(w)
	return func(c *Costs) {
		if c.deletion == nil {
			c.deletion = make(map[string]float64)
		}
		c.deletion[token] = w
	}
}

// WithPairCost sets the weight of aligning target token t with source token s.
// A pair of equal tokens may be given a non-zero weight too.
func WithPairCost(t, s string, w float64) CostOption {
	checkWeight(w)
	return func(c *Costs) {
		if c.pair == nil {
			c.pair = make(map[[2]string]float64)
		}
		c.pair[[2]string{t, s}] = w
	}
}

// InsertionOf returns the weight of inserting target token t.
func (c *Costs) InsertionOf(t string) float64 {
	if w, ok := c.insertion[t]; ok {
		return w
	}

	return c.Insertion
}

// DeletionOf returns the weight of deleting source token s.
func (c *Costs) DeletionOf(s string) float64 {
	if w, ok := c.deletion[s]; ok {
		return w
	}

	return c.Deletion
}

// SubstitutionOf returns the weight of aligning t with s: zero for equal
// tokens unless a pair weight is set.
func (c *Costs) SubstitutionOf(t, s string) float64 {
	if w, ok := c.pair[[2]string{t, s}]; ok {
		return w
	}
	if t == s {
		return 0
	}

	return c.Substitution
}

func checkWeight(w float64) {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		panic(panicBadWeight)
	}
}
