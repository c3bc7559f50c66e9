// SPDX-License-Identifier: MIT

package tier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tieralign/tier"
)

func sampleDocument(t *testing.T) *tier.Document {
	t.Helper()
	words := abc(t)
	marks := tier.NewPointTier("marks", words.Domain, tier.Point{Time: 0.5, Mark: "p"}, tier.Point{Time: 2.5, Mark: "q"})

	return tier.NewDocument(words.Domain, words, marks)
}

// TestDocument_IntervalTier checks index and kind validation.
func TestDocument_IntervalTier(t *testing.T) {
	doc := sampleDocument(t)

	it, err := doc.IntervalTier(0)
	require.NoError(t, err)
	assert.Equal(t, "words", it.Name)

	_, err = doc.IntervalTier(1)
	assert.ErrorIs(t, err, tier.ErrInvalidTierKind)

	_, err = doc.IntervalTier(2)
	assert.ErrorIs(t, err, tier.ErrInvalidRange)
}

// TestDocument_CloneIsDeep verifies mutations on a clone never reach the source.
func TestDocument_CloneIsDeep(t *testing.T) {
	doc := sampleDocument(t)
	cp := doc.Clone()
	cp.Tiers[0].(*tier.IntervalTier).Intervals[0].Text = "changed"
	cp.Tiers[1].(*tier.PointTier).Points[0].Time = 0.7

	assert.Equal(t, "a", doc.Tiers[0].(*tier.IntervalTier).Intervals[0].Text)
	assert.Equal(t, 0.5, doc.Tiers[1].(*tier.PointTier).Points[0].Time)
}

// TestDocument_Validate reports a tier whose domain differs from the document.
func TestDocument_Validate(t *testing.T) {
	doc := sampleDocument(t)
	require.NoError(t, doc.Validate(eps))

	doc.Tiers[1].(*tier.PointTier).Domain.Xmax = 5
	assert.ErrorIs(t, doc.Validate(eps), tier.ErrDomainMismatch)
}

// TestDocument_ExtractPart clips intervals and keeps original times.
func TestDocument_ExtractPart(t *testing.T) {
	doc := sampleDocument(t)

	part, err := doc.ExtractPart(0.5, 2.25, eps)
	require.NoError(t, err)
	assert.Equal(t, tier.Domain{Xmin: 0.5, Xmax: 2.25}, part.Domain)

	words := part.Tiers[0].(*tier.IntervalTier)
	assert.Equal(t, []float64{0.5, 1, 2, 2.25}, words.Bounds())
	assert.Equal(t, []string{"a", "b", "c"}, words.Labels())
	assert.Equal(t, []float64{0.5}, part.Tiers[1].(*tier.PointTier).Times())
	assert.NoError(t, part.Validate(eps))

	_, err = doc.ExtractPart(2, 1, eps)
	assert.ErrorIs(t, err, tier.ErrInvalidRange)
}

// TestDocument_WithEdges adds empty edge intervals.
func TestDocument_WithEdges(t *testing.T) {
	doc := sampleDocument(t)

	wide, err := doc.WithEdges(tier.Domain{Xmin: -1, Xmax: 4}, eps)
	require.NoError(t, err)
	words := wide.Tiers[0].(*tier.IntervalTier)
	assert.Equal(t, []float64{-1, 0, 1, 2, 3, 4}, words.Bounds())
	assert.Equal(t, []string{"", "a", "b", "c", ""}, words.Labels())
	assert.NoError(t, wide.Validate(eps))

	_, err = doc.WithEdges(tier.Domain{Xmin: 1, Xmax: 4}, eps)
	assert.ErrorIs(t, err, tier.ErrDomainMismatch)
}

// TestConcat_ShiftsAndOrders verifies each document starts where the previous ended.
func TestConcat_ShiftsAndOrders(t *testing.T) {
	first := sampleDocument(t)
	second := sampleDocument(t).Shift(10)

	joined, err := tier.Concat(first, second)
	require.NoError(t, err)
	assert.Equal(t, tier.Domain{Xmin: 0, Xmax: 6}, joined.Domain)

	words := joined.Tiers[0].(*tier.IntervalTier)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6}, words.Bounds())
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, words.Labels())
	assert.Equal(t, []float64{0.5, 2.5, 3.5, 5.5}, joined.Tiers[1].(*tier.PointTier).Times())
	assert.NoError(t, joined.Validate(eps))
}

// TestConcat_Errors rejects empty input and mismatched tier layouts.
func TestConcat_Errors(t *testing.T) {
	_, err := tier.Concat()
	assert.ErrorIs(t, err, tier.ErrEmptyInput)

	doc := sampleDocument(t)
	swapped := tier.NewDocument(doc.Domain, doc.Tiers[1].Clone(), doc.Tiers[0].Clone())
	_, err = tier.Concat(doc, swapped)
	assert.ErrorIs(t, err, tier.ErrInvalidTierKind)

	short := tier.NewDocument(doc.Domain, doc.Tiers[0].Clone())
	_, err = tier.Concat(doc, short)
	assert.ErrorIs(t, err, tier.ErrInvalidTierKind)
}
