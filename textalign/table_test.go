// SPDX-License-Identifier: MIT

package textalign_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tieralign/editdist"
	"github.com/katalvlaran/tieralign/textalign"
	"github.com/katalvlaran/tieralign/tier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTier(t *testing.T, name string, bounds []float64, labels ...string) *tier.IntervalTier {
	t.Helper()
	it, err := tier.NewIntervalTierFromBounds(name, bounds, labels)
	require.NoError(t, err)

	return it
}

// TestBuild_MatchThenSubstitution covers the two-token case: a match row
// followed by a substitution row.
func TestBuild_MatchThenSubstitution(t *testing.T) {
	target := mustTier(t, "target", []float64{0, 1, 2}, "a", "b")
	source := mustTier(t, "source", []float64{0, 1.5, 3}, "a", "c")

	tb, err := textalign.Build(target, source)
	require.NoError(t, err)
	require.Len(t, tb.Rows, 2)

	assert.Equal(t, textalign.Match, tb.Rows[0].Op)
	assert.Equal(t, textalign.Side{Interval: 0, Text: "a", Start: 0, End: 1}, tb.Rows[0].Target)
	assert.Equal(t, textalign.Side{Interval: 0, Text: "a", Start: 0, End: 1.5}, tb.Rows[0].Source)

	assert.Equal(t, textalign.Substitution, tb.Rows[1].Op)
	assert.Equal(t, "b", tb.Rows[1].Target.Text)
	assert.Equal(t, "c", tb.Rows[1].Source.Text)
	assert.Equal(t, 1.0, tb.Distance)
	assert.Equal(t, "target", tb.TargetName)
	assert.Equal(t, "source", tb.SourceName)
}

// TestBuild_SkipsEmptyLabels checks that origin indices point into the full
// tier even though unlabelled intervals take no part in the alignment.
func TestBuild_SkipsEmptyLabels(t *testing.T) {
	target := mustTier(t, "t", []float64{0, 0.5, 1, 1.5, 2}, "", "hello", "", "world")
	source := mustTier(t, "s", []float64{0, 1, 2}, "hello", "world")

	tb, err := textalign.Build(target, source)
	require.NoError(t, err)
	require.Len(t, tb.Rows, 2)

	assert.Equal(t, 1, tb.Rows[0].Target.Interval)
	assert.Equal(t, 0.5, tb.Rows[0].Target.Start)
	assert.Equal(t, 3, tb.Rows[1].Target.Interval)
	assert.Equal(t, 2.0, tb.Rows[1].Target.End)
	assert.Equal(t, textalign.Counts{Matches: 2}, tb.Counts())
}

func TestBuild_InsertionAndDeletion(t *testing.T) {
	target := mustTier(t, "t", []float64{0, 1, 2, 3}, "a", "b", "c")
	source := mustTier(t, "s", []float64{0, 1, 2, 3}, "a", "c", "d")
	costs := editdist.NewCosts(editdist.WithSubstitution(3))

	tb, err := textalign.Build(target, source, textalign.WithCosts(costs))
	require.NoError(t, err)

	ops := make([]string, len(tb.Rows))
	for i, r := range tb.Rows {
		ops[i] = r.Op.Code()
	}
	// a=a, b inserted, c=c, d deleted
	assert.Equal(t, []string{" ", "i", " ", "d"}, ops)

	ins := tb.Rows[1]
	assert.Equal(t, "b", ins.Target.Text)
	assert.False(t, ins.Source.Present())
	assert.Equal(t, -1, ins.Source.Interval)
	assert.True(t, math.IsNaN(ins.Source.Start))
	assert.True(t, math.IsNaN(ins.Source.End))

	del := tb.Rows[3]
	assert.Equal(t, "d", del.Source.Text)
	assert.Equal(t, 2, del.Source.Interval)
	assert.False(t, del.Target.Present())
	assert.Empty(t, del.Target.Text)
	assert.True(t, math.IsNaN(del.Target.Start))
}

func TestBuild_EmptyTiers(t *testing.T) {
	empty := tier.NewIntervalTier("e", tier.Domain{Xmin: 0, Xmax: 1})
	words := mustTier(t, "w", []float64{0, 1, 2}, "x", "y")

	tb, err := textalign.Build(empty, empty)
	require.NoError(t, err)
	assert.Empty(t, tb.Rows)

	tb, err = textalign.Build(empty, words)
	require.NoError(t, err)
	assert.Equal(t, textalign.Counts{Deletions: 2}, tb.Counts())

	_, err = textalign.Build(nil, words)
	assert.ErrorIs(t, err, tier.ErrEmptyInput)
}

func TestBuild_Normalization(t *testing.T) {
	composed := mustTier(t, "t", []float64{0, 1}, "caf\u00e9")
	decomposed := mustTier(t, "s", []float64{0, 1}, "cafe\u0301")

	tb, err := textalign.Build(composed, decomposed)
	require.NoError(t, err)
	require.Len(t, tb.Rows, 1)
	assert.Equal(t, textalign.Match, tb.Rows[0].Op)
	assert.Equal(t, "cafe\u0301", tb.Rows[0].Source.Text, "rows keep the original label")

	tb, err = textalign.Build(composed, decomposed, textalign.WithNormalization(false))
	require.NoError(t, err)
	assert.Equal(t, textalign.Substitution, tb.Rows[0].Op)

	toks := textalign.Tokens(decomposed)
	assert.Equal(t, []textalign.Token{{Key: "caf\u00e9", Interval: 0}}, toks)
}

func TestBuild_WithCosts(t *testing.T) {
	target := mustTier(t, "t", []float64{0, 1}, "a")
	source := mustTier(t, "s", []float64{0, 1}, "b")

	tb, err := textalign.Build(target, source, textalign.WithCosts(editdist.NewCosts(editdist.WithSubstitution(5))))
	require.NoError(t, err)
	assert.Equal(t, textalign.Counts{Insertions: 1, Deletions: 1}, tb.Counts())
	assert.Equal(t, 2.0, tb.Distance)
}

// TestBuild_RowCountMatchesPath checks that the row count is one less than
// the path length and that every token shows up exactly once per side.
func TestBuild_RowCountMatchesPath(t *testing.T) {
	target := mustTier(t, "t", []float64{0, 1, 2, 3, 4, 5}, "the", "quick", "", "brown", "fox")
	source := mustTier(t, "s", []float64{0, 1, 2, 3}, "a", "quick", "fox")

	tb, err := textalign.Build(target, source)
	require.NoError(t, err)

	res := editdist.Align([]string{"the", "quick", "brown", "fox"}, []string{"a", "quick", "fox"}, nil)
	c := tb.Counts()
	assert.Equal(t, len(res.Path)-1, c.Total())
	assert.Equal(t, len(tb.Rows), c.Total())
	assert.Equal(t, 4, c.Matches+c.Substitutions+c.Insertions)
	assert.Equal(t, 3, c.Matches+c.Substitutions+c.Deletions)
}

func TestBuildFromDocuments(t *testing.T) {
	dom := tier.Domain{Xmin: 0, Xmax: 2}
	words := mustTier(t, "words", []float64{0, 1, 2}, "a", "b")
	doc := tier.NewDocument(dom, words, tier.NewPointTier("marks", dom))

	tb, err := textalign.BuildFromDocuments(doc, 0, doc, 0)
	require.NoError(t, err)
	assert.Equal(t, textalign.Counts{Matches: 2}, tb.Counts())

	_, err = textalign.BuildFromDocuments(doc, 1, doc, 0)
	assert.ErrorIs(t, err, tier.ErrInvalidTierKind)

	_, err = textalign.BuildFromDocuments(doc, 0, doc, 5)
	assert.ErrorIs(t, err, tier.ErrInvalidRange)

	_, err = textalign.BuildFromDocuments(nil, 0, doc, 0)
	assert.ErrorIs(t, err, tier.ErrEmptyInput)
}

func TestOp_Strings(t *testing.T) {
	assert.Equal(t, "match", textalign.Match.String())
	assert.Equal(t, "deletion", textalign.Deletion.String())
	assert.Equal(t, "Op(9)", textalign.Op(9).String())
	assert.Equal(t, " ", textalign.Match.Code())
	assert.Equal(t, "s", textalign.Substitution.Code())
}
