package rfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmirnovOleg/formal-languages/grammar"
	"github.com/SmirnovOleg/formal-languages/internal/alloc"
	"github.com/SmirnovOleg/formal-languages/rfa"
)

func TestFromGrammar_EpsilonProductionRecorded(t *testing.T) {
	g, err := grammar.ParseSymbolic([]string{
		"S a S b S",
		"S eps",
	})
	require.NoError(t, err)

	r, err := rfa.FromGrammar(g, alloc.New())
	require.NoError(t, err)
	assert.True(t, r.EpsProductions["S"])
	assert.Equal(t, "S", r.StartSymbol)
}

func TestFromGrammar_FragmentRegistered(t *testing.T) {
	g, err := grammar.ParseSymbolic([]string{"S a b"})
	require.NoError(t, err)

	r, err := rfa.FromGrammar(g, alloc.New())
	require.NoError(t, err)
	require.Len(t, r.HeadByStartFinalPair, 1)
	for sf, head := range r.HeadByStartFinalPair {
		assert.Equal(t, "S", head)
		assert.True(t, r.Graph.StartStates[sf.Start])
		assert.True(t, r.Graph.FinalStates[sf.Final])
	}
	counts, err := r.Graph.EdgesCounter()
	require.NoError(t, err)
	assert.Equal(t, 1, counts["a"])
	assert.Equal(t, 1, counts["b"])
}

func TestFromGrammar_DisjointVertexRanges(t *testing.T) {
	g, err := grammar.ParseSymbolic([]string{
		"S a B",
		"B b",
	})
	require.NoError(t, err)

	a := alloc.New()
	r, err := rfa.FromGrammar(g, a)
	require.NoError(t, err)
	// Two productions, bodies of length 2 and 1: 3 + 2 = 5 ids allocated.
	assert.Equal(t, 5, a.Len())
	assert.Len(t, r.HeadByStartFinalPair, 2)
}

func TestFromRegexProductions_BuildsFragment(t *testing.T) {
	r, err := rfa.FromRegexProductions([]string{"S a S* b"}, alloc.New())
	require.NoError(t, err)
	assert.Equal(t, "S", r.StartSymbol)
	assert.NotEmpty(t, r.HeadByStartFinalPair)
}

func TestFromRegexProductions_MissingRegexRejected(t *testing.T) {
	_, err := rfa.FromRegexProductions([]string{"S"}, alloc.New())
	assert.ErrorIs(t, err, rfa.ErrParse)
}

func TestFromRegexProductions_Empty(t *testing.T) {
	_, err := rfa.FromRegexProductions(nil, alloc.New())
	assert.ErrorIs(t, err, rfa.ErrNoProductions)
}
