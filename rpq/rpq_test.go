package rpq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmirnovOleg/formal-languages/automaton"
	"github.com/SmirnovOleg/formal-languages/lgraph"
	"github.com/SmirnovOleg/formal-languages/rpq"
)

func TestSolve_BetweenAll_WorkedScenario(t *testing.T) {
	g, err := lgraph.FromText([]string{"0 a 1", "1 b 2", "2 a 0"})
	require.NoError(t, err)
	constraint, err := automaton.BuildFromRegex("a b")
	require.NoError(t, err)

	got, err := rpq.Solve(g, constraint, rpq.NewQuery())
	require.NoError(t, err)
	assert.Equal(t, map[rpq.Pair]bool{{Row: 0, Col: 2}: true}, got)
}

func TestSolve_InvalidQueryShape(t *testing.T) {
	g, err := lgraph.FromText([]string{"0 a 1"})
	require.NoError(t, err)
	constraint, err := automaton.BuildFromRegex("a")
	require.NoError(t, err)

	_, err = rpq.Solve(g, constraint, rpq.NewQuery(rpq.WithToSet([]int{0})))
	assert.ErrorIs(t, err, rpq.ErrInvalidQueryShape)
}

func TestSolve_FromToSetSubsumesBetweenAll(t *testing.T) {
	g, err := lgraph.FromText([]string{
		"0 a 1", "1 a 2", "2 a 0", "2 b 3", "3 b 2",
	})
	require.NoError(t, err)
	constraint, err := automaton.BuildFromRegex("a a")
	require.NoError(t, err)

	all, err := rpq.Solve(g, constraint, rpq.NewQuery())
	require.NoError(t, err)

	fromSet := []int{0, 2}
	toSet := []int{0, 2, 3}
	filtered, err := rpq.Solve(g, constraint, rpq.NewQuery(rpq.WithFromSet(fromSet), rpq.WithToSet(toSet)))
	require.NoError(t, err)

	fromAll := map[int]bool{}
	for _, v := range fromSet {
		fromAll[v] = true
	}
	toAll := map[int]bool{}
	for _, v := range toSet {
		toAll[v] = true
	}
	want := map[rpq.Pair]bool{}
	for p := range all {
		if fromAll[p.Row] && toAll[p.Col] {
			want[p] = true
		}
	}
	assert.Equal(t, want, filtered)
}

func TestSolve_NilGraphRejected(t *testing.T) {
	constraint, err := automaton.BuildFromRegex("a")
	require.NoError(t, err)
	_, err = rpq.Solve(nil, constraint, rpq.NewQuery())
	assert.ErrorIs(t, err, rpq.ErrNilInput)
}
