package kronecker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmirnovOleg/formal-languages/kronecker"
	"github.com/SmirnovOleg/formal-languages/lgraph"
)

func TestIntersect_SizeAndReconstruction(t *testing.T) {
	c, err := lgraph.FromEdges([]lgraph.Edge{{From: 0, To: 1, Label: "a"}})
	require.NoError(t, err)
	g, err := lgraph.FromEdges([]lgraph.Edge{{From: 0, To: 1, Label: "a"}, {From: 1, To: 2, Label: "b"}})
	require.NoError(t, err)

	p, err := kronecker.Intersect(c, g)
	require.NoError(t, err)
	assert.Equal(t, c.VerticesNum()*g.VerticesNum(), p.VerticesNum())

	// Kronecker reconstruction property (spec §8.4): every non-zero cell in
	// the product's "a" matrix decomposes into true cells in both inputs.
	m, err := p.FromLabelToBoolMatrix("a")
	require.NoError(t, err)
	ng := g.VerticesNum()
	for _, e := range m.IterEntries() {
		i, k := e.Row/ng, e.Row%ng
		j, l := e.Col/ng, e.Col%ng
		cm, _ := c.FromLabelToBoolMatrix("a")
		gm, _ := g.FromLabelToBoolMatrix("a")
		cv, _ := cm.Get(i, j)
		gv, _ := gm.Get(k, l)
		assert.True(t, cv)
		assert.True(t, gv)
	}
}

func TestIntersect_LabelOnlyInOtherDropped(t *testing.T) {
	c, _ := lgraph.FromEdges([]lgraph.Edge{{From: 0, To: 1, Label: "a"}})
	g, _ := lgraph.FromEdges([]lgraph.Edge{{From: 0, To: 1, Label: "b"}})

	p, err := kronecker.Intersect(c, g)
	require.NoError(t, err)
	counter, err := p.EdgesCounter()
	require.NoError(t, err)
	_, hasB := counter["b"]
	assert.False(t, hasB)
}

func TestIntersect_StartFinalConservativeSuperset(t *testing.T) {
	c, _ := lgraph.FromEdges([]lgraph.Edge{{From: 0, To: 1, Label: "a"}})
	g, _ := lgraph.FromEdges([]lgraph.Edge{{From: 0, To: 1, Label: "a"}, {From: 1, To: 2, Label: "a"}})

	p, err := kronecker.Intersect(c, g)
	require.NoError(t, err)
	ng := g.VerticesNum()
	// self.start = {0,1}; every other-state paired with each ⇒ |start|=2*ng.
	assert.Len(t, p.StartStates, len(c.StartStates)*ng)
}
