package boolmatrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmirnovOleg/formal-languages/boolmatrix"
)

func TestBoolMatrix_SetGet(t *testing.T) {
	m, err := boolmatrix.NewBoolMatrix(3)
	require.NoError(t, err)

	v, err := m.Get(0, 0)
	require.NoError(t, err)
	assert.False(t, v)

	require.NoError(t, m.Set(1, 2, true))
	v, err = m.Get(1, 2)
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, 1, m.NVals())

	require.NoError(t, m.Set(1, 2, false))
	assert.Equal(t, 0, m.NVals())
}

func TestBoolMatrix_OutOfRange(t *testing.T) {
	m, err := boolmatrix.NewBoolMatrix(2)
	require.NoError(t, err)

	_, err = m.Get(2, 0)
	assert.True(t, errors.Is(err, boolmatrix.ErrOutOfRange))

	err = m.Set(-1, 0, true)
	assert.True(t, errors.Is(err, boolmatrix.ErrOutOfRange))
}

func TestIdentity(t *testing.T) {
	m, err := boolmatrix.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.Get(i, j)
			require.NoError(t, err)
			assert.Equal(t, i == j, v)
		}
	}
}

func TestUnion(t *testing.T) {
	a, _ := boolmatrix.NewBoolMatrix(2)
	b, _ := boolmatrix.NewBoolMatrix(2)
	_ = a.Set(0, 0, true)
	_ = b.Set(1, 1, true)

	u, err := boolmatrix.Union(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, u.NVals())

	// a itself must stay unmodified by a non-in-place Union.
	assert.Equal(t, 1, a.NVals())
}

func TestUnionInplace_Aliased(t *testing.T) {
	a, _ := boolmatrix.NewBoolMatrix(2)
	_ = a.Set(0, 1, true)
	require.NoError(t, a.UnionInplace(a))
	assert.Equal(t, 1, a.NVals())
}

func TestMatmul(t *testing.T) {
	// a: 0->1, b: 1->2 ⇒ a@b: 0->2
	a, _ := boolmatrix.NewBoolMatrix(3)
	b, _ := boolmatrix.NewBoolMatrix(3)
	_ = a.Set(0, 1, true)
	_ = b.Set(1, 2, true)

	c, err := boolmatrix.Matmul(a, b)
	require.NoError(t, err)
	v, err := c.Get(0, 2)
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, 1, c.NVals())
}

func TestMatmul_DimensionMismatch(t *testing.T) {
	a, _ := boolmatrix.NewBoolMatrix(2)
	b, _ := boolmatrix.NewBoolMatrix(3)
	_, err := boolmatrix.Matmul(a, b)
	assert.True(t, errors.Is(err, boolmatrix.ErrDimensionMismatch))
}

func TestKronecker(t *testing.T) {
	a, _ := boolmatrix.NewBoolMatrix(2)
	b, _ := boolmatrix.NewBoolMatrix(3)
	_ = a.Set(0, 1, true)
	_ = b.Set(1, 2, true)

	k, err := boolmatrix.Kronecker(a, b)
	require.NoError(t, err)
	assert.Equal(t, 6, k.Size())

	// Kronecker reconstruction (spec §8.4): (0*3+1, 1*3+2) must be true,
	// and it must be the only true cell since a and b each have one entry.
	v, err := k.Get(1, 5)
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, 1, k.NVals())
}

func TestResize_RejectsShrink(t *testing.T) {
	m, _ := boolmatrix.NewBoolMatrix(3)
	err := m.Resize(2)
	assert.True(t, errors.Is(err, boolmatrix.ErrShrink))
	require.NoError(t, m.Resize(5))
	assert.Equal(t, 5, m.Size())
}

func TestIterEntries_Deterministic(t *testing.T) {
	m, _ := boolmatrix.NewBoolMatrix(3)
	_ = m.Set(2, 0, true)
	_ = m.Set(0, 2, true)
	_ = m.Set(0, 1, true)

	got := m.IterEntries()
	want := []boolmatrix.Entry{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 2, Col: 0}}
	assert.Equal(t, want, got)
}

func TestClone_Independent(t *testing.T) {
	m, _ := boolmatrix.NewBoolMatrix(2)
	_ = m.Set(0, 0, true)
	cp := m.Clone()
	_ = cp.Set(1, 1, true)
	assert.Equal(t, 1, m.NVals())
	assert.Equal(t, 2, cp.NVals())
}
