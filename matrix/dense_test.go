// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numerics/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shapes verifies dimension validation and zero fill.
func TestNewDense_Shapes(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestNewDenseFrom covers copying, ragged rows and non-finite input.
func TestNewDenseFrom(t *testing.T) {
	src := [][]float64{{4, 1}, {1, 3}}
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)
	src[0][0] = 99
	v, _ := m.At(0, 0)
	assert.Equal(t, 4.0, v, "caller slices must not be retained")

	_, err = matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRaggedRows)
	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Contains(t, err.Error(), "Dense.NewDenseFrom(0,1)")
}

// TestDense_AtSetBounds checks sentinel errors instead of panics.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 2.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestDense_CloneRawRowString covers the copy helper, row aliasing and the diagnostic dump.
func TestDense_CloneRawRowString(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "clone must be independent")

	raw := m.RawRow(0)
	raw[1] = 7
	v, _ = m.At(0, 1)
	assert.Equal(t, 7.0, v, "RawRow aliases the backing buffer")

	assert.Equal(t, "[1, 7]\n[3, 4]\n", m.String())
}
