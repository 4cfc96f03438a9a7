package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		sim, err := Cosine([]float32{1, 0, 0}, []float32{1, 0, 0})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sim, 1e-9)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		sim, err := Cosine([]float32{1, 0}, []float32{0, 1})
		require.NoError(t, err)
		assert.InDelta(t, 0.0, sim, 1e-9)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Cosine([]float32{1, 0}, []float32{1})
		assert.ErrorIs(t, err, ErrVectorLengthMismatch)
	})

	t.Run("zero vector", func(t *testing.T) {
		sim, err := Cosine([]float32{0, 0}, []float32{1, 0})
		require.NoError(t, err)
		assert.Zero(t, sim)
	})
}

func TestDot(t *testing.T) {
	assert.InDelta(t, 0.5, Dot([]float32{0.5, 0.5}, []float32{0.5, 0.5}), 1e-6)
	// mismatched lengths truncate
	assert.InDelta(t, 1.0, Dot([]float32{1, 1}, []float32{1}), 1e-6)
}

func TestNormalizeL2(t *testing.T) {
	t.Run("normalizes to unit length", func(t *testing.T) {
		v := NormalizeL2([]float32{3, 4})
		assert.InDelta(t, 0.6, float64(v[0]), 1e-6)
		assert.InDelta(t, 0.8, float64(v[1]), 1e-6)
	})

	t.Run("zero vector unchanged", func(t *testing.T) {
		v := NormalizeL2([]float32{0, 0})
		assert.Equal(t, []float32{0, 0}, v)
	})

	t.Run("input not mutated", func(t *testing.T) {
		in := []float32{3, 4}
		NormalizeL2(in)
		assert.Equal(t, []float32{3, 4}, in)
	})
}
