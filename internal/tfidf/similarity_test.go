package tfidf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"scaled", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"both empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-12)
		})
	}
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	pairs := [][2][]float64{
		{{0.3, 0, 1.2}, {0.1, 0.5, 0.9}},
		{{1, 2}, {3, -4}},
		{{0, 0, 0}, {1, 1, 1}},
	}
	for _, p := range pairs {
		assert.InDelta(t, CosineSimilarity(p[0], p[1]), CosineSimilarity(p[1], p[0]), 1e-12)
	}
}

func TestCosineSimilarity_UnequalLengthsAlwaysZero(t *testing.T) {
	for n := 0; n < 5; n++ {
		a := make([]float64, n)
		b := make([]float64, n+1)
		for i := range a {
			a[i] = float64(i + 1)
		}
		for i := range b {
			b[i] = float64(i + 1)
		}
		assert.Equal(t, 0.0, CosineSimilarity(a, b))
	}
}
