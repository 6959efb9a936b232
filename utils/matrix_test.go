package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, 3, aNr)
		assert.Equal(t, 2, aNc)
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, A.DataP)
	}
	// Mul
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := M.Mul(M)
		assert.Equal(t, []float64{7, 10, 15, 22}, A.DataP)
	}
}

func TestLU(t *testing.T) {
	// Solve a small SPD system
	{
		M := NewMatrix(2, 2, []float64{
			4, 1,
			1, 3,
		})
		F, err := M.LUFactor()
		assert.NoError(t, err)
		x := make([]float64, 2)
		F.Solve([]float64{1, 2}, x)
		// exact solution of [4 1; 1 3] x = [1 2]
		assert.InDelta(t, 1./11., x[0], 1.e-14)
		assert.InDelta(t, 7./11., x[1], 1.e-14)
	}
	// A singular matrix must be rejected
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			2, 4,
		})
		_, err := M.LUFactor()
		assert.Error(t, err)
	}
}
