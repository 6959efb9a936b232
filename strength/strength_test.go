package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/samg/utils"
)

func TestSymmetric(t *testing.T) {
	// 3x3 operator with one weak off-diagonal coupling
	A := utils.NewCOO(3, 3, 9)
	A.Append(0, 0, 4)
	A.Append(1, 1, 4)
	A.Append(2, 2, 4)
	A.Append(0, 1, -2)
	A.Append(1, 0, -2)
	A.Append(1, 2, -0.5)
	A.Append(2, 1, -0.5)

	// theta = 0.25: threshold is 0.25*sqrt(16) = 1, drops the +-0.5 entries
	{
		C := Symmetric(A, 0.25)
		C.Canonicalize()
		assert.Equal(t, 5, C.Nnz())
		cd := C.ToDense()
		assert.Equal(t, 0., cd.At(1, 2))
		assert.Equal(t, 0., cd.At(2, 1))
		assert.Equal(t, -2., cd.At(0, 1))
	}
	// theta = 0 keeps everything
	{
		C := Symmetric(A, 0)
		assert.Equal(t, A.Nnz(), C.Nnz())
	}
	// the diagonal survives any threshold
	{
		C := Symmetric(A, 10)
		C.Canonicalize()
		assert.Equal(t, 3, C.Nnz())
		for k := 0; k < C.Nnz(); k++ {
			assert.Equal(t, C.RI[k], C.CI[k])
		}
	}
}

func TestClassical(t *testing.T) {
	// A coupling the symmetric test isolates: |0.2|/sqrt(1*4) = 0.1 < 0.25
	{
		A := utils.NewCOO(2, 2, 4)
		A.Append(0, 0, 1)
		A.Append(1, 1, 4)
		A.Append(0, 1, 0.2)
		A.Append(1, 0, 0.2)

		C := Symmetric(A, 0.25)
		assert.Equal(t, 2, C.Canonicalize().Nnz())

		// row-max keeps each row's dominant coupling regardless of scale
		C = Classical(A, 0.25)
		assert.Equal(t, 4, C.Canonicalize().Nnz())
	}
	// Entries below theta relative to the row's dominant coupling are dropped
	{
		A := utils.NewCOO(3, 3, 9)
		A.Append(0, 0, 2)
		A.Append(1, 1, 2)
		A.Append(2, 2, 2)
		A.Append(0, 1, -1)
		A.Append(0, 2, -0.1)
		A.Append(1, 0, -1)
		A.Append(2, 0, -0.1)

		C := Classical(A, 0.25)
		cd := C.ToDense()
		assert.Equal(t, -1., cd.At(0, 1))
		assert.Equal(t, 0., cd.At(0, 2))
		// row 2 has a single off-diagonal entry: it is its own row max
		assert.Equal(t, -0.1, cd.At(2, 0))
	}
	// theta = 0 keeps everything, the diagonal survives any threshold
	{
		A := utils.NewCOO(2, 2, 3)
		A.Append(0, 0, 1)
		A.Append(1, 1, 1)
		A.Append(0, 1, 0.5)

		assert.Equal(t, 3, Classical(A, 0).Nnz())
		C := Classical(A, 10)
		C.Canonicalize()
		assert.Equal(t, 2, C.Nnz())
		for k := 0; k < C.Nnz(); k++ {
			assert.Equal(t, C.RI[k], C.CI[k])
		}
	}
}
