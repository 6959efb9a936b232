package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCOO(t *testing.T) {
	// Canonicalize: sort by (row,col) and merge duplicates by summation
	{
		m := NewCOO(2, 2, 4)
		m.Append(1, 0, 3)
		m.Append(0, 1, 2)
		m.Append(1, 0, 4)
		m.Append(0, 0, 1)
		m.Canonicalize()
		assert.Equal(t, 3, m.Nnz())
		assert.Equal(t, []int{0, 0, 1}, m.RI)
		assert.Equal(t, []int{0, 1, 0}, m.CI)
		assert.Equal(t, []float64{1, 2, 7}, m.V)
	}
	// Transpose: exact structural/value transpose
	{
		m := NewCOO(2, 3, 3)
		m.Append(0, 2, 5)
		m.Append(1, 0, -1)
		m.Append(1, 1, 2)
		mt := m.Transpose()
		nr, nc := mt.Dims()
		assert.Equal(t, 3, nr)
		assert.Equal(t, 2, nc)
		assert.Equal(t, []int{0, 1, 2}, mt.RI)
		assert.Equal(t, []int{1, 1, 0}, mt.CI)
		assert.Equal(t, []float64{-1, 2, 5}, mt.V)
	}
	// Diagonal
	{
		m := NewCOO(3, 3, 4)
		m.Append(0, 0, 2)
		m.Append(1, 2, 9)
		m.Append(2, 2, -4)
		assert.Equal(t, []float64{2, 0, -4}, m.Diagonal())
	}
}

func TestCSRView(t *testing.T) {
	// Round trip: the row view and back preserves all (row, col, value)
	// triples regardless of insertion order
	{
		m := NewCOO(3, 3, 6)
		m.Append(2, 1, 6)
		m.Append(0, 0, 1)
		m.Append(1, 2, 3)
		m.Append(1, 0, 2)
		cv := m.ToCSR()
		back := FromSparser(3, 3, cv.M)
		assert.Equal(t, m.RI, back.RI)
		assert.Equal(t, m.CI, back.CI)
		assert.Equal(t, m.V, back.V)
	}
	// The view aliases the canonical backing arrays
	{
		m := NewCOO(2, 2, 2)
		m.Append(0, 0, 1)
		m.Append(1, 1, 2)
		cv := m.ToCSR()
		m.V[1] = 5
		assert.Equal(t, 5., cv.V[1])
	}
	// MulVec against a hand computed product
	{
		m := NewCOO(2, 3, 4)
		m.Append(0, 0, 1)
		m.Append(0, 2, 2)
		m.Append(1, 1, 3)
		cv := m.ToCSR()
		y := make([]float64, 2)
		cv.MulVec([]float64{1, 2, 3}, y)
		assert.Equal(t, []float64{7, 6}, y)
	}
}

func TestSpMatMul(t *testing.T) {
	// Product against the dense equivalent
	var (
		a = NewCOO(2, 3, 4)
		b = NewCOO(3, 2, 4)
	)
	a.Append(0, 0, 1)
	a.Append(0, 1, 2)
	a.Append(1, 2, 3)
	b.Append(0, 0, 4)
	b.Append(1, 1, 5)
	b.Append(2, 0, 6)
	p := SpMatMul(a.ToCSR(), b.ToCSR())
	pd := p.ToDense()
	ad, bd := a.ToDense(), b.ToDense()
	exact := ad.Mul(bd)
	nr, nc := pd.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 2, nc)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			assert.InDelta(t, exact.At(i, j), pd.At(i, j), 1.e-14)
		}
	}
}

func TestVectorKernels(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{1, 1, 1}
	Axpy(x, y, 2)
	assert.Equal(t, []float64{3, 5, 7}, y)
	z := make([]float64, 3)
	Axpby(x, y, z, 1, -1)
	assert.Equal(t, []float64{-2, -3, -4}, z)
	assert.Equal(t, 14., Dot(x, x))
	assert.InDelta(t, 3.741657386773941, Norm2(x), 1.e-12)
}
