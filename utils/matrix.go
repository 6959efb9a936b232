package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M     *mat.Dense
	DataP []float64
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		M:     m,
		DataP: m.RawMatrix().Data,
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix       { return m.M.T() }

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	copy(R.DataP, m.DataP)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			R.DataP[j*nr+i] = m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return R
}

// LU is a dense LU factorization, computed once and consulted for repeated
// right-hand sides.
type LU struct {
	lu *mat.LU
	n  int
}

// LUFactor factors the receiver. A singular matrix is reported as an error,
// there is no fallback for it.
func (m Matrix) LUFactor() (F LU, err error) {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("LU requires a square matrix, have %dx%d", nr, nc)
		return
	}
	F = LU{lu: &mat.LU{}, n: nr}
	F.lu.Factorize(m.M)
	if F.lu.Cond() > 1.e16 {
		err = fmt.Errorf("matrix is singular to working precision")
	}
	return
}

// Solve computes x such that A*x = b using the stored factorization.
func (F LU) Solve(b, x []float64) {
	if len(b) != F.n || len(x) != F.n {
		panic(fmt.Errorf("LU solve dimension mismatch: n = %d, len(b) = %d, len(x) = %d",
			F.n, len(b), len(x)))
	}
	var xv mat.VecDense
	if err := F.lu.SolveVecTo(&xv, false, mat.NewVecDense(F.n, b)); err != nil {
		panic(err)
	}
	copy(x, xv.RawVector().Data)
}
