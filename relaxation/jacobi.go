// Package relaxation provides the cheap per-level smoothers applied before
// and after each coarse-grid correction.
package relaxation

import (
	"fmt"

	"github.com/notargets/samg/utils"
)

// Smoother is an opaque relaxation operator bound to one level's matrix.
// Both calls update x in place; Presmooth may assume x is zero on entry.
type Smoother interface {
	Presmooth(b, x []float64)
	Postsmooth(b, x []float64)
}

// Jacobi is weighted (damped) Jacobi relaxation, x += omega*Dinv*(b - A*x),
// applied Sweeps times per pre/post call.
type Jacobi struct {
	A      utils.CSR
	Omega  float64
	Sweeps int
	dinv   []float64
	temp   []float64
}

func NewJacobi(A utils.CSR, omega float64, sweeps int) (s *Jacobi) {
	var (
		nr, _ = A.Dims()
		d     = A.Diagonal()
	)
	if sweeps < 1 {
		sweeps = 1
	}
	s = &Jacobi{
		A:      A,
		Omega:  omega,
		Sweeps: sweeps,
		dinv:   make([]float64, nr),
		temp:   make([]float64, nr),
	}
	for i, val := range d {
		if val == 0 {
			panic(fmt.Errorf("zero diagonal at row %d, Jacobi relaxation undefined", i))
		}
		s.dinv[i] = 1. / val
	}
	return
}

// Presmooth exploits the zero initial guess on its first sweep: x = omega*Dinv*b.
func (s *Jacobi) Presmooth(b, x []float64) {
	for i := range x {
		x[i] = s.Omega * s.dinv[i] * b[i]
	}
	for k := 1; k < s.Sweeps; k++ {
		s.sweep(b, x)
	}
}

func (s *Jacobi) Postsmooth(b, x []float64) {
	for k := 0; k < s.Sweeps; k++ {
		s.sweep(b, x)
	}
}

func (s *Jacobi) sweep(b, x []float64) {
	s.A.MulVec(x, s.temp)
	for i := range x {
		x[i] += s.Omega * s.dinv[i] * (b[i] - s.temp[i])
	}
}
