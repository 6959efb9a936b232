package relaxation

import "github.com/notargets/samg/utils"

// Chebyshev is a fixed-degree polynomial smoother targeting the upper part of
// the spectrum of A. The interval [rho/30, 1.1*rho] follows the usual
// smoothed-aggregation choice, where rho approximates the spectral radius.
type Chebyshev struct {
	A            utils.CSR
	Degree       int
	theta, delta float64
	r, d, t      []float64
}

func NewChebyshev(A utils.CSR, rho float64, degree int) (s *Chebyshev) {
	var (
		nr, _ = A.Dims()
		upper = 1.1 * rho
		lower = rho / 30.
	)
	s = &Chebyshev{
		A:      A,
		Degree: degree,
		theta:  (upper + lower) / 2.,
		delta:  (upper - lower) / 2.,
		r:      make([]float64, nr),
		d:      make([]float64, nr),
		t:      make([]float64, nr),
	}
	return
}

// sweep runs the Chebyshev semi-iteration. zeroGuess skips the initial
// residual product.
func (s *Chebyshev) sweep(b, x []float64, zeroGuess bool) {
	var (
		sigma  = s.theta / s.delta
		rhoOld = 1. / sigma
	)
	if zeroGuess {
		copy(s.r, b)
		utils.Fill(x, 0)
	} else {
		s.A.MulVec(x, s.r)
		utils.Axpby(b, s.r, s.r, 1, -1)
	}
	for i := range s.d {
		s.d[i] = s.r[i] / s.theta
	}
	for k := 0; k < s.Degree; k++ {
		utils.Axpy(s.d, x, 1)
		if k == s.Degree-1 {
			break
		}
		s.A.MulVec(s.d, s.t)
		utils.Axpy(s.t, s.r, -1)
		rhoNew := 1. / (2.*sigma - rhoOld)
		for i := range s.d {
			s.d[i] = rhoNew*rhoOld*s.d[i] + 2.*rhoNew/s.delta*s.r[i]
		}
		rhoOld = rhoNew
	}
}

func (s *Chebyshev) Presmooth(b, x []float64)  { s.sweep(b, x, true) }
func (s *Chebyshev) Postsmooth(b, x []float64) { s.sweep(b, x, false) }
