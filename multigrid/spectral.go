package multigrid

import (
	"math/cmplx"
	"math/rand"

	"github.com/notargets/samg/utils"
	"gonum.org/v1/gonum/mat"
)

// arnoldiSteps bounds the Krylov subspace used for the Ritz estimate.
const arnoldiSteps = 10

// EstimateRho estimates the spectral radius of A itself, used to bound the
// interval of the polynomial smoother.
func EstimateRho(A utils.CSR) float64 {
	n, _ := A.Dims()
	return ritzSpectralRadius(n, A.MulVec, arnoldiSteps)
}

// EstimateRhoDinvA estimates the spectral radius of Dinv*A, the quantity
// that scales both the prolongator smoothing and the Jacobi damping.
func EstimateRhoDinvA(A utils.CSR) float64 {
	var (
		n, _ = A.Dims()
		d    = A.Diagonal()
		dinv = make([]float64, n)
	)
	for i, val := range d {
		if val != 0 {
			dinv[i] = 1. / val
		}
	}
	apply := func(x, y []float64) {
		A.MulVec(x, y)
		for i := range y {
			y[i] *= dinv[i]
		}
	}
	return ritzSpectralRadius(n, apply, arnoldiSteps)
}

// ritzSpectralRadius runs k Arnoldi steps of the operator and returns the
// largest Ritz value modulus, taken from the eigenvalues of the small dense
// Hessenberg matrix. The start vector is pseudo-random with a fixed seed so
// setup is deterministic.
func ritzSpectralRadius(n int, apply func(x, y []float64), k int) (rho float64) {
	if k > n {
		k = n
	}
	if k == 0 {
		return 0
	}
	var (
		rng = rand.New(rand.NewSource(1))
		V   = make([][]float64, k+1)
		H   = utils.NewMatrix(k+1, k)
		m   = k
	)
	v0 := make([]float64, n)
	for i := range v0 {
		v0[i] = rng.Float64() - 0.5
	}
	nrm := utils.Norm2(v0)
	for i := range v0 {
		v0[i] /= nrm
	}
	V[0] = v0

	for j := 0; j < k; j++ {
		w := make([]float64, n)
		apply(V[j], w)
		for i := 0; i <= j; i++ {
			h := utils.Dot(V[i], w)
			H.Set(i, j, h)
			utils.Axpy(V[i], w, -h)
		}
		hn := utils.Norm2(w)
		H.Set(j+1, j, hn)
		if hn < 1.e-12 {
			// Invariant subspace found, truncate the basis
			m = j + 1
			break
		}
		for i := range w {
			w[i] /= hn
		}
		V[j+1] = w
	}

	Hm := utils.NewMatrix(m, m)
	for j := 0; j < m; j++ {
		for i := 0; i < m; i++ {
			Hm.Set(i, j, H.At(i, j))
		}
	}
	var eig mat.Eigen
	if ok := eig.Factorize(Hm.M, mat.EigenNone); !ok {
		panic("eigenvalue decomposition of Hessenberg matrix failed")
	}
	for _, val := range eig.Values(nil) {
		if r := cmplx.Abs(val); r > rho {
			rho = r
		}
	}
	return
}
