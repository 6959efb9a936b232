package utils

import "math"

// Slice-level vector kernels used by the solve path. All arguments must be
// equal length; the scratch slices they operate on are owned by the levels.

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func Fill(v []float64, val float64) {
	for i := range v {
		v[i] = val
	}
}

// Axpy computes y += alpha*x.
func Axpy(x, y []float64, alpha float64) {
	for i, val := range x {
		y[i] += alpha * val
	}
}

// Axpby computes z = alpha*x + beta*y. z may alias x or y.
func Axpby(x, y, z []float64, alpha, beta float64) {
	for i := range z {
		z[i] = alpha*x[i] + beta*y[i]
	}
}

func Dot(x, y []float64) (sum float64) {
	for i, val := range x {
		sum += val * y[i]
	}
	return
}

func Norm2(x []float64) float64 {
	return math.Sqrt(Dot(x, x))
}
