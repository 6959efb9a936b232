// Package strength filters an operator down to its strong couplings, which
// drive the aggregation pass of the multigrid setup.
package strength

import (
	"math"

	"github.com/notargets/samg/utils"
)

// Symmetric computes the symmetric strength-of-connection matrix C of A for
// threshold theta in [0,1]: an off-diagonal entry A(i,j) is kept when
//
//	|A(i,j)| >= theta * sqrt(|A(i,i)| * |A(j,j)|)
//
// Diagonal entries are always kept. theta = 0 keeps every entry.
func Symmetric(A *utils.COO, theta float64) (C *utils.COO) {
	var (
		nr, nc = A.Dims()
		d      = A.Diagonal()
	)
	A.Canonicalize()
	C = utils.NewCOO(nr, nc, A.Nnz())
	for k := 0; k < A.Nnz(); k++ {
		i, j, v := A.RI[k], A.CI[k], A.V[k]
		if i == j {
			C.Append(i, j, v)
			continue
		}
		if math.Abs(v) >= theta*math.Sqrt(math.Abs(d[i])*math.Abs(d[j])) {
			C.Append(i, j, v)
		}
	}
	return
}

// Classical computes the row-max strength matrix of A: an off-diagonal entry
// A(i,j) is kept when
//
//	|A(i,j)| >= theta * max_{k != i} |A(i,k)|
//
// Diagonal entries are always kept. The threshold is relative to each row's
// own dominant coupling, so a connected node always retains its strongest
// neighbors no matter how the entry magnitudes scale. On Galerkin coarse
// operators the absolute off-diagonal/diagonal ratios shrink with each level,
// which makes the symmetric test isolate nodes; this criterion does not.
func Classical(A *utils.COO, theta float64) (C *utils.COO) {
	var (
		nr, nc = A.Dims()
		rowMax = make([]float64, nr)
	)
	A.Canonicalize()
	for k := 0; k < A.Nnz(); k++ {
		if i, j := A.RI[k], A.CI[k]; i != j {
			if v := math.Abs(A.V[k]); v > rowMax[i] {
				rowMax[i] = v
			}
		}
	}
	C = utils.NewCOO(nr, nc, A.Nnz())
	for k := 0; k < A.Nnz(); k++ {
		i, j, v := A.RI[k], A.CI[k], A.V[k]
		if i == j || math.Abs(v) >= theta*rowMax[i] {
			C.Append(i, j, v)
		}
	}
	return
}
