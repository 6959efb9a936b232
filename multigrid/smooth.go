package multigrid

import (
	"fmt"

	"github.com/notargets/samg/utils"
)

// DefaultOmega is the damping parameter for prolongator smoothing and the
// weighted-Jacobi level smoothers.
const DefaultOmega = 4. / 3.

// SmoothProlongator damps the tentative prolongator T with one weighted
// Jacobi step on the operator S:
//
//	P = (I - omega/rho * Dinv*S) * T
//
// where D is the diagonal of S and rho approximates the spectral radius of
// Dinv*S. T must carry exactly one nonzero per row (one aggregate per fine
// node), which lets the product S*T be formed by gathering T's single row
// entry through S's column indices.
func SmoothProlongator(S, T *utils.COO, omega, rho float64) (P *utils.COO, err error) {
	var (
		nrS, ncS = S.Dims()
		nrT, ncT = T.Dims()
	)
	T.Canonicalize()
	if T.Nnz() != nrT {
		err = fmt.Errorf("%w: tentative prolongator has %d nonzeros for %d rows",
			ErrStructuralMismatch, T.Nnz(), nrT)
		return
	}
	if ncS != nrT {
		err = fmt.Errorf("%w: operator is %dx%d, tentative prolongator has %d rows",
			ErrStructuralMismatch, nrS, ncS, nrT)
		return
	}
	if rho <= 0 {
		err = fmt.Errorf("%w: rho = %v", ErrDegenerateSpectrum, rho)
		return
	}

	var (
		lambda = omega / rho
		d      = S.Diagonal()
	)
	for i, val := range d {
		if val == 0 {
			err = fmt.Errorf("%w: zero diagonal at row %d", ErrStructuralMismatch, i)
			return
		}
	}

	// One entry per row of T: record its column and value by row index. A
	// duplicated row with the matching nonzero count implies an empty row
	// elsewhere, both are builder defects.
	tCol := make([]int, nrT)
	tVal := make([]float64, nrT)
	for i := range tCol {
		tCol[i] = -1
	}
	for k := 0; k < T.Nnz(); k++ {
		if tCol[T.RI[k]] != -1 {
			err = fmt.Errorf("%w: tentative prolongator has multiple entries in row %d",
				ErrStructuralMismatch, T.RI[k])
			return
		}
		tCol[T.RI[k]] = T.CI[k]
		tVal[T.RI[k]] = T.V[k]
	}

	S.Canonicalize()
	P = utils.NewCOO(nrS, ncT, S.Nnz()+T.Nnz())
	for k := 0; k < S.Nnz(); k++ {
		i, j, sv := S.RI[k], S.CI[k], S.V[k]
		P.Append(i, tCol[j], -lambda*sv*tVal[j]/d[i])
	}
	for k := 0; k < T.Nnz(); k++ {
		P.Append(T.RI[k], T.CI[k], T.V[k])
	}
	// Duplicate (row,col) pairs from the two contributions merge by summation
	P.Canonicalize()
	return
}
