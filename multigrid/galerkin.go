package multigrid

import (
	"fmt"

	"github.com/notargets/samg/utils"
)

// GalerkinProduct assembles the coarse operator R*A*P. The product is
// evaluated as R*(A*P): the intermediate then has the prolongator's narrow
// column count, bounding fill. Either association gives the same result.
func GalerkinProduct(A, P, R utils.CSR) (RAP *utils.COO, err error) {
	var (
		nrA, ncA = A.Dims()
		nrP, ncP = P.Dims()
		nrR, ncR = R.Dims()
	)
	if ncA != nrP || nrR != ncP || ncR != nrA {
		err = fmt.Errorf("%w: A %dx%d, P %dx%d, R %dx%d",
			ErrStructuralMismatch, nrA, ncA, nrP, ncP, nrR, ncR)
		return
	}
	AP := utils.SpMatMul(A, P)
	RAP = utils.SpMatMul(R, AP.ToCSR())
	return
}
