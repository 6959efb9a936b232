package multigrid

import (
	"fmt"

	"github.com/notargets/samg/utils"
)

// Cycle applies one V-cycle to b, leaving the result in x. Used on its own
// this is the preconditioner application M*b; the outer driver in Solve uses
// it as a correction on the running residual.
func (sa *SmoothedAggregation) Cycle(b, x []float64) {
	var (
		n = sa.Levels[0].Rows()
	)
	if len(b) != n || len(x) != n {
		panic(fmt.Errorf("cycle dimension mismatch: finest level has %d rows, len(b)=%d, len(x)=%d",
			n, len(b), len(x)))
	}
	sa.cycle(0, b, x)
}

// cycle is the recursive descent: presmooth, restrict the residual, recurse,
// prolongate-and-correct, postsmooth. The recursion passes the level index
// only; each level's scratch belongs to the single active call that owns it.
func (sa *SmoothedAggregation) cycle(i int, b, x []float64) {
	if i == len(sa.Levels)-1 {
		// Coarse grid solve through the precomputed factorization
		sa.coarse.Solve(b, x)
		return
	}
	var (
		lvl  = sa.Levels[i]
		next = sa.Levels[i+1]
	)

	lvl.Smoother.Presmooth(b, x)

	// residual <- b - A*x
	lvl.AV.MulVec(x, lvl.Residual)
	utils.Axpby(b, lvl.Residual, lvl.Residual, 1, -1)

	// restrict to the coarse grid
	lvl.RV.MulVec(lvl.Residual, next.RHS)

	sa.cycle(i+1, next.RHS, next.X)

	// apply the coarse grid correction
	lvl.PV.MulVec(next.X, lvl.Residual)
	utils.Axpy(lvl.Residual, x, 1)

	lvl.Smoother.Postsmooth(b, x)
}
