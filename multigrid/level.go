package multigrid

import (
	"github.com/notargets/samg/relaxation"
	"github.com/notargets/samg/utils"
)

// Level is one entry in the hierarchy. A is kept in triplet form for setup;
// AV is the compressed-row view over the same backing arrays used during the
// solve. P maps coarse vectors to this level, R is always the exact transpose
// of P. The coarsest level carries only A and the direct solver.
type Level struct {
	A  *utils.COO
	AV utils.CSR

	P, R   *utils.COO
	PV, RV utils.CSR

	// B is the near-null-space candidate used to build the next level's
	// tentative prolongator.
	B []float64

	// Aggregates maps each row to its aggregate id; meaningful only on
	// non-coarsest levels.
	Aggregates []int

	Smoother relaxation.Smoother

	// Per-level scratch, reused across V-cycle invocations. X and RHS are
	// written by the parent level before recursing; Residual belongs to
	// this level's own correction step.
	X, RHS, Residual []float64
}

// refreshView re-derives the compressed-row view after A has been replaced
// or mutated. Views are never cached across a mutation.
func (lvl *Level) refreshView() {
	lvl.AV = lvl.A.ToCSR()
}

func (lvl *Level) Rows() int {
	nr, _ := lvl.A.Dims()
	return nr
}
