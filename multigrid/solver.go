package multigrid

import (
	"fmt"

	"github.com/notargets/samg/iterative"
	"github.com/notargets/samg/utils"
)

// Solve runs the outer correction iteration: each pass applies one V-cycle to
// the current residual and accumulates the update into x, until the monitor
// is satisfied or its budget runs out. On ErrMaxIterations x still holds the
// best-effort iterate.
func (sa *SmoothedAggregation) Solve(b, x []float64, mn *iterative.Monitor) (err error) {
	var (
		A        = sa.Levels[0].AV
		n        = sa.Levels[0].Rows()
		update   = make([]float64, n)
		residual = make([]float64, n)
	)
	A.MulVec(x, residual)
	utils.Axpby(b, residual, residual, 1, -1)

	for !mn.Finished(residual) {
		// x += M*r, one V-cycle as the correction
		sa.Cycle(residual, update)
		utils.Axpy(update, x, 1)

		A.MulVec(x, residual)
		utils.Axpby(b, residual, residual, 1, -1)
		mn.Increment()
	}
	if !mn.Converged() {
		err = fmt.Errorf("%w after %d iterations, residual norm %v",
			ErrMaxIterations, mn.Iterations(), mn.ResidualNorm())
	}
	return
}

// OperatorComplexity is the total nonzeros across all levels relative to the
// finest operator. Reporting only, it drives no control decision.
func (sa *SmoothedAggregation) OperatorComplexity() float64 {
	var nnz int
	for _, lvl := range sa.Levels {
		nnz += lvl.A.Nnz()
	}
	return float64(nnz) / float64(sa.Levels[0].A.Nnz())
}

// GridComplexity is the total unknowns across all levels relative to the
// finest level.
func (sa *SmoothedAggregation) GridComplexity() float64 {
	var rows int
	for _, lvl := range sa.Levels {
		rows += lvl.Rows()
	}
	return float64(rows) / float64(sa.Levels[0].Rows())
}

// PrintStats writes the per-level table in the style of the setup reports.
func (sa *SmoothedAggregation) PrintStats() {
	fmt.Printf("\tNumber of Levels:\t%d\n", len(sa.Levels))
	fmt.Printf("\tOperator Complexity:\t%.4f\n", sa.OperatorComplexity())
	fmt.Printf("\tGrid Complexity:\t%.4f\n", sa.GridComplexity())
	fmt.Printf("\tlevel\tunknowns\tnonzeros:\n")
	var nnz int
	for _, lvl := range sa.Levels {
		nnz += lvl.A.Nnz()
	}
	for i, lvl := range sa.Levels {
		percent := 100 * float64(lvl.A.Nnz()) / float64(nnz)
		fmt.Printf("\t%d\t%d\t\t%d \t[%.1f%%]\n", i, lvl.Rows(), lvl.A.Nnz(), percent)
	}
}
