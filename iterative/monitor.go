// Package iterative holds the convergence policy for outer solver loops.
package iterative

import "gonum.org/v1/gonum/floats"

// Monitor tracks an outer iteration against a residual tolerance and an
// iteration budget. Convergence is declared when
//
//	||r|| <= max(RelTol*||b||, AbsTol)
type Monitor struct {
	MaxIterations int
	RelTol        float64
	AbsTol        float64
	bNorm         float64
	iterations    int
	residualNorm  float64

	// History holds the residual norm observed at each Finished call,
	// starting with the initial residual.
	History []float64
}

func NewMonitor(b []float64, relTol float64, maxIterations int) (mn *Monitor) {
	mn = &Monitor{
		MaxIterations: maxIterations,
		RelTol:        relTol,
		bNorm:         floats.Norm(b, 2),
	}
	return
}

// Finished reports whether the iteration should stop, either through
// convergence or an exhausted budget.
func (mn *Monitor) Finished(residual []float64) bool {
	mn.residualNorm = floats.Norm(residual, 2)
	mn.History = append(mn.History, mn.residualNorm)
	return mn.Converged() || mn.iterations >= mn.MaxIterations
}

func (mn *Monitor) Converged() bool {
	tol := mn.RelTol * mn.bNorm
	if mn.AbsTol > tol {
		tol = mn.AbsTol
	}
	return mn.residualNorm <= tol
}

// Increment records one completed outer iteration.
func (mn *Monitor) Increment() { mn.iterations++ }

func (mn *Monitor) Iterations() int       { return mn.iterations }
func (mn *Monitor) ResidualNorm() float64 { return mn.residualNorm }
func (mn *Monitor) RHSNorm() float64      { return mn.bNorm }
