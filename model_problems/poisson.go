// Package model_problems builds the standard test operators the solver is
// exercised against.
package model_problems

import (
	"github.com/james-bowman/sparse"
	"github.com/notargets/samg/utils"
)

// Poisson2D assembles the 5-point finite-difference Laplacian on an n x n
// grid with Dirichlet boundaries: 4 on the diagonal, -1 for each grid
// neighbor. The operator is symmetric positive definite with n*n unknowns.
func Poisson2D(n int) (A *utils.COO) {
	var (
		N   = n * n
		dok = sparse.NewDOK(N, N)
		idx = func(i, j int) int { return i*n + j }
	)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			row := idx(i, j)
			dok.Set(row, row, 4)
			if i > 0 {
				dok.Set(row, idx(i-1, j), -1)
			}
			if i < n-1 {
				dok.Set(row, idx(i+1, j), -1)
			}
			if j > 0 {
				dok.Set(row, idx(i, j-1), -1)
			}
			if j < n-1 {
				dok.Set(row, idx(i, j+1), -1)
			}
		}
	}
	A = utils.FromSparser(N, N, dok)
	return
}

// Poisson1D assembles the tridiagonal [-1, 2, -1] Laplacian on n unknowns.
func Poisson1D(n int) (A *utils.COO) {
	dok := sparse.NewDOK(n, n)
	for i := 0; i < n; i++ {
		dok.Set(i, i, 2)
		if i > 0 {
			dok.Set(i, i-1, -1)
		}
		if i < n-1 {
			dok.Set(i, i+1, -1)
		}
	}
	A = utils.FromSparser(n, n, dok)
	return
}
