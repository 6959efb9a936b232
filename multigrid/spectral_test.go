package multigrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/samg/model_problems"
	"github.com/notargets/samg/utils"
)

func TestEstimateRhoDinvA(t *testing.T) {
	// Diagonal operator: Dinv*A = I, rho = 1
	{
		A := utils.NewCOO(5, 5, 5)
		for i := 0; i < 5; i++ {
			A.Append(i, i, float64(i+1))
		}
		rho := EstimateRhoDinvA(A.ToCSR())
		assert.InDelta(t, 1, rho, 1.e-10)
	}
	// 1D Laplacian on 8 nodes: the Krylov space is exhausted, the estimate
	// is exact: rho = 1 - cos(8*pi/9)
	{
		A := model_problems.Poisson1D(8)
		exact := 1 - math.Cos(8*math.Pi/9)
		rho := EstimateRhoDinvA(A.ToCSR())
		assert.InDelta(t, exact, rho, 1.e-8)
	}
	// Larger operator: the Ritz estimate lands near the true spectral
	// radius, which is below 2 for any grid size
	{
		A := model_problems.Poisson2D(20)
		rho := EstimateRhoDinvA(A.ToCSR())
		assert.True(t, rho > 1.5 && rho <= 2.01, "rho = %v", rho)
	}
}
