package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/samg/model_problems"
	"github.com/notargets/samg/utils"
)

// pathGraph builds the strength pattern of a 1D chain with unit couplings.
func pathGraph(n int) (C *utils.COO) {
	C = utils.NewCOO(n, n, 3*n)
	for i := 0; i < n; i++ {
		C.Append(i, i, 2)
		if i > 0 {
			C.Append(i, i-1, -1)
		}
		if i < n-1 {
			C.Append(i, i+1, -1)
		}
	}
	return
}

func validate(t *testing.T, aggregates []int, numAgg int) {
	t.Helper()
	seen := make([]int, numAgg)
	for _, a := range aggregates {
		assert.True(t, a >= 0 && a < numAgg)
		seen[a]++
	}
	// ids are contiguous: every aggregate owns at least one node
	for j, count := range seen {
		assert.True(t, count > 0, "aggregate %d is empty", j)
	}
}

func TestStandard(t *testing.T) {
	// 1D chain: every node labeled, ids contiguous, real coarsening
	{
		aggregates, numAgg := Standard(pathGraph(10))
		assert.Equal(t, 10, len(aggregates))
		validate(t, aggregates, numAgg)
		assert.True(t, numAgg < 10)
		assert.True(t, numAgg >= 2)
	}
	// 2D model problem
	{
		C := model_problems.Poisson2D(8)
		aggregates, numAgg := Standard(C)
		assert.Equal(t, 64, len(aggregates))
		validate(t, aggregates, numAgg)
		assert.True(t, numAgg < 64)
	}
	// Diagonal-only strength graph degenerates to singleton aggregates
	{
		C := utils.NewCOO(4, 4, 4)
		for i := 0; i < 4; i++ {
			C.Append(i, i, 1)
		}
		aggregates, numAgg := Standard(C)
		assert.Equal(t, 4, numAgg)
		validate(t, aggregates, numAgg)
	}
}
