package multigrid

import (
	"fmt"
	"math"

	"github.com/notargets/samg/utils"
)

// FitCandidates builds the tentative prolongator T from an aggregation and
// the current near-null-space candidate B. T has one nonzero per row, at
// column aggregates[i], and each column is rescaled to unit 2-norm. Bc is the
// coarse candidate: Bc[j] holds the pre-normalization norm of column j.
//
// Every aggregate id in [0, numAgg) must own at least one node; unaggregated
// sentinels must have been resolved upstream.
func FitCandidates(aggregates []int, B []float64) (T *utils.COO, Bc []float64, err error) {
	var (
		n      = len(aggregates)
		numAgg int
	)
	if len(B) != n {
		err = fmt.Errorf("%w: %d aggregate labels for candidate of length %d",
			ErrStructuralMismatch, n, len(B))
		return
	}
	for i, a := range aggregates {
		if a < 0 {
			err = fmt.Errorf("%w: node %d is unaggregated", ErrMalformedAggregation, i)
			return
		}
		if a+1 > numAgg {
			numAgg = a + 1
		}
	}

	// Group-by-aggregate reduction of squared candidate values
	var (
		count = make([]int, numAgg)
	)
	Bc = make([]float64, numAgg)
	for i, a := range aggregates {
		Bc[a] += B[i] * B[i]
		count[a]++
	}
	for j := range Bc {
		if count[j] == 0 {
			err = fmt.Errorf("%w: aggregate %d has no members", ErrMalformedAggregation, j)
			return
		}
		Bc[j] = math.Sqrt(Bc[j])
		if Bc[j] == 0 {
			err = fmt.Errorf("%w: aggregate %d has a zero-norm candidate column",
				ErrMalformedAggregation, j)
			return
		}
	}

	T = utils.NewCOO(n, numAgg, n)
	for i, a := range aggregates {
		T.Append(i, a, B[i]/Bc[a])
	}
	T.Canonicalize()
	return
}
