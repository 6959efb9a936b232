// Package aggregation partitions the nodes of a strength graph into disjoint
// aggregates, one coarse unknown per aggregate.
package aggregation

import "github.com/notargets/samg/utils"

const unaggregated = -1

// Standard performs serial greedy aggregation over the strength matrix C in
// three passes:
//  1. a node whose strong neighbors are all unaggregated seeds a new
//     aggregate containing itself and those neighbors,
//  2. remaining nodes attach to any adjacent aggregate,
//  3. stragglers (isolated from every aggregate) seed fresh aggregates with
//     whatever unaggregated strong neighbors they still have.
//
// Every node receives a label in [0, numAgg); ids are contiguous. A fully
// empty strength graph yields one singleton aggregate per node.
func Standard(C *utils.COO) (aggregates []int, numAgg int) {
	var (
		cv    = C.ToCSR()
		nr, _ = cv.Dims()
	)
	aggregates = make([]int, nr)
	for i := range aggregates {
		aggregates[i] = unaggregated
	}

	// Pass 1: seed aggregates
	for i := 0; i < nr; i++ {
		if aggregates[i] != unaggregated {
			continue
		}
		free := true
		for jp := cv.Ia[i]; jp < cv.Ia[i+1]; jp++ {
			j := cv.Ja[jp]
			if j != i && aggregates[j] != unaggregated {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		aggregates[i] = numAgg
		for jp := cv.Ia[i]; jp < cv.Ia[i+1]; jp++ {
			aggregates[cv.Ja[jp]] = numAgg
		}
		numAgg++
	}

	// Pass 2: attach leftovers to a neighboring aggregate
	for i := 0; i < nr; i++ {
		if aggregates[i] != unaggregated {
			continue
		}
		for jp := cv.Ia[i]; jp < cv.Ia[i+1]; jp++ {
			j := cv.Ja[jp]
			if j != i && aggregates[j] != unaggregated {
				aggregates[i] = aggregates[j]
				break
			}
		}
	}

	// Pass 3: sweep stragglers into fresh aggregates
	for i := 0; i < nr; i++ {
		if aggregates[i] != unaggregated {
			continue
		}
		aggregates[i] = numAgg
		for jp := cv.Ia[i]; jp < cv.Ia[i+1]; jp++ {
			j := cv.Ja[jp]
			if aggregates[j] == unaggregated {
				aggregates[j] = numAgg
			}
		}
		numAgg++
	}
	return
}
