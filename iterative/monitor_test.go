package iterative

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonitor(t *testing.T) {
	b := []float64{3, 4} // ||b|| = 5
	// Relative tolerance against ||b||
	{
		mn := NewMonitor(b, 0.1, 10)
		assert.False(t, mn.Finished([]float64{1, 0}))
		assert.False(t, mn.Converged())
		assert.True(t, mn.Finished([]float64{0.3, 0.4}))
		assert.True(t, mn.Converged())
		assert.InDelta(t, 0.5, mn.ResidualNorm(), 1.e-14)
	}
	// Budget exhaustion finishes without convergence
	{
		mn := NewMonitor(b, 1.e-12, 2)
		r := []float64{1, 1}
		for !mn.Finished(r) {
			mn.Increment()
		}
		assert.False(t, mn.Converged())
		assert.Equal(t, 2, mn.Iterations())
		assert.Equal(t, 3, len(mn.History))
	}
	// Absolute tolerance dominates when larger
	{
		mn := NewMonitor(b, 1.e-12, 10)
		mn.AbsTol = 1
		assert.True(t, mn.Finished([]float64{0.5, 0}))
		assert.True(t, mn.Converged())
	}
}
