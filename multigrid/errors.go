package multigrid

import "errors"

var (
	// ErrMalformedAggregation signals an aggregate id with no member nodes,
	// or an unaggregated sentinel reaching the tentative prolongator.
	ErrMalformedAggregation = errors.New("malformed aggregation")

	// ErrStructuralMismatch signals incompatible operator dimensions or a
	// tentative prolongator without exactly one entry per row.
	ErrStructuralMismatch = errors.New("structural mismatch")

	// ErrDegenerateSpectrum signals a nonpositive spectral-radius estimate,
	// which would make the prolongator smoothing step undefined.
	ErrDegenerateSpectrum = errors.New("degenerate spectral radius estimate")

	// ErrMaxIterations reports that the outer iteration exhausted its budget
	// before the monitor declared convergence. The solution holds the
	// best-effort iterate.
	ErrMaxIterations = errors.New("maximum iterations reached without convergence")
)
