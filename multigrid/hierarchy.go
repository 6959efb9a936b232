// Package multigrid implements a smoothed-aggregation algebraic multigrid
// preconditioner/solver. The hierarchy is built once from the operator alone
// (no geometric grid) and applied through recursive V-cycles.
package multigrid

import (
	"fmt"

	"github.com/notargets/samg/aggregation"
	"github.com/notargets/samg/relaxation"
	"github.com/notargets/samg/strength"
	"github.com/notargets/samg/utils"
)

// DefaultCoarseSize is the row count at or below which coarsening stops and
// the operator is handed to the dense direct solver.
const DefaultCoarseSize = 100

const (
	DefaultChebyshevDegree = 4
	DefaultJacobiSweeps    = 2
)

type StrengthType uint8

const (
	// ClassicalStrength is the row-max criterion. The symmetric test with a
	// fixed theta isolates nodes on Galerkin coarse operators, where the
	// off-diagonal/diagonal ratios shrink level by level; row-max is relative
	// to each row's own dominant coupling and keeps coarsening.
	ClassicalStrength StrengthType = iota
	SymmetricStrength
)

type SmootherType uint8

const (
	ChebyshevSmoother SmootherType = iota
	JacobiSmoother
)

type Options struct {
	Theta           float64 // strength-of-connection threshold
	Omega           float64 // prolongator / Jacobi damping
	CoarseSize      int
	Strength        StrengthType
	Smoother        SmootherType
	ChebyshevDegree int
	JacobiSweeps    int
}

func DefaultOptions(theta float64) Options {
	return Options{
		Theta:           theta,
		Omega:           DefaultOmega,
		CoarseSize:      DefaultCoarseSize,
		Strength:        ClassicalStrength,
		Smoother:        ChebyshevSmoother,
		ChebyshevDegree: DefaultChebyshevDegree,
		JacobiSweeps:    DefaultJacobiSweeps,
	}
}

// SmoothedAggregation is the multigrid hierarchy: an ordered sequence of
// levels, finest first, plus the dense factorization of the coarsest
// operator. It is immutable after construction except for the per-level
// scratch vectors written during a solve, so a single hierarchy must not run
// overlapping solves.
type SmoothedAggregation struct {
	Levels []*Level
	opts   Options
	coarse utils.LU
}

// NewSmoothedAggregation builds the full hierarchy for A with strength
// threshold theta, coarsening until the operator has at most 100 rows, then
// factors the coarsest operator. Degenerate inputs (zero aggregates, stalled
// coarsening, singular coarsest operator) abort construction.
func NewSmoothedAggregation(A *utils.COO, theta float64) (sa *SmoothedAggregation, err error) {
	return NewWithOptions(A, DefaultOptions(theta))
}

func NewWithOptions(A *utils.COO, opts Options) (sa *SmoothedAggregation, err error) {
	var (
		nr, nc = A.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("%w: operator is %dx%d, must be square", ErrStructuralMismatch, nr, nc)
		return
	}
	if opts.Omega == 0 {
		opts.Omega = DefaultOmega
	}
	if opts.CoarseSize <= 0 {
		opts.CoarseSize = DefaultCoarseSize
	}
	if opts.ChebyshevDegree <= 0 {
		opts.ChebyshevDegree = DefaultChebyshevDegree
	}
	if opts.JacobiSweeps <= 0 {
		opts.JacobiSweeps = DefaultJacobiSweeps
	}
	sa = &SmoothedAggregation{opts: opts}

	finest := &Level{
		A: A.Copy().Canonicalize(),
		B: utils.ConstArray(nr, 1),
	}
	finest.refreshView()
	sa.Levels = append(sa.Levels, finest)

	for sa.coarsest().Rows() > opts.CoarseSize {
		if err = sa.extendHierarchy(); err != nil {
			sa = nil
			return
		}
	}

	// Factor the coarsest operator once; every V-cycle bottoms out here
	if sa.coarse, err = sa.coarsest().A.ToDense().LUFactor(); err != nil {
		err = fmt.Errorf("coarsest operator factorization: %w", err)
		sa = nil
	}
	return
}

func (sa *SmoothedAggregation) coarsest() *Level {
	return sa.Levels[len(sa.Levels)-1]
}

// extendHierarchy coarsens the current coarsest level by one: strength,
// aggregation, tentative prolongator, prolongator smoothing, R = Pt, and the
// Galerkin product, then pushes a new level holding the coarse operator.
func (sa *SmoothedAggregation) extendHierarchy() (err error) {
	var (
		lvl = sa.coarsest()
		nr  = lvl.Rows()
	)

	var C *utils.COO
	switch sa.opts.Strength {
	case SymmetricStrength:
		C = strength.Symmetric(lvl.A, sa.opts.Theta)
	default:
		C = strength.Classical(lvl.A, sa.opts.Theta)
	}

	lvl.refreshView()
	rho := EstimateRhoDinvA(lvl.AV)
	if rho <= 0 {
		return fmt.Errorf("level %d: %w: rho = %v", len(sa.Levels)-1, ErrDegenerateSpectrum, rho)
	}

	aggregates, numAgg := aggregation.Standard(C)
	if numAgg == 0 {
		return fmt.Errorf("level %d: %w: aggregation produced no aggregates",
			len(sa.Levels)-1, ErrMalformedAggregation)
	}
	if numAgg >= nr {
		return fmt.Errorf("level %d: coarsening stalled at %d rows / %d aggregates",
			len(sa.Levels)-1, nr, numAgg)
	}

	T, Bc, err := FitCandidates(aggregates, lvl.B)
	if err != nil {
		return fmt.Errorf("level %d: %w", len(sa.Levels)-1, err)
	}

	P, err := SmoothProlongator(lvl.A, T, sa.opts.Omega, rho)
	if err != nil {
		return fmt.Errorf("level %d: %w", len(sa.Levels)-1, err)
	}
	R := P.Transpose()

	lvl.P, lvl.R = P, R
	lvl.PV = P.ToCSR()
	lvl.RV = R.ToCSR()

	RAP, err := GalerkinProduct(lvl.AV, lvl.PV, lvl.RV)
	if err != nil {
		return fmt.Errorf("level %d: %w", len(sa.Levels)-1, err)
	}

	switch sa.opts.Smoother {
	case JacobiSmoother:
		lvl.Smoother = relaxation.NewJacobi(lvl.AV, sa.opts.Omega/rho, sa.opts.JacobiSweeps)
	default:
		// the polynomial interval bounds the spectrum of A itself
		lvl.Smoother = relaxation.NewChebyshev(lvl.AV, EstimateRho(lvl.AV), sa.opts.ChebyshevDegree)
	}

	lvl.Aggregates = aggregates
	lvl.Residual = make([]float64, nr)

	coarse := &Level{
		A: RAP,
		B: Bc,
	}
	coarse.refreshView()
	coarse.X = make([]float64, coarse.Rows())
	coarse.RHS = make([]float64, coarse.Rows())
	sa.Levels = append(sa.Levels, coarse)
	return
}
