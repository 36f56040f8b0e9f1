package solvers

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Problem names a model problem with a convergence study.
type Problem string

const (
	Helmholtz     Problem = "helmholtz"
	Poisson       Problem = "poisson"
	VectorPoisson Problem = "vectorpoisson"
)

// Solver returns the solve function for the problem.
func (p Problem) Solver() (func(n, degree int) (*Result, error), error) {
	switch p {
	case Helmholtz:
		return SolveHelmholtz, nil
	case Poisson:
		return SolvePoisson, nil
	case VectorPoisson:
		return SolveVectorPoisson, nil
	}
	return nil, fmt.Errorf("unknown problem %q", string(p))
}

// Study runs a model problem over a ladder of mesh resolutions and records
// the L2 errors and the observed convergence rates between levels.
type Study struct {
	Problem Problem
	Degree  int
	Levels  []int

	// Logger receives per-level progress; nil disables logging.
	Logger *slog.Logger
}

// StudyResult holds one row per resolution level. Rates[i] is the observed
// order between levels i-1 and i; Rates[0] is NaN.
type StudyResult struct {
	Problem Problem
	Degree  int
	Levels  []int
	Dofs    []int
	Errors  []float64
	Rates   []float64
}

// ExpectedRate is the asymptotic L2 convergence order of the study's
// element degree.
func (s *Study) ExpectedRate() float64 { return float64(s.Degree + 1) }

// Run executes the study. Each level must halve the mesh spacing of the
// previous one for the reported rates to be meaningful; the usual ladder is
// a doubling sequence of resolutions.
func (s *Study) Run() (*StudyResult, error) {
	if s.Degree < 1 {
		return nil, fmt.Errorf("study degree must be positive, got %d", s.Degree)
	}
	if len(s.Levels) < 2 {
		return nil, fmt.Errorf("study needs at least 2 levels, got %d", len(s.Levels))
	}
	solve, err := s.Problem.Solver()
	if err != nil {
		return nil, err
	}
	log := s.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	res := &StudyResult{
		Problem: s.Problem,
		Degree:  s.Degree,
		Levels:  s.Levels,
		Dofs:    make([]int, len(s.Levels)),
		Errors:  make([]float64, len(s.Levels)),
		Rates:   make([]float64, len(s.Levels)),
	}
	res.Rates[0] = math.NaN()

	for i, n := range s.Levels {
		r, err := solve(n, s.Degree)
		if err != nil {
			return nil, fmt.Errorf("%s at resolution %d: %w", s.Problem, n, err)
		}
		res.Dofs[i] = r.Dofs
		res.Errors[i] = r.L2Error
		if i > 0 {
			res.Rates[i] = math.Log2(res.Errors[i-1] / res.Errors[i])
		}
		log.Info("level complete",
			slog.String("problem", string(s.Problem)),
			slog.Int("degree", s.Degree),
			slog.Int("resolution", n),
			slog.Int("dofs", r.Dofs),
			slog.Int("iterations", r.Iterations),
			slog.Float64("l2_error", r.L2Error),
		)
	}
	return res, nil
}

// FinalRate returns the rate observed on the last refinement.
func (r *StudyResult) FinalRate() float64 { return r.Rates[len(r.Rates)-1] }

func (r *StudyResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s convergence, degree %d\n", r.Problem, r.Degree)
	fmt.Fprintf(&sb, "%8s %10s %14s %8s\n", "n", "dofs", "L2 error", "rate")
	for i, n := range r.Levels {
		rate := "-"
		if i > 0 {
			rate = fmt.Sprintf("%.2f", r.Rates[i])
		}
		fmt.Fprintf(&sb, "%8d %10d %14.6e %8s\n", n, r.Dofs[i], r.Errors[i], rate)
	}
	return sb.String()
}
