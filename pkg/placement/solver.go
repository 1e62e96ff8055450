package placement

import (
	"fmt"
	"log/slog"

	"github.com/fracplace/fracplace/pkg/topology"
)

// defaultEpsilon is the preference decrement applied to each admitted bin.
const defaultEpsilon = 1e-3

// Solver constructs placements by rounding the fractional bin packing optimum
// and repairing it. The solver itself is immutable configuration; all mutable
// solve state lives in a per-invocation solveState, so one Solver may be used
// for repeated or concurrent independent solves.
type Solver struct {
	checker topology.Checker
	pruning []PruningStep
	epsilon float64
}

// Option configures a Solver.
type Option func(*Solver)

// WithPruningSteps replaces the default pruning pipeline. Steps run in the
// given order; later steps see the candidate sets narrowed by earlier ones.
func WithPruningSteps(steps ...PruningStep) Option {
	return func(s *Solver) {
		s.pruning = steps
	}
}

// WithEpsilon overrides the preference decrement used during bin admission.
func WithEpsilon(epsilon float64) Option {
	return func(s *Solver) {
		s.epsilon = epsilon
	}
}

// NewSolver creates a Solver that validates inputs with the given checker.
// The default pruning pipeline contains locality pruning only.
func NewSolver(checker topology.Checker, opts ...Option) *Solver {
	s := &Solver{
		checker: checker,
		pruning: []PruningStep{LocalityPruning{}},
		epsilon: defaultEpsilon,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve maps every service node onto an infrastructure node, minimizing the
// total of fixed and per-unit costs while respecting capacities and locality
// constraints.
//
// A topology rejected by the checker and a heuristic that gives up after
// admitting every bin both produce a Solution with Worked set to false and a
// nil error. Infeasible instances, rounding ambiguity, pruning defects and
// bookkeeping violations are returned as errors of the corresponding type
// from this package.
func (s *Solver) Solve(infra *topology.Infrastructure, svc *topology.Service) (*Solution, error) {
	if !s.checker.CheckInfra(infra) || !s.checker.CheckService(svc) {
		return &Solution{Worked: false}, nil
	}

	st, err := newSolveState(infra, svc, s.epsilon)
	if err != nil {
		return nil, err
	}
	if len(st.items) == 0 {
		// Nothing to place.
		return &Solution{Worked: true, Assignment: map[string]string{}}, nil
	}

	for _, step := range s.pruning {
		if err = step.Prune(infra, svc, st.items, st.bins); err != nil {
			return nil, fmt.Errorf("prune possible mappings: %w", err)
		}
	}

	if err = st.computeBestBins(); err != nil {
		return nil, err
	}

	for {
		if err = st.roundToIntegral(); err != nil {
			return nil, err
		}
		for {
			moved, err := st.improveOnce()
			if err != nil {
				return nil, err
			}
			if !moved {
				break
			}
		}
		expanded, err := st.admitNextBin()
		if err != nil {
			return nil, err
		}
		if !expanded {
			break
		}
	}

	valid, err := st.checkMapping()
	if err != nil {
		return nil, err
	}
	if !valid {
		slog.Info("Bin packing solution not found by the heuristic.")
		return &Solution{Worked: false}, nil
	}
	if err = st.checkConstraints(); err != nil {
		slog.Error("Bin packing result does not respect a non-packing constraint.", "err", err)
		return nil, err
	}

	slog.Info("Bin packing solution found.",
		"objective", st.integralObjective, "fractional_objective", st.fractionalObjective)
	return st.solution(), nil
}
