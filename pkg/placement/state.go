package placement

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/fracplace/fracplace/pkg/topology"
)

// solveState holds all mutable state of a single solve invocation. A fresh
// state is built per call to Solver.Solve, which keeps the solver reentrant
// and safe for concurrent independent solves.
type solveState struct {
	items    []*Item
	bins     []*Bin
	binsByID map[string]*Bin

	// bestBins is the cost-ordered prefix of bins covering total demand,
	// extended one bin at a time by admission.
	bestBins []*Bin
	// minPreference anchors the preference of later-admitted bins: each new
	// bin is made strictly less preferred than all bins before it.
	minPreference float64
	// epsilon is the preference decrement used when admitting a bin.
	epsilon float64

	fractionalObjective float64
	integralObjective   float64
}

// newSolveState constructs the base bin packing problem from the topologies
// without filtering any possible mappings. Bins with positive capacity that
// cannot fit even the smallest item are unusable and discarded up front.
func newSolveState(infra *topology.Infrastructure, svc *topology.Service, epsilon float64) (*solveState, error) {
	st := &solveState{
		binsByID: make(map[string]*Bin),
		epsilon:  epsilon,
	}

	for _, n := range svc.Nodes {
		var attrs topology.VNFAttrs
		if err := n.DecodeAttrs(&attrs); err != nil {
			return nil, fmt.Errorf("build items: %w", err)
		}
		st.items = append(st.items, &Item{
			ID:         n.ID,
			Weight:     attrs.Weight,
			Attrs:      n.Attrs,
			Candidates: mapset.NewThreadUnsafeSet[string](),
		})
	}
	if len(st.items) == 0 {
		return st, nil
	}

	minWeight := st.items[0].Weight
	for _, item := range st.items[1:] {
		minWeight = min(minWeight, item.Weight)
	}

	for _, n := range infra.Nodes {
		var attrs topology.HostAttrs
		if err := n.DecodeAttrs(&attrs); err != nil {
			return nil, fmt.Errorf("build bins: %w", err)
		}
		bin := &Bin{
			ID:        n.ID,
			Capacity:  attrs.Capacity,
			FixedCost: attrs.FixedCost,
			UnitCost:  attrs.UnitCost,
			Attrs:     n.Attrs,
			members:   make(map[string]*Item),
		}
		if bin.Capacity >= minWeight {
			st.bins = append(st.bins, bin)
			st.binsByID[bin.ID] = bin
		} else if bin.Capacity > 0 {
			slog.Debug("Discarding bin because it cannot fit even the smallest item.",
				"bin", bin.ID, "capacity", bin.Capacity, "min_weight", minWeight)
		}
	}
	if len(st.bins) == 0 {
		return nil, &InfeasibleError{Reason: "none of the bins can host the smallest item"}
	}

	// Each item owns an independent candidate set: pruning one item must not
	// be reflected in another.
	for _, item := range st.items {
		for _, bin := range st.bins {
			item.Candidates.Add(bin.ID)
		}
	}
	return st, nil
}

func (st *solveState) totalItemWeight() float64 {
	var total float64
	for _, item := range st.items {
		total += item.Weight
	}
	return total
}

// binsByFilledUnitCost returns all usable bins sorted ascending by filled unit
// cost, ties broken by ascending bin ID to keep solves deterministic.
func (st *solveState) binsByFilledUnitCost() []*Bin {
	sorted := slices.Clone(st.bins)
	slices.SortFunc(sorted, func(a, b *Bin) int {
		if c := cmp.Compare(a.FilledUnitCost(), b.FilledUnitCost()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

// assign moves the item to the target bin, updating the old bin's membership,
// the new bin's membership and the item's reference in one step. It is the
// only mutation site of the assignment relation.
func (st *solveState) assign(item *Item, target *Bin) error {
	if current := item.bin; current != nil {
		if _, ok := current.members[item.ID]; !ok {
			return &ConsistencyError{
				Detail: fmt.Sprintf("item '%s' is not a member of bin '%s' it is assigned to", item.ID, current.ID),
			}
		}
		delete(current.members, item.ID)
	}
	target.members[item.ID] = item
	item.bin = target
	return nil
}

// resetAssignments clears the assignment relation so rounding can start from a
// clean slate after a bin admission.
func (st *solveState) resetAssignments() {
	for _, item := range st.items {
		item.bin = nil
	}
	for _, bin := range st.bins {
		clear(bin.members)
	}
}
