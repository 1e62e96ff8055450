package placement

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/fracplace/fracplace/pkg/topology"
)

// checkMapping determines if the constructed assignment is a valid bin packing
// solution and recomputes the integral objective from scratch while doing so:
// the variable cost of every mapped item plus the fixed cost of every bin that
// hosts at least one of them. An unmapped item or an overloaded bin makes the
// mapping invalid and leaves the objective undefined.
//
// A divergence between item assignments and bin membership is reported as a
// ConsistencyError. It cannot happen as long as all mutations go through
// solveState.assign.
func (st *solveState) checkMapping() (bool, error) {
	st.integralObjective = 0
	for _, item := range st.items {
		if item.bin == nil {
			return false, nil
		}
		st.integralObjective += item.bin.VariableCost(item)
	}

	unseen := mapset.NewThreadUnsafeSet[string]()
	for _, item := range st.items {
		unseen.Add(item.ID)
	}
	for _, bin := range st.bins {
		if bin.IsOverloaded() {
			return false, nil
		}
		if len(bin.members) == 0 {
			continue
		}
		for _, item := range bin.Members() {
			if !unseen.Contains(item.ID) {
				return false, &ConsistencyError{
					Detail: fmt.Sprintf("item '%s' is a member of more than one bin", item.ID),
				}
			}
			unseen.Remove(item.ID)
		}
		st.integralObjective += bin.FixedCost
	}
	if unseen.Cardinality() != 0 {
		return false, &ConsistencyError{
			Detail: fmt.Sprintf("items %v are not members of any bin", unseen.ToSlice()),
		}
	}
	return true, nil
}

// checkConstraints re-verifies locality compliance against the raw item
// attributes, independent of the pruning pipeline. A violation here means the
// pipeline let an illegal candidate through and is escalated as a hard error
// rather than treated as infeasibility.
func (st *solveState) checkConstraints() error {
	for _, item := range st.items {
		allowed, constrained := topology.Locality(item.Attrs)
		if !constrained {
			continue
		}
		if !slices.Contains(allowed, item.bin.ID) {
			return &ConstraintError{ItemID: item.ID, BinID: item.bin.ID}
		}
	}
	return nil
}
