package placement

import "fmt"

// InfeasibleError reports that the bin packing instance cannot be satisfied:
// total capacity is below total demand, no bin can host the smallest item, or
// a specific item has no candidate bin left at all. It is fatal and never
// absorbed into a "did not work" result.
type InfeasibleError struct {
	// Reason describes the infeasibility in human terms.
	Reason string
	// ItemID names the unplaceable item when the infeasibility is item-specific.
	ItemID string
}

func (e *InfeasibleError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("unfeasible bin packing: item '%s': %s", e.ItemID, e.Reason)
	}
	return "unfeasible bin packing: " + e.Reason
}

// AmbiguityError reports that rounding found an item with multiple candidate
// bins, none of which are in the best-bin set. No tie-break heuristic is
// defined for this case, so it fails loudly instead of guessing. It is
// distinct from infeasibility: the item could be placed, the heuristic just
// has no rule for choosing where.
type AmbiguityError struct {
	ItemID     string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("no rounding heuristic for item '%s': candidate bins %v are all outside the best-bin set",
		e.ItemID, e.Candidates)
}

// ConsistencyError reports a divergence between item assignments and bin
// membership. It indicates an implementation bug and should be unreachable.
type ConsistencyError struct {
	Detail string
}

func (e *ConsistencyError) Error() string {
	return "inconsistent assignment bookkeeping: " + e.Detail
}

// ConstraintError reports that a finished mapping violates an item's locality
// constraint despite pruning. It indicates a defect in the pruning pipeline,
// not an infeasible instance.
type ConstraintError struct {
	ItemID string
	BinID  string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("mapping violates locality constraint: item '%s' is placed on bin '%s'", e.ItemID, e.BinID)
}
