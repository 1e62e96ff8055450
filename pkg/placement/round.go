package placement

import "slices"

// roundToIntegral rounds the fractional solution defined by the best bins to
// an integral assignment: every item goes to the most preferred best bin it
// may occupy, preference ties broken by ascending bin ID. Capacities are
// deliberately ignored here; overloads are repaired afterwards by the local
// search.
//
// Items whose candidates never intersect the best-bin set fall through to the
// escape hatches: a single remaining candidate is force-assigned even outside
// the best bins, while multiple candidates have no documented rounding rule
// and fail with an AmbiguityError.
func (st *solveState) roundToIntegral() error {
	st.resetAssignments()

	for _, item := range st.items {
		var chosen *Bin
		for _, bin := range st.bestBins {
			if !item.Candidates.Contains(bin.ID) {
				continue
			}
			if chosen == nil || bin.preference > chosen.preference ||
				(bin.preference == chosen.preference && bin.ID < chosen.ID) {
				chosen = bin
			}
		}

		if chosen == nil {
			switch item.Candidates.Cardinality() {
			case 0:
				return &InfeasibleError{ItemID: item.ID, Reason: "no candidate bin left after pruning"}
			case 1:
				chosen = st.binsByID[item.Candidates.ToSlice()[0]]
			default:
				candidates := item.Candidates.ToSlice()
				slices.Sort(candidates)
				return &AmbiguityError{ItemID: item.ID, Candidates: candidates}
			}
		}

		if err := st.assign(item, chosen); err != nil {
			return err
		}
	}
	return nil
}
