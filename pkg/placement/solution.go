package placement

// Solution is the outcome of one solve.
//
// Worked distinguishes a soft failure (rejected input or the heuristic giving
// up after admitting every bin) from success. Fatal conditions such as
// infeasibility are returned as errors instead, never encoded here.
type Solution struct {
	Worked bool `json:"worked"`
	// Assignment maps item IDs to the IDs of the bins hosting them.
	Assignment map[string]string `json:"assignment,omitempty"`
	// Objective is the total cost of the integral assignment.
	Objective float64 `json:"objective"`
	// FractionalObjective is the cost of the fractional relaxation optimum,
	// a lower bound on any integral solution. Comparing the two measures the
	// quality of the heuristic result.
	FractionalObjective float64 `json:"fractional_objective"`
	// Bins summarises the load placed on each used bin.
	Bins []BinUsage `json:"bins,omitempty"`
}

// BinUsage describes how one bin is used by the solution.
type BinUsage struct {
	BinID    string   `json:"bin_id"`
	Capacity float64  `json:"capacity"`
	Load     float64  `json:"load"`
	Items    []string `json:"items"`
}

// Utilization returns the fraction of the bin's capacity in use.
func (u BinUsage) Utilization() float64 {
	if u.Capacity <= 0 {
		return 0
	}
	return u.Load / u.Capacity
}

// Gap returns the relative distance of the integral objective from the
// fractional lower bound, e.g. 0.25 for a solution 25% above the optimum.
func (s *Solution) Gap() float64 {
	if s.FractionalObjective == 0 {
		return 0
	}
	return (s.Objective - s.FractionalObjective) / s.FractionalObjective
}

// solution exports the final state as a Solution.
func (st *solveState) solution() *Solution {
	sol := &Solution{
		Worked:              true,
		Assignment:          make(map[string]string, len(st.items)),
		Objective:           st.integralObjective,
		FractionalObjective: st.fractionalObjective,
	}
	for _, item := range st.items {
		sol.Assignment[item.ID] = item.bin.ID
	}
	for _, bin := range st.binsByFilledUnitCost() {
		members := bin.Members()
		if len(members) == 0 {
			continue
		}
		usage := BinUsage{
			BinID:    bin.ID,
			Capacity: bin.Capacity,
			Load:     bin.TotalLoad(),
		}
		for _, item := range members {
			usage.Items = append(usage.Items, item.ID)
		}
		sol.Bins = append(sol.Bins, usage)
	}
	return sol
}
