package placement

import (
	"fmt"
	"log/slog"
)

// computeBestBins derives the fractional optimum of the relaxation: the
// minimal prefix of the cost-ordered bins whose cumulative capacity covers
// total demand. The prefix fully defines the fractional solution ("first k
// best bins" in section 2.1 of the Cambazard paper).
func (st *solveState) computeBestBins() error {
	totalWeight := st.totalItemWeight()
	var totalCapacity float64
	var bestBins []*Bin

	for _, bin := range st.binsByFilledUnitCost() {
		totalCapacity += bin.Capacity
		bestBins = append(bestBins, bin)
		if totalCapacity >= totalWeight {
			st.bestBins = bestBins
			st.setInitialPreferences(totalCapacity)
			return nil
		}
	}
	return &InfeasibleError{
		Reason: fmt.Sprintf("total item weight %v exceeds the combined bin capacity %v", totalWeight, totalCapacity),
	}
}

// setInitialPreferences ranks the best bins by their fractional allocation:
// every bin is preferred by its full capacity except the last, which only
// carries the remaining share of demand. The fractional-optimum objective and
// the minimum preference (the anchor for later bin admissions) are derived in
// the same pass.
func (st *solveState) setInitialPreferences(totalBestCapacity float64) {
	totalWeight := st.totalItemWeight()
	st.fractionalObjective = 0
	last := st.bestBins[len(st.bestBins)-1]

	for _, bin := range st.bestBins {
		if bin == last {
			bin.preference = totalWeight - (totalBestCapacity - bin.Capacity)
		} else {
			bin.preference = bin.Capacity
		}
		st.fractionalObjective += bin.FixedCost + bin.preference*bin.UnitCost
	}

	st.minPreference = st.bestBins[0].preference
	for _, bin := range st.bestBins[1:] {
		st.minPreference = min(st.minPreference, bin.preference)
	}
	slog.Debug("Fractional optimum computed.",
		"best_bins", len(st.bestBins), "objective", st.fractionalObjective, "min_preference", st.minPreference)
}
