package placement

import (
	"log/slog"
	"slices"
)

// admitNextBin extends the best-bin set once the local search has reached a
// fixed point. If the current mapping is already valid no bin is admitted.
// Otherwise the cheapest bin (by filled unit cost) not yet in the best-bin
// set joins it with a preference strictly below every bin admitted before, so
// rounding keeps favouring earlier, cheaper bins. Reports whether the set
// grew; false also covers the case where every bin is already admitted and
// the outer solve has to give up.
func (st *solveState) admitNextBin() (bool, error) {
	valid, err := st.checkMapping()
	if err != nil {
		return false, err
	}
	if valid {
		// Everything is mapped within the current best bins.
		return false, nil
	}

	for _, bin := range st.binsByFilledUnitCost() {
		if slices.Contains(st.bestBins, bin) {
			continue
		}
		bin.preference = st.minPreference - st.epsilon
		st.minPreference = bin.preference
		st.bestBins = append(st.bestBins, bin)
		slog.Info("Admitting next bin with minimal preference.", "bin", bin.ID, "preference", bin.preference)
		return true, nil
	}
	return false, nil
}
