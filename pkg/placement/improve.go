package placement

import (
	"log/slog"
	"math"
)

// improveOnce performs one best-improvement step of the local search: among
// all items sitting in overloaded best bins, find the relocation with the
// globally cheapest cost delta and perform it. The delta may be negative when
// the rounding picked a pricier bin than necessary. Reports whether a move was
// made; the caller repeats until a fixed point.
//
// Move targets are restricted to best bins that the item may occupy and that
// have room for it at their current load, so a move never creates a new
// overload.
func (st *solveState) improveOnce() (bool, error) {
	var overloading []*Item
	for _, bin := range st.bestBins {
		if bin.IsOverloaded() {
			overloading = append(overloading, bin.Members()...)
		}
	}
	if len(overloading) == 0 {
		return false, nil
	}

	cheapest := math.Inf(1)
	var itemToMove *Item
	var target *Bin
	for _, item := range overloading {
		for _, bin := range st.bestBins {
			if bin == item.bin || !bin.Fits(item) || !item.Candidates.Contains(bin.ID) {
				continue
			}
			delta := bin.VariableCost(item) - item.bin.VariableCost(item)
			if delta < cheapest {
				cheapest = delta
				itemToMove = item
				target = bin
			}
		}
	}
	if target == nil {
		return false, nil
	}

	slog.Debug("Improving mapping by relocating item.",
		"item", itemToMove.ID, "from", itemToMove.bin.ID, "to", target.ID, "delta", cheapest)
	if err := st.assign(itemToMove, target); err != nil {
		return false, err
	}
	// Even if this was the last possible improvement, the next call will
	// observe the fixed point and report it.
	return true, nil
}
