package placement

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Bin is one capacitated placement target, e.g. an infrastructure node.
type Bin struct {
	ID string
	// Capacity is the total demand weight the bin can host.
	Capacity float64
	// FixedCost is incurred once if the bin hosts at least one item.
	FixedCost float64
	// UnitCost is incurred per unit of hosted demand weight.
	UnitCost float64
	// Attrs is the opaque attribute bag copied from the source infrastructure node.
	Attrs map[string]any

	// members holds the items currently assigned here, keyed by item ID.
	// Only mutated through solveState.assign.
	members map[string]*Item
	// preference ranks the bin during rounding and admission. It is only
	// meaningful while a solve is in progress.
	preference float64
}

// TotalLoad returns the summed weight of all items assigned to the bin.
func (b *Bin) TotalLoad() float64 {
	var load float64
	for _, item := range b.members {
		load += item.Weight
	}
	return load
}

// IsOverloaded reports whether the assigned load exceeds the bin's capacity.
func (b *Bin) IsOverloaded() bool {
	return b.TotalLoad() > b.Capacity
}

// FilledUnitCost is the cost of one capacity unit if the bin were fully used.
// It is the sort key for bin desirability; a zero-capacity bin is infinitely
// undesirable.
func (b *Bin) FilledUnitCost() float64 {
	if b.Capacity <= 0 {
		return math.Inf(1)
	}
	return b.FixedCost/b.Capacity + b.UnitCost
}

// Fits reports whether the item can be added without exceeding the bin's
// capacity at its current load.
func (b *Bin) Fits(item *Item) bool {
	return b.Capacity >= b.TotalLoad()+item.Weight
}

// VariableCost is the load-dependent cost of hosting the item on this bin.
func (b *Bin) VariableCost(item *Item) float64 {
	return item.Weight * b.UnitCost
}

// Members returns the assigned items sorted by ID for deterministic iteration.
func (b *Bin) Members() []*Item {
	items := make([]*Item, 0, len(b.members))
	for _, item := range b.members {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, c *Item) int {
		return cmp.Compare(a.ID, c.ID)
	})
	return items
}

func (b *Bin) String() string {
	return fmt.Sprintf("Bin(id=%s, capacity=%v)", b.ID, b.Capacity)
}
