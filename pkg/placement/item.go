// Package placement implements a constructive placement solver mapping demand
// units (items) onto capacitated hosts (bins) with linear usage costs. The
// solution is built from the fractional optimum of the underlying bin packing
// relaxation as defined by Cambazard et al., "Bin Packing with Linear Usage
// Costs - An Application to Energy Management in Data Centres"
// (https://hal.archives-ouvertes.fr/hal-00858159), rounded to an integral
// assignment and repaired by a best-improvement local search that admits
// additional bins only when necessary.
package placement

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Item is one unit of placement demand, e.g. a VNF instance.
type Item struct {
	ID string
	// Weight is the demand magnitude used for packing.
	Weight float64
	// Attrs is the opaque attribute bag copied from the source service node.
	Attrs map[string]any
	// Candidates is the set of bin IDs this item may legally occupy. It starts
	// as all usable bins and only ever shrinks; each item owns an independent
	// set so pruning one item never affects another.
	Candidates mapset.Set[string]

	// bin is the item's current assignment, nil while unmapped. It is only
	// mutated through solveState.assign to keep it consistent with bin
	// membership.
	bin *Bin
}

// Bin returns the bin the item is currently assigned to, or nil.
func (i *Item) Bin() *Bin {
	return i.bin
}

func (i *Item) String() string {
	binID := "<unmapped>"
	if i.bin != nil {
		binID = i.bin.ID
	}
	return fmt.Sprintf("Item(id=%s, weight=%v, bin=%s)", i.ID, i.Weight, binID)
}
