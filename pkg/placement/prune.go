package placement

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/fracplace/fracplace/pkg/topology"
)

// PruningStep narrows the candidate bins of items before the solver runs.
// Steps form an ordered pipeline: each sees the state narrowed by the steps
// before it. A step may only remove entries from an item's Candidates set;
// it must never add candidates or change the item and bin lists themselves.
type PruningStep interface {
	Prune(infra *topology.Infrastructure, svc *topology.Service, items []*Item, bins []*Bin) error
}

// LocalityPruning removes candidate bins that contradict an item's locality
// constraint. Items without the locality attribute are left unconstrained.
type LocalityPruning struct{}

func (LocalityPruning) Prune(infra *topology.Infrastructure, svc *topology.Service, items []*Item, bins []*Bin) error {
	for _, item := range items {
		allowed, constrained := topology.Locality(item.Attrs)
		if !constrained {
			continue
		}
		allowedSet := mapset.NewThreadUnsafeSet(allowed...)
		for _, binID := range item.Candidates.ToSlice() {
			if !allowedSet.Contains(binID) {
				item.Candidates.Remove(binID)
			}
		}
	}
	return nil
}
