package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fracplace/fracplace/pkg/topology"
)

func TestLocalityPruning(t *testing.T) {
	t.Parallel()

	infra := &topology.Infrastructure{Nodes: []topology.Node{
		hostNode("host-1", 10, 0, 1),
		hostNode("host-2", 10, 0, 1),
		hostNode("host-3", 10, 0, 1),
	}}
	svc := &topology.Service{Nodes: []topology.Node{
		vnfNode("constrained", 2, "host-1", "host-3"),
		vnfNode("unconstrained", 2),
		vnfNode("impossible", 2, "nowhere"),
	}}

	st := newTestState(t, infra, svc)
	require.NoError(t, LocalityPruning{}.Prune(infra, svc, st.items, st.bins))

	assert.ElementsMatch(t, []string{"host-1", "host-3"}, st.items[0].Candidates.ToSlice())
	// Absence of the locality attribute means unconstrained.
	assert.ElementsMatch(t, []string{"host-1", "host-2", "host-3"}, st.items[1].Candidates.ToSlice())
	// A constraint naming no existing bin empties the candidate set; whether
	// that is fatal is decided later, during rounding.
	assert.Empty(t, st.items[2].Candidates.ToSlice())
}

func TestSolver_WithPruningSteps(t *testing.T) {
	t.Parallel()

	infra := &topology.Infrastructure{Nodes: []topology.Node{
		hostNode("host-1", 10, 0, 1),
		hostNode("host-2", 10, 0, 2),
	}}
	svc := &topology.Service{Nodes: []topology.Node{
		vnfNode("vnf-a", 5),
	}}

	// A pipeline step that bars everything from host-1. Later steps see the
	// narrowed state: chained with locality pruning this would compose, here
	// it alone redirects the item to the pricier bin.
	banHost1 := pruneFunc(func(items []*Item) {
		for _, item := range items {
			item.Candidates.Remove("host-1")
		}
	})

	sol, err := NewSolver(topology.NewGraphChecker(), WithPruningSteps(LocalityPruning{}, banHost1)).Solve(infra, svc)
	require.NoError(t, err)
	require.True(t, sol.Worked)
	assert.Equal(t, map[string]string{"vnf-a": "host-2"}, sol.Assignment)
}

// pruneFunc adapts a plain function to the PruningStep interface for tests.
type pruneFunc func(items []*Item)

func (f pruneFunc) Prune(infra *topology.Infrastructure, svc *topology.Service, items []*Item, bins []*Bin) error {
	f(items)
	return nil
}
