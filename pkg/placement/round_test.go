package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fracplace/fracplace/pkg/topology"
)

func TestSolveState_RoundToIntegral(t *testing.T) {
	t.Parallel()

	infra := &topology.Infrastructure{Nodes: []topology.Node{
		hostNode("big", 8, 0, 1),
		hostNode("small", 4, 0, 2),
	}}
	svc := &topology.Service{Nodes: []topology.Node{
		vnfNode("vnf-a", 5),
		vnfNode("vnf-b", 4),
	}}

	st := newTestState(t, infra, svc)
	require.NoError(t, st.computeBestBins())
	require.NoError(t, st.roundToIntegral())

	// Both best bins are needed (demand 9 > 8): big has preference 8 and
	// small carries the remaining 1, so everything rounds onto big and
	// overloads it. Repairing that is the local search's job, not rounding's.
	for _, item := range st.items {
		assert.Equal(t, "big", item.Bin().ID)
	}
	assert.True(t, st.binsByID["big"].IsOverloaded())
}

func TestSolveState_RoundToIntegral_PreferenceTieBrokenByID(t *testing.T) {
	t.Parallel()

	infra := &topology.Infrastructure{Nodes: []topology.Node{
		hostNode("host-b", 5, 0, 1),
		hostNode("host-a", 5, 0, 1),
	}}
	svc := &topology.Service{Nodes: []topology.Node{
		vnfNode("vnf-a", 3),
		vnfNode("vnf-b", 3),
		vnfNode("vnf-c", 3),
	}}

	st := newTestState(t, infra, svc)
	require.NoError(t, st.computeBestBins())

	// Make the preferences tie to exercise the ID tie-break.
	st.binsByID["host-a"].preference = 5
	st.binsByID["host-b"].preference = 5
	require.NoError(t, st.roundToIntegral())

	for _, item := range st.items {
		assert.Equal(t, "host-a", item.Bin().ID)
	}
}

func TestSolveState_RoundToIntegral_ResetsPreviousAssignments(t *testing.T) {
	t.Parallel()

	infra := &topology.Infrastructure{Nodes: []topology.Node{
		hostNode("host-1", 10, 0, 1),
		hostNode("host-2", 10, 0, 2),
	}}
	svc := &topology.Service{Nodes: []topology.Node{
		vnfNode("vnf-a", 5),
	}}

	st := newTestState(t, infra, svc)
	require.NoError(t, st.computeBestBins())

	// Park the item somewhere rounding would not put it.
	require.NoError(t, st.assign(st.items[0], st.binsByID["host-2"]))
	require.NoError(t, st.roundToIntegral())

	assert.Equal(t, "host-1", st.items[0].Bin().ID)
	assert.Empty(t, st.binsByID["host-2"].Members())
	assert.Len(t, st.binsByID["host-1"].Members(), 1)
}
