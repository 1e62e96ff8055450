package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fracplace/fracplace/pkg/placement"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), DBFileName))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestStore_RecordAndListRuns(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	require.NoError(t, s.RecordRun("infra.yaml", "service-a.yaml", &placement.Solution{
		Worked:              true,
		Objective:           18,
		FractionalObjective: 14,
	}))
	require.NoError(t, s.RecordRun("infra.yaml", "service-b.yaml", &placement.Solution{
		Worked: false,
	}))

	runs, err := s.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	failed := runs[0]
	assert.Equal(t, "service-b.yaml", failed.Service)
	assert.False(t, failed.Worked)
	assert.False(t, failed.Objective.Valid)

	worked := runs[1]
	assert.Equal(t, "service-a.yaml", worked.Service)
	assert.True(t, worked.Worked)
	require.True(t, worked.Objective.Valid)
	assert.Equal(t, 18.0, worked.Objective.Float64)
	assert.Equal(t, 14.0, worked.FractionalObjective.Float64)
	assert.False(t, worked.CreatedAt.IsZero())
}

func TestStore_ListRuns_Limit(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for range 5 {
		require.NoError(t, s.RecordRun("infra.yaml", "service.yaml", &placement.Solution{Worked: true}))
	}

	runs, err := s.ListRuns(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestStore_ListRuns_Empty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	runs, err := s.ListRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
