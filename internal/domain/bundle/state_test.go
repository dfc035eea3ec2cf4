package bundle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRequestClone verifies that Clone returns a deep copy and handles nil safely.
func TestRequestClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Request)(nil).Clone())

	r := &Request{
		Target:   TargetWeb,
		Features: []string{"wasm"},
	}

	c := r.Clone()
	require.Equal(t, r, c)
	require.NotSame(t, r, c)

	// Ensure the feature slice is copied.
	c.Features[0] = "native"
	require.Equal(t, "wasm", r.Features[0])
}

// TestRun_HappyPath walks the full successful workflow.
func TestRun_HappyPath(t *testing.T) {
	t.Parallel()

	run := NewRun()
	require.Equal(t, PhaseNotStarted, run.Phase())

	require.NoError(t, run.Advance(PhaseBuilding))
	require.NoError(t, run.Advance(PhaseMerging))
	require.NoError(t, run.Advance(PhaseDone))
	require.True(t, run.Phase().Terminal())
}

// TestRun_FailurePaths verifies both failure phases are reachable and terminal.
func TestRun_FailurePaths(t *testing.T) {
	t.Parallel()

	run := NewRun()
	require.NoError(t, run.Advance(PhaseBuilding))
	require.NoError(t, run.Advance(PhaseBuildFailed))
	require.True(t, run.Phase().Terminal())

	run = NewRun()
	require.NoError(t, run.Advance(PhaseBuilding))
	require.NoError(t, run.Advance(PhaseMerging))
	require.NoError(t, run.Advance(PhaseMergeFailed))
	require.True(t, run.Phase().Terminal())
}

// TestRun_InvalidTransitions ensures no phase can be skipped or revisited.
func TestRun_InvalidTransitions(t *testing.T) {
	t.Parallel()

	// Merging must not start before a build.
	run := NewRun()
	require.Error(t, run.Advance(PhaseMerging))
	require.Error(t, run.Advance(PhaseDone))

	// Terminal phases are final.
	run = NewRun()
	require.NoError(t, run.Advance(PhaseBuilding))
	require.NoError(t, run.Advance(PhaseBuildFailed))
	require.Error(t, run.Advance(PhaseBuilding))
	require.Error(t, run.Advance(PhaseMerging))
}
