package hda_test

import (
	"testing"

	"github.com/katalvlaran/hdastar/hda"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	cfg := hda.DefaultOptions()
	require.Equal(t, 16, cfg.Workers)
	require.Equal(t, hda.VariantMessagePassing, cfg.Variant)
	require.False(t, cfg.RequirePathExists)
	require.NotNil(t, cfg.Heuristic)
}

func TestResolveAppliesOptions(t *testing.T) {
	cfg := hda.Resolve(hda.WithWorkers(4), hda.WithVariant(hda.VariantSharedMemory), hda.WithRequirePathExists())
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, hda.VariantSharedMemory, cfg.Variant)
	require.True(t, cfg.RequirePathExists)
}

func TestWithWorkersPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { hda.WithWorkers(0) })
	require.Panics(t, func() { hda.WithWorkers(-1) })
}

func TestWithHeuristicPanicsOnNil(t *testing.T) {
	require.Panics(t, func() { hda.WithHeuristic(nil) })
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "ok", hda.StatusOK.String())
	require.Equal(t, "no-path", hda.StatusNoPath.String())
	require.Equal(t, "inconsistent", hda.StatusInconsistent.String())
}
