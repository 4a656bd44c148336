package diskspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbe_Free(t *testing.T) {
	probe := NewProbe()

	free, err := probe.Free(filepath.Join(t.TempDir(), "not-created-yet.bin"))
	require.NoError(t, err)
	require.Greater(t, free, uint64(0))
}

func TestProbe_MissingDirectory(t *testing.T) {
	_, err := NewProbe().Free(filepath.Join(t.TempDir(), "missing", "out.bin"))
	require.Error(t, err)
}
