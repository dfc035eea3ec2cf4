package bundler

import (
	"context"
	"crypto/sha512"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGetFileChecksum verifies the checksum matches a direct SHA-512 of the contents.
func TestGetFileChecksum(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "artifact.json")
	contents := []byte(`{"x":1}`)
	require.NoError(t, os.WriteFile(path, contents, 0o644))

	got, err := GetFileChecksum(path)
	require.NoError(t, err)

	want := sha512.Sum512(contents)
	require.Equal(t, want[:], got)
}

// TestGetFileChecksum_MissingFile verifies the error surfaces for absent files.
func TestGetFileChecksum_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := GetFileChecksum(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestIsBundlerRunningNow checks the marker file detection.
// Uses Chdir because the marker path is relative to the working directory.
func TestIsBundlerRunningNow(t *testing.T) {
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })

	ctx := context.Background()
	require.False(t, IsBundlerRunningNow(ctx))

	f, err := os.Create(MarkerFilename)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.True(t, IsBundlerRunningNow(ctx))

	require.NoError(t, os.Remove(MarkerFilename))
	require.False(t, IsBundlerRunningNow(ctx))
}
