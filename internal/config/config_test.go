package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefault verifies the fixed bundling defaults.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Equal(t, DefaultTool, cfg.Tool)
	require.Equal(t, DefaultTarget, cfg.Target)
	require.Equal(t, []string{DefaultFeature}, cfg.Features)
	require.Equal(t, DefaultArtifactPath, cfg.ArtifactPath)
	require.Equal(t, DefaultOutputDir, cfg.OutputDir)
	require.NoError(t, Validate(cfg))
}

// TestSaveLoad_Roundtrip ensures Save followed by Load returns equal settings.
func TestSaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	want := &Config{
		Tool:         "fake-pack",
		Target:       "web",
		Features:     []string{"wasm"},
		ArtifactPath: "prompt-spec.json",
		OutputDir:    "pkg",
	}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestLoad_MissingFile verifies Load fails when the settings file does not exist.
func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadOrDefault_MissingFile verifies the fallback to fixed defaults.
func TestLoadOrDefault_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestValidate_RequiredFields checks each required field is enforced
// and that an empty feature set falls back to the default flag.
func TestValidate_RequiredFields(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	cases := map[string]*Config{
		"missing tool":     {Target: "web", ArtifactPath: "a.json", OutputDir: "pkg"},
		"missing target":   {Tool: "wasm-pack", ArtifactPath: "a.json", OutputDir: "pkg"},
		"missing artifact": {Tool: "wasm-pack", Target: "web", OutputDir: "pkg"},
		"missing out dir":  {Tool: "wasm-pack", Target: "web", ArtifactPath: "a.json"},
	}
	for name, cfg := range cases {
		require.Error(t, Validate(cfg), name)
	}

	cfg := &Config{Tool: "wasm-pack", Target: "web", ArtifactPath: "a.json", OutputDir: "pkg"}
	require.NoError(t, Validate(cfg))
	require.Equal(t, []string{DefaultFeature}, cfg.Features)
}
