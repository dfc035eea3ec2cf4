package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the bundling parameters for one invocation.
// The loaded value is treated as immutable for the life of a run.
type Config struct {
	// Tool is the name (or path) of the external packaging tool.
	Tool string `yaml:"tool"`
	// Target is the platform selector passed to the packaging tool.
	Target string `yaml:"target"`
	// Features are the feature flags compiled into the build.
	Features []string `yaml:"features"`
	// ArtifactPath is the relative path of the auxiliary file merged into the package.
	ArtifactPath string `yaml:"artifact"`
	// OutputDir is the package directory produced by the packaging tool.
	OutputDir string `yaml:"output_dir"`
}

const (
	// DefaultConfigFilename is the default filename for bundling settings.
	DefaultConfigFilename = "web-bundler-settings.yaml"

	// DefaultTool is the packaging tool expected on PATH.
	DefaultTool = "wasm-pack"

	// DefaultTarget produces output suitable for a web-hosted environment.
	DefaultTarget = "web"

	// DefaultFeature enables the WASM-oriented code path of the library.
	DefaultFeature = "wasm"

	// DefaultArtifactPath is the auxiliary spec file merged into the package.
	DefaultArtifactPath = "prompt-spec.json"

	// DefaultOutputDir is where the packaging tool leaves the distributable package.
	DefaultOutputDir = "pkg"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errToolRequired is returned when the packaging tool name is missing.
	errToolRequired = errors.New("packaging tool must be provided")
	// errTargetRequired is returned when the build target is missing.
	errTargetRequired = errors.New("build target must be provided")
	// errArtifactRequired is returned when the auxiliary artifact path is missing.
	errArtifactRequired = errors.New("auxiliary artifact path must be provided")
	// errOutputDirRequired is returned when the output directory is missing.
	errOutputDirRequired = errors.New("output directory must be provided")
)

// Default returns the fixed bundling configuration used by the release pipeline.
func Default() *Config {
	return &Config{
		Tool:         DefaultTool,
		Target:       DefaultTarget,
		Features:     []string{DefaultFeature},
		ArtifactPath: DefaultArtifactPath,
		OutputDir:    DefaultOutputDir,
	}
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault reads configuration from the provided path,
// falling back to the fixed defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	if _, err := os.Stat(filepath.Clean(path)); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return Load(path)
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if strings.TrimSpace(cfg.Tool) == "" {
		return errToolRequired
	}

	if strings.TrimSpace(cfg.Target) == "" {
		return errTargetRequired
	}

	// An empty feature set means the default feature flag.
	if len(cfg.Features) == 0 {
		cfg.Features = []string{DefaultFeature}
	}

	if strings.TrimSpace(cfg.ArtifactPath) == "" {
		return errArtifactRequired
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		return errOutputDirRequired
	}

	return nil
}
