package bundler

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/tonsuu/web-bundler/internal/config"
	"github.com/tonsuu/web-bundler/internal/domain/bundle"
	"github.com/tonsuu/web-bundler/internal/logger"
)

// Options contains inputs for the bundler entry point.
type Options struct {
	// ConfigPath is an optional path to bundling settings (defaults to web-bundler-settings.yaml).
	ConfigPath string
}

// errBundlerAlreadyRunning indicates another bundling run holds the marker file.
var errBundlerAlreadyRunning = errors.New("another bundling run is in progress")

// runner holds the state for a single bundling execution.
// It is intentionally unexported—callers should use Run, which encapsulates setup.
type runner struct {
	// cfg holds the bundling configuration.
	cfg *config.Config
	// run tracks the workflow phase for this invocation.
	run *bundle.Run
}

// Run executes the bundling workflow and is the public entry point for the CLI:
// build the package for the web, then merge the auxiliary spec file into the
// produced directory. The first failure aborts the whole operation.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name and run id for tracking.
	ctx = logger.WithName(ctx, "web-bundler")
	ctx = logger.WithKV(ctx, "run_id", uuid.NewString())

	r, err := newRunner(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize bundler: %w", err)
	}

	defer r.cleanup(ctx)

	if err = r.Run(ctx); err != nil {
		logger.ErrorKV(ctx, "Bundling failed", "error", err)
		return err
	}

	logger.Info(ctx, "Bundling completed successfully")

	return nil
}

// newRunner loads settings and writes a marker to avoid concurrent runs.
// The marker is created last so an early failure leaves nothing behind.
func newRunner(ctx context.Context, opts *Options) (*runner, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if IsBundlerRunningNow(ctx) {
		return nil, errBundlerAlreadyRunning
	}

	marker, err := os.Create(MarkerFilename)
	if err != nil {
		return nil, err
	}

	if err = marker.Close(); err != nil {
		return nil, err
	}

	return &runner{
		cfg: cfg,
		run: bundle.NewRun(),
	}, nil
}

// Run executes the workflow for this runner instance:
// 1) Invoke the packaging tool and wait for it to terminate.
// 2) On success, merge the auxiliary artifact into the package directory.
// Merging never starts unless the build reported success.
func (r *runner) Run(ctx context.Context) error {
	if err := r.run.Advance(bundle.PhaseBuilding); err != nil {
		return err
	}

	if err := r.invokeBuild(ctx); err != nil {
		_ = r.run.Advance(bundle.PhaseBuildFailed)

		return fmt.Errorf("build stage: %w", err)
	}

	if err := r.run.Advance(bundle.PhaseMerging); err != nil {
		return err
	}

	if err := r.mergeArtifact(ctx); err != nil {
		_ = r.run.Advance(bundle.PhaseMergeFailed)

		return fmt.Errorf("merge stage: %w", err)
	}

	return r.run.Advance(bundle.PhaseDone)
}

// cleanup removes the running marker.
func (r *runner) cleanup(ctx context.Context) {
	if _, err := os.Stat(MarkerFilename); err == nil {
		_ = os.Remove(MarkerFilename)
	}

	logger.Info(ctx, "The bundler has been stopped")
}
