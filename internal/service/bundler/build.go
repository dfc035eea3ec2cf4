package bundler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/tonsuu/web-bundler/internal/domain/bundle"
	"github.com/tonsuu/web-bundler/internal/logger"
)

var (
	// ErrToolNotFound indicates the packaging tool is not installed or not on PATH.
	ErrToolNotFound = errors.New("packaging tool not found")
	// ErrBuildFailed indicates the packaging tool ran and reported failure.
	ErrBuildFailed = errors.New("packaging tool reported failure")
)

// invokeBuild runs the external packaging tool and blocks until it terminates.
// The tool owns the output package directory; only its exit status is inspected.
func (r *runner) invokeBuild(ctx context.Context) error {
	toolPath, err := exec.LookPath(r.cfg.Tool)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrToolNotFound, r.cfg.Tool)
	}

	request := &bundle.Request{
		Target:   bundle.Target(r.cfg.Target),
		Features: r.cfg.Features,
	}
	args := buildArguments(request, r.cfg.OutputDir)

	logger.InfoKV(ctx, "Invoking packaging tool", "tool", toolPath, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, toolPath, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err = cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: exit status %d", ErrBuildFailed, exitErr.ExitCode())
		}

		return fmt.Errorf("start packaging tool: %w", err)
	}

	logger.Info(ctx, "Packaging tool finished successfully")

	return nil
}

// buildArguments renders wasm-pack style arguments:
// flags for the tool itself first, then cargo feature flags after the separator.
func buildArguments(request *bundle.Request, outputDir string) []string {
	args := []string{"build", "--target", string(request.Target), "--out-dir", outputDir}
	if len(request.Features) > 0 {
		args = append(args, "--", "--features", strings.Join(request.Features, ","))
	}

	return args
}
