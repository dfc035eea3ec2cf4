package bundler

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/tonsuu/web-bundler/internal/logger"

	// Ensure SHA512 is available for checksum calculation.
	_ "crypto/sha512"
)

var errHashUnavailable = errors.New("hash function unavailable")

const (
	// MarkerFilename marks that a bundling run is in progress to avoid parallel execution.
	MarkerFilename = "web-bundler-marker.bin"

	// DefaultFileMode is used for the merged artifact.
	DefaultFileMode os.FileMode = 0o644

	// DefaultChecksumFunction is used to verify the artifact copy.
	DefaultChecksumFunction crypto.Hash = crypto.SHA512

	// baseBundlerExecutable is the bundler binary name; platform helpers append the extension.
	baseBundlerExecutable = "web-bundler"

	// markerLifetime is the period after which a stale marker is ignored.
	// Packaging a release can legitimately take a while, hence minutes, not seconds.
	markerLifetime = 30 * time.Minute
)

// GetFileChecksum returns checksum bytes for a file using DefaultChecksumFunction.
func GetFileChecksum(path string) ([]byte, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return checksumOf(contents)
}

// checksumOf returns checksum bytes for the contents using DefaultChecksumFunction.
func checksumOf(contents []byte) ([]byte, error) {
	if !DefaultChecksumFunction.Available() {
		return nil, fmt.Errorf("checksum calculation not possible: %w", errHashUnavailable)
	}

	hasher := DefaultChecksumFunction.New()
	if _, err := hasher.Write(contents); err != nil {
		return nil, fmt.Errorf("calculate checksum: %w", err)
	}

	return hasher.Sum(nil), nil
}

// IsBundlerRunningNow checks presence of a marker file and attempts recovery if it looks stale.
func IsBundlerRunningNow(ctx context.Context) bool {
	logger.Debug(ctx, "Checking for the presence of a bundling marker")

	fileInfo, err := os.Stat(MarkerFilename)
	if err == nil {
		if time.Since(fileInfo.ModTime()) <= markerLifetime {
			return true
		}

		logger.Info(ctx, "The bundling marker is too old, attempting cleanup")

		if err = terminateProcessByName(bundlerExecutable()); err != nil {
			return true
		}

		if err = os.Remove(MarkerFilename); err != nil {
			return true
		}

		return false
	}

	if errors.Is(err, os.ErrNotExist) {
		logger.Debug(ctx, "Bundling marker not found, continuing")
		return false
	}

	logger.Infof(ctx, "Unable to read bundling marker: %v", err)

	return false
}

// terminateProcessByName tries to kill processes with the provided executable name.
func terminateProcessByName(processName string) error {
	processList, err := ps.Processes()
	if err != nil {
		return err
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() != processName {
			continue
		}

		var runningProcess *os.Process

		runningProcess, err = os.FindProcess(process.Pid())
		if err != nil {
			return err
		}

		if err = runningProcess.Kill(); err != nil {
			return err
		}
	}

	return nil
}

// getExecutableExtension returns ".exe" on Windows and "" elsewhere.
func getExecutableExtension() string {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return ".exe"
	}

	return ""
}

func bundlerExecutable() string {
	return baseBundlerExecutable + getExecutableExtension()
}
