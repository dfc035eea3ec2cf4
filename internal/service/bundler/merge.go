package bundler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	goupdate "github.com/doitdistributed/go-update"

	"github.com/tonsuu/web-bundler/internal/logger"
)

var (
	// ErrArtifactMissing indicates the auxiliary file is absent at its fixed source path.
	ErrArtifactMissing = errors.New("auxiliary artifact not found")
	// ErrOutputDirMissing indicates the output package directory does not exist.
	ErrOutputDirMissing = errors.New("output package directory not found")
)

// mergeArtifact copies the auxiliary file into the output package directory
// under the same filename. The write goes through go-update with a SHA-512
// checksum of the source bytes, so a torn write can never leave a silently
// corrupt destination file.
func (r *runner) mergeArtifact(ctx context.Context) error {
	source := filepath.Clean(r.cfg.ArtifactPath)

	data, err := os.ReadFile(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrArtifactMissing, source)
		}

		return fmt.Errorf("read artifact %s: %w", source, err)
	}

	outputDir := filepath.Clean(r.cfg.OutputDir)

	info, err := os.Stat(outputDir)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrOutputDirMissing, outputDir)
	} else if err != nil {
		return fmt.Errorf("stat output directory %s: %w", outputDir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrOutputDirMissing, outputDir)
	}

	checksum, err := checksumOf(data)
	if err != nil {
		return err
	}

	destination := filepath.Join(outputDir, filepath.Base(source))

	// go-update expects the target to exist before applying.
	if _, err = os.Stat(destination); errors.Is(err, os.ErrNotExist) {
		var placeholder *os.File

		placeholder, err = os.Create(destination)
		if err != nil {
			return fmt.Errorf("create %s: %w", destination, err)
		}

		if err = placeholder.Close(); err != nil {
			return fmt.Errorf("close %s: %w", destination, err)
		}
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", destination, err)
	}

	options := goupdate.Options{
		TargetPath: destination,
		TargetMode: DefaultFileMode,
		Checksum:   checksum,
		Hash:       DefaultChecksumFunction,
	}

	if err = goupdate.Apply(bytes.NewReader(data), options); err != nil {
		return fmt.Errorf("copy artifact to %s: %w", destination, err)
	}

	oldFileName := destination + ".old"
	if _, err = os.Stat(oldFileName); err == nil {
		_ = os.Remove(oldFileName)
	}

	logger.Infof(ctx, "Merged %s into %s", filepath.Base(source), outputDir)

	return nil
}
