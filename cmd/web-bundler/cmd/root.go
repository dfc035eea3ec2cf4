package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tonsuu/web-bundler/internal/config"
	"github.com/tonsuu/web-bundler/internal/logger"
	"github.com/tonsuu/web-bundler/internal/service/bundler"
	"github.com/tonsuu/web-bundler/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// logLevel overrides the default logging level.
	logLevel string

	// rootCmd represents the base command for packaging the library for the web.
	rootCmd = &cobra.Command{
		Use:   "web-bundler",
		Short: "Package the tonsuu core library for the web and merge the prompt spec",
		Long:  "Invoke wasm-pack with the fixed web target and wasm feature, then copy prompt-spec.json into the produced package directory. The operation is all-or-nothing: the first failure aborts the run.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if lvl, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(lvl)
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &bundler.Options{
				ConfigPath: configPath,
			}

			return bundler.Run(ctx, options)
		},
	}
)

// Execute runs the web-bundler CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", logger.Level().String(), "logging level (debug, info, warn, error, fatal)")
}
