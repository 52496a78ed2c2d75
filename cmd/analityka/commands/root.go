package commands

import (
	"github.com/spf13/cobra"

	"github.com/tomasz450/analityka/pkg/config"
	"github.com/tomasz450/analityka/pkg/httputil"
	"github.com/tomasz450/analityka/pkg/logger"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "analityka",
	Short: "NBP gold-price dashboard and movies ranking toolkit",
	Long: `Analityka CLI

Two independent pipelines:
- gold:   fetch gold prices from the NBP archive, show them, export to xlsx
- movies: download the movies CSV and rank top films per genre

Usage:
  go run ./cmd/analityka [command]

Examples:
  go run ./cmd/analityka gold fetch --start 2023-01-02 --end "3 maja 2023"
  go run ./cmd/analityka movies rank
  go run ./cmd/analityka api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// runtime bundles the shared dependencies every command needs.
type runtime struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *httputil.Client
}

// newRuntime loads config and wires the logger and HTTP client.
func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	return &runtime{
		cfg:        cfg,
		log:        log,
		httpClient: httputil.New(cfg, log),
	}, nil
}
