package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	logJSON bool
	version = "dev" // Set by build flags
)

var rootCmd = &cobra.Command{
	Use:   "navsim",
	Short: "Multi-agent navigation simulator on tiled maps",
	Long: `navsim runs collision-aware multi-agent navigation scenarios on tiled
maps under three cell topologies (4-cardinal, 8-cardinal, hexagonal).
It executes YAML scenarios headlessly, records benchmark CSVs, and can
stream world snapshots to an external renderer over a websocket.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log JSON instead of console format")

	// Subcommands are defined in their own files:
	// - runCmd in run.go
	// - benchCmd in bench.go
	// - serveCmd in serve.go
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger from the global flags.
func newLogger() zerolog.Logger {
	var out = os.Stdout
	logger := zerolog.New(out)
	if !logJSON {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	logger = logger.With().Timestamp().Logger()
	if verbose {
		return logger.Level(zerolog.DebugLevel)
	}

	return logger.Level(zerolog.InfoLevel)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
