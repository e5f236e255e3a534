package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgrid/topo"
	"github.com/katalvlaran/navgrid/world"
)

var (
	benchTopology string
	benchOut      string
	benchSeed     int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure raw planner throughput and write pathfinding_benchmark.csv",
	Long: `bench sweeps grid resolutions, obstacle densities, and agent counts,
planning one random task per agent, and writes the averaged timings as
CSV. The sweep reproduces the reference benchmark:
resolutions 30×18, 60×36, 120×72 · densities 0.1/0.3/0.5 ·
agent counts 10/50/100/200/500 · 3 repetitions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		kind, err := topo.ParseKind(benchTopology)
		if err != nil {
			return err
		}

		cfg := world.DefaultPathBenchmarkConfig()
		if benchSeed != 0 {
			cfg.Rand = rand.New(rand.NewSource(benchSeed))
		}

		logger.Info().Str("topology", kind.String()).Str("out", benchOut).Msg("benchmark starting")
		if err := world.RunPathBenchmark(kind, benchOut, cfg); err != nil {
			return err
		}
		logger.Info().Str("out", benchOut).Msg("benchmark complete")

		return nil
	},
}

func init() {
	benchCmd.Flags().StringVar(&benchTopology, "topology", "cardinal4", "topology: cardinal4, cardinal8, or hex")
	benchCmd.Flags().StringVar(&benchOut, "out", "pathfinding_benchmark.csv", "output CSV path")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 0, "fixed random seed (0 = global source)")
}
