package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgrid/scenario"
	"github.com/katalvlaran/navgrid/world"
)

var (
	recordPath string
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Run a scenario headlessly at a fixed timestep",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		s, err := scenario.NewParser(nil).ParseFile(args[0])
		if err != nil {
			return err
		}
		w, err := s.Build()
		if err != nil {
			return err
		}

		logger.Info().
			Str("scenario", s.Name).
			Int("agents", w.AgentCount()).
			Str("topology", s.Topology).
			Str("avoidance", s.Avoidance).
			Msg("scenario loaded")

		var recorder *world.FrameRecorder
		if recordPath != "" {
			recorder = world.NewFrameRecorder(recordPath)
			recorder.Start(s.Name, w.Elapsed())
		}

		dt := 1.0 / s.TickRate
		wallStart := time.Now()
		ticks := 0
		for w.Elapsed() < s.Duration {
			tickStart := time.Now()
			w.Tick(dt)
			ticks++

			if recorder != nil {
				fps := int(1.0 / max(time.Since(tickStart).Seconds(), 1e-6))
				if err := recorder.Observe(w.Elapsed(), fps, w.AgentCount()); err != nil {
					return err
				}
			}
		}
		if recorder != nil {
			if err := recorder.Stop(); err != nil {
				return err
			}
		}

		finished := 0
		for _, st := range w.Snapshot().Agents {
			if st.Finished {
				finished++
			}
		}
		logger.Info().
			Int("ticks", ticks).
			Dur("wall", time.Since(wallStart)).
			Int("finished", finished).
			Int("agents", w.AgentCount()).
			Msg("scenario complete")
		if finished < w.AgentCount() {
			logger.Warn().
				Int("travelling", w.AgentCount()-finished).
				Msg("agents still travelling at cutoff")
		}

		fmt.Printf("%s: %d/%d agents finished in %.1fs simulated\n",
			s.Name, finished, w.AgentCount(), w.Elapsed())

		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&recordPath, "record", "", "append per-frame rows to this CSV (benchmark_results.csv format)")
}
