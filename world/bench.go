package world

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/katalvlaran/navgrid/astar"
	"github.com/katalvlaran/navgrid/grid"
	"github.com/katalvlaran/navgrid/topo"
)

// FrameRecordDuration bounds a frame-benchmark recording.
const FrameRecordDuration = 15.0

// frameRecord is one sampled frame of a benchmark run.
type frameRecord struct {
	elapsed    float64
	fps        int
	agentCount int
}

// FrameRecorder samples per-frame throughput during a named scenario and
// appends the rows to a CSV on stop. Recording auto-stops after
// FrameRecordDuration seconds of observed time.
type FrameRecorder struct {
	path      string
	name      string
	recording bool
	start     float64
	frames    []frameRecord
}

// NewFrameRecorder writes to path ("benchmark_results.csv" in the
// original system). The file is created on first save and appended to
// afterwards.
func NewFrameRecorder(path string) *FrameRecorder {
	return &FrameRecorder{path: path}
}

// Start begins recording under the scenario name, discarding any
// unsaved frames.
func (r *FrameRecorder) Start(name string, elapsed float64) {
	r.name = name
	r.recording = true
	r.start = elapsed
	r.frames = r.frames[:0]
}

// Recording reports whether a run is active.
func (r *FrameRecorder) Recording() bool { return r.recording }

// Observe samples one frame. Once the observed window exceeds
// FrameRecordDuration the recorder saves and stops; the save error, if
// any, is returned from that final call.
func (r *FrameRecorder) Observe(elapsed float64, fps, agentCount int) error {
	if !r.recording {
		return nil
	}
	t := elapsed - r.start
	r.frames = append(r.frames, frameRecord{elapsed: t, fps: fps, agentCount: agentCount})
	if t > FrameRecordDuration {
		return r.Stop()
	}

	return nil
}

// Stop appends the buffered rows — `scenario_name, t_elapsed_s, fps,
// agent_count` — to the CSV and ends the run.
func (r *FrameRecorder) Stop() error {
	if !r.recording {
		return nil
	}
	r.recording = false

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("frame recorder: %w", err)
	}
	defer f.Close()

	for _, fr := range r.frames {
		if _, err := fmt.Fprintf(f, "%s, %.4f, %d, %d\n", r.name, fr.elapsed, fr.fps, fr.agentCount); err != nil {
			return fmt.Errorf("frame recorder: %w", err)
		}
	}

	return nil
}

// PathBenchmarkConfig parameterizes the planner micro-benchmark sweep.
// The zero value is not usable; start from DefaultPathBenchmarkConfig.
type PathBenchmarkConfig struct {
	Resolutions [][2]int
	Densities   []float64
	AgentCounts []int
	Repetitions int
	Rand        *rand.Rand
}

// DefaultPathBenchmarkConfig reproduces the original sweep.
func DefaultPathBenchmarkConfig() PathBenchmarkConfig {
	return PathBenchmarkConfig{
		Resolutions: [][2]int{{30, 18}, {60, 36}, {120, 72}},
		Densities:   []float64{0.1, 0.3, 0.5},
		AgentCounts: []int{10, 50, 100, 200, 500},
		Repetitions: 3,
	}
}

// RunPathBenchmark measures raw planner throughput over the configured
// sweep and writes `grid_width,grid_height,obstacle_density,num_agents,
// total_time_us,avg_time_per_agent_us` rows to path. Each measurement
// plans one random start/goal task per agent on a freshly scattered
// grid; timings average over the configured repetitions.
func RunPathBenchmark(kind topo.Kind, outPath string, cfg PathBenchmarkConfig) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("path benchmark: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f,
		"grid_width,grid_height,obstacle_density,num_agents,total_time_us,avg_time_per_agent_us"); err != nil {
		return fmt.Errorf("path benchmark: %w", err)
	}

	for _, res := range cfg.Resolutions {
		for _, density := range cfg.Densities {
			for _, agents := range cfg.AgentCounts {
				totalUs := 0.0
				for rep := 0; rep < cfg.Repetitions; rep++ {
					g, err := grid.New(res[0], res[1], grid.WithRand(cfg.Rand))
					if err != nil {
						return fmt.Errorf("path benchmark: %w", err)
					}
					g.Scatter(density)
					oracle, err := topo.NewOracle(kind, g)
					if err != nil {
						return fmt.Errorf("path benchmark: %w", err)
					}

					tasks := make([][2]grid.Coord, 0, agents)
					for i := 0; i < agents; i++ {
						start, okS := g.SamplePassable()
						goal, okG := g.SamplePassable()
						if okS && okG {
							tasks = append(tasks, [2]grid.Coord{start, goal})
						}
					}
					if len(tasks) == 0 {
						continue
					}

					began := time.Now()
					for _, task := range tasks {
						_, _ = astar.FindPath(oracle, task[0], task[1])
					}
					totalUs += float64(time.Since(began).Microseconds())
				}

				avgTotal := totalUs / float64(cfg.Repetitions)
				avgAgent := avgTotal / float64(agents)
				if _, err := fmt.Fprintf(f, "%d,%d,%.2f,%d,%.2f,%.2f\n",
					res[0], res[1], density, agents, avgTotal, avgAgent); err != nil {
					return fmt.Errorf("path benchmark: %w", err)
				}
			}
		}
	}

	return nil
}
