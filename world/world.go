package world

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/navgrid/agent"
	"github.com/katalvlaran/navgrid/astar"
	"github.com/katalvlaran/navgrid/avoid"
	"github.com/katalvlaran/navgrid/geom"
	"github.com/katalvlaran/navgrid/grid"
	"github.com/katalvlaran/navgrid/topo"
)

// World owns the map, the path cache, the agent population, and the
// command log for the lifetime of a run. All methods are meant for a
// single goroutine; the cache and field carry their own locks for the
// shared-read cases.
type World struct {
	grid     *grid.Grid
	kind     topo.Kind
	oracle   topo.Oracle
	cache    *astar.Cache
	mode     AvoidanceMode
	field    *avoid.Field // nil in velocity-obstacle worlds
	avoidOpt avoid.Options
	agentCfg agent.Config

	agents []agent.Component // iteration order = spawn order
	byID   map[int]agent.Component
	nextID int

	bus      *agent.Bus
	commands *CommandLog
	rng      *rand.Rand
	log      zerolog.Logger
	elapsed  float64
}

// New constructs a world of the given dimensions and topology.
func New(width, height int, kind topo.Kind, opts ...Option) (*World, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := grid.New(width, height, grid.WithRand(cfg.Rand))
	if err != nil {
		return nil, err
	}
	oracle, err := topo.NewOracle(kind, g)
	if err != nil {
		return nil, err
	}

	w := &World{
		grid:     g,
		kind:     kind,
		oracle:   oracle,
		cache:    astar.NewCache(),
		mode:     cfg.Mode,
		avoidOpt: cfg.Avoid,
		agentCfg: cfg.AgentCfg,
		byID:     make(map[int]agent.Component),
		bus:      agent.NewBus(),
		commands: NewCommandLog(),
		rng:      cfg.Rand,
		log:      cfg.Logger,
	}
	if cfg.Mode == Stigmergy {
		if w.field, err = avoid.NewField(width, height, cfg.Field); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// Grid exposes the tile store. Mutate it only through SetCell so the
// path cache stays coherent.
func (w *World) Grid() *grid.Grid { return w.grid }

// Topology returns the active topology tag.
func (w *World) Topology() topo.Kind { return w.kind }

// Mode returns the avoidance mode fixed at construction.
func (w *World) Mode() AvoidanceMode { return w.mode }

// Field returns the pheromone field, nil in velocity-obstacle worlds.
func (w *World) Field() *avoid.Field { return w.field }

// Cache exposes the path cache, mainly for tests and diagnostics.
func (w *World) Cache() *astar.Cache { return w.cache }

// AgentCount reports the live population.
func (w *World) AgentCount() int { return len(w.agents) }

// Agent looks up a live agent's outermost component by id.
func (w *World) Agent(id int) (agent.Component, bool) {
	comp, ok := w.byID[id]

	return comp, ok
}

// Elapsed reports the accumulated simulated time.
func (w *World) Elapsed() float64 { return w.elapsed }

// SetCell writes one map cell and invalidates the path cache.
func (w *World) SetCell(x, y int, c grid.Cell) error {
	if err := w.grid.Set(x, y, c); err != nil {
		return err
	}
	w.cache.Clear()

	return nil
}

// SetTopology swaps the neighborhood oracle. The path cache empties and
// so does the pheromone field: its cell meanings change with the tiling.
func (w *World) SetTopology(kind topo.Kind) error {
	oracle, err := topo.NewOracle(kind, w.grid)
	if err != nil {
		return err
	}
	w.kind, w.oracle = kind, oracle
	w.cache.Clear()
	if w.field != nil {
		w.field.Clear()
	}
	w.log.Debug().Str("topology", kind.String()).Msg("topology switched")

	return nil
}

// Subscribe registers a listener for every event of every agent,
// current and future.
func (w *World) Subscribe(l agent.Listener) { w.bus.Subscribe(l) }

// Spawn plans start→goal and creates an agent with the world's default
// agent configuration and the canonical behavior stack. Returns the new
// agent id, or the planning error (astar.ErrNoPath,
// astar.ErrInvalidEndpoint) when no path exists.
func (w *World) Spawn(start, goal grid.Coord) (int, error) {
	return w.SpawnAgent(start, goal, w.agentCfg, DefaultStack(w.mode))
}

// SpawnAgent is Spawn with an explicit agent configuration and stack
// specification. Ids are monotonic and never reused, even across Clear.
func (w *World) SpawnAgent(start, goal grid.Coord, cfg agent.Config, stack StackSpec) (int, error) {
	cells, err := w.cache.GetOrCompute(start, goal, func() (astar.Path, error) {
		return astar.FindPath(w.oracle, start, goal)
	})
	if err != nil {
		return 0, err
	}

	id := w.nextID
	base := agent.New(id, topo.ProjectPath(w.kind, cells), cfg)
	base.AddListener(w.bus)

	comp, err := w.wrap(base, stack)
	if err != nil {
		return 0, err
	}

	w.nextID++
	w.agents = append(w.agents, comp)
	w.byID[id] = comp
	w.log.Debug().Int("id", id).
		Int("path_cells", len(cells)).
		Msg("agent spawned")

	return id, nil
}

// wrap composes the behavior stack around the base component; the
// StackSpec lists layers outermost-first.
func (w *World) wrap(base agent.Component, stack StackSpec) (agent.Component, error) {
	comp := base
	for i := len(stack) - 1; i >= 0; i-- {
		layer := stack[i]
		switch layer.Kind {
		case LayerVisualAlert:
			comp = agent.NewVisualAlert(comp)
		case LayerSpeedModulator:
			mult := layer.BaseMult
			if mult == 0 {
				mult = 2.0
			}
			comp = agent.NewSpeedModulator(comp, mult, w.rng)
		case LayerTargetJitter:
			comp = agent.NewTargetJitter(comp, w.rng)
		case LayerStigmergyGate:
			if w.field == nil {
				return nil, ErrLayerUnavailable
			}
			comp = agent.NewStigmergyGate(comp, w.field, w.kind)
		default:
			return nil, ErrUnknownLayer
		}
	}

	return comp, nil
}

// Remove drops an agent. The id becomes a tombstone: commands that still
// reference it turn stale and are skipped, never retargeted.
func (w *World) Remove(id int) bool {
	if _, ok := w.byID[id]; !ok {
		return false
	}
	delete(w.byID, id)
	for i, comp := range w.agents {
		if comp.ID() == id {
			w.agents = append(w.agents[:i], w.agents[i+1:]...)
			break
		}
	}

	return true
}

// Clear removes every agent and empties the command log and the
// pheromone field. The id counter keeps counting: ids are never reused
// within a run.
func (w *World) Clear() {
	w.agents = nil
	w.byID = make(map[int]agent.Component)
	w.commands.Clear()
	if w.field != nil {
		w.field.Clear()
	}
}

// Undo reverts the most recent committed move of the latest tick,
// restoring position and fuel. At most one command per invocation.
func (w *World) Undo() bool { return w.commands.Undo(w.byID) }

// Tick advances the world by dt seconds of simulated time. See the
// package doc for the fixed phase order.
func (w *World) Tick(dt float64) {
	w.elapsed += dt

	// Undo reaches back only into the latest tick.
	w.commands.Clear()

	// 1) Evaporate the shared field before anyone deposits this tick.
	if w.field != nil {
		w.field.Decay(dt)
	}

	// 2) Advance every agent's internal state, outermost layer first.
	for _, comp := range w.agents {
		comp.Tick(dt)
	}

	// 3) Snapshot the population for the avoidance pass: all reads
	//    complete before any write of the same tick.
	bodies := make([]avoid.Body, len(w.agents))
	willing := make([]bool, len(w.agents))
	for i, comp := range w.agents {
		pref := geom.Vec{}
		if target, ok := comp.DesiredTarget(); ok && !comp.Finished() {
			pref = avoid.PreferredVelocity(comp.Position(), target, comp.MaxSpeed())
			willing[i] = true
		}
		bodies[i] = avoid.Body{
			ID:       comp.ID(),
			Pos:      comp.Position(),
			Vel:      comp.Velocity(),
			Radius:   comp.PhysicalRadius(),
			MaxSpeed: comp.MaxSpeed(),
			Pref:     pref,
		}
	}

	// 4) Velocity selection and command submission, in iteration order.
	now := time.Now()
	for i, comp := range w.agents {
		if comp.Finished() {
			comp.SetVelocity(geom.Vec{})

			continue
		}
		if !willing[i] {
			// Depleted, or refused by the stigmergy gate this tick.
			comp.SetVelocity(geom.Vec{})

			continue
		}

		velocity := bodies[i].Pref
		if w.mode == VelocityObstacle {
			velocity = avoid.SafeVelocity(bodies[i], bodies, w.avoidOpt)
		}
		comp.SetVelocity(velocity)

		pos := comp.Position()
		w.commands.Submit(MoveCommand{
			AgentID:   comp.ID(),
			Before:    pos,
			After:     pos.Add(velocity.Scale(dt)),
			Quantum:   FuelQuantum,
			Timestamp: now,
		})
	}

	// 5) Apply all writes.
	w.commands.Flush(w.byID)

	// 6) Contact events on the committed positions. Finished agents are
	//    silent: they emit and receive nothing further.
	for i := 0; i < len(w.agents); i++ {
		for j := i + 1; j < len(w.agents); j++ {
			a, b := w.agents[i], w.agents[j]
			d := a.Position().Dist(b.Position())
			switch {
			case d < a.PhysicalRadius()+b.PhysicalRadius():
				w.deliver(a, agent.Event{Kind: agent.EventCollisionHit, OtherID: b.ID()})
				w.deliver(b, agent.Event{Kind: agent.EventCollisionHit, OtherID: a.ID()})
			case d < a.DetectionRadius()+b.DetectionRadius():
				w.deliver(a, agent.Event{Kind: agent.EventProximityAlert, OtherID: b.ID()})
				w.deliver(b, agent.Event{Kind: agent.EventProximityAlert, OtherID: a.ID()})
			}
		}
	}
}

func (w *World) deliver(comp agent.Component, ev agent.Event) {
	if comp.Finished() {
		return
	}
	comp.Receive(ev)
}

// Snapshot captures the render-facing state: agent poses, the obstacle
// bitmap, and the pheromone grid when present.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Elapsed:   w.elapsed,
		Agents:    make([]AgentState, len(w.agents)),
		Obstacles: w.grid.Bitmap(),
	}
	for i, comp := range w.agents {
		s.Agents[i] = AgentState{
			ID:              comp.ID(),
			Pos:             comp.Position(),
			Color:           comp.Color(),
			PhysicalRadius:  comp.PhysicalRadius(),
			DetectionRadius: comp.DetectionRadius(),
			Finished:        comp.Finished(),
		}
	}
	if w.field != nil {
		s.Pheromones = w.field.Snapshot()
	}

	return s
}
