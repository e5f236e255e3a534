package agent_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgrid/agent"
	"github.com/katalvlaran/navgrid/geom"
)

// recorder captures fan-out for assertions.
type recorder struct {
	events []agent.Event
	ids    []int
}

func (r *recorder) OnNotify(id int, ev agent.Event) {
	r.ids = append(r.ids, id)
	r.events = append(r.events, ev)
}

func line(n int) []geom.Vec {
	path := make([]geom.Vec, n)
	for i := range path {
		path[i] = geom.V(float64(i)*20+10, 10)
	}

	return path
}

// TestWaypointAdvance walks an agent down its path by teleporting it to
// each waypoint and ticking; the final waypoint must flip Finished and
// emit exactly one Finished event.
func TestWaypointAdvance(t *testing.T) {
	rec := &recorder{}
	a := agent.New(1, line(3), agent.Config{})
	a.AddListener(rec)

	require.Equal(t, 0, a.Waypoint())
	a.Tick(0.016) // on the first vertex already
	require.Equal(t, 1, a.Waypoint())
	require.False(t, a.Finished())

	a.SetPosition(geom.V(30, 10))
	a.Tick(0.016)
	require.Equal(t, 2, a.Waypoint())

	a.SetPosition(geom.V(50, 10))
	a.Tick(0.016)
	require.True(t, a.Finished())
	require.Equal(t, geom.Vec{}, a.Velocity())
	require.Equal(t, []agent.Event{{Kind: agent.EventFinished}}, rec.events)

	_, ok := a.DesiredTarget()
	require.False(t, ok, "finished agents want no target")
}

// TestWaypointTolerance advances only inside the 10 px arrival radius.
func TestWaypointTolerance(t *testing.T) {
	a := agent.New(1, line(3), agent.Config{})
	a.Tick(0.016)
	require.Equal(t, 1, a.Waypoint())

	a.SetPosition(geom.V(30-agent.WaypointTolerance, 10)) // exactly on the rim
	a.Tick(0.016)
	require.Equal(t, 1, a.Waypoint(), "rim distance must not count as arrival")

	a.SetPosition(geom.V(30-agent.WaypointTolerance+0.5, 10))
	a.Tick(0.016)
	require.Equal(t, 2, a.Waypoint())
}

// TestFuelDepletion emits OutOfFuel exactly once, then freezes.
func TestFuelDepletion(t *testing.T) {
	rec := &recorder{}
	a := agent.New(7, line(5), agent.Config{Fuel: 1})
	a.AddListener(rec)

	a.ConsumeFuel(1) // drained by a committed move
	a.SetVelocity(geom.V(100, 0))

	a.Tick(0.016)
	a.Tick(0.016)
	a.Tick(0.016)

	var outs int
	for _, ev := range rec.events {
		if ev.Kind == agent.EventOutOfFuel {
			outs++
		}
	}
	require.Equal(t, 1, outs, "OutOfFuel must fire exactly once")
	require.Equal(t, geom.Vec{}, a.Velocity(), "depleted agents freeze")
	require.Equal(t, agent.Gray, a.Color())

	_, ok := a.DesiredTarget()
	require.False(t, ok)
}

// TestFuelRoundTrip checks consume/restore symmetry.
func TestFuelRoundTrip(t *testing.T) {
	a := agent.New(2, line(2), agent.Config{Fuel: 500})
	a.ConsumeFuel(1)
	a.RestoreFuel(1)
	require.Equal(t, 500.0, a.Fuel())
}

// TestListenerOrderAndDuplicates delivers in registration order, once
// per registration.
func TestListenerOrderAndDuplicates(t *testing.T) {
	var order []string
	first := agent.ListenerFunc(func(int, agent.Event) { order = append(order, "first") })
	second := agent.ListenerFunc(func(int, agent.Event) { order = append(order, "second") })

	a := agent.New(3, line(2), agent.Config{})
	a.AddListener(first)
	a.AddListener(second)
	a.AddListener(first)

	a.Receive(agent.Event{Kind: agent.EventProximityAlert, OtherID: 9})
	require.Equal(t, []string{"first", "second", "first"}, order)
}

// TestSingleCellPath finishes on the first tick.
func TestSingleCellPath(t *testing.T) {
	a := agent.New(4, line(1), agent.Config{})
	a.Tick(0.016)
	require.True(t, a.Finished())
}
