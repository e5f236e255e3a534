package scenario

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgrid/grid"
	"github.com/katalvlaran/navgrid/world"
)

const sample = `
name: corridor
width: 60
height: 36
topology: cardinal4
avoidance: velocity-obstacle
seed: 7
tasks:
  - start: {x: 1, y: 7}
    goal: {x: 58, y: 7}
obstacles:
  - {x: 5, y: 6}
`

// TestParse_Defaults fills duration, tick rate, and mode defaults.
func TestParse_Defaults(t *testing.T) {
	s, err := NewParser(nil).Parse([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, "corridor", s.Name)
	require.Equal(t, 15.0, s.Duration)
	require.Equal(t, 60.0, s.TickRate)
	require.Len(t, s.Tasks, 1)
	require.Equal(t, grid.C(58, 7), s.Tasks[0].Goal)
}

// TestParse_Substitution resolves a ${VAR} site from the parser variables
// and a $VAR site from the environment.
func TestParse_Substitution(t *testing.T) {
	doc := `
name: ${SCENARIO_NAME}
width: $GRID_W
height: 10
random_agents: 5
`
	t.Setenv("GRID_W", "40")
	p := NewParser(map[string]string{"SCENARIO_NAME": "sweep"})

	s, err := p.Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, "sweep", s.Name)
	require.Equal(t, 40, s.Width)
}

// TestParse_ValidationErrors pins the sentinel per failure.
func TestParse_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"MissingName", "width: 5\nheight: 5\nlanes: 1", ErrMissingName},
		{"BadDims", "name: x\nwidth: 0\nheight: 5\nlanes: 1", ErrBadDimensions},
		{"BadDensity", "name: x\nwidth: 5\nheight: 5\nlanes: 1\nobstacle_density: 1.5", ErrBadDensity},
		{"NoPopulation", "name: x\nwidth: 5\nheight: 5", ErrNoPopulation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParser(nil).Parse([]byte(tc.doc))
			require.True(t, errors.Is(err, tc.want), "error = %v; want %v", err, tc.want)
		})
	}
}

// TestBuild spawns the explicit task on the configured map.
func TestBuild(t *testing.T) {
	s, err := NewParser(nil).Parse([]byte(sample))
	require.NoError(t, err)

	w, err := s.Build()
	require.NoError(t, err)
	require.Equal(t, 1, w.AgentCount())
	require.Equal(t, world.VelocityObstacle, w.Mode())
	require.True(t, w.Grid().IsBlocked(5, 6))
}

// TestBuild_TaskFailure surfaces a blocked task endpoint.
func TestBuild_TaskFailure(t *testing.T) {
	doc := `
name: bad
width: 10
height: 10
tasks:
  - start: {x: 3, y: 3}
    goal: {x: 9, y: 9}
obstacles:
  - {x: 3, y: 3}
`
	s, err := NewParser(nil).Parse([]byte(doc))
	require.NoError(t, err)
	_, err = s.Build()
	require.Error(t, err)
}
