// Package scenario carries the schema types and sentinel errors of the
// scenario loader.
package scenario

import (
	"errors"

	"github.com/katalvlaran/navgrid/grid"
)

// Sentinel errors for scenario validation.
var (
	// ErrMissingName indicates a scenario without a name.
	ErrMissingName = errors.New("scenario: name is required")
	// ErrBadDimensions indicates a non-positive grid size.
	ErrBadDimensions = errors.New("scenario: width and height must be positive")
	// ErrBadDensity indicates an obstacle density outside [0, 1).
	ErrBadDensity = errors.New("scenario: obstacle density must be in [0, 1)")
	// ErrNoPopulation indicates a scenario that spawns nothing.
	ErrNoPopulation = errors.New("scenario: tasks, lanes, or random count required")
)

// Task is one explicit start→goal assignment.
type Task struct {
	Start grid.Coord `yaml:"start"`
	Goal  grid.Coord `yaml:"goal"`
}

// Scenario is the YAML document root.
type Scenario struct {
	Name      string  `yaml:"name"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Topology  string  `yaml:"topology"`  // cardinal4 | cardinal8 | hex
	Avoidance string  `yaml:"avoidance"` // velocity-obstacle | stigmergy
	Seed      int64   `yaml:"seed"`
	Duration  float64 `yaml:"duration_s"`
	TickRate  float64 `yaml:"tick_rate_hz"`

	// Map content: explicit obstacle cells and/or a scatter density.
	Obstacles []grid.Coord `yaml:"obstacles"`
	Density   float64      `yaml:"obstacle_density"`

	// Population: any combination of the three.
	Tasks       []Task `yaml:"tasks"`
	Lanes       int    `yaml:"lanes"`
	RandomCount int    `yaml:"random_agents"`
}
