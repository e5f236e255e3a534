package scenario

import (
	"fmt"
	"math/rand"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/navgrid/grid"
	"github.com/katalvlaran/navgrid/topo"
	"github.com/katalvlaran/navgrid/world"
)

// varPattern matches ${VAR} and $VAR substitution sites.
var varPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// Parser parses scenario YAML with variable substitution. Variables win
// over the environment; unknown names are left verbatim.
type Parser struct {
	Variables map[string]string
}

// NewParser returns a parser with optional preset variables.
func NewParser(variables map[string]string) *Parser {
	if variables == nil {
		variables = make(map[string]string)
	}

	return &Parser{Variables: variables}
}

// ParseFile reads and parses one scenario file.
func (p *Parser) ParseFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return p.Parse(data)
}

// Parse substitutes variables, unmarshals, applies defaults, and
// validates.
func (p *Parser) Parse(data []byte) (*Scenario, error) {
	substituted := p.substitute(string(data))

	var s Scenario
	if err := yaml.Unmarshal([]byte(substituted), &s); err != nil {
		return nil, fmt.Errorf("scenario: parse YAML: %w", err)
	}

	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (p *Parser) substitute(content string) string {
	return varPattern.ReplaceAllStringFunc(content, func(match string) string {
		var name string
		if strings.HasPrefix(match, "${") {
			name = match[2 : len(match)-1]
		} else {
			name = match[1:]
		}

		if val, ok := p.Variables[name]; ok {
			return val
		}
		if val := os.Getenv(name); val != "" {
			return val
		}

		return match
	})
}

func (s *Scenario) applyDefaults() {
	if s.Topology == "" {
		s.Topology = topo.Cardinal4.String()
	}
	if s.Avoidance == "" {
		s.Avoidance = world.VelocityObstacle.String()
	}
	if s.Duration == 0 {
		s.Duration = 15
	}
	if s.TickRate == 0 {
		s.TickRate = 60
	}
}

// Validate checks the required fields and value ranges.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return ErrMissingName
	}
	if s.Width <= 0 || s.Height <= 0 {
		return ErrBadDimensions
	}
	if s.Density < 0 || s.Density >= 1 {
		return ErrBadDensity
	}
	if len(s.Tasks) == 0 && s.Lanes == 0 && s.RandomCount == 0 {
		return ErrNoPopulation
	}
	if _, err := topo.ParseKind(s.Topology); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if _, err := world.ParseAvoidanceMode(s.Avoidance); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	return nil
}

// Build constructs the configured world and spawns the population.
// Explicit tasks fail the build on planning errors; generated
// populations skip unreachable picks the way the spawners do.
func (s *Scenario) Build() (*world.World, error) {
	kind, err := topo.ParseKind(s.Topology)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	mode, err := world.ParseAvoidanceMode(s.Avoidance)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	opts := []world.Option{world.WithAvoidance(mode)}
	if s.Seed != 0 {
		opts = append(opts, world.WithRand(rand.New(rand.NewSource(s.Seed))))
	}

	w, err := world.New(s.Width, s.Height, kind, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	for _, c := range s.Obstacles {
		if err := w.SetCell(c.X, c.Y, grid.Blocked); err != nil {
			return nil, fmt.Errorf("scenario: obstacle (%d,%d): %w", c.X, c.Y, err)
		}
	}
	if s.Density > 0 {
		w.Grid().Scatter(s.Density)
	}

	for _, task := range s.Tasks {
		if _, err := w.Spawn(task.Start, task.Goal); err != nil {
			return nil, fmt.Errorf("scenario: task %v→%v: %w", task.Start, task.Goal, err)
		}
	}
	if s.Lanes > 0 {
		w.SpawnOpposingLanes(s.Lanes)
	}
	if s.RandomCount > 0 {
		w.SpawnRandomAgents(s.RandomCount)
	}

	return w, nil
}
