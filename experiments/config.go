package experiments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"taquin/solver"
	"taquin/solver/heuristic"
)

// Config describes one heuristic comparison experiment.
type Config struct {
	Goal       int      `yaml:"goal"`       // Compact goal state
	Scrambles  int      `yaml:"scrambles"`  // Initial states per scramble depth
	Depths     []int    `yaml:"depths"`     // Scramble depths to sample
	MaxLevel   int      `yaml:"maxLevel"`   // Depth cutoff, -1 for unlimited
	Heuristics []string `yaml:"heuristics"` // Heuristic names, see NewHeuristic
	Seed       uint64   `yaml:"seed"`       // Scrambler seed, for reproducible runs
	ResultsDir string   `yaml:"resultsDir"` // Where run records land
}

func DefaultConfig() Config {
	return Config{
		Goal:       123456780,
		Scrambles:  10,
		Depths:     []int{5, 10, 15, 20},
		MaxLevel:   solver.Unlimited,
		Heuristics: []string{"minmoves", "missplaced"},
		Seed:       1,
		ResultsDir: "results",
	}
}

// LoadConfig reads a YAML experiment config, filling unset fields from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config: %w", err)
	}

	if config.Scrambles <= 0 {
		return Config{}, fmt.Errorf("invalid experiment config: scrambles must be positive, got %d", config.Scrambles)
	}
	if len(config.Depths) == 0 {
		return Config{}, fmt.Errorf("invalid experiment config: at least one scramble depth required")
	}
	if len(config.Heuristics) == 0 {
		return Config{}, fmt.Errorf("invalid experiment config: at least one heuristic required")
	}
	return config, nil
}

// NewHeuristic maps a config name to a heuristic instance.
func NewHeuristic(name string) (heuristic.Heuristic, error) {
	switch name {
	case "minmoves":
		return heuristic.NewMinMoves(), nil
	case "missplaced":
		return heuristic.NewMissPlaced(), nil
	case "depthfirst":
		return heuristic.DepthFirst{}, nil
	case "breadthfirst":
		return heuristic.BreadthFirst{}, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}
