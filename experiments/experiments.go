package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"taquin/metrics"
	"taquin/puzzle"
	"taquin/solver"
)

// Run compares heuristics over scrambled boards: for each scramble depth
// it draws initial states, solves each with every configured heuristic,
// and stores one run record per solve.
func Run(config Config) error {
	if err := puzzle.Validate(config.Goal); err != nil {
		return fmt.Errorf("invalid experiment goal: %w", err)
	}

	rng := rand.New(rand.NewSource(config.Seed))
	records := []metrics.RunRecord{}

	log.Info().Msgf("starting heuristic comparison with %d heuristics over depths %v...",
		len(config.Heuristics), config.Depths)

	for _, depth := range config.Depths {
		for i := 0; i < config.Scrambles; i++ {
			initial := puzzle.Scramble(config.Goal, depth, rng)

			for _, name := range config.Heuristics {
				h, err := NewHeuristic(name)
				if err != nil {
					return err
				}

				collector := metrics.NewCollector()
				s := solver.NewAStar(initial, config.Goal, h, config.MaxLevel,
					solver.WithMetrics(collector))
				solved := s.Solve()
				metric := collector.Complete()

				records = append(records, metrics.RunRecord{
					Scramble:     depth,
					Heuristic:    name,
					InitialState: initial,
					SearchMetric: metric,
				})

				log.Info().Msgf("solved=%t initial=%09d depth=%d heuristic=%s developed=%d in %s",
					solved, initial, depth, name, metric.DevelopedStates, metric.Duration)
			}
		}
		log.Info().Msgf("completed scramble depth %d", depth)
	}

	writer, err := metrics.NewWriter(config.ResultsDir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteRunRecords(records); err != nil {
		return fmt.Errorf("failed to store run records: %w", err)
	}
	log.Info().Msgf("stored %d run records in %s", len(records), writer.BaseDir())

	return nil
}
