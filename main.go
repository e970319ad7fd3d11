package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"taquin/experiments"
	"taquin/puzzle"
	"taquin/solver"
)

func main() {
	var (
		initial       = flag.Int("initial", 0, "compact initial state (9 digits, 0 is the blank)")
		final         = flag.Int("final", 123456780, "compact goal state")
		heuristicName = flag.String("heuristic", "minmoves", "heuristic: minmoves, missplaced, depthfirst, breadthfirst")
		maxLevel      = flag.Int("max-level", solver.Unlimited, "depth cutoff, -1 for unlimited")
		scramble      = flag.Int("scramble", 0, "ignore -initial and scramble the goal this many moves instead")
		seed          = flag.Uint64("seed", 1, "scrambler seed")
		experiment    = flag.String("experiment", "", "run the heuristic comparison from this YAML config instead of a single solve")
	)
	flag.Parse()

	if *experiment != "" {
		config, err := experiments.LoadConfig(*experiment)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment config")
		}
		if err := experiments.Run(config); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	start := *initial
	if *scramble > 0 {
		rng := rand.New(rand.NewSource(*seed))
		start = puzzle.Scramble(*final, *scramble, rng)
		log.Info().Msgf("scrambled %d moves from goal: %09d", *scramble, start)
	}
	if err := puzzle.Validate(start); err != nil {
		log.Fatal().Err(err).Msg("bad initial state")
	}
	if err := puzzle.Validate(*final); err != nil {
		log.Fatal().Err(err).Msg("bad goal state")
	}

	h, err := experiments.NewHeuristic(*heuristicName)
	if err != nil {
		log.Fatal().Err(err).Msg("bad heuristic")
	}

	s := solver.NewAStar(start, *final, h, *maxLevel)
	log.Info().Msgf("solving %09d -> %09d with %s", start, *final, *heuristicName)

	if !s.Solve() {
		log.Warn().Msgf("no solution found after developing %d states", s.NumberOfDevelopedStates())
		os.Exit(1)
	}

	solution := s.Solution()
	log.Info().Msgf("solved in %d moves, developed %d states", solution.Level, s.NumberOfDevelopedStates())
	printPath(solution)
}

// printPath walks the parent chain back to the root and prints the
// boards from initial state to goal.
func printPath(solution *solver.Node) {
	path := []*solver.Node{}
	for node := solution; node != nil; node = node.Parent {
		path = append(path, node)
	}

	for i := len(path) - 1; i >= 0; i-- {
		node := path[i]
		fmt.Printf("move %d (state %09d, score %d):\n%s\n\n",
			node.Level, node.State, node.Score, puzzle.Decode(node.State))
	}
}
