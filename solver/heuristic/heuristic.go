package heuristic

import "taquin/puzzle"

// Heuristic scores a board for the frontier ordering. Score returns the
// estimated total cost of a solution through grid after movesSoFar moves;
// lower scores are explored first. SetTargetState must be called before
// Score and implementations must be deterministic given
// (grid, movesSoFar, target).
type Heuristic interface {
	SetTargetState(target puzzle.Grid)
	Score(grid puzzle.Grid, movesSoFar int) int
}

// DepthFirst orders the frontier by decreasing depth, turning the search
// into a depth-first traversal. Only useful for tests.
type DepthFirst struct{}

func (DepthFirst) SetTargetState(puzzle.Grid) {}

func (DepthFirst) Score(_ puzzle.Grid, movesSoFar int) int {
	return -movesSoFar
}

// BreadthFirst orders the frontier by increasing depth, turning the
// search into a breadth-first traversal. Only useful for tests.
type BreadthFirst struct{}

func (BreadthFirst) SetTargetState(puzzle.Grid) {}

func (BreadthFirst) Score(_ puzzle.Grid, movesSoFar int) int {
	return movesSoFar
}
