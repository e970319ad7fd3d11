package heuristic

import "taquin/puzzle"

// MinMoves scores a board by the sum of Manhattan distances between each
// tile and its target cell, plus the moves already made. The distance sum
// is a lower bound on the remaining moves, so the estimate is admissible
// and the search finds shortest solutions.
type MinMoves struct {
	targetRow [puzzle.Size * puzzle.Size]int
	targetCol [puzzle.Size * puzzle.Size]int
}

func NewMinMoves() *MinMoves {
	return &MinMoves{}
}

func (h *MinMoves) SetTargetState(target puzzle.Grid) {
	for i := 0; i < puzzle.Size; i++ {
		for j := 0; j < puzzle.Size; j++ {
			h.targetRow[target[i][j]] = i
			h.targetCol[target[i][j]] = j
		}
	}
}

func (h *MinMoves) Score(grid puzzle.Grid, movesSoFar int) int {
	distance := 0
	for i := 0; i < puzzle.Size; i++ {
		for j := 0; j < puzzle.Size; j++ {
			v := grid[i][j]
			if v == puzzle.Blank {
				continue
			}
			distance += abs(i-h.targetRow[v]) + abs(j-h.targetCol[v])
		}
	}
	return distance + movesSoFar
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
