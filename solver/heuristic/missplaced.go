package heuristic

import "taquin/puzzle"

// MissPlaced scores a board by the count of non-blank tiles that are not
// on their target cell, plus the moves already made.
type MissPlaced struct {
	target puzzle.Grid
}

func NewMissPlaced() *MissPlaced {
	return &MissPlaced{}
}

func (h *MissPlaced) SetTargetState(target puzzle.Grid) {
	h.target = target
}

func (h *MissPlaced) Score(grid puzzle.Grid, movesSoFar int) int {
	misplaced := 0
	for i := 0; i < puzzle.Size; i++ {
		for j := 0; j < puzzle.Size; j++ {
			if grid[i][j] != puzzle.Blank && grid[i][j] != h.target[i][j] {
				misplaced++
			}
		}
	}
	return misplaced + movesSoFar
}
