package puzzle

import (
	"fmt"
	"strings"
)

const Size = 3

// Blank marks the empty cell.
const Blank = 0

// Grid is a 3x3 taquin board. Values 0..8, 0 is the blank, each tile
// appears exactly once. Grids are plain value types: passing one around
// copies it, so callers never share mutable board state.
type Grid [Size][Size]int8

// Decode expands a compact state into a Grid. The compact form is a
// 9-digit base-10 integer, row-major, most significant digit first:
// digit i*3+j holds the value at row i, column j.
func Decode(state int) Grid {
	var g Grid
	for i := Size - 1; i >= 0; i-- {
		for j := Size - 1; j >= 0; j-- {
			g[i][j] = int8(state % 10)
			state = state / 10
		}
	}
	return g
}

// Encode packs a Grid back into its compact state. Inverse of Decode on
// valid boards.
func Encode(g Grid) int {
	state := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			state = state*10 + int(g[i][j])
		}
	}
	return state
}

// Validate reports whether a compact state is a well formed board:
// 9 base-10 digits, values 0..8, each exactly once.
func Validate(state int) error {
	if state < 0 || state > 999999999 {
		return fmt.Errorf("invalid puzzle state %d: not a 9-digit encoding", state)
	}
	var seen [10]int
	s := state
	for d := 0; d < Size*Size; d++ {
		seen[s%10]++
		s = s / 10
	}
	if seen[9] > 0 {
		return fmt.Errorf("invalid puzzle state %09d: digit 9 out of range", state)
	}
	for v := 0; v <= 8; v++ {
		if seen[v] != 1 {
			return fmt.Errorf("invalid puzzle state %09d: value %d appears %d times", state, v, seen[v])
		}
	}
	return nil
}

// BlankPosition returns the row and column of the blank cell.
func (g Grid) BlankPosition() (int, int) {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if g[i][j] == Blank {
				return i, j
			}
		}
	}
	panic("grid has no blank cell")
}

func (g Grid) String() string {
	var b strings.Builder
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			if g[i][j] == Blank {
				b.WriteByte('_')
			} else {
				fmt.Fprintf(&b, "%d", g[i][j])
			}
		}
		if i < Size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Solvable reports whether target is reachable from state by sliding
// moves. Two boards are mutually reachable iff their tile permutations
// have the same parity (for odd board widths the blank position does not
// matter).
func Solvable(state, target int) bool {
	return inversions(Decode(state))%2 == inversions(Decode(target))%2
}

func inversions(g Grid) int {
	var tiles []int8
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if g[i][j] != Blank {
				tiles = append(tiles, g[i][j])
			}
		}
	}
	count := 0
	for a := 0; a < len(tiles); a++ {
		for b := a + 1; b < len(tiles); b++ {
			if tiles[a] > tiles[b] {
				count++
			}
		}
	}
	return count
}
