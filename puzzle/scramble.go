package puzzle

import "golang.org/x/exp/rand"

// Scramble random-walks the blank for moves steps starting from goal and
// returns the resulting compact state. Every scrambled state is reachable
// from goal by construction. The walk never undoes its previous step, so
// short scrambles do not collapse back onto the goal immediately.
func Scramble(goal int, moves int, rng *rand.Rand) int {
	g := Decode(goal)
	zi, zj := g.BlankPosition()
	pi, pj := -1, -1 // previous blank position

	for m := 0; m < moves; m++ {
		var candidates [][2]int
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			ni, nj := zi+d[0], zj+d[1]
			if ni < 0 || ni >= Size || nj < 0 || nj >= Size {
				continue
			}
			if ni == pi && nj == pj {
				continue
			}
			candidates = append(candidates, [2]int{ni, nj})
		}
		next := candidates[rng.Intn(len(candidates))]
		g[zi][zj], g[next[0]][next[1]] = g[next[0]][next[1]], g[zi][zj]
		pi, pj = zi, zj
		zi, zj = next[0], next[1]
	}
	return Encode(g)
}
