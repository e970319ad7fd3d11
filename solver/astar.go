package solver

import (
	"taquin/metrics"
	"taquin/puzzle"
	"taquin/solver/heuristic"
)

// Unlimited disables the depth cutoff.
const Unlimited = -1

type Option func(*AStar)

// WithMetrics makes the solver report search statistics to collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(s *AStar) {
		if collector != nil {
			s.collector = collector
		}
	}
}

// AStar finds a sequence of sliding moves from an initial board to a
// final board by best-first search. The heuristic orders the frontier;
// with an admissible heuristic such as MinMoves the first solution popped
// is a shortest one, with the degenerate orderings the search decays to
// plain depth- or breadth-first traversal.
//
// An AStar owns its heuristic and its frontier. One instance must not be
// shared across goroutines; concurrent searches need separate instances.
type AStar struct {
	initialState int
	finalState   int
	heuristic    heuristic.Heuristic
	maxLevel     int
	developed    int
	collector    metrics.Collector

	solution *Node
	opened   *openSet
	closed   map[int]struct{}
}

// NewAStar creates a solver for the path from initialState to finalState.
// maxLevel bounds the search depth; pass Unlimited for no cutoff. The
// heuristic's target is configured from finalState right away. Panics if
// either state is not a valid board encoding.
func NewAStar(initialState, finalState int, h heuristic.Heuristic, maxLevel int, options ...Option) *AStar {
	if err := puzzle.Validate(initialState); err != nil {
		panic(err)
	}
	if err := puzzle.Validate(finalState); err != nil {
		panic(err)
	}
	if h == nil {
		panic("heuristic must not be nil")
	}

	s := &AStar{
		initialState: initialState,
		finalState:   finalState,
		heuristic:    h,
		maxLevel:     maxLevel,
		collector:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	s.heuristic.SetTargetState(puzzle.Decode(s.finalState))
	return s
}

// Solve runs the search to completion and reports whether the final
// state was reached. The solution node, the frontier, and the visited set
// are retained for inspection afterwards. Solve is synchronous and owns
// the calling goroutine until it returns.
func (s *AStar) Solve() bool {
	s.developed = 0
	s.solution = nil
	s.opened = newOpenSet()
	s.closed = make(map[int]struct{})
	s.collector.Start(s.maxLevel)

	root := &Node{
		State: s.initialState,
		Score: s.heuristic.Score(puzzle.Decode(s.initialState), 0),
		Level: 0,
	}
	s.opened.push(root)

	for s.opened.len() > 0 {
		current := s.opened.pop()

		if current.State == s.finalState {
			s.solution = current
			s.collector.SetSolved(current.Level)
			return true
		}

		if _, seen := s.closed[current.State]; seen {
			// Stale duplicate of an already developed state
			continue
		}
		s.closed[current.State] = struct{}{}

		if s.maxLevel == Unlimited || current.Level < s.maxLevel {
			s.developed++
			s.collector.AddDeveloped()
			for _, child := range s.children(puzzle.Decode(current.State), current) {
				if _, seen := s.closed[child.State]; !seen {
					s.opened.push(child)
				}
			}
			s.collector.ObserveFrontier(s.opened.len())
		}
	}

	return false
}

// children enumerates the boards reachable from grid by sliding the
// blank up, down, left or right, in that order. Directions leading off
// the board are skipped. The grid parameter is a value, so candidates are
// built on copies and the caller's board is never touched.
func (s *AStar) children(grid puzzle.Grid, parent *Node) []*Node {
	zi, zj := grid.BlankPosition()
	children := make([]*Node, 0, 4)

	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		ni, nj := zi+d[0], zj+d[1]
		if ni < 0 || ni >= puzzle.Size || nj < 0 || nj >= puzzle.Size {
			continue
		}
		candidate := grid
		candidate[zi][zj], candidate[ni][nj] = candidate[ni][nj], candidate[zi][zj]
		children = append(children, &Node{
			State:  puzzle.Encode(candidate),
			Parent: parent,
			Score:  s.heuristic.Score(candidate, parent.Level+1),
			Level:  parent.Level + 1,
		})
	}
	return children
}

// Solution returns the goal node of the last successful Solve, or nil if
// no solve has succeeded. Walking its Parent chain yields the path back
// to the initial state.
func (s *AStar) Solution() *Node {
	return s.solution
}

// Opened returns the nodes still on the frontier after the last Solve.
func (s *AStar) Opened() []*Node {
	if s.opened == nil {
		return nil
	}
	return s.opened.nodes()
}

// Closed returns the compact states developed (or skipped at the cutoff)
// during the last Solve, in no particular order.
func (s *AStar) Closed() []int {
	if s.closed == nil {
		return nil
	}
	states := make([]int, 0, len(s.closed))
	for state := range s.closed {
		states = append(states, state)
	}
	return states
}

// NumberOfDevelopedStates returns how many nodes had their children
// generated during the last Solve. Nodes skipped as duplicates or held
// back by the depth cutoff do not count.
func (s *AStar) NumberOfDevelopedStates() int {
	return s.developed
}

func (s *AStar) SetMaxLevel(maxLevel int) {
	s.maxLevel = maxLevel
}

// SetHeuristic swaps the scoring heuristic and configures its target
// from the current final state.
func (s *AStar) SetHeuristic(h heuristic.Heuristic) {
	if h == nil {
		panic("heuristic must not be nil")
	}
	s.heuristic = h
	s.heuristic.SetTargetState(puzzle.Decode(s.finalState))
}

func (s *AStar) SetInitialState(initialState int) {
	if err := puzzle.Validate(initialState); err != nil {
		panic(err)
	}
	s.initialState = initialState
}

// SetFinalState changes the goal and reconfigures the heuristic's target.
func (s *AStar) SetFinalState(finalState int) {
	if err := puzzle.Validate(finalState); err != nil {
		panic(err)
	}
	s.finalState = finalState
	s.heuristic.SetTargetState(puzzle.Decode(s.finalState))
}
