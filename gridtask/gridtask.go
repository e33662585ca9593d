// Package gridtask adapts a rectangular grid into a task.Task[State]:
// states are cell coordinates, operators are the four orthogonal moves,
// and a cell's own value is the cost of moving onto it (0 or a
// LandThreshold-blocked cell is impassable). gridgraph is retained not
// as the movement substrate — its purpose is connected-component
// analysis of a static grid, a different problem — but as the
// connectivity pre-flight fixtures use to build deliberately solvable
// or unsolvable mazes (see Reachable).
package gridtask

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ibex/eval"
	"github.com/katalvlaran/ibex/gridgraph"
	"github.com/katalvlaran/ibex/task"
)

// Sentinel errors for gridtask construction.
var (
	// ErrEmptyGrid indicates the grid has no rows or columns.
	ErrEmptyGrid = errors.New("gridtask: grid is empty")

	// ErrOutOfBounds indicates start or goal falls outside the grid.
	ErrOutOfBounds = errors.New("gridtask: start or goal out of bounds")

	// ErrBlocked indicates start or goal is a blocked (impassable) cell.
	ErrBlocked = errors.New("gridtask: start or goal cell is blocked")
)

// State is a cell coordinate. It is comparable, so it can be used
// directly as a search.IDAStar/IBEX state type and as an on-path
// duplicate-check key.
type State struct {
	X, Y int
}

// The four orthogonal moves. OpID values are
// "U", "D", "L", "R" so a Plan is directly human-readable.
const (
	opUp    task.OpID = "U"
	opDown  task.OpID = "D"
	opLeft  task.OpID = "L"
	opRight task.OpID = "R"
)

var moves = []struct {
	op   task.OpID
	dx   int
	dy   int
}{
	{opUp, 0, -1},
	{opRight, 1, 0},
	{opDown, 0, 1},
	{opLeft, -1, 0},
}

// Task moves a point from start to goal on a grid where every cell
// carries a non-negative value; a cell below blocked is impassable and
// a cell at or above blocked costs its own value to enter.
type Task struct {
	grid    [][]int
	blocked int
	width   int
	height  int
	start   State
	goal    State
}

// New builds a Task over grid (grid[y][x]), where a cell is passable iff
// its value >= blocked. start and goal must be in-bounds, passable
// cells; reachability between them is not checked here (see Reachable).
func New(grid [][]int, blocked int, start, goal State) (*Task, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height, width := len(grid), len(grid[0])
	t := &Task{grid: grid, blocked: blocked, width: width, height: height, start: start, goal: goal}

	if !t.inBounds(start) || !t.inBounds(goal) {
		return nil, ErrOutOfBounds
	}
	if !t.passable(start) || !t.passable(goal) {
		return nil, ErrBlocked
	}

	return t, nil
}

func (t *Task) inBounds(s State) bool {
	return s.X >= 0 && s.X < t.width && s.Y >= 0 && s.Y < t.height
}

func (t *Task) passable(s State) bool {
	return t.grid[s.Y][s.X] >= t.blocked
}

// InitialState returns the start coordinate.
func (t *Task) InitialState() State { return t.start }

// IsGoal reports whether state is the goal coordinate.
func (t *Task) IsGoal(state State) bool { return state == t.goal }

// ApplicableOps returns the passable orthogonal moves from state, in a
// fixed Up/Right/Down/Left order.
func (t *Task) ApplicableOps(state State) []task.OpID {
	ops := make([]task.OpID, 0, len(moves))
	for _, m := range moves {
		next := State{X: state.X + m.dx, Y: state.Y + m.dy}
		if t.inBounds(next) && t.passable(next) {
			ops = append(ops, m.op)
		}
	}

	return ops
}

// Apply moves state by the operator's delta.
func (t *Task) Apply(state State, op task.OpID) State {
	for _, m := range moves {
		if m.op == op {
			return State{X: state.X + m.dx, Y: state.Y + m.dy}
		}
	}

	return state
}

// Cost is the value of the cell being entered.
func (t *Task) Cost(state State, op task.OpID) int64 {
	next := t.Apply(state, op)

	return int64(t.grid[next.Y][next.X])
}

// Manhattan is an admissible heuristic for gridtask: it never
// overestimates the remaining cost when every passable cell's value is
// >= 1, since each move covers at least one grid step at cost >= 1.
type Manhattan struct {
	Goal State
}

// H returns the Manhattan distance from state to h.Goal.
func (h Manhattan) H(state State) eval.Value {
	dx := state.X - h.Goal.X
	if dx < 0 {
		dx = -dx
	}
	dy := state.Y - h.Goal.Y
	if dy < 0 {
		dy = -dy
	}

	return eval.FromInt64(int64(dx + dy))
}

// Reachable reports whether goal is reachable from start on grid, using
// gridgraph.ConnectedComponents' flood fill instead of re-implementing
// component analysis. Fixtures call this to construct deliberately
// solvable or unsolvable mazes (spec.md §8 scenario 4).
func Reachable(grid [][]int, blocked int, start, goal State) (bool, error) {
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{LandThreshold: blocked, Conn: gridgraph.Conn4})
	if err != nil {
		return false, fmt.Errorf("gridtask: %w", err)
	}

	comps := gg.ConnectedComponents()
	startIdx, goalIdx := start.Y*len(grid[0])+start.X, goal.Y*len(grid[0])+goal.X
	var startComp, goalComp = -1, -1
	for ci, comp := range comps {
		for _, idx := range comp {
			if idx == startIdx {
				startComp = ci
			}
			if idx == goalIdx {
				goalComp = ci
			}
		}
	}

	return startComp >= 0 && startComp == goalComp, nil
}

// ErrAlreadyReachable indicates start and goal are already in the same
// connected component, so there is nothing to connect.
var ErrAlreadyReachable = errors.New("gridtask: start and goal are already reachable")

// MinConversionsToConnect reports the minimum number of blocked cells
// that must be converted to passable to connect start's and goal's
// components, using gridgraph.ExpandIsland's 0-1 BFS island-bridging
// search. A fixture generating an unsolvable maze (Reachable == false)
// can call this to report how close the maze is to solvable, instead of
// only reporting the binary solvable/unsolvable verdict.
func MinConversionsToConnect(grid [][]int, blocked int, start, goal State) (cost int, err error) {
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{LandThreshold: blocked, Conn: gridgraph.Conn4})
	if err != nil {
		return 0, fmt.Errorf("gridtask: %w", err)
	}

	comps := gg.ConnectedComponents()
	width := len(grid[0])
	startIdx, goalIdx := start.Y*width+start.X, goal.Y*width+goal.X
	startComp, goalComp := -1, -1
	for ci, comp := range comps {
		for _, idx := range comp {
			if idx == startIdx {
				startComp = ci
			}
			if idx == goalIdx {
				goalComp = ci
			}
		}
	}
	if startComp < 0 || goalComp < 0 {
		return 0, ErrOutOfBounds
	}
	if startComp == goalComp {
		return 0, ErrAlreadyReachable
	}

	_, cost, err = gg.ExpandIsland(startComp, goalComp)
	if err != nil {
		return 0, fmt.Errorf("gridtask: %w", err)
	}

	return cost, nil
}
