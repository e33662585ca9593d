// Package tsptask reframes the Hamiltonian-circuit problem as a
// classical-planning task: a state is (current city, visited-set), an
// operator is "travel to city X", and the goal is a state that has
// visited every city and returned to the start. Its lower bound is a
// degree-relaxation (MST) bound supplied as an admissible Evaluator
// rather than a search-internal pruning rule (see heuristics.DegreeRelaxation).
package tsptask

import (
	"errors"

	"github.com/katalvlaran/ibex/core"
	"github.com/katalvlaran/ibex/task"
)

// Sentinel errors for tsptask construction.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed to New.
	ErrGraphNil = errors.New("tsptask: graph is nil")

	// ErrEmptyGraph indicates the graph has no vertices.
	ErrEmptyGraph = errors.New("tsptask: graph has no cities")

	// ErrTooManyCities indicates the graph has more than 63 cities.
	ErrTooManyCities = errors.New("tsptask: at most 63 cities are supported")
)

// State is (current city, bitmask of visited city indices). It is
// comparable, so path_checking can key on it directly if a caller
// enables it (tours never need to, since the bitmask already forbids
// revisiting a city).
type State struct {
	Current string
	Visited uint64
}

// Task is a Hamiltonian-circuit planning task over a complete weighted
// graph: cities is a fixed, deterministic ordering of g.Vertices(), and
// cities[0] is both the tour's start and its required return point.
type Task struct {
	g          *core.Graph
	cities     []string
	index      map[string]int
	allVisited uint64
}

// New builds a Task over g's vertices, treating g as a complete weighted
// graph (every pair of distinct cities must share an edge).
func New(g *core.Graph) (*Task, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cities := g.Vertices()
	if len(cities) == 0 {
		return nil, ErrEmptyGraph
	}
	if len(cities) > 63 {
		return nil, ErrTooManyCities
	}

	index := make(map[string]int, len(cities))
	for i, c := range cities {
		index[c] = i
	}

	return &Task{g: g, cities: cities, index: index, allVisited: (uint64(1) << uint(len(cities))) - 1}, nil
}

// InitialState starts the tour at cities[0], with only that city visited.
func (t *Task) InitialState() State {
	return State{Current: t.cities[0], Visited: 1}
}

// IsGoal reports whether every city has been visited and the tour has
// returned to its start.
func (t *Task) IsGoal(s State) bool {
	return s.Visited == t.allVisited && s.Current == t.cities[0]
}

// ApplicableOps returns, in the fixed city order, moves to every
// unvisited city; once all cities are visited, the single move back to
// the start (closing the cycle), or none if already there.
func (t *Task) ApplicableOps(s State) []task.OpID {
	if s.Visited == t.allVisited {
		if s.Current != t.cities[0] {
			return []task.OpID{task.OpID(t.cities[0])}
		}

		return nil
	}

	ops := make([]task.OpID, 0, len(t.cities))
	for _, c := range t.cities {
		if s.Visited&(uint64(1)<<uint(t.index[c])) == 0 {
			ops = append(ops, task.OpID(c))
		}
	}

	return ops
}

// Apply moves to the city named by op, marking it visited.
func (t *Task) Apply(s State, op task.OpID) State {
	dest := string(op)

	return State{Current: dest, Visited: s.Visited | (uint64(1) << uint(t.index[dest]))}
}

// Cost is the weight of the edge from s.Current to op's destination city.
func (t *Task) Cost(s State, op task.OpID) int64 {
	w, err := edgeWeight(t.g, s.Current, string(op))
	if err != nil {
		return 0
	}

	return w
}

// Remaining projects a state onto the set of cities not yet locked into
// the tour, plus the current city as the anchor a spanning tree must
// connect through — the input heuristics.DegreeRelaxation needs.
func (t *Task) Remaining(s State) []string {
	ids := make([]string, 0, len(t.cities)-bitsSet(s.Visited)+1)
	ids = append(ids, s.Current)
	for _, c := range t.cities {
		if s.Visited&(uint64(1)<<uint(t.index[c])) == 0 {
			ids = append(ids, c)
		}
	}

	return ids
}

// Graph returns the underlying complete weighted graph.
func (t *Task) Graph() *core.Graph { return t.g }

func bitsSet(mask uint64) int {
	count := 0
	for mask != 0 {
		mask &= mask - 1
		count++
	}

	return count
}

func edgeWeight(g *core.Graph, u, v string) (int64, error) {
	edges, err := g.Neighbors(u)
	if err != nil {
		return 0, err
	}
	for _, e := range edges {
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			return e.Weight, nil
		}
	}

	return 0, core.ErrEdgeNotFound
}
