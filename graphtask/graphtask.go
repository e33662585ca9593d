// Package graphtask adapts a core.Graph into a task.Task[string]: every
// vertex is a state, every edge is an operator, and an edge's weight is
// its operator cost. This is the graph-domain collaborator SPEC_FULL.md
// wires the search core against.
package graphtask

import (
	"errors"

	"github.com/katalvlaran/ibex/core"
	"github.com/katalvlaran/ibex/dfs"
	"github.com/katalvlaran/ibex/task"
)

// Sentinel errors for graphtask construction.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed to New.
	ErrGraphNil = errors.New("graphtask: graph is nil")

	// ErrVertexNotFound indicates the start or goal vertex is absent from the graph.
	ErrVertexNotFound = errors.New("graphtask: vertex not found")
)

// Task walks a core.Graph from a start vertex to a goal vertex. Its
// state type is the vertex ID (string); its operator ID is the
// traversed edge's ID, so a Plan's Ops are directly resolvable back to
// core.Edge values via the underlying graph.
type Task struct {
	g     *core.Graph
	start string
	goal  string
}

// New builds a Task over g, walking from start to goal. Successor order
// follows g.Neighbors, which core.Graph documents as returning edges in
// a stable order — the determinism spec.md §5 requires of a Task.
func New(g *core.Graph, start, goal string) (*Task, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) || !g.HasVertex(goal) {
		return nil, ErrVertexNotFound
	}

	return &Task{g: g, start: start, goal: goal}, nil
}

// Graph returns the underlying graph, for evaluators that need it
// (heuristics.NewPerfect, heuristics.NewHopCount).
func (t *Task) Graph() *core.Graph { return t.g }

// Goal returns the goal vertex ID.
func (t *Task) Goal() string { return t.goal }

// InitialState returns the start vertex ID.
func (t *Task) InitialState() string { return t.start }

// IsGoal reports whether state is the goal vertex.
func (t *Task) IsGoal(state string) bool { return state == t.goal }

// ApplicableOps returns the IDs of edges leaving state, in the graph's
// stable neighbor order. A failed lookup (state absent) yields no
// operators rather than a panic, so a Task can be probed defensively.
func (t *Task) ApplicableOps(state string) []task.OpID {
	edges, err := t.g.Neighbors(state)
	if err != nil {
		return nil
	}

	ops := make([]task.OpID, 0, len(edges))
	for _, e := range edges {
		ops = append(ops, task.OpID(e.ID))
	}

	return ops
}

// Apply returns the endpoint of the edge named by op that is not state.
func (t *Task) Apply(state string, op task.OpID) string {
	e, err := t.g.GetEdge(string(op))
	if err != nil {
		return state
	}
	if e.From == state {
		return e.To
	}

	return e.From
}

// Cost returns the weight of the edge named by op.
func (t *Task) Cost(_ string, op task.OpID) int64 {
	e, err := t.g.GetEdge(string(op))
	if err != nil {
		return 0
	}

	return e.Weight
}

// HasCycle reports whether the underlying graph contains any cycle
// (including positive-cost ones), and if so, returns one representative
// cycle per connected component as a sequence of vertex IDs. A
// positive-cost cycle poses no search hazard on its own — see
// HasHazardousCycle for the check that actually matters before enabling
// search.WithPathChecking.
func (t *Task) HasCycle() (bool, [][]string, error) {
	return dfs.DetectCycles(t.g)
}

// HasHazardousCycle reports whether the underlying graph contains a
// zero-cost cycle — the specific case spec.md §8 scenario 6 warns about,
// since only a free cycle can be retraversed by a search indefinitely
// without raising its accumulated cost past any bound. A caller should
// set search.WithPathChecking when this returns true; a graph with only
// positive-cost cycles needs no such guard, since IDA*/IBEX's cost bound
// forces termination on its own.
func (t *Task) HasHazardousCycle() (bool, [][]string, error) {
	return dfs.HazardousCycles(t.g)
}

// TopologicalOrder returns a topological ordering of the underlying
// graph's vertices. It fails with an error if the graph contains a
// cycle — callers with a precedence-constrained task (no cycles by
// construction) can use this to validate that assumption once, up
// front, instead of discovering a malformed task mid-search.
func (t *Task) TopologicalOrder() ([]string, error) {
	return dfs.TopologicalSort(t.g)
}

// CriticalPathLength returns the longest weighted dependency chain in the
// underlying graph — the classic critical-path-method bound. It fails if
// the graph contains a cycle. A caller sizing search.WithC1/search.WithC2,
// or bounding how many outer iterations IDA*/IBEX might need before the
// cost limit reaches the true optimum, can use it as an a priori estimate
// for a precedence-constrained (acyclic) task.
func (t *Task) CriticalPathLength() (int64, error) {
	return dfs.CriticalPathLength(t.g)
}

// BranchingFactor reports the mean and maximum out-degree (edges per
// vertex) of the underlying graph. IDA*/IBEX's node budget grows
// exponentially in branching factor, so a caller deciding between
// search.NewIDAStar and search.NewIBEX — or sizing search.WithC1 /
// search.WithC2 — can use this to estimate how fast a bound increase
// will blow up the frontier before committing to a strategy.
func (t *Task) BranchingFactor() (mean float64, max int) {
	adj := t.g.AdjacencyList()
	if len(adj) == 0 {
		return 0, 0
	}

	var total int
	for _, edgeIDs := range adj {
		n := len(edgeIDs)
		total += n
		if n > max {
			max = n
		}
	}

	return float64(total) / float64(len(adj)), max
}
