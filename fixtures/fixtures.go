// Package fixtures builds deterministic, seeded task instances for
// tests and examples, grounded on the retained builder package's
// seeded-RNG graph constructors (builder.RandomSparse, builder.Complete).
package fixtures

import (
	"fmt"

	"github.com/katalvlaran/ibex/builder"
	"github.com/katalvlaran/ibex/core"
	"github.com/katalvlaran/ibex/graphtask"
	"github.com/katalvlaran/ibex/gridtask"
	"github.com/katalvlaran/ibex/tsptask"
)

// RandomGraphTask builds a weighted Erdős-Rényi-style graph over n
// vertices with edge probability p and integer weights in [minW, maxW],
// then wraps it as a graphtask.Task from vertex "0" to vertex
// strconv-of-(n-1). The seed makes the graph, and therefore the task,
// fully reproducible — spec.md §8 law 6 needs randomly generated tasks
// with a stable shape to compare IDA*'s and IBEX's expansion counts.
func RandomGraphTask(n int, p float64, minW, maxW float64, seed int64) (*graphtask.Task, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(minW, maxW)},
		builder.RandomSparse(n, p),
	)
	if err != nil {
		return nil, err
	}

	start, goal := "0", builder.DefaultIDFn(n-1)

	return graphtask.New(g, start, goal)
}

// RandomTSPTask builds a complete weighted graph over n cities with
// integer weights in [minW, maxW], satisfying the triangle-inequality-
// free assumption tsptask.Task makes (every pair of cities is directly
// connected), and wraps it as a tsptask.Task.
func RandomTSPTask(n int, minW, maxW float64, seed int64) (*tsptask.Task, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(minW, maxW)},
		builder.Complete(n),
	)
	if err != nil {
		return nil, err
	}

	return tsptask.New(g)
}

// SolvableMaze builds a width x height grid maze of 0 (wall) / 1
// (floor) cells from a seeded pseudo-random fill, redrawing the fill at the
// same wallP (up to 64 attempts) until gridtask.Reachable confirms start and goal are connected — the
// connectivity pre-flight SPEC_FULL.md wires from gridgraph so an
// "unsolvable" fixture is never produced by accident here.
func SolvableMaze(width, height int, seed int64, wallP float64) ([][]int, gridtask.State, gridtask.State, error) {
	start := gridtask.State{X: 0, Y: 0}
	goal := gridtask.State{X: width - 1, Y: height - 1}

	rng := newLCG(seed)
	for attempt := 0; attempt < 64; attempt++ {
		grid := make([][]int, height)
		for y := range grid {
			row := make([]int, width)
			for x := range row {
				row[x] = 1
				if rng.float64() < wallP {
					row[x] = 0
				}
			}
			grid[y] = row
		}
		grid[start.Y][start.X] = 1
		grid[goal.Y][goal.X] = 1

		ok, err := gridtask.Reachable(grid, 1, start, goal)
		if err != nil {
			return nil, start, goal, err
		}
		if ok {
			return grid, start, goal, nil
		}
	}

	return nil, start, goal, errFailedToGenerate
}

// PathGraphTask builds a weighted n-vertex simple path P_n and wraps
// it as a graphtask.Task from one endpoint to the other — the
// degenerate case where exactly one plan exists, useful for asserting
// IDA*/IBEX degrade gracefully to a single forced expansion chain.
func PathGraphTask(n int, minW, maxW float64, seed int64) (*graphtask.Task, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(minW, maxW)},
		builder.Path(n),
	)
	if err != nil {
		return nil, err
	}

	return graphtask.New(g, builder.DefaultIDFn(0), builder.DefaultIDFn(n-1))
}

// StarGraphTask builds a weighted n-vertex star (one hub, n-1 leaves)
// and wraps it as a graphtask.Task from one leaf to another — every
// plan is forced through the hub, so this fixture exercises a search
// space with a single mandatory intermediate state.
func StarGraphTask(n int, minW, maxW float64, seed int64) (*graphtask.Task, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(minW, maxW)},
		builder.Star(n),
	)
	if err != nil {
		return nil, err
	}

	return graphtask.New(g, builder.DefaultIDFn(1), builder.DefaultIDFn(2))
}

// CycleGraphTask builds a weighted n-vertex ring C_n and wraps it as a
// graphtask.Task from vertex "0" to the antipodal vertex n/2 — the
// longest shortest-path pair on a ring, so both the clockwise and
// counter-clockwise arcs are live alternatives for IDA*/IBEX to weigh
// against each other.
func CycleGraphTask(n int, minW, maxW float64, seed int64) (*graphtask.Task, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(minW, maxW)},
		builder.Cycle(n),
	)
	if err != nil {
		return nil, err
	}

	return graphtask.New(g, builder.DefaultIDFn(0), builder.DefaultIDFn(n/2))
}

// WheelGraphTask builds a weighted n-vertex wheel W_n (a rim cycle plus
// a hub connected to every rim vertex) and wraps it as a graphtask.Task
// from the hub to a rim vertex — a topology where the direct hub spoke
// competes against longer rim detours, exercising a search space with
// more than one plausible edge to expand from the start state.
func WheelGraphTask(n int, minW, maxW float64, seed int64) (*graphtask.Task, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(minW, maxW)},
		builder.Wheel(n),
	)
	if err != nil {
		return nil, err
	}

	return graphtask.New(g, builder.CenterVertexID, builder.DefaultIDFn(0))
}

// BipartiteGraphTask builds a weighted complete bipartite graph
// K_{n1,n2} and wraps it as a graphtask.Task from the first left-side
// vertex to the last right-side vertex — the two are joined by an edge,
// so the goal is one hop from the start, and this fixture is useful for
// regression-testing the trivial-path edge case rather than deep search.
func BipartiteGraphTask(n1, n2 int, minW, maxW float64, seed int64) (*graphtask.Task, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithUniformWeight(minW, maxW),
			builder.WithPartitionPrefix("L", "R"),
		},
		builder.CompleteBipartite(n1, n2),
	)
	if err != nil {
		return nil, err
	}

	return graphtask.New(g, "L0", fmt.Sprintf("R%d", n2-1))
}

// RegularGraphTask builds a weighted n-vertex d-regular graph via
// stub-matching and wraps it as a graphtask.Task from vertex "0" to
// vertex n-1 — a fixture with a fixed, uniform branching factor at
// every state, unlike RandomGraphTask's Erdős-Rényi degree spread.
func RegularGraphTask(n, d int, minW, maxW float64, seed int64) (*graphtask.Task, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(minW, maxW)},
		builder.RandomRegular(n, d),
	)
	if err != nil {
		return nil, err
	}

	return graphtask.New(g, builder.DefaultIDFn(0), builder.DefaultIDFn(n-1))
}

// GridTopologyGraphTask builds a weighted rows x cols orthogonal grid
// (4-neighborhood, vertex IDs "r,c") and wraps it as a graphtask.Task
// from the top-left corner to the bottom-right corner — a
// graphtask.Task counterpart to SolvableMaze/UnsolvableMaze's
// gridtask.State grid, useful when a test wants grid geometry but the
// generic weighted-graph task interface rather than gridtask's 4-neighbor
// movement semantics.
func GridTopologyGraphTask(rows, cols int, minW, maxW float64, seed int64) (*graphtask.Task, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(minW, maxW)},
		builder.Grid(rows, cols),
	)
	if err != nil {
		return nil, err
	}

	start := fmt.Sprintf("%d,%d", 0, 0)
	goal := fmt.Sprintf("%d,%d", rows-1, cols-1)

	return graphtask.New(g, start, goal)
}

// UnsolvableMaze builds a width x height maze with an unbroken wall
// column between start and goal, deliberately unreachable — the
// counterpart fixture to SolvableMaze for spec.md §8 scenario 4.
func UnsolvableMaze(width, height int) ([][]int, gridtask.State, gridtask.State) {
	grid := make([][]int, height)
	for y := range grid {
		row := make([]int, width)
		for x := range row {
			row[x] = 1
		}
		grid[y] = row
	}
	wallCol := width / 2
	for y := 0; y < height; y++ {
		grid[y][wallCol] = 0
	}

	return grid, gridtask.State{X: 0, Y: 0}, gridtask.State{X: width - 1, Y: height - 1}
}
