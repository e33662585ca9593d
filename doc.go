// Package ibex is a cost-optimal heuristic search engine for classical
// planning problems — a state, a goal test, and a set of cost-bearing
// operators go in, an optimal plan comes out.
//
// Two drivers sit on top of a shared bounded depth-first kernel:
//
//	search.IDAStar — iterative-deepening A*: raise a single cost bound
//	                 until a probe reports the goal.
//	search.IBEX    — interval-based iterative deepening: bracket the
//	                 optimal cost with an (lo, hi) interval and narrow
//	                 it under a doubling node-expansion budget,
//	                 alternating exponential- and binary-search probes.
//
// Both are generic over any comparable state type S that implements
// task.Task[S], guided by any eval.Evaluator[S] admissible heuristic.
// Neither driver keeps an open or closed list; optimality comes from
// the cost bound alone, at the cost of re-expanding nodes across
// iterations — the standard IDA*/IBEX space/time tradeoff.
//
// Everything under this root is organized as:
//
//	task/       — the Task[S] interface, OpID, Plan
//	eval/       — the Evaluator[S] interface, saturating Value arithmetic
//	search/     — the bounded DFS kernel, IDAStar, IBEX, Statistics
//	heuristics/ — admissible evaluators (Perfect, HopCount, DegreeRelaxation, Blind)
//	graphtask/  — a Task[string] over a weighted graph
//	gridtask/   — a Task[gridtask.State] over a grid maze
//	tsptask/    — a Task[tsptask.State] framing Hamiltonian-circuit search
//	fixtures/   — deterministic, seeded task generation for tests and examples
//
// core, dfs, bfs, dijkstra, prim_kruskal, gridgraph and builder are the
// retained graph substrate the domain task packages and fixtures are
// built on.
package ibex
