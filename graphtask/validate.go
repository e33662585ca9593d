package graphtask

import (
	"github.com/katalvlaran/ibex/core"
	"github.com/katalvlaran/ibex/dfs"
)

// ValidateDeterministicSuccessors traverses g twice from startID with
// dfs.DFS and confirms the visitation order is identical, certifying
// the determinism spec.md §5 requires of a Task's successor generator
// before a fixture is handed to the search core.
func ValidateDeterministicSuccessors(g *core.Graph, startID string) (bool, error) {
	first, err := dfs.DFS(g, startID)
	if err != nil {
		return false, err
	}
	second, err := dfs.DFS(g, startID)
	if err != nil {
		return false, err
	}
	if len(first.Order) != len(second.Order) {
		return false, nil
	}
	for i := range first.Order {
		if first.Order[i] != second.Order[i] {
			return false, nil
		}
	}

	return true, nil
}
