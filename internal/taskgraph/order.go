package taskgraph

import "sort"

// GetOrderedTasks validates the graph and returns every registered task
// sorted by descending critical-path length, so the tasks blocking the most
// downstream work come first. Ties keep registration order, which makes the
// result reproducible for identical input.
//
// The returned slice is a snapshot; a downstream concurrent executor may
// consume it freely. It uses the order to break ties among tasks that are
// simultaneously runnable, not as a strict sequential order.
func (r *Registry) GetOrderedTasks() ([]*Task, error) {
	if err := r.checkForCycles(); err != nil {
		return nil, err
	}

	ordered := make([]*Task, len(r.order))
	copy(ordered, r.order)
	for _, t := range ordered {
		calculateCriticalPathLength(t)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return *ordered[i].criticalPathLength > *ordered[j].criticalPathLength
	})
	return ordered, nil
}
