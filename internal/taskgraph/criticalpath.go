package taskgraph

// calculateCriticalPathLength returns the number of dependent layers
// downstream of t: 0 for a task nothing waits on, otherwise one more than
// the longest chain among its dependents. The result is memoized on the
// task, which bounds the total work across all entry points to O(V+E).
//
// Only safe after checkForCycles has passed; on a cyclic graph the
// recursion would never bottom out.
func calculateCriticalPathLength(t *Task) int {
	if t.criticalPathLength != nil {
		return *t.criticalPathLength
	}

	length := 0
	for _, dependent := range t.dependents {
		if l := calculateCriticalPathLength(dependent) + 1; l > length {
			length = l
		}
	}
	t.criticalPathLength = &length
	return length
}
