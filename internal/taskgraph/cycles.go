package taskgraph

// cycleCheck carries the two pieces of traversal state the cycle detector
// needs: the stack of names on the current DFS path and the set of tasks
// whose whole subtree has already been explored.
type cycleCheck struct {
	path    []string
	checked map[string]bool
}

// checkForCycles proves the dependency graph is a DAG by walking the
// dependents relation depth-first from every task. It returns a CycleError
// for the first cycle found. The checked set keeps the whole pass O(V+E);
// membership in the current path is what actually catches a cycle.
func (r *Registry) checkForCycles() error {
	c := &cycleCheck{checked: make(map[string]bool)}
	for _, t := range r.order {
		if c.checked[t.Name] {
			continue
		}
		if err := c.visit(t); err != nil {
			return err
		}
	}
	return nil
}

func (c *cycleCheck) visit(t *Task) error {
	// Path membership must be tested before the checked set so a cycle is
	// reported rather than skipped.
	for i, name := range c.path {
		if name == t.Name {
			return newCycleError(c.path[i:], t.Name)
		}
	}
	if c.checked[t.Name] {
		return nil
	}

	c.checked[t.Name] = true
	c.path = append(c.path, t.Name)
	for _, dependent := range sortedTasks(t.dependents) {
		if err := c.visit(dependent); err != nil {
			return err
		}
	}
	c.path = c.path[:len(c.path)-1]
	return nil
}
