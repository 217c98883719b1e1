package taskgraph

import "sort"

// Status describes where a task sits in its execution lifecycle. The
// scheduler only ever assigns StatusReady at registration; the remaining
// states exist for the executor that consumes the ordered plan.
type Status int

const (
	StatusReady Status = iota
	StatusExecuting
	StatusSuccess
	StatusFailure
	StatusBlocked
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusExecuting:
		return "executing"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// TaskDefinition is the caller-supplied description of a unit of buildable
// work. Beyond Name, which keys the registry, the fields are opaque to the
// scheduler and are carried through for the executor.
type TaskDefinition struct {
	Name             string
	BuildCommand     string
	WorkingDirectory string
}

// Task is a registered unit of work plus the scheduling metadata the
// registry maintains for it.
type Task struct {
	Name       string
	Definition TaskDefinition
	Status     Status

	// dependencies holds the tasks this task must wait for; dependents is
	// the inverse relation (the tasks that wait for this one). The two maps
	// are kept mutual inverses by AddDependencies and are never mutated
	// independently.
	dependencies map[string]*Task
	dependents   map[string]*Task

	// criticalPathLength is memoized lazily by the orderer; nil means it
	// has not been computed yet.
	criticalPathLength *int
}

// Dependencies returns the names of the tasks this task waits for, sorted.
func (t *Task) Dependencies() []string {
	return sortedNames(t.dependencies)
}

// Dependents returns the names of the tasks that wait for this task, sorted.
func (t *Task) Dependents() []string {
	return sortedNames(t.dependents)
}

// CriticalPathLength returns the memoized critical-path length and whether
// it has been computed yet.
func (t *Task) CriticalPathLength() (int, bool) {
	if t.criticalPathLength == nil {
		return 0, false
	}
	return *t.criticalPathLength, true
}

func sortedNames(tasks map[string]*Task) []string {
	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortedTasks returns the values of a task set in name order. Traversals
// iterate this instead of the map so error messages stay deterministic.
func sortedTasks(tasks map[string]*Task) []*Task {
	out := make([]*Task, 0, len(tasks))
	for _, name := range sortedNames(tasks) {
		out = append(out, tasks[name])
	}
	return out
}
