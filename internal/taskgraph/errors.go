package taskgraph

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateTask    = errors.New("task already registered")
	ErrUnregisteredTask = errors.New("task not registered")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrCyclicDependency = errors.New("cyclic dependency")
)

// GraphError wraps deterministic graph construction failures with the
// sentinel they belong to.
type GraphError struct {
	Kind error
	Msg  string
}

func (e *GraphError) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *GraphError) Unwrap() error { return e.Kind }

func duplicatef(format string, args ...any) error {
	return &GraphError{Kind: ErrDuplicateTask, Msg: fmt.Sprintf(format, args...)}
}

func unregisteredf(format string, args ...any) error {
	return &GraphError{Kind: ErrUnregisteredTask, Msg: fmt.Sprintf(format, args...)}
}

func invalidf(format string, args ...any) error {
	return &GraphError{Kind: ErrInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

// CycleError reports a dependency chain that loops back on itself.
type CycleError struct {
	// Chain lists the task names in dependency order: the first element
	// depends on the second, and the last element closes the loop by
	// repeating the first.
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf(
		"found a cyclic dependency: %s; if the cycle is intentional, declare it as an allowed cyclic dependency",
		strings.Join(e.Chain, " depends on "),
	)
}

func (e *CycleError) Unwrap() error { return ErrCyclicDependency }

// newCycleError builds a CycleError from the DFS path segment that starts
// the cycle plus the revisited task. The traversal walks dependents, so the
// path reads dependency-first; reversing it yields "depends on" order.
func newCycleError(pathFromStart []string, revisited string) *CycleError {
	chain := make([]string, 0, len(pathFromStart)+1)
	chain = append(chain, pathFromStart...)
	chain = append(chain, revisited)
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return &CycleError{Chain: chain}
}
