package taskgraph

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Options configures a Registry.
type Options struct {
	// Quiet suppresses the human-readable registration notices.
	Quiet bool
	// Terminal receives registration notices. Defaults to os.Stdout.
	Terminal io.Writer
}

// Registry maps unique task names to their records and owns the dependency
// graph built between them. It is a single scheduling session: construct,
// register every task, declare every edge, then order once.
type Registry struct {
	tasks map[string]*Task
	// order keeps tasks in registration order; the stable sort in
	// GetOrderedTasks falls back to it for equal critical-path lengths.
	order []*Task

	quiet    bool
	terminal io.Writer
	notice   *color.Color
}

// NewRegistry creates an empty task registry.
func NewRegistry(opts Options) *Registry {
	terminal := opts.Terminal
	if terminal == nil {
		terminal = os.Stdout
	}
	return &Registry{
		tasks:    make(map[string]*Task),
		quiet:    opts.Quiet,
		terminal: terminal,
		notice:   color.New(color.FgGreen),
	}
}

// AddTask registers a new task under def.Name. It fails with
// ErrDuplicateTask if the name is already present.
func (r *Registry) AddTask(def TaskDefinition) error {
	if def.Name == "" {
		return invalidf("task name is required")
	}
	if _, exists := r.tasks[def.Name]; exists {
		return duplicatef("%q", def.Name)
	}

	t := &Task{
		Name:         def.Name,
		Definition:   def,
		Status:       StatusReady,
		dependencies: make(map[string]*Task),
		dependents:   make(map[string]*Task),
	}
	r.tasks[def.Name] = t
	r.order = append(r.order, t)

	if !r.quiet {
		fmt.Fprintf(r.terminal, "Registered task %s\n", r.notice.Sprint(def.Name))
	}
	return nil
}

// HasTask reports whether a task is registered under the given name.
func (r *Registry) HasTask(name string) bool {
	_, ok := r.tasks[name]
	return ok
}

// Task returns the registered task with the given name, if any.
func (r *Registry) Task(name string) (*Task, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// Tasks returns a snapshot of every registered task in registration order.
func (r *Registry) Tasks() []*Task {
	out := make([]*Task, len(r.order))
	copy(out, r.order)
	return out
}

// AddDependencies declares that the named task must wait for each task in
// deps, updating both directions of every edge. The whole dependency list
// is validated before anything is mutated, so a failure never leaves a
// one-sided edge behind. Declaring the same dependency twice is a no-op.
func (r *Registry) AddDependencies(name string, deps []string) error {
	t, ok := r.tasks[name]
	if !ok {
		return unregisteredf("%q", name)
	}
	if deps == nil {
		return invalidf("dependency list for task %q is nil", name)
	}

	resolved := make([]*Task, 0, len(deps))
	for _, depName := range deps {
		dep, ok := r.tasks[depName]
		if !ok {
			return unregisteredf("dependency %q of task %q", depName, name)
		}
		resolved = append(resolved, dep)
	}

	for _, dep := range resolved {
		t.dependencies[dep.Name] = dep
		dep.dependents[t.Name] = t
	}
	return nil
}
