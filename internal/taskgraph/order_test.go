package taskgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderedNames(t *testing.T, r *Registry) []string {
	t.Helper()
	ordered, err := r.GetOrderedTasks()
	require.NoError(t, err)
	names := make([]string, 0, len(ordered))
	for _, task := range ordered {
		names = append(names, task.Name)
	}
	return names
}

func TestGetOrderedTasks(t *testing.T) {
	t.Run("linear chain orders the deepest blocker first", func(t *testing.T) {
		// c depends on b, b depends on a: a blocks two layers of work.
		r := buildGraph(t, []string{"a", "b", "c"}, map[string][]string{
			"c": {"b"},
			"b": {"a"},
		})
		assert.Equal(t, []string{"a", "b", "c"}, orderedNames(t, r))

		for name, want := range map[string]int{"a": 2, "b": 1, "c": 0} {
			task, _ := r.Task(name)
			got, computed := task.CriticalPathLength()
			require.True(t, computed)
			assert.Equal(t, want, got, "critical path of %q", name)
		}
	})

	t.Run("independent tasks keep registration order", func(t *testing.T) {
		r := buildGraph(t, []string{"x", "y"}, nil)
		assert.Equal(t, []string{"x", "y"}, orderedNames(t, r))

		for _, name := range []string{"x", "y"} {
			task, _ := r.Task(name)
			got, computed := task.CriticalPathLength()
			require.True(t, computed)
			assert.Zero(t, got)
		}
	})

	t.Run("returns every task exactly once", func(t *testing.T) {
		r := buildGraph(t, []string{"a", "b", "c", "d", "e"}, map[string][]string{
			"b": {"a"},
			"c": {"a"},
			"d": {"b", "c"},
		})
		names := orderedNames(t, r)
		assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, names)
	})

	t.Run("ordering is non-increasing by critical path", func(t *testing.T) {
		r := buildGraph(t, []string{"lib", "app", "docs", "e2e"}, map[string][]string{
			"app": {"lib"},
			"e2e": {"app"},
		})
		ordered, err := r.GetOrderedTasks()
		require.NoError(t, err)

		prev := -1
		for i := len(ordered) - 1; i >= 0; i-- {
			length, computed := ordered[i].CriticalPathLength()
			require.True(t, computed)
			assert.GreaterOrEqual(t, length, prev)
			prev = length
		}
	})

	t.Run("critical path equals one plus the longest dependent chain", func(t *testing.T) {
		r := buildGraph(t, []string{"a", "b", "c", "d"}, map[string][]string{
			"b": {"a"},
			"c": {"b"},
			"d": {"a"},
		})
		_, err := r.GetOrderedTasks()
		require.NoError(t, err)

		for _, task := range r.Tasks() {
			got, computed := task.CriticalPathLength()
			require.True(t, computed)

			if len(task.Dependents()) == 0 {
				assert.Zero(t, got, "sink %q", task.Name)
				continue
			}
			want := 0
			for _, depName := range task.Dependents() {
				dep, _ := r.Task(depName)
				length, _ := dep.CriticalPathLength()
				if length+1 > want {
					want = length + 1
				}
			}
			assert.Equal(t, want, got, "task %q", task.Name)
		}
	})

	t.Run("repeated ordering is stable", func(t *testing.T) {
		r := buildGraph(t, []string{"n1", "n2", "n3", "n4"}, map[string][]string{
			"n3": {"n1"},
			"n4": {"n2"},
		})
		first := orderedNames(t, r)
		second := orderedNames(t, r)
		assert.Equal(t, first, second)
		// n1 and n2 tie at length 1, n3 and n4 tie at 0; registration order
		// breaks both ties.
		assert.Equal(t, []string{"n1", "n2", "n3", "n4"}, first)
	})

	t.Run("cycle surfaces as a cyclic dependency error", func(t *testing.T) {
		// Scenario: b depends on a, then a is declared to depend on b.
		r := buildGraph(t, []string{"a", "b"}, map[string][]string{
			"b": {"a"},
			"a": {"b"},
		})
		ordered, err := r.GetOrderedTasks()
		require.Error(t, err)
		assert.Nil(t, ordered)
		assert.ErrorIs(t, err, ErrCyclicDependency)
		assert.Contains(t, err.Error(), "a")
		assert.Contains(t, err.Error(), "b")
	})

	t.Run("fan out from one root", func(t *testing.T) {
		r := buildGraph(t, []string{"leafZ", "root", "leafA"}, map[string][]string{
			"leafZ": {"root"},
			"leafA": {"root"},
		})
		names := orderedNames(t, r)
		assert.Equal(t, "root", names[0])
		// Leaves tie at zero and keep registration order.
		assert.Equal(t, []string{"root", "leafZ", "leafA"}, names)
	})
}
