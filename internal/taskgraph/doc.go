// Package taskgraph is the scheduling core of the orchestrator. It holds
// the registry of build tasks and their dependency graph, proves the graph
// acyclic, and produces the critical-path-first ordering consumed by the
// build plan.
//
// The package is single-threaded by design: callers register tasks, declare
// edges, then order once.
package taskgraph
