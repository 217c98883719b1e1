// Package app wires the application together: configuration, logger,
// workspace loading, and the plan/check/tag commands.
package app
