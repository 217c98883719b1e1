package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/richardbladh/rushstack/internal/config"
	"github.com/richardbladh/rushstack/internal/ctxlog"
	"github.com/richardbladh/rushstack/internal/scm"
	"github.com/richardbladh/rushstack/internal/taskgraph"
	"github.com/richardbladh/rushstack/internal/versioncheck"
)

// Run executes the requested command against the configured workspace.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", cfg.Command)

	switch cfg.Command {
	case CommandTag:
		// Tagging is a pure source-control operation; the workspace model
		// is not needed.
		return a.runTag(ctx, cfg)
	case CommandCheck:
		model, err := a.loadWorkspace(ctx, cfg)
		if err != nil {
			return err
		}
		return a.runCheck(ctx, cfg, model)
	default:
		model, err := a.loadWorkspace(ctx, cfg)
		if err != nil {
			return err
		}
		return a.runPlan(ctx, cfg, model)
	}
}

func (a *App) loadWorkspace(ctx context.Context, cfg *Config) (*config.Model, error) {
	model, err := a.loader.Load(ctx, cfg.WorkspacePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	a.logger.Info("Workspace loaded.", "projects", len(model.Projects))
	return model, nil
}

// runPlan registers every project as a task, declares its dependency edges,
// and prints the critical-path ordering. A cyclic graph prints the full
// chain before returning the error.
func (a *App) runPlan(ctx context.Context, cfg *Config, model *config.Model) error {
	registry := taskgraph.NewRegistry(taskgraph.Options{
		Quiet:    cfg.Quiet,
		Terminal: a.outW,
	})

	for _, p := range model.Projects {
		def := taskgraph.TaskDefinition{
			Name:             p.Name,
			BuildCommand:     p.BuildCommand,
			WorkingDirectory: p.Path,
		}
		if err := registry.AddTask(def); err != nil {
			return fmt.Errorf("failed to register project %q: %w", p.Name, err)
		}
	}
	for _, p := range model.Projects {
		deps := p.DependsOn
		if deps == nil {
			deps = []string{}
		}
		if err := registry.AddDependencies(p.Name, deps); err != nil {
			return fmt.Errorf("failed to declare dependencies of %q: %w", p.Name, err)
		}
	}

	ordered, err := registry.GetOrderedTasks()
	if err != nil {
		// Print the full cycle detail so the user can fix the graph in one
		// pass, then fail the command.
		fmt.Fprintln(a.outW, color.RedString(err.Error()))
		return fmt.Errorf("dependency graph validation failed: %w", err)
	}

	fmt.Fprintf(a.outW, "Build plan (%d tasks, critical path first):\n", len(ordered))
	bold := color.New(color.Bold)
	for _, task := range ordered {
		length, _ := task.CriticalPathLength()
		fmt.Fprintf(a.outW, "  [%d] %s", length, bold.Sprint(task.Name))
		if task.Definition.BuildCommand != "" {
			fmt.Fprintf(a.outW, " (%s)", task.Definition.BuildCommand)
		}
		fmt.Fprintln(a.outW)
	}
	return nil
}

// runCheck loads every project manifest and reports all dependency version
// mismatches at once.
func (a *App) runCheck(ctx context.Context, cfg *Config, model *config.Model) error {
	root := workspaceRoot(cfg.WorkspacePath)
	manifests, err := versioncheck.LoadWorkspaceManifests(root, model.Projects)
	if err != nil {
		return fmt.Errorf("failed to load project manifests: %w", err)
	}
	a.logger.Debug("Project manifests loaded.", "count", len(manifests))

	finder := versioncheck.NewFinder(manifests, model.Workspace.AllowedAlternativeVersions)
	mismatches := finder.Mismatches()
	if len(mismatches) == 0 {
		fmt.Fprintln(a.outW, "No version mismatches found.")
		return nil
	}

	for _, dep := range mismatches {
		fmt.Fprintf(a.outW, "%s\n", color.RedString(dep))
		for _, version := range finder.Versions(dep) {
			fmt.Fprintf(a.outW, "  %s\n", version)
			for _, consumer := range finder.Consumers(dep, version) {
				fmt.Fprintf(a.outW, "   - %s\n", consumer)
			}
		}
	}
	return fmt.Errorf("found %d dependency version mismatch(es)", len(mismatches))
}

// runTag checks out the release branch, tags it, and pushes the tag.
func (a *App) runTag(ctx context.Context, cfg *Config) error {
	git := scm.NewGit(workspaceRoot(cfg.WorkspacePath))

	if cfg.Branch != "" {
		if err := git.Checkout(ctx, cfg.Branch, false); err != nil {
			return err
		}
	}
	if err := git.Tag(ctx, cfg.TagName); err != nil {
		return err
	}
	if err := git.Push(ctx, cfg.Remote, cfg.TagName); err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "Tagged %s and pushed to %s.\n", cfg.TagName, cfg.Remote)
	return nil
}

// workspaceRoot resolves the directory containing the workspace: the path
// itself when it is a directory, otherwise the file's parent.
func workspaceRoot(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
