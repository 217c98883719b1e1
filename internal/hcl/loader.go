package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/richardbladh/rushstack/internal/config"
	"github.com/richardbladh/rushstack/internal/ctxlog"
	"github.com/richardbladh/rushstack/internal/fsutil"
)

// Loader reads workspace configuration from .hcl files.
type Loader struct{}

// NewLoader creates a new HCL workspace loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and translates the
// result into the format-agnostic workspace model. A path may be a single
// file or a directory searched recursively.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access config path %q: %w", path, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("failed to scan %q for workspace files: %w", path, err)
			}
			files = append(files, found...)
		} else {
			files = append(files, path)
		}
	}
	logger.Debug("Workspace files discovered.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{Workspace: &config.Workspace{}}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var raw workspaceConfig
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &raw); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, p := range raw.Projects {
			model.Projects = append(model.Projects, translateProject(p))
		}
		if raw.Workspace != nil {
			table, err := decodeVersionTable(raw.Workspace.AllowedAlternativeVersions)
			if err != nil {
				return nil, fmt.Errorf("invalid allowed_alternative_versions in %s: %w", file, err)
			}
			mergeVersionTable(model.Workspace, table)
		}
		logger.Debug("Workspace file loaded.", "file", file, "projects", len(raw.Projects))
	}

	return model, nil
}
