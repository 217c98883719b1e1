package hcl

import "github.com/hashicorp/hcl/v2"

// project represents a `project` block from a workspace file.
type project struct {
	Name         string   `hcl:"name,label"`
	Path         string   `hcl:"path"`
	BuildCommand string   `hcl:"build_command,optional"`
	DependsOn    []string `hcl:"depends_on,optional"`
	Tags         []string `hcl:"tags,optional"`
}

// workspace represents the optional `workspace` block carrying
// workspace-wide policies. The version table is kept as a raw expression so
// the loader can convert it through cty explicitly.
type workspace struct {
	AllowedAlternativeVersions hcl.Expression `hcl:"allowed_alternative_versions,optional"`
}

// workspaceConfig is the top-level structure of a workspace file.
type workspaceConfig struct {
	Workspace *workspace `hcl:"workspace,block"`
	Projects  []*project `hcl:"project,block"`
}
