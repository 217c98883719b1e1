package config

// Model is the unified, format-agnostic representation of a workspace
// configuration: the projects to build and the workspace-wide policies.
type Model struct {
	Workspace *Workspace
	Projects  []*Project
}

// Workspace carries workspace-wide settings.
type Workspace struct {
	// AllowedAlternativeVersions maps a dependency name to the versions
	// tolerated alongside the primary one during the version-consistency
	// check.
	AllowedAlternativeVersions map[string][]string
}

// Project is the format-agnostic representation of a `project` block.
type Project struct {
	Name         string
	Path         string
	BuildCommand string
	DependsOn    []string
	Tags         []string
}

// ProjectByName returns the project with the given name, if any.
func (m *Model) ProjectByName(name string) (*Project, bool) {
	for _, p := range m.Projects {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}
