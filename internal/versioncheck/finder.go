package versioncheck

import (
	"slices"
	"sort"
)

// Manifest is one project's declared dependency set.
type Manifest struct {
	PackageName  string
	Dependencies map[string]string
}

// Finder indexes every declared dependency version across a workspace and
// exposes the dependencies requested at more than one version.
type Finder struct {
	// mismatches maps dependency name -> version -> consuming packages.
	mismatches map[string]map[string][]string
}

// NewFinder builds the mismatch index. Versions listed for a dependency in
// allowedAlternatives do not count toward a mismatch.
func NewFinder(manifests []Manifest, allowedAlternatives map[string][]string) *Finder {
	byDependency := make(map[string]map[string][]string)
	for _, m := range manifests {
		for dep, version := range m.Dependencies {
			if slices.Contains(allowedAlternatives[dep], version) {
				continue
			}
			if byDependency[dep] == nil {
				byDependency[dep] = make(map[string][]string)
			}
			byDependency[dep][version] = append(byDependency[dep][version], m.PackageName)
		}
	}

	f := &Finder{mismatches: make(map[string]map[string][]string)}
	for dep, versions := range byDependency {
		if len(versions) > 1 {
			f.mismatches[dep] = versions
		}
	}
	return f
}

// Mismatches returns the sorted names of every dependency with conflicting
// version declarations.
func (f *Finder) Mismatches() []string {
	names := make([]string, 0, len(f.mismatches))
	for name := range f.mismatches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Versions returns the sorted distinct versions declared for a mismatched
// dependency, or nil if the dependency is not mismatched.
func (f *Finder) Versions(dependency string) []string {
	byVersion, ok := f.mismatches[dependency]
	if !ok {
		return nil
	}
	versions := make([]string, 0, len(byVersion))
	for v := range byVersion {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// Consumers returns the sorted packages declaring the given version of a
// mismatched dependency.
func (f *Finder) Consumers(dependency, version string) []string {
	byVersion, ok := f.mismatches[dependency]
	if !ok {
		return nil
	}
	consumers := slices.Clone(byVersion[version])
	sort.Strings(consumers)
	return consumers
}
