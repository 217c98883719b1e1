package versioncheck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/richardbladh/rushstack/internal/config"
)

// manifestSections lists the package.json blocks that declare versioned
// dependencies.
var manifestSections = []string{"dependencies", "devDependencies"}

// LoadManifest reads a package.json and extracts the package name along
// with every declared dependency version.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return Manifest{}, fmt.Errorf("manifest %s is not valid JSON", path)
	}

	root := gjson.ParseBytes(data)
	m := Manifest{
		PackageName:  root.Get("name").String(),
		Dependencies: make(map[string]string),
	}
	if m.PackageName == "" {
		return Manifest{}, fmt.Errorf("manifest %s has no package name", path)
	}
	for _, section := range manifestSections {
		root.Get(section).ForEach(func(key, value gjson.Result) bool {
			m.Dependencies[key.String()] = value.String()
			return true
		})
	}
	return m, nil
}

// LoadWorkspaceManifests reads the package.json of every project under the
// workspace root. Projects without a manifest are skipped: not every
// project in a monorepo declares package dependencies.
func LoadWorkspaceManifests(root string, projects []*config.Project) ([]Manifest, error) {
	var manifests []Manifest
	for _, p := range projects {
		path := filepath.Join(root, p.Path, "package.json")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		m, err := LoadManifest(path)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", p.Name, err)
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}
