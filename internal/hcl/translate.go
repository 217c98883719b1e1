package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/richardbladh/rushstack/internal/config"
)

// translateProject converts the HCL-specific project schema into the
// agnostic model.
func translateProject(p *project) *config.Project {
	return &config.Project{
		Name:         p.Name,
		Path:         p.Path,
		BuildCommand: p.BuildCommand,
		DependsOn:    p.DependsOn,
		Tags:         p.Tags,
	}
}

// decodeVersionTable evaluates the allowed_alternative_versions expression
// into a dependency -> versions map. A nil or null expression yields nil.
func decodeVersionTable(expr hcl.Expression) (map[string][]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("expected a map of dependency name to version list, got %s", val.Type().FriendlyName())
	}

	table := make(map[string][]string)
	for name, versions := range val.AsValueMap() {
		if versions.IsNull() {
			continue
		}
		if !versions.CanIterateElements() {
			return nil, fmt.Errorf("versions for %q must be a list of strings", name)
		}
		for it := versions.ElementIterator(); it.Next(); {
			_, v := it.Element()
			if v.Type() != cty.String || v.IsNull() {
				return nil, fmt.Errorf("versions for %q must be strings", name)
			}
			table[name] = append(table[name], v.AsString())
		}
	}
	return table, nil
}

// mergeVersionTable folds a decoded table into the workspace settings.
// Later files extend earlier ones rather than replacing them.
func mergeVersionTable(ws *config.Workspace, table map[string][]string) {
	if len(table) == 0 {
		return
	}
	if ws.AllowedAlternativeVersions == nil {
		ws.AllowedAlternativeVersions = make(map[string][]string)
	}
	for name, versions := range table {
		ws.AllowedAlternativeVersions[name] = append(ws.AllowedAlternativeVersions[name], versions...)
	}
}
