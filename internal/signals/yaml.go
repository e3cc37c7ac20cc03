package signals

import (
	"log/slog"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// PNPMWorkspaceFile declares pnpm workspace globs.
const PNPMWorkspaceFile = "pnpm-workspace.yaml"

// ComposeFiles are the docker compose file names probed in order.
var ComposeFiles = []string{"docker-compose.yml", "docker-compose.yaml", "compose.yml", "compose.yaml"}

// ReadPNPMWorkspace returns the package globs of pnpm-workspace.yaml verbatim.
func ReadPNPMWorkspace(src *source.Source) ([]string, error) {
	data, found, err := src.ReadOptional(PNPMWorkspaceFile)
	if err != nil || !found {
		return nil, err
	}
	var raw struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		slog.Debug("Malformed pnpm workspace treated as absent", logfields.File(PNPMWorkspaceFile), logfields.Error(err))
		return nil, nil
	}
	return raw.Packages, nil
}

// ReadComposeServices returns the service names of the first compose file found,
// in declaration order.
func ReadComposeServices(src *source.Source) (file string, services []string, err error) {
	for _, name := range ComposeFiles {
		data, found, err := src.ReadOptional(name)
		if err != nil {
			return name, nil, err
		}
		if !found {
			continue
		}
		var doc struct {
			Services yaml.Node `yaml:"services"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			slog.Debug("Malformed compose file", logfields.File(name), logfields.Error(err))
			return name, nil, nil
		}
		return name, mappingKeys(&doc.Services), nil
	}
	return "", nil, nil
}

// ReadWorkflowName returns the top-level name of a GitHub Actions workflow file.
func ReadWorkflowName(src *source.Source, name string) string {
	data, found, err := src.ReadOptional(name)
	if err != nil || !found {
		return ""
	}
	var doc struct {
		Name string `yaml:"name"`
	}
	if yaml.Unmarshal(data, &doc) != nil {
		return ""
	}
	return doc.Name
}

// mappingKeys returns the keys of a YAML mapping node in document order.
func mappingKeys(n *yaml.Node) []string {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
	}
	return keys
}
