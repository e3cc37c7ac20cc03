package signals

import (
	"log/slog"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

const (
	PyProjectFile = "pyproject.toml"
	CargoFile     = "Cargo.toml"
	NetlifyFile   = "netlify.toml"
)

// PyProject holds the pyproject.toml keys readmegen looks up (PEP 621 and Poetry).
type PyProject struct {
	Name         string
	Description  string
	License      string
	Dependencies []string
	Scripts      []string
}

type pyprojectFile struct {
	Project struct {
		Name         string            `toml:"name"`
		Description  string            `toml:"description"`
		Dependencies []string          `toml:"dependencies"`
		License      any               `toml:"license"`
		Scripts      map[string]string `toml:"scripts"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name         string         `toml:"name"`
			Description  string         `toml:"description"`
			License      string         `toml:"license"`
			Dependencies map[string]any `toml:"dependencies"`
			Scripts      map[string]any `toml:"scripts"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// ReadPyProject parses pyproject.toml; absent or malformed yields (nil, nil).
func ReadPyProject(src *source.Source) (*PyProject, error) {
	data, found, err := src.ReadOptional(PyProjectFile)
	if err != nil || !found {
		return nil, err
	}
	var raw pyprojectFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		slog.Debug("Malformed pyproject treated as absent", logfields.File(PyProjectFile), logfields.Error(err))
		return nil, nil
	}

	p := &PyProject{
		Name:        firstNonEmpty(raw.Project.Name, raw.Tool.Poetry.Name),
		Description: firstNonEmpty(raw.Project.Description, raw.Tool.Poetry.Description),
		License:     firstNonEmpty(tomlLicense(raw.Project.License), raw.Tool.Poetry.License),
	}
	for _, dep := range raw.Project.Dependencies {
		p.Dependencies = append(p.Dependencies, requirementName(dep))
	}
	for _, name := range sortedKeys(raw.Tool.Poetry.Dependencies) {
		if name == "python" {
			continue
		}
		p.Dependencies = append(p.Dependencies, name)
	}
	p.Scripts = append(sortedKeys(raw.Project.Scripts), sortedKeys(raw.Tool.Poetry.Scripts)...)
	return p, nil
}

// Cargo holds the Cargo.toml keys readmegen looks up.
type Cargo struct {
	Name         string
	Description  string
	License      string
	Dependencies []string
	Bins         []string
}

type cargoFile struct {
	Package struct {
		Name        string `toml:"name"`
		Description string `toml:"description"`
		License     string `toml:"license"`
	} `toml:"package"`
	Dependencies map[string]any `toml:"dependencies"`
	Bin          []struct {
		Name string `toml:"name"`
	} `toml:"bin"`
}

// ReadCargo parses Cargo.toml; absent or malformed yields (nil, nil).
func ReadCargo(src *source.Source) (*Cargo, error) {
	data, found, err := src.ReadOptional(CargoFile)
	if err != nil || !found {
		return nil, err
	}
	var raw cargoFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		slog.Debug("Malformed Cargo manifest treated as absent", logfields.File(CargoFile), logfields.Error(err))
		return nil, nil
	}
	c := &Cargo{
		Name:         raw.Package.Name,
		Description:  raw.Package.Description,
		License:      raw.Package.License,
		Dependencies: sortedKeys(raw.Dependencies),
	}
	for _, b := range raw.Bin {
		if b.Name != "" {
			c.Bins = append(c.Bins, b.Name)
		}
	}
	return c, nil
}

// Netlify holds the [build] settings of netlify.toml.
type Netlify struct {
	Command string
	Publish string
}

// ReadNetlify parses netlify.toml; absent or malformed yields (nil, nil).
func ReadNetlify(src *source.Source) (*Netlify, error) {
	data, found, err := src.ReadOptional(NetlifyFile)
	if err != nil || !found {
		return nil, err
	}
	var raw struct {
		Build struct {
			Command string `toml:"command"`
			Publish string `toml:"publish"`
		} `toml:"build"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		slog.Debug("Malformed netlify.toml treated as empty", logfields.File(NetlifyFile), logfields.Error(err))
		return &Netlify{}, nil
	}
	return &Netlify{Command: raw.Build.Command, Publish: raw.Build.Publish}, nil
}

func tomlLicense(v any) string {
	switch l := v.(type) {
	case string:
		return l
	case map[string]any:
		if text, ok := l["text"].(string); ok {
			return text
		}
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
