package signals

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// ManifestFile is the conventional Node.js manifest name.
const ManifestFile = "package.json"

// Manifest holds the package.json keys readmegen looks up. Object-valued keys
// keep their declaration order.
type Manifest struct {
	Name            string
	Description     string
	Main            string
	License         string
	Dependencies    []string
	DevDependencies []string
	Scripts         []string
	// BinPath is set when "bin" is a string; BinCommands when it is an object.
	BinPath     string
	BinCommands []string
	// VSCodeEngine is true when engines.vscode is declared.
	VSCodeEngine bool
	Contributes  []string
	Workspaces   []string
}

type rawManifest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Main            string          `json:"main"`
	License         json.RawMessage `json:"license"`
	Dependencies    json.RawMessage `json:"dependencies"`
	DevDependencies json.RawMessage `json:"devDependencies"`
	Scripts         json.RawMessage `json:"scripts"`
	Bin             json.RawMessage `json:"bin"`
	Engines         json.RawMessage `json:"engines"`
	Contributes     json.RawMessage `json:"contributes"`
	Workspaces      json.RawMessage `json:"workspaces"`
}

// ReadManifest parses dir/package.json. A missing or malformed manifest yields (nil, nil).
func ReadManifest(src *source.Source, dir string) (*Manifest, error) {
	name := path.Join(dir, ManifestFile)
	data, found, err := src.ReadOptional(name)
	if err != nil || !found {
		return nil, err
	}
	m, ok := ParseManifest(data)
	if !ok {
		slog.Debug("Malformed manifest treated as absent", logfields.File(name))
		return nil, nil
	}
	return m, nil
}

// ParseManifest decodes package.json content. ok is false for malformed JSON
// or a non-object document.
func ParseManifest(data []byte) (*Manifest, bool) {
	if !isObject(data) {
		return nil, false
	}
	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false
	}
	m := &Manifest{
		Name:            raw.Name,
		Description:     raw.Description,
		Main:            raw.Main,
		License:         licenseField(raw.License),
		Dependencies:    orderedKeys(raw.Dependencies),
		DevDependencies: orderedKeys(raw.DevDependencies),
		Scripts:         orderedKeys(raw.Scripts),
		Contributes:     orderedKeys(raw.Contributes),
		Workspaces:      workspaceGlobs(raw.Workspaces),
	}

	var binPath string
	if json.Unmarshal(raw.Bin, &binPath) == nil {
		m.BinPath = binPath
	} else {
		m.BinCommands = orderedKeys(raw.Bin)
	}

	var engines map[string]json.RawMessage
	if json.Unmarshal(raw.Engines, &engines) == nil {
		_, m.VSCodeEngine = engines["vscode"]
	}
	return m, true
}

// HasDependency reports whether name is a runtime dependency.
func (m *Manifest) HasDependency(name string) bool {
	if m == nil {
		return false
	}
	return contains(m.Dependencies, name)
}

// HasAnyDependency reports whether name is a runtime or development dependency.
func (m *Manifest) HasAnyDependency(name string) bool {
	if m == nil {
		return false
	}
	return contains(m.Dependencies, name) || contains(m.DevDependencies, name)
}

// HasBin reports whether the manifest declares executables.
func (m *Manifest) HasBin() bool {
	return m != nil && (m.BinPath != "" || len(m.BinCommands) > 0)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// isObject reports whether data starts with a JSON object. json.Unmarshal
// accepts null for a struct target.
func isObject(data []byte) bool {
	tok, err := json.NewDecoder(bytes.NewReader(data)).Token()
	return err == nil && tok == json.Delim('{')
}

// orderedKeys returns the keys of a JSON object in document order.
func orderedKeys(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return keys
		}
	}
	return keys
}

// workspaceGlobs accepts both the array form and the yarn {"packages": [...]} form.
func workspaceGlobs(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return list
	}
	var obj struct {
		Packages []string `json:"packages"`
	}
	if json.Unmarshal(raw, &obj) == nil {
		return obj.Packages
	}
	return nil
}

func licenseField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var obj struct {
		Type string `json:"type"`
	}
	if json.Unmarshal(raw, &obj) == nil {
		return obj.Type
	}
	return ""
}
