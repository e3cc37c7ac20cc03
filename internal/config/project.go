package config

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// ProjectFiles are the per-project content files, probed in order.
var ProjectFiles = []string{"readmegen.config.json", "readmegen.config.yaml"}

// Section is a user-supplied document section.
type Section struct {
	Title   string `json:"title" yaml:"title" validate:"required,notblank"`
	Content string `json:"content" yaml:"content" validate:"required,notblank"`
}

// Project is user-supplied document content. Unknown keys are ignored.
type Project struct {
	File            string
	CustomSections  []Section
	AdditionalNotes string
}

// LoadProject reads the first project file present. Absent or malformed files
// yield (nil, nil); entries that are not a {title, content} pair with both
// fields set to non-blank text are skipped. Only an unreadable file is an error.
func LoadProject(src *source.Source) (*Project, error) {
	for _, name := range ProjectFiles {
		data, found, err := src.ReadOptional(name)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		var p *Project
		if strings.HasSuffix(name, ".json") {
			p = parseProjectJSON(data)
		} else {
			p = parseProjectYAML(data)
		}
		if p == nil {
			slog.Warn("Malformed project config treated as absent", logfields.File(name))
			return nil, nil
		}
		p.File = name
		return p, nil
	}
	return nil, nil
}

func parseProjectJSON(data []byte) *Project {
	var raw struct {
		CustomSections  json.RawMessage `json:"customSections"`
		AdditionalNotes json.RawMessage `json:"additionalNotes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	p := &Project{}
	var items []json.RawMessage
	_ = json.Unmarshal(raw.CustomSections, &items)
	for _, item := range items {
		var s Section
		if json.Unmarshal(item, &s) == nil {
			p.addSection(s)
		}
	}
	var notes string
	if json.Unmarshal(raw.AdditionalNotes, &notes) == nil {
		p.AdditionalNotes = notes
	}
	return p
}

func parseProjectYAML(data []byte) *Project {
	var raw struct {
		CustomSections  []yaml.Node `yaml:"customSections"`
		AdditionalNotes yaml.Node   `yaml:"additionalNotes"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil
	}
	p := &Project{}
	for i := range raw.CustomSections {
		var s Section
		if raw.CustomSections[i].Decode(&s) == nil {
			p.addSection(s)
		}
	}
	if raw.AdditionalNotes.Kind == yaml.ScalarNode && raw.AdditionalNotes.Tag != "!!null" {
		p.AdditionalNotes = raw.AdditionalNotes.Value
	}
	return p
}

var sectionValidator = validator.New()

func (p *Project) addSection(s Section) {
	if err := sectionValidator.Struct(s); err != nil {
		slog.Debug("Skipping incomplete custom section", logfields.Section(s.Title), logfields.Error(err))
		return
	}
	p.CustomSections = append(p.CustomSections, s)
}
