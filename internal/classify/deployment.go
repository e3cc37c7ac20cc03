package classify

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/signals"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// Workflow is one GitHub Actions workflow file.
type Workflow struct {
	File string `json:"file" yaml:"file"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Deployment lists detected deployment and CI targets.
type Deployment struct {
	Docker          bool             `json:"docker,omitempty" yaml:"docker,omitempty"`
	ComposeFile     string           `json:"compose_file,omitempty" yaml:"compose_file,omitempty"`
	ComposeServices []string         `json:"compose_services,omitempty" yaml:"compose_services,omitempty"`
	Workflows       []Workflow       `json:"workflows,omitempty" yaml:"workflows,omitempty"`
	Vercel          bool             `json:"vercel,omitempty" yaml:"vercel,omitempty"`
	Netlify         *signals.Netlify `json:"netlify,omitempty" yaml:"netlify,omitempty"`
}

// Empty reports whether no target was detected.
func (d Deployment) Empty() bool {
	return !d.Docker && d.ComposeFile == "" && len(d.Workflows) == 0 && !d.Vercel && d.Netlify == nil
}

// DetectDeployment reports Docker, compose, GitHub Actions, Vercel and Netlify markers.
func DetectDeployment(src *source.Source, s *signals.Signals) Deployment {
	d := Deployment{
		Docker:          s.HasRootName("Dockerfile"),
		ComposeFile:     s.ComposeFile,
		ComposeServices: s.ComposeServices,
		Vercel:          s.HasRootName("vercel.json"),
		Netlify:         s.Netlify,
	}
	for _, f := range filesUnder(s, workflowsDir) {
		ext := path.Ext(f)
		if strings.Count(f, "/") != 2 || (ext != ".yml" && ext != ".yaml") {
			continue
		}
		d.Workflows = append(d.Workflows, Workflow{File: path.Base(f), Name: signals.ReadWorkflowName(src, f)})
	}
	return d
}
