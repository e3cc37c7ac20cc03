package classify

import (
	"log/slog"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/signals"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// Profile is the aggregate classification of one project.
type Profile struct {
	Name         string      `json:"name" yaml:"name"`
	ProjectType  ProjectType `json:"project_type" yaml:"project_type"`
	TechStack    []string    `json:"tech_stack" yaml:"tech_stack"`
	Dependencies []string    `json:"dependencies" yaml:"dependencies"`
	Features     []string    `json:"features" yaml:"features"`
	MainEntry    string      `json:"main_entry" yaml:"main_entry"`
	RunCommand   string      `json:"run_command" yaml:"run_command"`
	Monorepo     *Monorepo   `json:"monorepo,omitempty" yaml:"monorepo,omitempty"`
	Testing      TestTooling `json:"testing" yaml:"testing"`
	I18n         string      `json:"i18n,omitempty" yaml:"i18n,omitempty"`
	Security     string      `json:"security,omitempty" yaml:"security,omitempty"`
	Setup        Setup       `json:"setup" yaml:"setup"`
	Principles   []string    `json:"design_principles" yaml:"design_principles"`
	Deployment   Deployment  `json:"deployment" yaml:"deployment"`
	License      License     `json:"license" yaml:"license"`
	// RepoSlug is "owner/name" of the origin remote, when known.
	RepoSlug string `json:"repo_slug,omitempty" yaml:"repo_slug,omitempty"`
}

// Options tunes classification.
type Options struct {
	Features FeatureOptions
}

// Classify runs every classifier over the collected signals. It never fails.
func Classify(src *source.Source, s *signals.Signals, opts Options) *Profile {
	p := &Profile{
		Name:         src.Name(),
		ProjectType:  DetectProjectType(s),
		TechStack:    DetectTechStack(s),
		Dependencies: Dependencies(s),
		Features:     DetectFeatures(src, s, opts.Features),
		MainEntry:    MainEntry(s),
		Testing:      DetectTestTooling(s),
		I18n:         DetectI18n(s),
		Security:     DetectSecurity(s),
		Deployment:   DetectDeployment(src, s),
		License:      DetectLicense(src, s),
	}
	if m := DetectMonorepo(src, s); !m.Empty() {
		p.Monorepo = m
	}
	p.RunCommand = RunCommand(s, p.ProjectType, p.TechStack, p.MainEntry)
	p.Setup = DetectSetup(s, p.TechStack, p.Name)
	p.Principles = DesignPrinciples(s, p.TechStack)
	if s.Remote != nil {
		p.RepoSlug = s.Remote.Slug
	}

	slog.Debug("Project classified",
		logfields.ProjectType(p.ProjectType.String()),
		logfields.Count(len(p.TechStack)),
		slog.Int("dependencies", len(p.Dependencies)),
		slog.Int("features", len(p.Features)))
	return p
}
