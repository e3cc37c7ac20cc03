package extract

import (
	"log/slog"

	"git.home.luguber.info/inful/readmegen/internal/config"
	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/signals"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// Content is everything extracted for one run.
type Content struct {
	Prior     *Prior           `json:"-" yaml:"-"`
	Overview  string           `json:"overview" yaml:"overview"`
	Examples  Examples         `json:"examples" yaml:"examples"`
	Docs      Docs             `json:"docs" yaml:"docs"`
	Media     Media            `json:"media" yaml:"media"`
	Custom    []config.Section `json:"custom_sections,omitempty" yaml:"custom_sections,omitempty"`
	Notes     string           `json:"additional_notes,omitempty" yaml:"additional_notes,omitempty"`
	CLI       []CLICommand     `json:"cli,omitempty" yaml:"cli,omitempty"`
	Community Community        `json:"community" yaml:"community"`
	RemoteDev RemoteDev        `json:"remote_dev" yaml:"remote_dev"`
	// Ignored are the literal ignore patterns in file order.
	Ignored []string `json:"ignored,omitempty" yaml:"ignored,omitempty"`
}

// Options tunes extraction.
type Options struct {
	// Output is the document path; the previous document is read from it.
	Output     string
	CharBudget int
	RemoteDev  bool
}

// Extract runs every extractor. Unreadable sources degrade to absent content.
func Extract(src *source.Source, s *signals.Signals, opts Options) *Content {
	prior, err := ReadPrior(src, opts.Output)
	if err != nil {
		slog.Warn("Previous document unreadable", logfields.File(opts.Output), logfields.Error(err))
	}

	c := &Content{
		Prior:     prior,
		Overview:  Overview(prior),
		Examples:  UsageExamples(src, prior, opts.CharBudget),
		Docs:      Documentation(src),
		Media:     FindMedia(src),
		CLI:       CLIUsage(src, s),
		Community: CommunityFiles(src),
		RemoteDev: RemoteDevSupport(src, opts.RemoteDev),
	}
	if s.Ignore != nil {
		c.Ignored = s.Ignore.Values()
	}

	project, err := config.LoadProject(src)
	if err != nil {
		slog.Warn("Project config unreadable", logfields.Error(err))
	}
	if project != nil {
		c.Custom = project.CustomSections
		c.Notes = project.AdditionalNotes
	}
	return c
}
