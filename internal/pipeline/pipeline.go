package pipeline

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/readmegen/internal/classify"
	"git.home.luguber.info/inful/readmegen/internal/config"
	"git.home.luguber.info/inful/readmegen/internal/extract"
	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/metrics"
	"git.home.luguber.info/inful/readmegen/internal/readme"
	"git.home.luguber.info/inful/readmegen/internal/signals"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// StageName identifies a pipeline stage in logs and metrics.
type StageName string

const (
	StageCollect    StageName = "collect"
	StageExtract    StageName = "extract"
	StageClassify   StageName = "classify"
	StageSynthesize StageName = "synthesize"
	StageCompose    StageName = "compose"
)

// Result is the outcome of one successful run.
type Result struct {
	Root     string
	Profile  *classify.Profile
	Content  *extract.Content
	Document readme.Document
	// Markdown is the composed document text.
	Markdown string
}

// Generator runs the pipeline with a fixed configuration.
type Generator struct {
	cfg      *config.Config
	recorder metrics.Recorder
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder reports stage and run timings to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// New returns a Generator. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Generator{cfg: cfg, recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the configuration the generator runs with.
func (g *Generator) Config() *config.Config { return g.cfg }

// Run executes every stage against root. The only failures are an invalid
// root and cancellation; unreadable project files degrade to absent signals.
func (g *Generator) Run(ctx context.Context, root string) (res *Result, err error) {
	start := time.Now()
	defer func() {
		g.recorder.ObserveRunDuration(time.Since(start))
		if err != nil {
			g.recorder.IncRunOutcome(metrics.OutcomeFailed)
			return
		}
		g.recorder.IncRunOutcome(metrics.OutcomeSuccess)
	}()

	src, err := source.Open(root)
	if err != nil {
		return nil, err
	}
	res = &Result{Root: src.Root()}

	var sig *signals.Signals
	stages := []struct {
		name StageName
		fn   func()
	}{
		{StageCollect, func() { sig = signals.Collect(src) }},
		{StageExtract, func() {
			res.Content = extract.Extract(src, sig, extract.Options{
				Output:     g.cfg.Output,
				CharBudget: g.cfg.ExampleCharBudget,
				RemoteDev:  g.cfg.RemoteDev,
			})
		}},
		{StageClassify, func() {
			res.Profile = classify.Classify(src, sig, classify.Options{Features: g.featureOptions(res.Content)})
		}},
		{StageSynthesize, func() {
			res.Document = readme.Synthesize(readme.Input{
				Title:             g.title(src),
				Profile:           res.Profile,
				Content:           res.Content,
				CollapseThreshold: g.cfg.CollapseThreshold,
			})
			for _, s := range res.Document.Sections {
				if !s.Included() {
					slog.Debug("Section omitted", logfields.Section(s.Key))
				}
			}
		}},
		{StageCompose, func() { res.Markdown = res.Document.Render() }},
	}
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.runStage(st.name, st.fn)
	}

	included := len(res.Document.Entries())
	g.recorder.SetSectionsIncluded(included)
	slog.Info("README generated",
		logfields.Root(res.Root),
		logfields.ProjectType(res.Profile.ProjectType.String()),
		logfields.Count(included),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return res, nil
}

// Generate runs the pipeline and returns only the composed document.
func (g *Generator) Generate(ctx context.Context, root string) (string, error) {
	res, err := g.Run(ctx, root)
	if err != nil {
		return "", err
	}
	return res.Markdown, nil
}

// Profile runs the pipeline and returns the classification and extracted
// content that the document was built from.
func (g *Generator) Profile(ctx context.Context, root string) (*classify.Profile, *extract.Content, error) {
	res, err := g.Run(ctx, root)
	if err != nil {
		return nil, nil, err
	}
	return res.Profile, res.Content, nil
}

func (g *Generator) runStage(name StageName, fn func()) {
	start := time.Now()
	fn()
	d := time.Since(start)
	g.recorder.ObserveStageDuration(string(name), d)
	slog.Debug("Stage complete", logfields.Stage(string(name)), logfields.DurationMS(float64(d.Microseconds())/1000))
}

// featureOptions excludes a previously generated document from the feature
// scan so that regenerating converges instead of feeding on its own output.
// The user-authored parts that regeneration carries over (the overview, custom
// sections and notes) are scanned as text instead.
func (g *Generator) featureOptions(c *extract.Content) classify.FeatureOptions {
	opts := classify.FeatureOptions{
		Scope:    classify.FeatureScan(g.cfg.FeatureScan),
		MaxFiles: g.cfg.MaxScanFiles,
		MaxBytes: g.cfg.MaxFileBytes,
	}
	for _, cs := range c.Custom {
		opts.Texts = append(opts.Texts, cs.Content)
	}
	if c.Notes != "" {
		opts.Texts = append(opts.Texts, c.Notes)
	}
	if prior := c.Prior; prior != nil && prior.Generated {
		opts.Exclude = []string{prior.Path}
		if c.Overview != extract.OverviewPlaceholder {
			opts.Texts = append(opts.Texts, c.Overview)
		}
	}
	return opts
}

func (g *Generator) title(src *source.Source) string {
	if g.cfg.Title != "" {
		return g.cfg.Title
	}
	return src.Name()
}
