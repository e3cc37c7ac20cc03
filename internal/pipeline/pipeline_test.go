package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/readmegen/internal/classify"
	"git.home.luguber.info/inful/readmegen/internal/extract"
	ferrors "git.home.luguber.info/inful/readmegen/internal/foundation/errors"
	"git.home.luguber.info/inful/readmegen/internal/metrics"
	"git.home.luguber.info/inful/readmegen/internal/readme"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

type countingRecorder struct {
	mu       sync.Mutex
	stages   []string
	outcomes []metrics.RunOutcome
	sections int
}

func (c *countingRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stages = append(c.stages, stage)
}
func (c *countingRecorder) ObserveRunDuration(time.Duration) {}
func (c *countingRecorder) IncRunOutcome(o metrics.RunOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes = append(c.outcomes, o)
}
func (c *countingRecorder) SetSectionsIncluded(n int) { c.sections = n }

func sampleProject(t *testing.T) string {
	return writeTree(t, map[string]string{
		"package.json": `{
			"name": "sample",
			"main": "server.js",
			"scripts": {"start": "node server.js"},
			"dependencies": {"express": "4", "helmet": "7"},
			"devDependencies": {"jest": "29"}
		}`,
		"server.js":         "const app = require('express')()",
		"docs/guide.md":     "---\ntitle: Guide\n---\nUse the API.",
		"examples/basic.js": "console.log('hi')",
		".gitignore":        "node_modules/\n.env\n",
		"LICENSE":           "MIT License\n",
		"NOTES.md":          "Adds auth and a cache layer.",
	})
}

func TestRun_EmptyProject(t *testing.T) {
	root := t.TempDir()
	res, err := New(nil).Run(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, classify.TypeUnknown, res.Profile.ProjectType.Label)
	assert.Empty(t, res.Profile.TechStack)
	assert.Empty(t, res.Profile.Dependencies)
	assert.Contains(t, res.Markdown, "# "+filepath.Base(root))
	assert.Contains(t, res.Markdown, extract.OverviewPlaceholder)
	assert.Contains(t, res.Markdown, "## "+readme.TitleLicense+"\n\n"+readme.LicensePlaceholder)
	assert.NotContains(t, res.Markdown, "## "+readme.TitleTechStack)
}

func TestRun_MissingRoot(t *testing.T) {
	_, err := New(nil).Run(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &countingRecorder{}
	_, err := New(nil, WithRecorder(rec)).Run(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []metrics.RunOutcome{metrics.OutcomeFailed}, rec.outcomes)
}

func TestRun_RecordsStages(t *testing.T) {
	rec := &countingRecorder{}
	res, err := New(nil, WithRecorder(rec)).Run(context.Background(), sampleProject(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"collect", "extract", "classify", "synthesize", "compose"}, rec.stages)
	assert.Equal(t, []metrics.RunOutcome{metrics.OutcomeSuccess}, rec.outcomes)
	assert.Equal(t, len(res.Document.Entries()), rec.sections)
}

func TestRun_SampleProject(t *testing.T) {
	res, err := New(nil).Run(context.Background(), sampleProject(t))
	require.NoError(t, err)
	md := res.Markdown

	assert.Equal(t, "Express.js Backend", res.Profile.ProjectType.Label)
	assert.Contains(t, md, "- `express`")
	assert.Contains(t, md, "npm run dev")
	assert.Contains(t, md, "[Guide](./docs/guide.md)")
	assert.Contains(t, md, "### basic.js")
	assert.Contains(t, md, "**helmet**")
	assert.Contains(t, md, "licensed under the **MIT** license")
	assert.Contains(t, md, "Test frameworks: Jest")

	// canonical order of a few included sections
	order := []string{"## Project Type", "## Documentation", "## Tech Stack", "## Features", "## Usage Examples", "## Dependencies", "## Security", "## Setup", "## Running the Project", "## Testing", "## Ignored Files", "## License"}
	last := -1
	for _, h := range order {
		i := strings.Index(md, "\n"+h+"\n")
		require.NotEqual(t, -1, i, h)
		assert.Greater(t, i, last, h)
		last = i
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	root := sampleProject(t)
	g := New(nil)
	first, err := g.Generate(context.Background(), root)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWrite_FixedPoint(t *testing.T) {
	root := sampleProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"),
		[]byte("# sample\n\nA tiny express server.\n\n```bash\ncurl localhost\n```\n"), 0o644))
	g := New(nil)
	ctx := context.Background()

	res, changed, err := g.Write(ctx, root)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, res.Markdown, "A tiny express server.")

	second, _, err := g.Write(ctx, root)
	require.NoError(t, err)
	third, changedAgain, err := g.Write(ctx, root)
	require.NoError(t, err)
	assert.False(t, changedAgain)
	assert.Equal(t, second.Markdown, third.Markdown)

	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, third.Markdown, string(data))
	assert.True(t, strings.HasSuffix(string(data), extract.GeneratedMarker+"\n"))
	assert.Equal(t, 1, strings.Count(string(data), "## Project Type"))
}

func TestWrite_FeaturesFromCarriedOverText(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":             "# svc\n\nA GraphQL server.\n\n## Notes\n\nRuns in docker.\n",
		"readmegen.config.json": `{"additionalNotes": "Ships a websocket gateway."}`,
	})
	g := New(nil)
	ctx := context.Background()

	first, _, err := g.Write(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"GraphQL Support", "WebSocket Support", "Docker Support"}, first.Profile.Features)

	// The regenerated document is excluded from the scan; only text that
	// regeneration carries over keeps its features.
	second, _, err := g.Write(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"GraphQL Support", "WebSocket Support"}, second.Profile.Features)

	third, changed, err := g.Write(ctx, root)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, second.Profile.Features, third.Profile.Features)
}

func TestCheck(t *testing.T) {
	root := sampleProject(t)
	g := New(nil)
	ctx := context.Background()

	d, err := g.Check(ctx, root)
	require.NoError(t, err)
	assert.True(t, d.Missing)
	assert.True(t, d.Stale())
	require.Error(t, DriftError(d))

	_, _, err = g.Write(ctx, root)
	require.NoError(t, err)
	d, err = g.Check(ctx, root)
	require.NoError(t, err)
	assert.False(t, d.Stale())
	require.NoError(t, DriftError(d))

	require.NoError(t, os.WriteFile(filepath.Join(root, "Dockerfile"), []byte("FROM node"), 0o644))
	d, err = g.Check(ctx, root)
	require.NoError(t, err)
	assert.True(t, d.Stale())
	err = DriftError(d)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryDrift))
}

func TestFingerprint_IgnoresFrontMatter(t *testing.T) {
	body := "# Title\n\nText\n"
	assert.Equal(t, Fingerprint([]byte(body)), Fingerprint([]byte("---\nlayout: x\n---\n"+body)))
	assert.NotEqual(t, Fingerprint([]byte(body)), Fingerprint([]byte(body+"more\n")))
}

func TestProfile(t *testing.T) {
	p, c, err := New(nil).Profile(context.Background(), sampleProject(t))
	require.NoError(t, err)
	assert.Contains(t, p.TechStack, classify.StackExpress)
	assert.Equal(t, "server.js", p.MainEntry)
	require.Len(t, c.Docs.Folders, 1)
	assert.Equal(t, "docs", c.Docs.Folders[0].Dir)
}
