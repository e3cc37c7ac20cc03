package extract

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/readmegen/internal/signals"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

func file(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

// lockedFS fails to open one file with a permission error.
type lockedFS struct {
	fstest.MapFS
	locked string
}

func (l lockedFS) Open(name string) (fs.File, error) {
	if name == l.locked {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return l.MapFS.Open(name)
}

func TestOverview(t *testing.T) {
	assert.Equal(t, OverviewPlaceholder, Overview(nil))

	src := source.New(fstest.MapFS{"README.md": file("---\ntitle: x\n---\n# Widget\n\nWidget makes widgets.\nFast ones.\n\n## Install\n")}, "")
	prior, err := ReadPrior(src, "README.md")
	require.NoError(t, err)
	require.NotNil(t, prior)
	assert.False(t, prior.Generated)
	assert.Equal(t, "Widget makes widgets.\nFast ones.", Overview(prior))

	headingOnly := source.New(fstest.MapFS{"README.md": file("# Widget\n")}, "")
	prior, err = ReadPrior(headingOnly, "README.md")
	require.NoError(t, err)
	assert.Equal(t, OverviewPlaceholder, Overview(prior))
}

func TestUsageExamples(t *testing.T) {
	long := strings.Repeat("é", 20)
	src := source.New(fstest.MapFS{
		"examples/a.js":     file("console.log(1)\n"),
		"examples/b.py":     file(long),
		"examples/c.png":    file("binary"),
		"examples/sub/d.ts": file("nested is not listed"),
		"README.md":         file("# X\n\n```bash\nnpm i x\n```\n\n```js\nx()\n```\n"),
	}, "")
	prior, err := ReadPrior(src, "README.md")
	require.NoError(t, err)

	ex := UsageExamples(src, prior, 10)
	require.Len(t, ex.Files, 2)
	assert.Equal(t, "a.js", ex.Files[0].Name)
	assert.Equal(t, "javascript", ex.Files[0].Lang)
	assert.Equal(t, "console.lo", ex.Files[0].Content)
	assert.True(t, ex.Files[0].Truncated)
	assert.Equal(t, strings.Repeat("é", 10), ex.Files[1].Content, "truncation counts characters, not bytes")
	require.Len(t, ex.Snippets, 2)
	assert.Equal(t, "npm i x\n", ex.Snippets[0].Code)
}

func TestUsageExamples_UnreadableFileIsSkipped(t *testing.T) {
	src := source.New(lockedFS{
		MapFS: fstest.MapFS{
			"examples/a.js": file("ok()\n"),
			"examples/b.js": file("secret()\n"),
		},
		locked: "examples/b.js",
	}, "")

	ex := UsageExamples(src, nil, 500)
	require.Len(t, ex.Files, 1)
	assert.Equal(t, "a.js", ex.Files[0].Name)
	assert.Equal(t, "ok()\n", ex.Files[0].Content)

	only := source.New(lockedFS{MapFS: fstest.MapFS{"examples/x.js": file("x")}, locked: "examples/x.js"}, "")
	assert.True(t, UsageExamples(only, nil, 500).Empty())
}

func TestUsageExamples_GeneratedPriorOnlyKeepsExampleSubsection(t *testing.T) {
	readme := "# X\n\nText\n\n## Setup\n\n```bash\ngit clone x\n```\n\n## Usage Examples\n\n### " + ReadmeExamplesHeading +
		"\n\n#### Example 1\n\n```js\nx()\n```\n\n## License\n\nMIT\n\n" + GeneratedMarker + "\n"
	src := source.New(fstest.MapFS{"README.md": file(readme)}, "")
	prior, err := ReadPrior(src, "README.md")
	require.NoError(t, err)
	require.True(t, prior.Generated)

	ex := UsageExamples(src, prior, 500)
	require.Len(t, ex.Snippets, 1)
	assert.Equal(t, "x()\n", ex.Snippets[0].Code)
}

func TestDocumentationAndMedia(t *testing.T) {
	src := source.New(fstest.MapFS{
		"docs/guide.md":         file("---\ntitle: User Guide\n---\nbody"),
		"docs/api.md":           file("# API Reference\n"),
		"docs/notes.txt":        file("skip"),
		"documentation/faq.md":  file("no heading"),
		"openapi.yaml":          file("openapi: 3.0.0"),
		"screenshots/home.PNG":  file(""),
		"screenshots/notes.txt": file(""),
		"demo.mp4":              file(""),
	}, "")

	d := Documentation(src)
	require.Len(t, d.Folders, 2)
	assert.Equal(t, []DocLink{{Title: "API Reference", Path: "docs/api.md"}, {Title: "User Guide", Path: "docs/guide.md"}}, d.Folders[0].Files)
	assert.Equal(t, []DocLink{{Title: "faq.md", Path: "documentation/faq.md"}}, d.Folders[1].Files)
	assert.Equal(t, []string{"openapi.yaml"}, d.APISpecs)

	m := FindMedia(src)
	assert.Equal(t, []string{"screenshots/home.PNG"}, m.Screenshots)
	assert.Equal(t, []string{"demo.mp4"}, m.Demos)
}

func TestCLIUsage(t *testing.T) {
	src := source.New(fstest.MapFS{
		"package.json":     file(`{"name": "widget", "bin": "./bin/widget.js"}`),
		"go.mod":           file("module example.com/w\n"),
		"cmd/wctl/main.go": file("package main"),
		"cmd/lib/lib.go":   file("package lib"),
	}, "")
	s := signals.Collect(src)
	cmds := CLIUsage(src, s)
	assert.Equal(t, []CLICommand{
		{Name: "widget", Invocation: "npx widget [options]"},
		{Name: "wctl", Invocation: "go run ./cmd/wctl [flags]"},
	}, cmds)
}

func TestExtract_CustomSectionsAndCommunity(t *testing.T) {
	src := source.New(fstest.MapFS{
		"readmegen.config.json":           file(`{"customSections": [{"title": "Roadmap", "content": "soon"}], "additionalNotes": "thanks"}`),
		".github/CONTRIBUTING.md":         file(""),
		".devcontainer/devcontainer.json": file("{}"),
		".gitignore":                      file("dist\n# comment\n.env\n"),
	}, "")
	c := Extract(src, signals.Collect(src), Options{Output: "README.md", CharBudget: 500})
	assert.Equal(t, OverviewPlaceholder, c.Overview)
	require.Len(t, c.Custom, 1)
	assert.Equal(t, "Roadmap", c.Custom[0].Title)
	assert.Equal(t, "thanks", c.Notes)
	assert.Equal(t, ".github/CONTRIBUTING.md", c.Community.Contributing)
	assert.Empty(t, c.Community.Conduct)
	assert.Equal(t, ".devcontainer/devcontainer.json", c.RemoteDev.Devcontainer)
	assert.Equal(t, []string{"dist", ".env"}, c.Ignored)
}
