package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/readmegen/internal/foundation/errors"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

func TestResolve_DefaultsWhenAbsent(t *testing.T) {
	cfg, err := Resolve(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestResolve_ExplicitMissingIsConfigError(t *testing.T) {
	_, err := Resolve(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoad_PartialFileGetsDefaultsAndEnvExpansion(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("READMEGEN_TITLE", "Widget Service")
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("title: ${READMEGEN_TITLE}\nfeature_scan: source\ncollapse_threshold: 3\n"), 0o600))

	cfg, err := Resolve(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "Widget Service", cfg.Title)
	assert.Equal(t, FeatureScanSource, cfg.FeatureScan)
	assert.Equal(t, 3, cfg.CollapseThreshold)
	assert.Equal(t, "README.md", cfg.Output)
	assert.Equal(t, 500, cfg.ExampleCharBudget)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"unknown scan scope": "feature_scan: everything\n",
		"negative threshold": "collapse_threshold: -1\n",
		"not yaml":           "output: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, ferrors.CategoryConfig, ferrors.GetCategory(err))
		})
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	require.NoError(t, Init(path, true))
}

func TestLoadProject_JSON(t *testing.T) {
	src := source.New(fstest.MapFS{"readmegen.config.json": {Data: []byte(`{
		"customSections": [
			{"title": "Roadmap", "content": "- v2"},
			{"title": "No content"},
			{"title": "   ", "content": "blank title"},
			{"title": "Blank content", "content": " \n\t"},
			"not an object",
			{"title": "FAQ", "content": "Ask away", "extra": true}
		],
		"additionalNotes": "Built with care.",
		"somethingNew": 1
	}`)}}, "")

	p, err := LoadProject(src)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "readmegen.config.json", p.File)
	assert.Equal(t, []Section{{Title: "Roadmap", Content: "- v2"}, {Title: "FAQ", Content: "Ask away"}}, p.CustomSections)
	assert.Equal(t, "Built with care.", p.AdditionalNotes)
}

func TestLoadProject_YAMLFallbackAndMalformed(t *testing.T) {
	src := source.New(fstest.MapFS{"readmegen.config.yaml": {Data: []byte("customSections:\n  - title: Roadmap\n    content: soon\nadditionalNotes: ~\n")}}, "")
	p, err := LoadProject(src)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []Section{{Title: "Roadmap", Content: "soon"}}, p.CustomSections)
	assert.Empty(t, p.AdditionalNotes)

	bad := source.New(fstest.MapFS{"readmegen.config.json": {Data: []byte(`{"customSections": [`)}}, "")
	p, err = LoadProject(bad)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = LoadProject(source.New(fstest.MapFS{}, ""))
	require.NoError(t, err)
	assert.Nil(t, p)
}
