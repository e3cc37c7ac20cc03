package signals

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/readmegen/internal/source"
)

func TestParseManifest_OrderedKeys(t *testing.T) {
	m, ok := ParseManifest([]byte(`{
		"name": "demo",
		"main": "dist/index.js",
		"license": "MIT",
		"dependencies": {"zod": "^3", "express": "^4", "axios": "^1"},
		"devDependencies": {"jest": "^29", "typescript": "^5"},
		"scripts": {"start": "node .", "build": "tsc"}
	}`))
	require.True(t, ok)
	assert.Equal(t, "demo", m.Name)
	assert.Equal(t, "MIT", m.License)
	assert.Equal(t, []string{"zod", "express", "axios"}, m.Dependencies)
	assert.Equal(t, []string{"jest", "typescript"}, m.DevDependencies)
	assert.Equal(t, []string{"start", "build"}, m.Scripts)
	assert.True(t, m.HasDependency("express"))
	assert.False(t, m.HasDependency("jest"))
	assert.True(t, m.HasAnyDependency("jest"))
}

func TestParseManifest_BinForms(t *testing.T) {
	single, ok := ParseManifest([]byte(`{"bin": "./bin/tool.js"}`))
	require.True(t, ok)
	assert.Equal(t, "./bin/tool.js", single.BinPath)
	assert.True(t, single.HasBin())

	multi, ok := ParseManifest([]byte(`{"bin": {"alpha": "a.js", "beta": "b.js"}}`))
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "beta"}, multi.BinCommands)
	assert.Empty(t, multi.BinPath)

	none, ok := ParseManifest([]byte(`{}`))
	require.True(t, ok)
	assert.False(t, none.HasBin())
}

func TestParseManifest_ExtensionAndWorkspaces(t *testing.T) {
	m, ok := ParseManifest([]byte(`{
		"engines": {"vscode": "^1.80.0"},
		"contributes": {"commands": [], "keybindings": []},
		"workspaces": {"packages": ["packages/*", "apps/*"]}
	}`))
	require.True(t, ok)
	assert.True(t, m.VSCodeEngine)
	assert.Equal(t, []string{"commands", "keybindings"}, m.Contributes)
	assert.Equal(t, []string{"packages/*", "apps/*"}, m.Workspaces)

	arr, ok := ParseManifest([]byte(`{"workspaces": ["libs/*"], "license": {"type": "ISC"}}`))
	require.True(t, ok)
	assert.Equal(t, []string{"libs/*"}, arr.Workspaces)
	assert.Equal(t, "ISC", arr.License)
}

func TestReadManifest_MalformedIsAbsent(t *testing.T) {
	src := source.New(fstest.MapFS{"package.json": {Data: []byte(`{"name": `)}}, "")
	m, err := ReadManifest(src, ".")
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = ReadManifest(source.New(fstest.MapFS{}, ""), ".")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestParseManifest_NonObject(t *testing.T) {
	for _, in := range []string{"null", "  null\n", "[]", `"name"`, "42", ""} {
		m, ok := ParseManifest([]byte(in))
		assert.False(t, ok, in)
		assert.Nil(t, m, in)
	}

	src := source.New(fstest.MapFS{"package.json": {Data: []byte("null")}}, "")
	m, err := ReadManifest(src, ".")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestParseRequirements(t *testing.T) {
	r := ParseRequirements("# deps\nFlask==2.3.0\n\nrequests>=2\npytest-cov ; python_version>'3'\nDjango[bcrypt]\n")
	assert.Equal(t, []string{"Flask==2.3.0", "requests>=2", "pytest-cov ; python_version>'3'", "Django[bcrypt]"}, r.Lines)
	assert.Equal(t, []string{"flask", "requests", "pytest-cov", "django"}, r.Names)
	assert.True(t, r.Has("Flask"))
	assert.False(t, r.Has("fastapi"))

	var absent *Requirements
	assert.False(t, absent.Has("flask"))
}
