package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSetup(t *testing.T) {
	_, s := project(map[string]string{
		"package.json":     `{}`,
		"yarn.lock":        "",
		"requirements.txt": "flask\n",
		".env.example":     "API_KEY=\nPORT=3000\n",
	})
	st := DetectSetup(s, DetectTechStack(s), "demo")
	assert.Equal(t, []string{
		"git clone " + RepoURLPlaceholder,
		"cd demo",
		"yarn install",
		"pip install -r requirements.txt",
		"cp .env.example .env",
	}, st.Commands)
	assert.Equal(t, ".env.example", st.EnvFile)
	assert.Equal(t, []string{"API_KEY", "PORT"}, st.EnvKeys)
}

func TestDetectSetup_EmptyProject(t *testing.T) {
	_, s := project(nil)
	st := DetectSetup(s, nil, "")
	assert.Equal(t, []string{"git clone " + RepoURLPlaceholder, "cd " + ProjectFolderPlaceholder}, st.Commands)
}

func TestDependencies(t *testing.T) {
	_, s := project(map[string]string{
		"package.json":     `{"dependencies":{"express":"4","cors":"2"},"devDependencies":{"jest":"29"}}`,
		"requirements.txt": "# comment\nflask==3.0\n",
	})
	assert.Equal(t, []string{"express", "cors", "jest", "flask==3.0"}, Dependencies(s))

	_, s = project(nil)
	deps := Dependencies(s)
	require.NotNil(t, deps)
	assert.Empty(t, deps)
}

func TestDesignPrinciples(t *testing.T) {
	_, s := project(map[string]string{"src/index.ts": "", "test/a.test.ts": ""})
	assert.Equal(t, []string{"Type safety and maintainability", "Test-driven development", "Separation of concerns"},
		DesignPrinciples(s, DetectTechStack(s)))

	_, s = project(nil)
	assert.Equal(t, []string{PrinciplesPlaceholder}, DesignPrinciples(s, nil))
}

func TestDetectDeployment(t *testing.T) {
	src, s := project(map[string]string{
		"Dockerfile":                  "FROM scratch",
		"docker-compose.yml":          "services:\n  web: {}\n  db: {}\n",
		".github/workflows/ci.yml":    "name: CI\non: push\n",
		".github/workflows/notes.txt": "",
		".github/workflows/sub/x.yml": "name: nested\n",
		"netlify.toml":                "[build]\npublish = \"dist\"\n",
	})
	d := DetectDeployment(src, s)
	assert.True(t, d.Docker)
	assert.Equal(t, "docker-compose.yml", d.ComposeFile)
	assert.Equal(t, []string{"web", "db"}, d.ComposeServices)
	assert.Equal(t, []Workflow{{File: "ci.yml", Name: "CI"}}, d.Workflows)
	require.NotNil(t, d.Netlify)
	assert.Equal(t, "dist", d.Netlify.Publish)
	assert.False(t, d.Vercel)

	src, s = project(nil)
	assert.True(t, DetectDeployment(src, s).Empty())
}

func TestDetectLicense(t *testing.T) {
	src, s := project(map[string]string{"LICENSE": "MIT License\n\nCopyright (c) 2024"})
	assert.Equal(t, License{File: "LICENSE", Name: "MIT"}, DetectLicense(src, s))

	src, s = project(map[string]string{"COPYING": "custom terms", "package.json": `{"license":"ISC"}`})
	assert.Equal(t, License{File: "COPYING", Name: "ISC"}, DetectLicense(src, s))

	src, s = project(map[string]string{"Cargo.toml": "[package]\nname = \"crab\"\nlicense = \"Apache-2.0\"\n"})
	assert.Equal(t, License{Name: "Apache-2.0"}, DetectLicense(src, s))

	src, s = project(nil)
	assert.Equal(t, License{}, DetectLicense(src, s))
}

func TestClassify_EmptyProject(t *testing.T) {
	src, s := project(nil)
	p := Classify(src, s, Options{})
	assert.Equal(t, "demo", p.Name)
	assert.Equal(t, TypeUnknown, p.ProjectType.Label)
	assert.Empty(t, p.TechStack)
	assert.Empty(t, p.Dependencies)
	assert.Nil(t, p.Monorepo)
	assert.Equal(t, DefaultEntry, p.MainEntry)
	assert.Equal(t, RunPlaceholder, p.RunCommand)
}
