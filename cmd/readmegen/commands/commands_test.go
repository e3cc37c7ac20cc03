package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/readmegen/internal/config"
	ferrors "git.home.luguber.info/inful/readmegen/internal/foundation/errors"
	"git.home.luguber.info/inful/readmegen/internal/readme"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := &CLI{}
	g := NewGlobal(&out)
	parser, err := kong.New(cli, kong.Name("readmegen"), kong.Vars{"version": "test"}, kong.Bind(g))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	err = ctx.Run(cli)
	return out.String(), err
}

func projectDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"),
		[]byte(`{"name":"cli-demo","dependencies":{"react":"18"}}`), 0o644))
	return root
}

func TestGenerate_Stdout(t *testing.T) {
	root := projectDir(t)
	out, err := runCLI(t, "generate", root, "--stdout")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# "+filepath.Base(root)+"\n"))
	assert.Contains(t, out, "React Web Application")
	_, statErr := os.Stat(filepath.Join(root, "README.md"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_WritesAndIsIdempotent(t *testing.T) {
	root := projectDir(t)
	out, err := runCLI(t, "generate", root)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "wrote "))

	out, err = runCLI(t, "generate", root)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "unchanged "))
}

func TestGenerate_OutputOverride(t *testing.T) {
	root := projectDir(t)
	_, err := runCLI(t, "generate", root, "--output", "docs/OVERVIEW.md")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "docs", "OVERVIEW.md"))
}

func TestGenerate_MissingRoot(t *testing.T) {
	_, err := runCLI(t, "generate", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, 3, ferrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestCheck(t *testing.T) {
	root := projectDir(t)
	_, err := runCLI(t, "check", root)
	require.Error(t, err)
	assert.Equal(t, 1, ferrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))

	_, err = runCLI(t, "generate", root)
	require.NoError(t, err)
	out, err := runCLI(t, "check", root)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}

func TestInspect_JSON(t *testing.T) {
	root := projectDir(t)
	out, err := runCLI(t, "inspect", root, "--format", "json")
	require.NoError(t, err)

	var v struct {
		Profile struct {
			ProjectType struct {
				Label string `json:"label"`
			} `json:"project_type"`
			Dependencies []string `json:"dependencies"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "React Web Application", v.Profile.ProjectType.Label)
	assert.Equal(t, []string{"react"}, v.Profile.Dependencies)
}

func TestInspect_Headings(t *testing.T) {
	root := projectDir(t)
	out, err := runCLI(t, "inspect", root, "--headings")
	require.NoError(t, err)
	assert.Contains(t, out, "## "+readme.TOCTitle+"\n")
	assert.True(t, strings.HasSuffix(out, "## "+readme.TitleLicense+"\n"))
}

func TestInspect_Links(t *testing.T) {
	root := projectDir(t)
	out, err := runCLI(t, "inspect", root, "--links")
	require.NoError(t, err)
	assert.Contains(t, out, "inline\t#license\t"+readme.TitleLicense+"\n")

	_, err = runCLI(t, "inspect", root, "--links", "--headings")
	require.Error(t, err)
}

func TestInspect_YAML(t *testing.T) {
	out, err := runCLI(t, "inspect", projectDir(t))
	require.NoError(t, err)
	assert.Contains(t, out, "project_type:")
}

func TestInit(t *testing.T) {
	root := t.TempDir()
	_, err := runCLI(t, "init", root)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, config.DefaultFile))

	_, err = runCLI(t, "init", root)
	require.Error(t, err)
	_, err = runCLI(t, "init", root, "--force")
	require.NoError(t, err)
}

func TestConfigFileIsHonoured(t *testing.T) {
	root := projectDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, config.DefaultFile),
		[]byte("title: Custom Title\n"), 0o644))
	out, err := runCLI(t, "generate", root, "--stdout")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Custom Title\n"))
}

func TestCodespacesForcesRemoteDev(t *testing.T) {
	t.Setenv("CODESPACES", "true")
	out, err := runCLI(t, "generate", projectDir(t), "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "## "+readme.TitleRemoteDev)
}
