package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSecurity_LocalSecretsShortCircuit(t *testing.T) {
	_, s := project(map[string]string{
		".env":         "TOKEN=x",
		"package.json": `{"dependencies":{"jsonwebtoken":"9"}}`,
	})
	assert.Equal(t, "Sensitive configuration detected in `.env` file. **Do not commit secrets to version control.**", DetectSecurity(s))
}

func TestDetectSecurity_Library(t *testing.T) {
	_, s := project(map[string]string{"package.json": `{"dependencies":{"helmet":"7"}}`})
	assert.Contains(t, DetectSecurity(s), "**helmet**")

	_, s = project(map[string]string{"secrets/key.pem": "x"})
	assert.Contains(t, DetectSecurity(s), "`secrets/` folder")

	_, s = project(nil)
	assert.Empty(t, DetectSecurity(s))
}

func TestDetectI18n(t *testing.T) {
	_, s := project(map[string]string{"locales/en.json": "{}", "package.json": `{"dependencies":{"i18next":"23"}}`})
	assert.Equal(t, "This project supports internationalization (i18n) via a locales folder.", DetectI18n(s))

	_, s = project(map[string]string{"requirements.txt": "gettext\n"})
	assert.Equal(t, "Internationalization (i18n) support detected via gettext.", DetectI18n(s))

	_, s = project(nil)
	assert.Empty(t, DetectI18n(s))
}

func TestDetectTestTooling(t *testing.T) {
	_, s := project(map[string]string{
		"package.json": `{"devDependencies":{"jest":"29","nyc":"15"}}`,
		"codecov.yml":  "",
	})
	tt := DetectTestTooling(s)
	assert.Equal(t, []string{"Jest"}, tt.Frameworks)
	assert.Equal(t, []string{"nyc (Istanbul)", CoverageCodecov}, tt.Coverage)
	assert.True(t, tt.HasCoverage(CoverageCodecov))
	assert.False(t, tt.HasCoverage(CoverageCoveralls))
}

func TestDetectTestTooling_Go(t *testing.T) {
	_, s := project(map[string]string{
		"go.mod":               "module example.com/demo\n\nrequire github.com/stretchr/testify v1.9.0\n",
		"internal/x/x_test.go": "package x",
	})
	assert.Equal(t, []string{"Go testing", "Testify"}, DetectTestTooling(s).Frameworks)
}
