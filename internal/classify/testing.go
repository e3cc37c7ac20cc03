package classify

import (
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/signals"
	"git.home.luguber.info/inful/readmegen/internal/util/sets"
)

// Coverage service labels that get a badge.
const (
	CoverageCodecov   = "Codecov"
	CoverageCoveralls = "Coveralls"
)

// TestTooling lists detected test frameworks and coverage tools.
type TestTooling struct {
	Frameworks []string `json:"frameworks,omitempty" yaml:"frameworks,omitempty"`
	Coverage   []string `json:"coverage,omitempty" yaml:"coverage,omitempty"`
}

// Empty reports whether nothing was detected.
func (t TestTooling) Empty() bool {
	return len(t.Frameworks) == 0 && len(t.Coverage) == 0
}

// HasCoverage reports whether label is among the coverage tools.
func (t TestTooling) HasCoverage(label string) bool {
	return contains(t.Coverage, label)
}

type libLabel struct{ key, label string }

var testLibs = []libLabel{
	{"jest", "Jest"},
	{"mocha", "Mocha"},
	{"chai", "Chai"},
	{"ava", "AVA"},
	{"vitest", "Vitest"},
	{"pytest", "Pytest"},
	{"unittest", "Python unittest"},
	{"nose", "Nose"},
	{"tap", "TAP"},
}

var coverageLibs = []libLabel{
	{"nyc", "nyc (Istanbul)"},
	{"coverage", "coverage.py"},
	{"pytest-cov", "coverage.py"},
	{"c8", "c8"},
	{"codecov", CoverageCodecov},
	{"coveralls", CoverageCoveralls},
}

var testConfigFiles = []struct {
	name     string
	label    string
	coverage bool
}{
	{"jest.config.js", "Jest", false},
	{"jest.config.ts", "Jest", false},
	{"jest.config.cjs", "Jest", false},
	{"jest.config.mjs", "Jest", false},
	{"vitest.config.ts", "Vitest", false},
	{"vitest.config.js", "Vitest", false},
	{".mocharc.json", "Mocha", false},
	{".mocharc.yml", "Mocha", false},
	{"mocha.opts", "Mocha", false},
	{"pytest.ini", "Pytest", false},
	{".coveragerc", "coverage.py", true},
	{"codecov.yml", CoverageCodecov, true},
	{".codecov.yml", CoverageCodecov, true},
	{".coveralls.yml", CoverageCoveralls, true},
}

// DetectTestTooling inspects dependency keys of every manifest, then
// conventional config file names, then Go test files. Labels are deduplicated.
func DetectTestTooling(s *signals.Signals) TestTooling {
	frameworks := sets.NewOrdered[string]()
	coverage := sets.NewOrdered[string]()

	hasDep := func(key string) bool {
		if s.Manifest.HasAnyDependency(key) || s.Requirements.Has(key) {
			return true
		}
		return s.PyProject != nil && contains(s.PyProject.Dependencies, key)
	}
	for _, lib := range testLibs {
		if hasDep(lib.key) {
			frameworks.Add(lib.label)
		}
	}
	for _, lib := range coverageLibs {
		if hasDep(lib.key) {
			coverage.Add(lib.label)
		}
	}

	for _, cf := range testConfigFiles {
		if !s.HasRootName(cf.name) {
			continue
		}
		if cf.coverage {
			coverage.Add(cf.label)
		} else {
			frameworks.Add(cf.label)
		}
	}

	for _, f := range s.Files {
		if strings.HasSuffix(f, "_test.go") {
			frameworks.Add("Go testing")
			break
		}
	}
	if s.GoModule.HasRequire("github.com/stretchr/testify") {
		frameworks.Add("Testify")
	}

	return TestTooling{Frameworks: frameworks.Values(), Coverage: coverage.Values()}
}
