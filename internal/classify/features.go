package classify

import (
	"log/slog"
	"path"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/signals"
	"git.home.luguber.info/inful/readmegen/internal/source"
	"git.home.luguber.info/inful/readmegen/internal/util/sets"
)

// FeatureScan names the set of files scanned for feature keywords.
type FeatureScan string

const (
	// ScanDocs scans markdown files at the root that are not listed in .gitignore.
	ScanDocs FeatureScan = "docs"
	// ScanSource scans files under conventional source folders.
	ScanSource FeatureScan = "source"
)

// SourceDirs are the root folders scanned when the scope is ScanSource.
var SourceDirs = []string{"src", "lib", "app", "pkg", "internal", "cmd"}

var sourceExts = sets.New(
	".go", ".ts", ".tsx", ".js", ".jsx", ".mjs", ".py", ".rs", ".rb",
	".java", ".kt", ".cs", ".php", ".swift", ".vue", ".svelte",
)

type keyword struct {
	label string
	re    *regexp.Regexp
}

func kw(key, label string) keyword {
	return keyword{label: label, re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`)}
}

var featureKeywords = []keyword{
	kw("auth", "Authentication"),
	kw("login", "Login System"),
	kw("register", "Registration"),
	kw("api", "API Endpoints"),
	kw("database", "Database Integration"),
	kw("graphql", "GraphQL Support"),
	kw("websocket", "WebSocket Support"),
	kw("cache", "Caching"),
	kw("test", "Testing"),
	kw("i18n", "Internationalization"),
	kw("docker", "Docker Support"),
	kw("ci", "CI/CD Integration"),
}

// FeatureOptions bounds the feature scan.
type FeatureOptions struct {
	Scope FeatureScan
	// MaxFiles caps the number of files read in ScanSource scope.
	MaxFiles int
	// MaxBytes caps the bytes read per file in ScanSource scope.
	MaxBytes int64
	// Exclude lists root-relative files never scanned, such as a previously
	// generated document.
	Exclude []string
	// Texts is user-authored prose scanned in ScanDocs scope in addition to
	// the files, such as configured notes and the carried-over overview.
	Texts []string
}

// DetectFeatures reports each keyword label at most once, in table order,
// regardless of how many files matched. Unreadable files are skipped.
func DetectFeatures(src *source.Source, s *signals.Signals, opts FeatureOptions) []string {
	var files []string
	maxBytes := int64(-1)
	switch opts.Scope {
	case ScanSource:
		files = sourceFiles(s, opts.MaxFiles)
		maxBytes = opts.MaxBytes
	default:
		files = docFiles(src, s)
	}

	exclude := sets.New(opts.Exclude...)
	found := sets.New[string]()
	match := func(data []byte) {
		for _, k := range featureKeywords {
			if !found.Has(k.label) && k.re.Match(data) {
				found.Add(k.label)
			}
		}
	}
	if opts.Scope != ScanSource {
		for _, t := range opts.Texts {
			match([]byte(t))
		}
	}
	for _, f := range files {
		if len(found) == len(featureKeywords) {
			break
		}
		if exclude.Has(f) {
			continue
		}
		data, ok, err := src.ReadLimited(f, maxBytes)
		if err != nil {
			slog.Debug("Skipping unreadable file in feature scan", logfields.Classifier("features"), logfields.File(f), logfields.Error(err))
			continue
		}
		if !ok {
			continue
		}
		match(data)
	}

	labels := []string{}
	for _, k := range featureKeywords {
		if found.Has(k.label) {
			labels = append(labels, k.label)
		}
	}
	return labels
}

// docFiles returns root-level .md files whose names are not ignore patterns.
func docFiles(src *source.Source, s *signals.Signals) []string {
	var out []string
	for _, name := range src.Files(".") {
		if s.Ignore != nil && s.Ignore.Has(name) {
			continue
		}
		if strings.EqualFold(path.Ext(name), ".md") {
			out = append(out, name)
		}
	}
	return out
}

// sourceFiles returns source-extension files under SourceDirs, capped at limit.
func sourceFiles(s *signals.Signals, limit int) []string {
	var out []string
	for _, dir := range SourceDirs {
		for _, f := range filesUnder(s, dir) {
			if limit > 0 && len(out) >= limit {
				return out
			}
			if sourceExts.Has(strings.ToLower(path.Ext(f))) {
				out = append(out, f)
			}
		}
	}
	return out
}
