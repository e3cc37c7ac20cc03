package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFeatures_Docs(t *testing.T) {
	src, s := project(map[string]string{
		"README.md":     "Supports OAuth login and a REST API.",
		"NOTES.md":      "Uses a database. Login again.",
		"src/server.go": "// websocket handler",
	})
	got := DetectFeatures(src, s, FeatureOptions{Scope: ScanDocs})
	assert.Equal(t, []string{"Login System", "API Endpoints", "Database Integration"}, got)
}

func TestDetectFeatures_ExcludesGeneratedDocument(t *testing.T) {
	src, s := project(map[string]string{
		"README.md": "## Features\n\n- Caching\n- Docker Support",
		"GUIDE.md":  "Configure the cache.",
	})
	got := DetectFeatures(src, s, FeatureOptions{Scope: ScanDocs, Exclude: []string{"README.md"}})
	assert.Equal(t, []string{"Caching"}, got)
}

func TestDetectFeatures_Texts(t *testing.T) {
	src, s := project(map[string]string{"README.md": "generated"})
	opts := FeatureOptions{
		Scope:   ScanDocs,
		Exclude: []string{"README.md"},
		Texts:   []string{"A GraphQL gateway.", "Adds a cache."},
	}
	assert.Equal(t, []string{"GraphQL Support", "Caching"}, DetectFeatures(src, s, opts))

	opts.Scope = ScanSource
	assert.Empty(t, DetectFeatures(src, s, opts))
}

func TestDetectFeatures_WholeWordOnly(t *testing.T) {
	src, s := project(map[string]string{"README.md": "Specification and rapid authoring."})
	assert.Empty(t, DetectFeatures(src, s, FeatureOptions{Scope: ScanDocs}))
}

func TestDetectFeatures_Source(t *testing.T) {
	src, s := project(map[string]string{
		"README.md":     "graphql",
		"src/ws.ts":     "open a websocket",
		"src/readme.md": "auth",
		"lib/cache.py":  "cache = {}",
		"other/auth.go": "auth",
	})
	got := DetectFeatures(src, s, FeatureOptions{Scope: ScanSource, MaxFiles: 10, MaxBytes: 1024})
	assert.Equal(t, []string{"WebSocket Support", "Caching"}, got)
}
