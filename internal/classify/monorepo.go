package classify

import (
	"log/slog"
	"path"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/markdown"
	"git.home.luguber.info/inful/readmegen/internal/signals"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// PackagesDir is the folder whose immediate subdirectories are member packages.
const PackagesDir = "packages"

// Package is one member of a monorepo.
type Package struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Internal lists dependencies that name another member, in manifest order.
	Internal []string `json:"internal" yaml:"internal"`
	// Readme is the first paragraph of the member's README.md, when present.
	Readme      string `json:"readme,omitempty" yaml:"readme,omitempty"`
	HasReadme   bool   `json:"-" yaml:"-"`
	HasManifest bool   `json:"-" yaml:"-"`
}

// Workspace is a workspace-glob declaration reported verbatim.
type Workspace struct {
	File  string   `json:"file" yaml:"file"`
	Globs []string `json:"globs" yaml:"globs"`
}

// Monorepo is the member package graph plus any workspace declarations.
type Monorepo struct {
	Packages   []Package   `json:"packages,omitempty" yaml:"packages,omitempty"`
	Workspaces []Workspace `json:"workspaces,omitempty" yaml:"workspaces,omitempty"`
}

// Empty reports whether neither members nor workspace declarations were found.
func (m *Monorepo) Empty() bool {
	return m == nil || (len(m.Packages) == 0 && len(m.Workspaces) == 0)
}

// Graph returns the adjacency mapping from member name to internal dependencies.
func (m *Monorepo) Graph() map[string][]string {
	g := make(map[string][]string, len(m.Packages))
	for _, p := range m.Packages {
		g[p.Name] = p.Internal
	}
	return g
}

// DetectMonorepo enumerates packages/* members and records an edge for every
// dependency whose name exactly matches another member's directory name.
// Workspace globs are reported without expansion.
func DetectMonorepo(src *source.Source, s *signals.Signals) *Monorepo {
	m := &Monorepo{}
	members := src.Subdirs(PackagesDir)
	memberSet := make(map[string]bool, len(members))
	for _, name := range members {
		memberSet[name] = true
	}

	for _, name := range members {
		dir := path.Join(PackagesDir, name)
		pkg := Package{Name: name, Internal: []string{}}

		manifest, err := signals.ReadManifest(src, dir)
		if err != nil {
			slog.Warn("Member manifest unreadable", logfields.Path(dir), logfields.Error(err))
		}
		if manifest != nil {
			pkg.HasManifest = true
			pkg.Description = manifest.Description
			for _, dep := range manifest.Dependencies {
				if dep != name && memberSet[dep] {
					pkg.Internal = append(pkg.Internal, dep)
				}
			}
		}

		readme := path.Join(dir, "README.md")
		data, found, err := src.ReadOptional(readme)
		if err != nil {
			slog.Warn("Member README unreadable", logfields.File(readme), logfields.Error(err))
		}
		if found && err == nil {
			pkg.HasReadme = true
			pkg.Readme = markdown.FirstParagraph(data)
		}
		m.Packages = append(m.Packages, pkg)
	}

	if s.Manifest != nil && len(s.Manifest.Workspaces) > 0 {
		m.Workspaces = append(m.Workspaces, Workspace{File: signals.ManifestFile, Globs: s.Manifest.Workspaces})
	}
	if len(s.PNPMWorkspace) > 0 {
		m.Workspaces = append(m.Workspaces, Workspace{File: signals.PNPMWorkspaceFile, Globs: s.PNPMWorkspace})
	}
	if len(s.GoWork) > 0 {
		m.Workspaces = append(m.Workspaces, Workspace{File: signals.GoWorkFile, Globs: s.GoWork})
	}
	return m
}
