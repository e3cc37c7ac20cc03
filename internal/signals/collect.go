package signals

import (
	"log/slog"
	"path"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/source"
	"git.home.luguber.info/inful/readmegen/internal/util/sets"
)

// Signals is the full set of primitive facts collected for one run.
type Signals struct {
	// RootNames are the entry names directly under the root (files and folders).
	RootNames []string
	// Files are every file below the root, excluding source.DefaultPrune folders.
	Files []string

	Manifest      *Manifest
	Requirements  *Requirements
	PyProject     *PyProject
	Cargo         *Cargo
	GoModule      *GoModule
	GoWork        []string
	PNPMWorkspace []string
	Netlify       *Netlify

	ComposeFile     string
	ComposeServices []string

	EnvTemplate     string
	EnvTemplateKeys []string

	Remote *Remote
	Ignore *sets.Ordered[string]

	exts    sets.Set[string]
	rootSet sets.Set[string]
	fileSet sets.Set[string]
}

// Collect reads every signal from src. It never fails: unreadable sources are
// logged and treated as absent.
func Collect(src *source.Source) *Signals {
	s := &Signals{
		RootNames: src.Names("."),
		Files:     src.Walk(".", source.DefaultPrune...),
		Ignore:    source.LoadIgnore(src),
	}
	s.rootSet = sets.New(s.RootNames...)
	s.fileSet = sets.New(s.Files...)
	s.exts = sets.New[string]()
	for _, f := range s.Files {
		if ext := strings.ToLower(path.Ext(f)); ext != "" {
			s.exts.Add(ext)
		}
	}

	var err error
	if s.Manifest, err = ReadManifest(src, "."); err != nil {
		degrade(ManifestFile, err)
	}
	if s.Requirements, err = ReadRequirements(src); err != nil {
		degrade(RequirementsFile, err)
	}
	if s.PyProject, err = ReadPyProject(src); err != nil {
		degrade(PyProjectFile, err)
	}
	if s.Cargo, err = ReadCargo(src); err != nil {
		degrade(CargoFile, err)
	}
	if s.GoModule, err = ReadGoModule(src); err != nil {
		degrade(GoModFile, err)
	}
	if s.GoWork, err = ReadGoWork(src); err != nil {
		degrade(GoWorkFile, err)
	}
	if s.PNPMWorkspace, err = ReadPNPMWorkspace(src); err != nil {
		degrade(PNPMWorkspaceFile, err)
	}
	if s.Netlify, err = ReadNetlify(src); err != nil {
		degrade(NetlifyFile, err)
	}
	var file string
	if file, s.ComposeServices, err = ReadComposeServices(src); err != nil {
		degrade(file, err)
	} else {
		s.ComposeFile = file
	}
	if file, s.EnvTemplateKeys, err = ReadEnvTemplate(src); err != nil {
		degrade(file, err)
	} else {
		s.EnvTemplate = file
	}
	if src.Exists(".git") {
		if s.Remote, err = ReadRemote(src.Root()); err != nil {
			degrade(".git", err)
		}
	}
	return s
}

func degrade(file string, err error) {
	slog.Warn("Signal source unreadable, treating as absent", logfields.File(file), logfields.Error(err))
}

// HasRootName reports whether name is an entry directly under the root.
func (s *Signals) HasRootName(name string) bool {
	return s.rootSet.Has(name)
}

// HasFile reports whether the root-relative slash path is a collected file.
func (s *Signals) HasFile(name string) bool {
	return s.fileSet.Has(name)
}

// HasExt reports whether any file in the tree has the (lower-case, dotted) extension.
func (s *Signals) HasExt(ext string) bool {
	return s.exts.Has(ext)
}

// DependencyKeys returns runtime then development dependency names from package.json.
func (s *Signals) DependencyKeys() []string {
	if s.Manifest == nil {
		return nil
	}
	out := make([]string, 0, len(s.Manifest.Dependencies)+len(s.Manifest.DevDependencies))
	out = append(out, s.Manifest.Dependencies...)
	return append(out, s.Manifest.DevDependencies...)
}
