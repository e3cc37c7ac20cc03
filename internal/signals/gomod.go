package signals

import (
	"log/slog"

	"golang.org/x/mod/modfile"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

const (
	GoModFile  = "go.mod"
	GoWorkFile = "go.work"
)

// GoModule is the subset of go.mod readmegen reports.
type GoModule struct {
	Path      string
	GoVersion string
	// Requires lists direct requirements in file order.
	Requires []string
}

// ReadGoModule parses go.mod; absent or malformed yields (nil, nil).
func ReadGoModule(src *source.Source) (*GoModule, error) {
	data, found, err := src.ReadOptional(GoModFile)
	if err != nil || !found {
		return nil, err
	}
	f, err := modfile.ParseLax(GoModFile, data, nil)
	if err != nil {
		slog.Debug("Malformed go.mod treated as absent", logfields.File(GoModFile), logfields.Error(err))
		return nil, nil
	}
	m := &GoModule{}
	if f.Module != nil {
		m.Path = f.Module.Mod.Path
	}
	if f.Go != nil {
		m.GoVersion = f.Go.Version
	}
	for _, r := range f.Require {
		if r.Indirect {
			continue
		}
		m.Requires = append(m.Requires, r.Mod.Path)
	}
	return m, nil
}

// HasRequire reports whether path is a direct requirement.
func (m *GoModule) HasRequire(path string) bool {
	if m == nil {
		return false
	}
	return contains(m.Requires, path)
}

// ReadGoWork returns the use directives of go.work verbatim; absent or malformed yields nil.
func ReadGoWork(src *source.Source) ([]string, error) {
	data, found, err := src.ReadOptional(GoWorkFile)
	if err != nil || !found {
		return nil, err
	}
	wf, err := modfile.ParseWork(GoWorkFile, data, nil)
	if err != nil {
		slog.Debug("Malformed go.work treated as absent", logfields.File(GoWorkFile), logfields.Error(err))
		return nil, nil
	}
	uses := make([]string, 0, len(wf.Use))
	for _, u := range wf.Use {
		uses = append(uses, u.Path)
	}
	return uses, nil
}
