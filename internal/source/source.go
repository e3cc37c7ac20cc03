package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	ferrors "git.home.luguber.info/inful/readmegen/internal/foundation/errors"
)

var (
	// ErrRootNotFound indicates the project root does not exist.
	ErrRootNotFound = errors.New("project root not found")

	// ErrRootNotDir indicates the project root exists but is not a directory.
	ErrRootNotDir = errors.New("project root is not a directory")

	// ErrUnreadable indicates a file exists but its content could not be read.
	ErrUnreadable = errors.New("file exists but could not be read")
)

// DefaultPrune lists directory names never descended into by Walk.
var DefaultPrune = []string{".git", "node_modules", "vendor"}

// Source is a read-only view of a project tree.
type Source struct {
	fsys fs.FS
	root string
}

// Open validates root and returns a Source backed by the OS filesystem.
// A missing root or a root that is not a directory is a pipeline-level failure.
func Open(root string) (*Source, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryValidation, "resolve project root").
			WithContext("root", root).Fatal().Build()
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.WrapError(fmt.Errorf("%w: %s", ErrRootNotFound, abs), ferrors.CategoryNotFound, "project root does not exist").
				WithContext("root", abs).Fatal().Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "stat project root").
			WithContext("root", abs).Fatal().Build()
	}
	if !info.IsDir() {
		return nil, ferrors.WrapError(fmt.Errorf("%w: %s", ErrRootNotDir, abs), ferrors.CategoryValidation, "project root is not a directory").
			WithContext("root", abs).Fatal().Build()
	}
	return New(os.DirFS(abs), abs), nil
}

// New wraps an arbitrary fs.FS. root is used for display and naming only.
func New(fsys fs.FS, root string) *Source {
	return &Source{fsys: fsys, root: root}
}

// Root returns the root path the Source was created with.
func (s *Source) Root() string { return s.root }

// Name returns the base name of the root directory.
func (s *Source) Name() string {
	if s.root == "" {
		return "project"
	}
	return filepath.Base(s.root)
}

// FS exposes the underlying filesystem.
func (s *Source) FS() fs.FS { return s.fsys }

func clean(name string) string {
	if name == "" {
		return "."
	}
	return path.Clean(name)
}

// Exists reports whether name exists (file or directory).
func (s *Source) Exists(name string) bool {
	_, err := fs.Stat(s.fsys, clean(name))
	return err == nil
}

// IsDir reports whether name exists and is a directory.
func (s *Source) IsDir(name string) bool {
	info, err := fs.Stat(s.fsys, clean(name))
	return err == nil && info.IsDir()
}

// IsFile reports whether name exists and is not a directory.
func (s *Source) IsFile(name string) bool {
	info, err := fs.Stat(s.fsys, clean(name))
	return err == nil && !info.IsDir()
}

// ReadOptional reads name. found is false when the file does not exist.
// err is non-nil only when the file exists but could not be read.
func (s *Source) ReadOptional(name string) (data []byte, found bool, err error) {
	return s.ReadLimited(name, -1)
}

// ReadLimited is ReadOptional with an upper bound on bytes returned; max < 0 means unbounded.
func (s *Source) ReadLimited(name string, max int64) (data []byte, found bool, err error) {
	name = clean(name)
	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, true, fmt.Errorf("%w: %s: %w", ErrUnreadable, name, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if max >= 0 {
		r = io.LimitReader(f, max)
	}
	data, err = io.ReadAll(r)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %s: %w", ErrUnreadable, name, err)
	}
	return data, true, nil
}

// List returns the entries of dir sorted by name, or nil when dir is absent or unreadable.
func (s *Source) List(dir string) []fs.DirEntry {
	entries, err := fs.ReadDir(s.fsys, clean(dir))
	if err != nil {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries
}

// Names returns the sorted entry names of dir.
func (s *Source) Names(dir string) []string {
	entries := s.List(dir)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Subdirs returns the sorted names of the immediate subdirectories of dir.
func (s *Source) Subdirs(dir string) []string {
	var names []string
	for _, e := range s.List(dir) {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// Files returns the sorted names of the regular files directly inside dir.
func (s *Source) Files(dir string) []string {
	var names []string
	for _, e := range s.List(dir) {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// Walk returns every file below dir as a root-relative slash path, in lexical
// order. Directories whose base name is in prune are skipped; unreadable
// directories are skipped silently.
func (s *Source) Walk(dir string, prune ...string) []string {
	skip := make(map[string]bool, len(prune))
	for _, p := range prune {
		skip[p] = true
	}
	var files []string
	_ = fs.WalkDir(s.fsys, clean(dir), func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if p != clean(dir) && skip[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		files = append(files, p)
		return nil
	})
	return files
}
