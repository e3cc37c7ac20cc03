package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/readmegen/internal/foundation/errors"
)

// OutputPath returns the absolute path of the generated document for root.
func (g *Generator) OutputPath(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	return filepath.Join(abs, filepath.FromSlash(g.cfg.Output)), nil
}

// Write generates the document for root and writes it to the configured
// output. The file is only replaced when its content changes.
func (g *Generator) Write(ctx context.Context, root string) (res *Result, changed bool, err error) {
	res, err = g.Run(ctx, root)
	if err != nil {
		return nil, false, err
	}
	out, err := g.OutputPath(root)
	if err != nil {
		return nil, false, err
	}
	changed, err = writeIfChanged(out, []byte(res.Markdown))
	return res, changed, err
}

// writeIfChanged writes data to a temporary sibling and renames it over target.
func writeIfChanged(target string, data []byte) (bool, error) {
	existing, err := os.ReadFile(target)
	switch {
	case err == nil && bytes.Equal(existing, data):
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read existing document").
			WithContext("path", target).Build()
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", target).Build()
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write temporary document").
			WithContext("path", tmp).Build()
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return false, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to replace document").
			WithContext("path", target).Build()
	}
	return true, nil
}
