package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/readmegen/internal/frontmatter"
	ferrors "git.home.luguber.info/inful/readmegen/internal/foundation/errors"
)

// Drift compares the document on disk with a fresh generation.
type Drift struct {
	Path     string
	Expected string
	// Actual is empty when the document does not exist.
	Actual  string
	Missing bool
}

// Stale reports whether the document on disk differs from a fresh generation.
func (d *Drift) Stale() bool {
	return d.Missing || d.Actual != d.Expected
}

// Fingerprint hashes a document body. Front matter is not part of the hash so
// that metadata added by other tools does not count as drift.
func Fingerprint(doc []byte) string {
	return mdfp.CalculateFingerprintFromParts("", string(frontmatter.Body(doc)))
}

// Check generates the document for root without writing it and compares its
// fingerprint with the existing output.
func (g *Generator) Check(ctx context.Context, root string) (*Drift, error) {
	res, err := g.Run(ctx, root)
	if err != nil {
		return nil, err
	}
	out, err := g.OutputPath(root)
	if err != nil {
		return nil, err
	}

	d := &Drift{Path: out, Expected: Fingerprint([]byte(res.Markdown))}
	existing, err := os.ReadFile(out)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		d.Missing = true
		return d, nil
	case err != nil:
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read existing document").
			WithContext("path", out).Build()
	}
	d.Actual = Fingerprint(existing)
	return d, nil
}

// DriftError converts a stale Drift into a classified error for the CLI.
func DriftError(d *Drift) error {
	if d == nil || !d.Stale() {
		return nil
	}
	msg := "document is out of date; run readmegen generate"
	if d.Missing {
		msg = "document does not exist; run readmegen generate"
	}
	return ferrors.NewError(ferrors.CategoryDrift, msg).
		WithContext("path", d.Path).
		WithContext("expected", d.Expected).
		WithContext("actual", d.Actual).
		Build()
}
