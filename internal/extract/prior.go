package extract

import (
	"bytes"
	"path"
	"path/filepath"

	"git.home.luguber.info/inful/readmegen/internal/frontmatter"
	"git.home.luguber.info/inful/readmegen/internal/markdown"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// GeneratedMarker ends every generated document.
const GeneratedMarker = "<!-- generated by readmegen -->"

// OverviewPlaceholder is used when no previous document supplies an overview.
const OverviewPlaceholder = "A brief description of this project. Update this section with more details."

// Prior is the previous document at the output path.
type Prior struct {
	// Path is the root-relative slash path of the document.
	Path string
	// Body is the content with any frontmatter removed.
	Body []byte
	// Generated is true when the document carries GeneratedMarker.
	Generated bool
}

// ReadPrior loads the previous document; absent yields (nil, nil).
func ReadPrior(src *source.Source, output string) (*Prior, error) {
	data, found, err := src.ReadOptional(output)
	if err != nil || !found {
		return nil, err
	}
	return &Prior{
		Path:      path.Clean(filepath.ToSlash(output)),
		Body:      frontmatter.Body(data),
		Generated: bytes.Contains(data, []byte(GeneratedMarker)),
	}, nil
}

// Overview returns the first paragraph of the previous document, or OverviewPlaceholder.
func Overview(prior *Prior) string {
	if prior == nil {
		return OverviewPlaceholder
	}
	if p := markdown.FirstParagraph(prior.Body); p != "" {
		return p
	}
	return OverviewPlaceholder
}
