package extract

import (
	"log/slog"
	"path"
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/markdown"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// ExamplesDir holds example files shown in the usage section.
const ExamplesDir = "examples"

// ReadmeExamplesHeading titles the subsection holding code blocks taken from
// the previous document. Regeneration only re-reads blocks under it.
const ReadmeExamplesHeading = "Examples from README"

var exampleLangs = map[string]string{
	".js": "javascript",
	".ts": "typescript",
	".py": "python",
	".md": "markdown",
}

// ExampleFile is one file from ExamplesDir, truncated to the character budget.
type ExampleFile struct {
	Name      string `json:"name" yaml:"name"`
	Lang      string `json:"lang" yaml:"lang"`
	Content   string `json:"-" yaml:"-"`
	Truncated bool   `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}

// Examples are usage snippets from example files and the previous document.
type Examples struct {
	Files    []ExampleFile        `json:"files,omitempty" yaml:"files,omitempty"`
	Snippets []markdown.CodeBlock `json:"-" yaml:"-"`
}

// Empty reports whether there is nothing to show.
func (e Examples) Empty() bool {
	return len(e.Files) == 0 && len(e.Snippets) == 0
}

// UsageExamples lists ExamplesDir files with a known extension, each cut to
// budget characters, plus every fenced code block of the previous document.
// When the previous document was generated, only blocks under
// ReadmeExamplesHeading are taken so that regeneration is stable.
func UsageExamples(src *source.Source, prior *Prior, budget int) Examples {
	var ex Examples
	for _, name := range src.Files(ExamplesDir) {
		lang, ok := exampleLangs[strings.ToLower(path.Ext(name))]
		if !ok {
			continue
		}
		file := path.Join(ExamplesDir, name)
		data, _, err := src.ReadOptional(file)
		if err != nil {
			slog.Warn("Example file unreadable", logfields.File(file), logfields.Error(err))
			continue
		}
		content, truncated := truncate(string(data), budget)
		ex.Files = append(ex.Files, ExampleFile{Name: name, Lang: lang, Content: content, Truncated: truncated})
	}

	if prior != nil {
		for _, block := range markdown.CodeBlocks(prior.Body) {
			if prior.Generated && !block.Under(ReadmeExamplesHeading) {
				continue
			}
			ex.Snippets = append(ex.Snippets, block)
		}
	}
	return ex
}

// truncate keeps at most budget characters without splitting a UTF-8 sequence.
func truncate(s string, budget int) (string, bool) {
	if budget <= 0 || utf8.RuneCountInString(s) <= budget {
		return s, false
	}
	n := 0
	for i := range s {
		if n == budget {
			return s[:i], true
		}
		n++
	}
	return s, false
}
