package extract

import (
	"log/slog"
	"path"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/frontmatter"
	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

var (
	// DocsFolders are scanned for markdown files, in order.
	DocsFolders = []string{"docs", "documentation"}
	// APISpecFiles are Swagger/OpenAPI documents recognised at the root.
	APISpecFiles = []string{"swagger.json", "swagger.yaml", "openapi.json", "openapi.yaml"}
)

// DocLink is a markdown document with its display title.
type DocLink struct {
	Title string `json:"title" yaml:"title"`
	Path  string `json:"path" yaml:"path"`
}

// DocFolder is one documentation folder and the markdown files directly inside it.
type DocFolder struct {
	Dir   string    `json:"dir" yaml:"dir"`
	Files []DocLink `json:"files,omitempty" yaml:"files,omitempty"`
}

// Docs lists documentation folders and API specification files.
type Docs struct {
	Folders  []DocFolder `json:"folders,omitempty" yaml:"folders,omitempty"`
	APISpecs []string    `json:"api_specs,omitempty" yaml:"api_specs,omitempty"`
}

// Empty reports whether no documentation was found.
func (d Docs) Empty() bool {
	return len(d.Folders) == 0 && len(d.APISpecs) == 0
}

// Documentation lists DocsFolders markdown files, titled by their frontmatter
// title or first heading, and any APISpecFiles at the root.
func Documentation(src *source.Source) Docs {
	var d Docs
	for _, dir := range DocsFolders {
		if !src.IsDir(dir) {
			continue
		}
		folder := DocFolder{Dir: dir}
		for _, name := range src.Files(dir) {
			if !strings.EqualFold(path.Ext(name), ".md") {
				continue
			}
			file := path.Join(dir, name)
			title := name
			data, _, err := src.ReadLimited(file, 64<<10)
			if err != nil {
				slog.Debug("Doc file unreadable, using file name", logfields.File(file), logfields.Error(err))
			} else if t := frontmatter.Title(data); t != "" {
				title = t
			}
			folder.Files = append(folder.Files, DocLink{Title: title, Path: file})
		}
		d.Folders = append(d.Folders, folder)
	}
	for _, name := range APISpecFiles {
		if src.IsFile(name) {
			d.APISpecs = append(d.APISpecs, name)
		}
	}
	return d
}
