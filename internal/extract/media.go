package extract

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/source"
)

// ScreenshotsDir holds images shown in the media section.
const ScreenshotsDir = "screenshots"

var (
	screenshotExts = []string{".png", ".jpg", ".jpeg", ".gif"}
	// DemoFiles are recognised at the root, in order.
	DemoFiles = []string{"demo.gif", "demo.mp4", "demo.webm"}
)

// Media lists screenshot images and demo recordings as root-relative paths.
type Media struct {
	Screenshots []string `json:"screenshots,omitempty" yaml:"screenshots,omitempty"`
	Demos       []string `json:"demos,omitempty" yaml:"demos,omitempty"`
}

// Empty reports whether no media was found.
func (m Media) Empty() bool {
	return len(m.Screenshots) == 0 && len(m.Demos) == 0
}

// FindMedia lists image files in ScreenshotsDir and any DemoFiles at the root.
func FindMedia(src *source.Source) Media {
	var m Media
	for _, name := range src.Files(ScreenshotsDir) {
		ext := strings.ToLower(path.Ext(name))
		for _, e := range screenshotExts {
			if ext == e {
				m.Screenshots = append(m.Screenshots, path.Join(ScreenshotsDir, name))
				break
			}
		}
	}
	for _, name := range DemoFiles {
		if src.IsFile(name) {
			m.Demos = append(m.Demos, name)
		}
	}
	return m
}
