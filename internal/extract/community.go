package extract

import "git.home.luguber.info/inful/readmegen/internal/source"

var (
	contributingFiles = []string{"CONTRIBUTING.md", ".github/CONTRIBUTING.md", "docs/CONTRIBUTING.md"}
	conductFiles      = []string{"CODE_OF_CONDUCT.md", ".github/CODE_OF_CONDUCT.md", "docs/CODE_OF_CONDUCT.md"}
)

// Community holds the paths of contribution guidelines and the code of conduct.
type Community struct {
	Contributing string `json:"contributing,omitempty" yaml:"contributing,omitempty"`
	Conduct      string `json:"conduct,omitempty" yaml:"conduct,omitempty"`
}

// Empty reports whether neither file exists.
func (c Community) Empty() bool { return c.Contributing == "" && c.Conduct == "" }

// CommunityFiles finds the first existing contribution guide and code of conduct.
func CommunityFiles(src *source.Source) Community {
	return Community{
		Contributing: firstFile(src, contributingFiles),
		Conduct:      firstFile(src, conductFiles),
	}
}

// RemoteDev describes remote development environment support.
type RemoteDev struct {
	Devcontainer string `json:"devcontainer,omitempty" yaml:"devcontainer,omitempty"`
	Gitpod       bool   `json:"gitpod,omitempty" yaml:"gitpod,omitempty"`
	// Forced is set by configuration or when running inside Codespaces.
	Forced bool `json:"forced,omitempty" yaml:"forced,omitempty"`
}

// Empty reports whether the section has nothing to say.
func (r RemoteDev) Empty() bool { return r.Devcontainer == "" && !r.Gitpod && !r.Forced }

// RemoteDevSupport finds devcontainer and Gitpod configuration.
func RemoteDevSupport(src *source.Source, forced bool) RemoteDev {
	return RemoteDev{
		Devcontainer: firstFile(src, []string{".devcontainer/devcontainer.json", ".devcontainer.json"}),
		Gitpod:       src.IsFile(".gitpod.yml"),
		Forced:       forced,
	}
}

func firstFile(src *source.Source, names []string) string {
	for _, n := range names {
		if src.IsFile(n) {
			return n
		}
	}
	return ""
}
