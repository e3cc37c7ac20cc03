package classify

import (
	"git.home.luguber.info/inful/readmegen/internal/signals"
)

// Placeholders used when the git remote is unknown.
const (
	RepoURLPlaceholder       = "<repo-url>"
	ProjectFolderPlaceholder = "<project-folder>"
)

// Setup holds the shell steps to get a working checkout.
type Setup struct {
	Commands []string `json:"commands" yaml:"commands"`
	// EnvFile is the committed environment template, if any.
	EnvFile string   `json:"env_file,omitempty" yaml:"env_file,omitempty"`
	EnvKeys []string `json:"env_keys,omitempty" yaml:"env_keys,omitempty"`
}

var installRules = []Rule[*signals.Signals]{
	{Label: "pnpm install", Match: rootName("pnpm-lock.yaml")},
	{Label: "yarn install", Match: rootName("yarn.lock")},
	{Label: "npm install", Match: func(s *signals.Signals) bool { return s.Manifest != nil }},
}

// DetectSetup returns clone, install and environment steps. The clone URL
// and folder come from the origin remote when one is configured.
func DetectSetup(s *signals.Signals, stack []string, folder string) Setup {
	url := RepoURLPlaceholder
	if s.Remote != nil && s.Remote.URL != "" {
		url = s.Remote.URL
	}
	if folder == "" {
		folder = ProjectFolderPlaceholder
	}
	st := Setup{Commands: []string{"git clone " + url, "cd " + folder}}

	if cmd := First(installRules, s, ""); cmd != "" {
		st.Commands = append(st.Commands, cmd)
	}
	switch {
	case s.Requirements != nil:
		st.Commands = append(st.Commands, "pip install -r requirements.txt")
	case s.PyProject != nil:
		st.Commands = append(st.Commands, "pip install -e .")
	}
	if s.GoModule != nil {
		st.Commands = append(st.Commands, "go mod download")
	}
	if s.Cargo != nil {
		st.Commands = append(st.Commands, "cargo build")
	}
	if contains(stack, StackDotNet) {
		st.Commands = append(st.Commands, "dotnet restore")
	}

	if s.EnvTemplate != "" {
		st.EnvFile = s.EnvTemplate
		st.EnvKeys = s.EnvTemplateKeys
		st.Commands = append(st.Commands, "cp "+s.EnvTemplate+" .env")
	}
	return st
}
