package readme

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/classify"
	"git.home.luguber.info/inful/readmegen/internal/extract"
)

// RepoPlaceholder stands in for "owner/name" when the origin remote is unknown.
const RepoPlaceholder = "<your-repo>"

// LicensePlaceholder is the license body when no license is detected.
const LicensePlaceholder = "Add license information here."

// Input is everything the synthesizer reads.
type Input struct {
	Title   string
	Profile *classify.Profile
	Content *extract.Content
	// CollapseThreshold is the line count above which long lists are folded.
	CollapseThreshold int
}

func (in Input) repo() string {
	if in.Profile.RepoSlug != "" {
		return in.Profile.RepoSlug
	}
	return RepoPlaceholder
}

// Synthesize builds the document with every candidate section in canonical
// order. Sections whose signal is absent have an empty body and are dropped
// by Document.Entries.
func Synthesize(in Input) Document {
	p, c := in.Profile, in.Content
	var sections []Section
	add := func(key, title, body string) {
		sections = append(sections, Section{Key: key, Title: title, Body: body})
	}

	add("project_type", TitleProjectType, projectTypeBody(p.ProjectType))
	for _, cs := range c.Custom {
		title := strings.Join(strings.Fields(cs.Title), " ")
		if title == "" {
			continue
		}
		add("custom", title, demoteHeadings(cs.Content))
	}
	add("additional_notes", TitleNotes, demoteHeadings(c.Notes))
	add("monorepo", TitleMonorepo, monorepoBody(p.Monorepo))
	add("documentation", TitleDocs, docsBody(c.Docs))
	add("media", TitleMedia, mediaBody(c.Media))
	add("tech_stack", TitleTechStack, bullets(p.TechStack))
	add("i18n", TitleI18n, p.I18n)
	add("features", TitleFeatures, bullets(p.Features))
	add("deployment", TitleDeployment, deploymentBody(p.Deployment, p.Name, in.repo()))
	add("main_entry", TitleMainEntry, code(p.MainEntry))
	add("usage_examples", TitleUsage, usageBody(c.Examples))
	add("cli_usage", TitleCLI, cliBody(c.CLI))
	add("dependencies", TitleDependencies, Collapsible(
		fmt.Sprintf("Show %d dependencies", len(p.Dependencies)),
		bullets(codeAll(p.Dependencies)), in.CollapseThreshold))
	add("security", TitleSecurity, p.Security)
	add("setup", TitleSetup, setupBody(p.Setup))
	add("run", TitleRun, fence("bash", p.RunCommand))
	add("testing", TitleTesting, testingBody(p.Testing, in.repo()))
	add("design_principles", TitlePrinciples, bullets(p.Principles))
	add("contributing", TitleContributing, contributingBody(c.Community))
	add("remote_dev", TitleRemoteDev, remoteDevBody(c.RemoteDev, p.RepoSlug))
	add("ignored", TitleIgnored, ignoredBody(c.Ignored, in.CollapseThreshold))

	return Document{
		Title:    in.Title,
		Overview: c.Overview,
		Sections: sections,
		License:  Section{Key: "license", Title: TitleLicense, Body: licenseBody(p.License)},
		Footer:   extract.GeneratedMarker,
	}
}

func projectTypeBody(pt classify.ProjectType) string {
	s := "**" + pt.Label + "**"
	if pt.Detail != "" {
		s += " (" + pt.Detail + ")"
	}
	return s
}

func monorepoBody(m *classify.Monorepo) string {
	if m.Empty() {
		return ""
	}
	var b strings.Builder
	if len(m.Packages) > 0 {
		b.WriteString("This project is a monorepo. It contains multiple packages:\n\n")
		for _, pkg := range m.Packages {
			line := "- **" + pkg.Name + "**"
			if pkg.Description != "" {
				line += ": " + pkg.Description
			}
			if len(pkg.Internal) > 0 {
				line += " (Depends on: " + strings.Join(pkg.Internal, ", ") + ")"
			}
			b.WriteString(line + "\n")
			if pkg.HasReadme {
				readme := path.Join(classify.PackagesDir, pkg.Name, "README.md")
				entry := "  - [README.md](" + relLink(readme) + ")"
				if pkg.Readme != "" {
					entry += ": " + strings.Join(strings.Fields(pkg.Readme), " ")
				}
				b.WriteString(entry + "\n")
			}
		}
		b.WriteString("\n### Package Dependency Graph\n\n")
		for _, pkg := range m.Packages {
			deps := "No internal deps"
			if len(pkg.Internal) > 0 {
				deps = strings.Join(codeAll(pkg.Internal), ", ")
			}
			b.WriteString("- " + code(pkg.Name) + " → " + deps + "\n")
		}
		b.WriteString("\n")
	}
	if len(m.Workspaces) > 0 {
		b.WriteString("### Workspaces\n\n")
		for _, ws := range m.Workspaces {
			for _, g := range ws.Globs {
				b.WriteString("- " + code(g) + " (" + ws.File + ")\n")
			}
		}
	}
	return b.String()
}

func docsBody(d extract.Docs) string {
	if d.Empty() {
		return ""
	}
	var b strings.Builder
	for _, f := range d.Folders {
		fmt.Fprintf(&b, "See the [%s/](%s) folder for detailed documentation.\n\n", f.Dir, relLink(f.Dir))
		if len(f.Files) == 0 {
			continue
		}
		fmt.Fprintf(&b, "Key documents in `%s/`:\n\n", f.Dir)
		for _, l := range f.Files {
			b.WriteString("- [" + escapeLinkText(l.Title) + "](" + relLink(l.Path) + ")\n")
		}
		b.WriteString("\n")
	}
	if len(d.APISpecs) > 0 {
		b.WriteString("### API Documentation\n\n")
		for _, spec := range d.APISpecs {
			b.WriteString("- [" + spec + "](" + relLink(spec) + ") (Swagger/OpenAPI)\n")
		}
	}
	return b.String()
}

func mediaBody(m extract.Media) string {
	if m.Empty() {
		return ""
	}
	var b strings.Builder
	if len(m.Screenshots) > 0 {
		b.WriteString("### Screenshots\n\n")
		for _, img := range m.Screenshots {
			b.WriteString("![Screenshot](" + relLink(img) + ")\n\n")
		}
	}
	if len(m.Demos) > 0 {
		b.WriteString("### Demo\n\n")
		for _, demo := range m.Demos {
			if strings.HasSuffix(demo, ".gif") {
				b.WriteString("![Demo](" + relLink(demo) + ")\n\n")
			} else {
				fmt.Fprintf(&b, "<video src=%q controls width=\"600\"></video>\n\n", demo)
			}
		}
	}
	return b.String()
}

var imageNameUnsafe = regexp.MustCompile(`[^a-z0-9._-]+`)

func deploymentBody(d classify.Deployment, name, repo string) string {
	if d.Empty() {
		return ""
	}
	image := strings.Trim(imageNameUnsafe.ReplaceAllString(strings.ToLower(name), "-"), "-.")
	if image == "" {
		image = "<your-image-name>"
	}

	var b strings.Builder
	if d.Docker {
		b.WriteString("### Docker\n\nThis project includes a `Dockerfile`. You can build and run the container with:\n\n")
		b.WriteString(fence("bash", "docker build -t "+image+" .\ndocker run -p 3000:3000 "+image) + "\n\n")
	}
	if d.ComposeFile != "" {
		b.WriteString("### Docker Compose\n\n")
		if len(d.ComposeServices) > 0 {
			fmt.Fprintf(&b, "Services defined in `%s`: %s.\n\n", d.ComposeFile, strings.Join(codeAll(d.ComposeServices), ", "))
		}
		b.WriteString(fence("bash", "docker compose -f "+d.ComposeFile+" up") + "\n\n")
	}
	if len(d.Workflows) > 0 {
		b.WriteString("### GitHub Actions\n\nThis project uses GitHub Actions for CI/CD.\n\n")
		for _, wf := range d.Workflows {
			alt := wf.Name
			if alt == "" {
				alt = wf.File
			}
			fmt.Fprintf(&b, "![%s](https://github.com/%s/actions/workflows/%s/badge.svg)\n", escapeLinkText(alt), repo, wf.File)
		}
		b.WriteString("\n")
	}
	if d.Vercel {
		b.WriteString("### Vercel\n\nThis project includes a `vercel.json` for Vercel deployment.\n\n")
		fmt.Fprintf(&b, "[![Vercel](https://vercelbadge.vercel.app/api/%s)](https://vercel.com)\n\n", repo)
	}
	if d.Netlify != nil {
		b.WriteString("### Netlify\n\nThis project includes a `netlify.toml` for Netlify deployment.\n\n")
		if d.Netlify.Command != "" {
			b.WriteString("- Build command: " + code(d.Netlify.Command) + "\n")
		}
		if d.Netlify.Publish != "" {
			b.WriteString("- Publish directory: " + code(d.Netlify.Publish) + "\n")
		}
		b.WriteString("\n[![Netlify Status](https://api.netlify.com/api/v1/badges/<your-badge-id>/deploy-status)](https://app.netlify.com/sites/<your-site>/deploys)\n")
	}
	return b.String()
}

func usageBody(ex extract.Examples) string {
	if ex.Empty() {
		return ""
	}
	var b strings.Builder
	for _, f := range ex.Files {
		b.WriteString("### " + f.Name + "\n\n")
		b.WriteString(fence(f.Lang, f.Content) + "\n\n")
	}
	if len(ex.Snippets) > 0 {
		b.WriteString("### " + extract.ReadmeExamplesHeading + "\n\n")
		for i, s := range ex.Snippets {
			fmt.Fprintf(&b, "#### Example %d\n\n", i+1)
			b.WriteString(fence(s.Lang, s.Code) + "\n\n")
		}
	}
	return b.String()
}

func cliBody(cmds []extract.CLICommand) string {
	if len(cmds) == 0 {
		return ""
	}
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = c.Invocation
	}
	return fence("bash", strings.Join(lines, "\n"))
}

func setupBody(s classify.Setup) string {
	if len(s.Commands) == 0 {
		return ""
	}
	body := fence("bash", strings.Join(s.Commands, "\n"))
	if len(s.EnvKeys) > 0 {
		body += "\n\nEnvironment variables (see " + code(s.EnvFile) + "):\n\n" + bullets(codeAll(s.EnvKeys))
	}
	return body
}

func testingBody(t classify.TestTooling, repo string) string {
	if t.Empty() {
		return ""
	}
	var b strings.Builder
	if len(t.Frameworks) > 0 {
		b.WriteString("Test frameworks: " + strings.Join(t.Frameworks, ", ") + "\n\n")
	}
	if len(t.Coverage) > 0 {
		b.WriteString("Coverage tools: " + strings.Join(t.Coverage, ", ") + "\n\n")
	}
	if t.HasCoverage(classify.CoverageCodecov) {
		fmt.Fprintf(&b, "![Codecov](https://codecov.io/gh/%s/branch/main/graph/badge.svg)\n", repo)
	}
	if t.HasCoverage(classify.CoverageCoveralls) {
		fmt.Fprintf(&b, "![Coveralls](https://coveralls.io/repos/github/%s/badge.svg?branch=main)\n", repo)
	}
	return b.String()
}

func contributingBody(c extract.Community) string {
	var parts []string
	if c.Contributing != "" {
		parts = append(parts, "Contributions are welcome. Please read ["+path.Base(c.Contributing)+"]("+relLink(c.Contributing)+") before opening a pull request.")
	}
	if c.Conduct != "" {
		parts = append(parts, "This project follows a [Code of Conduct]("+relLink(c.Conduct)+"). By participating you agree to uphold it.")
	}
	return strings.Join(parts, "\n\n")
}

func remoteDevBody(r extract.RemoteDev, slug string) string {
	if r.Empty() {
		return ""
	}
	var parts []string
	if r.Devcontainer != "" {
		parts = append(parts, "This project includes a [dev container]("+relLink(r.Devcontainer)+") configuration for GitHub Codespaces and VS Code Dev Containers.")
	}
	if r.Gitpod {
		target := "<repo-url>"
		if slug != "" {
			target = "https://github.com/" + slug
		}
		parts = append(parts, "[![Open in Gitpod](https://gitpod.io/button/open-in-gitpod.svg)](https://gitpod.io/#"+target+")")
	}
	if r.Forced && r.Devcontainer == "" && !r.Gitpod {
		parts = append(parts, "This project can be developed in GitHub Codespaces or any other remote development environment.")
	}
	if slug != "" && (r.Devcontainer != "" || r.Forced) {
		parts = append(parts, "[![Open in GitHub Codespaces](https://github.com/codespaces/badge.svg)](https://codespaces.new/"+slug+")")
	}
	return strings.Join(parts, "\n\n")
}

func ignoredBody(patterns []string, threshold int) string {
	if len(patterns) == 0 {
		return ""
	}
	list := Collapsible(fmt.Sprintf("Show %d patterns", len(patterns)), bullets(codeAll(patterns)), threshold)
	return "The following patterns are excluded from version control (`.gitignore`):\n\n" + list
}

func licenseBody(l classify.License) string {
	switch {
	case l.Name != "" && l.File != "":
		return fmt.Sprintf("This project is licensed under the **%s** license. See [%s](%s) for details.", l.Name, l.File, relLink(l.File))
	case l.File != "":
		return fmt.Sprintf("See [%s](%s) for license terms.", l.File, relLink(l.File))
	case l.Name != "":
		return fmt.Sprintf("This project is licensed under the **%s** license.", l.Name)
	}
	return LicensePlaceholder
}
