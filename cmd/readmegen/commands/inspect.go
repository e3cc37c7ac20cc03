package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/readmegen/internal/classify"
	"git.home.luguber.info/inful/readmegen/internal/extract"
	"git.home.luguber.info/inful/readmegen/internal/markdown"
)

// InspectCmd implements the 'inspect' command.
type InspectCmd struct {
	Root     string `arg:"" optional:"" default:"." type:"path" help:"Project root"`
	Format   string `short:"f" enum:"yaml,json" default:"yaml" help:"Output format (yaml, json)"`
	Headings bool   `xor:"view" help:"List the headings of the generated document instead of the profile"`
	Links    bool   `xor:"view" help:"List the links of the generated document instead of the profile"`
}

type inspection struct {
	Profile *classify.Profile `json:"profile" yaml:"profile"`
	Content *extract.Content  `json:"content" yaml:"content"`
}

func (i *InspectCmd) Run(globals *Global, root *CLI) error {
	gen, err := root.generator(i.Root, "", nil)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	res, err := gen.Run(ctx, i.Root)
	if err != nil {
		return err
	}

	if i.Headings {
		for _, h := range markdown.Headings([]byte(res.Markdown)) {
			if _, err := fmt.Fprintf(globals.Out, "%s %s\n", strings.Repeat("#", h.Level), h.Text); err != nil {
				return err
			}
		}
		return nil
	}

	if i.Links {
		for _, l := range markdown.Links([]byte(res.Markdown)) {
			if _, err := fmt.Fprintf(globals.Out, "%s\t%s\t%s\n", l.Kind, l.Destination, l.Text); err != nil {
				return err
			}
		}
		return nil
	}

	v := inspection{Profile: res.Profile, Content: res.Content}
	if i.Format == "json" {
		enc := json.NewEncoder(globals.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(globals.Out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
