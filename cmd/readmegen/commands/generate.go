package commands

import (
	"fmt"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Root   string `arg:"" optional:"" default:"." type:"path" help:"Project root"`
	Stdout bool   `help:"Print the document instead of writing it"`
	Output string `short:"o" help:"Document path relative to the root (overrides the configuration)"`
}

func (g *GenerateCmd) Run(globals *Global, root *CLI) error {
	gen, err := root.generator(g.Root, g.Output, nil)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	if g.Stdout {
		md, err := gen.Generate(ctx, g.Root)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(globals.Out, md)
		return err
	}

	_, changed, err := gen.Write(ctx, g.Root)
	if err != nil {
		return err
	}
	out, err := gen.OutputPath(g.Root)
	if err != nil {
		return err
	}
	status := "unchanged"
	if changed {
		status = "wrote"
	}
	_, err = fmt.Fprintf(globals.Out, "%s %s\n", status, out)
	return err
}
