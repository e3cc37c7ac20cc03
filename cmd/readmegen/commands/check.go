package commands

import (
	"fmt"

	"git.home.luguber.info/inful/readmegen/internal/pipeline"
)

// CheckCmd implements the 'check' command. It never writes the document.
type CheckCmd struct {
	Root string `arg:"" optional:"" default:"." type:"path" help:"Project root"`
}

func (c *CheckCmd) Run(globals *Global, root *CLI) error {
	gen, err := root.generator(c.Root, "", nil)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	drift, err := gen.Check(ctx, c.Root)
	if err != nil {
		return err
	}
	if drift.Stale() {
		return pipeline.DriftError(drift)
	}
	_, err = fmt.Fprintf(globals.Out, "up to date %s (%s)\n", drift.Path, drift.Actual)
	return err
}
