package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/readmegen/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Root  string `arg:"" optional:"" default:"." type:"path" help:"Project root"`
	Force bool   `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(globals *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = filepath.Join(i.Root, config.DefaultFile)
	}
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	_, err := fmt.Fprintf(globals.Out, "Wrote configuration to %s\n", path)
	return err
}
