package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/readmegen/cmd/readmegen/commands"
	ferrors "git.home.luguber.info/inful/readmegen/internal/foundation/errors"
	"git.home.luguber.info/inful/readmegen/internal/version"
)

func main() {
	cli := &commands.CLI{}
	globals := commands.NewGlobal(os.Stdout)
	parser := kong.Parse(cli,
		kong.Name("readmegen"),
		kong.Description("Generate a README from what a project's files say about it."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(globals),
	)

	err := parser.Run(cli)
	adapter := ferrors.NewCLIErrorAdapter(cli.Verbose, globals.Logger)
	os.Exit(adapter.Report(os.Stderr, err))
}
