package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/readmegen/internal/config"
	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/metrics"
	"git.home.luguber.info/inful/readmegen/internal/pipeline"
)

// Global is shared state passed to every command.
type Global struct {
	Logger *slog.Logger
	RunID  string
	// Out receives command output (documents, profiles, status lines).
	Out io.Writer
}

// NewGlobal returns a Global writing command output to out.
func NewGlobal(out io.Writer) *Global {
	return &Global{Logger: slog.Default(), RunID: uuid.NewString(), Out: out}
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: .readmegen.yaml in the project root)" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate the README for a project"`
	Check    CheckCmd    `cmd:"" help:"Exit non-zero when the README is out of date"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate the README whenever project files change"`
	Inspect  InspectCmd  `cmd:"" help:"Print the detected project profile"`
	Init     InitCmd     `cmd:"" help:"Write a default .readmegen.yaml"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	if g.RunID == "" {
		g.RunID = uuid.NewString()
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(logfields.RunID(g.RunID))
	slog.SetDefault(logger)
	g.Logger = logger
	return nil
}

// loadConfig resolves the tool configuration for root and applies command
// line and environment overrides.
func (c *CLI) loadConfig(root, output string) (*config.Config, error) {
	cfg, err := config.Resolve(root, c.Config)
	if err != nil {
		return nil, err
	}
	if output != "" {
		cfg.Output = output
	}
	if os.Getenv("CODESPACES") == "true" {
		cfg.RemoteDev = true
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *CLI) generator(root, output string, rec metrics.Recorder) (*pipeline.Generator, error) {
	cfg, err := c.loadConfig(root, output)
	if err != nil {
		return nil, err
	}
	return pipeline.New(cfg, pipeline.WithRecorder(rec)), nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
