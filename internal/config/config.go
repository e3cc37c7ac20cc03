package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/readmegen/internal/foundation/errors"
)

// DefaultFile is the tool configuration file looked up at the project root.
const DefaultFile = ".readmegen.yaml"

// Feature scan scopes accepted by Config.FeatureScan.
const (
	FeatureScanDocs   = "docs"
	FeatureScanSource = "source"
)

// Config is the readmegen tool configuration.
type Config struct {
	// Output is the document path relative to the project root. It is also
	// where the previous document is read from.
	Output string `yaml:"output" validate:"required"`
	// Title overrides the document title (defaults to the root folder name).
	Title string `yaml:"title,omitempty"`
	// FeatureScan selects which files are scanned for feature keywords.
	FeatureScan       string `yaml:"feature_scan" validate:"oneof=docs source"`
	CollapseThreshold int    `yaml:"collapse_threshold" validate:"min=1"`
	ExampleCharBudget int    `yaml:"example_char_budget" validate:"min=1"`
	MaxScanFiles      int    `yaml:"max_scan_files" validate:"min=1"`
	MaxFileBytes      int64  `yaml:"max_file_bytes" validate:"min=1"`
	// RemoteDev forces the remote development section.
	RemoteDev bool `yaml:"remote_dev"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output:            "README.md",
		FeatureScan:       FeatureScanDocs,
		CollapseThreshold: 10,
		ExampleCharBudget: 500,
		MaxScanFiles:      500,
		MaxFileBytes:      256 << 10,
	}
}

// Load reads a configuration file. ${VAR} references are expanded from the
// environment before parsing; unset fields take their defaults.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.ConfigError("configuration file not found").
				WithContext("path", configPath).Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).Build()
	}

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse config file").
			WithContext("path", configPath).Build()
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve returns the configuration for root. An explicit path must exist;
// otherwise DefaultFile under root is used when present, and defaults when not.
func Resolve(root, explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	candidate := filepath.Join(root, DefaultFile)
	if _, err := os.Stat(candidate); err != nil {
		return Default(), nil
	}
	return Load(candidate)
}

// Validate checks field constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "configuration validation failed").Build()
	}
	return nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Output == "" {
		cfg.Output = def.Output
	}
	if cfg.FeatureScan == "" {
		cfg.FeatureScan = def.FeatureScan
	}
	if cfg.CollapseThreshold == 0 {
		cfg.CollapseThreshold = def.CollapseThreshold
	}
	if cfg.ExampleCharBudget == 0 {
		cfg.ExampleCharBudget = def.ExampleCharBudget
	}
	if cfg.MaxScanFiles == 0 {
		cfg.MaxScanFiles = def.MaxScanFiles
	}
	if cfg.MaxFileBytes == 0 {
		cfg.MaxFileBytes = def.MaxFileBytes
	}
}

const initTemplate = `# readmegen configuration
# Document path relative to the project root. The previous document at this
# path supplies the overview paragraph and README code examples.
output: %s
# title: My Project
# Files scanned for feature keywords: "docs" (root markdown files not listed
# in .gitignore) or "source" (src, lib, app, pkg, internal, cmd).
feature_scan: %s
# Lists longer than this many lines are folded into <details>.
collapse_threshold: %d
# Characters kept from each file in examples/.
example_char_budget: %d
# Bounds for the source feature scan.
max_scan_files: %d
max_file_bytes: %d
# Always include the remote development section.
remote_dev: false
`

// Init writes a commented default configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).Build()
	}
	def := Default()
	content := fmt.Sprintf(initTemplate, def.Output, def.FeatureScan, def.CollapseThreshold,
		def.ExampleCharBudget, def.MaxScanFiles, def.MaxFileBytes)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).Build()
	}
	return nil
}
