// Package config resolves runtime settings: built-in defaults, then an
// optional YAML file, then command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/cloudprivacylabs/lsa-ui/internal/logging"
)

const (
	DefaultAddr     = ":8080"
	DefaultMountID  = "root"
	DefaultTheme    = "layered"
	DefaultVariant  = "light"
	DefaultLogLevel = "info"
	DefaultRenderer = "vanilla"
)

// Config holds the application settings.
type Config struct {
	Addr         string `yaml:"addr"`
	MountID      string `yaml:"mountId"`
	Theme        string `yaml:"theme"`
	Variant      string `yaml:"variant"`
	LogLevel     string `yaml:"logLevel"`
	Renderer     string `yaml:"renderer"`
	TemplatesDir string `yaml:"templatesDir"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:     DefaultAddr,
		MountID:  DefaultMountID,
		Theme:    DefaultTheme,
		Variant:  DefaultVariant,
		LogLevel: DefaultLogLevel,
		Renderer: DefaultRenderer,
	}
}

// LoadFile overlays the YAML document at path onto cfg. Keys absent from the
// file keep their current value.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Flags binds the settings to a flag set. Call Parse on the returned set and
// then Resolve to apply the config file and flag overrides.
type Flags struct {
	set        *pflag.FlagSet
	configPath string
	tui        bool
	values     Config
}

// NewFlags registers the command-line flags on a new flag set.
func NewFlags(name string) *Flags {
	f := &Flags{
		set:    pflag.NewFlagSet(name, pflag.ContinueOnError),
		values: Default(),
	}
	f.set.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	f.set.StringVar(&f.values.Addr, "addr", DefaultAddr, "HTTP listen address")
	f.set.StringVar(&f.values.MountID, "mount-id", DefaultMountID, "id of the layout element the form mounts into")
	f.set.StringVar(&f.values.Theme, "theme", DefaultTheme, "theme name")
	f.set.StringVar(&f.values.Variant, "variant", DefaultVariant, "theme variant")
	f.set.StringVar(&f.values.LogLevel, "log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
	f.set.StringVar(&f.values.Renderer, "renderer", DefaultRenderer, "form renderer used by the page")
	f.set.StringVar(&f.values.TemplatesDir, "templates-dir", "", "override the embedded form templates with a directory")
	f.set.BoolVar(&f.tui, "tui", false, "fill the form in the terminal instead of serving HTTP")
	return f
}

// FlagSet exposes the underlying flag set, e.g. for usage output.
func (f *Flags) FlagSet() *pflag.FlagSet {
	return f.set
}

// TUI reports whether --tui was given.
func (f *Flags) TUI() bool {
	return f.tui
}

// Parse parses args and resolves the final configuration: defaults, then the
// file named by --config, then explicitly set flags.
func (f *Flags) Parse(args []string) (Config, error) {
	if err := f.set.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if f.configPath != "" {
		if err := LoadFile(&cfg, f.configPath); err != nil {
			return Config{}, err
		}
	}

	f.set.Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "addr":
			cfg.Addr = f.values.Addr
		case "mount-id":
			cfg.MountID = f.values.MountID
		case "theme":
			cfg.Theme = f.values.Theme
		case "variant":
			cfg.Variant = f.values.Variant
		case "log-level":
			cfg.LogLevel = f.values.LogLevel
		case "renderer":
			cfg.Renderer = f.values.Renderer
		case "templates-dir":
			cfg.TemplatesDir = f.values.TemplatesDir
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the application cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("config: addr is required")
	}
	if strings.TrimSpace(c.MountID) == "" {
		return errors.New("config: mount id is required")
	}
	if strings.TrimSpace(c.Renderer) == "" {
		return errors.New("config: renderer is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
