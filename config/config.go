// Package config loads socialnet settings from layered sources.
//
// Priority: Flags > Env > Config File > Defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/socialgraph/logging"
)

// DefaultFile is the TOML file read from the working directory when no
// explicit path is given.
const DefaultFile = "socialnet.toml"

// EnvPrefix prefixes every environment override, e.g. SOCIALNET_LOG_LEVEL=debug.
const EnvPrefix = "SOCIALNET_"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all configuration for the CLI.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Suggest SuggestConfig `koanf:"suggest"`

	// File is the TOML path actually consulted ("" when none was read).
	File string `koanf:"config"`
}

// LogConfig controls the logger built by logging.New.
type LogConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	JSON  bool   `koanf:"json"`
}

// SuggestConfig bounds the suggestion listing. A Limit of 0 means unlimited.
type SuggestConfig struct {
	Limit int `koanf:"limit" validate:"gte=0"`
}

// SlogLevel returns the parsed log level.
func (c *Config) SlogLevel() slog.Level {
	lvl, _ := logging.ParseLevel(c.Log.Level)
	return lvl
}

var validate = validator.New()

// Validate rejects unknown log levels and negative limits.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// AddFlags registers the flags Load understands on f.
// Flag names use '-' where config keys use '.', so --log-level sets log.level.
func AddFlags(f *pflag.FlagSet) {
	f.String("config", DefaultFile, "path of the TOML config file")
	f.String("log-level", "info", "log level: debug, info, warn, error")
	f.Bool("log-json", false, "emit JSON logs instead of compact text")
	f.Int("suggest-limit", 0, "maximum suggestions to print (0 = unlimited)")
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// A missing DefaultFile is ignored; a missing explicitly named file is an error.
// The result is validated before it is returned.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"log": map[string]interface{}{
			"level": "info",
			"json":  false,
		},
		"suggest": map[string]interface{}{
			"limit": 0,
		},
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	path, explicit := configPath(f)
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		path = ""
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.ProviderWithFlag(f, ".", k, flagKey(f)), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.File = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// configPath picks the TOML path: --config, then SOCIALNET_CONFIG, then DefaultFile.
func configPath(f *pflag.FlagSet) (string, bool) {
	if f != nil {
		if fl := f.Lookup("config"); fl != nil && fl.Changed {
			return fl.Value.String(), true
		}
	}
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p, true
	}
	return DefaultFile, false
}

// envKey maps SOCIALNET_LOG_LEVEL to log.level.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

// flagKey maps --suggest-limit to suggest.limit.
func flagKey(fs *pflag.FlagSet) func(*pflag.Flag) (string, interface{}) {
	return func(fl *pflag.Flag) (string, interface{}) {
		return strings.ReplaceAll(fl.Name, "-", "."), posflag.FlagVal(fs, fl)
	}
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
