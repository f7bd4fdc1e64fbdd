package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/courseadvisor/internal/config"
	"github.com/specialistvlad/courseadvisor/internal/ctxlog"
	"github.com/specialistvlad/courseadvisor/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string
	DataFile   string

	LogFormat string
	LogLevel  string

	Output string
	Accent string
}

// Defaults returns the built-in configuration, the lowest precedence layer.
func Defaults() Config {
	return Config{
		LogFormat: "text",
		LogLevel:  "warn",
		Output:    string(render.FormatText),
		Accent:    render.DefaultAccent,
	}
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	format, err := render.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}
	cfg.Output = string(format)

	return &cfg, nil
}

// overlay copies every non-empty field of top onto c.
func (c Config) overlay(top Config) Config {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.ConfigPath, top.ConfigPath)
	set(&c.DataFile, top.DataFile)
	set(&c.LogFormat, top.LogFormat)
	set(&c.LogLevel, top.LogLevel)
	set(&c.Output, top.Output)
	set(&c.Accent, top.Accent)
	return c
}

func fromFile(f *config.File) Config {
	if f == nil {
		return Config{}
	}
	cfg := Config{DataFile: f.DataFile}
	if f.Log != nil {
		cfg.LogLevel = f.Log.Level
		cfg.LogFormat = f.Log.Format
	}
	if f.Output != nil {
		cfg.Output = f.Output.Format
		cfg.Accent = f.Output.Accent
	}
	return cfg
}

// ConfigLoader is the subset of config.HCLLoader the resolver needs.
type ConfigLoader interface {
	config.Loader
	LoadOptional(ctx context.Context, path string) (*config.File, error)
}

// ResolveConfig layers defaults, the configuration file and flags, in that
// order of precedence. flags holds only the values the user set explicitly.
// An explicitly named config file must exist; the default one is optional.
func ResolveConfig(ctx context.Context, loader ConfigLoader, flags Config) (*Config, error) {
	logger := ctxlog.FromContext(ctx)

	var (
		file *config.File
		err  error
	)
	if flags.ConfigPath != "" {
		file, err = loader.Load(ctx, flags.ConfigPath)
	} else {
		file, err = loader.LoadOptional(ctx, config.DefaultPath)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration file processed.", "found", file != nil)

	return NewConfig(Defaults().overlay(fromFile(file)).overlay(flags))
}
