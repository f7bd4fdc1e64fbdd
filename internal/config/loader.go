package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/courseadvisor/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// DefaultPath is the configuration file looked up in the working directory
// when no path is given explicitly.
const DefaultPath = "advisor.hcl"

// Loader reads a configuration file into the format-agnostic File model.
type Loader interface {
	Load(ctx context.Context, path string) (*File, error)
}

// HCLLoader is the HCL implementation of Loader.
type HCLLoader struct {
	// Environ supplies the variables exposed as `env`. It defaults to os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *HCLLoader {
	return &HCLLoader{Environ: os.Environ}
}

// Load parses and decodes the HCL file at path.
func (l *HCLLoader) Load(ctx context.Context, path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return l.Decode(ctx, path, src)
}

// LoadOptional behaves like Load but returns (nil, nil) when path does not exist.
func (l *HCLLoader) LoadOptional(ctx context.Context, path string) (*File, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		ctxlog.FromContext(ctx).Debug("No config file found, using defaults.", "path", path)
		return nil, nil
	}
	return l.Load(ctx, path)
}

// Decode parses src as HCL; filename is only used in diagnostics.
func (l *HCLLoader) Decode(ctx context.Context, filename string, src []byte) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL config loader started.", "file", filename)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}

	var file File
	diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(), &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}

	logger.Debug("HCL config decoded.", "file", filename, "data_file", file.DataFile)
	return &file, nil
}

func (l *HCLLoader) evalContext() *hcl.EvalContext {
	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}

	env := make(map[string]cty.Value)
	for _, kv := range environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
