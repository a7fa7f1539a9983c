// Package config holds compile-time options for the pipeline and an
// optional project-level YAML file that supplies defaults for them.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"mylangc/internal/optimizer"
)

// CompileOptions controls one invocation of the compiler pipeline: which
// optimizer passes run, the NASM entry point name, and whether NASM
// comments are emitted. Built with functional options, following this
// codebase's `WithXxx(...) Option` convention.
type CompileOptions struct {
	DisabledPasses []optimizer.Pass
	EntryPoint     string
	EmitComments   bool
	OutputDir      string
}

// Option configures a CompileOptions.
type Option func(*CompileOptions)

// WithDisabledPass disables a single optimizer pass by name.
func WithDisabledPass(p optimizer.Pass) Option {
	return func(o *CompileOptions) {
		o.DisabledPasses = append(o.DisabledPasses, p)
	}
}

// WithEntryPoint overrides the NASM entry label name (default "main").
func WithEntryPoint(name string) Option {
	return func(o *CompileOptions) { o.EntryPoint = name }
}

// WithEmitComments turns on explanatory NASM comments in generated output.
func WithEmitComments(emit bool) Option {
	return func(o *CompileOptions) { o.EmitComments = emit }
}

// WithOutputDir sets the directory generated .asm files are written to.
func WithOutputDir(dir string) Option {
	return func(o *CompileOptions) { o.OutputDir = dir }
}

// New builds a CompileOptions with MyLang's defaults, then applies opts in
// order.
func New(opts ...Option) *CompileOptions {
	o := &CompileOptions{
		EntryPoint: "main",
		OutputDir:  ".",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OptimizerOptions converts DisabledPasses into the Option slice
// optimizer.Optimize expects.
func (o *CompileOptions) OptimizerOptions() []optimizer.Option {
	opts := make([]optimizer.Option, 0, len(o.DisabledPasses))
	for _, p := range o.DisabledPasses {
		opts = append(opts, optimizer.WithoutPass(p))
	}
	return opts
}

// fileConfig is the shape of a project-level `.mylangc.yaml` file: an
// optional list of optimizer passes to disable by name and an output
// directory default.
type fileConfig struct {
	DisabledPasses []string `yaml:"disabled_passes"`
	OutputDir      string   `yaml:"output_dir"`
	EmitComments   bool     `yaml:"emit_comments"`
}

// Load reads a `.mylangc.yaml` project config, if present, and returns the
// Options derived from it. A missing file is not an error: it yields the
// zero-value (no overrides).
func Load(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	var opts []Option
	for _, name := range fc.DisabledPasses {
		opts = append(opts, WithDisabledPass(optimizer.Pass(name)))
	}
	if fc.OutputDir != "" {
		opts = append(opts, WithOutputDir(fc.OutputDir))
	}
	if fc.EmitComments {
		opts = append(opts, WithEmitComments(true))
	}
	return opts, nil
}
