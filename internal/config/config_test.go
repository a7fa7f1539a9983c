package config

import (
	"os"
	"path/filepath"
	"testing"

	"mylangc/internal/optimizer"
)

func TestNewAppliesDefaults(t *testing.T) {
	o := New()
	if o.EntryPoint != "main" {
		t.Fatalf("EntryPoint = %q, want %q", o.EntryPoint, "main")
	}
	if o.OutputDir != "." {
		t.Fatalf("OutputDir = %q, want %q", o.OutputDir, ".")
	}
	if o.EmitComments {
		t.Fatal("EmitComments should default to false")
	}
}

func TestWithOptionsOverrideDefaults(t *testing.T) {
	o := New(
		WithEntryPoint("start"),
		WithOutputDir("build"),
		WithEmitComments(true),
		WithDisabledPass(optimizer.PassCopyPropagation),
	)
	if o.EntryPoint != "start" {
		t.Fatalf("EntryPoint = %q, want %q", o.EntryPoint, "start")
	}
	if o.OutputDir != "build" {
		t.Fatalf("OutputDir = %q, want %q", o.OutputDir, "build")
	}
	if !o.EmitComments {
		t.Fatal("EmitComments should be true")
	}
	if len(o.DisabledPasses) != 1 || o.DisabledPasses[0] != optimizer.PassCopyPropagation {
		t.Fatalf("DisabledPasses = %v, want [%s]", o.DisabledPasses, optimizer.PassCopyPropagation)
	}

	opts := o.OptimizerOptions()
	if len(opts) != 1 {
		t.Fatalf("OptimizerOptions() returned %d options, want 1", len(opts))
	}
}

func TestLoadReturnsNilForMissingFile(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts != nil {
		t.Fatalf("expected nil opts for a missing file, got %v", opts)
	}
}

func TestLoadParsesYAMLConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".mylangc.yaml")
	yamlContent := "disabled_passes:\n  - constant_folding\n  - branch_simplification\noutput_dir: build\nemit_comments: true\n"
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	o := New(opts...)
	if o.OutputDir != "build" {
		t.Fatalf("OutputDir = %q, want %q", o.OutputDir, "build")
	}
	if !o.EmitComments {
		t.Fatal("EmitComments should be true")
	}
	if len(o.DisabledPasses) != 2 {
		t.Fatalf("DisabledPasses = %v, want 2 entries", o.DisabledPasses)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".mylangc.yaml")
	if err := os.WriteFile(path, []byte("disabled_passes: [unterminated"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
