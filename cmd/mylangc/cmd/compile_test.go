package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRunCompileWritesAsmFile exercises the compile command end-to-end
// against a temp directory, calling command functions directly instead of
// shelling out to a built binary.
func TestRunCompileWritesAsmFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "script.ml")
	if err := os.WriteFile(src, []byte(`let x:int = 1; print(x);`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	outputFile = ""
	outputDir = dir
	entryPoint = ""
	emitComments = false
	disabledPasses = nil
	configPath = filepath.Join(dir, "does-not-exist.yaml")
	verbose = false

	if err := runCompile(nil, []string{src}); err != nil {
		t.Fatalf("runCompile: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "script.asm"))
	if err != nil {
		t.Fatalf("reading generated asm: %v", err)
	}
	if !strings.Contains(string(out), "global main") {
		t.Fatalf("expected generated NASM to declare main, got:\n%s", out)
	}
}

// TestRunCompileReportsParseErrors checks that a malformed program surfaces
// a non-nil error rather than writing a .asm file.
func TestRunCompileReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.ml")
	if err := os.WriteFile(src, []byte(`let x:int = ;`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	outputFile = ""
	outputDir = dir
	entryPoint = ""
	emitComments = false
	disabledPasses = nil
	configPath = filepath.Join(dir, "does-not-exist.yaml")
	verbose = false

	if err := runCompile(nil, []string{src}); err == nil {
		t.Fatalf("expected an error for a malformed program")
	}

	if _, err := os.Stat(filepath.Join(dir, "bad.asm")); !os.IsNotExist(err) {
		t.Fatalf("expected no .asm file to be written on parse failure")
	}
}
