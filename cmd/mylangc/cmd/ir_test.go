package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunIRPrintsTextListing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "script.ml")
	if err := os.WriteFile(src, []byte(`let x:int = 1; print(x);`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	configPath = filepath.Join(dir, "does-not-exist.yaml")
	irJSON = false
	irNoOptimize = false
	verbose = false

	stdout := captureStdout(t, func() {
		if err := runIR(nil, []string{src}); err != nil {
			t.Fatalf("runIR: %v", err)
		}
	})

	if !strings.Contains(stdout, "print") {
		t.Fatalf("expected a print instruction in the listing, got:\n%s", stdout)
	}
}

func TestRunIRPrintsJSON(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "script.ml")
	if err := os.WriteFile(src, []byte(`let x:int = 1; print(x);`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	configPath = filepath.Join(dir, "does-not-exist.yaml")
	irJSON = true
	irNoOptimize = false
	verbose = false
	defer func() { irJSON = false }()

	stdout := captureStdout(t, func() {
		if err := runIR(nil, []string{src}); err != nil {
			t.Fatalf("runIR: %v", err)
		}
	})

	if !strings.Contains(stdout, `"kind":"Print"`) {
		t.Fatalf("expected a JSON-encoded Print instruction, got:\n%s", stdout)
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}
