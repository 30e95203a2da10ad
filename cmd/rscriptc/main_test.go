package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %s", err)
	}
	return path
}

func TestRun_CleanFileExitsZero(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "ok.ts", "let x: number = 1;\n")

	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("opening devnull: %s", err)
	}
	defer devnull.Close()

	code := run([]string{path}, devnull, devnull)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
}

func TestRun_UnresolvedNameExitsOne(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "bad.ts", "let x = y;\n")

	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("opening devnull: %s", err)
	}
	defer devnull.Close()

	code := run([]string{path}, devnull, devnull)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}

func TestRun_NoArgsExitsUsage(t *testing.T) {
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("opening devnull: %s", err)
	}
	defer devnull.Close()

	code := run(nil, devnull, devnull)
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}
