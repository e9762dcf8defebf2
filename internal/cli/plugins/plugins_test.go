package plugins

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeScript(t *testing.T, dir, name, body string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), mode); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestFind_NotFound(t *testing.T) {
	f := &Finder{Dirs: []string{t.TempDir()}, SkipPath: true}
	if _, err := f.Find("nonexistent"); err != ErrPluginNotFound {
		t.Errorf("expected ErrPluginNotFound, got %v", err)
	}
}

func TestFind_SearchOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeScript(t, second, "recipemd-export", "exit 0", 0755)
	want := writeScript(t, first, "recipemd-export", "exit 0", 0755)

	f := &Finder{Dirs: []string{first, second}, SkipPath: true}
	got, err := f.Find("export")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFind_SkipsNonExecutable(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "recipemd-export", "exit 0", 0644)

	f := &Finder{Dirs: []string{dir}, SkipPath: true}
	if _, err := f.Find("export"); err != ErrPluginNotFound {
		t.Errorf("expected ErrPluginNotFound, got %v", err)
	}
}

func TestFind_RejectsPathSeparators(t *testing.T) {
	f := &Finder{Dirs: []string{t.TempDir()}, SkipPath: true}
	for _, name := range []string{"", "../x", `a\b`} {
		if _, err := f.Find(name); err != ErrPluginNotFound {
			t.Errorf("Find(%q): expected ErrPluginNotFound, got %v", name, err)
		}
	}
}

func TestExecute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}
	dir := t.TempDir()
	path := writeScript(t, dir, "recipemd-echo", `echo "$1 $RECIPEMD_CONFIG"; exit 3`, 0755)
	t.Setenv("RECIPEMD_CONFIG", "cfg.yaml")

	var out, errOut bytes.Buffer
	code := Execute(context.Background(), path, []string{"hello"},
		Streams{In: strings.NewReader(""), Out: &out, Err: &errOut})

	if code != 3 {
		t.Errorf("expected exit code 3, got %d", code)
	}
	if got := strings.TrimSpace(out.String()); got != "hello cfg.yaml" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestExecute_MissingBinary(t *testing.T) {
	var errOut bytes.Buffer
	code := Execute(context.Background(), filepath.Join(t.TempDir(), "missing"), nil,
		Streams{Out: &bytes.Buffer{}, Err: &errOut})

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(errOut.String(), "Error executing plugin") {
		t.Errorf("unexpected stderr %q", errOut.String())
	}
}

func TestNotFoundMessage(t *testing.T) {
	msg := NotFoundMessage("export")

	for _, want := range []string{`"export"`, "recipemd-export", "~/.recipemd/plugins/", "recipemd --help"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q:\n%s", want, msg)
		}
	}
}

func TestIsExecutable(t *testing.T) {
	tmpDir := t.TempDir()

	nonExec := writeScript(t, tmpDir, "nonexec", "", 0644)
	if isExecutable(nonExec) {
		t.Error("non-executable file should not be detected as executable")
	}

	exe := writeScript(t, tmpDir, "exec", "", 0755)
	if !isExecutable(exe) {
		t.Error("executable file should be detected as executable")
	}

	if isExecutable(tmpDir) {
		t.Error("directory should not be detected as executable")
	}
	if isExecutable(filepath.Join(tmpDir, "nonexistent")) {
		t.Error("non-existent file should not be detected as executable")
	}
}
