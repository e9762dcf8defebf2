package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/recipemd/internal/cli/commands"
	"github.com/ccollicutt/recipemd/internal/cli/plugins"
)

func runCLI(t *testing.T, finder *plugins.Finder, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Cleanup(func() { commands.ExitCode = commands.ExitOK })

	var out, errOut bytes.Buffer
	code := Run(context.Background(), args, plugins.Streams{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: &errOut,
	}, finder)
	return code, out.String(), errOut.String()
}

func noPlugins(t *testing.T) *plugins.Finder {
	return &plugins.Finder{Dirs: []string{t.TempDir()}, SkipPath: true}
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand(&commands.Globals{})

	for _, name := range []string{"parse", "format", "diagnose", "serve", "validate", "version"} {
		assert.True(t, isBuiltinCommand(root, name), "missing command %s", name)
	}
	for _, flag := range []string{"config", "verbose", "log-json"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI(t, noPlugins(t), "", "version")

	assert.Equal(t, 0, code)
	assert.Equal(t, "recipemd dev\n", out)
}

func TestRun_ExitCodes(t *testing.T) {
	doc := "# Soup\n- water\n\nBoil\n"

	code, _, _ := runCLI(t, noPlugins(t), doc, "parse", "-q", "-")
	assert.Equal(t, commands.ExitOK, code)

	code, _, _ = runCLI(t, noPlugins(t), "# Soup\n", "parse", "-q", "-")
	assert.Equal(t, commands.ExitFindings, code)

	code, _, stderr := runCLI(t, noPlugins(t), "", "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, commands.ExitError, code)
	assert.Contains(t, stderr, "Error:")
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, noPlugins(t), "", "export")

	assert.Equal(t, commands.ExitError, code)
	assert.Contains(t, stderr, "recipemd-export")
}

func TestRun_Plugin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}
	dir := t.TempDir()
	script := "#!/bin/sh\necho plugin \"$@\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recipemd-export"), []byte(script), 0755))

	finder := &plugins.Finder{Dirs: []string{dir}, SkipPath: true}
	code, out, _ := runCLI(t, finder, "", "export", "--all")

	assert.Equal(t, 0, code)
	assert.Equal(t, "plugin --all\n", out)
}

func TestFirstCommand(t *testing.T) {
	assert.Equal(t, "", firstCommand(nil))
	assert.Equal(t, "", firstCommand([]string{"--verbose", "parse"}))
	assert.Equal(t, "parse", firstCommand([]string{"parse", "-"}))
}
