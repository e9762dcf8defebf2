// Package plugins runs external recipemd-<command> binaries for commands
// the CLI does not implement itself, in the style of git and kubectl.
package plugins

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Prefix is prepended to a command name to form the plugin binary name.
const Prefix = "recipemd-"

// ErrPluginNotFound is returned when no plugin binary can be located.
var ErrPluginNotFound = errors.New("plugin not found")

// Finder locates plugin binaries.
type Finder struct {
	// Dirs are searched in order before PATH.
	Dirs []string
	// SkipPath disables the PATH lookup.
	SkipPath bool
}

// DefaultFinder searches the directory of the running binary, then
// ~/.recipemd/plugins, then PATH.
func DefaultFinder() *Finder {
	f := &Finder{}
	if execPath, err := os.Executable(); err == nil {
		f.Dirs = append(f.Dirs, filepath.Dir(execPath))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		f.Dirs = append(f.Dirs, filepath.Join(homeDir, ".recipemd", "plugins"))
	}
	return f
}

// Find returns the full path of the plugin for command.
func (f *Finder) Find(command string) (string, error) {
	if command == "" || strings.ContainsAny(command, `/\`) {
		return "", ErrPluginNotFound
	}
	name := Prefix + command

	for _, dir := range f.Dirs {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	if !f.SkipPath {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", ErrPluginNotFound
}

// Streams are the standard streams handed to a plugin process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's own standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Execute runs the plugin with the caller's environment and returns its exit
// code.
func Execute(ctx context.Context, pluginPath string, args []string, s Streams) int {
	cmd := exec.CommandContext(ctx, pluginPath, args...)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(s.Err, "Error executing plugin: %v\n", err)
		return 2
	}
	return 0
}

// NotFoundMessage explains where a plugin for command would be looked up.
func NotFoundMessage(command string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "unknown command %q for \"recipemd\"\n", command)
	sb.WriteString("\nIf this is a plugin, install the binary as one of:\n")
	fmt.Fprintf(&sb, "  - %s%s next to the recipemd binary\n", Prefix, command)
	fmt.Fprintf(&sb, "  - ~/.recipemd/plugins/%s%s\n", Prefix, command)
	fmt.Fprintf(&sb, "  - %s%s anywhere in your PATH\n", Prefix, command)
	sb.WriteString("\nRun 'recipemd --help' for usage.")

	return sb.String()
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode()&0111 != 0
}
