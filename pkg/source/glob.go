package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandInputs turns files, glob patterns and directories into a
// deduplicated, sorted list of paths. Directories contribute their direct
// children whose extension is in exts. Patterns that match nothing are kept
// as-is so the caller reports a useful file-not-found error. "-" is passed
// through and always sorts first.
func ExpandInputs(patterns []string, exts []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	stdin := false

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, pattern := range patterns {
		if pattern == StdinName {
			stdin = true
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			add(pattern)
			continue
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.IsDir() {
				add(match)
				continue
			}
			files, err := listDir(match, exts)
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				add(f)
			}
		}
	}

	sort.Strings(result)
	if stdin {
		result = append([]string{StdinName}, result...)
	}
	return result, nil
}

func listDir(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !hasExtension(e.Name(), exts) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range exts {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}
