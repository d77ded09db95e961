// Package files resolves CLI path arguments into concrete text files.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// textExtensions are the file extensions treated as text input when
// walking directories.
var textExtensions = map[string]bool{
	".txt":      true,
	".text":     true,
	".md":       true,
	".markdown": true,
}

// isText returns true if the file extension marks a supported text file.
func isText(path string) bool {
	return textExtensions[strings.ToLower(filepath.Ext(path))]
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Resolve takes positional arguments and returns deduplicated, sorted
// text file paths. It supports individual files, directories (walked
// recursively for text extensions, skipping dot-directories), and glob
// patterns including **. Returns an error for nonexistent paths that
// are not glob patterns. Explicitly named files are accepted whatever
// their extension.
func Resolve(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	addFile := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if err := resolveArg(arg, addFile); err != nil {
			return nil, err
		}
	}

	sort.Strings(result)
	return result, nil
}

// resolveArg resolves a single argument (glob, directory, or file) and
// calls addFile for each text file found.
func resolveArg(arg string, addFile func(string)) error {
	if hasGlobChars(arg) {
		return resolveGlob(arg, addFile)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if info.IsDir() {
		return addDirFiles(arg, addFile)
	}

	addFile(arg)
	return nil
}

// resolveGlob expands a glob pattern and adds matching text files.
func resolveGlob(pattern string, addFile func(string)) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := addDirFiles(m, addFile); err != nil {
				return err
			}
		} else if isText(m) {
			addFile(m)
		}
	}
	return nil
}

// addDirFiles walks a directory and adds all text files found. Hidden
// directories (dot-prefixed, e.g. .git) are skipped.
func addDirFiles(dir string, addFile func(string)) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if isText(path) {
			addFile(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %q: %w", dir, err)
	}
	return nil
}
