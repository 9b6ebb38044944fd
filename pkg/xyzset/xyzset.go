package xyzset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Fatal discovery/selection conditions, matched with errors.Is at the top level.
var (
	ErrNoDirectory = errors.New("geometry directory not found")
	ErrNoFiles     = errors.New("no geometry files found")
	ErrNoSelection = errors.New("no valid files selected")
)

// File is an opaque reference to one geometry file. Only its path and base
// name are ever used; the contents are never read.
type File struct {
	Path string
}

// Name returns the file name including extension.
func (f File) Name() string {
	return filepath.Base(f.Path)
}

// Base returns the file name stripped of its extension, the stem used in
// every rendered output name.
func (f File) Base() string {
	name := filepath.Base(f.Path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Discover lists all files with the given extension under dir, sorted
// lexicographically. A missing directory and an empty match set are
// distinct fatal errors.
func Discover(dir, ext string) ([]File, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoDirectory, dir)
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no *%s files in %s", ErrNoFiles, ext, dir)
	}
	sort.Strings(matches)
	files := make([]File, 0, len(matches))
	for _, m := range matches {
		files = append(files, File{Path: m})
	}
	log.Debug().Str("dir", dir).Str("ext", ext).Int("count", len(files)).Msg("discovered geometry files")
	return files, nil
}

// ParseSelection resolves a selection string against files: "all" selects
// everything, otherwise space-separated 1-based indices. Out-of-range and
// non-numeric entries are dropped with a warning; an empty result is fatal.
func ParseSelection(input string, files []File) ([]File, []string, error) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "all") {
		return files, nil, nil
	}
	var selected []File
	var warnings []string
	for _, field := range strings.Fields(input) {
		idx, err := strconv.Atoi(field)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Invalid input: %s (skipped)", field))
			continue
		}
		if idx < 1 || idx > len(files) {
			warnings = append(warnings, fmt.Sprintf("Invalid index: %d (skipped)", idx))
			continue
		}
		selected = append(selected, files[idx-1])
	}
	if len(selected) == 0 {
		return nil, warnings, ErrNoSelection
	}
	return selected, warnings, nil
}
