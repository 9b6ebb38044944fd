package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

func write(path, content string, mode os.FileMode) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	// WriteFile keeps the mode of a pre-existing file; enforce it.
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(content)).Str("mode", mode.String()).Msg("file written")
	return nil
}

// WriteFile writes a plain text output file, overwriting any existing one.
func WriteFile(path, content string) error {
	return write(path, content, 0644)
}

// WriteScript writes a shell script and marks it executable for owner,
// group and others.
func WriteScript(path, content string) error {
	return write(path, content, 0755)
}
