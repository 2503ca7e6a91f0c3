// File: pkg/bundle/content.go
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Section is the rendered text for one bundled file.
type Section struct {
	Path    string // Path as collected.
	Header  string // Provenance note, empty when notes are disabled.
	Content string // File content after any line filtering.
}

// RemoveEmptyLines drops every line that is empty or whitespace-only.
//
// With preserveLineBreaks false the retained lines are concatenated with no
// separator, which merges them into a single line. This matches the format
// earlier bundles were produced with. Pass true to re-join them with "\n".
func RemoveEmptyLines(content string, preserveLineBreaks bool) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}

	separator := ""
	if preserveLineBreaks {
		separator = "\n"
	}
	return strings.Join(kept, separator)
}

// noteHeader builds the File/Location block written ahead of a file's content.
func noteHeader(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s: %w", path, err)
	}
	return fmt.Sprintf("File: %s\nLocation: %s\n\n", filepath.Base(path), absPath), nil
}

// ReadSection reads a single file and applies the note and empty-line options.
func ReadSection(path string, options Options, logger *zap.Logger) (Section, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Processing file", zap.String("filePath", path))

	section := Section{Path: path}
	if options.Note {
		header, err := noteHeader(path)
		if err != nil {
			logger.Error("Failed to build note", zap.String("filePath", path), zap.Error(err))
			return Section{}, err
		}
		section.Header = header
	}

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read file", zap.String("filePath", path), zap.Error(err))
		return Section{}, fmt.Errorf("error reading file %s: %w", path, err)
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", path),
		zap.Int("contentSizeBytes", len(fileBytes)))

	if looksBinary(fileBytes) {
		logger.Warn("Bundling file that looks binary", zap.String("filePath", path))
	}

	section.Content = string(fileBytes)
	if options.RemoveEmptyLines {
		section.Content = RemoveEmptyLines(section.Content, options.PreserveLineBreaks)
	}
	return section, nil
}
