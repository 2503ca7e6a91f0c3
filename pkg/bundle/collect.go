// File: pkg/bundle/collect.go
package bundle

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Collect walks root recursively and returns the files matching selectors.
//
// If the first selector is AllSelector every file is returned in walk order.
// Otherwise each selector triggers its own walk and matches are appended in
// selector order, so a file matching two selectors appears twice.
func Collect(root string, selectors []string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Starting file collection", zap.String("root", root), zap.Strings("selectors", selectors))

	if len(selectors) == 0 {
		return nil, nil
	}

	if selectors[0] == AllSelector {
		files, err := walkFiles(root, func(string) bool { return true }, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to collect files under %s: %w", root, err)
		}
		logger.Debug("Collected all files", zap.Int("files", len(files)))
		return files, nil
	}

	var files []string
	for _, selector := range selectors {
		suffix := "." + selector
		matches, err := walkFiles(root, func(name string) bool {
			return strings.HasSuffix(name, suffix)
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to collect *.%s files under %s: %w", selector, root, err)
		}
		logger.Debug("Collected files for selector", zap.String("selector", selector), zap.Int("files", len(matches)))
		files = append(files, matches...)
	}

	return files, nil
}

// walkFiles returns every non-directory entry under root whose base name satisfies match.
func walkFiles(root string, match func(name string) bool, logger *zap.Logger) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return err
		}
		if d.IsDir() {
			return nil
		}
		if match(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
