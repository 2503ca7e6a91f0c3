// File: pkg/bundle/bundle.go
package bundle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Bundle orders paths and writes them into options.Output, returning the
// absolute output path.
//
// An empty paths slice returns ErrNoFilesFound without touching the output.
// Any I/O error aborts the run and leaves whatever was already written on disk.
func Bundle(paths []string, options Options, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(paths) == 0 {
		logger.Warn("No files to bundle")
		return "", ErrNoFilesFound
	}

	absOutput, err := filepath.Abs(options.Output)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path %s: %w", options.Output, err)
	}

	ordered := Order(paths, options.Sort)
	logger.Debug("Ordered files", zap.String("sort", options.Sort.String()), zap.Int("files", len(ordered)))

	if err := writeBundle(absOutput, ordered, options, logger); err != nil {
		return "", err
	}

	logger.Info("Successfully bundled files",
		zap.String("outputFile", absOutput),
		zap.Int("totalFiles", len(ordered)),
	)
	return absOutput, nil
}

// writeBundle creates the output file and writes the author line followed by every section.
func writeBundle(absOutput string, ordered []string, options Options, logger *zap.Logger) (err error) {
	logger.Debug("Writing bundle to output file", zap.String("outputFile", absOutput))

	outFile, err := os.Create(absOutput)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", absOutput), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	writer := bufio.NewWriter(outFile)
	defer func() {
		// Flush what was written so far even on failure; there is no rollback.
		if flushErr := writer.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("failed to flush output: %w", flushErr)
		}
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	if _, err := writer.WriteString("Author: " + options.Author + "\n"); err != nil {
		return fmt.Errorf("failed to write author line: %w", err)
	}

	for _, path := range ordered {
		if isSameFile(path, absOutput) {
			logger.Debug("Skipping bundle output file", zap.String("filePath", path))
			continue
		}

		section, err := ReadSection(path, options, logger)
		if err != nil {
			return err
		}

		if _, err := writer.WriteString(section.Header + section.Content + "\n\n"); err != nil {
			logger.Error("Failed to write content to bundle",
				zap.String("file", absOutput),
				zap.String("contentPath", path),
				zap.Error(err))
			return fmt.Errorf("failed to write content: %w", err)
		}
	}

	return nil
}

// isSameFile reports whether path resolves to absOutput.
func isSameFile(path, absOutput string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return absPath == absOutput
}
