package main

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/drengskapur/bundler/cmd"
	"github.com/drengskapur/bundler/pkg/logging"
	"github.com/drengskapur/bundler/pkg/version"
)

func main() {
	args := os.Args[1:]

	logger, err := logging.New(debugRequested(args), "bundler", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(logger, args); err != nil {
		logger.Error("bundler execution failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	}
	syncLogger(logger)
}

// debugRequested reports whether --debug appears before any "--" terminator.
func debugRequested(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--"+cmd.DebugFlag || arg == "--"+cmd.DebugFlag+"=true" {
			return true
		}
	}
	return false
}

// syncLogger flushes the logger when stderr can be synced; terminals and pipes
// on some platforms return "invalid argument", which is not worth reporting.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
