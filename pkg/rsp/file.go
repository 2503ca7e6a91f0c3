package rsp

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultFileName is the response file written by the create-rsp command.
const DefaultFileName = "responseFile.rsp"

// ArgPrefix marks a command-line argument naming a response file to expand.
const ArgPrefix = "@"

// Lines renders the answers as bundle flags, one per line, in fixed order.
// Disabled boolean flags become empty lines. Values are written unquoted.
func (a Answers) Lines() []string {
	lines := []string{
		"--output " + a.Output,
		"--language " + a.Languages,
		"",
		"--sort " + a.Sort,
		"",
		"--author " + a.Author,
	}
	if a.Note {
		lines[2] = "--note"
	}
	if a.RemoveEmptyLines {
		lines[4] = "--remove-empty-lines"
	}
	return lines
}

// Write stores the answers at path, replacing any existing file, and returns its absolute path.
func Write(path string, answers Answers) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve response file path %s: %w", path, err)
	}

	var content strings.Builder
	for _, line := range answers.Lines() {
		content.WriteString(line)
		content.WriteString("\n")
	}

	if err := os.WriteFile(absPath, []byte(content.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write response file: %w", err)
	}
	return absPath, nil
}

// ExpandArgs replaces every "@path" argument with the tokens stored in that file.
// Other arguments pass through unchanged.
func ExpandArgs(args []string) ([]string, error) {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.HasPrefix(arg, ArgPrefix) || len(arg) == len(ArgPrefix) {
			expanded = append(expanded, arg)
			continue
		}
		tokens, err := readTokens(strings.TrimPrefix(arg, ArgPrefix))
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, tokens...)
	}
	return expanded, nil
}

// readTokens returns the arguments stored in a response file.
//
// Each line is split on whitespace and blank lines contribute nothing. A flag
// followed by a separator but no value ("--author ") yields an empty-string
// argument so the flag still receives its value.
func readTokens(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open response file: %w", err)
	}
	defer file.Close()

	var tokens []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		tokens = append(tokens, lineTokens(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read response file %s: %w", path, err)
	}
	return tokens, nil
}

// lineTokens splits one response-file line into arguments.
func lineTokens(line string) []string {
	line = strings.TrimLeftFunc(strings.TrimRight(line, "\r"), unicode.IsSpace)
	if line == "" {
		return nil
	}
	fields := strings.Fields(line)
	if len(fields) == 1 && strings.IndexFunc(line, unicode.IsSpace) >= 0 {
		return []string{fields[0], ""}
	}
	return fields
}
