// Package rsp builds and replays response files for the bundle command.
package rsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt texts shown by the interactive builder.
const (
	bannerText         = "Enter values for the bundle command:"
	outputPrompt       = "Output file path: "
	outputRetryPrompt  = "Enter the output file path: "
	languagePrompt     = "Languages (comma-separated): "
	languageRetry      = "Please enter at least one programming language: "
	notePrompt         = "Add note (y/n): "
	sortPrompt         = "Sort by (abc or language): "
	removeEmptyPrompt  = "Remove empty lines (y/n): "
	authorPrompt       = "Author: "
	affirmativeAnswer  = "y"
	unexpectedEOFError = "input ended before a value was provided"
)

// Answers holds the values collected for a response file.
type Answers struct {
	Output           string
	Languages        string // Comma-separated, as typed.
	Note             bool
	Sort             string // Verbatim; not checked against the known modes.
	RemoveEmptyLines bool
	Author           string
}

// Builder asks for bundle parameters on an input stream and echoes prompts to an output stream.
type Builder struct {
	in  *bufio.Reader
	out io.Writer
}

// NewBuilder returns a Builder reading answers from in and writing prompts to out.
func NewBuilder(in io.Reader, out io.Writer) *Builder {
	return &Builder{in: bufio.NewReader(in), out: out}
}

// Collect prompts for every parameter in the fixed response-file order.
// Blank output and language answers are asked again until a value is given.
func (b *Builder) Collect() (Answers, error) {
	var answers Answers
	var err error

	if _, err = fmt.Fprintln(b.out, bannerText); err != nil {
		return Answers{}, err
	}

	if answers.Output, err = b.askRequired(outputPrompt, outputRetryPrompt); err != nil {
		return Answers{}, fmt.Errorf("failed to read output path: %w", err)
	}
	if answers.Languages, err = b.askRequired(languagePrompt, languageRetry); err != nil {
		return Answers{}, fmt.Errorf("failed to read languages: %w", err)
	}
	if answers.Note, err = b.askYesNo(notePrompt); err != nil {
		return Answers{}, fmt.Errorf("failed to read note choice: %w", err)
	}
	if answers.Sort, err = b.askOptional(sortPrompt); err != nil {
		return Answers{}, fmt.Errorf("failed to read sort mode: %w", err)
	}
	if answers.RemoveEmptyLines, err = b.askYesNo(removeEmptyPrompt); err != nil {
		return Answers{}, fmt.Errorf("failed to read empty-line choice: %w", err)
	}
	if answers.Author, err = b.askOptional(authorPrompt); err != nil {
		return Answers{}, fmt.Errorf("failed to read author: %w", err)
	}

	return answers, nil
}

// ask prints prompt and returns the next line without its line terminator.
// A final line without a newline is accepted; EOF with nothing read is returned as io.EOF.
func (b *Builder) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(b.out, prompt); err != nil {
		return "", err
	}
	line, err := b.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// askRequired keeps asking until a non-blank answer arrives.
func (b *Builder) askRequired(prompt, retryPrompt string) (string, error) {
	answer, err := b.ask(prompt)
	for {
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%s: %w", unexpectedEOFError, io.ErrUnexpectedEOF)
			}
			return "", err
		}
		if strings.TrimSpace(answer) != "" {
			return answer, nil
		}
		answer, err = b.ask(retryPrompt)
	}
}

// askOptional accepts any answer, blank included. End of input counts as blank.
func (b *Builder) askOptional(prompt string) (string, error) {
	answer, err := b.ask(prompt)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return answer, nil
}

// askYesNo returns true only for "y", ignoring case and surrounding whitespace.
func (b *Builder) askYesNo(prompt string) (bool, error) {
	answer, err := b.askOptional(prompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(answer)) == affirmativeAnswer, nil
}
