// File: pkg/bundle/options.go
package bundle

import "errors"

// AllSelector matches every file regardless of extension when it is the first selector.
const AllSelector = "all"

// ErrNoFilesFound is returned by Bundle when there is nothing to concatenate.
var ErrNoFilesFound = errors.New("no files found to concatenate")

// SortMode determines the order in which collected files are written.
type SortMode int

const (
	SortUnspecified SortMode = iota // Keep the collector's order.
	SortByName                      // Ascending by full path string.
	SortByExtension                 // Ascending by extension, stable within an extension.
)

// CLI tokens for the recognised sort modes.
const (
	SortByNameToken      = "abc"
	SortByExtensionToken = "language"
)

// ParseSortMode maps a CLI token to a SortMode.
// Unrecognised text yields SortUnspecified rather than an error.
func ParseSortMode(token string) SortMode {
	switch token {
	case SortByNameToken:
		return SortByName
	case SortByExtensionToken:
		return SortByExtension
	default:
		return SortUnspecified
	}
}

// String returns the CLI token for the mode, or "" for SortUnspecified.
func (m SortMode) String() string {
	switch m {
	case SortByName:
		return SortByNameToken
	case SortByExtension:
		return SortByExtensionToken
	default:
		return ""
	}
}

// Options holds the configuration for a single bundle run.
type Options struct {
	Output             string   // Destination path for the bundle; truncated if it exists.
	Selectors          []string // Extension tokens, or AllSelector first.
	Note               bool     // Write a File/Location header before each file.
	Sort               SortMode // Ordering applied to collected paths.
	RemoveEmptyLines   bool     // Drop blank and whitespace-only lines.
	PreserveLineBreaks bool     // With RemoveEmptyLines, re-join retained lines with "\n".
	Author             string   // Written on the first line of the bundle.
}
