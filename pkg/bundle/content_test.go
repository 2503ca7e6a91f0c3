package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveEmptyLines(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		preserve bool
		expected string
	}{
		{name: "concatenates_retained_lines", input: "a\n\nb\n   \nc", expected: "abc"},
		{name: "trailing_newline", input: "a\nb\n", expected: "ab"},
		{name: "tabs_are_whitespace", input: "\t\na\n\t \n", expected: "a"},
		{name: "only_blank", input: "\n \n\t", expected: ""},
		{name: "crlf_keeps_carriage_return", input: "a\r\n\r\nb\r\n", expected: "a\rb\r"},
		{name: "indentation_is_kept", input: "  a\n\n\tb", expected: "  a\tb"},
		{name: "preserve_line_breaks", input: "a\n\nb\n   \nc", preserve: true, expected: "a\nb\nc"},
		{name: "preserve_trailing_newline_dropped", input: "a\nb\n\n", preserve: true, expected: "a\nb"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RemoveEmptyLines(tc.input, tc.preserve))
		})
	}
}

func TestReadSection(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n\ntwo\n"), 0o644))

	section, err := ReadSection(path, Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "", section.Header)
	assert.Equal(t, "one\n\ntwo\n", section.Content)

	section, err = ReadSection(path, Options{Note: true, RemoveEmptyLines: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, "File: notes.txt\nLocation: "+path+"\n\n", section.Header)
	assert.Equal(t, "onetwo", section.Content)
}

func TestReadSectionMissingFile(t *testing.T) {
	_, err := ReadSection(filepath.Join(t.TempDir(), "gone.go"), Options{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
