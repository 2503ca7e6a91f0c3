package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestBundleEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b.go": "package b\n",
		"a.go": "package a\n",
	})
	output := filepath.Join(t.TempDir(), "bundle.txt")

	paths, err := Collect(root, []string{"go"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	written, err := Bundle(paths, Options{
		Output:    output,
		Selectors: []string{"go"},
		Sort:      ParseSortMode("abc"),
		Author:    "Alice",
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, output, written)

	expected := "Author: Alice\n" +
		"package a\n" + "\n" + "\n" +
		"package b\n" + "\n" + "\n"
	assert.Equal(t, expected, readFile(t, output))
}

func TestBundleWithNotes(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"notes.txt": "hello"})
	notesPath := filepath.Join(root, "notes.txt")
	output := filepath.Join(t.TempDir(), "out.txt")

	_, err := Bundle([]string{notesPath}, Options{Output: output, Note: true}, nil)
	require.NoError(t, err)

	expected := "Author: \n" +
		"File: notes.txt\n" +
		"Location: " + notesPath + "\n" +
		"\n" +
		"hello\n\n"
	assert.Equal(t, expected, readFile(t, output))
}

func TestBundleRemoveEmptyLines(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"x.txt": "a\n\nb\n   \nc"})
	output := filepath.Join(t.TempDir(), "out.txt")

	_, err := Bundle([]string{filepath.Join(root, "x.txt")}, Options{Output: output, RemoveEmptyLines: true, Author: "A"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Author: A\nabc\n\n", readFile(t, output))

	_, err = Bundle([]string{filepath.Join(root, "x.txt")}, Options{
		Output:             output,
		RemoveEmptyLines:   true,
		PreserveLineBreaks: true,
		Author:             "A",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Author: A\na\nb\nc\n\n", readFile(t, output))
}

func TestBundleSortByExtension(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"x.py": "py", "y.txt": "txt"})
	output := filepath.Join(t.TempDir(), "out.txt")

	paths := []string{filepath.Join(root, "y.txt"), filepath.Join(root, "x.py")}
	_, err := Bundle(paths, Options{Output: output, Sort: SortByExtension}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Author: \npy\n\ntxt\n\n", readFile(t, output))
}

func TestBundleNoFilesLeavesOutputUntouched(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(output, []byte("previous"), 0o644))

	_, err := Bundle(nil, Options{Output: output, Author: "A"}, nil)
	assert.ErrorIs(t, err, ErrNoFilesFound)
	assert.Equal(t, "previous", readFile(t, output))
}

func TestBundleNoFilesDoesNotCreateOutput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.txt")

	_, err := Bundle([]string{}, Options{Output: output}, nil)
	assert.ErrorIs(t, err, ErrNoFilesFound)
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBundleOverwritesExistingOutput(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.go": "new"})
	output := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(output, []byte("stale content that is longer"), 0o644))

	_, err := Bundle([]string{filepath.Join(root, "a.go")}, Options{Output: output, Author: "B"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Author: B\nnew\n\n", readFile(t, output))
}

func TestBundleMissingFileLeavesPartialOutput(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.go": "first"})
	output := filepath.Join(t.TempDir(), "out.txt")

	paths := []string{filepath.Join(root, "a.go"), filepath.Join(root, "vanished.go")}
	_, err := Bundle(paths, Options{Output: output, Sort: SortByName, Author: "C"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "Author: C\nfirst\n\n", readFile(t, output))
}

func TestBundleInvalidOutputPath(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.go": "a"})

	output := filepath.Join(root, "missing-dir", "out.txt")
	_, err := Bundle([]string{filepath.Join(root, "a.go")}, Options{Output: output}, nil)
	assert.Error(t, err)
}

func TestBundleSkipsItsOwnOutput(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a", "out.txt": "old bundle"})
	output := filepath.Join(root, "out.txt")

	paths, err := Collect(root, []string{"txt"}, nil)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	_, err = Bundle(paths, Options{Output: output, Sort: SortByName}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Author: \na\n\n", readFile(t, output))
}
