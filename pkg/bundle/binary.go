// File: pkg/bundle/binary.go
package bundle

import "bytes"

// sniffLength is how much of a file's head is inspected by looksBinary.
const sniffLength = 512

// looksBinary reports whether data is likely binary: it contains a NUL byte in
// its first sniffLength bytes, or more than 30% of them are non-printable.
// Binary files are still bundled; callers only warn about them.
func looksBinary(data []byte) bool {
	if len(data) > sniffLength {
		data = data[:sniffLength]
	}
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range data {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(data)) > 0.3
}

// isPrintable treats printable ASCII, common whitespace and UTF-8 bytes as text.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 0x80
}
