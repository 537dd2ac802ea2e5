package search

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrInvalidText is returned for files that are not valid UTF-8.
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// ReadContents reads the whole file at path into memory.
// The file is closed before returning, whether the read succeeded or not.
// Files that are not valid UTF-8 text are rejected.
func ReadContents(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("unable to read %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("unable to read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidText)
	}
	return string(data), nil
}
