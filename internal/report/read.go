package report

import (
	"fmt"
	"io"
	"os"
)

// ReadFile loads the whole report into memory and releases the handle.
// Any failure to open the file is ErrFileNotFound; a file that opens but
// cannot be read to the end (a directory, an I/O fault) is ErrRead.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	return string(data), nil
}
