package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
)

// Filesystem is the read side of a billy filesystem needed to list and open
// package archives
type Filesystem interface {
	billy.Basic
	billy.Dir
}

// Exists reports whether path exists on fs. Errors other than
// non-existence are returned.
func Exists(fs billy.Basic, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("cannot stat %s: %w", path, err)
}

// OpenSized opens path on fs and returns the file with its size, as needed
// by readers that work on an io.ReaderAt
func OpenSized(fs billy.Basic, path string) (billy.File, int64, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, 0, err
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, 0, err
	}

	return f, info.Size(), nil
}
