package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Emit creates path and fills it with render. An existing file is left
// untouched and reported as (false, nil); it is treated as already
// generated.
func Emit(path string, render func(w io.Writer) error) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := render(bw); err != nil {
		return true, err
	}

	if err := bw.Flush(); err != nil {
		return true, fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return true, fmt.Errorf("closing %s: %w", path, err)
	}

	return true, nil
}
