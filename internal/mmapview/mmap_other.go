//go:build !unix

package mmapview

import (
	"io"
	"os"
)

// mapFile falls back to reading the whole file into memory on platforms
// without a mmap syscall exposed through golang.org/x/sys/unix. Callers see
// the same []byte range; only the resource-acquisition strategy differs.
func mapFile(f *os.File, size int64) ([]byte, func() error, error) {
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}

	return data, func() error { return nil }, nil
}
