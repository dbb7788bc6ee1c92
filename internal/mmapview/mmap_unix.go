//go:build unix

package mmapview

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile requests a private read-only mapping of the whole file and
// applies sequential-access and huge-page advisories where the platform
// supports them. Advisory failures are not fatal: correctness does not
// depend on the kernel honouring them.
func mapFile(f *os.File, size int64) ([]byte, func() error, error) {
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}

	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	adviseHugePage(data)

	return data, func() error { return unix.Munmap(data) }, nil
}
