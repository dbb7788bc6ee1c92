//go:build linux

package mmapview

import "golang.org/x/sys/unix"

// adviseHugePage requests transparent huge pages for the mapping, matching
// the MADV_HUGEPAGE hint used by the original implementation. It is best
// effort: failure does not affect correctness, only throughput.
func adviseHugePage(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_HUGEPAGE)
}
