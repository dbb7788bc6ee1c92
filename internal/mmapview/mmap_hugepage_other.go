//go:build unix && !linux

package mmapview

// adviseHugePage is a no-op on unix platforms other than Linux, which do not
// expose an equivalent advisory.
func adviseHugePage(data []byte) {}
