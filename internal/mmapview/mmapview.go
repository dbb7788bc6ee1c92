// Package mmapview exposes a file as a single contiguous read-only byte
// range for the lifetime of a View, with no userland double-buffering.
package mmapview

import "os"

// View is a read-only contiguous byte range over a file, released on Close.
type View struct {
	data  []byte
	unmap func() error
}

// Open opens path read-only, determines its length, and requests a private
// read-only mapping of the whole file. On platforms without mmap support the
// file is read into memory instead; callers observe the same byte range
// either way.
func Open(path string) (*View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &StatError{Path: path, Err: err}
	}

	data, unmap, err := mapFile(f, info.Size())
	if err != nil {
		return nil, &MapError{Path: path, Err: err}
	}

	return &View{data: data, unmap: unmap}, nil
}

// Bytes returns the mapped byte range. The slice is valid until Close.
func (v *View) Bytes() []byte { return v.data }

// Len returns the byte length of the mapped range.
func (v *View) Len() int { return len(v.data) }

// Close unmaps the region; the file descriptor itself is already closed by
// Open once the mapping exists. It is idempotent and safe to call more than
// once.
func (v *View) Close() error {
	if v.unmap == nil {
		return nil
	}
	unmap := v.unmap
	v.unmap = nil
	return unmap()
}
