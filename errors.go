package simdcsv

import "github.com/lehoai/simdcsv/internal/mmapview"

// OpenError indicates the input file could not be opened for reading.
type OpenError = mmapview.OpenError

// StatError indicates the input file's size could not be determined.
type StatError = mmapview.StatError

// MapError indicates the file could not be memory-mapped.
type MapError = mmapview.MapError
