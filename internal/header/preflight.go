// Package header implements the scalar header-preflight pass: a single
// byte-at-a-time walk over the start of the input that fixes the column
// count, captures the designated header row, and locates where record data
// begins, before the vectorised scanner ever runs.
package header

// Config mirrors the structural-byte configuration the scanner uses, plus
// the 0-based index of the row to treat as the header.
type Config struct {
	Delim        byte
	Term         byte
	Quote        byte
	QuoteEnabled bool
	HeaderRow    int
}

// Set is the outcome of a preflight pass: the captured header names, the
// column count they fix for the rest of the parse, and the byte offset at
// which record data begins.
type Set struct {
	Names       []string
	ColumnCount int
	DataOffset  int
}

// Preflight scans data from the start, extracting the header row named by
// cfg.HeaderRow. A HeaderRow beyond end-of-file yields an empty Set with
// DataOffset set to len(data); an empty file yields a zero-column Set.
func Preflight(data []byte, cfg Config) Set {
	var names []string
	inQuote := false
	rowIdx := 0
	fieldStart := 0
	n := len(data)

	for p := 0; p < n; p++ {
		c := data[p]
		switch {
		case cfg.QuoteEnabled && c == cfg.Quote:
			inQuote = !inQuote
		case !inQuote && (c == cfg.Delim || c == cfg.Term):
			if rowIdx == cfg.HeaderRow {
				names = append(names, trim(data[fieldStart:p], cfg))
			}
			fieldStart = p + 1
			if c == cfg.Term {
				if rowIdx == cfg.HeaderRow {
					return Set{Names: names, ColumnCount: len(names), DataOffset: p + 1}
				}
				rowIdx++
			}
		}
	}

	if fieldStart < n && rowIdx == cfg.HeaderRow {
		names = append(names, trim(data[fieldStart:n], cfg))
	}
	return Set{Names: names, ColumnCount: len(names), DataOffset: n}
}

// trim strips one balanced outermost quote byte from each end of field, the
// same policy the Row Assembler applies to data fields.
func trim(field []byte, cfg Config) string {
	if cfg.QuoteEnabled && len(field) >= 2 && field[0] == cfg.Quote && field[len(field)-1] == cfg.Quote {
		field = field[1 : len(field)-1]
	}
	return string(field)
}
