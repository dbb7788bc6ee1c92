package simdcsv

// DefaultPrefetchChunk is the default distance, in bytes, the prefetch
// worker stays ahead of the scanner, chosen from the 2 MiB-64 MiB range
// observed across iterations of this engine.
const DefaultPrefetchChunk = 4 * 1024 * 1024

// Format describes the byte-oriented structure of one input: no
// character-set interpretation is performed, every structural byte is a
// single-byte literal configured here.
type Format struct {
	Delimiter    byte
	Terminator   byte
	Quote        byte
	QuoteEnabled bool
	HeaderRow    int
}

// DefaultFormat returns comma-delimited, newline-terminated, unquoted input
// with the header on the first row — the defaults named by the external
// interface.
func DefaultFormat() Format {
	return Format{
		Delimiter:  ',',
		Terminator: '\n',
		HeaderRow:  0,
	}
}

// WithQuote returns a copy of f with quote handling enabled using q. Quote
// handling is optional: a Format with QuoteEnabled false treats quote bytes
// as ordinary data and skips the quote-mask computation entirely.
func (f Format) WithQuote(q byte) Format {
	f.Quote = q
	f.QuoteEnabled = true
	return f
}

// WithHeaderRow returns a copy of f with the header row set to the given
// 0-based index.
func (f Format) WithHeaderRow(row int) Format {
	f.HeaderRow = row
	return f
}
