// Package rowbuf implements the Row Assembler: a fixed-width row buffer
// that accumulates field slices as structural events arrive from the
// scanner and invokes a delivery callback on each record boundary.
package rowbuf

// FieldSlice is a reference into the mapped input, valid only for the
// duration of one delivery callback invocation.
type FieldSlice = []byte

// Row is a fixed-width array of exactly ColumnCount FieldSlices.
type Row []FieldSlice

// Deliver receives one assembled row and the column count it was sized to.
// Positions beyond the record's actual field count are empty slices. The
// row must not be retained or mutated past the call.
type Deliver func(row Row, columnCount int)

// Assembler maintains the fixed-width row buffer described by the Row
// Assembler component: it never reallocates during a parse.
type Assembler struct {
	row          Row
	col          int
	columnCount  int
	quote        byte
	quoteEnabled bool
}

// New creates an Assembler sized to columnCount, the value fixed by the
// header preflight pass.
func New(columnCount int, quote byte, quoteEnabled bool) *Assembler {
	return &Assembler{
		row:          make(Row, columnCount),
		columnCount:  columnCount,
		quote:        quote,
		quoteEnabled: quoteEnabled,
	}
}

// FieldEnd records a field boundary. field is stored at the current column
// if it is within bounds; writes beyond columnCount are counted but
// discarded (overflow tolerance).
func (a *Assembler) FieldEnd(field []byte) {
	if a.col < a.columnCount {
		a.row[a.col] = a.trim(field)
	}
	a.col++
}

// RecordEnd zero-fills any columns past the last field written (underflow
// tolerance), delivers the row, and resets for the next record.
func (a *Assembler) RecordEnd(deliver Deliver) {
	for i := a.col; i < a.columnCount; i++ {
		a.row[i] = emptySlice
	}
	deliver(a.row, a.columnCount)
	a.col = 0
}

// Flush delivers one final partial row if a field was accumulated without a
// terminating RecordEnd (the trailing-record-without-terminator case). It
// is a no-op if no field is pending.
func (a *Assembler) Flush(deliver Deliver) {
	if a.col > 0 {
		a.RecordEnd(deliver)
	}
}

func (a *Assembler) trim(field []byte) []byte {
	if a.quoteEnabled && len(field) >= 2 && field[0] == a.quote && field[len(field)-1] == a.quote {
		return field[1 : len(field)-1]
	}
	return field
}

var emptySlice = FieldSlice{}
