// Package simdcsv parses very large delimiter-separated-values files via a
// memory-mapped view, a background page-prefetch worker, and a vectorised
// record/field splitter with branchless quote-state tracking.
package simdcsv

import (
	"log/slog"

	"github.com/lehoai/simdcsv/internal/header"
	"github.com/lehoai/simdcsv/internal/mmapview"
	"github.com/lehoai/simdcsv/internal/prefetch"
	"github.com/lehoai/simdcsv/internal/rowbuf"
	"github.com/lehoai/simdcsv/internal/telemetry"
	"github.com/lehoai/simdcsv/internal/vscan"
)

// Row is a fixed-width, read-only view over one record's fields, valid only
// for the duration of the Consumer call that receives it.
type Row = rowbuf.Row

// Consumer receives one parsed record. n is always the reader's column
// count; positions in row beyond the record's actual field count are empty
// slices. The row must not be retained or mutated past the call.
type Consumer func(row Row, n int) error

// ReaderOption configures ambient reader behaviour. None of these options
// change parsing semantics.
type ReaderOption func(*readerOptions)

type readerOptions struct {
	prefetchChunk int
	noPrefetch    bool
	logger        *slog.Logger
}

// WithPrefetchChunk overrides the default prefetch-ahead distance.
func WithPrefetchChunk(bytes int) ReaderOption {
	return func(o *readerOptions) { o.prefetchChunk = bytes }
}

// WithoutPrefetch disables the background prefetch worker, useful for small
// files or environments where spawning an extra flow of control per parse
// is undesirable.
func WithoutPrefetch() ReaderOption {
	return func(o *readerOptions) { o.noPrefetch = true }
}

// WithLogger overrides the reader's structured logger.
func WithLogger(l *slog.Logger) ReaderOption {
	return func(o *readerOptions) { o.logger = l }
}

// Reader parses one memory-mapped file according to a Format.
type Reader struct {
	view    *mmapview.View
	format  Format
	headers header.Set
	opts    readerOptions
	log     *slog.Logger
}

// NewReader opens path, memory-maps it, and runs the header preflight pass,
// fixing the column count before any record is scanned. It fails with
// OpenError, StatError, or MapError.
func NewReader(path string, format Format, opts ...ReaderOption) (*Reader, error) {
	o := readerOptions{prefetchChunk: DefaultPrefetchChunk}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = telemetry.NewLogger()
	}

	view, err := mmapview.Open(path)
	if err != nil {
		log.Error("simdcsv: failed to open input", "path", path, "error", err)
		return nil, err
	}

	hcfg := header.Config{
		Delim:        format.Delimiter,
		Term:         format.Terminator,
		Quote:        format.Quote,
		QuoteEnabled: format.QuoteEnabled,
		HeaderRow:    format.HeaderRow,
	}
	hs := header.Preflight(view.Bytes(), hcfg)

	log.Info("simdcsv: reader ready",
		"path", path,
		"columns", hs.ColumnCount,
		"data_offset", hs.DataOffset,
		"input_len", view.Len(),
	)

	return &Reader{view: view, format: format, headers: hs, opts: o, log: log}, nil
}

// Headers returns the captured header row, valid for the reader's lifetime.
func (r *Reader) Headers() []string {
	return r.headers.Names
}

// ColumnCount returns the column count fixed by the header preflight pass.
func (r *Reader) ColumnCount() int {
	return r.headers.ColumnCount
}

// Close unmaps the input file. The reader must not be used afterward.
func (r *Reader) Close() error {
	return r.view.Close()
}

// Parse streams every record in file order to consumer. A trailing record
// without a terminator is delivered; rows narrower than the header are
// padded with empty slices, rows wider than the header have their extra
// fields silently dropped. If consumer returns an error, scanning stops
// promptly, the prefetch worker is joined, and the error is returned.
func (r *Reader) Parse(consumer Consumer) error {
	runID := telemetry.RunID()
	log := r.log.With("run_id", runID)
	log.Debug("simdcsv: parse starting")

	data := r.view.Bytes()
	asm := rowbuf.New(r.headers.ColumnCount, r.format.Quote, r.format.QuoteEnabled)
	fieldStart := r.headers.DataOffset

	var worker *prefetch.Worker
	if !r.opts.noPrefetch && r.headers.DataOffset < len(data) {
		worker = prefetch.New(data, r.headers.DataOffset, r.opts.prefetchChunk)
		worker.Start()
		log.Debug("simdcsv: prefetch worker started")
		defer func() {
			worker.Stop()
			worker.Wait()
			log.Debug("simdcsv: prefetch worker joined")
		}()
	}

	var consumerErr error
	deliver := func(row rowbuf.Row, n int) {
		if consumerErr == nil {
			consumerErr = consumer(row, n)
		}
	}
	emit := func(pos int, isRecordEnd bool) {
		asm.FieldEnd(data[fieldStart:pos])
		fieldStart = pos + 1
		if isRecordEnd {
			asm.RecordEnd(deliver)
		}
	}
	shouldStop := func() bool { return consumerErr != nil }
	onProgress := func(pos int) {
		if worker != nil {
			worker.Advance(pos)
		}
	}

	cfg := vscan.Config{
		Delim:        r.format.Delimiter,
		Term:         r.format.Terminator,
		Quote:        r.format.Quote,
		QuoteEnabled: r.format.QuoteEnabled,
	}
	carry := &vscan.Carry{}
	vscan.Scan(data, r.headers.DataOffset, cfg, carry, emit, onProgress, shouldStop)

	if consumerErr != nil {
		log.Error("simdcsv: parse aborted by consumer", "error", consumerErr)
		return consumerErr
	}

	if fieldStart < len(data) {
		asm.FieldEnd(data[fieldStart:len(data)])
	}
	asm.Flush(deliver)

	if consumerErr != nil {
		log.Error("simdcsv: parse aborted by consumer", "error", consumerErr)
		return consumerErr
	}

	log.Debug("simdcsv: parse complete")
	return nil
}
