// Package vscan implements the vectorised record/field splitter: a
// 32-byte-window structural-byte scanner with branchless quote-state
// tracking carried across windows, plus the scalar continuation for a
// residual tail shorter than one window.
//
// The 32-byte "vector" here is a logical window, not a hardware SIMD
// register: the corpus this engine was learned from declares its actual
// AVX2/AVX-512 comparison kernels in assembly files that are not available
// to reproduce and verify here, so the equality masks are built with a
// plain byte loop that a Go compiler is free to auto-vectorise. The
// algorithm that consumes those masks — prefix-XOR quote masking with a
// carried parity bit — is reproduced exactly.
package vscan

import "math/bits"

// WindowSize is the width, in bytes, of one scan window.
const WindowSize = 32

// Config describes the structural bytes the scanner looks for.
type Config struct {
	Delim        byte
	Term         byte
	Quote        byte
	QuoteEnabled bool
}

// Carry threads the single bit of quote-region state between consecutive
// windows (and into the scalar tail that follows them).
type Carry struct {
	bit uint32
}

// Bit reports the current carried parity: 1 if the position immediately
// following the last processed window lies inside an open quoted region.
func (c *Carry) Bit() uint32 { return c.bit }

// Solid computes M_solid for a window's quote mask and advances the carry
// for the next window, in that order: the incoming carry is folded into
// this window's result before being updated from this window's own parity.
func (c *Carry) Solid(quoteMask uint32) uint32 {
	solid := PrefixXOR(quoteMask) ^ (0 - c.bit)
	c.bit ^= uint32(bits.OnesCount32(quoteMask)) & 1
	return solid
}

// PrefixXOR computes, for every bit of mask, the XOR of all lower-or-equal
// bits of mask — the single-cycle equivalent of a parallel parity scan.
func PrefixXOR(mask uint32) uint32 {
	mask ^= mask << 1
	mask ^= mask << 2
	mask ^= mask << 4
	mask ^= mask << 8
	mask ^= mask << 16
	return mask
}

// Emitter receives one structural-byte event at the given absolute byte
// offset. isRecordEnd is true when the byte is the configured terminator.
type Emitter func(pos int, isRecordEnd bool)

// ProgressFunc is invoked with the scanner's current absolute position each
// time it crosses a coarse publication boundary, for a prefetch worker (or
// test) to observe scanner progress.
type ProgressFunc func(pos int)

// StopFunc is polled between windows (and between scalar-tail bytes) so a
// consumer-raised error can halt scanning promptly without unwinding the
// call stack.
type StopFunc func() bool

// progressStride is the cadence, in bytes of scanner progress, at which
// ProgressFunc is invoked — the 64 KiB boundary documented for the prefetch
// worker's advance signal.
const progressStride = 64 * 1024

func masks(window []byte, cfg Config) (delim, term, quote uint32) {
	for i, b := range window {
		switch {
		case b == cfg.Delim:
			delim |= 1 << uint(i)
		case cfg.QuoteEnabled && b == cfg.Quote:
			quote |= 1 << uint(i)
		}
		if b == cfg.Term {
			term |= 1 << uint(i)
		}
	}
	return
}

// ScanVector processes every full WindowSize-byte window starting at pos,
// emitting field-end/record-end events in strictly ascending position
// order, and returns the position immediately after the last full window
// processed (within WindowSize-1 bytes of len(data), unless shouldStop
// halted the scan earlier).
func ScanVector(data []byte, pos int, cfg Config, carry *Carry, emit Emitter, onProgress ProgressFunc, shouldStop StopFunc) int {
	end := len(data)
	nextProgress := pos + progressStride

	for pos+WindowSize <= end {
		if shouldStop != nil && shouldStop() {
			return pos
		}

		window := data[pos : pos+WindowSize]
		delimMask, termMask, quoteMask := masks(window, cfg)

		var solid uint32
		if cfg.QuoteEnabled {
			solid = carry.Solid(quoteMask)
		}

		validDelim := delimMask &^ solid
		validTerm := termMask &^ solid
		sep := validDelim | validTerm

		for sep != 0 {
			i := bits.TrailingZeros32(sep)
			emit(pos+i, (validTerm>>uint(i))&1 == 1)
			sep &^= 1 << uint(i)
		}

		pos += WindowSize
		if onProgress != nil && pos >= nextProgress {
			onProgress(pos)
			nextProgress = pos + progressStride
		}
	}

	return pos
}

// ScanTail processes the residual bytes at the end of data one at a time
// with identical field-end/record-end semantics, continuing the quote
// parity carried over from ScanVector.
func ScanTail(data []byte, pos int, cfg Config, carry *Carry, emit Emitter, shouldStop StopFunc) {
	inQuote := carry.bit == 1

	for pos < len(data) {
		if shouldStop != nil && shouldStop() {
			break
		}

		b := data[pos]
		switch {
		case cfg.QuoteEnabled && b == cfg.Quote:
			inQuote = !inQuote
		case !inQuote && (b == cfg.Delim || b == cfg.Term):
			emit(pos, b == cfg.Term)
		}
		pos++
	}

	if inQuote {
		carry.bit = 1
	} else {
		carry.bit = 0
	}
}

// Scan runs ScanVector followed by ScanTail over data[pos:], the full
// Vector Scanner + Scalar Tail pipeline.
func Scan(data []byte, pos int, cfg Config, carry *Carry, emit Emitter, onProgress ProgressFunc, shouldStop StopFunc) {
	pos = ScanVector(data, pos, cfg, carry, emit, onProgress, shouldStop)
	if shouldStop != nil && shouldStop() {
		return
	}
	ScanTail(data, pos, cfg, carry, emit, shouldStop)
}
