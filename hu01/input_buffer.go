package hu01

import "encoding/binary"

// inputBuffer is a growable byte queue with a read cursor. Bytes are
// appended at the tail by AddInput and consumed from the head as the
// pipeline advances; the region before the cursor is reclaimed by
// compaction the next time the buffer needs to grow, not eagerly.
type inputBuffer struct {
	buf    []byte
	cursor int
}

// append copies p onto the tail, compacting and growing as needed.
func (b *inputBuffer) append(p []byte) {
	if len(p) == 0 {
		return
	}
	need := len(b.buf) - b.cursor + len(p)
	if cap(b.buf)-len(b.buf) < len(p) {
		// Compact first; if that's still not enough room, grow by doubling.
		if b.cursor > 0 {
			n := copy(b.buf, b.buf[b.cursor:])
			b.buf = b.buf[:n]
			b.cursor = 0
		}
		if cap(b.buf)-len(b.buf) < len(p) {
			nb := make([]byte, len(b.buf), grow(cap(b.buf), need))
			copy(nb, b.buf)
			b.buf = nb
		}
	}
	b.buf = append(b.buf, p...)
}

func grow(have, need int) int {
	n := have * 2
	if n < need {
		n = need
	}
	if n < 64 {
		n = 64
	}
	return n
}

// remaining reports the number of unconsumed bytes from cursor to tail.
func (b *inputBuffer) remaining() int {
	return len(b.buf) - b.cursor
}

// peekLEU32 reads a little-endian uint32 at offset bytes past the cursor
// without advancing it. Callers must first check remaining().
func (b *inputBuffer) peekLEU32(offset int) uint32 {
	return binary.LittleEndian.Uint32(b.buf[b.cursor+offset : b.cursor+offset+4])
}

// advance moves the cursor forward by n bytes.
func (b *inputBuffer) advance(n int) {
	b.cursor += n
}

// slice returns an immutable view of the next n bytes starting at cursor.
// Callers must first check remaining().
func (b *inputBuffer) slice(n int) []byte {
	return b.buf[b.cursor : b.cursor+n]
}

// reset discards all buffered bytes but keeps the underlying array.
func (b *inputBuffer) reset() {
	b.buf = b.buf[:0]
	b.cursor = 0
}
