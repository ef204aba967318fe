package hu01

import (
	"encoding/binary"
	"hash/crc32"
)

// appendU32LE appends v to buf in little-endian order.
func appendU32LE(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

// fileHeader builds a minimal 40-byte HU01 file header declaring size.
func fileHeader(size uint32) []byte {
	h := make([]byte, fileHdrMinSize)
	binary.LittleEndian.PutUint32(h[0:4], fileHdrMagic)
	binary.LittleEndian.PutUint32(h[4:8], fileHdrMinSize)
	binary.LittleEndian.PutUint32(h[32:36], size)
	return h
}

// rawBlock builds one uncompressed SCBH block carrying plaintext verbatim.
// plaintext must be shorter than rawBlockMaxSize for the raw-block
// heuristic to apply.
func rawBlock(plaintext []byte) []byte {
	crc := crc32.ChecksumIEEE(plaintext)
	h := make([]byte, 0, blockHdrSize)
	h = appendU32LE(h, blockHdrMagic)
	h = appendU32LE(h, blockHdrSize)
	h = appendU32LE(h, uint32(len(plaintext)))
	h = appendU32LE(h, crc)
	h = appendU32LE(h, uint32(len(plaintext)))
	return append(h, plaintext...)
}

// singleLengthDescriptor returns a 256-byte table descriptor giving
// symbols 0 and 1 a one-bit canonical code each, and every other symbol
// absent — the smallest possible complete canonical-Huffman table.
func singleLengthDescriptor() []byte {
	desc := make([]byte, tableDescSize)
	desc[0] = 0x11 // symbol 0 len=1, symbol 1 len=1
	return desc
}

// tableDescriptor packs an arbitrary symbol->code-length map into a
// 256-byte table descriptor, matching the nibble layout buildTable
// expects: one nibble per symbol, two symbols per byte.
func tableDescriptor(lens map[int]int) []byte {
	desc := make([]byte, tableDescSize)
	for sym, l := range lens {
		desc[sym/2] |= byte(l) << uint((sym%2)*4)
	}
	return desc
}

// compressedBlock builds one SCBH block whose payload is a table
// descriptor followed by an entropy-coded bitstream, the shape a real
// compressed block takes on the wire (as opposed to rawBlock's verbatim
// payload).
func compressedBlock(decompressedSize uint32, tableDesc, bitstream, plaintext []byte) []byte {
	payload := append(append([]byte{}, tableDesc...), bitstream...)
	crc := crc32.ChecksumIEEE(plaintext)
	h := make([]byte, 0, blockHdrSize)
	h = appendU32LE(h, blockHdrMagic)
	h = appendU32LE(h, blockHdrSize)
	h = appendU32LE(h, decompressedSize)
	h = appendU32LE(h, crc)
	h = appendU32LE(h, uint32(len(payload)))
	return append(h, payload...)
}

// packBits packs a slice of (value, width) pairs MSB-first into the
// little-endian 16-bit words decodeBlock reads, padding the final word
// with zero bits.
func packBits(pairs [][2]int) []byte {
	var out []byte
	var cur uint32
	var n int
	for _, p := range pairs {
		v, w := p[0], p[1]
		for i := w - 1; i >= 0; i-- {
			bit := (v >> uint(i)) & 1
			cur = cur<<1 | uint32(bit)
			n++
			if n == 8 {
				out = append(out, byte(cur))
				cur, n = 0, 0
			}
		}
	}
	if n > 0 {
		cur <<= uint(8 - n)
		out = append(out, byte(cur))
	}
	// decodeBlock primes two 16-bit words up front, so every fixture
	// needs at least 4 bytes regardless of how few meaningful bits it
	// encodes.
	for len(out) < 4 || len(out)%2 != 0 {
		out = append(out, 0)
	}
	// Each word is stored little-endian, so the first-packed byte of a
	// pair (the word's high byte) goes second.
	for i := 0; i+1 < len(out); i += 2 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	// A handful of extra zero words give fixtures that decode multi-bit
	// extensions (length-class 15's 8/16-bit tails) refill margin beyond
	// their last meaningful bit, the way a real bitstream's trailing
	// padding would.
	out = append(out, 0, 0, 0, 0)
	return out
}
