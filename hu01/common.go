// Package hu01 implements the HU01 compressed container used to carry
// email bodies over Microsoft's DeltaSync protocol: a file header, one or
// more CRC-32-checked "SCBH" blocks, and a canonical-Huffman-plus-LZ77
// bitstream inside each compressed block. Only decoding is implemented;
// HU01 defines no public encoder.
package hu01

import "runtime"

const (
	fileHdrMagic = 0x31305548 // "HU01" little-endian
	fileHdrMinSize = 40
	fileHdrSizeOff = 4
	fileHdrSizeFieldOff = 32

	blockHdrMagic = 0x48424353 // "SCBH" little-endian
	blockHdrSize  = 20

	tableDescSize = 256
	numSyms       = 512
	maxCodeLen    = 15

	rawBlockMaxSize = 2048

	primarySize  = 1 << 10 // top-10-bit direct lookup region
	tableEntries = 1 << 15 // full decode table, primary + secondary trie
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "hu01: " + string(e) }

var (
	ErrBadFileHeader error = Error("bad file header")
	ErrBadBlockHeader error = Error("bad block header")
	ErrBadTable error = Error("bad huffman table")
	ErrBadReference error = Error("bad back-reference")
	ErrBadBitStream error = Error("bad bit stream")
	ErrCrcMismatch error = Error("block crc-32 mismatch")
)

// errNeedMore names the condition in which a component can make no
// progress because the InputBuffer does not yet hold enough bytes. The
// parsers (readFileHeader, readBlock) report that condition as ok=false
// rather than returning this value, and Decompress turns it into a
// (0, nil) result, not a failure.
var errNeedMore = Error("need more input")

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
