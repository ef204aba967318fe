package hu01

import (
	"hash/crc32"

	"github.com/dsnet/golib/hashutil"
)

// Decoder implements the HU01 incremental push decoder: callers feed
// compressed bytes with AddInput and drain decoded plaintext with
// Decompress, in any interleaving, until Finished reports true.
//
// A Decoder is not safe for concurrent use; each stream owns exactly one.
type Decoder struct {
	inHeader     bool
	declaredSize uint64
	produced     uint64

	input   inputBuffer
	decoded []byte
	decPos  int

	tbl *table

	combinedCRC uint32
	combinedLen int64

	err error
}

// NewDecoder returns a Decoder ready to consume a fresh HU01 stream.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.Reset()
	return d
}

// Reset returns the decoder to the state of a freshly constructed one,
// retaining its allocated buffers.
func (d *Decoder) Reset() {
	input := d.input
	input.reset()
	tbl := d.tbl
	decoded := d.decoded[:0]
	*d = Decoder{inHeader: true, input: input, tbl: tbl, decoded: decoded}
}

// AddInput appends compressed bytes to the decoder's internal buffer. It
// never blocks and never fails for well-formed arguments.
func (d *Decoder) AddInput(p []byte) {
	d.input.append(p)
}

// Finished reports whether the decoder has emitted every plaintext byte
// the file header declared. It is never true on an errored decoder.
func (d *Decoder) Finished() bool {
	return d.err == nil && !d.inHeader && d.produced == d.declaredSize
}

// CombinedCRC returns a running combination of every block's verified
// CRC-32, purely as a diagnostic; HU01 carries no stream-level trailer
// checksum of its own.
func (d *Decoder) CombinedCRC() uint32 {
	return d.combinedCRC
}

// CombinedLength returns the total decoded length CombinedCRC has been
// computed over so far.
func (d *Decoder) CombinedLength() int64 {
	return d.combinedLen
}

// Decompress copies up to len(out) decoded plaintext bytes into out,
// pulling more input through the pipeline as needed, and returns the
// number of bytes written. It returns (0, nil) when more input is needed
// before any bytes can be produced, and (-1, nil) once Finished.
func (d *Decoder) Decompress(out []byte) (n int, err error) {
	if d.err != nil {
		return 0, d.err
	}
	if d.Finished() {
		return -1, nil
	}

	if d.inHeader {
		declared, ok, ferr := readFileHeader(&d.input)
		if ferr != nil {
			d.err = ferr
			return 0, d.err
		}
		if !ok {
			return 0, nil
		}
		d.declaredSize = declared
		d.inHeader = false
		if d.Finished() {
			return -1, nil
		}
	}

	if d.decPos >= len(d.decoded) {
		if err := d.fillNextBlock(); err != nil {
			d.err = err
			return 0, d.err
		}
		if d.decPos >= len(d.decoded) {
			return 0, nil // need more input
		}
	}

	n = copy(out, d.decoded[d.decPos:])
	d.decPos += n
	d.produced += uint64(n)
	return n, nil
}

// fillNextBlock attempts to read and decode exactly one block into
// d.decoded. It leaves d.decoded empty (ok=false equivalent) if the
// InputBuffer does not yet hold a full block.
func (d *Decoder) fillNextBlock() error {
	info, ok, err := readBlock(&d.input)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	need := int(info.decompressedSize)
	if cap(d.decoded) < need {
		d.decoded = make([]byte, need)
	} else {
		d.decoded = d.decoded[:need]
	}
	d.decPos = 0

	if isRawBlock(info.decompressedSize, len(info.payload)) {
		copy(d.decoded, info.payload)
	} else {
		if len(info.payload) < tableDescSize {
			return ErrBadBlockHeader
		}
		tbl, err := buildTable(info.payload[:tableDescSize])
		if err != nil {
			return err
		}
		d.tbl = tbl
		if err := decodeBlock(tbl, info.payload[tableDescSize:], d.decoded); err != nil {
			return err
		}
	}

	got := crc32.ChecksumIEEE(d.decoded)
	if got != info.expectedCRC {
		return ErrCrcMismatch
	}
	d.combinedCRC = hashutil.CombineCRC32(crc32.IEEE, d.combinedCRC, got, int64(len(d.decoded)))
	d.combinedLen += int64(len(d.decoded))

	return nil
}
