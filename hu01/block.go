package hu01

// blockInfo is the result of successfully reading one block header.
type blockInfo struct {
	decompressedSize uint32
	expectedCRC      uint32
	payload          []byte // compressed_size bytes, starting past the block header
}

// readBlock inspects buf at its cursor for one SCBH block header and its
// payload. It returns ok=false if buf does not yet hold enough bytes to
// make progress; it consumes header_size+compressed_size bytes on success.
func readBlock(buf *inputBuffer) (info blockInfo, ok bool, err error) {
	if buf.remaining() < blockHdrSize {
		return blockInfo{}, false, nil
	}
	if buf.peekLEU32(0) != blockHdrMagic {
		return blockInfo{}, false, ErrBadBlockHeader
	}
	hdrSize := buf.peekLEU32(4)
	decompressedSize := buf.peekLEU32(8)
	expectedCRC := buf.peekLEU32(12)
	compressedSize := buf.peekLEU32(16)
	if hdrSize < blockHdrSize {
		return blockInfo{}, false, ErrBadBlockHeader
	}

	total := int(hdrSize) + int(compressedSize)
	if total < int(hdrSize) || buf.remaining() < total {
		return blockInfo{}, false, nil
	}

	payload := buf.slice(total)[hdrSize:]
	buf.advance(total)

	return blockInfo{
		decompressedSize: decompressedSize,
		expectedCRC:      expectedCRC,
		payload:          payload,
	}, true, nil
}

// isRawBlock applies the reference heuristic: a block whose compressed
// size exactly equals its decompressed size, and whose decompressed size
// is below the raw-block ceiling, carries its payload verbatim with no
// table and no bitstream.
func isRawBlock(decompressedSize uint32, compressedSize int) bool {
	return compressedSize == int(decompressedSize) && decompressedSize < rawBlockMaxSize
}
