package hu01

// readFileHeader inspects buf starting at its cursor for the HU01 file
// header without consuming it until the full header is visible. It
// returns declaredSize and ok=true once the header has been consumed, or
// ok=false if buf does not yet hold enough bytes.
func readFileHeader(buf *inputBuffer) (declaredSize uint64, ok bool, err error) {
	if buf.remaining() < fileHdrMinSize {
		return 0, false, nil
	}
	if buf.peekLEU32(0) != fileHdrMagic {
		return 0, false, ErrBadFileHeader
	}
	hdrSize := buf.peekLEU32(fileHdrSizeOff)
	if hdrSize < fileHdrMinSize {
		return 0, false, ErrBadFileHeader
	}
	if buf.remaining() < int(hdrSize) {
		return 0, false, nil
	}
	declaredSize = uint64(buf.peekLEU32(fileHdrSizeFieldOff))
	buf.advance(int(hdrSize))
	return declaredSize, true, nil
}
