package hu01

import "io"

// Writer adapts the incremental Decoder to the classic io.Writer shape:
// the caller writes compressed HU01 bytes, and the Writer drains every
// plaintext byte it can produce into an inner sink before returning.
//
// It contributes no decoding logic of its own; it is a thin shim over
// Decoder's push API, matching the "sink-wrapping" shape a block codec's
// own Writer commonly takes.
type Writer struct {
	dec *Decoder
	w   io.Writer
	buf [32 * 1024]byte
	err error
}

// NewWriter returns a Writer that decodes HU01 input and forwards the
// decompressed bytes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{dec: NewDecoder(), w: w}
}

// Write feeds compressed bytes to the decoder and writes out every
// plaintext byte the decoder can produce as a result.
func (zw *Writer) Write(p []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	zw.dec.AddInput(p)
	for {
		n, err := zw.dec.Decompress(zw.buf[:])
		if err != nil {
			zw.err = err
			return 0, zw.err
		}
		if n <= 0 {
			break
		}
		if _, werr := zw.w.Write(zw.buf[:n]); werr != nil {
			zw.err = werr
			return 0, zw.err
		}
	}
	return len(p), nil
}

// Close reports whether the decoder reached Finished after the last
// Write. HU01 defines no trailer to flush; Close is purely a contract
// check, matching the inner sink's own Close only if it implements
// io.Closer.
func (zw *Writer) Close() error {
	if zw.err != nil {
		return zw.err
	}
	if !zw.dec.Finished() {
		return Error("closed before stream finished")
	}
	if c, ok := zw.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
