package fix

import "bytes"

// Framer splits a buffer into back-to-back messages.
type Framer struct {
	buf    []byte
	cursor int
}

// NewFramer returns a Framer positioned at the start of buf.
func NewFramer(buf []byte) *Framer {
	return &Framer{buf: buf}
}

// Next returns the span of the next message, or the zero Span once no further
// terminator marker exists. A trailing fragment without a marker is never
// yielded, and an exhausted Framer stays exhausted.
func (f *Framer) Next() Span {
	idx := bytes.Index(f.buf[f.cursor:], terminatorMarker)
	if idx < 0 {
		return Span{}
	}
	end := f.cursor + idx + len(terminatorMarker) + ChecksumLength + 1
	if end > len(f.buf) {
		end = len(f.buf)
	}
	span := Span{Begin: f.cursor, End: end}
	f.cursor = end
	return span
}

// Offset returns the number of bytes framed so far.
func (f *Framer) Offset() int {
	return f.cursor
}

// Buffer returns the framed buffer.
func (f *Framer) Buffer() []byte {
	return f.buf
}
