package fix

// Span is a half-open byte range [Begin, End) into a buffer.
// The zero Span is the "no more messages" sentinel.
type Span struct {
	Begin int
	End   int
}

// IsValid reports whether the span addresses a message.
func (s Span) IsValid() bool {
	return s.Begin != s.End
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Begin
}

// Bytes returns the sub-slice of buf covered by s. It aliases buf.
func (s Span) Bytes(buf []byte) []byte {
	return buf[s.Begin:s.End:s.End]
}
