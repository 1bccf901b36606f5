package fix

import (
	"bytes"
	"fmt"
)

// Field is one tag/value pair. Value aliases the parsed buffer.
type Field struct {
	Tag   int
	Value []byte
}

// FullMessage tokenizes every field of its span.
type FullMessage struct {
	buf    []byte
	span   Span
	fields []Field
}

// NewFullMessage returns an unbound FullMessage over buf.
func NewFullMessage(buf []byte) *FullMessage {
	return &FullMessage{buf: buf, fields: make([]Field, 0, 32)}
}

// Reset parses every field in span. Field storage is reused between spans.
func (m *FullMessage) Reset(span Span) error {
	m.span = span
	m.fields = m.fields[:0]

	cursor := span.Begin
	for cursor < span.End {
		sep := bytes.IndexByte(m.buf[cursor:span.End], Separator)
		if sep < 0 {
			m.fields = m.fields[:0]
			return fmt.Errorf("%w at offset %d: no separator", ErrMalformedTag, cursor)
		}
		tag, err := parseTag(m.buf[cursor : cursor+sep])
		if err != nil {
			m.fields = m.fields[:0]
			return fmt.Errorf("%w at offset %d: %q", err, cursor, m.buf[cursor:cursor+sep])
		}
		valueBegin := cursor + sep + 1
		valueEnd := span.End
		if i := bytes.IndexByte(m.buf[valueBegin:span.End], Delimiter); i >= 0 {
			valueEnd = valueBegin + i
		}
		m.fields = append(m.fields, Field{Tag: tag, Value: m.buf[valueBegin:valueEnd:valueEnd]})
		cursor = valueEnd + 1
	}
	return nil
}

func (m *FullMessage) IsValid() bool { return m.span.IsValid() }

func (m *FullMessage) Span() Span { return m.span }

// Find scans the parsed fields in wire order.
func (m *FullMessage) Find(tag int) ([]byte, bool) {
	for _, f := range m.fields {
		if f.Tag == tag {
			return f.Value, true
		}
	}
	return nil, false
}

// Fields returns the parsed fields in wire order. The slice is overwritten by
// the next Reset.
func (m *FullMessage) Fields() []Field {
	return m.fields
}
