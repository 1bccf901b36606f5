package fix

import (
	"bytes"
	"strconv"
)

// SelectiveMessage captures only a fixed set of wanted tags and stops scanning
// as soon as all of them have been seen.
type SelectiveMessage struct {
	buf      []byte
	span     Span
	tags     []int
	patterns [][]byte
	values   [][]byte
	filled   []bool
}

// NewSelectiveMessage returns an unbound SelectiveMessage capturing tags.
// Duplicate tags are collapsed.
func NewSelectiveMessage(buf []byte, tags ...int) *SelectiveMessage {
	m := &SelectiveMessage{buf: buf}
	for _, tag := range tags {
		if m.slot(tag) >= 0 {
			continue
		}
		pattern := strconv.AppendInt(nil, int64(tag), 10)
		pattern = append(pattern, Separator)
		m.tags = append(m.tags, tag)
		m.patterns = append(m.patterns, pattern)
	}
	m.values = make([][]byte, len(m.tags))
	m.filled = make([]bool, len(m.tags))
	return m
}

// Reset scans span left to right, matching the raw tag bytes of each field
// against the wanted patterns. The first occurrence of each wanted tag wins.
func (m *SelectiveMessage) Reset(span Span) error {
	m.span = span
	for i := range m.values {
		m.values[i] = nil
		m.filled[i] = false
	}

	found := 0
	cursor := span.Begin
	for cursor < span.End && found < len(m.patterns) {
		field := m.buf[cursor:span.End]
		if i := bytes.IndexByte(field, Delimiter); i >= 0 {
			field = field[:i]
		}
		for i, pattern := range m.patterns {
			if m.filled[i] || !bytes.HasPrefix(field, pattern) {
				continue
			}
			m.values[i] = field[len(pattern):len(field):len(field)]
			m.filled[i] = true
			found++
			break
		}
		cursor += len(field) + 1
	}
	return nil
}

func (m *SelectiveMessage) IsValid() bool { return m.span.IsValid() }

func (m *SelectiveMessage) Span() Span { return m.span }

// Find returns the captured value for tag. Tags outside the wanted set are
// always absent.
func (m *SelectiveMessage) Find(tag int) ([]byte, bool) {
	i := m.slot(tag)
	if i < 0 || !m.filled[i] {
		return nil, false
	}
	return m.values[i], true
}

// Tags returns the wanted tags in declaration order.
func (m *SelectiveMessage) Tags() []int {
	out := make([]int, len(m.tags))
	copy(out, m.tags)
	return out
}

func (m *SelectiveMessage) slot(tag int) int {
	for i, t := range m.tags {
		if t == tag {
			return i
		}
	}
	return -1
}
