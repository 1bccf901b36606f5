package fix

import (
	"fmt"
	"strings"
)

// Message is a parsed view of one framed span.
//
// Reset rebinds the message to a new span and discards everything parsed from
// the previous one. Find returns the first occurrence of tag; later duplicates
// are ignored. Returned values alias the underlying buffer.
type Message interface {
	Reset(span Span) error
	IsValid() bool
	Find(tag int) ([]byte, bool)
	Span() Span
}

// Strategy selects a field extraction implementation.
type Strategy string

const (
	StrategyFull      Strategy = "full"
	StrategySelective Strategy = "selective"
)

// ParseStrategy resolves a configured strategy name.
func ParseStrategy(raw string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(raw))) {
	case StrategyFull:
		return StrategyFull, nil
	case StrategySelective, "":
		return StrategySelective, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, raw)
	}
}

// NewMessage builds a Message over buf. tags lists the fields the caller will
// query; the full strategy ignores it.
func NewMessage(strategy Strategy, buf []byte, tags ...int) (Message, error) {
	switch strategy {
	case StrategyFull:
		return NewFullMessage(buf), nil
	case StrategySelective:
		if len(tags) == 0 {
			return nil, ErrNoWantedTags
		}
		return NewSelectiveMessage(buf, tags...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
	}
}
