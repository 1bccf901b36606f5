// Package aggregate sums a quantity field across messages of one type.
package aggregate

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/3Red/FIXParser/internal/fix"
)

var ErrMissingQuantity = errors.New("aggregate: matching message has no quantity")

// Option is used to override defaults when creating a new Accumulator
type Option func(*Accumulator)

// WithTypeTag overrides the tag holding the message type
func WithTypeTag(tag int) Option {
	return func(a *Accumulator) {
		a.typeTag = tag
	}
}

// WithMsgType overrides the message type that is summed
func WithMsgType(msgType string) Option {
	return func(a *Accumulator) {
		a.msgType = []byte(msgType)
	}
}

// WithQuantityTag overrides the tag holding the summed quantity
func WithQuantityTag(tag int) Option {
	return func(a *Accumulator) {
		a.quantityTag = tag
	}
}

// Accumulator keeps a running quantity total for matching messages.
// It is not safe for concurrent use.
type Accumulator struct {
	typeTag     int
	msgType     []byte
	quantityTag int

	sum     uint64
	seen    int
	matched int
}

// New returns an Accumulator summing OrderQty over ExecutionReports unless
// overridden by opts.
func New(opts ...Option) *Accumulator {
	a := &Accumulator{
		typeTag:     fix.MsgTypeTag,
		msgType:     []byte(fix.ExecutionReport),
		quantityTag: fix.OrderQtyTag,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Add folds msg into the total. Messages whose type is absent or different are
// ignored. A matching message without a numeric quantity is an error.
func (a *Accumulator) Add(msg fix.Message) error {
	a.seen++
	msgType, ok := msg.Find(a.typeTag)
	if !ok || !bytes.Equal(msgType, a.msgType) {
		return nil
	}

	raw, ok := msg.Find(a.quantityTag)
	if !ok {
		return fmt.Errorf("%w at offset %d", ErrMissingQuantity, msg.Span().Begin)
	}
	qty, err := fix.ParseUint(raw)
	if err != nil {
		return fmt.Errorf("aggregate: quantity %q at offset %d: %w", raw, msg.Span().Begin, err)
	}
	a.sum += qty
	a.matched++
	return nil
}

// Sum returns the running total.
func (a *Accumulator) Sum() uint64 {
	return a.sum
}

// Seen returns how many messages were offered to Add.
func (a *Accumulator) Seen() int {
	return a.seen
}

// Matched returns how many messages contributed to the total.
func (a *Accumulator) Matched() int {
	return a.matched
}

// Wants returns the tags Add reads, for building a selective Message.
func (a *Accumulator) Wants() []int {
	return []int{a.typeTag, a.quantityTag}
}
