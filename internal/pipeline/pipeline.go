// Package pipeline drives framing, extraction and accumulation over one buffer.
package pipeline

import (
	"fmt"
	"time"

	"github.com/3Red/FIXParser/internal/aggregate"
	"github.com/3Red/FIXParser/internal/fix"
	"github.com/rs/zerolog/log"
)

// Observer is notified once per processed message with the time spent adding
// it and advancing to the next span.
type Observer interface {
	ObserveMessage(span fix.Span, elapsed time.Duration)
}

// Observers fans one notification out to several observers.
type Observers []Observer

func (o Observers) ObserveMessage(span fix.Span, elapsed time.Duration) {
	for _, obs := range o {
		obs.ObserveMessage(span, elapsed)
	}
}

// Result summarises one run.
type Result struct {
	Total    uint64
	Messages int
	Matched  int
	Consumed int
	Duration time.Duration
}

// NsPerMessage returns the mean wall time per message in nanoseconds.
func (r Result) NsPerMessage() float64 {
	if r.Messages == 0 {
		return 0
	}
	return float64(r.Duration.Nanoseconds()) / float64(r.Messages)
}

type options struct {
	observer Observer
	now      func() time.Time
}

// Option is used to override defaults when calling Run
type Option func(*options)

// WithObserver times every message and reports it to o.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(opts *options) {
		opts.now = now
	}
}

// Run frames buf, parses every span with msg and folds it into acc. msg must
// have been built over buf. The first error aborts the run.
func Run(buf []byte, msg fix.Message, acc *aggregate.Accumulator, opts ...Option) (Result, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	framer := fix.NewFramer(buf)
	begin := o.now()
	log.Debug().Int("bytes", len(buf)).Msg("pipeline.Run start")

	if err := msg.Reset(framer.Next()); err != nil {
		return Result{}, fmt.Errorf("pipeline: parse message at offset %d: %w", msg.Span().Begin, err)
	}
	for msg.IsValid() {
		span := msg.Span()
		var start time.Time
		if o.observer != nil {
			start = o.now()
		}

		if err := acc.Add(msg); err != nil {
			return partial(acc, framer, o.now().Sub(begin)), fmt.Errorf("pipeline: %w", err)
		}
		next := framer.Next()
		if err := msg.Reset(next); err != nil {
			return partial(acc, framer, o.now().Sub(begin)),
				fmt.Errorf("pipeline: parse message at offset %d: %w", next.Begin, err)
		}

		if o.observer != nil {
			o.observer.ObserveMessage(span, o.now().Sub(start))
		}
	}

	res := partial(acc, framer, o.now().Sub(begin))
	log.Debug().
		Int("messages", res.Messages).
		Int("matched", res.Matched).
		Uint64("total", res.Total).
		Int("unconsumed", len(buf)-res.Consumed).
		Msg("pipeline.Run complete")
	return res, nil
}

func partial(acc *aggregate.Accumulator, framer *fix.Framer, d time.Duration) Result {
	return Result{
		Total:    acc.Sum(),
		Messages: acc.Seen(),
		Matched:  acc.Matched(),
		Consumed: framer.Offset(),
		Duration: d,
	}
}
