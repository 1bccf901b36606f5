package observability

import (
	"fmt"
	"sync"
	"time"

	"github.com/3Red/FIXParser/internal/fix"
	"github.com/3Red/FIXParser/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	messagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fixparser",
			Subsystem: "run",
			Name:      "messages_total",
			Help:      "Messages framed and offered to the accumulator.",
		},
		[]string{"strategy"},
	)
	matchedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fixparser",
			Subsystem: "run",
			Name:      "matched_total",
			Help:      "Messages whose type matched the filter.",
		},
		[]string{"strategy"},
	)
	quantityTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fixparser",
			Subsystem: "run",
			Name:      "quantity_total",
			Help:      "Sum of the quantity field over matching messages.",
		},
		[]string{"strategy"},
	)
	runDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "fixparser",
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Wall time of the last run.",
		},
		[]string{"strategy"},
	)
	messageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fixparser",
			Subsystem: "message",
			Name:      "duration_seconds",
			Help:      "Per-message processing time in seconds.",
			Buckets:   prometheus.ExponentialBuckets(50e-9, 2, 16),
		},
		[]string{"strategy"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(messagesTotal, matchedTotal, quantityTotal, runDuration, messageDuration)
	})
}

// RecordRun publishes the totals of a finished run.
func RecordRun(strategy fix.Strategy, res pipeline.Result) {
	RegisterMetrics()
	label := string(strategy)
	messagesTotal.WithLabelValues(label).Add(float64(res.Messages))
	matchedTotal.WithLabelValues(label).Add(float64(res.Matched))
	quantityTotal.WithLabelValues(label).Add(float64(res.Total))
	runDuration.WithLabelValues(label).Set(res.Duration.Seconds())
}

// MessageObserver feeds per-message timings into the duration histogram.
type MessageObserver struct {
	observer prometheus.Observer
}

// NewMessageObserver returns a pipeline.Observer bound to strategy.
func NewMessageObserver(strategy fix.Strategy) *MessageObserver {
	RegisterMetrics()
	return &MessageObserver{observer: messageDuration.WithLabelValues(string(strategy))}
}

func (m *MessageObserver) ObserveMessage(_ fix.Span, elapsed time.Duration) {
	m.observer.Observe(elapsed.Seconds())
}

// WriteTextfile dumps the default registry in the node exporter textfile format.
func WriteTextfile(path string) error {
	RegisterMetrics()
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("observability: write metrics %s: %w", path, err)
	}
	return nil
}
