// Package latency records per-message processing times and turns them into
// cumulative distribution files for plotting.
package latency

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/3Red/FIXParser/internal/fix"
)

// Recorder collects one duration per observed message.
type Recorder struct {
	times []time.Duration
}

// NewRecorder returns a Recorder with room for sizeHint samples.
func NewRecorder(sizeHint int) *Recorder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Recorder{times: make([]time.Duration, 0, sizeHint)}
}

func (r *Recorder) ObserveMessage(_ fix.Span, elapsed time.Duration) {
	r.times = append(r.times, elapsed)
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	return len(r.times)
}

// Times returns the recorded samples in observation order.
func (r *Recorder) Times() []time.Duration {
	return r.times
}

// WriteTo writes one integer nanosecond value per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	line := make([]byte, 0, 24)
	for _, d := range r.times {
		line = strconv.AppendInt(line[:0], d.Nanoseconds(), 10)
		line = append(line, '\n')
		n, err := bw.Write(line)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// WriteFile writes the samples to path, replacing any existing file.
func (r *Recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("latency: create %s: %w", path, err)
	}
	if _, err := r.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("latency: write %s: %w", path, err)
	}
	return f.Close()
}
