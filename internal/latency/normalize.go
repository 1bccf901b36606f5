package latency

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var ErrNoSamples = errors.New("latency: no samples")

// Point is one sample of a cumulative distribution: Value and the share of the
// total time, in percent, accounted for by samples up to and including it.
type Point struct {
	Value   float64
	Percent float64
}

// ReadTimes parses one numeric sample per line. Blank lines are skipped.
func ReadTimes(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("latency: line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Normalize sorts times ascending and attaches the running percentage of the
// total. times is sorted in place.
func Normalize(times []float64) ([]Point, error) {
	if len(times) == 0 {
		return nil, ErrNoSamples
	}
	sort.Float64s(times)
	var total float64
	for _, t := range times {
		total += t
	}
	if total == 0 {
		return nil, fmt.Errorf("latency: samples sum to zero")
	}

	points := make([]Point, len(times))
	var running float64
	for i, t := range times {
		running += t / total
		points[i] = Point{Value: t, Percent: running * 100}
	}
	return points, nil
}

// WriteNormalized writes "<value> <percent>" lines.
func WriteNormalized(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%s %s\n", formatFloat(p.Value), formatFloat(p.Percent)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// NormalizedPath maps "times-3.txt" to "times-3-normal.txt".
func NormalizedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-normal" + ext
}

// NormalizeFile reads a times file and writes its normalized form next to it.
func NormalizeFile(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("latency: open %s: %w", path, err)
	}
	times, err := ReadTimes(in)
	in.Close()
	if err != nil {
		return "", fmt.Errorf("latency: read %s: %w", path, err)
	}
	points, err := Normalize(times)
	if err != nil {
		return "", fmt.Errorf("latency: %s: %w", path, err)
	}

	outPath := NormalizedPath(path)
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("latency: create %s: %w", outPath, err)
	}
	if err := WriteNormalized(out, points); err != nil {
		out.Close()
		return "", fmt.Errorf("latency: write %s: %w", outPath, err)
	}
	return outPath, out.Close()
}

// NormalizeFiles normalizes every file matching pattern, in lexical order, and
// returns the written paths. Files already carrying the -normal suffix are
// skipped.
func NormalizeFiles(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("latency: glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	outputs := make([]string, 0, len(matches))
	for _, path := range matches {
		if strings.HasSuffix(strings.TrimSuffix(path, filepath.Ext(path)), "-normal") {
			continue
		}
		out, err := NormalizeFile(path)
		if err != nil {
			return outputs, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
