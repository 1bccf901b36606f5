package latency

import (
	"fmt"
	"os"
	"strings"
)

// DefaultXRangeNs bounds the plotted latency axis.
const DefaultXRangeNs = 50000

const plotHeader = `
set termoption dashed
do for [i=1:10] {
    set style line i linewidth 2
}
set style increment userstyles
set style line 6
set style line 6 linecolor "darkgray"
set xlabel "nanoseconds"
set xrange [0:%d]
set yrange [0:100]
set ylabel "%%"
plot `

// PlotScript renders a gnuplot script drawing one cumulative curve per file.
func PlotScript(files []string, xRangeNs int) string {
	if xRangeNs <= 0 {
		xRangeNs = DefaultXRangeNs
	}
	series := make([]string, 0, len(files))
	for _, f := range files {
		series = append(series, fmt.Sprintf("%q with lines", f))
	}
	var b strings.Builder
	fmt.Fprintf(&b, plotHeader, xRangeNs)
	b.WriteString(strings.Join(series, ","))
	b.WriteString("\npause -1\n")
	return b.String()
}

// WritePlotScript writes PlotScript(files, xRangeNs) to path.
func WritePlotScript(path string, files []string, xRangeNs int) error {
	return os.WriteFile(path, []byte(PlotScript(files, xRangeNs)), 0o644)
}
