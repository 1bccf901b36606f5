// fixnorm turns fixsum latency logs into cumulative distributions and a
// gnuplot script comparing them.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/3Red/FIXParser/internal/latency"
	"github.com/3Red/FIXParser/internal/logging"
	"github.com/3Red/FIXParser/internal/observability"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.ConfigureRuntime()
	observability.InitLogger("fixnorm")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("fixnorm failed")
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("fixnorm", flag.ContinueOnError)
	pattern := fs.String("pattern", "times-?.txt", "glob selecting latency logs")
	plot := fs.String("plot", "plot.gnu", "gnuplot script output path (empty disables)")
	xRange := fs.Int("xrange", latency.DefaultXRangeNs, "upper bound of the plotted latency axis in ns")
	if err := fs.Parse(args); err != nil {
		return err
	}

	outputs, err := latency.NormalizeFiles(*pattern)
	if err != nil {
		return err
	}
	if len(outputs) == 0 {
		return fmt.Errorf("no files match %q", *pattern)
	}
	for _, out := range outputs {
		fmt.Fprintln(stdout, out)
	}
	log.Info().Int("files", len(outputs)).Str("pattern", *pattern).Msg("normalized latency logs")

	if *plot == "" {
		return nil
	}
	if err := latency.WritePlotScript(*plot, outputs, *xRange); err != nil {
		return fmt.Errorf("write plot script: %w", err)
	}
	log.Info().Str("path", *plot).Msg("wrote plot script")
	return nil
}
