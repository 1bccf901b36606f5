// fixsum sums OrderQty over ExecutionReports in a buffered FIX body file.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/3Red/FIXParser/internal/aggregate"
	"github.com/3Red/FIXParser/internal/config"
	"github.com/3Red/FIXParser/internal/fix"
	"github.com/3Red/FIXParser/internal/latency"
	"github.com/3Red/FIXParser/internal/logging"
	"github.com/3Red/FIXParser/internal/observability"
	"github.com/3Red/FIXParser/internal/pipeline"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.ConfigureRuntime()
	observability.InitLogger("fixsum")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("fixsum failed")
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("fixsum", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to fixsum TOML config (optional)")
	input := fs.String("input", "", "input file (overrides config)")
	strategy := fs.String("strategy", "", "field extraction strategy: full|selective (overrides config)")
	times := fs.String("times", "", "per-message latency log path (overrides config)")
	metrics := fs.String("metrics", "", "prometheus textfile output path (overrides config)")
	noTimes := fs.Bool("no-times", false, "disable per-message latency instrumentation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, *input, *strategy, *times, *metrics, *noTimes)
	if err != nil {
		return err
	}
	log.Info().
		Str("input", cfg.Input).
		Str("strategy", string(cfg.Strategy)).
		Msg("loaded fixsum config")

	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	acc := aggregate.New(
		aggregate.WithTypeTag(cfg.MsgTypeTag),
		aggregate.WithMsgType(cfg.MsgType),
		aggregate.WithQuantityTag(cfg.QuantityTag),
	)
	msg, err := fix.NewMessage(cfg.Strategy, data, acc.Wants()...)
	if err != nil {
		return err
	}

	var (
		observers pipeline.Observers
		recorder  *latency.Recorder
	)
	if cfg.TimesFile != "" {
		recorder = latency.NewRecorder(bytes.Count(data, []byte(fix.TerminatorMarker)))
		observers = append(observers, recorder)
	}
	if cfg.MetricsFile != "" {
		observers = append(observers, observability.NewMessageObserver(cfg.Strategy))
	}
	var opts []pipeline.Option
	if len(observers) > 0 {
		opts = append(opts, pipeline.WithObserver(observers))
	}

	res, err := pipeline.Run(data, msg, acc, opts...)
	if err != nil {
		return err
	}
	writeSummary(stdout, res)

	if recorder != nil {
		if err := recorder.WriteFile(cfg.TimesFile); err != nil {
			return err
		}
		log.Info().Str("path", cfg.TimesFile).Int("samples", recorder.Len()).Msg("wrote latency log")
	}
	if cfg.MetricsFile != "" {
		observability.RecordRun(cfg.Strategy, res)
		if err := observability.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.Info().Str("path", cfg.MetricsFile).Msg("wrote metrics")
	}
	if unconsumed := len(data) - res.Consumed; unconsumed > 0 {
		log.Warn().Int("bytes", unconsumed).Msg("trailing bytes without terminator were ignored")
	}
	return nil
}

func loadConfig(path, input, strategy, times, metrics string, noTimes bool) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if input != "" {
		cfg.Input = input
	}
	if strategy != "" {
		s, err := fix.ParseStrategy(strategy)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Strategy = s
	}
	if times != "" {
		cfg.TimesFile = times
	}
	if noTimes {
		cfg.TimesFile = ""
	}
	if metrics != "" {
		cfg.MetricsFile = metrics
	}
	return cfg, config.Validate(cfg)
}

func writeSummary(w io.Writer, res pipeline.Result) {
	fmt.Fprintf(w, "total qty:     %d\n", res.Total)
	fmt.Fprintf(w, "messages:      %d\n", res.Messages)
	fmt.Fprintf(w, "matched:       %d\n", res.Matched)
	fmt.Fprintf(w, "duration(ns):  %d\n", res.Duration.Nanoseconds())
	fmt.Fprintf(w, "ns/msg:        %g\n", res.NsPerMessage())
}
