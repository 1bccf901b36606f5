package main

import (
	"flag"

	"github.com/3Red/FIXParser/internal/config"
	"github.com/3Red/FIXParser/internal/logging"
	"github.com/3Red/FIXParser/internal/observability"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.ConfigureRuntime()
	observability.InitLogger("configgen")
	output := flag.String("output", "fixsum.toml", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "", "config path for validation (defaults to -output)")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = *output
		}
		cfg, err := config.Load(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("invalid fixsum config")
		}
		log.Info().
			Str("path", path).
			Str("input", cfg.Input).
			Str("strategy", string(cfg.Strategy)).
			Msg("validated fixsum config")
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal().Err(err).Msg("write config template")
	}
	log.Info().Str("path", *output).Msg("wrote fixsum config template")
}
