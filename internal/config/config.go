package config

import (
	"fmt"
	"strings"

	"github.com/3Red/FIXParser/internal/fix"
	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const EnvPrefix = "FIXSUM_"

// Config drives one fixsum run.
type Config struct {
	Input       string
	Strategy    fix.Strategy
	TimesFile   string
	MetricsFile string
	MsgTypeTag  int
	MsgType     string
	QuantityTag int
}

type fileConfig struct {
	Input       string `toml:"input"`
	Strategy    string `toml:"strategy"`
	TimesFile   string `toml:"times_file"`
	MetricsFile string `toml:"metrics_file"`
	MsgTypeTag  int    `toml:"msg_type_tag"`
	MsgType     string `toml:"msg_type"`
	QuantityTag int    `toml:"quantity_tag"`
}

type envConfig struct {
	Input       string `env:"INPUT"`
	Strategy    string `env:"STRATEGY"`
	TimesFile   string `env:"TIMES_FILE"`
	MetricsFile string `env:"METRICS_FILE"`
	MsgType     string `env:"MSG_TYPE"`
}

func DefaultConfig() Config {
	return Config{
		Input:       "data/FIX.4.2-ICE-12000.body",
		Strategy:    fix.StrategySelective,
		TimesFile:   "times.txt",
		MsgTypeTag:  fix.MsgTypeTag,
		MsgType:     fix.ExecutionReport,
		QuantityTag: fix.OrderQtyTag,
	}
}

// Load reads path (when non-empty) over the defaults, applies FIXSUM_*
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("strategy") {
		s, err := fix.ParseStrategy(raw.Strategy)
		if err != nil {
			return fmt.Errorf("parse strategy: %w", err)
		}
		cfg.Strategy = s
	}
	if meta.IsDefined("times_file") {
		cfg.TimesFile = strings.TrimSpace(raw.TimesFile)
	}
	if meta.IsDefined("metrics_file") {
		cfg.MetricsFile = strings.TrimSpace(raw.MetricsFile)
	}
	if meta.IsDefined("msg_type_tag") {
		cfg.MsgTypeTag = raw.MsgTypeTag
	}
	if meta.IsDefined("msg_type") {
		cfg.MsgType = raw.MsgType
	}
	if meta.IsDefined("quantity_tag") {
		cfg.QuantityTag = raw.QuantityTag
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var raw envConfig
	if err := env.ParseWithOptions(&raw, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config env parse failed: %w", err)
	}
	if v := strings.TrimSpace(raw.Input); v != "" {
		cfg.Input = v
	}
	if v := strings.TrimSpace(raw.Strategy); v != "" {
		s, err := fix.ParseStrategy(v)
		if err != nil {
			return fmt.Errorf("parse %sSTRATEGY: %w", EnvPrefix, err)
		}
		cfg.Strategy = s
	}
	if v := strings.TrimSpace(raw.TimesFile); v != "" {
		cfg.TimesFile = v
	}
	if v := strings.TrimSpace(raw.MetricsFile); v != "" {
		cfg.MetricsFile = v
	}
	if raw.MsgType != "" {
		cfg.MsgType = raw.MsgType
	}
	return nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Input) == "" {
		return fmt.Errorf("config missing input")
	}
	if _, err := fix.ParseStrategy(string(cfg.Strategy)); err != nil {
		return err
	}
	if cfg.MsgTypeTag <= 0 {
		return fmt.Errorf("msg_type_tag must be positive, got %d", cfg.MsgTypeTag)
	}
	if cfg.QuantityTag <= 0 {
		return fmt.Errorf("quantity_tag must be positive, got %d", cfg.QuantityTag)
	}
	if cfg.MsgTypeTag == cfg.QuantityTag {
		return fmt.Errorf("msg_type_tag and quantity_tag must differ")
	}
	if cfg.MsgType == "" {
		return fmt.Errorf("config missing msg_type")
	}
	if strings.IndexByte(cfg.MsgType, fix.Delimiter) >= 0 {
		return fmt.Errorf("msg_type must not contain the field delimiter")
	}
	return nil
}
