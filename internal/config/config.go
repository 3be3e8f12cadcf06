// Package config loads the CLI settings from the environment and the batch
// file describing which indicators to compute.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raykavin/momentum/pkg/indicator"
	"github.com/raykavin/momentum/pkg/logger"
	"github.com/spf13/viper"
)

const (
	DefaultConfigPath  = "./momentum.yaml"
	DefaultStoragePath = "./momentum.db"
	envPrefix          = "MOMENTUM"
)

// AppConfig holds settings read from MOMENTUM_* environment variables
type AppConfig struct {
	ConfigPath  string
	StoragePath string
	Binance     BinanceConfig
}

// BinanceConfig holds the optional Binance credentials
type BinanceConfig struct {
	APIKey    string
	SecretKey string
	Retries   int
}

// SourceConfig tells the batch where candles come from
type SourceConfig struct {
	Kind      string `mapstructure:"kind"` // csv or binance
	File      string `mapstructure:"file"`
	Pair      string `mapstructure:"pair"`
	Timeframe string `mapstructure:"timeframe"`
	Resample  string `mapstructure:"resample"`
	Window    string `mapstructure:"window"`
	Limit     int    `mapstructure:"limit"`
}

// Batch is the content of a batch file
type Batch struct {
	Source     SourceConfig       `mapstructure:"source"`
	Persist    bool               `mapstructure:"persist"`
	Indicators []indicator.Config `mapstructure:"indicators"`
}

// LoadAppConfig reads the environment
func LoadAppConfig() *AppConfig {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("config_path", DefaultConfigPath)
	v.SetDefault("storage_path", DefaultStoragePath)
	v.SetDefault("binance_retries", 3)

	return &AppConfig{
		ConfigPath:  v.GetString("config_path"),
		StoragePath: v.GetString("storage_path"),
		Binance: BinanceConfig{
			APIKey:    v.GetString("binance_api_key"),
			SecretKey: v.GetString("binance_secret_key"),
			Retries:   v.GetInt("binance_retries"),
		},
	}
}

// DefaultBatch computes every indicator with its default parameters over
// Binance BTCUSDT hourly candles.
func DefaultBatch() *Batch {
	return &Batch{
		Source: SourceConfig{
			Kind:      "binance",
			Pair:      "BTCUSDT",
			Timeframe: "1h",
			Limit:     500,
		},
		Indicators: []indicator.Config{
			{Kind: "ao", Fast: 5, Slow: 34},
			{Kind: "apo", Fast: 12, Slow: 26, Mode: "sma"},
			{Kind: "bias", Length: 26, Mode: "sma"},
			{Kind: "bop", Scalar: 1},
			{Kind: "mom", Length: 10},
			{Kind: "roc", Length: 10, Scalar: 100},
			{Kind: "ppo", Fast: 12, Slow: 26, Scalar: 100, Mode: "sma"},
		},
	}
}

// LoadBatch reads a batch file. A missing file is created with
// DefaultBatch and that default is returned.
func LoadBatch(path string, log logger.Logger) (*Batch, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return saveDefaultBatch(path, log)
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	batch := &Batch{}
	if err := v.Unmarshal(batch); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := batch.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return batch, nil
}

// Validate checks the fields every run needs
func (b *Batch) Validate() error {
	switch b.Source.Kind {
	case "csv":
		if b.Source.File == "" {
			return errors.New("source.file is required for csv sources")
		}
	case "binance":
	default:
		return fmt.Errorf("unknown source kind %q", b.Source.Kind)
	}

	if b.Source.Pair == "" || b.Source.Timeframe == "" {
		return errors.New("source.pair and source.timeframe are required")
	}

	if len(b.Indicators) == 0 {
		return errors.New("no indicators configured")
	}

	for i, cfg := range b.Indicators {
		if _, err := indicator.ParseKind(cfg.Kind); err != nil {
			return fmt.Errorf("indicators[%d]: %w", i, err)
		}
	}

	return nil
}

func saveDefaultBatch(path string, log logger.Logger) (*Batch, error) {
	batch := DefaultBatch()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return batch, fmt.Errorf("could not create configuration directory: %w", err)
	}

	v := viper.New()
	v.Set("source", map[string]any{
		"kind":      batch.Source.Kind,
		"pair":      batch.Source.Pair,
		"timeframe": batch.Source.Timeframe,
		"limit":     batch.Source.Limit,
	})
	v.Set("persist", batch.Persist)

	indicators := make([]map[string]any, 0, len(batch.Indicators))
	for _, cfg := range batch.Indicators {
		indicators = append(indicators, map[string]any{
			"kind":     cfg.Kind,
			"fast":     cfg.Fast,
			"slow":     cfg.Slow,
			"length":   cfg.Length,
			"mode":     cfg.Mode,
			"scalar":   cfg.Scalar,
			"offset":   cfg.Offset,
			"external": cfg.External,
		})
	}
	v.Set("indicators", indicators)

	v.SetConfigFile(path)
	if err := v.WriteConfig(); err != nil {
		return batch, fmt.Errorf("could not save default configuration: %w", err)
	}

	log.WithField("path", path).Info("default batch file created")

	return batch, nil
}
