package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Marketgen MarketgenConfig `yaml:"marketgen"`
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type MarketgenConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type GeneratorConfig struct {
	Symbol    string `yaml:"symbol"`
	Hours     int    `yaml:"hours"`
	OutputDir string `yaml:"output_dir"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	MaxAge int    `yaml:"max_age"`
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Config {
	return &Config{
		Marketgen: MarketgenConfig{
			Name:    "marketgen",
			Version: "1.0.0",
		},
		Generator: GeneratorConfig{
			Symbol:    "BTCUSDT",
			Hours:     24,
			OutputDir: "./data",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
			MaxAge: 7,
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	// Read configuration file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.Generator.Symbol = strings.TrimSpace(config.Generator.Symbol)
	config.Generator.OutputDir = strings.TrimSpace(config.Generator.OutputDir)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Marketgen.Name == "" {
		return fmt.Errorf("marketgen.name is required")
	}

	if cfg.Marketgen.Version == "" {
		return fmt.Errorf("marketgen.version is required")
	}

	if cfg.Generator.Symbol == "" {
		return fmt.Errorf("generator.symbol is required")
	}

	if cfg.Generator.Hours <= 0 {
		return fmt.Errorf("generator.hours must be greater than 0")
	}

	if cfg.Generator.OutputDir == "" {
		return fmt.Errorf("generator.output_dir is required")
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "report", "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return fmt.Errorf("logging.level '%s' is not valid", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format '%s' is not valid", cfg.Logging.Format)
	}

	return nil
}
