package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"marketgen/config"
	"marketgen/generator"
	"marketgen/logger"
)

func main() {
	log := logger.GetLogger()

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file")
	}

	configPath := flag.String("config", "config/config.yml", "Path to configuration file")
	symbol := flag.String("symbol", "BTCUSDT", "Trading symbol")
	hours := flag.Int("hours", 24, "Duration in hours (0 emits header-only files)")
	outputDir := flag.String("output-dir", "./data", "Output directory")

	flag.Parse()

	cfg := config.Default()
	if _, statErr := os.Stat(*configPath); statErr == nil {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.WithError(err).Error("Failed to load configuration")
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		log.WithError(err).Error("Failed to configure logger")
		os.Exit(1)
	}

	// Flags the user set explicitly win over config file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "symbol":
			cfg.Generator.Symbol = *symbol
		case "hours":
			cfg.Generator.Hours = *hours
		case "output-dir":
			cfg.Generator.OutputDir = *outputDir
		}
	})

	log.WithFields(logger.Fields{
		"service": cfg.Marketgen.Name,
		"version": cfg.Marketgen.Version,
	}).Info("starting marketgen")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if strings.ToLower(cfg.Logging.Level) == "report" {
		logger.StartReport(ctx, log, 30*time.Second)
	}

	// Fixtures cover the day leading up to the invocation.
	start := time.Now().Add(-24 * time.Hour)

	obRng := rand.New(rand.NewSource(time.Now().UnixNano()))
	trRng := rand.New(rand.NewSource(time.Now().UnixNano() + 1))

	if err := run(cfg, start, obRng, trRng); err != nil {
		log.WithError(err).Error("generation failed")
		os.Exit(1)
	}

	fmt.Println("\nDone! Run backtest with:")
	fmt.Printf("  backtest --symbol %s --data-dir %s\n", cfg.Generator.Symbol, cfg.Generator.OutputDir)
}

// outputPaths derives the two fixture file paths inside dir from the
// lowercased symbol. The backtest loader keys on exactly these names.
func outputPaths(dir, symbol string) (orderbook, trades string) {
	lower := strings.ToLower(symbol)
	return filepath.Join(dir, lower+"_orderbook.csv"), filepath.Join(dir, lower+"_trades.csv")
}

// run creates the output directory and writes the orderbook then the trade
// fixture, each driven by its own random source.
func run(cfg *config.Config, start time.Time, obRng, trRng *rand.Rand) error {
	log := logger.GetLogger()

	if err := os.MkdirAll(cfg.Generator.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", cfg.Generator.OutputDir, err)
	}

	duration := time.Duration(cfg.Generator.Hours) * time.Hour
	orderbookPath, tradesPath := outputPaths(cfg.Generator.OutputDir, cfg.Generator.Symbol)

	log.WithFields(logger.Fields{
		"symbol": cfg.Generator.Symbol,
		"hours":  cfg.Generator.Hours,
		"dir":    cfg.Generator.OutputDir,
	}).Info("generating sample data")

	rows, err := generator.NewOrderbookGenerator(obRng).Generate(cfg.Generator.Symbol, start, duration, orderbookPath)
	if err != nil {
		return err
	}
	log.WithFields(logger.Fields{"path": orderbookPath, "rows": rows}).Info("orderbook data written")

	rows, err = generator.NewTradeGenerator(trRng).Generate(cfg.Generator.Symbol, start, duration, tradesPath)
	if err != nil {
		return err
	}
	log.WithFields(logger.Fields{"path": tradesPath, "rows": rows}).Info("trade data written")

	return nil
}
