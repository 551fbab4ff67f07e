package generator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"marketgen/logger"
	"marketgen/models"
	"marketgen/writer"
)

// Inter-trade gap is a uniform integer number of milliseconds in
// [minTradeGapMs, maxTradeGapMs], both inclusive. Downstream fixtures
// depend on this exact distribution, so it is not re-centered on a round
// mean.
const (
	minTradeGapMs = 100
	maxTradeGapMs = 1000
)

// TradeGenerator emits synthetic executed trades at a variable cadence.
type TradeGenerator struct {
	rng *rand.Rand
	log *logger.Log
}

// NewTradeGenerator creates a generator using the provided random source.
func NewTradeGenerator(rng *rand.Rand) *TradeGenerator {
	return &TradeGenerator{
		rng: rng,
		log: logger.GetLogger(),
	}
}

// Generate writes one header row plus trade rows covering
// [start, start+duration) to a CSV file at path. Trade ids start at 1 and
// increment per row. It returns the number of data rows written.
func (g *TradeGenerator) Generate(symbol string, start time.Time, duration time.Duration, path string) (int, error) {
	log := g.log.WithComponent("trade_generator").WithFields(logger.Fields{
		"symbol": symbol,
		"path":   path,
		"run_id": uuid.New().String(),
	})
	log.Info("generating trades")
	began := time.Now()

	out, err := writer.NewCSV(path, models.TradeColumns)
	if err != nil {
		return 0, err
	}

	mid := startMid
	tradeID := int64(1)
	end := start.Add(duration)

	for current := start; current.Before(end); {
		mid = stepMid(g.rng, mid)

		row := models.TradeRow{
			TimestampMs:  current.UnixMilli(),
			Symbol:       symbol,
			TradeID:      tradeID,
			Price:        mid + uniform(g.rng, -2, 2),
			Quantity:     uniform(g.rng, 0.01, 1.0),
			IsBuyerMaker: g.rng.Intn(2) == 0,
		}

		if err := out.Write(row.Record()); err != nil {
			out.Close()
			return out.Rows(), err
		}

		tradeID++
		gap := minTradeGapMs + g.rng.Intn(maxTradeGapMs-minTradeGapMs+1)
		current = current.Add(time.Duration(gap) * time.Millisecond)
	}

	if err := out.Close(); err != nil {
		return out.Rows(), err
	}

	logger.LogPerformanceEntry(log, "trade_generator", "generate", time.Since(began), logger.Fields{
		"rows": out.Rows(),
	})
	return out.Rows(), nil
}
