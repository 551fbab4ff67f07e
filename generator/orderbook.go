package generator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"marketgen/logger"
	"marketgen/models"
	"marketgen/writer"
)

const snapshotInterval = 100 * time.Millisecond

// OrderbookGenerator emits synthetic top-3-level orderbook snapshots at a
// fixed 100ms cadence.
type OrderbookGenerator struct {
	rng *rand.Rand
	log *logger.Log
}

// NewOrderbookGenerator creates a generator using the provided random
// source. Callers own the seed, so tests can replay exact output.
func NewOrderbookGenerator(rng *rand.Rand) *OrderbookGenerator {
	return &OrderbookGenerator{
		rng: rng,
		log: logger.GetLogger(),
	}
}

// Generate writes one header row plus one snapshot per 100ms tick in
// [start, start+duration) to a CSV file at path. It returns the number of
// data rows written.
func (g *OrderbookGenerator) Generate(symbol string, start time.Time, duration time.Duration, path string) (int, error) {
	log := g.log.WithComponent("orderbook_generator").WithFields(logger.Fields{
		"symbol": symbol,
		"path":   path,
		"run_id": uuid.New().String(),
	})
	log.Info("generating orderbook snapshots")
	began := time.Now()

	out, err := writer.NewCSV(path, models.OrderbookColumns)
	if err != nil {
		return 0, err
	}

	mid := startMid
	end := start.Add(duration)

	for current := start; current.Before(end); current = current.Add(snapshotInterval) {
		mid = stepMid(g.rng, mid)
		spread := uniform(g.rng, 1, 5)

		row := models.OrderbookRow{
			TimestampMs: current.UnixMilli(),
			Symbol:      symbol,
			BidPrice1:   mid - spread/2,
			BidQty1:     uniform(g.rng, 0.5, 5.0),
			BidPrice2:   mid - spread/2 - 1,
			BidQty2:     uniform(g.rng, 1.0, 10.0),
			BidPrice3:   mid - spread/2 - 2,
			BidQty3:     uniform(g.rng, 2.0, 15.0),
			AskPrice1:   mid + spread/2,
			AskQty1:     uniform(g.rng, 0.5, 5.0),
			AskPrice2:   mid + spread/2 + 1,
			AskQty2:     uniform(g.rng, 1.0, 10.0),
			AskPrice3:   mid + spread/2 + 2,
			AskQty3:     uniform(g.rng, 2.0, 15.0),
		}

		if err := out.Write(row.Record()); err != nil {
			out.Close()
			return out.Rows(), err
		}
	}

	if err := out.Close(); err != nil {
		return out.Rows(), err
	}

	logger.LogPerformanceEntry(log, "orderbook_generator", "generate", time.Since(began), logger.Fields{
		"rows": out.Rows(),
	})
	return out.Rows(), nil
}
