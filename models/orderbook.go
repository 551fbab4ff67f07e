package models

import "strconv"

// OrderbookColumns is the CSV header for orderbook snapshot files. This is
// the only place snapshot column order is defined; OrderbookRow.Record must
// emit fields in exactly this order.
var OrderbookColumns = []string{
	"timestamp_ms", "symbol",
	"bid_price_1", "bid_qty_1", "bid_price_2", "bid_qty_2", "bid_price_3", "bid_qty_3",
	"ask_price_1", "ask_qty_1", "ask_price_2", "ask_qty_2", "ask_price_3", "ask_qty_3",
}

// OrderbookRow is a single top-3-level orderbook snapshot.
type OrderbookRow struct {
	TimestampMs int64
	Symbol      string
	BidPrice1   float64
	BidQty1     float64
	BidPrice2   float64
	BidQty2     float64
	BidPrice3   float64
	BidQty3     float64
	AskPrice1   float64
	AskQty1     float64
	AskPrice2   float64
	AskQty2     float64
	AskPrice3   float64
	AskQty3     float64
}

// Record returns the row as CSV fields in OrderbookColumns order.
// Prices carry 2 fractional digits, quantities 4.
func (r *OrderbookRow) Record() []string {
	return []string{
		strconv.FormatInt(r.TimestampMs, 10),
		r.Symbol,
		FormatPrice(r.BidPrice1), FormatQty(r.BidQty1),
		FormatPrice(r.BidPrice2), FormatQty(r.BidQty2),
		FormatPrice(r.BidPrice3), FormatQty(r.BidQty3),
		FormatPrice(r.AskPrice1), FormatQty(r.AskQty1),
		FormatPrice(r.AskPrice2), FormatQty(r.AskQty2),
		FormatPrice(r.AskPrice3), FormatQty(r.AskQty3),
	}
}

// FormatPrice renders a price rounded to 2 fractional digits.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatQty renders a quantity rounded to 4 fractional digits.
func FormatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
