package models

import "strconv"

// TradeColumns is the CSV header for trade print files, in emit order.
var TradeColumns = []string{
	"timestamp_ms", "symbol", "trade_id", "price", "quantity", "is_buyer_maker",
}

// TradeRow is a single executed trade print.
type TradeRow struct {
	TimestampMs  int64
	Symbol       string
	TradeID      int64
	Price        float64
	Quantity     float64
	IsBuyerMaker bool
}

// Record returns the row as CSV fields in TradeColumns order.
func (r *TradeRow) Record() []string {
	return []string{
		strconv.FormatInt(r.TimestampMs, 10),
		r.Symbol,
		strconv.FormatInt(r.TradeID, 10),
		FormatPrice(r.Price),
		FormatQty(r.Quantity),
		strconv.FormatBool(r.IsBuyerMaker),
	}
}
