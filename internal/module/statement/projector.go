package statement

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// topUpTag is the external ledger label meaning credit. Anything else is a
// debit.
const topUpTag = "top up"

// Project maps a raw ledger row into the signed view model. Pure and total:
// unparseable or non-finite amounts become zero, unknown category tags
// become Purchase.
func Project(raw RawTransaction) Transaction {
	category := CategoryPurchase
	if strings.EqualFold(raw.Type, topUpTag) {
		category = CategoryTopUp
	}

	amount := magnitude(raw.Amount)
	if category == CategoryPurchase {
		amount = -amount
	}

	return Transaction{
		ID:       raw.ID,
		Date:     raw.CreatedAt.UTC().Format(time.RFC3339),
		Amount:   amount,
		Category: category,
	}
}

// ProjectAll projects a slice of raw rows, preserving order.
func ProjectAll(raws []RawTransaction) []Transaction {
	txs := make([]Transaction, len(raws))
	for i, raw := range raws {
		txs[i] = Project(raw)
	}
	return txs
}

// magnitude extracts an unsigned float magnitude from a numeric or
// numeric-string value. Anything unparseable or non-finite is zero.
func magnitude(v any) float64 {
	var f float64

	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Abs(f)
}
