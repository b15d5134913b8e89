package kupon

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidInput marks batches the engine refuses to process: non-finite
// amounts or prices, or several currencies mixed in one batch. Test with
// errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Operation is a single executed brokerage account operation, as supplied by
// the upstream client. The record is immutable: the engine never modifies it.
//
// The upstream collaborator is responsible for date filtering and for passing
// only settled/executed operations.
type Operation struct {
	// Time is the execution timestamp, the ordering key for FIFO matching.
	// Ties are broken by input sequence order (stable sort).
	Time time.Time
	// Kind is the free-text operation type label. It is locale-mixed
	// (Russian labels, English enum names) and matched case-insensitively.
	Kind string
	// Description is an optional annotation, used as a secondary
	// classification signal and as a display fallback name.
	Description string
	// InstrumentID is an opaque identifier (FIGI for the Tinkoff client).
	// Empty for non-security operations such as cash deposits.
	InstrumentID string
	// Quantity is the signed count of units traded, zero for non-trades.
	Quantity int64
	// UnitPrice is the price per unit at the time of the trade, if any.
	UnitPrice float64
	// Amount is the signed payment: negative is cash out (purchase, fee),
	// positive is cash in (sale, coupon, deposit).
	Amount float64
	// Currency of Amount and UnitPrice.
	Currency string
}

// buy and sell term families, matched as substrings of the lower-cased kind.
var (
	buyTerms  = []string{"покупк", "buy"}
	sellTerms = []string{"продаж", "sell"}
)

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// isBuy reports whether op is a matchable purchase: a buy-typed kind, cash
// going out, a known instrument and a positive quantity. Trades that fail
// the shape checks are skipped, not errors.
func (op Operation) isBuy() bool {
	return containsAny(strings.ToLower(op.Kind), buyTerms) &&
		op.Amount < 0 && op.InstrumentID != "" && op.Quantity > 0
}

// isSell reports whether op is a matchable sale: a sell-typed kind, cash
// coming in, a known instrument and a positive quantity.
func (op Operation) isSell() bool {
	return containsAny(strings.ToLower(op.Kind), sellTerms) &&
		op.Amount > 0 && op.InstrumentID != "" && op.Quantity > 0
}

// DisplayName returns the best human label available on the record itself:
// the description, or "unknown" when there is none.
func (op Operation) DisplayName() string {
	if op.Description != "" {
		return op.Description
	}
	return "unknown"
}

// checkOperations is the input-validation boundary shared by Aggregate and
// RealizedProfit. Genuinely invalid numeric input (non-finite amounts or
// prices, mixed currencies in one batch) fails fast here; everything
// data-shaped (unclassifiable kinds, missing instruments, zero quantities)
// is handled further down by skipping.
func checkOperations(ops []Operation) (currency string, err error) {
	for i, op := range ops {
		if math.IsNaN(op.Amount) || math.IsInf(op.Amount, 0) {
			return "", fmt.Errorf("%w: operation %d (%s): non-finite amount %v", ErrInvalidInput, i, op.Kind, op.Amount)
		}
		if math.IsNaN(op.UnitPrice) || math.IsInf(op.UnitPrice, 0) {
			return "", fmt.Errorf("%w: operation %d (%s): non-finite unit price %v", ErrInvalidInput, i, op.Kind, op.UnitPrice)
		}
		if op.Currency == "" {
			continue
		}
		if currency == "" {
			currency = op.Currency
			continue
		}
		if op.Currency != currency {
			return "", fmt.Errorf("%w: operation %d (%s): currency %s in a %s batch", ErrInvalidInput, i, op.Kind, op.Currency, currency)
		}
	}
	return currency, nil
}

// abs returns the absolute payment of the operation as Money.
// Callers must have validated the batch first: M panics on non-finite input.
func (op Operation) abs() Money {
	return M(math.Abs(op.Amount), op.Currency)
}
