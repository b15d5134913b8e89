package kupon

import (
	"sort"

	"github.com/dkorunov/kupon/date"
)

// Resolver maps an opaque instrument identifier to a display name and
// ticker. Implementations own their caching; the engine never memoizes.
// ok is false when the identifier cannot be resolved.
type Resolver interface {
	Resolve(id string) (name, ticker string, ok bool)
}

// InstrumentTotal is one row of a per-instrument payout table.
type InstrumentTotal struct {
	InstrumentID string
	Name         string
	Ticker       string
	Total        Money
}

// Review is the digest of one reporting period: category totals, realized
// profit from sales, and the top payout tables.
type Review struct {
	Range          date.Range
	Currency       string
	Summary        Summary
	Profit         Money
	TopCoupons     []InstrumentTotal
	TopCommissions []InstrumentTotal
}

// topSize is how many rows the payout tables keep.
const topSize = 5

// NewReview runs both engine passes over the batch and resolves the top
// coupon and commission payers. resolver may be nil, in which case rows fall
// back to the operation description.
func NewReview(ops []Operation, r date.Range, resolver Resolver) (*Review, error) {
	currency, err := checkOperations(ops)
	if err != nil {
		return nil, err
	}
	summary, err := Aggregate(ops)
	if err != nil {
		return nil, err
	}
	profit, err := RealizedProfit(ops)
	if err != nil {
		return nil, err
	}
	return &Review{
		Range:          r,
		Currency:       currency,
		Summary:        summary,
		Profit:         profit,
		TopCoupons:     TopByCategory(ops, Coupon, resolver),
		TopCommissions: TopByCategory(ops, Commission, resolver),
	}, nil
}

// Accruals returns coupon plus dividend income for the period.
func (r *Review) Accruals() Money { return r.Summary.Accruals() }

// TopByCategory folds the operations of one category per instrument,
// resolves display names, and returns the largest totals first, at most
// five rows.
func TopByCategory(ops []Operation, c Category, resolver Resolver) []InstrumentTotal {
	byKey := make(map[string]*InstrumentTotal)
	for _, op := range ops {
		if Classify(op) != c {
			continue
		}
		name, ticker := resolveName(op, resolver)
		key := name + "|" + ticker
		row, ok := byKey[key]
		if !ok {
			row = &InstrumentTotal{InstrumentID: op.InstrumentID, Name: name, Ticker: ticker}
			byKey[key] = row
		}
		row.Total = row.Total.Add(op.abs())
	}

	rows := make([]InstrumentTotal, 0, len(byKey))
	for _, row := range byKey {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > topSize {
		rows = rows[:topSize]
	}
	return rows
}

// resolveName finds the best display name and ticker for an operation:
// the resolver's answer for its instrument, else the description, else
// "unknown".
func resolveName(op Operation, resolver Resolver) (name, ticker string) {
	if resolver != nil && op.InstrumentID != "" {
		if n, t, ok := resolver.Resolve(op.InstrumentID); ok {
			return n, t
		}
	}
	return op.DisplayName(), ""
}
