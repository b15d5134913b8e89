package kupon

import "sort"

// lot is a single open purchase of a security, consumed oldest-first by
// later sales. It is owned by exactly one lotQueue and mutated in place.
type lot struct {
	unitCost  Money
	remaining Quantity
}

// lotQueue is the FIFO queue of open lots for one instrument. The sum of
// remaining quantities always equals total bought minus total matched-sold
// for that instrument.
type lotQueue []lot

// lotMatcher computes realized profit over a timestamp-ordered scan.
// Queues are created lazily on the first purchase of an instrument and live
// only for the duration of one scan: no state survives a call.
type lotMatcher struct {
	queues map[string]lotQueue
	profit Money
}

func newLotMatcher() *lotMatcher {
	return &lotMatcher{queues: make(map[string]lotQueue)}
}

// buy appends an open lot at cost abs(amount)/quantity.
func (m *lotMatcher) buy(op Operation) {
	qty := Q(op.Quantity)
	unitCost := op.abs().Div(qty)
	m.queues[op.InstrumentID] = append(m.queues[op.InstrumentID], lot{unitCost: unitCost, remaining: qty})
}

// sell consumes open lots front-first and accumulates the realized result.
//
// The sale proceeds are abs(amount) as reported by the brokerage: trading
// fees are assumed netted into the payment. Commission operations recorded
// separately are never subtracted here; that mirrors the historical
// behavior of this report and changing it would silently shift every
// published profit figure.
func (m *lotMatcher) sell(op Operation) {
	proceeds := op.abs()
	toSell := Q(op.Quantity)
	costBasis := M(0, op.Currency)

	queue := m.queues[op.InstrumentID]
	for toSell.IsPositive() && len(queue) > 0 {
		take := queue[0].remaining.Min(toSell)
		costBasis = costBasis.Add(queue[0].unitCost.Mul(take))
		queue[0].remaining = queue[0].remaining.Sub(take)
		toSell = toSell.Sub(take)
		if queue[0].remaining.IsZero() {
			queue = queue[1:]
		}
	}
	m.queues[op.InstrumentID] = queue

	// Selling more than was ever bought: the history may start after the
	// position was opened. Cost the untracked remainder at the sale price,
	// i.e. assume zero profit on it rather than failing the pass.
	if toSell.IsPositive() {
		costBasis = costBasis.Add(proceeds.Div(Q(op.Quantity)).Mul(toSell))
	}

	m.profit = m.profit.Add(proceeds.Sub(costBasis))
}

// scan routes one operation. Anything that is not a matchable trade is
// ignored: it is the aggregation pass's concern.
func (m *lotMatcher) scan(op Operation) {
	switch {
	case op.isBuy():
		m.buy(op)
	case op.isSell():
		m.sell(op)
	}
}

// RealizedProfit computes the profit realized by security sales in the
// batch, matching each sale against that instrument's open purchase lots in
// FIFO order (oldest purchase consumed first).
//
// Operations are scanned in timestamp order; equal timestamps keep their
// input order. The batch should cover the full purchase history of the
// instruments sold: sales of units the batch never saw bought fall back to
// a zero-profit cost estimate (see lotMatcher.sell).
func RealizedProfit(ops []Operation) (Money, error) {
	currency, err := checkOperations(ops)
	if err != nil {
		return Money{}, err
	}

	sorted := make([]Operation, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	m := newLotMatcher()
	m.profit = M(0, currency)
	for _, op := range sorted {
		m.scan(op)
	}
	return m.profit, nil
}
