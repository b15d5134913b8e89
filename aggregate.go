package kupon

// Summary holds per-category absolute totals for one batch of operations.
// Categories that never occurred are simply absent; Total returns zero for
// them.
type Summary map[Category]Money

// Aggregate classifies every operation in the batch and sums the absolute
// payment per category. Unclassified operations are silently ignored.
//
// The function is pure: it does not mutate ops, and the totals do not depend
// on the order of the batch. It fails only on genuinely invalid input
// (non-finite numbers, mixed currencies), never on data-shape issues.
func Aggregate(ops []Operation) (Summary, error) {
	if _, err := checkOperations(ops); err != nil {
		return nil, err
	}
	s := make(Summary)
	for _, op := range ops {
		c := Classify(op)
		if c == Unclassified {
			continue
		}
		s[c] = s[c].Add(op.abs())
	}
	return s, nil
}

// Total returns the aggregate for a category, zero when it never occurred.
func (s Summary) Total(c Category) Money { return s[c] }

// Accruals returns coupon plus dividend income.
func (s Summary) Accruals() Money { return s[Coupon].Add(s[Dividend]) }

// NetInvested returns deposits minus withdrawals.
func (s Summary) NetInvested() Money { return s[Deposit].Sub(s[Withdrawal]) }
