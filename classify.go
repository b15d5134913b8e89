package kupon

import (
	"fmt"
	"strings"
)

// Category is the purpose of an operation, used for period aggregates.
type Category int

const (
	// Unclassified operations contribute to no aggregate.
	Unclassified Category = iota
	Deposit
	Withdrawal
	Coupon
	Dividend
	Amortisation
	Commission
	Tax
)

// Categories lists every real category, in classification priority order.
var Categories = []Category{Deposit, Withdrawal, Coupon, Dividend, Amortisation, Commission, Tax}

func (c Category) String() string {
	switch c {
	case Unclassified:
		return "unclassified"
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Coupon:
		return "coupon"
	case Dividend:
		return "dividend"
	case Amortisation:
		return "amortisation"
	case Commission:
		return "commission"
	case Tax:
		return "tax"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range append([]Category{Unclassified}, Categories...) {
		if c.String() == s {
			return c, nil
		}
	}
	return Unclassified, fmt.Errorf("unknown category: %q", s)
}

// rule matches an operation against one category. Terms are substrings,
// compared against the lower-cased kind and (when descTerms is set) the
// lower-cased description.
type rule struct {
	category  Category
	kindTerms []string
	descTerms []string
}

// rules is the classification table, evaluated in order: the first matching
// rule wins and later rules are not considered. The order is a business
// rule, not an artifact: substring matching makes co-matches common (a
// dividend-tax operation names both families) and the earlier category is
// the one that counts. Term sets carry both the Russian labels and the
// English enum fragments that the brokerage emits.
var rules = []rule{
	{Deposit, []string{"пополн", "зачисление", "депозит", "cash_in", "deposit"}, nil},
	{Withdrawal, []string{"вывод", "списание", "cash_out", "withdraw"}, nil},
	{Coupon, []string{"купон", "coupon"}, []string{"купон", "coupon"}},
	{Dividend, []string{"дивиденд", "dividend"}, []string{"дивиденд", "dividend"}},
	{Amortisation, []string{"амортизац", "amortis"}, nil},
	{Commission, []string{"комисс", "fee"}, nil},
	{Tax, []string{"налог", "tax"}, nil},
}

func (r rule) matches(kind, desc string) bool {
	if containsAny(kind, r.kindTerms) {
		return true
	}
	return len(r.descTerms) > 0 && containsAny(desc, r.descTerms)
}

// Classify maps an operation to exactly one category, or Unclassified when
// no rule matches. Matching is case-insensitive and substring based.
func Classify(op Operation) Category {
	kind := strings.ToLower(op.Kind)
	desc := strings.ToLower(op.Description)
	for _, r := range rules {
		if r.matches(kind, desc) {
			return r.category
		}
	}
	return Unclassified
}
