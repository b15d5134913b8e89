package kupon

import (
	"context"
	"fmt"
	"time"

	"github.com/dkorunov/kupon/date"
)

// OperationSource supplies executed operations for a date window. The
// implementation owns date filtering, execution-state filtering and
// pagination; the engine trusts the batches it receives.
type OperationSource interface {
	Operations(ctx context.Context, r date.Range) ([]Operation, error)
}

// PortfolioValuer reports the current total valuation of the account.
type PortfolioValuer interface {
	PortfolioValue(ctx context.Context) (Money, error)
}

// SalaryOptions configures the salary report.
type SalaryOptions struct {
	// Today is the report date. The zero value means the current day.
	Today date.Date
	// Since is the first day of the account history, the start of the
	// all-time window.
	Since date.Date
	// Target is the monthly coupon goal checked by TargetMet.
	Target Money
}

// SalaryReport is the full "coupon salary" digest: reviews of the standard
// windows, the previous day and month for comparison, and the whole-account
// figures derived from the all-time window and the portfolio valuation.
type SalaryReport struct {
	Generated time.Time
	Currency  string
	Target    Money

	Day       *Review
	PrevDay   *Review
	Week      *Review
	Month     *Review
	PrevMonth *Review
	All       *Review

	PortfolioValue Money
}

// NewSalaryReport fetches every report window through src and composes the
// salary report. Each window is an independent engine invocation over its
// own batch.
func NewSalaryReport(ctx context.Context, src OperationSource, valuer PortfolioValuer, resolver Resolver, opts SalaryOptions) (*SalaryReport, error) {
	today := opts.Today
	if today == (date.Date{}) {
		today = date.Today()
	}
	since := opts.Since
	if since == (date.Date{}) {
		since = date.New(2023, time.January, 1)
	}

	r := &SalaryReport{Generated: time.Now(), Target: opts.Target}

	windows := []struct {
		out   **Review
		span  date.Range
	}{
		{&r.Day, date.NewRange(today, date.Daily)},
		{&r.PrevDay, date.NewRange(today, date.Daily).Previous()},
		{&r.Week, date.NewRange(today, date.Weekly)},
		{&r.Month, date.NewRange(today, date.Monthly)},
		{&r.PrevMonth, date.NewRange(today, date.Monthly).Previous()},
		{&r.All, date.Between(since, today)},
	}
	for _, w := range windows {
		ops, err := src.Operations(ctx, w.span)
		if err != nil {
			return nil, fmt.Errorf("fetching operations for %s: %w", w.span.Identifier(), err)
		}
		review, err := NewReview(ops, w.span, resolver)
		if err != nil {
			return nil, fmt.Errorf("reviewing %s: %w", w.span.Identifier(), err)
		}
		*w.out = review
	}

	value, err := valuer.PortfolioValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching portfolio value: %w", err)
	}
	r.PortfolioValue = value
	r.Currency = value.Currency()
	if r.Currency == "" {
		r.Currency = r.All.Currency
	}
	// A target given without a currency takes the account's.
	r.Target = r.Target.Add(M(0, r.Currency))
	return r, nil
}

// NetInvested returns all-time deposits minus withdrawals.
func (r *SalaryReport) NetInvested() Money { return r.All.Summary.NetInvested() }

// PriceDiff returns the asset price difference: portfolio value minus net
// invested cash.
func (r *SalaryReport) PriceDiff() Money { return r.PortfolioValue.Sub(r.NetInvested()) }

// Yield returns the portfolio yield over the invested cash, zero when
// nothing was invested.
func (r *SalaryReport) Yield() Percent { return r.PriceDiff().PercentOf(r.NetInvested()) }

// TargetMet reports whether this month's coupons reached the configured goal.
func (r *SalaryReport) TargetMet() bool {
	return r.Month.Summary.Total(Coupon).GreaterThanOrEqual(r.Target)
}
