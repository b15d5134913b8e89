package date

import (
	"fmt"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the standard period range containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Between returns the range covering [from, to].
func Between(from, to Date) Range { return Range{From: from, To: to} }

// Contains returns true when date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Start returns the first instant of the range, UTC.
func (r Range) Start() time.Time { return r.From.Start() }

// End returns the first instant after the range, UTC, so that the range
// covers the half-open interval [Start, End).
func (r Range) End() time.Time { return r.To.End() }

// Period returns the period of this range if it is a standard one.
func (r Range) Period() (p Period, ok bool) {
	switch {
	case r.From == r.To:
		return Daily, true
	case r.From.Weekday() == time.Monday && r.From.EndOf(Weekly) == r.To:
		return Weekly, true
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return Monthly, true
	case r.From.StartOf(Quarterly) == r.From && r.From.EndOf(Quarterly) == r.To:
		return Quarterly, true
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return Yearly, true
	default:
		return Daily, false
	}
}

// Previous returns the standard range immediately before this one: yesterday
// for a day, last month for a month. A non-standard range slides back by its
// own width.
func (r Range) Previous() Range {
	if p, ok := r.Period(); ok {
		return NewRange(r.From.Add(-1), p)
	}
	width := int(r.End().Sub(r.Start()) / (24 * time.Hour))
	return Range{From: r.From.Add(-width), To: r.From.Add(-1)}
}

// Name names the period of the range.
func (r Range) Name() string {
	if p, ok := r.Period(); ok {
		return p.String()
	}
	return "special"
}

// Identifier computes a unique identifier for the Range.
// If the period is a standard one, use a short insightful name.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	switch p {
	case Daily:
		return r.From.String()
	case Weekly:
		_, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", r.From.Year(), week)
	case Monthly:
		return r.From.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		panic("unknown period")
	}
}

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }
