package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/dkorunov/kupon"
)

// SalaryMarkdown renders the full coupon salary report: a column per report
// window, the whole-account figures, and the all-time payout tables.
func SalaryMarkdown(r *kupon.SalaryReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Coupon Salary on %s\n\n", r.Day.Range.Identifier())
	fmt.Fprintf(&b, "*As of %s*\n\n", Now().Format("2006-01-02 15:04:05"))

	reviews := []struct {
		label  string
		review *kupon.Review
	}{
		{"Day", r.Day},
		{"Prev. Day", r.PrevDay},
		{"Week", r.Week},
		{"Month", r.Month},
		{"Prev. Month", r.PrevMonth},
		{"All Time", r.All},
	}

	// Header
	fmt.Fprint(&b, "| |")
	for _, rv := range reviews {
		fmt.Fprintf(&b, " %s |", rv.label)
	}
	fmt.Fprintln(&b, "")

	// Separator
	fmt.Fprint(&b, "|:---|")
	for range reviews {
		fmt.Fprint(&b, "---:|")
	}
	fmt.Fprintln(&b, "")

	printRow := func(label string, getValue func(r *kupon.Review) string) {
		fmt.Fprintf(&b, "| %s ", label)
		for _, rv := range reviews {
			fmt.Fprintf(&b, " | %s", getValue(rv.review))
		}
		fmt.Fprintln(&b, " |")
	}
	printRowBold := func(label string, getValue func(r *kupon.Review) string) {
		fmt.Fprintf(&b, "| **%s** ", label)
		for _, rv := range reviews {
			fmt.Fprintf(&b, " | **%s** ", getValue(rv.review))
		}
		fmt.Fprintln(&b, " |")
	}

	printRow("  Coupons", func(r *kupon.Review) string { return total(r, kupon.Coupon).String() })
	printRow("+ Dividends", func(r *kupon.Review) string { return total(r, kupon.Dividend).String() })
	printRowBold("= Accruals", func(r *kupon.Review) string { return r.Accruals().String() })
	printRow("Amortisation", func(r *kupon.Review) string { return total(r, kupon.Amortisation).String() })
	printRow("Realized Profit", func(r *kupon.Review) string { return r.Profit.SignedString() })
	printRow("Commissions", func(r *kupon.Review) string { return total(r, kupon.Commission).Neg().SignedString() })
	printRow("Taxes", func(r *kupon.Review) string { return total(r, kupon.Tax).Neg().SignedString() })
	fmt.Fprintln(&b, "")

	fmt.Fprint(&b, "## Whole Account\n\n")
	fmt.Fprintf(&b, "| %s | %s |\n", "**Portfolio Value**", "**"+r.PortfolioValue.String()+"**")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Net Invested | %s |\n", r.NetInvested().String())
	fmt.Fprintf(&b, "| Price Difference | %s |\n", r.PriceDiff().SignedString())
	fmt.Fprintf(&b, "| Yield | %s |\n", r.Yield().SignedString())

	ConditionalBlock(&b, func(w io.Writer) bool { return renderTarget(w, r) })
	ConditionalBlock(&b, func(w io.Writer) bool {
		return renderTopTable(w, "Top Coupon Payers (All Time)", r.All.TopCoupons)
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		return renderTopTable(w, "Top Commissions (All Time)", r.All.TopCommissions)
	})

	return b.String()
}

// renderTarget writes the monthly coupon goal progress, skipped entirely
// when no goal is configured.
func renderTarget(w io.Writer, r *kupon.SalaryReport) bool {
	if r.Target.IsZero() {
		return false
	}
	earned := r.Month.Summary.Total(kupon.Coupon).Add(kupon.M(0, r.Currency))
	fmt.Fprintf(w, "\n## Monthly Goal\n\n")
	if r.TargetMet() {
		fmt.Fprintf(w, "Reached: %s of %s this month.\n", earned.String(), r.Target.String())
	} else {
		fmt.Fprintf(w, "%s of %s this month (%s to go).\n",
			earned.String(), r.Target.String(), r.Target.Sub(earned).String())
	}
	return true
}
