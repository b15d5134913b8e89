package renderer

import (
	"bytes"
	"fmt"
	"io"

	md "github.com/nao1215/markdown"

	"github.com/dkorunov/kupon"
)

// total reads a category total in the review's currency, so that a missing
// category still formats as a proper zero amount.
func total(r *kupon.Review, c kupon.Category) kupon.Money {
	return r.Summary.Total(c).Add(kupon.M(0, r.Currency))
}

// PeriodicMarkdown renders one reporting window: the category totals, the
// realized profit from sales, and the top payout tables.
func PeriodicMarkdown(r *kupon.Review) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Review (%s)", title(r.Range.Name()), r.Range.Identifier()))

	table := md.TableSet{
		Header: []string{
			md.Bold("Accruals"),
			md.Bold(r.Accruals().String()),
		},
	}
	for _, c := range kupon.Categories {
		t := total(r, c)
		if t.IsZero() {
			continue
		}
		table.Rows = append(table.Rows, []string{title(c.String()), t.String()})
	}
	table.Rows = append(table.Rows, []string{"Realized Profit", r.Profit.SignedString()})
	doc.Table(table)

	out := doc.String()

	var b bytes.Buffer
	b.WriteString(out)
	ConditionalBlock(&b, func(w io.Writer) bool {
		return renderTopTable(w, "Top Coupon Payers", r.TopCoupons)
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		return renderTopTable(w, "Top Commissions", r.TopCommissions)
	})
	return b.String()
}

// renderTopTable writes a per-instrument payout table, and reports whether
// there was anything to show.
func renderTopTable(w io.Writer, title string, rows []kupon.InstrumentTotal) bool {
	if len(rows) == 0 {
		return false
	}
	fmt.Fprintf(w, "\n## %s\n\n", title)
	fmt.Fprintln(w, "| Instrument | Ticker | Total |")
	fmt.Fprintln(w, "|:---|:---|---:|")
	for _, row := range rows {
		fmt.Fprintf(w, "| %s | %s | %s |\n", row.Name, row.Ticker, row.Total.String())
	}
	return true
}
