package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/dkorunov/kupon"
)

// OpsMarkdown renders an operation listing grouped by category, in the
// order the rules give them priority. Operations no rule recognizes get
// their own trailing section so nothing silently disappears.
func OpsMarkdown(ops []kupon.Operation) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Operations\n")

	for _, c := range kupon.Categories {
		renderOpsSection(&b, title(c.String()), ops, c)
	}
	renderOpsSection(&b, "Unclassified", ops, kupon.Unclassified)
	return b.String()
}

func renderOpsSection(w io.Writer, title string, ops []kupon.Operation, c kupon.Category) {
	section := Header(func(w io.Writer) {
		fmt.Fprintf(w, "\n## %s\n\n", title)
		fmt.Fprintln(w, "| Date | Description | Amount |")
		fmt.Fprintln(w, "|:---|:---|---:|")
	})
	for _, op := range ops {
		if kupon.Classify(op) != c {
			continue
		}
		section.PrintHeader(w)
		fmt.Fprintf(w, "| %s | %s | %+.2f %s |\n",
			op.Time.Format("2006-01-02 15:04"), op.DisplayName(), op.Amount, op.Currency)
	}
	section.PrintFooter(w)
}
