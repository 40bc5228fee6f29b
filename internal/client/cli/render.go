package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fabienvalero1/userdir/internal/client/tableview"
)

// renderView prints the derived table: headers in layout order, visible
// rows, and the server-side total in the footer.
func renderView(w io.Writer, v tableview.View, s tableview.State) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, c := range v.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c.Label)
	}
	fmt.Fprintln(tw)

	for _, row := range v.Rows {
		for i, c := range v.Columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, row[c.Key])
		}
		fmt.Fprintln(tw)
	}

	_ = tw.Flush()

	fmt.Fprintf(w, "Total: %d users (page %d, size %d)\n", v.Total, s.Page, s.PageSize)
}
