// Package render turns a retrieved rate archive into broadcastable text.
// Pure formatting, no I/O: identical archives render identically.
package render

import (
	"fmt"
	"strings"

	"rate_relay/internal/domain"
)

// HTMLTable renders one table per archive date, most recent first.
func HTMLTable(archive domain.Archive) string {
	var b strings.Builder
	for _, day := range archive {
		fmt.Fprintf(&b, "<h3>%s:</h3>\n", day.Date)
		b.WriteString("<table>\n<thead>\n<tr>\n")
		b.WriteString("<th>Currency</th>\n<th>Sale</th>\n<th>Purchase</th>\n")
		b.WriteString("</tr>\n</thead>\n<tbody>\n")

		for _, code := range day.Currencies() {
			pair := day.Rates[code]
			b.WriteString("<tr>\n")
			fmt.Fprintf(&b, "<td>%s</td>\n", code)
			fmt.Fprintf(&b, "<td>%s</td>\n", pair.Sale.String())
			fmt.Fprintf(&b, "<td>%s</td>\n", pair.Purchase.String())
			b.WriteString("</tr>\n")
		}

		b.WriteString("</tbody>\n</table>\n")
	}
	return b.String()
}

// TextTable renders a fixed-width variant for plain-text consumers.
func TextTable(archive domain.Archive) string {
	var b strings.Builder
	for _, day := range archive {
		fmt.Fprintf(&b, "%s:\n", day.Date)
		b.WriteString("Currency  Sale  Purchase\n")
		b.WriteString("--------  ----  --------\n")

		for _, code := range day.Currencies() {
			pair := day.Rates[code]
			fmt.Fprintf(&b, "%-8s  %s  %s\n", code, pair.Sale.StringFixed(2), pair.Purchase.StringFixed(2))
		}

		b.WriteString("\n")
	}
	return b.String()
}
