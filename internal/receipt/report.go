package receipt

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// BuildReport totals the taxed price and the tax of every item, in input order
func BuildReport(items []LineItem) Report {
	report := Report{
		Lines:     make([]ReportLine, 0, len(items)),
		TotalTax:  decimal.Zero,
		TotalCost: decimal.Zero,
	}
	for _, item := range items {
		total := item.TotalPrice()
		report.TotalTax = report.TotalTax.Add(item.TotalTax())
		report.TotalCost = report.TotalCost.Add(total)
		report.Lines = append(report.Lines, ReportLine{
			Quantity: item.Quantity,
			Name:     item.Name,
			Total:    total,
		})
	}
	return report
}

// String formats the line as "<quantity> <name>: <total>"
func (l ReportLine) String() string {
	return fmt.Sprintf("%d %s: %s", l.Quantity, l.Name, l.Total.StringFixed(2))
}

// Format renders the receipt block for the nth bill
func (r Report) Format(number int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Output %d:\n", number)
	for _, line := range r.Lines {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Sales Taxes: %s\n", r.TotalTax.StringFixed(2))
	fmt.Fprintf(&b, "Total: %s\n", r.TotalCost.StringFixed(2))
	return b.String()
}

// Render writes the receipt block for the nth bill to w
func Render(w io.Writer, number int, report Report) error {
	if _, err := io.WriteString(w, report.Format(number)); err != nil {
		return fmt.Errorf("writing receipt: %w", err)
	}
	return nil
}
