// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"
	"io"

	"github.com/pvtools/loan-pv/pkg/presentvalue"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable summary of the calculation with
// currency values using thousands separators.
func PrettyFormat(w io.Writer, breakdown presentvalue.Breakdown) {
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(w, "Present Value of Loan: $%.2f\n", breakdown.PresentValue)
	_, _ = p.Fprintf(w, "Total Amount Paid:     $%.2f\n", breakdown.TotalPaid)
	_, _ = p.Fprintf(w, "Total Interest Paid:   $%.2f\n", breakdown.TotalInterest)
}

// CsvFormat writes the calculation in comma-separated value format.
func CsvFormat(w io.Writer, breakdown presentvalue.Breakdown) {
	fmt.Fprintf(w, `"present_value","total_paid","total_interest"`)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, `"%.2f","%.2f","%.2f"`, breakdown.PresentValue, breakdown.TotalPaid, breakdown.TotalInterest)
	fmt.Fprintf(w, "\n")
}
