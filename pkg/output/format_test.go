package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pvtools/loan-pv/pkg/presentvalue"
)

func TestPrettyFormat(t *testing.T) {
	breakdown := presentvalue.Breakdown{
		PresentValue:  52990.71,
		TotalPaid:     60000.00,
		TotalInterest: 7009.29,
	}

	var buf bytes.Buffer
	PrettyFormat(&buf, breakdown)
	got := buf.String()

	for _, want := range []string{
		"Present Value of Loan: $52,990.71",
		"Total Amount Paid:     $60,000.00",
		"Total Interest Paid:   $7,009.29",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PrettyFormat() output missing %q\ngot:\n%s", want, got)
		}
	}
}

func TestPrettyFormatSmallValues(t *testing.T) {
	// Values under a thousand carry no separator.
	breakdown := presentvalue.Breakdown{
		PresentValue:  995.85,
		TotalPaid:     1000.00,
		TotalInterest: 4.15,
	}

	var buf bytes.Buffer
	PrettyFormat(&buf, breakdown)
	got := buf.String()

	if !strings.Contains(got, "$995.85") {
		t.Errorf("PrettyFormat() output missing %q\ngot:\n%s", "$995.85", got)
	}
	if !strings.Contains(got, "$1,000.00") {
		t.Errorf("PrettyFormat() output missing %q\ngot:\n%s", "$1,000.00", got)
	}
}

func TestCsvFormat(t *testing.T) {
	breakdown := presentvalue.Breakdown{
		PresentValue:  418922.48,
		TotalPaid:     720000.00,
		TotalInterest: 301077.52,
	}

	var buf bytes.Buffer
	CsvFormat(&buf, breakdown)
	got := buf.String()

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("CsvFormat() produced %d lines, expected 2:\n%s", len(lines), got)
	}
	if lines[0] != `"present_value","total_paid","total_interest"` {
		t.Errorf("CsvFormat() header = %q", lines[0])
	}
	if lines[1] != `"418922.48","720000.00","301077.52"` {
		t.Errorf("CsvFormat() row = %q", lines[1])
	}
}
