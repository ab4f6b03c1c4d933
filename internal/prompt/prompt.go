// Package prompt collects loan parameters interactively. It converts the
// human-friendly answers (rate as a percentage, term in years) into the
// values the presentvalue package expects.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pvtools/loan-pv/pkg/constants"
)

// Request holds already-converted inputs ready for the calculation: the
// annual rate as a fraction and the term as a count of periods.
type Request struct {
	Payment        float64
	AnnualRate     float64
	Periods        int
	PeriodsPerYear int
}

// Prompter reads loan parameters from in and echoes prompts to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Collect asks for the payment amount, the annual interest rate as a
// percentage, and the loan term in years. The rate is divided by 100 and
// the term multiplied by periodsPerYear before being returned, so the
// Request can be handed straight to the calculation.
func (p *Prompter) Collect(periodsPerYear int) (Request, error) {
	payment, err := p.readFloat("Enter periodic payment amount: $")
	if err != nil {
		return Request{}, fmt.Errorf("payment: %w", err)
	}

	ratePercent, err := p.readFloat("Enter annual interest rate (as %, e.g., 5.5): ")
	if err != nil {
		return Request{}, fmt.Errorf("interest rate: %w", err)
	}

	years, err := p.readInt("Enter loan term in years: ")
	if err != nil {
		return Request{}, fmt.Errorf("loan term: %w", err)
	}

	return Request{
		Payment:        payment,
		AnnualRate:     ratePercent / constants.PercentageMultiplier,
		Periods:        years * periodsPerYear,
		PeriodsPerYear: periodsPerYear,
	}, nil
}

func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) readFloat(label string) (float64, error) {
	line, err := p.readLine(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", line)
	}
	return value, nil
}

func (p *Prompter) readInt(label string) (int, error) {
	line, err := p.readLine(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", line)
	}
	return value, nil
}
