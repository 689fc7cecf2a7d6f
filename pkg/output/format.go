// Package output provides utilities for formatting and displaying schedules
// and sweep results.
package output

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/loan-projection/internal/sweep"
	"github.com/iwvelando/loan-projection/pkg/amortize"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(schedule amortize.Schedule) {
	p := message.NewPrinter(language.English)
	symbol := schedule.Currency.Symbol()
	_, _ = p.Printf("Repayment per period: %s%.2f\n", symbol, schedule.Repayment)
	fmt.Printf("Time (y) | Outstanding     | Cum. interest   | Cum. payments\n")
	fmt.Printf("________ | _______________ | _______________ | _____________\n")
	for j := range schedule.Time {
		_, _ = p.Printf("%8.3f | %s%14.2f | %s%14.2f | %s%14.2f\n",
			schedule.Time[j],
			symbol, schedule.LoanOutstanding[j],
			symbol, schedule.CumulativeInterest[j],
			symbol, schedule.CumulativePayments[j],
		)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(schedule amortize.Schedule) {
	fmt.Printf("\"time\",\"loanOutstanding\",\"cumulativeInterest\",\"cumulativePayments\"\n")
	for j := range schedule.Time {
		fmt.Printf("\"%.6f\",\"%.2f\",\"%.2f\",\"%.2f\"\n",
			schedule.Time[j],
			schedule.LoanOutstanding[j],
			schedule.CumulativeInterest[j],
			schedule.CumulativePayments[j],
		)
	}
}

// SweepPrettyFormat outputs one summary line per swept value plus the shared
// axis ranges.
func SweepPrettyFormat(result *sweep.Result) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Sweep over %s ---\n", result.Variable)
	fmt.Printf("Value        | Repayment     | Total paid\n")
	fmt.Printf("_____        | _________     | __________\n")
	for n := range result.Values {
		s := result.Schedules[n]
		total := 0.0
		if len(s.CumulativePayments) > 0 {
			total = s.CumulativePayments[len(s.CumulativePayments)-1]
		}
		symbol := s.Currency.Symbol()
		_, _ = p.Printf("%12.4f | %s%12.2f | %s%12.2f\n",
			result.Values[n], symbol, result.Repayments[n], symbol, total)
	}
	_, _ = p.Printf("Payments axis: %.2f to %.2f\n", result.PaymentsRange.Min, result.PaymentsRange.Max)
	if result.TimeRange != nil {
		_, _ = p.Printf("Time axis: %.3f to %.3f\n", result.TimeRange.Min, result.TimeRange.Max)
	}
}

// SweepCsvFormat outputs the swept values with their repayments and totals in
// comma-separated value format.
func SweepCsvFormat(result *sweep.Result) {
	fmt.Printf("\"%s\",\"repayment\",\"totalPayments\"\n", result.Variable)
	for n := range result.Values {
		s := result.Schedules[n]
		total := 0.0
		if len(s.CumulativePayments) > 0 {
			total = s.CumulativePayments[len(s.CumulativePayments)-1]
		}
		fmt.Printf("\"%.6f\",\"%.2f\",\"%.2f\"\n", result.Values[n], result.Repayments[n], total)
	}
}
