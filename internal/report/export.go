package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Export formats.
const (
	FormatJSON  Format = "json"  // structured document, suitable for download
	FormatPrint Format = "print" // print-ready text view of the report
)

// Format selects an export target.
type Format string

var (
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrFormatNotAvailable = errors.New("export format not yet available")
)

// Document is an exported report ready for download or printing.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Export serializes an already-built report. It performs no recomputation:
// every value in the output comes from the report as assembled. Unknown
// formats are a caller error; email and share are acknowledged but not yet
// available.
func Export(r Report, format Format) (Document, error) {
	switch format {
	case FormatJSON:
		body, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return Document{}, fmt.Errorf("failed to marshal report: %w", err)
		}
		return Document{
			Filename:    r.ReportID + ".json",
			ContentType: "application/json; charset=utf-8",
			Body:        body,
		}, nil
	case FormatPrint:
		return Document{
			Filename:    r.ReportID + ".txt",
			ContentType: "text/plain; charset=utf-8",
			Body:        printView(r),
		}, nil
	case "email", "share":
		return Document{}, ErrFormatNotAvailable
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// printView renders a report as a print-ready text document.
func printView(r Report) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "FLEET BUSINESS REPORT %s\n", r.ReportID)
	fmt.Fprintf(&buf, "Period: %s to %s\n", r.Summary.ReportPeriod.Start, r.Summary.ReportPeriod.End)
	fmt.Fprintf(&buf, "Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&buf, "EXECUTIVE SUMMARY\n")
	fmt.Fprintf(&buf, "  Total income:   %12.2f\n", r.Summary.TotalIncome)
	fmt.Fprintf(&buf, "  Total expenses: %12.2f\n", r.Summary.TotalExpenses)
	fmt.Fprintf(&buf, "  Net profit:     %12.2f\n", r.Summary.NetProfit)
	fmt.Fprintf(&buf, "  Profit margin:  %11.1f%%\n\n", r.Summary.ProfitMargin)

	if len(r.VehiclePerformance) > 0 {
		fmt.Fprintf(&buf, "TOP PERFORMERS\n")
		top := r.VehiclePerformance
		if len(top) > 3 {
			top = top[:3]
		}
		for i, v := range top {
			fmt.Fprintf(&buf, "  #%d %s (%s)  profit %.2f  margin %.1f%%  trips %d\n",
				i+1, v.VehicleNumber, v.VehicleType, v.Profit, v.ProfitMargin, v.Trips)
		}
		buf.WriteByte('\n')
	}

	if len(r.ExpensesByCategory) > 0 {
		fmt.Fprintf(&buf, "EXPENSES BY CATEGORY\n")
		for _, e := range r.ExpensesByCategory {
			fmt.Fprintf(&buf, "  %-20s %12.2f  (%.1f%%)\n", e.Label, e.Amount, e.Percent)
		}
		buf.WriteByte('\n')
	}

	if len(r.IncomesByService) > 0 {
		fmt.Fprintf(&buf, "INCOME BY SERVICE TYPE\n")
		for _, e := range r.IncomesByService {
			fmt.Fprintf(&buf, "  %-20s %12.2f  (%.1f%%)\n", e.Label, e.Amount, e.Percent)
		}
		buf.WriteByte('\n')
	}

	if len(r.EmployeePerformance) > 0 {
		fmt.Fprintf(&buf, "EMPLOYEE PERFORMANCE\n")
		for _, e := range r.EmployeePerformance {
			fmt.Fprintf(&buf, "  %-20s %-12s days %3d  hours %6.1f  avg %5.1f\n",
				e.Name, e.Position, e.WorkDays, e.TotalHours, e.AverageHours)
		}
		buf.WriteByte('\n')
	}

	if len(r.Insights) > 0 {
		fmt.Fprintf(&buf, "RECOMMENDATIONS\n")
		for _, ins := range r.Insights {
			fmt.Fprintf(&buf, "  [%s] %s\n", ins.Severity, ins.Message)
		}
	}

	return buf.Bytes()
}
