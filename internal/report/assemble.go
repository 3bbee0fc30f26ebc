package report

import (
	"fmt"
	"time"

	"github.com/fleetpos/fleet-pos/internal/models"
)

// Transactions carries the raw filtered records included in a report when
// the caller asked for details.
type Transactions struct {
	Incomes    []models.IncomeRecord     `json:"incomes"`
	Expenses   []models.ExpenseRecord    `json:"expenses"`
	Attendance []models.AttendanceRecord `json:"attendance"`
}

// Report is the immutable output of one build: every aggregation section,
// the derived insights, the echoed configuration and generation metadata.
// Two builds over identical inputs differ only in ReportID and GeneratedAt.
type Report struct {
	ReportID            string                `json:"reportId"`
	GeneratedAt         time.Time             `json:"generatedAt"`
	Config              Config                `json:"config"`
	Summary             Summary               `json:"summary"`
	VehiclePerformance  []VehiclePerformance  `json:"vehiclePerformance"`
	ExpensesByCategory  Breakdown             `json:"expensesByCategory"`
	IncomesByService    Breakdown             `json:"incomesByService"`
	EmployeePerformance []EmployeePerformance `json:"employeePerformance"`
	MonthlyTrend        []TrendPoint          `json:"monthlyTrend"`
	Insights            []Insight             `json:"insights"`
	Transactions        Transactions          `json:"transactions"`
}

// Assemble packages aggregation outputs, insights and the filtered records
// into a Report stamped with the current instant.
func Assemble(cfg Config, agg AggregationResult, insights []Insight, fs FilteredSet) Report {
	return assembleAt(cfg, agg, insights, fs, time.Now())
}

func assembleAt(cfg Config, agg AggregationResult, insights []Insight, fs FilteredSet, now time.Time) Report {
	cfg = cfg.normalized()
	agg.Summary.ReportPeriod = Period{
		Start: cfg.StartDate.Format("2006-01-02"),
		End:   cfg.EndDate.Format("2006-01-02"),
	}
	return Report{
		ReportID:            fmt.Sprintf("RPT-%d", now.UnixMilli()),
		GeneratedAt:         now,
		Config:              cfg,
		Summary:             agg.Summary,
		VehiclePerformance:  agg.VehiclePerformance,
		ExpensesByCategory:  agg.ExpensesByCategory,
		IncomesByService:    agg.IncomesByService,
		EmployeePerformance: agg.EmployeePerformance,
		MonthlyTrend:        agg.MonthlyTrend,
		Insights:            insights,
		Transactions: Transactions{
			Incomes:    fs.Incomes,
			Expenses:   fs.Expenses,
			Attendance: fs.Attendance,
		},
	}
}

// Generate runs the full pipeline over one snapshot: filter, aggregate,
// derive insights, assemble. It is a pure function of its inputs apart from
// the generation instant stamped by Assemble.
func Generate(snap Snapshot, cfg Config) Report {
	fs := Filter(snap, cfg)
	agg := Aggregate(fs, snap)
	insights := DeriveInsights(agg.Summary, agg.VehiclePerformance)
	return Assemble(cfg, agg, insights, fs)
}
