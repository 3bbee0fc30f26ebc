package report

import "time"

// ReportType selects which sections the presentation layer surfaces.
// Aggregation always computes every section regardless of type.
type ReportType string

const (
	TypeFinancialSummary   ReportType = "financial_summary"
	TypeVehiclePerformance ReportType = "vehicle_performance"
	TypeEmployeeAttendance ReportType = "employee_attendance"
	TypeExpenseBreakdown   ReportType = "expense_breakdown"
	TypeIncomeAnalysis     ReportType = "income_analysis"
	TypeCompleteOverview   ReportType = "complete_overview"
)

// FilterAll is the sentinel for an unscoped vehicle or employee filter.
const FilterAll = "all"

// Config describes one report build. StartDate and EndDate are calendar
// days; the reporting window is inclusive on both ends. VehicleFilter and
// EmployeeFilter are either FilterAll or a canonical entity id (hex string,
// as assigned by the record store).
type Config struct {
	Type           ReportType `json:"type"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	VehicleFilter  string     `json:"vehicleFilter"`
	EmployeeFilter string     `json:"employeeFilter"`
	IncludeCharts  bool       `json:"includeCharts"`
	IncludeDetails bool       `json:"includeDetails"`
}

// IsValidType reports whether t is a recognized report type.
func IsValidType(t ReportType) bool {
	switch t {
	case TypeFinancialSummary, TypeVehiclePerformance, TypeEmployeeAttendance,
		TypeExpenseBreakdown, TypeIncomeAnalysis, TypeCompleteOverview:
		return true
	default:
		return false
	}
}

// normalized returns the config with empty filters replaced by FilterAll.
func (c Config) normalized() Config {
	if c.VehicleFilter == "" {
		c.VehicleFilter = FilterAll
	}
	if c.EmployeeFilter == "" {
		c.EmployeeFilter = FilterAll
	}
	return c
}
