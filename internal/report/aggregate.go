package report

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"

	"github.com/fleetpos/fleet-pos/internal/models"
)

// Summary holds the headline totals for the reporting window. ProfitMargin
// is defined as 0 (not NaN) when there is no income.
type Summary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
	ProfitMargin  float64 `json:"profitMargin"`
	ReportPeriod  Period  `json:"reportPeriod"`
}

// Period is the inclusive calendar-date range a report covers.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// VehiclePerformance is a per-vehicle derived metrics row.
type VehiclePerformance struct {
	VehicleID     string  `json:"vehicleId"`
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleType   string  `json:"vehicleType"`
	Income        float64 `json:"income"`
	Expenses      float64 `json:"expenses"`
	Profit        float64 `json:"profit"`
	Trips         int     `json:"trips"`
	ProfitMargin  float64 `json:"profitMargin"`
}

// EmployeePerformance is a per-employee derived metrics row. Only active
// employees get a row.
type EmployeePerformance struct {
	EmployeeID   string  `json:"employeeId"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Salary       float64 `json:"salary"`
	WorkDays     int     `json:"workDays"`
	TotalHours   float64 `json:"totalHours"`
	AverageHours float64 `json:"averageHours"`
}

// BreakdownEntry is one label of a categorical breakdown. Percent is the
// entry's share of the axis total, 0 when the total is 0.
type BreakdownEntry struct {
	Label   string
	Amount  float64
	Percent float64
}

// Breakdown maps categorical labels to summed amounts in first-seen order.
type Breakdown []BreakdownEntry

// MarshalJSON renders the breakdown as a label->amount object, keys in
// first-seen order, matching the exported report document shape.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Amount)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Amounts returns the breakdown as a plain label->amount map.
func (b Breakdown) Amounts() map[string]float64 {
	m := make(map[string]float64, len(b))
	for _, e := range b {
		m[e.Label] = e.Amount
	}
	return m
}

// TrendPoint is one month of the business-wide income/expense trend.
type TrendPoint struct {
	Month    string  `json:"month"` // e.g. "Jan 2025"
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// AggregationResult bundles every section computed from one filtered set.
type AggregationResult struct {
	Summary             Summary
	VehiclePerformance  []VehiclePerformance
	ExpensesByCategory  Breakdown
	IncomesByService    Breakdown
	EmployeePerformance []EmployeePerformance
	MonthlyTrend        []TrendPoint
}

// Aggregate computes every report section from the filtered set. The
// snapshot supplies the full vehicle and employee registers (every vehicle
// gets a performance row, with or without transactions) and the unfiltered
// income/expense history for the monthly trend, which intentionally covers
// the whole business regardless of the reporting window.
func Aggregate(fs FilteredSet, snap Snapshot) AggregationResult {
	return AggregationResult{
		Summary:             summarize(fs),
		VehiclePerformance:  vehiclePerformance(fs, snap.Vehicles),
		ExpensesByCategory:  breakdown(len(fs.Expenses), func(i int) (string, float64) { return fs.Expenses[i].Category, fs.Expenses[i].Amount }),
		IncomesByService:    breakdown(len(fs.Incomes), func(i int) (string, float64) { return fs.Incomes[i].ServiceType, fs.Incomes[i].Amount }),
		EmployeePerformance: employeePerformance(fs, snap.Employees),
		MonthlyTrend:        MonthlyTrend(snap.Incomes, snap.Expenses),
	}
}

func summarize(fs FilteredSet) Summary {
	var s Summary
	for _, in := range fs.Incomes {
		s.TotalIncome += in.Amount
	}
	for _, ex := range fs.Expenses {
		s.TotalExpenses += ex.Amount
	}
	s.NetProfit = s.TotalIncome - s.TotalExpenses
	s.ProfitMargin = safeMargin(s.NetProfit, s.TotalIncome)
	return s
}

// safeMargin returns profit/income*100, or 0 when income is 0.
func safeMargin(profit, income float64) float64 {
	if income <= 0 {
		return 0
	}
	return profit / income * 100
}

// vehiclePerformance builds one row per registered vehicle, sorted by profit
// descending with vehicle id ascending as the deterministic tie-break.
// Transactions whose vehicle id matches no register entry contribute to the
// summary totals but get no row here.
func vehiclePerformance(fs FilteredSet, vehicles []models.Vehicle) []VehiclePerformance {
	rows := make([]VehiclePerformance, 0, len(vehicles))
	for _, v := range vehicles {
		id := v.ID.Hex()
		row := VehiclePerformance{
			VehicleID:     id,
			VehicleNumber: v.VehicleNumber,
			VehicleType:   v.VehicleType,
		}
		for _, in := range fs.Incomes {
			if in.VehicleID == id {
				row.Income += in.Amount
				row.Trips++
			}
		}
		for _, ex := range fs.Expenses {
			if ex.VehicleID == id {
				row.Expenses += ex.Amount
			}
		}
		row.Profit = row.Income - row.Expenses
		row.ProfitMargin = safeMargin(row.Profit, row.Income)
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Profit != rows[j].Profit {
			return rows[i].Profit > rows[j].Profit
		}
		return rows[i].VehicleID < rows[j].VehicleID
	})
	return rows
}

// breakdown groups n records into label->sum entries in first-seen order and
// fills each entry's share of the axis total, guarding a zero total.
func breakdown(n int, at func(i int) (label string, amount float64)) Breakdown {
	var b Breakdown
	index := make(map[string]int)
	var total float64
	for i := 0; i < n; i++ {
		label, amount := at(i)
		total += amount
		if j, ok := index[label]; ok {
			b[j].Amount += amount
			continue
		}
		index[label] = len(b)
		b = append(b, BreakdownEntry{Label: label, Amount: amount})
	}
	for i := range b {
		if total > 0 {
			b[i].Percent = b[i].Amount / total * 100
		}
	}
	return b
}

func employeePerformance(fs FilteredSet, employees []models.Employee) []EmployeePerformance {
	rows := make([]EmployeePerformance, 0, len(employees))
	for _, e := range employees {
		if e.Status != models.EmployeeActive {
			continue
		}
		id := e.ID.Hex()
		row := EmployeePerformance{
			EmployeeID: id,
			Name:       e.Name,
			Position:   e.Position,
			Salary:     e.Salary,
		}
		for _, a := range fs.Attendance {
			if a.EmployeeID != id {
				continue
			}
			if a.Type == models.AttendanceCheckIn {
				row.WorkDays++
			}
			// Only checkout records carry working hours; others add 0.
			row.TotalHours += a.WorkingHours
		}
		if row.WorkDays > 0 {
			row.AverageHours = row.TotalHours / float64(row.WorkDays)
		}
		rows = append(rows, row)
	}
	return rows
}

// MonthlyTrend groups incomes and expenses by calendar month and returns one
// point per month, sorted chronologically by the first-of-month date rather
// than by label string.
func MonthlyTrend(incomes []models.IncomeRecord, expenses []models.ExpenseRecord) []TrendPoint {
	type key struct {
		year  int
		month time.Month
	}
	totals := make(map[key]*TrendPoint)
	keys := make([]key, 0)

	at := func(t time.Time) *TrendPoint {
		k := key{t.Year(), t.Month()}
		p, ok := totals[k]
		if !ok {
			p = &TrendPoint{Month: t.Format("Jan 2006")}
			totals[k] = p
			keys = append(keys, k)
		}
		return p
	}
	for _, in := range incomes {
		at(in.Date).Income += in.Amount
	}
	for _, ex := range expenses {
		at(ex.Date).Expenses += ex.Amount
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	points := make([]TrendPoint, 0, len(keys))
	for _, k := range keys {
		p := *totals[k]
		p.Profit = p.Income - p.Expenses
		points = append(points, p)
	}
	return points
}
