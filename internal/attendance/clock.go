// Package attendance holds the shared working-hours arithmetic used by the
// attendance handlers and the report engine.
package attendance

import (
	"fmt"
	"sort"
	"time"

	"github.com/fleetpos/fleet-pos/internal/models"
)

// NominalWorkday is the number of hours beyond which a shift counts as
// overtime.
const NominalWorkday = 8.0

// Day statuses derived from an employee's punches.
const (
	StatusNotMarked  = "not_marked"
	StatusCheckedIn  = models.AttendanceCheckIn
	StatusCheckedOut = models.AttendanceCheckOut
)

// clockLayout is the time-of-day format carried on attendance records.
const clockLayout = "15:04"

// WorkingHours computes the fractional hours between a check-in and a
// check-out time of day on the same date, clamped at zero, and the overtime
// portion beyond the nominal workday. Inputs are "HH:MM" strings.
func WorkingHours(checkin, checkout string) (hours, overtime float64, err error) {
	in, err := time.Parse(clockLayout, checkin)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid check-in time %q: %w", checkin, err)
	}
	out, err := time.Parse(clockLayout, checkout)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid check-out time %q: %w", checkout, err)
	}

	hours = out.Sub(in).Hours()
	if hours < 0 {
		hours = 0
	}
	overtime = hours - NominalWorkday
	if overtime < 0 {
		overtime = 0
	}
	return hours, overtime, nil
}

// SameDay reports whether two dates fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayRecords returns the employee's records for one calendar day, in the
// order given.
func DayRecords(records []models.AttendanceRecord, employeeID string, day time.Time) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, r := range records {
		if r.EmployeeID == employeeID && SameDay(r.Date, day) {
			out = append(out, r)
		}
	}
	return out
}

// LatestStatus derives an employee's current status for a day from the most
// recent record by timestamp. Records are sorted explicitly rather than
// trusting append order.
func LatestStatus(records []models.AttendanceRecord, employeeID string, day time.Time) string {
	dayRecs := DayRecords(records, employeeID, day)
	if len(dayRecs) == 0 {
		return StatusNotMarked
	}
	sorted := make([]models.AttendanceRecord, len(dayRecs))
	copy(sorted, dayRecs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted[len(sorted)-1].Type
}

// FirstCheckin returns the first check-in in record order among the
// employee's records for the given day, or false when none exists.
func FirstCheckin(records []models.AttendanceRecord, employeeID string, day time.Time) (models.AttendanceRecord, bool) {
	for _, r := range DayRecords(records, employeeID, day) {
		if r.Type == models.AttendanceCheckIn {
			return r, true
		}
	}
	return models.AttendanceRecord{}, false
}
