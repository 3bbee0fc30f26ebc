package report

import (
	"time"
)

// Filter narrows the snapshot's transactional collections to the config's
// reporting window and scope. A record matches when its date falls within
// [startDate 00:00:00, endDate 23:59:59.999] inclusive and, for incomes and
// expenses, the vehicle filter is FilterAll or equals the record's vehicle
// id; attendance is scoped by the employee filter the same way. An inverted
// date range yields an empty set, not an error. The relative order of the
// snapshot is preserved.
func Filter(snap Snapshot, cfg Config) FilteredSet {
	cfg = cfg.normalized()

	start := dayStart(cfg.StartDate)
	end := dayEnd(cfg.EndDate)

	var fs FilteredSet
	for _, in := range snap.Incomes {
		if inWindow(in.Date, start, end) && matchesScope(in.VehicleID, cfg.VehicleFilter) {
			fs.Incomes = append(fs.Incomes, in)
		}
	}
	for _, ex := range snap.Expenses {
		if inWindow(ex.Date, start, end) && matchesScope(ex.VehicleID, cfg.VehicleFilter) {
			fs.Expenses = append(fs.Expenses, ex)
		}
	}
	for _, at := range snap.Attendance {
		if inWindow(at.Date, start, end) && matchesScope(at.EmployeeID, cfg.EmployeeFilter) {
			fs.Attendance = append(fs.Attendance, at)
		}
	}
	return fs
}

// matchesScope compares a canonical record id against a filter value. Ids
// are normalized to hex strings at the record store boundary, so plain
// string equality is sufficient here.
func matchesScope(id, filter string) bool {
	return filter == FilterAll || id == filter
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, t.Location())
}
