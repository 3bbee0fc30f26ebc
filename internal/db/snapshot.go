package db

import (
	"context"
	"fmt"

	"github.com/fleetpos/fleet-pos/internal/report"
)

// SnapshotLoader assembles read-only snapshots of the record store for the
// report engine. Collections are loaded in insertion order; the engine
// treats the result as immutable.
type SnapshotLoader struct {
	Vehicles   VehicleCollection
	Incomes    IncomeCollection
	Expenses   ExpenseCollection
	Employees  EmployeeCollection
	Attendance AttendanceCollection
}

// NewSnapshotLoader builds a loader over the store's collections.
func NewSnapshotLoader(c *Collections) *SnapshotLoader {
	return &SnapshotLoader{
		Vehicles:   c.Vehicles,
		Incomes:    c.Incomes,
		Expenses:   c.Expenses,
		Employees:  c.Employees,
		Attendance: c.Attendance,
	}
}

// Load reads all five collections into one snapshot.
func (l *SnapshotLoader) Load(ctx context.Context) (report.Snapshot, error) {
	var snap report.Snapshot
	var err error

	if snap.Vehicles, err = l.Vehicles.FindVehicles(ctx); err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load vehicles: %w", err)
	}
	if snap.Incomes, err = l.Incomes.FindIncomes(ctx); err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load incomes: %w", err)
	}
	if snap.Expenses, err = l.Expenses.FindExpenses(ctx); err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	if snap.Employees, err = l.Employees.FindEmployees(ctx); err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load employees: %w", err)
	}
	if snap.Attendance, err = l.Attendance.FindAttendance(ctx); err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	return snap, nil
}
