package db

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetpos/fleet-pos/internal/models"
)

type fakeVehicles struct {
	vehicles []models.Vehicle
	err      error
}

func (f *fakeVehicles) InsertVehicle(ctx context.Context, v models.Vehicle) (string, error) {
	return "", nil
}
func (f *fakeVehicles) FindVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return f.vehicles, f.err
}
func (f *fakeVehicles) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeVehicles) UpdateVehicle(ctx context.Context, id string, v models.Vehicle) error {
	return nil
}
func (f *fakeVehicles) DeleteVehicle(ctx context.Context, id string) error { return nil }

type fakeIncomes struct{ records []models.IncomeRecord }

func (f *fakeIncomes) InsertIncome(ctx context.Context, r models.IncomeRecord) (string, error) {
	return "", nil
}
func (f *fakeIncomes) FindIncomes(ctx context.Context) ([]models.IncomeRecord, error) {
	return f.records, nil
}

type fakeExpenses struct{ records []models.ExpenseRecord }

func (f *fakeExpenses) InsertExpense(ctx context.Context, r models.ExpenseRecord) (string, error) {
	return "", nil
}
func (f *fakeExpenses) FindExpenses(ctx context.Context) ([]models.ExpenseRecord, error) {
	return f.records, nil
}

type fakeEmployees struct{ employees []models.Employee }

func (f *fakeEmployees) InsertEmployee(ctx context.Context, e models.Employee) (string, error) {
	return "", nil
}
func (f *fakeEmployees) FindEmployees(ctx context.Context) ([]models.Employee, error) {
	return f.employees, nil
}
func (f *fakeEmployees) FindEmployeeByID(ctx context.Context, id string) (*models.Employee, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeEmployees) UpdateEmployee(ctx context.Context, id string, e models.Employee) error {
	return nil
}
func (f *fakeEmployees) DeleteEmployee(ctx context.Context, id string) error { return nil }
func (f *fakeEmployees) SetEmployeeStatus(ctx context.Context, id string, status string) error {
	return nil
}

type fakeAttendance struct{ records []models.AttendanceRecord }

func (f *fakeAttendance) InsertAttendance(ctx context.Context, r models.AttendanceRecord) (string, error) {
	return "", nil
}
func (f *fakeAttendance) FindAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	return f.records, nil
}
func (f *fakeAttendance) FindAttendanceByEmployee(ctx context.Context, id string) ([]models.AttendanceRecord, error) {
	return f.records, nil
}

func TestSnapshotLoader_Load(t *testing.T) {
	loader := &SnapshotLoader{
		Vehicles:   &fakeVehicles{vehicles: []models.Vehicle{{ID: primitive.NewObjectID()}}},
		Incomes:    &fakeIncomes{records: []models.IncomeRecord{{Amount: 100}, {Amount: 200}}},
		Expenses:   &fakeExpenses{records: []models.ExpenseRecord{{Amount: 50}}},
		Employees:  &fakeEmployees{employees: []models.Employee{{Name: "Kamal"}}},
		Attendance: &fakeAttendance{},
	}

	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("expected load to succeed, got error: %v", err)
	}
	if len(snap.Vehicles) != 1 {
		t.Errorf("expected 1 vehicle, got %d", len(snap.Vehicles))
	}
	if len(snap.Incomes) != 2 {
		t.Errorf("expected 2 incomes, got %d", len(snap.Incomes))
	}
	if len(snap.Expenses) != 1 {
		t.Errorf("expected 1 expense, got %d", len(snap.Expenses))
	}
	if len(snap.Employees) != 1 {
		t.Errorf("expected 1 employee, got %d", len(snap.Employees))
	}
	if len(snap.Attendance) != 0 {
		t.Errorf("expected no attendance, got %d", len(snap.Attendance))
	}
}

func TestSnapshotLoader_PropagatesError(t *testing.T) {
	loader := &SnapshotLoader{
		Vehicles:   &fakeVehicles{err: errors.New("mongo down")},
		Incomes:    &fakeIncomes{},
		Expenses:   &fakeExpenses{},
		Employees:  &fakeEmployees{},
		Attendance: &fakeAttendance{},
	}

	if _, err := loader.Load(context.Background()); err == nil {
		t.Error("expected error when a collection load fails")
	}
}
