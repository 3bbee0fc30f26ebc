package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetpos/fleet-pos/internal/models"
)

// MockAttendanceCollection is a mock implementation of db.AttendanceCollection
type MockAttendanceCollection struct {
	mock.Mock
}

func (m *MockAttendanceCollection) InsertAttendance(ctx context.Context, record models.AttendanceRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

func (m *MockAttendanceCollection) FindAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceCollection) FindAttendanceByEmployee(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceRecord), args.Error(1)
}

// MockEmployeeCollection is a mock implementation of db.EmployeeCollection
type MockEmployeeCollection struct {
	mock.Mock
}

func (m *MockEmployeeCollection) InsertEmployee(ctx context.Context, employee models.Employee) (string, error) {
	args := m.Called(ctx, employee)
	return args.String(0), args.Error(1)
}

func (m *MockEmployeeCollection) FindEmployees(ctx context.Context) ([]models.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Employee), args.Error(1)
}

func (m *MockEmployeeCollection) FindEmployeeByID(ctx context.Context, id string) (*models.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeCollection) UpdateEmployee(ctx context.Context, id string, employee models.Employee) error {
	args := m.Called(ctx, id, employee)
	return args.Error(0)
}

func (m *MockEmployeeCollection) DeleteEmployee(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeCollection) SetEmployeeStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func activeEmployee() *models.Employee {
	return &models.Employee{
		ID:       primitive.NewObjectID(),
		Name:     "Kamal Silva",
		NIC:      "851234567V",
		Position: "driver",
		Status:   models.EmployeeActive,
	}
}

func TestAttendanceHandler_MarkCheckin(t *testing.T) {
	mockRecords := new(MockAttendanceCollection)
	mockEmployees := new(MockEmployeeCollection)
	handler := NewAttendanceHandler(mockRecords, mockEmployees)

	employee := activeEmployee()
	employeeID := employee.ID.Hex()

	mockEmployees.On("FindEmployeeByID", mock.Anything, employeeID).Return(employee, nil)
	mockRecords.On("InsertAttendance", mock.Anything, mock.AnythingOfType("models.AttendanceRecord")).Return("rec1", nil)

	body, _ := json.Marshal(map[string]string{
		"employee_id": employeeID,
		"type":        "checkin",
		"time":        "08:00",
	})
	req := httptest.NewRequest("POST", "/api/attendance", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rec1", resp["id"])
	mockRecords.AssertExpectations(t)
}

func TestAttendanceHandler_MarkCheckoutComputesHours(t *testing.T) {
	mockRecords := new(MockAttendanceCollection)
	mockEmployees := new(MockEmployeeCollection)
	handler := NewAttendanceHandler(mockRecords, mockEmployees)

	employee := activeEmployee()
	employeeID := employee.ID.Hex()
	today := time.Now()

	mockEmployees.On("FindEmployeeByID", mock.Anything, employeeID).Return(employee, nil)
	mockRecords.On("FindAttendanceByEmployee", mock.Anything, employeeID).Return([]models.AttendanceRecord{
		{EmployeeID: employeeID, Date: today, Time: "08:00", Type: models.AttendanceCheckIn},
	}, nil)

	var inserted models.AttendanceRecord
	mockRecords.On("InsertAttendance", mock.Anything, mock.AnythingOfType("models.AttendanceRecord")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(models.AttendanceRecord)
		}).
		Return("rec2", nil)

	body, _ := json.Marshal(map[string]string{
		"employee_id": employeeID,
		"type":        "checkout",
		"time":        "17:30",
	})
	req := httptest.NewRequest("POST", "/api/attendance", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.InDelta(t, 9.5, inserted.WorkingHours, 1e-9)
	assert.InDelta(t, 1.5, inserted.Overtime, 1e-9)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 9.5, resp["working_hours"].(float64), 1e-9)
	assert.InDelta(t, 1.5, resp["overtime"].(float64), 1e-9)
}

func TestAttendanceHandler_CheckoutWithoutCheckin(t *testing.T) {
	mockRecords := new(MockAttendanceCollection)
	mockEmployees := new(MockEmployeeCollection)
	handler := NewAttendanceHandler(mockRecords, mockEmployees)

	employee := activeEmployee()
	employeeID := employee.ID.Hex()

	mockEmployees.On("FindEmployeeByID", mock.Anything, employeeID).Return(employee, nil)
	mockRecords.On("FindAttendanceByEmployee", mock.Anything, employeeID).Return([]models.AttendanceRecord{}, nil)

	body, _ := json.Marshal(map[string]string{
		"employee_id": employeeID,
		"type":        "checkout",
		"time":        "17:00",
	})
	req := httptest.NewRequest("POST", "/api/attendance", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No check-in found")
}

func TestAttendanceHandler_InactiveEmployee(t *testing.T) {
	mockRecords := new(MockAttendanceCollection)
	mockEmployees := new(MockEmployeeCollection)
	handler := NewAttendanceHandler(mockRecords, mockEmployees)

	employee := activeEmployee()
	employee.Status = models.EmployeeInactive
	employeeID := employee.ID.Hex()

	mockEmployees.On("FindEmployeeByID", mock.Anything, employeeID).Return(employee, nil)

	body, _ := json.Marshal(map[string]string{
		"employee_id": employeeID,
		"type":        "checkin",
	})
	req := httptest.NewRequest("POST", "/api/attendance", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "inactive")
}

func TestAttendanceHandler_InvalidType(t *testing.T) {
	mockRecords := new(MockAttendanceCollection)
	mockEmployees := new(MockEmployeeCollection)
	handler := NewAttendanceHandler(mockRecords, mockEmployees)

	body, _ := json.Marshal(map[string]string{
		"employee_id": primitive.NewObjectID().Hex(),
		"type":        "lunch",
	})
	req := httptest.NewRequest("POST", "/api/attendance", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceHandler_TodayStatus(t *testing.T) {
	mockRecords := new(MockAttendanceCollection)
	mockEmployees := new(MockEmployeeCollection)
	handler := NewAttendanceHandler(mockRecords, mockEmployees)

	employeeID := primitive.NewObjectID().Hex()
	now := time.Now()

	mockRecords.On("FindAttendanceByEmployee", mock.Anything, employeeID).Return([]models.AttendanceRecord{
		{EmployeeID: employeeID, Date: now, Time: "08:00", Type: models.AttendanceCheckIn, Timestamp: now.Add(-2 * time.Hour)},
		{EmployeeID: employeeID, Date: now, Time: "12:00", Type: models.AttendanceCheckOut, Timestamp: now.Add(-1 * time.Hour)},
	}, nil)

	req := httptest.NewRequest("GET", "/api/attendance/employee/"+employeeID+"/status", nil)
	w := httptest.NewRecorder()

	handler.HandleByEmployee(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "checkout", resp["status"])
}

func TestAttendanceHandler_ListByEmployee(t *testing.T) {
	mockRecords := new(MockAttendanceCollection)
	mockEmployees := new(MockEmployeeCollection)
	handler := NewAttendanceHandler(mockRecords, mockEmployees)

	employeeID := primitive.NewObjectID().Hex()
	mockRecords.On("FindAttendanceByEmployee", mock.Anything, employeeID).Return([]models.AttendanceRecord{
		{EmployeeID: employeeID, Type: models.AttendanceCheckIn},
	}, nil)

	req := httptest.NewRequest("GET", "/api/attendance/employee/"+employeeID, nil)
	w := httptest.NewRecorder()

	handler.HandleByEmployee(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var records []models.AttendanceRecord
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 1)
}
