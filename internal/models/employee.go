package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee statuses. Only active employees participate in attendance and
// payroll aggregation.
const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)

// Employee represents a member of staff. VehicleID is set when the employee
// is assigned to a specific vehicle (e.g. a driver).
type Employee struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	NIC       string             `bson:"nic" json:"nic"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Position  string             `bson:"position" json:"position"` // "driver", "cleaner", "mechanic", "cashier", "manager"
	Salary    float64            `bson:"salary" json:"salary"`     // monthly, in LKR
	VehicleID string             `bson:"vehicle_id,omitempty" json:"vehicle_id,omitempty"`
	JoinDate  time.Time          `bson:"join_date" json:"join_date"`
	Status    string             `bson:"status" json:"status"` // "active" or "inactive"
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
