package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IncomeRecord represents one completed, paid service. Income records are
// append-only; VehicleID is the canonical hex id of the serviced vehicle.
type IncomeRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID     string             `bson:"vehicle_id" json:"vehicle_id"`
	Amount        float64            `bson:"amount" json:"amount"`             // in LKR
	ServiceType   string             `bson:"service_type" json:"service_type"` // "full_service", "wash", "repair", "hire", "oil_change", "other"
	CustomerName  string             `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	CustomerPhone string             `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"` // "cash", "card", "bank_transfer", "credit"
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
