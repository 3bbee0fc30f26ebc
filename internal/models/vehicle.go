package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle represents a fleet vehicle registered with the business.
type Vehicle struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleNumber string             `bson:"vehicle_number" json:"vehicle_number"`
	OwnerNIC      string             `bson:"owner_nic" json:"owner_nic"`
	VehicleType   string             `bson:"vehicle_type" json:"vehicle_type"` // "three_wheeler", "car", "van", "bike", "lorry"
	RegisterDate  time.Time          `bson:"register_date" json:"register_date"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
