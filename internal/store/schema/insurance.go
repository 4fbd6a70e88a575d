package schema

import "time"

// Insurance represents the insurances table
type Insurance struct {
	// ID is the insurance identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// VehicleID references the insured vehicle
	VehicleID string `gorm:"column:vehicle_id;not null;type:uuid;index"`
	// Company is the company the policy belongs to
	Company string `gorm:"column:company;not null;type:text;index"`
	// Insurer is the insurance provider name
	Insurer string `gorm:"column:insurer;type:text"`
	// PolicyNumber is the insurer's policy reference
	PolicyNumber string `gorm:"column:policy_number;type:text"`
	// ValidFrom is the policy start
	ValidFrom time.Time `gorm:"column:valid_from;not null;type:timestamptz"`
	// ValidTo is the policy end
	ValidTo time.Time `gorm:"column:valid_to;not null;type:timestamptz"`
	// Price is the policy premium
	Price float64 `gorm:"column:price;not null;default:0"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Insurance model
func (Insurance) TableName() string {
	return "insurances"
}
