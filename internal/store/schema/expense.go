package schema

import "time"

// Expense represents the expenses table. Expenses carry their own company
// field and are filtered on it directly.
type Expense struct {
	// ID is the expense identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Company is the company the expense belongs to
	Company string `gorm:"column:company;not null;type:text;index"`
	// VehicleID references a vehicle when the expense is vehicle-bound
	VehicleID *string `gorm:"column:vehicle_id;type:uuid;index"`
	// Description of the expense
	Description string `gorm:"column:description;not null;type:text"`
	// Amount spent
	Amount float64 `gorm:"column:amount;not null;default:0"`
	// Category (fuel, service, insurance, toll, other)
	Category string `gorm:"column:category;type:text"`
	// Date the expense occurred
	Date time.Time `gorm:"column:date;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
