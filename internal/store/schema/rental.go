package schema

import "time"

// Rental represents the rentals table - the mutation-guarded entity.
//
// Company is a snapshot of the owning company's name taken at creation time.
// It is deliberately frozen so historical reports never change retroactively
// when a vehicle is transferred to another owner. An empty value only occurs
// on rows that predate the snapshot mechanism.
type Rental struct {
	// ID is the rental identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// VehicleID references the rented vehicle
	VehicleID string `gorm:"column:vehicle_id;not null;type:uuid;index"`
	// CustomerID references the customer, when known
	CustomerID *string `gorm:"column:customer_id;type:uuid"`
	// CustomerName is the display name of the renting customer
	CustomerName string `gorm:"column:customer_name;not null;type:text"`
	// Company is the frozen snapshot of the owner company name at creation time
	Company string `gorm:"column:company;type:text;index"`
	// StartDate is the rental period start
	StartDate time.Time `gorm:"column:start_date;not null;type:timestamptz"`
	// EndDate is the rental period end
	EndDate time.Time `gorm:"column:end_date;not null;type:timestamptz"`
	// TotalPrice is the agreed rental price
	TotalPrice float64 `gorm:"column:total_price;not null;default:0"`
	// Commission is the platform commission on this rental
	Commission float64 `gorm:"column:commission;not null;default:0"`
	// Deposit held for the rental
	Deposit float64 `gorm:"column:deposit;not null;default:0"`
	// PaymentMethod used (cash, bank_transfer, card, ...)
	PaymentMethod string `gorm:"column:payment_method;type:text"`
	// Paid indicates whether the rental has been paid
	Paid bool `gorm:"column:paid;not null;default:false"`
	// Status is the rental lifecycle status (pending, active, finished, cancelled)
	Status string `gorm:"column:status;not null;default:'pending';type:text"`
	// HandoverPlace is where the vehicle was handed over
	HandoverPlace string `gorm:"column:handover_place;type:text"`
	// OrderNumber is the external order reference
	OrderNumber string `gorm:"column:order_number;type:text"`
	// AllowedKilometers for the whole rental period (0 = unlimited)
	AllowedKilometers int `gorm:"column:allowed_kilometers;not null;default:0"`
	// ExtraKilometerRate charged per kilometer above the allowance
	ExtraKilometerRate float64 `gorm:"column:extra_kilometer_rate;not null;default:0"`
	// HandoverProtocolID references the handover protocol document
	HandoverProtocolID *string `gorm:"column:handover_protocol_id;type:uuid"`
	// ReturnProtocolID references the return protocol document
	ReturnProtocolID *string `gorm:"column:return_protocol_id;type:uuid"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Rental model
func (Rental) TableName() string {
	return "rentals"
}
