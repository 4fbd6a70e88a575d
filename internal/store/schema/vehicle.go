package schema

import "time"

// Vehicle represents the vehicles table - the central fleet entity.
//
// Company and OwnerCompanyID are a denormalized cache of the currently active
// ownership record, kept in sync by the ownership transfer operation. They are
// never written directly by vehicle updates.
type Vehicle struct {
	// ID is the vehicle identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// LicensePlate is the registration plate
	LicensePlate string `gorm:"column:license_plate;not null;uniqueIndex;type:text"`
	// VIN is the vehicle identification number
	VIN string `gorm:"column:vin;type:text"`
	// Brand is the manufacturer name
	Brand string `gorm:"column:brand;type:text"`
	// Model is the vehicle model
	Model string `gorm:"column:model;type:text"`
	// Company is the denormalized name of the current owner company
	Company string `gorm:"column:company;type:text"`
	// OwnerCompanyID is the denormalized id of the current owner company
	OwnerCompanyID *string `gorm:"column:owner_company_id;type:uuid;index"`
	// Status is the operational status (available, rented, maintenance, removed, private)
	Status string `gorm:"column:status;not null;default:'available';type:text"`
	// AssignedMechanicID is the user id of the responsible mechanic, if any
	AssignedMechanicID *string `gorm:"column:assigned_mechanic_id;type:uuid"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	OwnershipRecords []OwnershipRecord `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Documents        []VehicleDocument `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
