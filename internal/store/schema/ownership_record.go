package schema

import "time"

// OwnershipRecord represents the vehicle_ownership_history table - the
// append-only ledger of which company owns/owned a vehicle.
//
// Records partition time per vehicle with no gaps once a history exists: a
// transfer closes the previous active record at the new valid_from before
// inserting the new one. At most one record per vehicle has valid_to NULL;
// the invariant is enforced at the application level inside the transfer
// transaction.
type OwnershipRecord struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// VehicleID references the vehicle this ownership record relates to
	VehicleID string `gorm:"column:vehicle_id;not null;type:uuid;index:idx_ownership_vehicle_valid,priority:1"`
	// OwnerCompanyID is the owning company
	OwnerCompanyID string `gorm:"column:owner_company_id;not null;type:uuid"`
	// OwnerCompanyName is the denormalized company display name at transfer time
	OwnerCompanyName string `gorm:"column:owner_company_name;not null;type:text"`
	// ValidFrom is when this company became the owner
	ValidFrom time.Time `gorm:"column:valid_from;not null;type:timestamptz;index:idx_ownership_vehicle_valid,priority:2"`
	// ValidTo is when the ownership ended; NULL means this is the active record
	ValidTo *time.Time `gorm:"column:valid_to;type:timestamptz"`
	// TransferReason records why the transfer happened (sale, initial_setup, correction, ...)
	TransferReason string `gorm:"column:transfer_reason;not null;type:text"`
	// TransferNotes carries free-form operator notes
	TransferNotes *string `gorm:"column:transfer_notes;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Vehicle Vehicle `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the OwnershipRecord model
func (OwnershipRecord) TableName() string {
	return "vehicle_ownership_history"
}
