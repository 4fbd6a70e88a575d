package schema

import "time"

// VehicleDocument represents the vehicle_documents table. The document body
// itself lives in an external blob store; only the opaque storage key is kept.
type VehicleDocument struct {
	// ID is the document identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// VehicleID references the vehicle the document belongs to
	VehicleID string `gorm:"column:vehicle_id;not null;type:uuid;index"`
	// DocumentType classifies the document (stk, ek, vignette, insurance_claim, ...)
	DocumentType string `gorm:"column:document_type;not null;type:text"`
	// StorageKey is the opaque key in the external blob store
	StorageKey string `gorm:"column:storage_key;not null;type:text"`
	// ValidTo is the document expiry, when applicable
	ValidTo *time.Time `gorm:"column:valid_to;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the VehicleDocument model
func (VehicleDocument) TableName() string {
	return "vehicle_documents"
}
