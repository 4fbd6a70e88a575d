package schema

import "time"

// Company represents the companies table - a fleet owner participating in the platform
type Company struct {
	// ID is the company identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Name is the display name used for rental snapshots and settlement attribution
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
	// PlatformID groups companies under a platform; nil for standalone companies
	PlatformID *string `gorm:"column:platform_id;type:uuid;index"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Company model
func (Company) TableName() string {
	return "companies"
}
