package schema

import (
	"time"

	"gorm.io/datatypes"
)

// User represents the users table
type User struct {
	// ID is the user identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Username is the login name
	Username string `gorm:"column:username;not null;uniqueIndex;type:text"`
	// Role is the back-office role (admin, company_admin, employee, ...)
	Role string `gorm:"column:role;not null;type:text"`
	// CompanyID is the user's own company, when bound to one
	CompanyID *string `gorm:"column:company_id;type:uuid"`
	// PlatformID scopes platform roles to a platform
	PlatformID *string `gorm:"column:platform_id;type:uuid"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// UserPermission represents the user_permissions table - one row per
// user/company pair with upsert semantics on grant.
type UserPermission struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID references the user the grant applies to
	UserID string `gorm:"column:user_id;not null;type:uuid;uniqueIndex:uq_user_permissions_user_company,priority:1"`
	// CompanyID references the company the user may see
	CompanyID string `gorm:"column:company_id;not null;type:uuid;uniqueIndex:uq_user_permissions_user_company,priority:2"`
	// Permissions is the JSON list of permission strings granted for the company
	Permissions datatypes.JSON `gorm:"column:permissions;not null"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Company Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the UserPermission model
func (UserPermission) TableName() string {
	return "user_permissions"
}
