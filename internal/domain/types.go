package domain

import "time"

// AuthContext is the authenticated caller identity supplied by the route layer.
// The core trusts it; authentication itself happens in the API middleware.
type AuthContext struct {
	UserID     string
	Role       Role
	CompanyID  *string
	PlatformID *string
}

// CompanyAccess is one company a user may see, with the permission strings
// granted for it. The shape matches one row of the user_permissions table
// joined with the company name.
type CompanyAccess struct {
	CompanyID   string   `json:"companyId"`
	CompanyName string   `json:"companyName"`
	Permissions []string `json:"permissions"`
}

// Owner is the resolved owner of a vehicle at some point in time
type Owner struct {
	CompanyID   string    `json:"companyId"`
	CompanyName string    `json:"companyName"`
	ValidFrom   time.Time `json:"validFrom"`
	// ValidTo is nil for the currently active owner
	ValidTo *time.Time `json:"validTo,omitempty"`
}

// VehicleAtTime identifies one vehicle/timestamp pair for bulk point-in-time
// ownership resolution
type VehicleAtTime struct {
	VehicleID string
	At        time.Time
}
