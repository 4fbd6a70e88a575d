package domain

import "time"

const (
	// DEFAULT_ACCESS_CACHE_TTL bounds how stale a cached company-access list may be
	DEFAULT_ACCESS_CACHE_TTL = 5 * time.Minute

	// INITIAL_OWNERSHIP_BACKFILL_OFFSET is subtracted from a transfer date when a
	// vehicle has no ownership history yet and its creation time is unusable.
	// The backfilled record must never start at the transfer date itself, or the
	// initial interval would collapse to zero width.
	INITIAL_OWNERSHIP_BACKFILL_OFFSET = 24 * time.Hour

	// BACKUP_SCHEMA_VERSION tags every rental backup payload so that recovery
	// from old backups stays well-defined after the rental shape evolves
	BACKUP_SCHEMA_VERSION = 1
)

// Role identifies a user role in the back-office
type Role string

const (
	// RoleAdmin is the legacy admin role (same rights as super_admin)
	RoleAdmin Role = "admin"
	// RoleSuperAdmin has full rights across all companies
	RoleSuperAdmin Role = "super_admin"
	// RolePlatformAdmin has full rights within its platform
	RolePlatformAdmin Role = "platform_admin"
	// RolePlatformEmployee has limited rights within its platform
	RolePlatformEmployee Role = "platform_employee"
	// RoleCompanyAdmin has full rights within its own company (or platform when scoped)
	RoleCompanyAdmin Role = "company_admin"
	// RoleEmployee has basic vehicle/rental/customer rights
	RoleEmployee Role = "employee"
	// RoleTempWorker has mostly read-only rights
	RoleTempWorker Role = "temp_worker"
	// RoleMechanic has maintenance rights on assigned vehicles
	RoleMechanic Role = "mechanic"
	// RoleSalesRep has sales rights with pricing limits
	RoleSalesRep Role = "sales_rep"
)

// Unrestricted reports whether the role bypasses company-based filtering entirely
func (r Role) Unrestricted() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RolePlatformAdmin:
		return true
	}
	return false
}

// PlatformScoped reports whether the role resolves its allow-list from platform
// membership instead of explicit per-company grants
func (r Role) PlatformScoped() bool {
	return r == RoleCompanyAdmin || r == RolePlatformEmployee
}
