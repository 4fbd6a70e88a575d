package store

import (
	"context"
	"time"

	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetCompanyByID retrieves a company by id
	GetCompanyByID(ctx context.Context, companyID string) (*schema.Company, error)
	// GetCompanyByName retrieves a company by its display name
	GetCompanyByName(ctx context.Context, name string) (*schema.Company, error)
	// ListCompanies retrieves all companies
	ListCompanies(ctx context.Context) ([]*schema.Company, error)
	// ListCompaniesByPlatform retrieves all companies belonging to a platform
	ListCompaniesByPlatform(ctx context.Context, platformID string) ([]*schema.Company, error)
	// CreateCompany creates a company
	CreateCompany(ctx context.Context, input CreateCompanyInput) (*schema.Company, error)

	// GetVehicleByID retrieves a vehicle by id
	GetVehicleByID(ctx context.Context, vehicleID string) (*schema.Vehicle, error)
	// ListVehicles retrieves vehicles; removed/private vehicles are excluded unless requested
	ListVehicles(ctx context.Context, includeRemoved, includePrivate bool) ([]*schema.Vehicle, error)
	// CreateVehicle creates a vehicle together with its initial ownership record
	CreateVehicle(ctx context.Context, input CreateVehicleInput) (*schema.Vehicle, error)
	// UpdateVehicle updates non-ownership vehicle fields; owner fields mutate only
	// through TransferOwnership
	UpdateVehicle(ctx context.Context, input UpdateVehicleInput) (*schema.Vehicle, error)

	// GetCurrentOwner resolves the active ownership record for a vehicle;
	// returns nil when the vehicle has no ownership history
	GetCurrentOwner(ctx context.Context, vehicleID string) (*domain.Owner, error)
	// GetOwnerAtTime resolves which company owned a vehicle at an arbitrary timestamp
	GetOwnerAtTime(ctx context.Context, vehicleID string, at time.Time) (*domain.Owner, error)
	// GetOwnershipHistory retrieves the full ownership ledger for a vehicle, newest first
	GetOwnershipHistory(ctx context.Context, vehicleID string) ([]*schema.OwnershipRecord, error)
	// GetBulkOwnershipHistory retrieves the ownership ledger for every vehicle in one query
	GetBulkOwnershipHistory(ctx context.Context) (map[string][]*schema.OwnershipRecord, error)
	// GetBulkCurrentOwners resolves the active owner for many vehicles in one round trip
	GetBulkCurrentOwners(ctx context.Context, vehicleIDs []string) (map[string]*domain.Owner, error)
	// GetBulkOwnersAtTime resolves many vehicle/timestamp pairs in one round
	// trip; semantics are identical to GetOwnerAtTime applied per pair, with
	// the result parallel to the input (nil where no record covers the pair)
	GetBulkOwnersAtTime(ctx context.Context, pairs []domain.VehicleAtTime) ([]*domain.Owner, error)
	// TransferOwnership performs a guarded ownership transfer: closes the active
	// record, inserts the new one and updates the vehicle's denormalized owner
	// fields, all inside one transaction
	TransferOwnership(ctx context.Context, input TransferOwnershipInput) (*schema.OwnershipRecord, error)

	// CreateRental creates a rental, capturing the current owner company name
	// as the rental's frozen company snapshot
	CreateRental(ctx context.Context, input CreateRentalInput) (*schema.Rental, error)
	// GetRentalByID retrieves a rental by id
	GetRentalByID(ctx context.Context, rentalID string) (*schema.Rental, error)
	// ListRentals retrieves all rentals
	ListRentals(ctx context.Context) ([]*schema.Rental, error)
	// ListRentalsInPeriod retrieves rentals whose start date falls into [from, to]
	ListRentalsInPeriod(ctx context.Context, from, to time.Time) ([]*schema.Rental, error)
	// UpdateRentalGuarded applies a patch through the mutation guard:
	// validation, backup, transactional apply with row-count verification
	UpdateRentalGuarded(ctx context.Context, rentalID string, patch RentalPatch) (*schema.Rental, error)
	// DeleteRentalGuarded deletes a rental through the mutation guard
	DeleteRentalGuarded(ctx context.Context, rentalID string) error
	// RestoreRentalFromBackup restores a rental from its most recent backup,
	// or from a specific backup id when given
	RestoreRentalFromBackup(ctx context.Context, rentalID string, backupID *uint64) (*schema.Rental, error)
	// ListRentalBackups retrieves the backup log for a rental, newest first
	ListRentalBackups(ctx context.Context, rentalID string) ([]*schema.RentalBackup, error)
	// CheckRentalIntegrity runs the read-only diagnostic sweep over all rentals
	CheckRentalIntegrity(ctx context.Context) (*RentalIntegrityReport, error)

	// GetUserByID retrieves a user by id
	GetUserByID(ctx context.Context, userID string) (*schema.User, error)
	// GetUserCompanyPermissions resolves every company access granted to a user
	// directly from the user_permissions table
	GetUserCompanyPermissions(ctx context.Context, userID string) ([]domain.CompanyAccess, error)
	// GrantCompanyAccess grants (or replaces, upsert semantics) a user's access
	// to one company
	GrantCompanyAccess(ctx context.Context, input GrantCompanyAccessInput) error
	// RevokeCompanyAccess removes a user's access to one company
	RevokeCompanyAccess(ctx context.Context, userID, companyID string) error
	// SetUserCompanyAccess replaces all of a user's grants in one transaction
	SetUserCompanyAccess(ctx context.Context, userID string, grants []GrantCompanyAccessInput) error

	// ListExpenses retrieves all expenses
	ListExpenses(ctx context.Context) ([]*schema.Expense, error)
	// ListExpensesForCompanyPeriod retrieves a company's expenses dated inside [from, to]
	ListExpensesForCompanyPeriod(ctx context.Context, company string, from, to time.Time) ([]*schema.Expense, error)
	// CreateExpense creates an expense
	CreateExpense(ctx context.Context, input CreateExpenseInput) (*schema.Expense, error)
	// ListInsurances retrieves all insurances
	ListInsurances(ctx context.Context) ([]*schema.Insurance, error)
	// ListVehicleDocuments retrieves documents for the given vehicles
	ListVehicleDocuments(ctx context.Context, vehicleIDs []string) ([]*schema.VehicleDocument, error)

	// ListSettlements retrieves all settlements, newest first
	ListSettlements(ctx context.Context) ([]*schema.Settlement, error)
	// GetSettlementByID retrieves a settlement by id
	GetSettlementByID(ctx context.Context, settlementID string) (*schema.Settlement, error)
	// CreateSettlement persists a computed settlement
	CreateSettlement(ctx context.Context, settlement *schema.Settlement) error
}
