package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. It accesses the underlying *sql.DB and sets the pool
// configuration. Zero values fall back to defaults, see
// NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// GetCompanyByID retrieves a company by id
func (s *pgStore) GetCompanyByID(ctx context.Context, companyID string) (*schema.Company, error) {
	var company schema.Company
	err := s.db.WithContext(ctx).Where("id = ?", companyID).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

// GetCompanyByName retrieves a company by its display name
func (s *pgStore) GetCompanyByName(ctx context.Context, name string) (*schema.Company, error) {
	var company schema.Company
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company by name: %w", err)
	}
	return &company, nil
}

// ListCompanies retrieves all companies
func (s *pgStore) ListCompanies(ctx context.Context) ([]*schema.Company, error) {
	var companies []*schema.Company
	if err := s.db.WithContext(ctx).Order("name asc").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// ListCompaniesByPlatform retrieves all companies belonging to a platform
func (s *pgStore) ListCompaniesByPlatform(ctx context.Context, platformID string) ([]*schema.Company, error) {
	var companies []*schema.Company
	err := s.db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Order("name asc").
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list platform companies: %w", err)
	}
	return companies, nil
}

// CreateCompany creates a company
func (s *pgStore) CreateCompany(ctx context.Context, input CreateCompanyInput) (*schema.Company, error) {
	company := schema.Company{
		ID:         uuid.NewString(),
		Name:       input.Name,
		PlatformID: input.PlatformID,
	}
	if err := s.db.WithContext(ctx).Create(&company).Error; err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &company, nil
}

// GetVehicleByID retrieves a vehicle by id
func (s *pgStore) GetVehicleByID(ctx context.Context, vehicleID string) (*schema.Vehicle, error) {
	var vehicle schema.Vehicle
	err := s.db.WithContext(ctx).Where("id = ?", vehicleID).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

// ListVehicles retrieves vehicles; removed/private vehicles are excluded unless requested
func (s *pgStore) ListVehicles(ctx context.Context, includeRemoved, includePrivate bool) ([]*schema.Vehicle, error) {
	q := s.db.WithContext(ctx).Model(&schema.Vehicle{})
	if !includeRemoved {
		q = q.Where("status <> ?", "removed")
	}
	if !includePrivate {
		q = q.Where("status <> ?", "private")
	}

	var vehicles []*schema.Vehicle
	if err := q.Order("created_at desc").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// CreateVehicle creates a vehicle together with its initial ownership record.
// Both rows commit atomically so the denormalized owner fields and the ledger
// never diverge, even for brand-new vehicles.
func (s *pgStore) CreateVehicle(ctx context.Context, input CreateVehicleInput) (*schema.Vehicle, error) {
	company, err := s.GetCompanyByID(ctx, input.OwnerCompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	status := input.Status
	if status == "" {
		status = "available"
	}

	now := time.Now().UTC()
	vehicle := schema.Vehicle{
		ID:                 uuid.NewString(),
		LicensePlate:       input.LicensePlate,
		VIN:                input.VIN,
		Brand:              input.Brand,
		Model:              input.Model,
		Company:            company.Name,
		OwnerCompanyID:     &company.ID,
		Status:             status,
		AssignedMechanicID: input.AssignedMechanicID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vehicle).Error; err != nil {
			return fmt.Errorf("failed to create vehicle: %w", err)
		}

		record := schema.OwnershipRecord{
			VehicleID:        vehicle.ID,
			OwnerCompanyID:   company.ID,
			OwnerCompanyName: company.Name,
			ValidFrom:        now,
			ValidTo:          nil,
			TransferReason:   "initial_setup",
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create initial ownership record: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &vehicle, nil
}

// UpdateVehicle updates non-ownership vehicle fields. Owner fields mutate only
// through TransferOwnership.
func (s *pgStore) UpdateVehicle(ctx context.Context, input UpdateVehicleInput) (*schema.Vehicle, error) {
	updates := map[string]interface{}{}
	if input.VIN != nil {
		updates["vin"] = *input.VIN
	}
	if input.Brand != nil {
		updates["brand"] = *input.Brand
	}
	if input.Model != nil {
		updates["model"] = *input.Model
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.AssignedMechanicID != nil {
		updates["assigned_mechanic_id"] = *input.AssignedMechanicID
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		result := s.db.WithContext(ctx).
			Model(&schema.Vehicle{}).
			Where("id = ?", input.VehicleID).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update vehicle: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, domain.ErrVehicleNotFound
		}
	}

	vehicle, err := s.GetVehicleByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrVehicleNotFound
	}
	return vehicle, nil
}

// GetUserByID retrieves a user by id
func (s *pgStore) GetUserByID(ctx context.Context, userID string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserCompanyPermissions resolves every company access granted to a user
// directly from the user_permissions table
func (s *pgStore) GetUserCompanyPermissions(ctx context.Context, userID string) ([]domain.CompanyAccess, error) {
	type row struct {
		CompanyID   string
		CompanyName string
		Permissions datatypes.JSON
	}

	var rows []row
	err := s.db.WithContext(ctx).
		Model(&schema.UserPermission{}).
		Select("user_permissions.company_id as company_id, companies.name as company_name, user_permissions.permissions as permissions").
		Joins("JOIN companies ON companies.id = user_permissions.company_id").
		Where("user_permissions.user_id = ?", userID).
		Order("companies.name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user company permissions: %w", err)
	}

	access := make([]domain.CompanyAccess, 0, len(rows))
	for _, r := range rows {
		var permissions []string
		if len(r.Permissions) > 0 {
			if err := json.Unmarshal(r.Permissions, &permissions); err != nil {
				return nil, fmt.Errorf("failed to decode permissions for company %s: %w", r.CompanyID, err)
			}
		}
		access = append(access, domain.CompanyAccess{
			CompanyID:   r.CompanyID,
			CompanyName: r.CompanyName,
			Permissions: permissions,
		})
	}

	return access, nil
}

// GrantCompanyAccess grants (or replaces) a user's access to one company.
// Upsert semantics: one row per user/company pair.
func (s *pgStore) GrantCompanyAccess(ctx context.Context, input GrantCompanyAccessInput) error {
	company, err := s.GetCompanyByID(ctx, input.CompanyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrCompanyNotFound
	}

	permissions, err := json.Marshal(input.Permissions)
	if err != nil {
		return fmt.Errorf("failed to encode permissions: %w", err)
	}

	grant := schema.UserPermission{
		UserID:      input.UserID,
		CompanyID:   input.CompanyID,
		Permissions: permissions,
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "company_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"permissions": permissions, "updated_at": time.Now().UTC()}),
		}).
		Create(&grant).Error
	if err != nil {
		return fmt.Errorf("failed to grant company access: %w", err)
	}
	return nil
}

// RevokeCompanyAccess removes a user's access to one company
func (s *pgStore) RevokeCompanyAccess(ctx context.Context, userID, companyID string) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Delete(&schema.UserPermission{}).Error
	if err != nil {
		return fmt.Errorf("failed to revoke company access: %w", err)
	}
	return nil
}

// SetUserCompanyAccess replaces all of a user's grants in one transaction
func (s *pgStore) SetUserCompanyAccess(ctx context.Context, userID string, grants []GrantCompanyAccessInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&schema.UserPermission{}).Error; err != nil {
			return fmt.Errorf("failed to clear existing grants: %w", err)
		}

		for _, grant := range grants {
			permissions, err := json.Marshal(grant.Permissions)
			if err != nil {
				return fmt.Errorf("failed to encode permissions: %w", err)
			}
			row := schema.UserPermission{
				UserID:      userID,
				CompanyID:   grant.CompanyID,
				Permissions: permissions,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert grant for company %s: %w", grant.CompanyID, err)
			}
		}

		return nil
	})
}
