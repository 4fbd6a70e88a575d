package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/logger"
	"github.com/fleetgrid/backoffice/internal/store/schema"
)

// rentalBackupPayload is the versioned snapshot written into rental_backups.
// SchemaVersion lets restore stay well-defined after the rental shape evolves.
type rentalBackupPayload struct {
	SchemaVersion int           `json:"schema_version"`
	Rental        schema.Rental `json:"rental"`
}

// validateRentalPatch checks a patch against the rental it targets and
// returns every violation found, not just the first one
func validateRentalPatch(rental *schema.Rental, patch RentalPatch) []string {
	var violations []string

	if patch.IsEmpty() {
		violations = append(violations, "patch contains no changes")
		return violations
	}

	if patch.CustomerName != nil && *patch.CustomerName == "" {
		violations = append(violations, "customer name cannot be empty")
	}
	if patch.StartDate != nil && patch.StartDate.IsZero() {
		violations = append(violations, "start date cannot be zero")
	}
	if patch.EndDate != nil && patch.EndDate.IsZero() {
		violations = append(violations, "end date cannot be zero")
	}

	// Date ordering is checked against the effective values: patched when
	// present, stored otherwise.
	start := rental.StartDate
	if patch.StartDate != nil {
		start = *patch.StartDate
	}
	end := rental.EndDate
	if patch.EndDate != nil {
		end = *patch.EndDate
	}
	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		violations = append(violations, "start date must be before end date")
	}

	if patch.TotalPrice != nil && *patch.TotalPrice < 0 {
		violations = append(violations, "total price cannot be negative")
	}
	if patch.Commission != nil && *patch.Commission < 0 {
		violations = append(violations, "commission cannot be negative")
	}
	if patch.Deposit != nil && *patch.Deposit < 0 {
		violations = append(violations, "deposit cannot be negative")
	}
	if patch.AllowedKilometers != nil && *patch.AllowedKilometers < 0 {
		violations = append(violations, "allowed kilometers cannot be negative")
	}

	return violations
}

// backupRental writes a versioned snapshot of the rental to the backup log.
// Backup failure never blocks the mutation; it is logged loudly instead.
func (s *pgStore) backupRental(ctx context.Context, rental *schema.Rental, reason schema.BackupReason) *schema.RentalBackup {
	payload, err := json.Marshal(rentalBackupPayload{
		SchemaVersion: domain.BACKUP_SCHEMA_VERSION,
		Rental:        *rental,
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to encode rental backup: %w", err),
			zap.String("rentalID", rental.ID),
			zap.String("reason", string(reason)))
		return nil
	}

	backup := schema.RentalBackup{
		OriginalRentalID: rental.ID,
		BackupData:       payload,
		BackupTimestamp:  time.Now().UTC(),
		BackupReason:     reason,
	}
	if err := s.db.WithContext(ctx).Create(&backup).Error; err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to write rental backup: %w", err),
			zap.String("rentalID", rental.ID),
			zap.String("reason", string(reason)))
		return nil
	}
	return &backup
}

// rentalPatchUpdates converts a patch into a column update map
func rentalPatchUpdates(patch RentalPatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.CustomerName != nil {
		updates["customer_name"] = *patch.CustomerName
	}
	if patch.StartDate != nil {
		updates["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		updates["end_date"] = *patch.EndDate
	}
	if patch.TotalPrice != nil {
		updates["total_price"] = *patch.TotalPrice
	}
	if patch.Commission != nil {
		updates["commission"] = *patch.Commission
	}
	if patch.Deposit != nil {
		updates["deposit"] = *patch.Deposit
	}
	if patch.PaymentMethod != nil {
		updates["payment_method"] = *patch.PaymentMethod
	}
	if patch.Paid != nil {
		updates["paid"] = *patch.Paid
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.HandoverPlace != nil {
		updates["handover_place"] = *patch.HandoverPlace
	}
	if patch.OrderNumber != nil {
		updates["order_number"] = *patch.OrderNumber
	}
	if patch.AllowedKilometers != nil {
		updates["allowed_kilometers"] = *patch.AllowedKilometers
	}
	if patch.ExtraKilometerRate != nil {
		updates["extra_kilometer_rate"] = *patch.ExtraKilometerRate
	}
	if patch.HandoverProtocolID != nil {
		updates["handover_protocol_id"] = *patch.HandoverProtocolID
	}
	if patch.ReturnProtocolID != nil {
		updates["return_protocol_id"] = *patch.ReturnProtocolID
	}
	return updates
}

// UpdateRentalGuarded applies a patch through the mutation guard: full
// validation first, then a best-effort backup, then a transactional apply
// verified by row count. Validation failure leaves no backup row behind.
//
// Note the rental's company snapshot is not patchable; it stays frozen for
// the rental's lifetime.
func (s *pgStore) UpdateRentalGuarded(ctx context.Context, rentalID string, patch RentalPatch) (*schema.Rental, error) {
	rental, err := s.GetRentalByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, domain.ErrRentalNotFound
	}

	if violations := validateRentalPatch(rental, patch); len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	s.backupRental(ctx, rental, schema.BackupReasonPreUpdate)

	updates := rentalPatchUpdates(patch)
	updates["updated_at"] = time.Now().UTC()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Rental{}).
			Where("id = ?", rentalID).
			Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to update rental: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrRentalNotFound
		}
		if result.RowsAffected > 1 {
			return domain.NewIntegrityError("single_row_mutation",
				fmt.Sprintf("updating rental %s affected %d rows", rentalID, result.RowsAffected))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.GetRentalByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrRentalNotFound
	}
	return updated, nil
}

// DeleteRentalGuarded deletes a rental through the mutation guard: a
// best-effort backup first, then a transactional delete verified by row count
func (s *pgStore) DeleteRentalGuarded(ctx context.Context, rentalID string) error {
	rental, err := s.GetRentalByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if rental == nil {
		return domain.ErrRentalNotFound
	}

	s.backupRental(ctx, rental, schema.BackupReasonPreDelete)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", rentalID).Delete(&schema.Rental{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete rental: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrRentalNotFound
		}
		if result.RowsAffected > 1 {
			return domain.NewIntegrityError("single_row_mutation",
				fmt.Sprintf("deleting rental %s affected %d rows", rentalID, result.RowsAffected))
		}
		return nil
	})
}

// RestoreRentalFromBackup restores a rental from its most recent backup, or
// from a specific backup id when given. The current state, when the rental
// still exists, is backed up before being overwritten.
func (s *pgStore) RestoreRentalFromBackup(ctx context.Context, rentalID string, backupID *uint64) (*schema.Rental, error) {
	var backup schema.RentalBackup
	q := s.db.WithContext(ctx).Where("original_rental_id = ?", rentalID)
	if backupID != nil {
		q = q.Where("id = ?", *backupID)
	}
	err := q.Order("backup_timestamp desc").First(&backup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBackupNotFound
		}
		return nil, fmt.Errorf("failed to load rental backup: %w", err)
	}

	var payload rentalBackupPayload
	if err := json.Unmarshal(backup.BackupData, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode rental backup %d: %w", backup.ID, err)
	}
	if payload.SchemaVersion != domain.BACKUP_SCHEMA_VERSION {
		return nil, domain.NewIntegrityError("backup_schema_version",
			fmt.Sprintf("backup %d has schema version %d, expected %d",
				backup.ID, payload.SchemaVersion, domain.BACKUP_SCHEMA_VERSION))
	}

	current, err := s.GetRentalByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		s.backupRental(ctx, current, schema.BackupReasonPreRestore)
	}

	restored := payload.Rental
	restored.ID = rentalID
	restored.UpdatedAt = time.Now().UTC()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if current == nil {
			if err := tx.Create(&restored).Error; err != nil {
				return fmt.Errorf("failed to recreate rental from backup: %w", err)
			}
			return nil
		}

		result := tx.Model(&schema.Rental{}).
			Where("id = ?", rentalID).
			Select("*").
			Omit("id", "created_at").
			Updates(&restored)
		if result.Error != nil {
			return fmt.Errorf("failed to restore rental: %w", result.Error)
		}
		if result.RowsAffected != 1 {
			return domain.NewIntegrityError("single_row_mutation",
				fmt.Sprintf("restoring rental %s affected %d rows", rentalID, result.RowsAffected))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "rental restored from backup",
		zap.String("rentalID", rentalID),
		zap.Uint64("backupID", backup.ID),
		zap.Time("backupTimestamp", backup.BackupTimestamp))

	return s.GetRentalByID(ctx, rentalID)
}

// ListRentalBackups retrieves the backup log for a rental, newest first
func (s *pgStore) ListRentalBackups(ctx context.Context, rentalID string) ([]*schema.RentalBackup, error) {
	var backups []*schema.RentalBackup
	err := s.db.WithContext(ctx).
		Where("original_rental_id = ?", rentalID).
		Order("backup_timestamp desc").
		Find(&backups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rental backups: %w", err)
	}
	return backups, nil
}

// CheckRentalIntegrity runs the read-only diagnostic sweep over all rentals.
// It never mutates anything; findings are returned for the caller to report.
func (s *pgStore) CheckRentalIntegrity(ctx context.Context) (*RentalIntegrityReport, error) {
	report := RentalIntegrityReport{CheckedAt: time.Now().UTC()}
	db := s.db.WithContext(ctx)

	if err := db.Model(&schema.Rental{}).Count(&report.TotalRentals).Error; err != nil {
		return nil, fmt.Errorf("failed to count rentals: %w", err)
	}

	err := db.Model(&schema.Rental{}).
		Joins("LEFT JOIN vehicles ON vehicles.id = rentals.vehicle_id").
		Where("vehicles.id IS NULL").
		Count(&report.DanglingVehicleRefs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count dangling vehicle refs: %w", err)
	}

	err = db.Model(&schema.Rental{}).
		Where("customer_name = ''").
		Count(&report.MissingCustomerNames).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count missing customer names: %w", err)
	}

	err = db.Model(&schema.Rental{}).
		Where("start_date >= end_date").
		Count(&report.InvalidDateRanges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count invalid date ranges: %w", err)
	}

	err = db.Model(&schema.Rental{}).
		Where("company = ''").
		Count(&report.MissingCompanySnapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count missing company snapshots: %w", err)
	}

	if err := db.Model(&schema.RentalBackup{}).Count(&report.AvailableBackups).Error; err != nil {
		return nil, fmt.Errorf("failed to count rental backups: %w", err)
	}

	return &report, nil
}
