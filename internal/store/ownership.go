package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/logger"
	"github.com/fleetgrid/backoffice/internal/store/schema"
)

func ownerFromRecord(record *schema.OwnershipRecord) *domain.Owner {
	return &domain.Owner{
		CompanyID:   record.OwnerCompanyID,
		CompanyName: record.OwnerCompanyName,
		ValidFrom:   record.ValidFrom,
		ValidTo:     record.ValidTo,
	}
}

// GetCurrentOwner resolves the active ownership record for a vehicle.
// Returns nil when the vehicle has no ownership history.
func (s *pgStore) GetCurrentOwner(ctx context.Context, vehicleID string) (*domain.Owner, error) {
	var record schema.OwnershipRecord
	err := s.db.WithContext(ctx).
		Where("vehicle_id = ? AND valid_to IS NULL", vehicleID).
		Order("valid_from desc").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current owner: %w", err)
	}
	return ownerFromRecord(&record), nil
}

// GetOwnerAtTime resolves which company owned a vehicle at an arbitrary
// timestamp. A record covers [valid_from, valid_to); the active record covers
// [valid_from, infinity). Returns nil when no record covers the timestamp.
func (s *pgStore) GetOwnerAtTime(ctx context.Context, vehicleID string, at time.Time) (*domain.Owner, error) {
	var record schema.OwnershipRecord
	err := s.db.WithContext(ctx).
		Where("vehicle_id = ? AND valid_from <= ? AND (valid_to IS NULL OR valid_to > ?)", vehicleID, at, at).
		Order("valid_from desc").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owner at time: %w", err)
	}
	return ownerFromRecord(&record), nil
}

// GetOwnershipHistory retrieves the full ownership ledger for a vehicle, newest first
func (s *pgStore) GetOwnershipHistory(ctx context.Context, vehicleID string) ([]*schema.OwnershipRecord, error) {
	var records []*schema.OwnershipRecord
	err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("valid_from desc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ownership history: %w", err)
	}
	return records, nil
}

// GetBulkOwnershipHistory retrieves the ownership ledger for every vehicle in
// one query, grouped by vehicle id with each group newest first
func (s *pgStore) GetBulkOwnershipHistory(ctx context.Context) (map[string][]*schema.OwnershipRecord, error) {
	var records []*schema.OwnershipRecord
	err := s.db.WithContext(ctx).
		Order("vehicle_id asc, valid_from desc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get bulk ownership history: %w", err)
	}

	history := make(map[string][]*schema.OwnershipRecord)
	for _, record := range records {
		history[record.VehicleID] = append(history[record.VehicleID], record)
	}
	return history, nil
}

// GetBulkCurrentOwners resolves the active owner for many vehicles in one
// round trip. Vehicles without an active record are absent from the result.
func (s *pgStore) GetBulkCurrentOwners(ctx context.Context, vehicleIDs []string) (map[string]*domain.Owner, error) {
	if len(vehicleIDs) == 0 {
		return map[string]*domain.Owner{}, nil
	}

	var records []*schema.OwnershipRecord
	err := s.db.WithContext(ctx).
		Where("vehicle_id IN ? AND valid_to IS NULL", vehicleIDs).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get bulk current owners: %w", err)
	}

	owners := make(map[string]*domain.Owner, len(records))
	for _, record := range records {
		owners[record.VehicleID] = ownerFromRecord(record)
	}
	return owners, nil
}

// GetBulkOwnersAtTime resolves many vehicle/timestamp pairs in one round trip.
// Semantics are identical to GetOwnerAtTime applied per pair: the result is
// parallel to the input, with a nil entry where no record covers the pair's
// timestamp. The same vehicle may appear with several timestamps and every
// pair resolves on its own.
func (s *pgStore) GetBulkOwnersAtTime(ctx context.Context, pairs []domain.VehicleAtTime) ([]*domain.Owner, error) {
	owners := make([]*domain.Owner, len(pairs))
	if len(pairs) == 0 {
		return owners, nil
	}

	vehicleIDs := make([]string, 0, len(pairs))
	seen := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		if !seen[pair.VehicleID] {
			seen[pair.VehicleID] = true
			vehicleIDs = append(vehicleIDs, pair.VehicleID)
		}
	}

	var records []*schema.OwnershipRecord
	err := s.db.WithContext(ctx).
		Where("vehicle_id IN ?", vehicleIDs).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get bulk owners at time: %w", err)
	}

	byVehicle := make(map[string][]*schema.OwnershipRecord)
	for _, record := range records {
		byVehicle[record.VehicleID] = append(byVehicle[record.VehicleID], record)
	}
	for _, vehicleRecords := range byVehicle {
		sort.Slice(vehicleRecords, func(i, j int) bool {
			return vehicleRecords[i].ValidFrom.After(vehicleRecords[j].ValidFrom)
		})
	}

	for i, pair := range pairs {
		for _, record := range byVehicle[pair.VehicleID] {
			if record.ValidFrom.After(pair.At) {
				continue
			}
			if record.ValidTo != nil && !record.ValidTo.After(pair.At) {
				continue
			}
			owners[i] = ownerFromRecord(record)
			break
		}
	}
	return owners, nil
}

// initialBackfillValidFrom picks a safe past timestamp for the synthesized
// first ownership record of a vehicle that predates the ledger. The vehicle's
// creation time is preferred; when that does not predate the transfer the
// record is dated a fixed offset before it.
func initialBackfillValidFrom(vehicle *schema.Vehicle, transferDate time.Time) time.Time {
	if !vehicle.CreatedAt.IsZero() && vehicle.CreatedAt.Before(transferDate) {
		return vehicle.CreatedAt
	}
	return transferDate.Add(-domain.INITIAL_OWNERSHIP_BACKFILL_OFFSET)
}

// TransferOwnership performs a guarded ownership transfer inside one
// transaction:
//
//  1. locks the vehicle row
//  2. backfills an initial ledger record for vehicles that predate the ledger
//  3. verifies at most one active record exists
//  4. closes the active record at the transfer date
//  5. inserts the new active record
//  6. updates the vehicle's denormalized owner fields
//
// A transfer to the vehicle's current owner is recorded like any other; the
// ledger keeps the audit trail rather than deduplicating it.
func (s *pgStore) TransferOwnership(ctx context.Context, input TransferOwnershipInput) (*schema.OwnershipRecord, error) {
	transferDate := input.TransferDate
	if transferDate.IsZero() {
		transferDate = time.Now().UTC()
	}

	var newRecord schema.OwnershipRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle schema.Vehicle
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.VehicleID).
			First(&vehicle).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrVehicleNotFound
			}
			return fmt.Errorf("failed to lock vehicle: %w", err)
		}

		var newOwner schema.Company
		err = tx.Where("id = ?", input.NewOwnerCompanyID).First(&newOwner).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCompanyNotFound
			}
			return fmt.Errorf("failed to resolve new owner company: %w", err)
		}

		var historyCount int64
		err = tx.Model(&schema.OwnershipRecord{}).
			Where("vehicle_id = ?", vehicle.ID).
			Count(&historyCount).Error
		if err != nil {
			return fmt.Errorf("failed to count ownership history: %w", err)
		}

		// Vehicles created before the ledger existed carry an owner only in
		// the denormalized fields. Synthesize their first record so the close
		// step below has something to close and point-in-time queries cover
		// the pre-ledger era.
		if historyCount == 0 && vehicle.OwnerCompanyID != nil {
			backfill := schema.OwnershipRecord{
				VehicleID:        vehicle.ID,
				OwnerCompanyID:   *vehicle.OwnerCompanyID,
				OwnerCompanyName: vehicle.Company,
				ValidFrom:        initialBackfillValidFrom(&vehicle, transferDate),
				ValidTo:          nil,
				TransferReason:   "initial_backfill",
			}
			if err := tx.Create(&backfill).Error; err != nil {
				return fmt.Errorf("failed to backfill initial ownership record: %w", err)
			}
			logger.InfoCtx(ctx, "backfilled initial ownership record",
				zap.String("vehicleID", vehicle.ID),
				zap.String("ownerCompanyID", backfill.OwnerCompanyID),
				zap.Time("validFrom", backfill.ValidFrom))
		}

		var activeRecords []*schema.OwnershipRecord
		err = tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("vehicle_id = ? AND valid_to IS NULL", vehicle.ID).
			Find(&activeRecords).Error
		if err != nil {
			return fmt.Errorf("failed to load active ownership records: %w", err)
		}
		if len(activeRecords) > 1 {
			return domain.NewIntegrityError("single_active_owner",
				fmt.Sprintf("vehicle %s has %d active ownership records", vehicle.ID, len(activeRecords)))
		}

		if len(activeRecords) == 1 {
			result := tx.Model(&schema.OwnershipRecord{}).
				Where("id = ? AND valid_to IS NULL", activeRecords[0].ID).
				Update("valid_to", transferDate)
			if result.Error != nil {
				return fmt.Errorf("failed to close active ownership record: %w", result.Error)
			}
			if result.RowsAffected != 1 {
				return domain.NewIntegrityError("single_active_owner",
					fmt.Sprintf("closing active record %d affected %d rows", activeRecords[0].ID, result.RowsAffected))
			}
		}

		newRecord = schema.OwnershipRecord{
			VehicleID:        vehicle.ID,
			OwnerCompanyID:   newOwner.ID,
			OwnerCompanyName: newOwner.Name,
			ValidFrom:        transferDate,
			ValidTo:          nil,
			TransferReason:   input.Reason,
			TransferNotes:    input.Notes,
		}
		if err := tx.Create(&newRecord).Error; err != nil {
			return fmt.Errorf("failed to insert ownership record: %w", err)
		}

		result := tx.Model(&schema.Vehicle{}).
			Where("id = ?", vehicle.ID).
			Updates(map[string]interface{}{
				"company":          newOwner.Name,
				"owner_company_id": newOwner.ID,
				"updated_at":       time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update vehicle owner fields: %w", result.Error)
		}
		if result.RowsAffected != 1 {
			return domain.NewIntegrityError("vehicle_owner_sync",
				fmt.Sprintf("updating vehicle %s owner fields affected %d rows", vehicle.ID, result.RowsAffected))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "ownership transferred",
		zap.String("vehicleID", input.VehicleID),
		zap.String("newOwnerCompanyID", input.NewOwnerCompanyID),
		zap.String("reason", input.Reason),
		zap.Time("transferDate", transferDate))

	return &newRecord, nil
}
