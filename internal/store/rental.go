package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/logger"
	"github.com/fleetgrid/backoffice/internal/store/schema"
)

// CreateRental creates a rental, capturing the current owner company name as
// the rental's frozen company snapshot. The snapshot is what every later
// attribution decision reads; a vehicle transfer never rewrites it.
func (s *pgStore) CreateRental(ctx context.Context, input CreateRentalInput) (*schema.Rental, error) {
	vehicle, err := s.GetVehicleByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrVehicleNotFound
	}

	// The denormalized vehicle fields and the ledger are kept in sync by the
	// transfer transaction, so the vehicle row is the cheap source of truth
	// for the snapshot. Fall back to the ledger when the row carries none.
	company := vehicle.Company
	if company == "" {
		owner, err := s.GetCurrentOwner(ctx, vehicle.ID)
		if err != nil {
			return nil, err
		}
		if owner != nil {
			company = owner.CompanyName
		}
	}
	if company == "" {
		logger.WarnCtx(ctx, "creating rental without company snapshot",
			zap.String("vehicleID", vehicle.ID))
	}

	rental := schema.Rental{
		ID:                 uuid.NewString(),
		VehicleID:          input.VehicleID,
		CustomerID:         input.CustomerID,
		CustomerName:       input.CustomerName,
		Company:            company,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		TotalPrice:         input.TotalPrice,
		Commission:         input.Commission,
		Deposit:            input.Deposit,
		PaymentMethod:      input.PaymentMethod,
		Status:             "pending",
		HandoverPlace:      input.HandoverPlace,
		OrderNumber:        input.OrderNumber,
		AllowedKilometers:  input.AllowedKilometers,
		ExtraKilometerRate: input.ExtraKilometerRate,
	}
	if err := s.db.WithContext(ctx).Create(&rental).Error; err != nil {
		return nil, fmt.Errorf("failed to create rental: %w", err)
	}
	return &rental, nil
}

// GetRentalByID retrieves a rental by id
func (s *pgStore) GetRentalByID(ctx context.Context, rentalID string) (*schema.Rental, error) {
	var rental schema.Rental
	err := s.db.WithContext(ctx).Where("id = ?", rentalID).First(&rental).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rental: %w", err)
	}
	return &rental, nil
}

// ListRentals retrieves all rentals, newest first
func (s *pgStore) ListRentals(ctx context.Context) ([]*schema.Rental, error) {
	var rentals []*schema.Rental
	if err := s.db.WithContext(ctx).Order("start_date desc").Find(&rentals).Error; err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	return rentals, nil
}

// ListRentalsInPeriod retrieves rentals whose start date falls into [from, to]
func (s *pgStore) ListRentalsInPeriod(ctx context.Context, from, to time.Time) ([]*schema.Rental, error) {
	var rentals []*schema.Rental
	err := s.db.WithContext(ctx).
		Where("start_date >= ? AND start_date <= ?", from, to).
		Order("start_date asc").
		Find(&rentals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals in period: %w", err)
	}
	return rentals, nil
}
