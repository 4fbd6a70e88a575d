package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetgrid/backoffice/internal/store/schema"
)

// ListExpenses retrieves all expenses
func (s *pgStore) ListExpenses(ctx context.Context) ([]*schema.Expense, error) {
	var expenses []*schema.Expense
	if err := s.db.WithContext(ctx).Order("date desc").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// ListExpensesForCompanyPeriod retrieves a company's expenses dated inside [from, to]
func (s *pgStore) ListExpensesForCompanyPeriod(ctx context.Context, company string, from, to time.Time) ([]*schema.Expense, error) {
	var expenses []*schema.Expense
	err := s.db.WithContext(ctx).
		Where("company = ? AND date >= ? AND date <= ?", company, from, to).
		Order("date asc").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for company period: %w", err)
	}
	return expenses, nil
}

// CreateExpense creates an expense
func (s *pgStore) CreateExpense(ctx context.Context, input CreateExpenseInput) (*schema.Expense, error) {
	expense := schema.Expense{
		ID:          uuid.NewString(),
		Company:     input.Company,
		VehicleID:   input.VehicleID,
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        input.Date,
	}
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &expense, nil
}

// ListInsurances retrieves all insurances
func (s *pgStore) ListInsurances(ctx context.Context) ([]*schema.Insurance, error) {
	var insurances []*schema.Insurance
	if err := s.db.WithContext(ctx).Order("valid_to desc").Find(&insurances).Error; err != nil {
		return nil, fmt.Errorf("failed to list insurances: %w", err)
	}
	return insurances, nil
}

// ListVehicleDocuments retrieves documents for the given vehicles
func (s *pgStore) ListVehicleDocuments(ctx context.Context, vehicleIDs []string) ([]*schema.VehicleDocument, error) {
	if len(vehicleIDs) == 0 {
		return []*schema.VehicleDocument{}, nil
	}

	var documents []*schema.VehicleDocument
	err := s.db.WithContext(ctx).
		Where("vehicle_id IN ?", vehicleIDs).
		Order("created_at desc").
		Find(&documents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle documents: %w", err)
	}
	return documents, nil
}

// ListSettlements retrieves all settlements, newest first
func (s *pgStore) ListSettlements(ctx context.Context) ([]*schema.Settlement, error) {
	var settlements []*schema.Settlement
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&settlements).Error; err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	return settlements, nil
}

// GetSettlementByID retrieves a settlement by id
func (s *pgStore) GetSettlementByID(ctx context.Context, settlementID string) (*schema.Settlement, error) {
	var settlement schema.Settlement
	err := s.db.WithContext(ctx).Where("id = ?", settlementID).First(&settlement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}
	return &settlement, nil
}

// CreateSettlement persists a computed settlement
func (s *pgStore) CreateSettlement(ctx context.Context, settlement *schema.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(settlement).Error; err != nil {
		return fmt.Errorf("failed to create settlement: %w", err)
	}
	return nil
}
