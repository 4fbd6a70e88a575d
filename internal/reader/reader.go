// Package reader applies company attribution rules to collection reads.
//
// Unrestricted roles see raw data. Everyone else sees only rows attributed to
// a company on their allow-list, which comes either from explicit permission
// grants or, for platform-scoped roles, from platform membership. Rentals are
// attributed by their frozen company snapshot, never by the vehicle's current
// owner, so historical reports stay stable across ownership transfers.
package reader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fleetgrid/backoffice/internal/accesscache"
	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/logger"
	"github.com/fleetgrid/backoffice/internal/store"
	"github.com/fleetgrid/backoffice/internal/store/schema"
)

// Reader is the attribution-aware read service
type Reader struct {
	store  store.Store
	access *accesscache.Service
}

// New creates a reader backed by the given store and access cache
func New(s store.Store, access *accesscache.Service) *Reader {
	return &Reader{store: s, access: access}
}

// allowList is the resolved set of companies a caller may see, keyed both by
// company id and by display name since collections attribute by either
type allowList struct {
	ids   map[string]struct{}
	names map[string]struct{}
}

func (a *allowList) allowsID(companyID string) bool {
	_, ok := a.ids[companyID]
	return ok
}

func (a *allowList) allowsName(company string) bool {
	_, ok := a.names[company]
	return ok
}

// resolveAllowList builds the caller's company allow-list. Returns nil for
// unrestricted roles, meaning no filtering applies.
func (r *Reader) resolveAllowList(ctx context.Context, auth domain.AuthContext) (*allowList, error) {
	if auth.Role.Unrestricted() {
		return nil, nil
	}

	allowed := &allowList{
		ids:   map[string]struct{}{},
		names: map[string]struct{}{},
	}

	// Platform-scoped roles see every company on their platform instead of
	// needing explicit per-company grants.
	if auth.Role.PlatformScoped() && auth.PlatformID != nil {
		companies, err := r.store.ListCompaniesByPlatform(ctx, *auth.PlatformID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve platform companies: %w", err)
		}
		for _, company := range companies {
			allowed.ids[company.ID] = struct{}{}
			allowed.names[company.Name] = struct{}{}
		}
		return allowed, nil
	}

	access, err := r.access.Get(ctx, auth.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve company access: %w", err)
	}
	for _, grant := range access {
		allowed.ids[grant.CompanyID] = struct{}{}
		allowed.names[grant.CompanyName] = struct{}{}
	}
	return allowed, nil
}

// ListVehicles returns the vehicles the caller may see, filtered by the
// current owner company. The second return reports whether filtering applied.
func (r *Reader) ListVehicles(ctx context.Context, auth domain.AuthContext, includeRemoved, includePrivate bool) ([]*schema.Vehicle, bool, error) {
	vehicles, err := r.store.ListVehicles(ctx, includeRemoved, includePrivate)
	if err != nil {
		return nil, false, err
	}

	allowed, err := r.resolveAllowList(ctx, auth)
	if err != nil {
		return nil, false, err
	}
	if allowed == nil {
		return vehicles, false, nil
	}

	filtered := make([]*schema.Vehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		if vehicle.OwnerCompanyID != nil && allowed.allowsID(*vehicle.OwnerCompanyID) {
			filtered = append(filtered, vehicle)
		}
	}
	return filtered, true, nil
}

// ListRentals returns the rentals the caller may see, attributed by the
// frozen company snapshot. A rental without a snapshot indicates an upstream
// integrity bug; it is logged loudly, never silently dropped.
func (r *Reader) ListRentals(ctx context.Context, auth domain.AuthContext) ([]*schema.Rental, bool, error) {
	rentals, err := r.store.ListRentals(ctx)
	if err != nil {
		return nil, false, err
	}

	for _, rental := range rentals {
		if rental.Company == "" {
			logger.ErrorCtx(ctx, errors.New("rental missing company snapshot"),
				zap.String("rentalID", rental.ID),
				zap.String("vehicleID", rental.VehicleID))
		}
	}

	allowed, err := r.resolveAllowList(ctx, auth)
	if err != nil {
		return nil, false, err
	}
	if allowed == nil {
		return rentals, false, nil
	}

	filtered := make([]*schema.Rental, 0, len(rentals))
	for _, rental := range rentals {
		if allowed.allowsName(rental.Company) {
			filtered = append(filtered, rental)
		}
	}
	return filtered, true, nil
}

// ListExpenses returns the expenses the caller may see, attributed by the
// expense's own company field
func (r *Reader) ListExpenses(ctx context.Context, auth domain.AuthContext) ([]*schema.Expense, bool, error) {
	expenses, err := r.store.ListExpenses(ctx)
	if err != nil {
		return nil, false, err
	}

	allowed, err := r.resolveAllowList(ctx, auth)
	if err != nil {
		return nil, false, err
	}
	if allowed == nil {
		return expenses, false, nil
	}

	filtered := make([]*schema.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if allowed.allowsName(expense.Company) {
			filtered = append(filtered, expense)
		}
	}
	return filtered, true, nil
}

// ListInsurances returns the insurances the caller may see
func (r *Reader) ListInsurances(ctx context.Context, auth domain.AuthContext) ([]*schema.Insurance, bool, error) {
	insurances, err := r.store.ListInsurances(ctx)
	if err != nil {
		return nil, false, err
	}

	allowed, err := r.resolveAllowList(ctx, auth)
	if err != nil {
		return nil, false, err
	}
	if allowed == nil {
		return insurances, false, nil
	}

	filtered := make([]*schema.Insurance, 0, len(insurances))
	for _, insurance := range insurances {
		if allowed.allowsName(insurance.Company) {
			filtered = append(filtered, insurance)
		}
	}
	return filtered, true, nil
}

// ListSettlements returns the settlements the caller may see
func (r *Reader) ListSettlements(ctx context.Context, auth domain.AuthContext) ([]*schema.Settlement, bool, error) {
	settlements, err := r.store.ListSettlements(ctx)
	if err != nil {
		return nil, false, err
	}

	allowed, err := r.resolveAllowList(ctx, auth)
	if err != nil {
		return nil, false, err
	}
	if allowed == nil {
		return settlements, false, nil
	}

	filtered := make([]*schema.Settlement, 0, len(settlements))
	for _, settlement := range settlements {
		if allowed.allowsName(settlement.Company) {
			filtered = append(filtered, settlement)
		}
	}
	return filtered, true, nil
}

// ListVehicleDocuments returns documents for the vehicles the caller may see.
// Attribution is transitive through the filtered vehicle set.
func (r *Reader) ListVehicleDocuments(ctx context.Context, auth domain.AuthContext) ([]*schema.VehicleDocument, bool, error) {
	vehicles, filtered, err := r.ListVehicles(ctx, auth, true, true)
	if err != nil {
		return nil, false, err
	}

	vehicleIDs := make([]string, 0, len(vehicles))
	for _, vehicle := range vehicles {
		vehicleIDs = append(vehicleIDs, vehicle.ID)
	}

	documents, err := r.store.ListVehicleDocuments(ctx, vehicleIDs)
	if err != nil {
		return nil, false, err
	}
	return documents, filtered, nil
}

// GenerateSettlement computes and persists a settlement for one company and
// period. Rentals are attributed by their frozen snapshot; rentals that
// predate the snapshot mechanism are backfilled from the ownership ledger at
// the rental's start date, falling back to the vehicle's present owner only
// when no ledger record covers it.
func (r *Reader) GenerateSettlement(ctx context.Context, company string, from, to time.Time) (*schema.Settlement, error) {
	rentals, err := r.store.ListRentalsInPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	// Resolve historical owners for the snapshot-less rentals in one round
	// trip, per pair so two rentals of the same vehicle straddling a transfer
	// each get the owner at their own start date
	var pairs []domain.VehicleAtTime
	ownerIndexByRental := make(map[string]int)
	for _, rental := range rentals {
		if rental.Company == "" {
			ownerIndexByRental[rental.ID] = len(pairs)
			pairs = append(pairs, domain.VehicleAtTime{
				VehicleID: rental.VehicleID,
				At:        rental.StartDate,
			})
		}
	}
	var ownersAtStart []*domain.Owner
	if len(pairs) > 0 {
		ownersAtStart, err = r.store.GetBulkOwnersAtTime(ctx, pairs)
		if err != nil {
			return nil, err
		}
	}

	var totalIncome, totalCommission float64
	rentalCount := 0
	for _, rental := range rentals {
		attributed := rental.Company
		if attributed == "" {
			if owner := ownersAtStart[ownerIndexByRental[rental.ID]]; owner != nil {
				attributed = owner.CompanyName
			} else {
				vehicle, err := r.store.GetVehicleByID(ctx, rental.VehicleID)
				if err != nil {
					return nil, err
				}
				if vehicle != nil {
					attributed = vehicle.Company
				}
			}
			logger.WarnCtx(ctx, "backfilled settlement attribution for rental without snapshot",
				zap.String("rentalID", rental.ID),
				zap.String("attributedCompany", attributed))
		}
		if attributed != company {
			continue
		}
		totalIncome += rental.TotalPrice
		totalCommission += rental.Commission
		rentalCount++
	}

	expenses, err := r.store.ListExpensesForCompanyPeriod(ctx, company, from, to)
	if err != nil {
		return nil, err
	}
	var totalExpenses float64
	for _, expense := range expenses {
		totalExpenses += expense.Amount
	}

	settlement := &schema.Settlement{
		ID:              uuid.NewString(),
		Company:         company,
		PeriodFrom:      from,
		PeriodTo:        to,
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		TotalCommission: totalCommission,
		Profit:          totalIncome - totalExpenses - totalCommission,
		RentalCount:     rentalCount,
		ExpenseCount:    len(expenses),
	}
	if err := r.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "settlement generated",
		zap.String("company", company),
		zap.Time("periodFrom", from),
		zap.Time("periodTo", to),
		zap.Float64("profit", settlement.Profit),
		zap.Int("rentalCount", rentalCount))

	return settlement, nil
}
