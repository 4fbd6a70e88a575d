package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func createTestCompany(t *testing.T, s Store, name string, platformID *string) *schema.Company {
	t.Helper()
	company, err := s.CreateCompany(context.Background(), CreateCompanyInput{
		Name:       name,
		PlatformID: platformID,
	})
	require.NoError(t, err)
	require.NotNil(t, company)
	return company
}

func createTestVehicle(t *testing.T, s Store, plate string, companyID string) *schema.Vehicle {
	t.Helper()
	vehicle, err := s.CreateVehicle(context.Background(), CreateVehicleInput{
		LicensePlate:   plate,
		VIN:            "VIN-" + plate,
		Brand:          "Skoda",
		Model:          "Octavia",
		OwnerCompanyID: companyID,
	})
	require.NoError(t, err)
	require.NotNil(t, vehicle)
	return vehicle
}

func buildTestRental(vehicleID string, start, end time.Time) CreateRentalInput {
	return CreateRentalInput{
		VehicleID:         vehicleID,
		CustomerName:      "Jan Novak",
		StartDate:         start,
		EndDate:           end,
		TotalPrice:        500,
		Commission:        50,
		Deposit:           200,
		PaymentMethod:     "card",
		AllowedKilometers: 1000,
	}
}

func strPtr(s string) *string       { return &s }
func f64Ptr(f float64) *float64     { return &f }
func timePtr(t time.Time) *time.Time { return &t }

// =============================================================================
// Test: Companies
// =============================================================================

func testCompanies(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("create and retrieve by id and name", func(t *testing.T) {
		created := createTestCompany(t, s, "AutoRent Praha", nil)

		byID, err := s.GetCompanyByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, created.Name, byID.Name)

		byName, err := s.GetCompanyByName(ctx, "AutoRent Praha")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, created.ID, byName.ID)
	})

	t.Run("missing company returns nil without error", func(t *testing.T) {
		company, err := s.GetCompanyByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, company)
	})

	t.Run("list by platform returns only platform members", func(t *testing.T) {
		platformID := "11111111-1111-1111-1111-111111111111"
		createTestCompany(t, s, "Platform Fleet A", &platformID)
		createTestCompany(t, s, "Platform Fleet B", &platformID)
		createTestCompany(t, s, "Standalone Fleet", nil)

		members, err := s.ListCompaniesByPlatform(ctx, platformID)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "Platform Fleet A", members[0].Name)
		assert.Equal(t, "Platform Fleet B", members[1].Name)
	})
}

// =============================================================================
// Test: CreateVehicle
// =============================================================================

func testCreateVehicle(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("creates vehicle with initial ownership record", func(t *testing.T) {
		company := createTestCompany(t, s, "First Owner s.r.o.", nil)
		vehicle := createTestVehicle(t, s, "1AB 2345", company.ID)

		assert.Equal(t, company.Name, vehicle.Company)
		require.NotNil(t, vehicle.OwnerCompanyID)
		assert.Equal(t, company.ID, *vehicle.OwnerCompanyID)
		assert.Equal(t, "available", vehicle.Status)

		history, err := s.GetOwnershipHistory(ctx, vehicle.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, company.ID, history[0].OwnerCompanyID)
		assert.Equal(t, company.Name, history[0].OwnerCompanyName)
		assert.Equal(t, "initial_setup", history[0].TransferReason)
		assert.Nil(t, history[0].ValidTo)

		owner, err := s.GetCurrentOwner(ctx, vehicle.ID)
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, company.ID, owner.CompanyID)
	})

	t.Run("unknown owner company is rejected", func(t *testing.T) {
		_, err := s.CreateVehicle(ctx, CreateVehicleInput{
			LicensePlate:   "9ZZ 9999",
			OwnerCompanyID: "00000000-0000-0000-0000-000000000000",
		})
		require.ErrorIs(t, err, domain.ErrCompanyNotFound)
	})

	t.Run("listing excludes removed and private vehicles by default", func(t *testing.T) {
		company := createTestCompany(t, s, "Fleet Visibility s.r.o.", nil)
		visible := createTestVehicle(t, s, "2AB 0001", company.ID)
		removed := createTestVehicle(t, s, "2AB 0002", company.ID)
		private := createTestVehicle(t, s, "2AB 0003", company.ID)

		removedStatus := "removed"
		_, err := s.UpdateVehicle(ctx, UpdateVehicleInput{VehicleID: removed.ID, Status: &removedStatus})
		require.NoError(t, err)
		privateStatus := "private"
		_, err = s.UpdateVehicle(ctx, UpdateVehicleInput{VehicleID: private.ID, Status: &privateStatus})
		require.NoError(t, err)

		vehicles, err := s.ListVehicles(ctx, false, false)
		require.NoError(t, err)
		ids := make(map[string]bool)
		for _, v := range vehicles {
			ids[v.ID] = true
		}
		assert.True(t, ids[visible.ID])
		assert.False(t, ids[removed.ID])
		assert.False(t, ids[private.ID])

		all, err := s.ListVehicles(ctx, true, true)
		require.NoError(t, err)
		ids = make(map[string]bool)
		for _, v := range all {
			ids[v.ID] = true
		}
		assert.True(t, ids[removed.ID])
		assert.True(t, ids[private.ID])
	})
}

// =============================================================================
// Test: UpdateVehicle
// =============================================================================

func testUpdateVehicle(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("patches only provided fields and leaves owner fields alone", func(t *testing.T) {
		company := createTestCompany(t, s, "Patch Fleet s.r.o.", nil)
		vehicle := createTestVehicle(t, s, "3CD 4567", company.ID)

		newBrand := "Volkswagen"
		newStatus := "maintenance"
		updated, err := s.UpdateVehicle(ctx, UpdateVehicleInput{
			VehicleID: vehicle.ID,
			Brand:     &newBrand,
			Status:    &newStatus,
		})
		require.NoError(t, err)
		assert.Equal(t, "Volkswagen", updated.Brand)
		assert.Equal(t, "maintenance", updated.Status)
		assert.Equal(t, vehicle.Model, updated.Model)
		assert.Equal(t, vehicle.Company, updated.Company)
		require.NotNil(t, updated.OwnerCompanyID)
		assert.Equal(t, company.ID, *updated.OwnerCompanyID)
	})

	t.Run("unknown vehicle is rejected", func(t *testing.T) {
		status := "maintenance"
		_, err := s.UpdateVehicle(ctx, UpdateVehicleInput{
			VehicleID: "00000000-0000-0000-0000-000000000000",
			Status:    &status,
		})
		require.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})
}

// =============================================================================
// Test: TransferOwnership
// =============================================================================

func testTransferOwnership(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("closes active record and syncs vehicle fields", func(t *testing.T) {
		companyA := createTestCompany(t, s, "Owner Alpha s.r.o.", nil)
		companyB := createTestCompany(t, s, "Owner Beta s.r.o.", nil)
		vehicle := createTestVehicle(t, s, "4EF 1111", companyA.ID)

		transferDate := time.Now().UTC().Add(time.Hour)
		record, err := s.TransferOwnership(ctx, TransferOwnershipInput{
			VehicleID:         vehicle.ID,
			NewOwnerCompanyID: companyB.ID,
			Reason:            "sale",
			TransferDate:      transferDate,
		})
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, companyB.ID, record.OwnerCompanyID)
		assert.Nil(t, record.ValidTo)
		assert.WithinDuration(t, transferDate, record.ValidFrom, time.Second)

		history, err := s.GetOwnershipHistory(ctx, vehicle.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)

		// Exactly one active record, and the closed one ends where the new
		// one begins.
		active := 0
		for _, h := range history {
			if h.ValidTo == nil {
				active++
				assert.Equal(t, companyB.ID, h.OwnerCompanyID)
			} else {
				assert.Equal(t, companyA.ID, h.OwnerCompanyID)
				assert.WithinDuration(t, transferDate, *h.ValidTo, time.Second)
			}
		}
		assert.Equal(t, 1, active)

		reloaded, err := s.GetVehicleByID(ctx, vehicle.ID)
		require.NoError(t, err)
		assert.Equal(t, companyB.Name, reloaded.Company)
		require.NotNil(t, reloaded.OwnerCompanyID)
		assert.Equal(t, companyB.ID, *reloaded.OwnerCompanyID)
	})

	t.Run("transfer to the current owner is recorded, not deduplicated", func(t *testing.T) {
		company := createTestCompany(t, s, "Self Transfer s.r.o.", nil)
		vehicle := createTestVehicle(t, s, "4EF 2222", company.ID)

		_, err := s.TransferOwnership(ctx, TransferOwnershipInput{
			VehicleID:         vehicle.ID,
			NewOwnerCompanyID: company.ID,
			Reason:            "correction",
		})
		require.NoError(t, err)

		history, err := s.GetOwnershipHistory(ctx, vehicle.ID)
		require.NoError(t, err)
		assert.Len(t, history, 2)

		owner, err := s.GetCurrentOwner(ctx, vehicle.ID)
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, company.ID, owner.CompanyID)
	})

	t.Run("unknown vehicle or company is rejected", func(t *testing.T) {
		company := createTestCompany(t, s, "Reject Transfer s.r.o.", nil)
		vehicle := createTestVehicle(t, s, "4EF 3333", company.ID)

		_, err := s.TransferOwnership(ctx, TransferOwnershipInput{
			VehicleID:         "00000000-0000-0000-0000-000000000000",
			NewOwnerCompanyID: company.ID,
			Reason:            "sale",
		})
		require.ErrorIs(t, err, domain.ErrVehicleNotFound)

		_, err = s.TransferOwnership(ctx, TransferOwnershipInput{
			VehicleID:         vehicle.ID,
			NewOwnerCompanyID: "00000000-0000-0000-0000-000000000000",
			Reason:            "sale",
		})
		require.ErrorIs(t, err, domain.ErrCompanyNotFound)
	})
}

// =============================================================================
// Test: Ownership ledger invariant enforcement
// =============================================================================

func testOwnershipLedgerGuard(t *testing.T, s Store) {
	ctx := context.Background()
	pg := s.(*pgStore)

	companyA := createTestCompany(t, s, "Ledger Guard A s.r.o.", nil)
	companyB := createTestCompany(t, s, "Ledger Guard B s.r.o.", nil)
	vehicle := createTestVehicle(t, s, "6GH 1111", companyA.ID)

	// Corrupt the ledger directly: a second active record alongside the one
	// CreateVehicle wrote.
	corrupt := schema.OwnershipRecord{
		VehicleID:        vehicle.ID,
		OwnerCompanyID:   companyB.ID,
		OwnerCompanyName: companyB.Name,
		ValidFrom:        time.Now().UTC().Add(-time.Hour),
		ValidTo:          nil,
		TransferReason:   "manual_edit",
	}
	require.NoError(t, pg.db.Create(&corrupt).Error)

	t.Run("transfer detects more than one active record", func(t *testing.T) {
		_, err := s.TransferOwnership(ctx, TransferOwnershipInput{
			VehicleID:         vehicle.ID,
			NewOwnerCompanyID: companyB.ID,
			Reason:            "sale",
		})
		require.Error(t, err)
		assert.True(t, domain.IsIntegrity(err))
	})

	t.Run("the failed transfer rolled back completely", func(t *testing.T) {
		history, err := s.GetOwnershipHistory(ctx, vehicle.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		for _, h := range history {
			assert.Nil(t, h.ValidTo)
		}

		reloaded, err := s.GetVehicleByID(ctx, vehicle.ID)
		require.NoError(t, err)
		assert.Equal(t, companyA.Name, reloaded.Company)
		require.NotNil(t, reloaded.OwnerCompanyID)
		assert.Equal(t, companyA.ID, *reloaded.OwnerCompanyID)
	})
}

// =============================================================================
// Test: Initial ownership backfill
// =============================================================================

func testOwnershipBackfill(t *testing.T, s Store) {
	ctx := context.Background()
	pg := s.(*pgStore)

	t.Run("first transfer of a pre-ledger vehicle synthesizes the initial record", func(t *testing.T) {
		companyA := createTestCompany(t, s, "Legacy Owner s.r.o.", nil)
		companyB := createTestCompany(t, s, "New Owner s.r.o.", nil)
		vehicle := createTestVehicle(t, s, "5GH 1111", companyA.ID)

		// Simulate a vehicle that predates the ownership ledger: owner only
		// in the denormalized vehicle fields, no history rows.
		err := pg.db.Where("vehicle_id = ?", vehicle.ID).Delete(&schema.OwnershipRecord{}).Error
		require.NoError(t, err)

		transferDate := time.Now().UTC()
		_, err = s.TransferOwnership(ctx, TransferOwnershipInput{
			VehicleID:         vehicle.ID,
			NewOwnerCompanyID: companyB.ID,
			Reason:            "sale",
			TransferDate:      transferDate,
		})
		require.NoError(t, err)

		history, err := s.GetOwnershipHistory(ctx, vehicle.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)

		// Newest first: the new active record, then the synthesized one.
		assert.Equal(t, companyB.ID, history[0].OwnerCompanyID)
		assert.Nil(t, history[0].ValidTo)

		backfilled := history[1]
		assert.Equal(t, companyA.ID, backfilled.OwnerCompanyID)
		assert.Equal(t, "initial_backfill", backfilled.TransferReason)
		require.NotNil(t, backfilled.ValidTo)
		assert.WithinDuration(t, transferDate, *backfilled.ValidTo, time.Second)
		assert.WithinDuration(t, vehicle.CreatedAt, backfilled.ValidFrom, time.Second)

		// The backfilled record makes the pre-transfer era queryable.
		owner, err := s.GetOwnerAtTime(ctx, vehicle.ID, transferDate.Add(-time.Minute))
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, companyA.ID, owner.CompanyID)
	})
}

// =============================================================================
// Test: GetOwnerAtTime
// =============================================================================

func testOwnerAtTime(t *testing.T, s Store) {
	ctx := context.Background()

	companyA := createTestCompany(t, s, "Time Owner A s.r.o.", nil)
	companyB := createTestCompany(t, s, "Time Owner B s.r.o.", nil)
	vehicle := createTestVehicle(t, s, "6IJ 1111", companyA.ID)

	transferDate := time.Now().UTC().Add(2 * time.Hour)
	_, err := s.TransferOwnership(ctx, TransferOwnershipInput{
		VehicleID:         vehicle.ID,
		NewOwnerCompanyID: companyB.ID,
		Reason:            "sale",
		TransferDate:      transferDate,
	})
	require.NoError(t, err)

	t.Run("between creation and transfer the first owner holds", func(t *testing.T) {
		owner, err := s.GetOwnerAtTime(ctx, vehicle.ID, transferDate.Add(-time.Hour))
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, companyA.ID, owner.CompanyID)
	})

	t.Run("after the transfer the new owner holds", func(t *testing.T) {
		owner, err := s.GetOwnerAtTime(ctx, vehicle.ID, transferDate.Add(time.Hour))
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, companyB.ID, owner.CompanyID)
	})

	t.Run("the transfer instant belongs to the new owner", func(t *testing.T) {
		owner, err := s.GetOwnerAtTime(ctx, vehicle.ID, transferDate)
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, companyB.ID, owner.CompanyID)
	})

	t.Run("before any record there is no owner", func(t *testing.T) {
		owner, err := s.GetOwnerAtTime(ctx, vehicle.ID, time.Now().UTC().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Nil(t, owner)
	})
}

// =============================================================================
// Test: Bulk ownership resolution
// =============================================================================

func testBulkOwners(t *testing.T, s Store) {
	ctx := context.Background()

	companyA := createTestCompany(t, s, "Bulk Owner A s.r.o.", nil)
	companyB := createTestCompany(t, s, "Bulk Owner B s.r.o.", nil)
	vehicle1 := createTestVehicle(t, s, "7KL 1111", companyA.ID)
	vehicle2 := createTestVehicle(t, s, "7KL 2222", companyB.ID)

	transferDate := time.Now().UTC().Add(time.Hour)
	_, err := s.TransferOwnership(ctx, TransferOwnershipInput{
		VehicleID:         vehicle1.ID,
		NewOwnerCompanyID: companyB.ID,
		Reason:            "sale",
		TransferDate:      transferDate,
	})
	require.NoError(t, err)

	t.Run("bulk current owners resolves every vehicle in one call", func(t *testing.T) {
		owners, err := s.GetBulkCurrentOwners(ctx, []string{vehicle1.ID, vehicle2.ID})
		require.NoError(t, err)
		require.Len(t, owners, 2)
		assert.Equal(t, companyB.ID, owners[vehicle1.ID].CompanyID)
		assert.Equal(t, companyB.ID, owners[vehicle2.ID].CompanyID)
	})

	t.Run("bulk owners at time matches the per-pair resolution", func(t *testing.T) {
		at := transferDate.Add(-time.Minute)
		owners, err := s.GetBulkOwnersAtTime(ctx, []domain.VehicleAtTime{
			{VehicleID: vehicle1.ID, At: at},
			{VehicleID: vehicle2.ID, At: at},
		})
		require.NoError(t, err)
		require.Len(t, owners, 2)
		require.NotNil(t, owners[0])
		require.NotNil(t, owners[1])
		assert.Equal(t, companyA.ID, owners[0].CompanyID)
		assert.Equal(t, companyB.ID, owners[1].CompanyID)

		single, err := s.GetOwnerAtTime(ctx, vehicle1.ID, at)
		require.NoError(t, err)
		require.NotNil(t, single)
		assert.Equal(t, owners[0].CompanyID, single.CompanyID)
	})

	t.Run("the same vehicle resolves per pair across a transfer", func(t *testing.T) {
		owners, err := s.GetBulkOwnersAtTime(ctx, []domain.VehicleAtTime{
			{VehicleID: vehicle1.ID, At: transferDate.Add(-time.Minute)},
			{VehicleID: vehicle1.ID, At: transferDate.Add(time.Minute)},
		})
		require.NoError(t, err)
		require.Len(t, owners, 2)
		require.NotNil(t, owners[0])
		require.NotNil(t, owners[1])
		assert.Equal(t, companyA.ID, owners[0].CompanyID)
		assert.Equal(t, companyB.ID, owners[1].CompanyID)
	})

	t.Run("a pair with no covering record stays nil", func(t *testing.T) {
		owners, err := s.GetBulkOwnersAtTime(ctx, []domain.VehicleAtTime{
			{VehicleID: vehicle1.ID, At: time.Now().UTC().Add(-365 * 24 * time.Hour)},
		})
		require.NoError(t, err)
		require.Len(t, owners, 1)
		assert.Nil(t, owners[0])
	})

	t.Run("bulk history groups records per vehicle newest first", func(t *testing.T) {
		history, err := s.GetBulkOwnershipHistory(ctx)
		require.NoError(t, err)
		require.Len(t, history[vehicle1.ID], 2)
		require.Len(t, history[vehicle2.ID], 1)
		assert.Nil(t, history[vehicle1.ID][0].ValidTo)
		assert.NotNil(t, history[vehicle1.ID][1].ValidTo)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		owners, err := s.GetBulkCurrentOwners(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, owners)
	})
}

// =============================================================================
// Test: Rental company snapshot
// =============================================================================

func testRentalSnapshot(t *testing.T, s Store) {
	ctx := context.Background()

	companyA := createTestCompany(t, s, "Snapshot Owner A s.r.o.", nil)
	companyB := createTestCompany(t, s, "Snapshot Owner B s.r.o.", nil)
	vehicle := createTestVehicle(t, s, "8MN 1111", companyA.ID)

	start := time.Now().UTC()
	end := start.Add(72 * time.Hour)

	t.Run("rental captures the owner at creation and never changes", func(t *testing.T) {
		rental, err := s.CreateRental(ctx, buildTestRental(vehicle.ID, start, end))
		require.NoError(t, err)
		assert.Equal(t, companyA.Name, rental.Company)
		assert.Equal(t, "pending", rental.Status)

		_, err = s.TransferOwnership(ctx, TransferOwnershipInput{
			VehicleID:         vehicle.ID,
			NewOwnerCompanyID: companyB.ID,
			Reason:            "sale",
		})
		require.NoError(t, err)

		// The old rental keeps its frozen snapshot.
		reloaded, err := s.GetRentalByID(ctx, rental.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded)
		assert.Equal(t, companyA.Name, reloaded.Company)

		// A new rental sees the new owner.
		fresh, err := s.CreateRental(ctx, buildTestRental(vehicle.ID, start, end))
		require.NoError(t, err)
		assert.Equal(t, companyB.Name, fresh.Company)
	})

	t.Run("unknown vehicle is rejected", func(t *testing.T) {
		_, err := s.CreateRental(ctx, buildTestRental("00000000-0000-0000-0000-000000000000", start, end))
		require.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})

	t.Run("rentals in period filters on start date", func(t *testing.T) {
		inPeriod, err := s.ListRentalsInPeriod(ctx, start.Add(-time.Hour), start.Add(time.Hour))
		require.NoError(t, err)
		assert.Len(t, inPeriod, 2)

		outside, err := s.ListRentalsInPeriod(ctx, start.Add(24*time.Hour), start.Add(48*time.Hour))
		require.NoError(t, err)
		assert.Empty(t, outside)
	})
}

// =============================================================================
// Test: UpdateRentalGuarded
// =============================================================================

func testUpdateRentalGuarded(t *testing.T, s Store) {
	ctx := context.Background()

	company := createTestCompany(t, s, "Guard Update s.r.o.", nil)
	vehicle := createTestVehicle(t, s, "9OP 1111", company.ID)
	start := time.Now().UTC()
	rental, err := s.CreateRental(ctx, buildTestRental(vehicle.ID, start, start.Add(48*time.Hour)))
	require.NoError(t, err)

	t.Run("valid patch is applied and leaves a pre-update backup", func(t *testing.T) {
		updated, err := s.UpdateRentalGuarded(ctx, rental.ID, RentalPatch{
			TotalPrice: f64Ptr(750),
			Paid:       boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, 750.0, updated.TotalPrice)
		assert.True(t, updated.Paid)
		// Untouched fields survive.
		assert.Equal(t, rental.CustomerName, updated.CustomerName)
		assert.Equal(t, rental.Company, updated.Company)

		backups, err := s.ListRentalBackups(ctx, rental.ID)
		require.NoError(t, err)
		require.Len(t, backups, 1)
		assert.Equal(t, schema.BackupReasonPreUpdate, backups[0].BackupReason)
		// The backup holds the versioned pre-mutation state.
		var payload rentalBackupPayload
		require.NoError(t, json.Unmarshal(backups[0].BackupData, &payload))
		assert.Equal(t, domain.BACKUP_SCHEMA_VERSION, payload.SchemaVersion)
		assert.Equal(t, 500.0, payload.Rental.TotalPrice)
	})

	t.Run("validation rejects the patch with every violation and no backup", func(t *testing.T) {
		before, err := s.ListRentalBackups(ctx, rental.ID)
		require.NoError(t, err)

		_, err = s.UpdateRentalGuarded(ctx, rental.ID, RentalPatch{
			CustomerName: strPtr(""),
			TotalPrice:   f64Ptr(-10),
			StartDate:    timePtr(start.Add(96 * time.Hour)),
		})
		require.Error(t, err)
		require.True(t, domain.IsValidation(err))

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Violations, "customer name cannot be empty")
		assert.Contains(t, ve.Violations, "total price cannot be negative")
		assert.Contains(t, ve.Violations, "start date must be before end date")

		after, err := s.ListRentalBackups(ctx, rental.ID)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		_, err := s.UpdateRentalGuarded(ctx, rental.ID, RentalPatch{})
		require.Error(t, err)
		require.True(t, domain.IsValidation(err))
	})

	t.Run("unknown rental is rejected", func(t *testing.T) {
		_, err := s.UpdateRentalGuarded(ctx, "00000000-0000-0000-0000-000000000000", RentalPatch{
			TotalPrice: f64Ptr(100),
		})
		require.ErrorIs(t, err, domain.ErrRentalNotFound)
	})
}

// =============================================================================
// Test: Delete and restore
// =============================================================================

func testDeleteAndRestoreRental(t *testing.T, s Store) {
	ctx := context.Background()

	company := createTestCompany(t, s, "Guard Restore s.r.o.", nil)
	vehicle := createTestVehicle(t, s, "9QR 1111", company.ID)
	start := time.Now().UTC()
	rental, err := s.CreateRental(ctx, buildTestRental(vehicle.ID, start, start.Add(48*time.Hour)))
	require.NoError(t, err)

	// One guarded update so two backup generations exist.
	_, err = s.UpdateRentalGuarded(ctx, rental.ID, RentalPatch{TotalPrice: f64Ptr(900)})
	require.NoError(t, err)

	t.Run("delete writes a pre-delete backup and removes the rental", func(t *testing.T) {
		err := s.DeleteRentalGuarded(ctx, rental.ID)
		require.NoError(t, err)

		gone, err := s.GetRentalByID(ctx, rental.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		backups, err := s.ListRentalBackups(ctx, rental.ID)
		require.NoError(t, err)
		require.Len(t, backups, 2)
		assert.Equal(t, schema.BackupReasonPreDelete, backups[0].BackupReason)
	})

	t.Run("restore from the latest backup recreates the rental", func(t *testing.T) {
		restored, err := s.RestoreRentalFromBackup(ctx, rental.ID, nil)
		require.NoError(t, err)
		require.NotNil(t, restored)
		assert.Equal(t, rental.ID, restored.ID)
		// The latest backup is the pre-delete snapshot carrying the updated price.
		assert.Equal(t, 900.0, restored.TotalPrice)
		assert.Equal(t, rental.CustomerName, restored.CustomerName)
		assert.Equal(t, rental.Company, restored.Company)
	})

	t.Run("restore from a specific backup rolls further back", func(t *testing.T) {
		backups, err := s.ListRentalBackups(ctx, rental.ID)
		require.NoError(t, err)

		// The oldest backup is the pre-update snapshot with the original price.
		oldest := backups[len(backups)-1]
		require.Equal(t, schema.BackupReasonPreUpdate, oldest.BackupReason)

		restored, err := s.RestoreRentalFromBackup(ctx, rental.ID, &oldest.ID)
		require.NoError(t, err)
		assert.Equal(t, 500.0, restored.TotalPrice)

		// Restoring over an existing rental backs up the overwritten state.
		after, err := s.ListRentalBackups(ctx, rental.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.BackupReasonPreRestore, after[0].BackupReason)
	})

	t.Run("rental with no backups cannot be restored", func(t *testing.T) {
		_, err := s.RestoreRentalFromBackup(ctx, "00000000-0000-0000-0000-000000000000", nil)
		require.ErrorIs(t, err, domain.ErrBackupNotFound)
	})

	t.Run("deleting an unknown rental is rejected", func(t *testing.T) {
		err := s.DeleteRentalGuarded(ctx, "00000000-0000-0000-0000-000000000000")
		require.ErrorIs(t, err, domain.ErrRentalNotFound)
	})
}

// =============================================================================
// Test: CheckRentalIntegrity
// =============================================================================

func testRentalIntegrity(t *testing.T, s Store) {
	ctx := context.Background()
	pg := s.(*pgStore)

	company := createTestCompany(t, s, "Integrity Fleet s.r.o.", nil)
	vehicle := createTestVehicle(t, s, "9ST 1111", company.ID)
	start := time.Now().UTC()
	_, err := s.CreateRental(ctx, buildTestRental(vehicle.ID, start, start.Add(24*time.Hour)))
	require.NoError(t, err)

	t.Run("clean data is healthy", func(t *testing.T) {
		report, err := s.CheckRentalIntegrity(ctx)
		require.NoError(t, err)
		assert.True(t, report.Healthy())
		assert.Equal(t, int64(1), report.TotalRentals)
	})

	t.Run("violations are counted per category", func(t *testing.T) {
		// Rows the write path would reject, planted directly to exercise
		// the sweep.
		bad := schema.Rental{
			ID:           "aaaaaaaa-0000-0000-0000-000000000001",
			VehicleID:    "00000000-0000-0000-0000-00000000dead",
			CustomerName: "",
			Company:      "",
			StartDate:    start.Add(24 * time.Hour),
			EndDate:      start,
		}
		require.NoError(t, pg.db.Create(&bad).Error)

		report, err := s.CheckRentalIntegrity(ctx)
		require.NoError(t, err)
		assert.False(t, report.Healthy())
		assert.Equal(t, int64(2), report.TotalRentals)
		assert.Equal(t, int64(1), report.DanglingVehicleRefs)
		assert.Equal(t, int64(1), report.MissingCustomerNames)
		assert.Equal(t, int64(1), report.InvalidDateRanges)
		assert.Equal(t, int64(1), report.MissingCompanySnapshots)
	})
}

// =============================================================================
// Test: Company access permissions
// =============================================================================

func testPermissions(t *testing.T, s Store) {
	ctx := context.Background()
	userID := "bbbbbbbb-0000-0000-0000-000000000001"

	companyA := createTestCompany(t, s, "Access Fleet A s.r.o.", nil)
	companyB := createTestCompany(t, s, "Access Fleet B s.r.o.", nil)

	t.Run("grant and read back", func(t *testing.T) {
		err := s.GrantCompanyAccess(ctx, GrantCompanyAccessInput{
			UserID:      userID,
			CompanyID:   companyA.ID,
			Permissions: []string{"read", "write"},
		})
		require.NoError(t, err)

		access, err := s.GetUserCompanyPermissions(ctx, userID)
		require.NoError(t, err)
		require.Len(t, access, 1)
		assert.Equal(t, companyA.ID, access[0].CompanyID)
		assert.Equal(t, companyA.Name, access[0].CompanyName)
		assert.Equal(t, []string{"read", "write"}, access[0].Permissions)
	})

	t.Run("granting again replaces the permissions", func(t *testing.T) {
		err := s.GrantCompanyAccess(ctx, GrantCompanyAccessInput{
			UserID:      userID,
			CompanyID:   companyA.ID,
			Permissions: []string{"read"},
		})
		require.NoError(t, err)

		access, err := s.GetUserCompanyPermissions(ctx, userID)
		require.NoError(t, err)
		require.Len(t, access, 1)
		assert.Equal(t, []string{"read"}, access[0].Permissions)
	})

	t.Run("grant for an unknown company is rejected", func(t *testing.T) {
		err := s.GrantCompanyAccess(ctx, GrantCompanyAccessInput{
			UserID:    userID,
			CompanyID: "00000000-0000-0000-0000-000000000000",
		})
		require.ErrorIs(t, err, domain.ErrCompanyNotFound)
	})

	t.Run("bulk assignment replaces all grants", func(t *testing.T) {
		err := s.SetUserCompanyAccess(ctx, userID, []GrantCompanyAccessInput{
			{UserID: userID, CompanyID: companyB.ID, Permissions: []string{"read"}},
		})
		require.NoError(t, err)

		access, err := s.GetUserCompanyPermissions(ctx, userID)
		require.NoError(t, err)
		require.Len(t, access, 1)
		assert.Equal(t, companyB.ID, access[0].CompanyID)
	})

	t.Run("revoke removes the grant", func(t *testing.T) {
		err := s.RevokeCompanyAccess(ctx, userID, companyB.ID)
		require.NoError(t, err)

		access, err := s.GetUserCompanyPermissions(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, access)
	})
}

// =============================================================================
// Test: Expenses and settlements
// =============================================================================

func testExpensesAndSettlements(t *testing.T, s Store) {
	ctx := context.Background()

	company := createTestCompany(t, s, "Finance Fleet s.r.o.", nil)
	now := time.Now().UTC()

	t.Run("expenses filter on company and period", func(t *testing.T) {
		for i, date := range []time.Time{now, now.Add(-30 * 24 * time.Hour)} {
			_, err := s.CreateExpense(ctx, CreateExpenseInput{
				Company:     company.Name,
				Description: fmt.Sprintf("expense %d", i),
				Amount:      100,
				Category:    "service",
				Date:        date,
			})
			require.NoError(t, err)
		}
		_, err := s.CreateExpense(ctx, CreateExpenseInput{
			Company:     "Someone Else s.r.o.",
			Description: "other fleet expense",
			Amount:      999,
			Date:        now,
		})
		require.NoError(t, err)

		expenses, err := s.ListExpensesForCompanyPeriod(ctx, company.Name, now.Add(-time.Hour), now.Add(time.Hour))
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, company.Name, expenses[0].Company)

		all, err := s.ListExpenses(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("settlements round trip", func(t *testing.T) {
		settlement := &schema.Settlement{
			ID:              "cccccccc-0000-0000-0000-000000000001",
			Company:         company.Name,
			PeriodFrom:      now.Add(-30 * 24 * time.Hour),
			PeriodTo:        now,
			TotalIncome:     1500,
			TotalExpenses:   200,
			TotalCommission: 150,
			Profit:          1150,
			RentalCount:     3,
			ExpenseCount:    2,
		}
		require.NoError(t, s.CreateSettlement(ctx, settlement))

		loaded, err := s.GetSettlementByID(ctx, settlement.ID)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, settlement.Profit, loaded.Profit)
		assert.Equal(t, settlement.RentalCount, loaded.RentalCount)

		list, err := s.ListSettlements(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func boolPtr(b bool) *bool { return &b }

// =============================================================================
// Suite runner
// =============================================================================

// RunStoreTests runs the full store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Companies", testCompanies},
		{"CreateVehicle", testCreateVehicle},
		{"UpdateVehicle", testUpdateVehicle},
		{"TransferOwnership", testTransferOwnership},
		{"OwnershipLedgerGuard", testOwnershipLedgerGuard},
		{"OwnershipBackfill", testOwnershipBackfill},
		{"OwnerAtTime", testOwnerAtTime},
		{"BulkOwners", testBulkOwners},
		{"RentalSnapshot", testRentalSnapshot},
		{"UpdateRentalGuarded", testUpdateRentalGuarded},
		{"DeleteAndRestoreRental", testDeleteAndRestoreRental},
		{"RentalIntegrity", testRentalIntegrity},
		{"Permissions", testPermissions},
		{"ExpensesAndSettlements", testExpensesAndSettlements},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
