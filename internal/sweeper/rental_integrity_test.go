package sweeper_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/fleetgrid/backoffice/internal/logger"
	"github.com/fleetgrid/backoffice/internal/mocks"
	"github.com/fleetgrid/backoffice/internal/store"
	"github.com/fleetgrid/backoffice/internal/store/schema"
	"github.com/fleetgrid/backoffice/internal/sweeper"
)

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	clock   *mocks.MockClock
	sweeper sweeper.Sweeper
}

// setupTestSweeper creates all the mocks and sweeper for testing
func setupTestSweeper(t *testing.T) *testSweeperMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}

	config := &sweeper.RentalIntegritySweeperConfig{
		Interval:       time.Hour,
		BatchSize:      10,
		WorkerPoolSize: 2,
	}

	tm.sweeper = sweeper.NewRentalIntegritySweeper(config, tm.store, tm.clock)

	return tm
}

// tearDownTestSweeper cleans up the test mocks
func tearDownTestSweeper(mocks *testSweeperMocks) {
	mocks.ctrl.Finish()
}

func healthyReport() *store.RentalIntegrityReport {
	return &store.RentalIntegrityReport{
		TotalRentals:     2,
		AvailableBackups: 1,
		CheckedAt:        time.Now().UTC(),
	}
}

func backupData(t *testing.T, schemaVersion int) datatypes.JSON {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{
		"schema_version": schemaVersion,
		"rental":         schema.Rental{ID: "r-1"},
	})
	require.NoError(t, err)
	return data
}

func TestRentalIntegritySweeper_Name(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	assert.Equal(t, "rental-integrity-sweeper", mocks.sweeper.Name())
}

func TestRentalIntegritySweeper_RunsCycleAndStops(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx := context.Background()

	mocks.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	// One full cycle: integrity report, then backup verification per rental.
	mocks.store.EXPECT().
		CheckRentalIntegrity(gomock.Any()).
		Return(healthyReport(), nil)
	mocks.store.EXPECT().
		ListRentals(gomock.Any()).
		Return([]*schema.Rental{{ID: "r-1"}, {ID: "r-2"}}, nil)
	mocks.store.EXPECT().
		ListRentalBackups(gomock.Any(), "r-1").
		Return([]*schema.RentalBackup{{
			ID:               1,
			OriginalRentalID: "r-1",
			BackupData:       backupData(t, 1),
			BackupReason:     schema.BackupReasonPreUpdate,
		}}, nil)
	mocks.store.EXPECT().
		ListRentalBackups(gomock.Any(), "r-2").
		Return(nil, nil)

	// The cycle ends in the interval sleep; never let it fire so Stop
	// interrupts it deterministically.
	afterCalled := make(chan struct{})
	mocks.clock.EXPECT().
		After(time.Hour).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			close(afterCalled)
			return make(chan time.Time)
		})

	errCh := make(chan error, 1)
	go func() {
		errCh <- mocks.sweeper.Start(ctx)
	}()

	<-afterCalled

	stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, mocks.sweeper.Stop(stopCtx))
	require.NoError(t, <-errCh)
}

func TestRentalIntegritySweeper_UnhealthyReportAndBadBackup(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx := context.Background()

	mocks.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	unhealthy := healthyReport()
	unhealthy.MissingCompanySnapshots = 1

	mocks.store.EXPECT().
		CheckRentalIntegrity(gomock.Any()).
		Return(unhealthy, nil)
	mocks.store.EXPECT().
		ListRentals(gomock.Any()).
		Return([]*schema.Rental{{ID: "r-1"}}, nil)
	// A backup written before the current payload shape; it must be flagged,
	// not crash the cycle.
	mocks.store.EXPECT().
		ListRentalBackups(gomock.Any(), "r-1").
		Return([]*schema.RentalBackup{{
			ID:               1,
			OriginalRentalID: "r-1",
			BackupData:       backupData(t, 99),
			BackupReason:     schema.BackupReasonPreDelete,
		}}, nil)

	afterCalled := make(chan struct{})
	mocks.clock.EXPECT().
		After(time.Hour).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			close(afterCalled)
			return make(chan time.Time)
		})

	errCh := make(chan error, 1)
	go func() {
		errCh <- mocks.sweeper.Start(ctx)
	}()

	<-afterCalled

	stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, mocks.sweeper.Stop(stopCtx))
	require.NoError(t, <-errCh)
}

func TestRentalIntegritySweeper_StartTwiceFails(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx := context.Background()

	mocks.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	mocks.store.EXPECT().CheckRentalIntegrity(gomock.Any()).Return(healthyReport(), nil).AnyTimes()
	mocks.store.EXPECT().ListRentals(gomock.Any()).Return(nil, nil).AnyTimes()

	afterCalled := make(chan struct{})
	mocks.clock.EXPECT().
		After(time.Hour).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			close(afterCalled)
			return make(chan time.Time)
		})

	errCh := make(chan error, 1)
	go func() {
		errCh <- mocks.sweeper.Start(ctx)
	}()

	<-afterCalled

	err := mocks.sweeper.Start(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, mocks.sweeper.Stop(stopCtx))
	require.NoError(t, <-errCh)
}

func TestRentalIntegritySweeper_StopWhenNotRunning(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	require.NoError(t, mocks.sweeper.Stop(context.Background()))
}

func TestRentalIntegritySweeper_ContextCancellationStopsLoop(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx, cancel := context.WithCancel(context.Background())

	mocks.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	mocks.store.EXPECT().CheckRentalIntegrity(gomock.Any()).Return(healthyReport(), nil).AnyTimes()
	mocks.store.EXPECT().ListRentals(gomock.Any()).Return(nil, nil).AnyTimes()

	afterCalled := make(chan struct{})
	mocks.clock.EXPECT().
		After(time.Hour).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			close(afterCalled)
			return make(chan time.Time)
		})

	errCh := make(chan error, 1)
	go func() {
		errCh <- mocks.sweeper.Start(ctx)
	}()

	<-afterCalled
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
