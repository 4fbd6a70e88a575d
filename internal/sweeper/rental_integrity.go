package sweeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/fleetgrid/backoffice/internal/adapter"
	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/logger"
	"github.com/fleetgrid/backoffice/internal/store"
)

// RentalIntegritySweeperConfig holds configuration for the rental integrity sweeper
type RentalIntegritySweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweep cycles
	BatchSize      int           // Rentals verified per pool queue
	WorkerPoolSize int           // Concurrent backup verification workers
}

// rentalIntegritySweeper implements the Sweeper interface. Each cycle runs the
// read-only rental integrity report and verifies that every rental's latest
// backup still decodes at the expected schema version. Findings are logged at
// error level so they reach Sentry; the sweeper never mutates anything.
type rentalIntegritySweeper struct {
	config    *RentalIntegritySweeperConfig
	store     store.Store
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewRentalIntegritySweeper creates a new rental integrity sweeper
func NewRentalIntegritySweeper(
	config *RentalIntegritySweeperConfig,
	st store.Store,
	clock adapter.Clock,
) Sweeper {
	return &rentalIntegritySweeper{
		config:    config,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *rentalIntegritySweeper) Name() string {
	return "rental-integrity-sweeper"
}

// Start begins the sweeper's main loop
func (s *rentalIntegritySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting rental integrity sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Rental integrity sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Rental integrity sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *rentalIntegritySweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *rentalIntegritySweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping rental integrity sweeper")

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Rental integrity sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Rental integrity sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *rentalIntegritySweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	// ULID run IDs sort by time, which makes correlating a cycle's log lines trivial
	runID := ulid.MustNewDefault(startTime).String()
	logger.InfoCtx(ctx, "Starting integrity sweep cycle", zap.String("run_id", runID))

	report, err := s.checkIntegrityWithRetry(ctx)
	if err != nil {
		// After all retries failed, log with high severity for monitoring/alerting
		logger.ErrorCtx(ctx, fmt.Errorf("CRITICAL: rental integrity check failed after retries: %w", err),
			zap.String("run_id", runID),
		)
		if !s.sleep(ctx, s.config.Interval) {
			return ctx.Err()
		}
		return nil
	}

	if report.Healthy() {
		logger.InfoCtx(ctx, "Rental integrity check passed",
			zap.String("run_id", runID),
			zap.Int64("total_rentals", report.TotalRentals),
			zap.Int64("available_backups", report.AvailableBackups),
		)
	} else {
		logger.ErrorCtx(ctx, errors.New("rental integrity violations detected"),
			zap.String("run_id", runID),
			zap.Int64("total_rentals", report.TotalRentals),
			zap.Int64("dangling_vehicle_refs", report.DanglingVehicleRefs),
			zap.Int64("missing_customer_names", report.MissingCustomerNames),
			zap.Int64("invalid_date_ranges", report.InvalidDateRanges),
			zap.Int64("missing_company_snapshots", report.MissingCompanySnapshots),
		)
	}

	undecodable := s.verifyBackups(ctx, runID)

	duration := s.clock.Since(startTime)
	logger.InfoCtx(ctx, "Integrity sweep cycle completed",
		zap.String("run_id", runID),
		zap.Duration("duration", duration),
		zap.Bool("healthy", report.Healthy() && undecodable == 0),
		zap.Int32("undecodable_backups", undecodable),
	)

	if !s.sleep(ctx, s.config.Interval) {
		return ctx.Err()
	}

	return nil
}

// verifyBackups checks that every rental's most recent backup still decodes at
// the expected schema version, fanning the decode work out over the pool.
// Returns the number of rentals whose latest backup failed verification.
func (s *rentalIntegritySweeper) verifyBackups(ctx context.Context, runID string) int32 {
	rentals, err := s.store.ListRentals(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to list rentals for backup verification: %w", err),
			zap.String("run_id", runID))
		return 0
	}
	if len(rentals) == 0 {
		return 0
	}

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	var undecodable atomic.Int32
	for _, rental := range rentals {
		rentalID := rental.ID
		s.pool.Submit(func() {
			backups, err := s.store.ListRentalBackups(ctx, rentalID)
			if err != nil {
				logger.ErrorCtx(ctx, err,
					zap.String("run_id", runID),
					zap.String("rental_id", rentalID))
				return
			}
			if len(backups) == 0 {
				return
			}

			var payload struct {
				SchemaVersion int `json:"schema_version"`
			}
			latest := backups[0]
			if err := json.Unmarshal(latest.BackupData, &payload); err != nil {
				undecodable.Add(1)
				logger.ErrorCtx(ctx, fmt.Errorf("rental backup does not decode: %w", err),
					zap.String("run_id", runID),
					zap.String("rental_id", rentalID),
					zap.Uint64("backup_id", latest.ID))
				return
			}
			if payload.SchemaVersion != domain.BACKUP_SCHEMA_VERSION {
				undecodable.Add(1)
				logger.ErrorCtx(ctx, errors.New("rental backup has unexpected schema version"),
					zap.String("run_id", runID),
					zap.String("rental_id", rentalID),
					zap.Uint64("backup_id", latest.ID),
					zap.Int("schema_version", payload.SchemaVersion))
			}
		})
	}

	s.pool.StopAndWait()
	s.pool = nil

	return undecodable.Load()
}

// checkIntegrityWithRetry runs the integrity report with exponential backoff
// on transient store failures
func (s *rentalIntegritySweeper) checkIntegrityWithRetry(ctx context.Context) (*store.RentalIntegrityReport, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Second
	b.MaxInterval = 1 * time.Minute
	b.MaxElapsedTime = 10 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // Add jitter to prevent thundering herd

	backoffWithContext := backoff.WithContext(b, ctx)

	var report *store.RentalIntegrityReport
	operation := func() error {
		var err error
		report, err = s.store.CheckRentalIntegrity(ctx)
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Rental integrity check failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoffWithContext, notifyOnError); err != nil {
		return nil, fmt.Errorf("failed after %d attempts: %w", attemptCount, err)
	}

	return report, nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if the sleep completed.
func (s *rentalIntegritySweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
