package schema

import (
	"time"

	"gorm.io/datatypes"
)

// BackupReason classifies why a rental backup row was written
type BackupReason string

const (
	// BackupReasonPreUpdate is written immediately before a guarded update
	BackupReasonPreUpdate BackupReason = "pre_update"
	// BackupReasonPreDelete is written immediately before a guarded delete
	BackupReasonPreDelete BackupReason = "pre_delete"
	// BackupReasonPreRestore is written before replaying an older backup
	BackupReasonPreRestore BackupReason = "pre_restore"
)

// RentalBackup represents the rental_backups table - the append-only audit
// trail written before every guarded rental mutation. BackupData carries a
// versioned snapshot of the full rental so recovery from an old backup stays
// well-defined after the rental shape evolves.
type RentalBackup struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// OriginalRentalID references the rental that was backed up
	OriginalRentalID string `gorm:"column:original_rental_id;not null;type:uuid;index"`
	// BackupData is the versioned full-entity snapshot
	BackupData datatypes.JSON `gorm:"column:backup_data;not null"`
	// BackupTimestamp is when the snapshot was taken
	BackupTimestamp time.Time `gorm:"column:backup_timestamp;not null;type:timestamptz"`
	// BackupReason classifies the mutation that triggered the backup
	BackupReason BackupReason `gorm:"column:backup_reason;not null;type:text"`
}

// TableName specifies the table name for the RentalBackup model
func (RentalBackup) TableName() string {
	return "rental_backups"
}
