package schema

import "time"

// Settlement represents the settlements table - a persisted per-company,
// per-period financial summary. Attribution of rentals to the company follows
// the frozen rental snapshot, with point-in-time ownership backfill for rows
// that predate the snapshot mechanism.
type Settlement struct {
	// ID is the settlement identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Company the settlement was computed for
	Company string `gorm:"column:company;not null;type:text;index"`
	// PeriodFrom is the inclusive period start
	PeriodFrom time.Time `gorm:"column:period_from;not null;type:timestamptz"`
	// PeriodTo is the inclusive period end
	PeriodTo time.Time `gorm:"column:period_to;not null;type:timestamptz"`
	// TotalIncome is the sum of attributed rental prices
	TotalIncome float64 `gorm:"column:total_income;not null;default:0"`
	// TotalExpenses is the sum of the company's expenses in the period
	TotalExpenses float64 `gorm:"column:total_expenses;not null;default:0"`
	// TotalCommission is the sum of platform commissions on attributed rentals
	TotalCommission float64 `gorm:"column:total_commission;not null;default:0"`
	// Profit is income minus expenses minus commission
	Profit float64 `gorm:"column:profit;not null;default:0"`
	// RentalCount is the number of attributed rentals
	RentalCount int `gorm:"column:rental_count;not null;default:0"`
	// ExpenseCount is the number of attributed expenses
	ExpenseCount int `gorm:"column:expense_count;not null;default:0"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Settlement model
func (Settlement) TableName() string {
	return "settlements"
}
