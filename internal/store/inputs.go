package store

import "time"

// CreateCompanyInput holds the fields for creating a company
type CreateCompanyInput struct {
	Name       string
	PlatformID *string
}

// CreateVehicleInput holds the fields for creating a vehicle.
// OwnerCompanyID seeds both the denormalized owner fields and the initial
// ownership record.
type CreateVehicleInput struct {
	LicensePlate       string
	VIN                string
	Brand              string
	Model              string
	OwnerCompanyID     string
	Status             string
	AssignedMechanicID *string
}

// UpdateVehicleInput holds the mutable non-ownership vehicle fields.
// Nil pointers leave the field unchanged.
type UpdateVehicleInput struct {
	VehicleID          string
	VIN                *string
	Brand              *string
	Model              *string
	Status             *string
	AssignedMechanicID *string
}

// TransferOwnershipInput holds the fields for a guarded ownership transfer
type TransferOwnershipInput struct {
	VehicleID         string
	NewOwnerCompanyID string
	Reason            string
	Notes             *string
	// TransferDate defaults to now when zero
	TransferDate time.Time
}

// CreateRentalInput holds the fields for creating a rental
type CreateRentalInput struct {
	VehicleID          string
	CustomerID         *string
	CustomerName       string
	StartDate          time.Time
	EndDate            time.Time
	TotalPrice         float64
	Commission         float64
	Deposit            float64
	PaymentMethod      string
	HandoverPlace      string
	OrderNumber        string
	AllowedKilometers  int
	ExtraKilometerRate float64
}

// RentalPatch is a partial rental update applied through the mutation guard.
// Nil pointers leave the field unchanged; critical fields (customer name and
// both dates) must be non-empty when present.
type RentalPatch struct {
	CustomerName       *string
	StartDate          *time.Time
	EndDate            *time.Time
	TotalPrice         *float64
	Commission         *float64
	Deposit            *float64
	PaymentMethod      *string
	Paid               *bool
	Status             *string
	HandoverPlace      *string
	OrderNumber        *string
	AllowedKilometers  *int
	ExtraKilometerRate *float64
	HandoverProtocolID *string
	ReturnProtocolID   *string
}

// IsEmpty reports whether the patch changes nothing
func (p RentalPatch) IsEmpty() bool {
	return p.CustomerName == nil && p.StartDate == nil && p.EndDate == nil &&
		p.TotalPrice == nil && p.Commission == nil && p.Deposit == nil &&
		p.PaymentMethod == nil && p.Paid == nil && p.Status == nil &&
		p.HandoverPlace == nil && p.OrderNumber == nil &&
		p.AllowedKilometers == nil && p.ExtraKilometerRate == nil &&
		p.HandoverProtocolID == nil && p.ReturnProtocolID == nil
}

// GrantCompanyAccessInput holds the fields for one permission grant
type GrantCompanyAccessInput struct {
	UserID      string
	CompanyID   string
	Permissions []string
}

// CreateExpenseInput holds the fields for creating an expense
type CreateExpenseInput struct {
	Company     string
	VehicleID   *string
	Description string
	Amount      float64
	Category    string
	Date        time.Time
}

// RentalIntegrityReport is the result of the read-only rental integrity sweep
type RentalIntegrityReport struct {
	// TotalRentals scanned
	TotalRentals int64 `json:"totalRentals"`
	// DanglingVehicleRefs counts rentals referencing a vehicle that no longer exists
	DanglingVehicleRefs int64 `json:"danglingVehicleRefs"`
	// MissingCustomerNames counts rentals with an empty customer name
	MissingCustomerNames int64 `json:"missingCustomerNames"`
	// InvalidDateRanges counts rentals where start_date >= end_date
	InvalidDateRanges int64 `json:"invalidDateRanges"`
	// MissingCompanySnapshots counts rentals without a frozen company snapshot
	MissingCompanySnapshots int64 `json:"missingCompanySnapshots"`
	// AvailableBackups counts rows in the rental backup log
	AvailableBackups int64 `json:"availableBackups"`
	// CheckedAt is when the sweep ran
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether the sweep found no violations
func (r *RentalIntegrityReport) Healthy() bool {
	return r.DanglingVehicleRefs == 0 &&
		r.MissingCustomerNames == 0 &&
		r.InvalidDateRanges == 0 &&
		r.MissingCompanySnapshots == 0
}
