package dto

import "time"

// CreateVehicleRequest is the payload for creating a vehicle
type CreateVehicleRequest struct {
	LicensePlate       string  `json:"licensePlate" binding:"required"`
	VIN                string  `json:"vin"`
	Brand              string  `json:"brand"`
	Model              string  `json:"model"`
	OwnerCompanyID     string  `json:"ownerCompanyId" binding:"required"`
	Status             string  `json:"status"`
	AssignedMechanicID *string `json:"assignedMechanicId"`
}

// UpdateVehicleRequest is the payload for updating non-ownership vehicle fields
type UpdateVehicleRequest struct {
	VIN                *string `json:"vin"`
	Brand              *string `json:"brand"`
	Model              *string `json:"model"`
	Status             *string `json:"status"`
	AssignedMechanicID *string `json:"assignedMechanicId"`
}

// TransferOwnershipRequest is the payload for an ownership transfer
type TransferOwnershipRequest struct {
	NewOwnerCompanyID string     `json:"newOwnerCompanyId" binding:"required"`
	Reason            string     `json:"reason" binding:"required"`
	Notes             *string    `json:"notes"`
	TransferDate      *time.Time `json:"transferDate"`
}

// CreateRentalRequest is the payload for creating a rental
type CreateRentalRequest struct {
	VehicleID          string    `json:"vehicleId" binding:"required"`
	CustomerID         *string   `json:"customerId"`
	CustomerName       string    `json:"customerName" binding:"required"`
	StartDate          time.Time `json:"startDate" binding:"required"`
	EndDate            time.Time `json:"endDate" binding:"required"`
	TotalPrice         float64   `json:"totalPrice"`
	Commission         float64   `json:"commission"`
	Deposit            float64   `json:"deposit"`
	PaymentMethod      string    `json:"paymentMethod"`
	HandoverPlace      string    `json:"handoverPlace"`
	OrderNumber        string    `json:"orderNumber"`
	AllowedKilometers  int       `json:"allowedKilometers"`
	ExtraKilometerRate float64   `json:"extraKilometerRate"`
}

// UpdateRentalRequest is the partial payload for a guarded rental update.
// Absent fields stay unchanged.
type UpdateRentalRequest struct {
	CustomerName       *string    `json:"customerName"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	TotalPrice         *float64   `json:"totalPrice"`
	Commission         *float64   `json:"commission"`
	Deposit            *float64   `json:"deposit"`
	PaymentMethod      *string    `json:"paymentMethod"`
	Paid               *bool      `json:"paid"`
	Status             *string    `json:"status"`
	HandoverPlace      *string    `json:"handoverPlace"`
	OrderNumber        *string    `json:"orderNumber"`
	AllowedKilometers  *int       `json:"allowedKilometers"`
	ExtraKilometerRate *float64   `json:"extraKilometerRate"`
	HandoverProtocolID *string    `json:"handoverProtocolId"`
	ReturnProtocolID   *string    `json:"returnProtocolId"`
}

// RestoreRentalRequest selects which backup to restore from; the most recent
// one is used when BackupID is absent
type RestoreRentalRequest struct {
	BackupID *uint64 `json:"backupId"`
}

// GrantAccessRequest is the payload for granting a user access to a company
type GrantAccessRequest struct {
	CompanyID   string   `json:"companyId" binding:"required"`
	Permissions []string `json:"permissions"`
}

// BulkAssignAccessRequest replaces all of a user's grants
type BulkAssignAccessRequest struct {
	Grants []GrantAccessRequest `json:"grants" binding:"required"`
}

// GenerateSettlementRequest is the payload for computing a settlement
type GenerateSettlementRequest struct {
	Company    string    `json:"company" binding:"required"`
	PeriodFrom time.Time `json:"periodFrom" binding:"required"`
	PeriodTo   time.Time `json:"periodTo" binding:"required"`
}

// CreateExpenseRequest is the payload for creating an expense
type CreateExpenseRequest struct {
	Company     string    `json:"company" binding:"required"`
	VehicleID   *string   `json:"vehicleId"`
	Description string    `json:"description" binding:"required"`
	Amount      float64   `json:"amount" binding:"required"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date" binding:"required"`
}
