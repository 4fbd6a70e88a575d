// Package dto holds the REST wire shapes and their mappers. Schema models
// never cross the API boundary directly.
package dto

import (
	"time"

	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/store/schema"
)

// Vehicle is the wire representation of a vehicle
type Vehicle struct {
	ID                 string    `json:"id"`
	LicensePlate       string    `json:"licensePlate"`
	VIN                string    `json:"vin,omitempty"`
	Brand              string    `json:"brand,omitempty"`
	Model              string    `json:"model,omitempty"`
	Company            string    `json:"company,omitempty"`
	OwnerCompanyID     *string   `json:"ownerCompanyId,omitempty"`
	Status             string    `json:"status"`
	AssignedMechanicID *string   `json:"assignedMechanicId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// FromVehicle maps a schema vehicle to its wire shape
func FromVehicle(v *schema.Vehicle) Vehicle {
	return Vehicle{
		ID:                 v.ID,
		LicensePlate:       v.LicensePlate,
		VIN:                v.VIN,
		Brand:              v.Brand,
		Model:              v.Model,
		Company:            v.Company,
		OwnerCompanyID:     v.OwnerCompanyID,
		Status:             v.Status,
		AssignedMechanicID: v.AssignedMechanicID,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

// FromVehicles maps a slice of schema vehicles
func FromVehicles(vehicles []*schema.Vehicle) []Vehicle {
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}

// OwnershipRecord is the wire representation of one ownership ledger row
type OwnershipRecord struct {
	ID               uint64     `json:"id"`
	VehicleID        string     `json:"vehicleId"`
	OwnerCompanyID   string     `json:"ownerCompanyId"`
	OwnerCompanyName string     `json:"ownerCompanyName"`
	ValidFrom        time.Time  `json:"validFrom"`
	ValidTo          *time.Time `json:"validTo,omitempty"`
	TransferReason   string     `json:"transferReason"`
	TransferNotes    *string    `json:"transferNotes,omitempty"`
}

// FromOwnershipRecord maps a schema ownership record to its wire shape
func FromOwnershipRecord(r *schema.OwnershipRecord) OwnershipRecord {
	return OwnershipRecord{
		ID:               r.ID,
		VehicleID:        r.VehicleID,
		OwnerCompanyID:   r.OwnerCompanyID,
		OwnerCompanyName: r.OwnerCompanyName,
		ValidFrom:        r.ValidFrom,
		ValidTo:          r.ValidTo,
		TransferReason:   r.TransferReason,
		TransferNotes:    r.TransferNotes,
	}
}

// FromOwnershipRecords maps a slice of schema ownership records
func FromOwnershipRecords(records []*schema.OwnershipRecord) []OwnershipRecord {
	out := make([]OwnershipRecord, 0, len(records))
	for _, r := range records {
		out = append(out, FromOwnershipRecord(r))
	}
	return out
}

// Owner is the wire representation of a resolved owner
type Owner struct {
	CompanyID   string     `json:"companyId"`
	CompanyName string     `json:"companyName"`
	ValidFrom   time.Time  `json:"validFrom"`
	ValidTo     *time.Time `json:"validTo,omitempty"`
}

// FromOwner maps a domain owner to its wire shape
func FromOwner(o *domain.Owner) Owner {
	return Owner{
		CompanyID:   o.CompanyID,
		CompanyName: o.CompanyName,
		ValidFrom:   o.ValidFrom,
		ValidTo:     o.ValidTo,
	}
}

// Rental is the wire representation of a rental
type Rental struct {
	ID                 string    `json:"id"`
	VehicleID          string    `json:"vehicleId"`
	CustomerID         *string   `json:"customerId,omitempty"`
	CustomerName       string    `json:"customerName"`
	Company            string    `json:"company,omitempty"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	TotalPrice         float64   `json:"totalPrice"`
	Commission         float64   `json:"commission"`
	Deposit            float64   `json:"deposit"`
	PaymentMethod      string    `json:"paymentMethod,omitempty"`
	Paid               bool      `json:"paid"`
	Status             string    `json:"status"`
	HandoverPlace      string    `json:"handoverPlace,omitempty"`
	OrderNumber        string    `json:"orderNumber,omitempty"`
	AllowedKilometers  int       `json:"allowedKilometers"`
	ExtraKilometerRate float64   `json:"extraKilometerRate"`
	HandoverProtocolID *string   `json:"handoverProtocolId,omitempty"`
	ReturnProtocolID   *string   `json:"returnProtocolId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// FromRental maps a schema rental to its wire shape
func FromRental(r *schema.Rental) Rental {
	return Rental{
		ID:                 r.ID,
		VehicleID:          r.VehicleID,
		CustomerID:         r.CustomerID,
		CustomerName:       r.CustomerName,
		Company:            r.Company,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		TotalPrice:         r.TotalPrice,
		Commission:         r.Commission,
		Deposit:            r.Deposit,
		PaymentMethod:      r.PaymentMethod,
		Paid:               r.Paid,
		Status:             r.Status,
		HandoverPlace:      r.HandoverPlace,
		OrderNumber:        r.OrderNumber,
		AllowedKilometers:  r.AllowedKilometers,
		ExtraKilometerRate: r.ExtraKilometerRate,
		HandoverProtocolID: r.HandoverProtocolID,
		ReturnProtocolID:   r.ReturnProtocolID,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromRentals maps a slice of schema rentals
func FromRentals(rentals []*schema.Rental) []Rental {
	out := make([]Rental, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, FromRental(r))
	}
	return out
}

// RentalBackup is the wire representation of one backup log row. The payload
// itself is not exposed; restore happens server side.
type RentalBackup struct {
	ID               uint64    `json:"id"`
	OriginalRentalID string    `json:"originalRentalId"`
	BackupTimestamp  time.Time `json:"backupTimestamp"`
	BackupReason     string    `json:"backupReason"`
}

// FromRentalBackups maps a slice of schema rental backups
func FromRentalBackups(backups []*schema.RentalBackup) []RentalBackup {
	out := make([]RentalBackup, 0, len(backups))
	for _, b := range backups {
		out = append(out, RentalBackup{
			ID:               b.ID,
			OriginalRentalID: b.OriginalRentalID,
			BackupTimestamp:  b.BackupTimestamp,
			BackupReason:     string(b.BackupReason),
		})
	}
	return out
}

// Expense is the wire representation of an expense
type Expense struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	VehicleID   *string   `json:"vehicleId,omitempty"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category,omitempty"`
	Date        time.Time `json:"date"`
}

// FromExpense maps a schema expense to its wire shape
func FromExpense(e *schema.Expense) Expense {
	return Expense{
		ID:          e.ID,
		Company:     e.Company,
		VehicleID:   e.VehicleID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
	}
}

// FromExpenses maps a slice of schema expenses
func FromExpenses(expenses []*schema.Expense) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}

// Insurance is the wire representation of an insurance policy
type Insurance struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicleId"`
	Company      string    `json:"company"`
	Insurer      string    `json:"insurer,omitempty"`
	PolicyNumber string    `json:"policyNumber,omitempty"`
	ValidFrom    time.Time `json:"validFrom"`
	ValidTo      time.Time `json:"validTo"`
	Price        float64   `json:"price"`
}

// FromInsurances maps a slice of schema insurances
func FromInsurances(insurances []*schema.Insurance) []Insurance {
	out := make([]Insurance, 0, len(insurances))
	for _, i := range insurances {
		out = append(out, Insurance{
			ID:           i.ID,
			VehicleID:    i.VehicleID,
			Company:      i.Company,
			Insurer:      i.Insurer,
			PolicyNumber: i.PolicyNumber,
			ValidFrom:    i.ValidFrom,
			ValidTo:      i.ValidTo,
			Price:        i.Price,
		})
	}
	return out
}

// Settlement is the wire representation of a settlement
type Settlement struct {
	ID              string    `json:"id"`
	Company         string    `json:"company"`
	PeriodFrom      time.Time `json:"periodFrom"`
	PeriodTo        time.Time `json:"periodTo"`
	TotalIncome     float64   `json:"totalIncome"`
	TotalExpenses   float64   `json:"totalExpenses"`
	TotalCommission float64   `json:"totalCommission"`
	Profit          float64   `json:"profit"`
	RentalCount     int       `json:"rentalCount"`
	ExpenseCount    int       `json:"expenseCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromSettlement maps a schema settlement to its wire shape
func FromSettlement(s *schema.Settlement) Settlement {
	return Settlement{
		ID:              s.ID,
		Company:         s.Company,
		PeriodFrom:      s.PeriodFrom,
		PeriodTo:        s.PeriodTo,
		TotalIncome:     s.TotalIncome,
		TotalExpenses:   s.TotalExpenses,
		TotalCommission: s.TotalCommission,
		Profit:          s.Profit,
		RentalCount:     s.RentalCount,
		ExpenseCount:    s.ExpenseCount,
		CreatedAt:       s.CreatedAt,
	}
}

// FromSettlements maps a slice of schema settlements
func FromSettlements(settlements []*schema.Settlement) []Settlement {
	out := make([]Settlement, 0, len(settlements))
	for _, s := range settlements {
		out = append(out, FromSettlement(s))
	}
	return out
}

// VehicleDocument is the wire representation of a vehicle document reference
type VehicleDocument struct {
	ID           string     `json:"id"`
	VehicleID    string     `json:"vehicleId"`
	DocumentType string     `json:"documentType"`
	StorageKey   string     `json:"storageKey"`
	ValidTo      *time.Time `json:"validTo,omitempty"`
}

// FromVehicleDocuments maps a slice of schema vehicle documents
func FromVehicleDocuments(documents []*schema.VehicleDocument) []VehicleDocument {
	out := make([]VehicleDocument, 0, len(documents))
	for _, d := range documents {
		out = append(out, VehicleDocument{
			ID:           d.ID,
			VehicleID:    d.VehicleID,
			DocumentType: d.DocumentType,
			StorageKey:   d.StorageKey,
			ValidTo:      d.ValidTo,
		})
	}
	return out
}
