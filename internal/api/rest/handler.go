package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetgrid/backoffice/internal/accesscache"
	"github.com/fleetgrid/backoffice/internal/api/middleware"
	"github.com/fleetgrid/backoffice/internal/api/rest/dto"
	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/reader"
	"github.com/fleetgrid/backoffice/internal/store"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListVehicles retrieves vehicles the caller may see
	// GET /api/v1/vehicles?include_removed=<bool>&include_private=<bool>
	ListVehicles(c *gin.Context)

	// GetVehicle retrieves a single vehicle
	// GET /api/v1/vehicles/:id
	GetVehicle(c *gin.Context)

	// CreateVehicle creates a vehicle with its initial ownership record
	// POST /api/v1/vehicles
	CreateVehicle(c *gin.Context)

	// UpdateVehicle updates non-ownership vehicle fields
	// PATCH /api/v1/vehicles/:id
	UpdateVehicle(c *gin.Context)

	// TransferOwnership performs a guarded ownership transfer
	// POST /api/v1/vehicles/:id/transfer
	TransferOwnership(c *gin.Context)

	// GetOwnershipHistory retrieves the full ownership ledger for a vehicle
	// GET /api/v1/vehicles/:id/ownership
	GetOwnershipHistory(c *gin.Context)

	// GetOwner resolves the current owner, or the owner at ?at=<RFC3339>
	// GET /api/v1/vehicles/:id/owner
	GetOwner(c *gin.Context)

	// GetBulkOwnershipHistory retrieves the ownership ledger for every vehicle
	// GET /api/v1/ownership/history
	GetBulkOwnershipHistory(c *gin.Context)

	// ListRentals retrieves rentals the caller may see
	// GET /api/v1/rentals
	ListRentals(c *gin.Context)

	// GetRental retrieves a single rental
	// GET /api/v1/rentals/:id
	GetRental(c *gin.Context)

	// CreateRental creates a rental with a frozen company snapshot
	// POST /api/v1/rentals
	CreateRental(c *gin.Context)

	// UpdateRental applies a patch through the mutation guard
	// PATCH /api/v1/rentals/:id
	UpdateRental(c *gin.Context)

	// DeleteRental deletes a rental through the mutation guard
	// DELETE /api/v1/rentals/:id
	DeleteRental(c *gin.Context)

	// RestoreRental restores a rental from a backup
	// POST /api/v1/rentals/:id/restore
	RestoreRental(c *gin.Context)

	// ListRentalBackups retrieves the backup log for a rental
	// GET /api/v1/rentals/:id/backups
	ListRentalBackups(c *gin.Context)

	// CheckRentalIntegrity runs the read-only integrity sweep
	// GET /api/v1/rentals/integrity
	CheckRentalIntegrity(c *gin.Context)

	// GetUserAccess retrieves a user's company access list
	// GET /api/v1/users/:id/access
	GetUserAccess(c *gin.Context)

	// GrantAccess grants (upsert) a user access to one company
	// POST /api/v1/users/:id/access
	GrantAccess(c *gin.Context)

	// RevokeAccess removes a user's access to one company
	// DELETE /api/v1/users/:id/access/:companyId
	RevokeAccess(c *gin.Context)

	// BulkAssignAccess replaces all of a user's grants
	// PUT /api/v1/users/:id/access
	BulkAssignAccess(c *gin.Context)

	// ListSettlements retrieves settlements the caller may see
	// GET /api/v1/settlements
	ListSettlements(c *gin.Context)

	// GenerateSettlement computes and persists a settlement
	// POST /api/v1/settlements/generate
	GenerateSettlement(c *gin.Context)

	// ListExpenses retrieves expenses the caller may see
	// GET /api/v1/expenses
	ListExpenses(c *gin.Context)

	// CreateExpense creates an expense
	// POST /api/v1/expenses
	CreateExpense(c *gin.Context)

	// ListInsurances retrieves insurances the caller may see
	// GET /api/v1/insurances
	ListInsurances(c *gin.Context)

	// ListVehicleDocuments retrieves document references for visible vehicles
	// GET /api/v1/documents
	ListVehicleDocuments(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store  store.Store
	reader *reader.Reader
	access *accesscache.Service
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, rd *reader.Reader, access *accesscache.Service) Handler {
	return &handler{
		store:  st,
		reader: rd,
		access: access,
	}
}

// authContext pulls the authenticated context stored by the auth middleware.
// Aborts with 401 when absent, which only happens on route wiring mistakes.
func authContext(c *gin.Context) (domain.AuthContext, bool) {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return domain.AuthContext{}, false
	}
	return auth, true
}

// listResponse is the envelope for filtered collection reads. Filtered
// reports whether company attribution narrowing was applied.
type listResponse struct {
	Items    interface{} `json:"items"`
	Filtered bool        `json:"filtered"`
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}

// ListVehicles retrieves vehicles the caller may see
func (h *handler) ListVehicles(c *gin.Context) {
	auth, ok := authContext(c)
	if !ok {
		return
	}

	includeRemoved := c.Query("include_removed") == "true"
	includePrivate := c.Query("include_private") == "true"

	vehicles, filtered, err := h.reader.ListVehicles(c.Request.Context(), auth, includeRemoved, includePrivate)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: dto.FromVehicles(vehicles), Filtered: filtered})
}

// GetVehicle retrieves a single vehicle
func (h *handler) GetVehicle(c *gin.Context) {
	vehicleID := c.Param("id")

	vehicle, err := h.store.GetVehicleByID(c.Request.Context(), vehicleID)
	if err != nil {
		respondDomainError(c, err, zap.String("vehicleID", vehicleID))
		return
	}
	if vehicle == nil {
		respondNotFound(c, "Vehicle not found")
		return
	}
	c.JSON(http.StatusOK, dto.FromVehicle(vehicle))
}

// CreateVehicle creates a vehicle with its initial ownership record
func (h *handler) CreateVehicle(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	vehicle, err := h.store.CreateVehicle(c.Request.Context(), store.CreateVehicleInput{
		LicensePlate:       req.LicensePlate,
		VIN:                req.VIN,
		Brand:              req.Brand,
		Model:              req.Model,
		OwnerCompanyID:     req.OwnerCompanyID,
		Status:             req.Status,
		AssignedMechanicID: req.AssignedMechanicID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromVehicle(vehicle))
}

// UpdateVehicle updates non-ownership vehicle fields
func (h *handler) UpdateVehicle(c *gin.Context) {
	vehicleID := c.Param("id")

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	vehicle, err := h.store.UpdateVehicle(c.Request.Context(), store.UpdateVehicleInput{
		VehicleID:          vehicleID,
		VIN:                req.VIN,
		Brand:              req.Brand,
		Model:              req.Model,
		Status:             req.Status,
		AssignedMechanicID: req.AssignedMechanicID,
	})
	if err != nil {
		respondDomainError(c, err, zap.String("vehicleID", vehicleID))
		return
	}
	c.JSON(http.StatusOK, dto.FromVehicle(vehicle))
}

// TransferOwnership performs a guarded ownership transfer
func (h *handler) TransferOwnership(c *gin.Context) {
	vehicleID := c.Param("id")

	var req dto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	input := store.TransferOwnershipInput{
		VehicleID:         vehicleID,
		NewOwnerCompanyID: req.NewOwnerCompanyID,
		Reason:            req.Reason,
		Notes:             req.Notes,
	}
	if req.TransferDate != nil {
		input.TransferDate = *req.TransferDate
	}

	record, err := h.store.TransferOwnership(c.Request.Context(), input)
	if err != nil {
		respondDomainError(c, err,
			zap.String("vehicleID", vehicleID),
			zap.String("newOwnerCompanyID", req.NewOwnerCompanyID))
		return
	}
	c.JSON(http.StatusCreated, dto.FromOwnershipRecord(record))
}

// GetOwnershipHistory retrieves the full ownership ledger for a vehicle
func (h *handler) GetOwnershipHistory(c *gin.Context) {
	vehicleID := c.Param("id")

	records, err := h.store.GetOwnershipHistory(c.Request.Context(), vehicleID)
	if err != nil {
		respondDomainError(c, err, zap.String("vehicleID", vehicleID))
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": dto.FromOwnershipRecords(records)})
}

// GetOwner resolves the current owner, or the owner at ?at=<RFC3339>
func (h *handler) GetOwner(c *gin.Context) {
	vehicleID := c.Param("id")

	var owner *domain.Owner
	var err error
	if at := c.Query("at"); at != "" {
		timestamp, parseErr := time.Parse(time.RFC3339, at)
		if parseErr != nil {
			respondBadRequest(c, "Invalid 'at' timestamp, expected RFC3339", parseErr.Error())
			return
		}
		owner, err = h.store.GetOwnerAtTime(c.Request.Context(), vehicleID, timestamp)
	} else {
		owner, err = h.store.GetCurrentOwner(c.Request.Context(), vehicleID)
	}
	if err != nil {
		respondDomainError(c, err, zap.String("vehicleID", vehicleID))
		return
	}
	if owner == nil {
		respondNotFound(c, "No owner recorded for vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.FromOwner(owner))
}

// GetBulkOwnershipHistory retrieves the ownership ledger for every vehicle
func (h *handler) GetBulkOwnershipHistory(c *gin.Context) {
	history, err := h.store.GetBulkOwnershipHistory(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	out := make(map[string][]dto.OwnershipRecord, len(history))
	for vehicleID, records := range history {
		out[vehicleID] = dto.FromOwnershipRecords(records)
	}
	c.JSON(http.StatusOK, gin.H{"history": out})
}

// ListRentals retrieves rentals the caller may see
func (h *handler) ListRentals(c *gin.Context) {
	auth, ok := authContext(c)
	if !ok {
		return
	}

	rentals, filtered, err := h.reader.ListRentals(c.Request.Context(), auth)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: dto.FromRentals(rentals), Filtered: filtered})
}

// GetRental retrieves a single rental
func (h *handler) GetRental(c *gin.Context) {
	rentalID := c.Param("id")

	rental, err := h.store.GetRentalByID(c.Request.Context(), rentalID)
	if err != nil {
		respondDomainError(c, err, zap.String("rentalID", rentalID))
		return
	}
	if rental == nil {
		respondNotFound(c, "Rental not found")
		return
	}
	c.JSON(http.StatusOK, dto.FromRental(rental))
}

// CreateRental creates a rental with a frozen company snapshot
func (h *handler) CreateRental(c *gin.Context) {
	var req dto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if !req.StartDate.Before(req.EndDate) {
		respondValidationError(c, "start date must be before end date")
		return
	}

	rental, err := h.store.CreateRental(c.Request.Context(), store.CreateRentalInput{
		VehicleID:          req.VehicleID,
		CustomerID:         req.CustomerID,
		CustomerName:       req.CustomerName,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		TotalPrice:         req.TotalPrice,
		Commission:         req.Commission,
		Deposit:            req.Deposit,
		PaymentMethod:      req.PaymentMethod,
		HandoverPlace:      req.HandoverPlace,
		OrderNumber:        req.OrderNumber,
		AllowedKilometers:  req.AllowedKilometers,
		ExtraKilometerRate: req.ExtraKilometerRate,
	})
	if err != nil {
		respondDomainError(c, err, zap.String("vehicleID", req.VehicleID))
		return
	}
	c.JSON(http.StatusCreated, dto.FromRental(rental))
}

// UpdateRental applies a patch through the mutation guard
func (h *handler) UpdateRental(c *gin.Context) {
	rentalID := c.Param("id")

	var req dto.UpdateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	rental, err := h.store.UpdateRentalGuarded(c.Request.Context(), rentalID, store.RentalPatch{
		CustomerName:       req.CustomerName,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		TotalPrice:         req.TotalPrice,
		Commission:         req.Commission,
		Deposit:            req.Deposit,
		PaymentMethod:      req.PaymentMethod,
		Paid:               req.Paid,
		Status:             req.Status,
		HandoverPlace:      req.HandoverPlace,
		OrderNumber:        req.OrderNumber,
		AllowedKilometers:  req.AllowedKilometers,
		ExtraKilometerRate: req.ExtraKilometerRate,
		HandoverProtocolID: req.HandoverProtocolID,
		ReturnProtocolID:   req.ReturnProtocolID,
	})
	if err != nil {
		respondDomainError(c, err, zap.String("rentalID", rentalID))
		return
	}
	c.JSON(http.StatusOK, dto.FromRental(rental))
}

// DeleteRental deletes a rental through the mutation guard
func (h *handler) DeleteRental(c *gin.Context) {
	rentalID := c.Param("id")

	if err := h.store.DeleteRentalGuarded(c.Request.Context(), rentalID); err != nil {
		respondDomainError(c, err, zap.String("rentalID", rentalID))
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreRental restores a rental from a backup
func (h *handler) RestoreRental(c *gin.Context) {
	rentalID := c.Param("id")

	var req dto.RestoreRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	rental, err := h.store.RestoreRentalFromBackup(c.Request.Context(), rentalID, req.BackupID)
	if err != nil {
		respondDomainError(c, err, zap.String("rentalID", rentalID))
		return
	}
	c.JSON(http.StatusOK, dto.FromRental(rental))
}

// ListRentalBackups retrieves the backup log for a rental
func (h *handler) ListRentalBackups(c *gin.Context) {
	rentalID := c.Param("id")

	backups, err := h.store.ListRentalBackups(c.Request.Context(), rentalID)
	if err != nil {
		respondDomainError(c, err, zap.String("rentalID", rentalID))
		return
	}
	c.JSON(http.StatusOK, gin.H{"backups": dto.FromRentalBackups(backups)})
}

// CheckRentalIntegrity runs the read-only integrity sweep
func (h *handler) CheckRentalIntegrity(c *gin.Context) {
	report, err := h.store.CheckRentalIntegrity(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"report":  report,
		"healthy": report.Healthy(),
	})
}

// GetUserAccess retrieves a user's company access list
func (h *handler) GetUserAccess(c *gin.Context) {
	userID := c.Param("id")

	access, err := h.access.Get(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, zap.String("userID", userID))
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

// GrantAccess grants (upsert) a user access to one company
func (h *handler) GrantAccess(c *gin.Context) {
	userID := c.Param("id")

	var req dto.GrantAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	err := h.access.Grant(c.Request.Context(), store.GrantCompanyAccessInput{
		UserID:      userID,
		CompanyID:   req.CompanyID,
		Permissions: req.Permissions,
	})
	if err != nil {
		respondDomainError(c, err,
			zap.String("userID", userID),
			zap.String("companyID", req.CompanyID))
		return
	}
	c.Status(http.StatusNoContent)
}

// RevokeAccess removes a user's access to one company
func (h *handler) RevokeAccess(c *gin.Context) {
	userID := c.Param("id")
	companyID := c.Param("companyId")

	if err := h.access.Revoke(c.Request.Context(), userID, companyID); err != nil {
		respondDomainError(c, err,
			zap.String("userID", userID),
			zap.String("companyID", companyID))
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkAssignAccess replaces all of a user's grants
func (h *handler) BulkAssignAccess(c *gin.Context) {
	userID := c.Param("id")

	var req dto.BulkAssignAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	grants := make([]store.GrantCompanyAccessInput, 0, len(req.Grants))
	for _, grant := range req.Grants {
		grants = append(grants, store.GrantCompanyAccessInput{
			UserID:      userID,
			CompanyID:   grant.CompanyID,
			Permissions: grant.Permissions,
		})
	}

	if err := h.access.BulkAssign(c.Request.Context(), userID, grants); err != nil {
		respondDomainError(c, err, zap.String("userID", userID))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSettlements retrieves settlements the caller may see
func (h *handler) ListSettlements(c *gin.Context) {
	auth, ok := authContext(c)
	if !ok {
		return
	}

	settlements, filtered, err := h.reader.ListSettlements(c.Request.Context(), auth)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: dto.FromSettlements(settlements), Filtered: filtered})
}

// GenerateSettlement computes and persists a settlement
func (h *handler) GenerateSettlement(c *gin.Context) {
	var req dto.GenerateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if !req.PeriodFrom.Before(req.PeriodTo) {
		respondValidationError(c, "period start must be before period end")
		return
	}

	settlement, err := h.reader.GenerateSettlement(c.Request.Context(), req.Company, req.PeriodFrom, req.PeriodTo)
	if err != nil {
		respondDomainError(c, err, zap.String("company", req.Company))
		return
	}
	c.JSON(http.StatusCreated, dto.FromSettlement(settlement))
}

// ListExpenses retrieves expenses the caller may see
func (h *handler) ListExpenses(c *gin.Context) {
	auth, ok := authContext(c)
	if !ok {
		return
	}

	expenses, filtered, err := h.reader.ListExpenses(c.Request.Context(), auth)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: dto.FromExpenses(expenses), Filtered: filtered})
}

// CreateExpense creates an expense
func (h *handler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	expense, err := h.store.CreateExpense(c.Request.Context(), store.CreateExpenseInput{
		Company:     req.Company,
		VehicleID:   req.VehicleID,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromExpense(expense))
}

// ListInsurances retrieves insurances the caller may see
func (h *handler) ListInsurances(c *gin.Context) {
	auth, ok := authContext(c)
	if !ok {
		return
	}

	insurances, filtered, err := h.reader.ListInsurances(c.Request.Context(), auth)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: dto.FromInsurances(insurances), Filtered: filtered})
}

// ListVehicleDocuments retrieves document references for visible vehicles
func (h *handler) ListVehicleDocuments(c *gin.Context) {
	auth, ok := authContext(c)
	if !ok {
		return
	}

	documents, filtered, err := h.reader.ListVehicleDocuments(c.Request.Context(), auth)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: dto.FromVehicleDocuments(documents), Filtered: filtered})
}
