package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/fleetgrid/backoffice/internal/api/middleware"
	"github.com/fleetgrid/backoffice/internal/domain"
)

// SetupRoutes configures all REST API routes. Everything except the health
// check requires authentication; permission writes and restores additionally
// require an unrestricted role.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	adminOnly := middleware.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin, domain.RolePlatformAdmin)

	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	{
		// Vehicle endpoints
		v1.GET("/vehicles", handler.ListVehicles)
		v1.GET("/vehicles/:id", handler.GetVehicle)
		v1.POST("/vehicles", adminOnly, handler.CreateVehicle)
		v1.PATCH("/vehicles/:id", handler.UpdateVehicle)

		// Ownership endpoints
		v1.POST("/vehicles/:id/transfer", adminOnly, handler.TransferOwnership)
		v1.GET("/vehicles/:id/ownership", handler.GetOwnershipHistory)
		v1.GET("/vehicles/:id/owner", handler.GetOwner)
		v1.GET("/ownership/history", handler.GetBulkOwnershipHistory)

		// Rental endpoints (mutations go through the guard)
		v1.GET("/rentals", handler.ListRentals)
		v1.GET("/rentals/integrity", handler.CheckRentalIntegrity)
		v1.GET("/rentals/:id", handler.GetRental)
		v1.POST("/rentals", handler.CreateRental)
		v1.PATCH("/rentals/:id", handler.UpdateRental)
		v1.DELETE("/rentals/:id", handler.DeleteRental)
		v1.POST("/rentals/:id/restore", adminOnly, handler.RestoreRental)
		v1.GET("/rentals/:id/backups", handler.ListRentalBackups)

		// Permission endpoints (admin only for writes)
		v1.GET("/users/:id/access", handler.GetUserAccess)
		v1.POST("/users/:id/access", adminOnly, handler.GrantAccess)
		v1.PUT("/users/:id/access", adminOnly, handler.BulkAssignAccess)
		v1.DELETE("/users/:id/access/:companyId", adminOnly, handler.RevokeAccess)

		// Settlement endpoints
		v1.GET("/settlements", handler.ListSettlements)
		v1.POST("/settlements/generate", adminOnly, handler.GenerateSettlement)

		// Expense endpoints
		v1.GET("/expenses", handler.ListExpenses)
		v1.POST("/expenses", handler.CreateExpense)

		// Insurance endpoints
		v1.GET("/insurances", handler.ListInsurances)

		// Document endpoints (attribution is transitive via vehicles)
		v1.GET("/documents", handler.ListVehicleDocuments)
	}
}
