// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"lexal/internal/config"
	"lexal/internal/handlers"
	"lexal/internal/middleware"
	"lexal/internal/models"
	"lexal/internal/repositories"
	"lexal/internal/services/auth"
	"lexal/internal/services/billing"
	"lexal/internal/services/proposal"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	customerRepo := repositories.NewCustomerRepository(db, repositories.CacheService)
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)

	// Initialize services
	authService := auth.NewService(userRepo)
	billingService := billing.NewStripeService(config.GetEnv("STRIPE_SECRET_KEY", ""))
	proposalService := proposal.NewService(customerRepo, billingService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerRepo)
	proposalHandler := handlers.NewProposalHandler(proposalService, customerRepo)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Get("/health", handlers.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Lexal API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Protected routes with auth middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.LogoutUser)
	protected.Post("/change-password", authHandler.ChangePassword)

	setupCustomerRoutes(protected, customerHandler, proposalHandler)

	// Admin endpoints
	admin := protected.Group("/admin", middleware.AdminAuthMiddleware)
	admin.Post("/cache/flush", handlers.FlushCache)
}

func setupCustomerRoutes(router fiber.Router, customerHandler *handlers.CustomerHandler, proposalHandler *handlers.ProposalHandler) {
	customers := router.Group("/customers")

	customers.Post("/", middleware.HasPermission(models.PermissionCustomerWrite), customerHandler.CreateCustomer)
	customers.Get("/", middleware.HasPermission(models.PermissionCustomerRead), customerHandler.ListCustomers)
	customers.Get("/:id", middleware.HasPermission(models.PermissionCustomerRead), customerHandler.GetCustomer)
	customers.Put("/:id/fields", middleware.HasPermission(models.PermissionCustomerWrite), customerHandler.UpdateFields)
	customers.Put("/:id/services", middleware.HasPermission(models.PermissionCustomerWrite), customerHandler.UpdateServices)

	// Proposal endpoints
	customers.Get("/:id/proposal", middleware.HasPermission(models.PermissionProposalRead), proposalHandler.GetProposal)
	customers.Get("/:id/proposal/fees", middleware.HasPermission(models.PermissionProposalRead), proposalHandler.GetSuggestedFees)
	customers.Get("/:id/proposal/snapshot", middleware.HasPermission(models.PermissionProposalRead), proposalHandler.GetSnapshot)
	customers.Post("/:id/proposal/send", middleware.HasPermission(models.PermissionProposalSend), proposalHandler.SendProposal)
}
