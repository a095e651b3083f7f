package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aguatrack/aguatrack-api/internal/application/analytics"
	"github.com/aguatrack/aguatrack-api/internal/application/auth"
	"github.com/aguatrack/aguatrack-api/internal/application/ledger"
	"github.com/aguatrack/aguatrack-api/internal/application/usecase"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	BusinessUC   *usecase.BusinessUseCase
	CustomerUC   *usecase.CustomerUseCase
	DeliveryUC   *ledger.DeliveryUseCase
	MonthlyLogUC *ledger.MonthlyLogUseCase
	BulkOrderUC  *usecase.BulkOrderUseCase
	DashboardUC  *analytics.DashboardUseCase
	UserRepo     repository.UserRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/otp/send", authHandler.SendOTP)
	authGroup.Post("/otp/verify-register", authHandler.VerifyRegister)
	authGroup.Post("/otp/verify-login", authHandler.VerifyLogin)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))
	protected.Get("/auth/me", authHandler.Me)

	// Business (protegido; Create es el onboarding, no exige negocio previo)
	business := protected.Group("/business")
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	business.Post("/", businessHandler.Create)
	business.Get("/", RequireBusiness(), businessHandler.Get)
	business.Put("/", RequireBusiness(), businessHandler.Update)

	// Todo lo operativo exige onboarding completado.
	tenant := protected.Group("/", RequireBusiness())

	// Customers
	customers := tenant.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Deliveries (libro diario)
	deliveries := tenant.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Post("/", deliveryHandler.Record)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/pending", deliveryHandler.PendingPayments)

	// Monthly logs (suscripción mensual)
	monthlyLogs := tenant.Group("/monthly-logs")
	monthlyLogHandler := NewMonthlyLogHandler(deps.MonthlyLogUC)
	monthlyLogs.Put("/:customerId/:date", monthlyLogHandler.Upsert)
	monthlyLogs.Get("/:customerId", monthlyLogHandler.List)

	// Bulk orders
	bulkOrders := tenant.Group("/bulk-orders")
	bulkOrderHandler := NewBulkOrderHandler(deps.BulkOrderUC)
	bulkOrders.Post("/", bulkOrderHandler.Create)
	bulkOrders.Get("/", bulkOrderHandler.List)
	bulkOrders.Put("/:id", bulkOrderHandler.Update)
	bulkOrders.Delete("/:id", bulkOrderHandler.Delete)

	// Dashboard
	dashboard := tenant.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
}
