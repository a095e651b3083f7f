package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aguatrack/aguatrack-api/internal/application/analytics"
	"github.com/aguatrack/aguatrack-api/internal/application/auth"
	"github.com/aguatrack/aguatrack-api/internal/application/ledger"
	"github.com/aguatrack/aguatrack-api/internal/application/usecase"
	"github.com/aguatrack/aguatrack-api/internal/infrastructure/mail"
	"github.com/aguatrack/aguatrack-api/internal/infrastructure/postgres"
	httpRouter "github.com/aguatrack/aguatrack-api/internal/interfaces/http"
	"github.com/aguatrack/aguatrack-api/pkg/config"
	"github.com/aguatrack/aguatrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	monthlyLogRepo := postgres.NewMonthlyLogRepository(pool)
	bulkOrderRepo := postgres.NewBulkOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailSender := mail.NewGomailSender(cfg.SMTP, log)

	authUC := auth.NewAuthUseCase(userRepo, businessRepo, mailSender, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	businessUC := usecase.NewBusinessUseCase(businessRepo, txRunner)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	deliveryUC := ledger.NewDeliveryUseCase(deliveryRepo)
	monthlyLogUC := ledger.NewMonthlyLogUseCase(monthlyLogRepo)
	bulkOrderUC := usecase.NewBulkOrderUseCase(bulkOrderRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		BusinessUC:   businessUC,
		CustomerUC:   customerUC,
		DeliveryUC:   deliveryUC,
		MonthlyLogUC: monthlyLogUC,
		BulkOrderUC:  bulkOrderUC,
		DashboardUC:  dashboardUC,
		UserRepo:     userRepo,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
