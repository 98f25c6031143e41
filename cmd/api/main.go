package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/pos-ledger/internal/application/audit"
	"github.com/tu-usuario/pos-ledger/internal/application/checkout"
	"github.com/tu-usuario/pos-ledger/internal/application/inventory"
	"github.com/tu-usuario/pos-ledger/internal/application/security"
	"github.com/tu-usuario/pos-ledger/internal/application/shift"
	"github.com/tu-usuario/pos-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/pos-ledger/internal/interfaces/http"
	"github.com/tu-usuario/pos-ledger/pkg/config"
	"github.com/tu-usuario/pos-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	ledgerRepo := postgres.NewLedgerRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditor := audit.NewSink(auditRepo, log)
	inventorySvc := inventory.NewService(txRunner, ledgerRepo, productRepo, batchRepo, auditor)
	checkoutUC := checkout.NewUseCase(txRunner, inventorySvc, auditor, log)
	shiftUC := shift.NewUseCase(shiftRepo, auditor)
	securityUC := security.NewUseCase(userRepo, auditor, security.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventorySvc: inventorySvc,
		CheckoutUC:   checkoutUC,
		ShiftUC:      shiftUC,
		SecurityUC:   securityUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	// Barrido periódico de lotes vencidos
	sweepDone := make(chan struct{})
	if cfg.Inventory.ExpirySweepMinutes > 0 {
		go expirySweepLoop(ctx, inventorySvc, log, time.Duration(cfg.Inventory.ExpirySweepMinutes)*time.Minute, sweepDone)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	close(sweepDone)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// expirySweepLoop vence lotes con fecha cumplida cada interval hasta que se
// cierre done. Los errores se loguean y el loop sigue; el barrido se repite.
func expirySweepLoop(ctx context.Context, svc *inventory.Service, log *logger.Logger, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			expired, err := svc.ExpireDueBatches(ctx, time.Now(), nil)
			if err != nil {
				log.Error().Err(err).Msg("barrido de vencidos")
				continue
			}
			if expired > 0 {
				log.Info().Int("batches", expired).Msg("lotes vencidos por barrido")
			}
		}
	}
}
