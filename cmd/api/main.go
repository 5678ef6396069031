package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/otopia-pos/docs"
	appanalytics "github.com/jhoicas/otopia-pos/internal/application/analytics"
	"github.com/jhoicas/otopia-pos/internal/application/auth"
	"github.com/jhoicas/otopia-pos/internal/application/billing"
	"github.com/jhoicas/otopia-pos/internal/application/inventory"
	"github.com/jhoicas/otopia-pos/internal/application/membership"
	"github.com/jhoicas/otopia-pos/internal/application/notification"
	"github.com/jhoicas/otopia-pos/internal/application/ports"
	"github.com/jhoicas/otopia-pos/internal/application/shift"
	"github.com/jhoicas/otopia-pos/internal/application/usecase"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/kv"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/otopia-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/report"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/scheduler"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/whatsapp"
	httpRouter "github.com/jhoicas/otopia-pos/internal/interfaces/http"
	"github.com/jhoicas/otopia-pos/migrations"
	"github.com/jhoicas/otopia-pos/pkg/config"
	"github.com/jhoicas/otopia-pos/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// kvAdapters implementaciones de idempotencia, caché y cola: Redis si está
// configurado, en proceso si no.
type kvAdapters struct {
	idem     ports.IdempotencyStore
	cache    ports.Cache
	queue    ports.NotificationQueue
	consumer kv.Consumer
	rdb      *redis.Client
}

// @title						Otopia POS API
// @version					1.0
// @description				API del punto de venta de autolavado: turnos, ventas, inventario, membresías y promociones.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	level := "info"
	if cfg.App.Env == "development" {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", cfg.App.Timezone).Msg("zona horaria inválida, se usa UTC")
		loc = time.UTC
	}

	ctx := context.Background()
	store, closeStore := openStore(ctx, cfg, log)
	adapters := openKV(ctx, cfg, log)

	prom := metrics.New()
	exporter := report.NewXLSXExporter()
	messenger := whatsapp.NewClient(whatsapp.Config{
		BridgeURL: cfg.WhatsApp.BridgeURL,
		Timeout:   cfg.WhatsApp.Timeout,
	}, log.Component("whatsapp"))

	// ── Casos de uso ──
	authUC := auth.NewAuthUseCase(store.Users, store.Outlets, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	notificationUC := notification.NewUseCase(store, messenger, adapters.queue, prom, notification.Config{
		Enabled:      cfg.WhatsApp.Enabled,
		BusinessName: cfg.Business.Name,
		ReminderDays: cfg.Notify.ReminderDays,
		SendTimeout:  cfg.WhatsApp.Timeout,
	}, log.Component("notification"))
	transactionUC := billing.NewTransactionUseCase(store, billing.Deps{
		Idempotency: adapters.idem,
		Queue:       adapters.queue,
		Receipts:    infrapdf.NewReceiptGenerator(),
		Exporter:    exporter,
		Metrics:     prom,
	}, billing.Config{
		BusinessName: cfg.Business.Name,
		AutoReceipt:  cfg.Notify.AutoReceipt && cfg.WhatsApp.Enabled,
	}, log.Component("transaction"))

	// ── Trabajos en segundo plano ──
	workerCtx, stopWorkers := context.WithCancel(ctx)
	workers := kv.NewWorkerPool(adapters.consumer, notificationUC.Deliver, cfg.Notify.Workers, log.Component("notify-worker"))
	workers.Start(workerCtx)

	cronJobs, err := scheduler.New(scheduler.Config{
		Location:     loc,
		ReminderSpec: cfg.Notify.ReminderCron,
	}, notificationUC, store.InvoiceCounters, log.Component("scheduler"))
	if err != nil {
		log.Fatal().Err(err).Msg("configurar scheduler")
	}
	cronJobs.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
	}))
	app.Use(httpRouter.RequestLogger(log.Component("http"), prom))
	app.Use(httpRouter.RequestTimeout(cfg.HTTP.RequestTimeout))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Get("/api/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Otopia POS API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("archivo de Swagger no encontrado, UI deshabilitada")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         usecase.NewUserUseCase(store.Users, store.Outlets, store.Shifts),
		OutletUC:       usecase.NewOutletUseCase(store),
		CatalogUC:      usecase.NewCatalogUseCase(store),
		PromotionUC:    usecase.NewPromotionUseCase(store),
		FinanceUC:      usecase.NewFinanceUseCase(store),
		LandingUC:      usecase.NewLandingUseCase(store.Landing),
		ShiftUC:        shift.NewUseCase(store, exporter, prom, log.Component("shift")),
		CustomerUC:     billing.NewCustomerUseCase(store),
		TransactionUC:  transactionUC,
		MembershipUC:   membership.NewUseCase(store, log.Component("membership")),
		InventoryUC:    inventory.NewUseCase(store),
		DashboardUC:    appanalytics.NewDashboardUseCase(store.Analytics, adapters.cache, loc, log.Component("dashboard")),
		NotificationUC: notificationUC,
		Metrics:        prom.Handler(),
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("apagando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown HTTP")
	}
	cronJobs.Stop(shutdownCtx)
	stopWorkers()
	workers.Wait()
	if adapters.rdb != nil {
		if err := adapters.rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar Redis")
		}
	}
	closeStore()
	log.Info().Msg("servidor detenido")
}

// openStore abre el backend de persistencia configurado y aplica las migraciones.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.Store, func()) {
	if cfg.Store.Driver == "memory" {
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
		mem := memory.New()
		return mem.Repositories(), mem.Close
	}
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	if err := migrations.Apply(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	return postgres.NewStore(pool), pool.Close
}

func openKV(ctx context.Context, cfg *config.Config, log *logger.Logger) kvAdapters {
	if cfg.Redis.Enabled() {
		rdb, err := kv.NewRedis(ctx, cfg.Redis.URL)
		if err == nil {
			queue := kv.NewRedisQueue(rdb)
			return kvAdapters{
				idem:     kv.NewRedisIdempotency(rdb),
				cache:    kv.NewRedisCache(rdb),
				queue:    queue,
				consumer: queue,
				rdb:      rdb,
			}
		}
		log.Warn().Err(err).Msg("Redis no disponible, se usan adaptadores en proceso")
	}
	queue := kv.NewChanQueue(0)
	return kvAdapters{
		idem:     kv.NewLocalIdempotency(),
		cache:    kv.NewLocalCache(),
		queue:    queue,
		consumer: queue,
	}
}
