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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/Activos-api/docs"
	"github.com/jhoicas/Activos-api/internal/application/attachment"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/reporting"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	infraexcel "github.com/jhoicas/Activos-api/internal/infrastructure/excel"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Activos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Activos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Activos-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Activos-api/internal/interfaces/http"
	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

// persistence repositorios y transacciones del driver elegido.
type persistence struct {
	branches    repository.BranchRepository
	warehouses  repository.WarehouseRepository
	assets      repository.FixedAssetRepository
	attachments repository.AttachmentRepository
	users       repository.UserRepository
	stats       repository.StatsRepository
	tx          usecase.TxRunner
	close       func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := openPersistence(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer db.close()

	store, err := storage.NewFSStore(cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.Dir).Msg("almacén de adjuntos")
	}

	branchUC := usecase.NewBranchUseCase(db.branches, db.warehouses)
	warehouseUC := usecase.NewWarehouseUseCase(db.warehouses, db.branches)
	assetUC := usecase.NewAssetUseCase(db.tx, db.assets, db.warehouses, db.attachments, store)
	attachmentUC := attachment.NewUseCase(db.tx, db.assets, db.attachments, store)
	reportUC := reporting.NewUseCase(
		db.assets, db.warehouses, db.branches,
		infrapdf.NewMarotoLabelGenerator(), infraexcel.NewAssetExporter(),
	)
	authUC := auth.NewAuthUseCase(db.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(db.users)
	statsUC := usecase.NewStatsUseCase(db.stats)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		BodyLimit:    int(cfg.Storage.MaxUploadBytes),
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.HTTP.CORSOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Disposition, X-Content-SHA256",
	}))
	app.Use(httpRouter.RequestLogger())

	var metrics *httpRouter.Metrics
	if cfg.App.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = httpRouter.NewMetrics(reg)
		app.Use(metrics.Middleware())
	}

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Activos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BranchUC:     branchUC,
		WarehouseUC:  warehouseUC,
		AssetUC:      assetUC,
		AttachmentUC: attachmentUC,
		ReportUC:     reportUC,
		AuthUC:       authUC,
		UserUC:       userUC,
		StatsUC:      statsUC,
		JWTSecret:    cfg.JWT.Secret,
		Metrics:      metrics,
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

func openPersistence(ctx context.Context, cfg config.DBConfig) (*persistence, error) {
	if cfg.Driver == config.DriverMemory {
		mem := memory.NewDB()
		r := mem.Repos()
		return &persistence{
			branches:    r.Branches,
			warehouses:  r.Warehouses,
			assets:      r.Assets,
			attachments: r.Attachments,
			users:       r.Users,
			stats:       r.Stats,
			tx:          mem,
			close:       func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &persistence{
		branches:    postgres.NewBranchRepository(pool),
		warehouses:  postgres.NewWarehouseRepository(pool),
		assets:      postgres.NewFixedAssetRepository(pool),
		attachments: postgres.NewAttachmentRepository(pool),
		users:       postgres.NewUserRepository(pool),
		stats:       postgres.NewStatsRepository(pool),
		tx:          postgres.NewTxRunner(pool),
		close:       pool.Close,
	}, nil
}
