package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/client-management/docs"
	"github.com/jhoicas/client-management/internal/application/customer"
	"github.com/jhoicas/client-management/internal/infrastructure/cache"
	"github.com/jhoicas/client-management/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/client-management/internal/interfaces/http"
	"github.com/jhoicas/client-management/pkg/config"
	"github.com/jhoicas/client-management/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
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

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("applied", applied).Msg("migraciones al día")
	}

	cacheCfg := cache.DefaultConfig()
	cacheCfg.TTL = cfg.Cache.TTL
	cacheCfg.Capacity = cfg.Cache.Capacity
	cacheCfg.NumShards = cfg.Cache.Shards
	cacheCfg.EvictionPercentage = cfg.Cache.EvictionPct
	listCache, err := cache.NewCustomerListCache(cacheCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("caché de listados")
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	customerUC := customer.NewUseCase(customerRepo, txRunner, listCache,
		customer.WithLogger(log.Component("customer")),
	)

	httpLog := log.Component("http")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(httpLog),
	})

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Swagger.Enabled {
		if _, err := os.Stat(swaggerFile); err != nil {
			log.Warn().Err(err).Msg("swagger habilitado pero sin docs/swagger.json; /docs no se sirve")
		} else {
			docs.SwaggerInfo.Host = cfg.HTTP.Addr()
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: swaggerFile,
				Path:     "docs",
				Title:    docs.SwaggerInfo.Title,
			}))
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		ServiceName: cfg.App.Name,
		HealthCheck: pool.Ping,
		Logger:      httpLog,
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
