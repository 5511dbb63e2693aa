package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jcondori/kardex-api/internal/application/auth"
	"github.com/jcondori/kardex-api/internal/application/inventario"
	"github.com/jcondori/kardex-api/internal/application/transferencia"
	"github.com/jcondori/kardex-api/internal/application/usecase"
	"github.com/jcondori/kardex-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcondori/kardex-api/internal/interfaces/http"
	"github.com/jcondori/kardex-api/pkg/config"
	"github.com/jcondori/kardex-api/pkg/logger"
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

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	almacenRepo := postgres.NewAlmacenRepository(pool)
	saldoRepo := postgres.NewSaldoRepository(pool)
	kardexRepo := postgres.NewKardexRepository(pool)
	trfRepo := postgres.NewTransferenciaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registrarMovimientoUC := inventario.NewRegistrarMovimientoUseCase(txRunner, productoRepo, almacenRepo)
	consultaStockUC := inventario.NewConsultaStockUseCase(saldoRepo, kardexRepo, productoRepo, almacenRepo)
	transferenciaUC := transferencia.NewTransferenciaUseCase(txRunner, trfRepo, productoRepo, almacenRepo, registrarMovimientoUC)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	almacenUC := usecase.NewAlmacenUseCase(almacenRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kardex API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegistrarMovimiento: registrarMovimientoUC,
		ConsultaStock:       consultaStockUC,
		Transferencias:      transferenciaUC,
		ProductoUC:          productoUC,
		AlmacenUC:           almacenUC,
		AuthUC:              authUC,
		JWTSecret:           cfg.JWT.Secret,
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
