package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/construdata/pedidos-api/internal/application/auth"
	"github.com/construdata/pedidos-api/internal/application/usecase"
	infrapdf "github.com/construdata/pedidos-api/internal/infrastructure/pdf"
	"github.com/construdata/pedidos-api/internal/infrastructure/postgres"
	httpRouter "github.com/construdata/pedidos-api/internal/interfaces/http"
	"github.com/construdata/pedidos-api/pkg/config"
	"github.com/construdata/pedidos-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	personaRepo := postgres.NewPersonaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	proyectoRepo := postgres.NewProyectoRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	transporteRepo := postgres.NewTransporteRepository(pool)
	oficinaRepo := postgres.NewOficinaRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	envioRepo := postgres.NewEnvioRepository(pool)
	codigoRepo := postgres.NewCodigoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, personaRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo)
	pedidoPDFUC := usecase.NewPedidoPDFUseCase(pedidoRepo, infrapdf.NewMarotoHojaPedido())
	catalogoUC := usecase.NewCatalogoUseCase(
		proyectoRepo, productoRepo, transporteRepo, oficinaRepo, personaRepo, usuarioRepo,
	)
	envioUC := usecase.NewEnvioUseCase(envioRepo)
	codigoUC := usecase.NewCodigoUseCase(codigoRepo)

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
		Title:    "Pedidos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		PedidoUC:   pedidoUC,
		PedidoPDF:  pedidoPDFUC,
		CatalogoUC: catalogoUC,
		EnvioUC:    envioUC,
		CodigoUC:   codigoUC,
		JWTSecret:  cfg.JWT.Secret,
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
