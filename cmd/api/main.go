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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/comandas-web/internal/application/auth"
	"github.com/jhoicas/comandas-web/internal/application/usecase"
	"github.com/jhoicas/comandas-web/internal/infrastructure/imaging"
	infrapdf "github.com/jhoicas/comandas-web/internal/infrastructure/pdf"
	"github.com/jhoicas/comandas-web/internal/infrastructure/postgres"
	"github.com/jhoicas/comandas-web/internal/infrastructure/proxy"
	httpRouter "github.com/jhoicas/comandas-web/internal/interfaces/http"
	"github.com/jhoicas/comandas-web/pkg/config"
	"github.com/jhoicas/comandas-web/pkg/logger"
)

// bodyLimit admite fotos en data URI dentro del JSON del producto.
const bodyLimit = 12 << 20

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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	client, err := proxy.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log.Component("proxy"))
	if err != nil {
		log.Fatal().Err(err).Msg("cliente del backend")
	}
	clienteRepo := proxy.NewClienteRepository(client)
	funcionarioRepo := proxy.NewFuncionarioRepository(client)
	produtoRepo := proxy.NewProdutoRepository(client)

	// Fotos: normalización al guardar y miniaturas para el PDF.
	images := imaging.NewService(cfg.Images.MaxSide, client)
	reports := infrapdf.NewMarotoReportGenerator(cfg.App.Name, images, log.Component("pdf"))

	clienteUC := usecase.NewClienteUseCase(clienteRepo, reports, log.Component("clientes"))
	funcionarioUC := usecase.NewFuncionarioUseCase(funcionarioRepo, reports, log.Component("funcionarios"))
	produtoUC := usecase.NewProdutoUseCase(produtoRepo, images, reports, log.Component("produtos"))

	local, err := auth.NewLocalCredential(cfg.Local.Username, cfg.Local.Password, cfg.Local.PasswordHash)
	if err != nil {
		log.Fatal().Err(err).Msg("credencial local")
	}
	if local == nil {
		log.Warn().Msg("credencial local deshabilitada; solo login por backend")
	}
	authUC := auth.NewAuthUseCase(funcionarioRepo, local, log.Component("auth"))

	// Sesiones: memoria por defecto; PostgreSQL si hay más de una instancia.
	var sessionStorage fiber.Storage
	if cfg.Session.DatabaseURL != "" {
		pool, err := postgres.NewPool(context.Background(), cfg.Session.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL (sesiones)")
		}
		defer pool.Close()
		pgStorage, err := postgres.NewSessionStorage(context.Background(), pool, 10*time.Minute, log.Component("sessions"))
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento de sesiones")
		}
		defer pgStorage.Close()
		sessionStorage = pgStorage
	}
	sessions := httpRouter.NewSessionStore(httpRouter.SessionOptions{
		CookieName: cfg.Session.CookieName,
		Idle:       cfg.Session.Idle,
		Secure:     cfg.Session.Secure,
		Storage:    sessionStorage,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    bodyLimit,
		ErrorHandler: httpRouter.ErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.App.SwaggerFile,
		Path:     "docs",
		Title:    "Comandas Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ClienteUC:      clienteUC,
		FuncionarioUC:  funcionarioUC,
		ProdutoUC:      produtoUC,
		Sessions:       sessions,
		LoginRateLimit: cfg.HTTP.LoginRateLimit,
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
