package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/pos-ventas/internal/infrastructure/memoria"
	httpRouter "github.com/jhoicas/pos-ventas/internal/interfaces/http"
	"github.com/jhoicas/pos-ventas/pkg/config"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

// Backend de desarrollo: sirve el mismo contrato REST que el backend real,
// con repositorios en memoria y datos de demostración.
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
		Msg("iniciando backend de desarrollo")

	if cfg.JWT.Secret == "" {
		// Secreto de desarrollo: el stub nunca corre en producción.
		cfg.JWT.Secret = "stub-dev-secret"
		log.Warn().Msg("JWT_SECRET no definido; se usa el secreto de desarrollo")
	}

	repos := memoria.NewRepos()
	if err := repos.Seed(); err != nil {
		log.Fatal().Err(err).Msg("carga de datos de demostración")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Repos: repos,
		JWT: httpRouter.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
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

	log.Info().Msg("backend detenido")
}
