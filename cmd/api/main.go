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

	"github.com/fatec-votorantim/api-prestadores/internal/application/auth"
	"github.com/fatec-votorantim/api-prestadores/internal/application/usecase"
	"github.com/fatec-votorantim/api-prestadores/internal/infrastructure/mongodb"
	httpRouter "github.com/fatec-votorantim/api-prestadores/internal/interfaces/http"
	"github.com/fatec-votorantim/api-prestadores/pkg/config"
	"github.com/fatec-votorantim/api-prestadores/pkg/logger"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconectar do MongoDB")
		}
	}()
	db := mongodb.Database(client, cfg.DB)

	prestadorRepo := mongodb.NewPrestadorRepository(db)
	usuarioRepo := mongodb.NewUsuarioRepository(db)

	prestadorUC := usecase.NewPrestadorUseCase(prestadorRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.ExpMinutes,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "API de Prestadores",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PrestadorUC: prestadorUC,
		UsuarioUC:   usuarioUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		Version:     version,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
