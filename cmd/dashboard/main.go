package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/application/auth"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/application/chat"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/application/dashboard"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/insurai"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/session"
	httpRouter "github.com/Akshayathangaraj/InsurAI-Infosys/internal/interfaces/http"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/config"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	rdb := session.NewClient(cfg.Redis)
	defer rdb.Close()

	sessions := session.New(rdb, cfg.Session.TTL())
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := sessions.Ping(pingCtx); err != nil {
		cancelPing()
		log.Fatal().Err(err).Msg("redis connection")
	}
	cancelPing()

	api := insurai.New(cfg.API, log)

	authUC := auth.New(api, sessions, log)
	adminUC := dashboard.NewAdmin(api, log)
	employeeUC := dashboard.NewEmployee(api, log)
	agentUC := dashboard.NewAgent(api, log)
	chatUC := chat.New(api, log)

	engine := html.New("./web/templates", ".html")
	engine.AddFunc("docURL", api.DocumentURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Static("/static", "./web/static")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	guard := httpRouter.NewGuard(sessions, cfg.Session.CookieName)
	httpRouter.SetupRoutes(app, httpRouter.Handlers{
		Guard:    guard,
		Auth:     httpRouter.NewAuthHandler(authUC, guard),
		Admin:    httpRouter.NewAdminHandler(adminUC, guard),
		Employee: httpRouter.NewEmployeeHandler(employeeUC, guard),
		Agent:    httpRouter.NewAgentHandler(agentUC, guard),
		Chat:     httpRouter.NewChatHandler(chatUC),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
