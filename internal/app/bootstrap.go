package app

import (
	"fmt"
	"strings"

	"talent-rank/internal/config"
	"talent-rank/internal/delivery/http/handler"
	"talent-rank/internal/delivery/http/middleware"
	"talent-rank/internal/delivery/http/routes"
	v1 "talent-rank/internal/delivery/http/routes/v1"
	"talent-rank/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		ws.NewHandler(c.Hub, c.Logger),
	)
	registry.Register(f, v1.Dependencies{
		Cfg:      c.Config,
		DB:       c.DB,
		Cache:    c.Cache,
		Notifier: ws.NewNotifier(c.Hub),
		Logger:   c.Logger,
	})

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
