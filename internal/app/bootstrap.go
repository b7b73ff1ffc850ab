package app

import (
	"fmt"
	"strings"
	"time"

	"kindred/internal/config"
	"kindred/internal/delivery/http/handler"
	"kindred/internal/delivery/http/middleware"
	"kindred/internal/delivery/http/routes"
	"kindred/internal/pkg/jwt"
	"kindred/internal/repository"
	"kindred/internal/usecase"
	"kindred/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	container *Container
}

// Bootstrap wires the whole service: stores, usecases, websocket hub and
// the HTTP surface. The returned cleanup closes the container.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())

	profileRepo := repository.NewPostgresProfileRepository(c.DB)
	scoreRepo := repository.NewPostgresScoreRepository(c.DB)

	sink := usecase.NewAsyncWriteSink(c.Logger, 5*time.Second)
	compatUC := usecase.NewCompatUsecase(scoreRepo, c.Cache, sink, c.Logger, cfg.Scores.FreshFor, cfg.Scores.PrewarmWorkers)

	hub := ws.NewHub(c.Logger)
	go hub.Run()

	discoveryUC := usecase.NewDiscoveryUsecase(profileRepo, compatUC, ws.NewNotifier(hub))

	auth := middleware.NewAuthMiddleware(jwt.NewHMACService(cfg.JWT.AccessSecret))

	registry := routes.NewRegistry(routes.Deps{
		Health:    handler.NewHealthHandler(c.DB, c.Cache),
		Auth:      auth,
		Discovery: discoveryUC,
		Compat:    compatUC,
		WS:        ws.NewHandler(hub, c.Logger),
	})
	registry.Register(f)

	app := &App{Fiber: f, container: c}
	return app, c.Close, nil
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
