package server

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"

	"github.com/haulbid/admin-console/internal/config"
	"github.com/haulbid/admin-console/internal/console"
	"github.com/haulbid/admin-console/internal/routes"
	"github.com/haulbid/admin-console/web"
)

// Server wraps the Fiber application and shared dependencies.
type Server struct {
	app   *fiber.App
	cfg   config.Config
	cache *redis.Client
}

// New instantiates the HTTP server with the embedded view engine and delegates
// route wiring to routes.Setup.
func New(cfg config.Config, cache *redis.Client, logger *slog.Logger) (*Server, error) {
	views, err := viewEngine()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		Views:        views,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	if err := routes.Setup(app, routes.Deps{Cfg: cfg, Cache: cache, Logger: logger}); err != nil {
		return nil, err
	}

	return &Server{app: app, cfg: cfg, cache: cache}, nil
}

func viewEngine() (*html.Engine, error) {
	templates, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	engine := html.NewFileSystem(http.FS(templates), ".html")
	engine.AddFunc("badge", func(status any) string {
		return console.BadgeClass(fmt.Sprint(status))
	})
	engine.AddFunc("datetime", func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("Jan 2, 2006 15:04")
	})
	engine.AddFunc("money", func(amount float64) string {
		return fmt.Sprintf("$%.2f", amount)
	})
	return engine, nil
}

// Listen starts the HTTP server.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Address())
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
