package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/haulbid/admin-console/internal/auth"
	"github.com/haulbid/admin-console/internal/cache"
	"github.com/haulbid/admin-console/internal/config"
	"github.com/haulbid/admin-console/internal/console"
	"github.com/haulbid/admin-console/internal/middleware"
	"github.com/haulbid/admin-console/internal/platform"
	"github.com/haulbid/admin-console/internal/session"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all console routes.
func Setup(app *fiber.App, d Deps) error {
	// Sessions and the query cache fall back to process memory in dev, but a
	// deployed console needs Redis so sessions survive restarts.
	if !d.Cfg.IsDev() && d.Cache == nil {
		return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Backing stores
	var sessions session.Repository
	var store cache.Store
	if d.Cache != nil {
		sessions = session.NewRedisRepository(d.Cache)
		store = cache.NewRedisStore(d.Cache)
	} else {
		sessions = session.NewMemoryRepository()
		store = cache.NewMemoryStore()
	}

	// Services and handlers
	client := platform.New(d.Cfg.APIBaseURL, d.Cfg.UpstreamTimeout)
	queries := cache.NewQueries(store, d.Cfg.CacheTTL, d.Logger)
	authSvc := auth.NewService(client, sessions, d.Cfg.SessionTTL)
	authHandler := auth.NewHandler(d.Cfg, authSvc, d.Logger)
	pages := console.NewPages(client, queries, d.Logger)

	// Public routes
	rateLimiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRateLimit)
	app.Get("/admin/login", authHandler.LoginPage)
	app.Post("/admin/login", rateLimiter, authHandler.Login)
	app.Post("/admin/logout", authHandler.Logout)

	// Protected routes
	guard := middleware.RequireSession(d.Cfg, sessions, d.Logger)
	admin := app.Group("/admin", guard)
	admin.Get("/dashboard", pages.Dashboard)
	admin.Get("/users", pages.Users)
	admin.Get("/users/:id", pages.UserDetail)
	admin.Post("/users/:id/status", pages.UpdateUserStatus)
	admin.Get("/transporters", pages.Transporters)
	admin.Get("/transporters/:id", pages.TransporterDetail)
	admin.Post("/transporters/:id/status", pages.UpdateTransporterStatus)
	admin.Get("/shipments", pages.Shipments)
	admin.Get("/shipments/:id", pages.ShipmentDetail)
	admin.Get("/admins", pages.Admins)
	admin.Post("/admins", pages.RegisterAdmin)
	admin.Get("/requests", pages.Requests)
	admin.Post("/requests/:id/status", pages.UpdateRequestStatus)
	admin.Get("/settings", pages.Settings)

	// Entry points land on the dashboard; the guard bounces signed-out
	// visitors to the login page from there.
	toDashboard := func(c *fiber.Ctx) error {
		return c.Redirect("/admin/dashboard", http.StatusSeeOther)
	}
	app.Get("/", toDashboard)
	app.Get("/admin", toDashboard)

	app.Use(pages.NotFound)

	return nil
}
