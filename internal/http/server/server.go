package server

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/google/uuid"

	"videobelajar/docs"
	"videobelajar/internal/config"
	"videobelajar/internal/http/handlers"
	applog "videobelajar/internal/log"
	"videobelajar/internal/repos"
	"videobelajar/web"
)

// New builds the app with middleware and every route mounted.
func New(cfg config.Config, db *repos.DB) *fiber.App {
	engine := html.NewFileSystem(web.Templates(), ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: handlers.ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = cfg.BodyLimit

	// ---------- Middlewares ----------
	app.Use(recoverer.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{Output: log.Writer()}))
	app.Use(helmet.New(helmet.Config{CrossOriginEmbedderPolicy: "unsafe-none"}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: cfg.RateLimitWindow,
			LimitReached: func(c *fiber.Ctx) error {
				applog.Security(c, "rate.limit.hit", nil)
				return c.Status(fiber.StatusTooManyRequests).JSON(handlers.Envelope{Message: handlers.MsgTooManyRequests})
			},
		}))
	}

	// ---------- Handlers ----------
	docs.SwaggerInfo.Host = cfg.DocsHost
	deps := handlers.NewDeps(db, cfg)

	app.Get("/api-docs", deps.DocsHandler.UI)
	app.Get("/api-docs/doc.json", deps.DocsHandler.Spec)

	// Courses
	app.Get("/course", deps.CourseHandler.List)
	app.Get("/course/:id", deps.CourseHandler.Detail)
	app.Post("/course", deps.CourseHandler.Create)
	app.Put("/course/:id", deps.CourseHandler.Update)
	app.Delete("/course/:id", deps.CourseHandler.Delete)

	// Health & 404
	app.Get("/healthz", deps.HealthHandler.Check)
	app.Use(handlers.NotFound)

	return app
}
