package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// multipartOverhead leaves room for form boundaries around an upload of the
// maximum size.
const multipartOverhead = 1 << 20

type AppConfig struct {
	AllowOrigins   []string
	MaxUploadBytes int64
}

// NewApp wires middleware and routes onto a fiber app.
func NewApp(h *Handler, cfg AppConfig) *fiber.App {
	origins := "*"
	if len(cfg.AllowOrigins) > 0 {
		origins = strings.Join(cfg.AllowOrigins, ",")
	}

	app := fiber.New(fiber.Config{
		AppName:               "resume-builder",
		ErrorHandler:          ErrorHandler,
		BodyLimit:             int(cfg.MaxUploadBytes) + multipartOverhead,
		DisableStartupMessage: true,
	})

	app.Use(RequestID())
	app.Use(AccessLog())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		ExposeHeaders: strings.Join([]string{fiber.HeaderContentDisposition, fiber.HeaderXRequestID, HeaderEnrichmentFallback}, ","),
	}))

	api := app.Group("/api")
	api.Get("/health", h.Health)
	api.Get("/templates", h.ListTemplates)
	api.Get("/templates/:id/preview", h.PreviewTemplate)
	api.Post("/generate-pdf", h.GeneratePDF)
	api.Post("/upload", h.Upload)
	api.Post("/ai/enhance", h.Enhance)
	api.Post("/ats-score", h.Score)
	api.Post("/feedback", h.Feedback)

	return app
}
