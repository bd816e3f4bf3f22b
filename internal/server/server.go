package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/config"
	"alfredoptarigan/resume-ats/internal/handlers"
	applog "alfredoptarigan/resume-ats/internal/logger"
)

const appName = "Resume ATS API"

type Handlers struct {
	User       *handlers.UserHandler
	Catalog    *handlers.CatalogHandler
	Analysis   *handlers.AnalysisHandler
	Generation *handlers.GenerationHandler
}

var endpoints = []string{
	"POST /add-user",
	"GET /get-users",
	"GET /api/industries",
	"GET /api/job-titles/:industry",
	"GET /api/skills/:industry",
	"POST /api/analyze-resume-gap",
	"POST /api/ats-check",
	"POST /api/ats-check-upload",
	"POST /api/improve-bullets",
	"POST /api/extract-keywords",
	"POST /api/optimize-linkedin",
	"POST /api/generate-content",
	"POST /api/generate-cover-letter",
	"POST /api/chat",
	"POST /api/generate-resume",
	"GET /api/health",
}

// NewApp assembles the Fiber application with middleware and every route.
func NewApp(cfg config.ServerConfig, h Handlers, log *zap.Logger) *fiber.App {
	log = applog.OrNop(log)

	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.MaxUploadSize),
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     applog.AccessLogWriter(log),
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Post("/add-user", h.User.HandleAddUser)
	app.Get("/get-users", h.User.HandleGetUsers)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/industries", h.Catalog.HandleIndustries)
	api.Get("/job-titles/:industry", h.Catalog.HandleJobTitles)
	api.Get("/skills/:industry", h.Catalog.HandleSkills)

	api.Post("/analyze-resume-gap", h.Analysis.HandleAnalyzeGap)
	api.Post("/ats-check", h.Analysis.HandleAtsCheck)
	api.Post("/ats-check-upload", h.Analysis.HandleAtsCheckUpload)
	api.Post("/improve-bullets", h.Analysis.HandleImproveBullets)
	api.Post("/extract-keywords", h.Analysis.HandleExtractKeywords)
	api.Post("/optimize-linkedin", h.Analysis.HandleOptimizeLinkedin)

	api.Post("/generate-content", h.Generation.HandleGenerateContent)
	api.Post("/generate-cover-letter", h.Generation.HandleGenerateCoverLetter)
	api.Post("/chat", h.Generation.HandleChat)
	api.Post("/generate-resume", h.Generation.HandleGenerateResume)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   appName,
			"version":   config.Version,
			"endpoints": endpoints,
		})
	})

	return app
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed", zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  code,
		})
	}
}
