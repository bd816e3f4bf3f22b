package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"alfredoptarigan/resume-ats/internal/config"
	"alfredoptarigan/resume-ats/internal/handlers"
	"alfredoptarigan/resume-ats/internal/repositories"
	"alfredoptarigan/resume-ats/internal/server"
	"alfredoptarigan/resume-ats/internal/services"
)

const startupTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, cfg, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting the resume-ats api", zap.String("version", config.Version), zap.String("env", cfg.Server.Env))

	userRepo := repositories.NewUserRepository(openDatabase(cfg, log), cfg.Database.UsersTable)

	gemini, err := services.NewGeminiService(ctx, cfg.Gemini, log)
	if err != nil {
		return fmt.Errorf("initializing gemini: %w", err)
	}

	content := services.NewContentService(gemini, openKnowledgeBase(ctx, cfg, gemini, log), log)

	var storage services.StorageService
	if s, err := services.NewStorageService(ctx, cfg.Storage); err != nil {
		log.Warn("upload archive disabled", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	} else {
		storage = s
	}

	app := server.NewApp(cfg.Server, server.Handlers{
		User:       handlers.NewUserHandler(userRepo, cfg.Database.Timeout, log),
		Catalog:    handlers.NewCatalogHandler(services.NewCatalogService()),
		Analysis:   handlers.NewAnalysisHandler(services.NewPDFParserService(), storage, cfg.Server.MaxUploadSize, log),
		Generation: handlers.NewGenerationHandler(content, services.NewResumeRenderer(), log),
	}, log)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// openDatabase returns nil when the store is not configured or unreachable;
// the user endpoints then answer with 500 while everything else keeps working.
func openDatabase(cfg *config.Config, log *zap.Logger) *gorm.DB {
	if !cfg.Database.Enabled() {
		log.Warn("database not configured, user endpoints are disabled")
		return nil
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Error("failed to initialize database", zap.Error(err))
		return nil
	}

	log.Info("database connected", zap.String("users_table", cfg.Database.UsersTable))
	return db
}

// openKnowledgeBase returns nil unless Qdrant is configured and reachable.
func openKnowledgeBase(ctx context.Context, cfg *config.Config, gemini services.GeminiService, log *zap.Logger) services.KnowledgeBase {
	if cfg.Qdrant.URL == "" {
		log.Info("qdrant not configured, prompts run without career guide context")
		return nil
	}
	if cfg.Gemini.APIKey == "" {
		log.Warn("qdrant configured without a gemini api key, knowledge base disabled")
		return nil
	}

	store, err := connectQdrant(ctx, cfg.Qdrant)
	if err != nil {
		log.Warn("knowledge base disabled", zap.String("collection", cfg.Qdrant.Collection), zap.Error(err))
		return nil
	}

	log.Info("knowledge base ready", zap.String("collection", cfg.Qdrant.Collection))
	return services.NewKnowledgeBase(gemini, store, services.NewTextChunker(), log)
}

func connectQdrant(ctx context.Context, cfg config.QdrantConfig) (services.QdrantService, error) {
	store, err := services.NewQdrantService(cfg.URL, cfg.APIKey, cfg.Collection)
	if err != nil {
		return nil, err
	}

	initCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if err := store.InitCollection(initCtx); err != nil {
		return nil, err
	}

	return store, nil
}
