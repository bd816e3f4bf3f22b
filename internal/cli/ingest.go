package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/services"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Load career guide PDFs into the Qdrant knowledge base",
	Long: `Extracts text from every PDF in dir (default ./career_guides), splits it into
overlapping chunks, embeds them with Gemini and upserts them into the
configured Qdrant collection. Re-ingesting a file replaces its chunks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "./career_guides"
		if len(args) == 1 {
			dir = args[0]
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return ingest(ctx, dir)
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func ingest(ctx context.Context, dir string) error {
	log, cfg, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Gemini.APIKey == "" {
		return errors.New("GEMINI_API_KEY is required for ingestion")
	}
	if cfg.Qdrant.URL == "" {
		return errors.New("QDRANT_URL is required for ingestion")
	}

	files, err := guideFiles(dir)
	if err != nil {
		return err
	}

	gemini, err := services.NewGeminiService(ctx, cfg.Gemini, log)
	if err != nil {
		return fmt.Errorf("initializing gemini: %w", err)
	}

	store, err := connectQdrant(ctx, cfg.Qdrant)
	if err != nil {
		return fmt.Errorf("initializing qdrant: %w", err)
	}

	kb := services.NewKnowledgeBase(gemini, store, services.NewTextChunker(), log)
	parser := services.NewPDFParserService()

	succeeded, failed := 0, 0
	for _, path := range files {
		source := guideSource(path)
		log := log.With(zap.String("source", source), zap.String("path", path))

		text, err := parser.ExtractTextFromFile(path)
		if err != nil {
			log.Error("failed to extract text", zap.Error(err))
			failed++
			continue
		}

		chunks, err := kb.Ingest(ctx, source, text)
		if err != nil {
			log.Error("failed to ingest guide", zap.Error(err))
			failed++
			continue
		}

		log.Info("guide ingested", zap.Int("characters", len(text)), zap.Int("chunks", chunks))
		succeeded++
	}

	log.Info("ingestion complete", zap.Int("succeeded", succeeded), zap.Int("failed", failed))

	if succeeded == 0 {
		return fmt.Errorf("no guides ingested from %s", dir)
	}
	return nil
}

// guideFiles lists the PDFs directly inside dir in name order.
func guideFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading guide directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", dir)
	}
	return files, nil
}

// guideSource names a guide's chunks after its file, e.g. "Cover Letters.pdf"
// becomes "cover_letters".
func guideSource(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}
