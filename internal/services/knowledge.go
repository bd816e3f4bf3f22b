package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/logger"
)

const (
	knowledgeChunkSize    = 1000
	knowledgeChunkOverlap = 200
	knowledgeResultLimit  = 3
)

// KnowledgeBase grounds AI prompts in ingested career guides.
type KnowledgeBase interface {
	// Retrieve returns formatted guide excerpts for query, or "" when nothing
	// relevant is found or retrieval fails.
	Retrieve(ctx context.Context, query string) string
	Ingest(ctx context.Context, source, text string) (int, error)
}

type knowledgeBase struct {
	embedder Embedder
	store    QdrantService
	chunker  TextChunker
	logger   *zap.Logger
}

func NewKnowledgeBase(embedder Embedder, store QdrantService, chunker TextChunker, log *zap.Logger) KnowledgeBase {
	return &knowledgeBase{
		embedder: embedder,
		store:    store,
		chunker:  chunker,
		logger:   logger.OrNop(log),
	}
}

// Retrieve implements KnowledgeBase.
func (k *knowledgeBase) Retrieve(ctx context.Context, query string) string {
	embedding, err := k.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		k.logger.Warn("failed to embed knowledge query", zap.Error(err))
		return ""
	}

	results, err := k.store.SearchSimilar(ctx, embedding, knowledgeResultLimit)
	if err != nil {
		k.logger.Warn("failed to search knowledge base", zap.Error(err))
		return ""
	}

	return FormatKnowledgeContext(results)
}

// Ingest implements KnowledgeBase. Existing chunks for source are replaced.
// Chunks that fail to embed or store are skipped and logged.
func (k *knowledgeBase) Ingest(ctx context.Context, source, text string) (int, error) {
	chunks := k.chunker.ChunkText(text, knowledgeChunkSize, knowledgeChunkOverlap)
	if len(chunks) == 0 {
		return 0, errors.New("no text to ingest")
	}

	if err := k.store.DeleteSource(ctx, source); err != nil {
		return 0, err
	}

	stored := 0
	for i, chunk := range chunks {
		embedding, err := k.embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			k.logger.Warn("failed to embed chunk", zap.String("source", source), zap.Int("chunk", i+1), zap.Error(err))
			continue
		}

		chunkID := fmt.Sprintf("%s_chunk_%d", source, i)
		if err := k.store.UpsertChunk(ctx, chunkID, source, chunk, embedding); err != nil {
			k.logger.Warn("failed to store chunk", zap.String("source", source), zap.Int("chunk", i+1), zap.Error(err))
			continue
		}
		stored++
	}

	if stored == 0 {
		return 0, fmt.Errorf("none of %d chunks from %s were stored", len(chunks), source)
	}

	k.logger.Info("ingested guide", zap.String("source", source), zap.Int("chunks", stored), zap.Int("total", len(chunks)))
	return stored, nil
}
