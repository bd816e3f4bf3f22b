package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/logger"
)

const (
	sectionMaxTokens     = 500
	coverLetterMaxTokens = 800
	chatMaxTokens        = 300

	defaultJobTitle = "Professional"
)

// ContentService drafts resume text through the text generator. Generation
// never fails; the generator substitutes fallback text.
type ContentService interface {
	GenerateSection(ctx context.Context, section, jobTitle string) string
	GenerateCoverLetter(ctx context.Context, company, jobTitle, fullName string, skills []string) string
	Chat(ctx context.Context, message string) string
}

type contentService struct {
	generator TextGenerator
	prompts   *PromptBuilder
	knowledge KnowledgeBase
	logger    *zap.Logger
}

// NewContentService wires the generator with an optional knowledge base; pass
// nil when Qdrant is not configured.
func NewContentService(generator TextGenerator, knowledge KnowledgeBase, log *zap.Logger) ContentService {
	return &contentService{
		generator: generator,
		prompts:   NewPromptBuilder(),
		knowledge: knowledge,
		logger:    logger.OrNop(log),
	}
}

// GenerateSection implements ContentService.
func (s *contentService) GenerateSection(ctx context.Context, section, jobTitle string) string {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		jobTitle = defaultJobTitle
	}

	guidance := s.retrieve(ctx, s.prompts.BuildKnowledgeQuery("section", section))
	prompt := s.prompts.BuildSectionPrompt(section, jobTitle, guidance)

	return s.generator.Generate(ctx, prompt, sectionMaxTokens)
}

// GenerateCoverLetter implements ContentService.
func (s *contentService) GenerateCoverLetter(ctx context.Context, company, jobTitle, fullName string, skills []string) string {
	guidance := s.retrieve(ctx, s.prompts.BuildKnowledgeQuery("cover_letter", jobTitle))
	prompt := s.prompts.BuildCoverLetterPrompt(company, jobTitle, strings.TrimSpace(fullName), cleanList(skills), guidance)

	return s.generator.Generate(ctx, prompt, coverLetterMaxTokens)
}

// Chat implements ContentService.
func (s *contentService) Chat(ctx context.Context, message string) string {
	guidance := s.retrieve(ctx, s.prompts.BuildKnowledgeQuery("chat", message))
	prompt := s.prompts.BuildChatPrompt(message, guidance)

	return s.generator.Generate(ctx, prompt, chatMaxTokens)
}

func (s *contentService) retrieve(ctx context.Context, query string) string {
	if s.knowledge == nil {
		return ""
	}

	guidance := s.knowledge.Retrieve(ctx, query)
	if guidance != "" {
		s.logger.Debug("using knowledge base guidance", zap.Int("guidance_length", len(guidance)))
	}
	return guidance
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
