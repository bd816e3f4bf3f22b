package services

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type recordingGenerator struct {
	prompts   []string
	maxTokens []int
	reply     string
}

func (r *recordingGenerator) Generate(ctx context.Context, prompt string, maxTokens int) string {
	r.prompts = append(r.prompts, prompt)
	r.maxTokens = append(r.maxTokens, maxTokens)
	return r.reply
}

type stubKnowledge struct {
	guidance string
	queries  []string
}

func (s *stubKnowledge) Retrieve(ctx context.Context, query string) string {
	s.queries = append(s.queries, query)
	return s.guidance
}

func (s *stubKnowledge) Ingest(ctx context.Context, source, text string) (int, error) {
	return 0, nil
}

func TestGenerateSectionDefaultsJobTitle(t *testing.T) {
	t.Parallel()

	gen := &recordingGenerator{reply: "Seasoned engineer."}
	svc := NewContentService(gen, nil, zap.NewNop())

	got := svc.GenerateSection(context.Background(), "summary", "  ")
	if got != "Seasoned engineer." {
		t.Fatalf("unexpected content: %q", got)
	}
	if !strings.Contains(gen.prompts[0], "Write a summary for a Professional.") {
		t.Fatalf("prompt missing default job title: %q", gen.prompts[0])
	}
	if gen.maxTokens[0] != sectionMaxTokens {
		t.Fatalf("expected %d max tokens, got %d", sectionMaxTokens, gen.maxTokens[0])
	}
	if strings.Contains(gen.prompts[0], "REFERENCE GUIDANCE") {
		t.Fatal("prompt should not carry guidance without a knowledge base")
	}
}

func TestGenerateCoverLetterUsesGuidance(t *testing.T) {
	t.Parallel()

	gen := &recordingGenerator{reply: "Dear hiring manager"}
	kb := &stubKnowledge{guidance: "--- Guide 1 (Score: 0.91) ---\nName the company."}
	svc := NewContentService(gen, kb, zap.NewNop())

	svc.GenerateCoverLetter(context.Background(), "Acme", "Data Analyst", " Jane Doe ", []string{"SQL", " ", "Python"})

	prompt := gen.prompts[0]
	for _, want := range []string{
		"Data Analyst position at Acme",
		"The applicant's name is Jane Doe",
		"Highlight these skills: SQL, Python.",
		"REFERENCE GUIDANCE:\n--- Guide 1",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if gen.maxTokens[0] != coverLetterMaxTokens {
		t.Fatalf("expected %d max tokens, got %d", coverLetterMaxTokens, gen.maxTokens[0])
	}
	if kb.queries[0] != "Cover letter advice for Data Analyst" {
		t.Fatalf("unexpected knowledge query %q", kb.queries[0])
	}
}

func TestChatReturnsGeneratorText(t *testing.T) {
	t.Parallel()

	gen := &recordingGenerator{reply: FallbackText}
	kb := &stubKnowledge{}
	svc := NewContentService(gen, kb, zap.NewNop())

	if got := svc.Chat(context.Background(), "How long should my resume be?"); got != FallbackText {
		t.Fatalf("expected fallback text, got %q", got)
	}
	if !strings.Contains(gen.prompts[0], "Career coach response to: How long should my resume be?") {
		t.Fatalf("unexpected chat prompt: %q", gen.prompts[0])
	}
	if gen.maxTokens[0] != chatMaxTokens {
		t.Fatalf("expected %d max tokens, got %d", chatMaxTokens, gen.maxTokens[0])
	}
	if kb.queries[0] != "How long should my resume be?" {
		t.Fatalf("chat should query the knowledge base with the raw message, got %q", kb.queries[0])
	}
}
