package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

type fakeParser struct {
	text string
	err  error
}

func (f *fakeParser) ExtractText(data []byte) (string, error) {
	return f.text, f.err
}

func (f *fakeParser) ExtractTextFromFile(path string) (string, error) {
	return f.text, f.err
}

type fakeStorage struct {
	saved []string
	err   error
}

func (f *fakeStorage) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, filename)
	return "uploads/" + filename, nil
}

func newAnalysisApp(parser services.PDFParserService, storage services.StorageService, maxSize int64) *fiber.App {
	h := NewAnalysisHandler(parser, storage, maxSize, zap.NewNop())
	app := fiber.New()
	app.Post("/api/analyze-resume-gap", h.HandleAnalyzeGap)
	app.Post("/api/ats-check", h.HandleAtsCheck)
	app.Post("/api/ats-check-upload", h.HandleAtsCheckUpload)
	app.Post("/api/improve-bullets", h.HandleImproveBullets)
	app.Post("/api/extract-keywords", h.HandleExtractKeywords)
	app.Post("/api/optimize-linkedin", h.HandleOptimizeLinkedin)
	return app
}

const sampleResume = `Jane Doe
jane@example.com | phone 555 0100
Summary
Backend engineer.
Experience
- Built payment APIs in Go serving 2M requests a day.
Education
BSc Computer Science
Skills
Go, PostgreSQL, Kubernetes
Projects
- Open source contributor to observability tooling used by several teams.`

func TestAnalyzeGap(t *testing.T) {
	t.Parallel()

	app := newAnalysisApp(&fakeParser{}, nil, 0)
	resp := doJSON(t, app, http.MethodPost, "/api/analyze-resume-gap", models.GapRequest{
		ResumeText:     "Experienced python developer",
		JobDescription: "python developer kubernetes",
	})
	expectStatus(t, resp, fiber.StatusOK)

	body := decodeBody(t, resp)
	analysis := body["analysis"].(map[string]any)
	if analysis["score"] != float64(66) {
		t.Fatalf("expected score 66, got %v", analysis["score"])
	}
	if analysis["total_jd_keywords"] != float64(3) || analysis["matched_count"] != float64(2) {
		t.Fatalf("unexpected counts: %v", analysis)
	}
	if body["status"] != "Good" || body["success"] != true {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAnalysisValidation(t *testing.T) {
	t.Parallel()

	app := newAnalysisApp(&fakeParser{}, nil, 0)

	tests := []struct {
		path string
		body any
	}{
		{path: "/api/analyze-resume-gap", body: models.GapRequest{ResumeText: "only resume"}},
		{path: "/api/ats-check", body: models.AtsCheckRequest{ResumeText: "   "}},
		{path: "/api/improve-bullets", body: models.ImproveBulletsRequest{}},
		{path: "/api/improve-bullets", body: models.ImproveBulletsRequest{Bullets: []string{"", "   "}}},
		{path: "/api/extract-keywords", body: models.ExtractKeywordsRequest{}},
		{path: "/api/optimize-linkedin", body: models.LinkedinRequest{Headline: "Engineer"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			resp := doJSON(t, app, http.MethodPost, tt.path, tt.body)
			expectStatus(t, resp, fiber.StatusBadRequest)
			if body := decodeBody(t, resp); body["error"] == "" || body["error"] == nil {
				t.Fatalf("expected an error message, got %v", body)
			}
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	t.Parallel()

	app := newAnalysisApp(&fakeParser{}, nil, 0)
	req := strings.NewReader("{not json")
	resp, err := app.Test(httptestRequest(http.MethodPost, "/api/ats-check", req), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	expectStatus(t, resp, fiber.StatusBadRequest)
}

func TestAtsCheck(t *testing.T) {
	t.Parallel()

	app := newAnalysisApp(&fakeParser{}, nil, 0)
	resp := doJSON(t, app, http.MethodPost, "/api/ats-check", models.AtsCheckRequest{ResumeText: "short"})
	expectStatus(t, resp, fiber.StatusOK)

	body := decodeBody(t, resp)
	if body["status"] != string(models.AtsNeedsImprovement) {
		t.Fatalf("unexpected status: %v", body["status"])
	}
	issues := body["issues"].([]any)
	if issues[0] != "Resume is too short (under 200 characters)" {
		t.Fatalf("unexpected first issue: %v", issues[0])
	}
}

func TestAtsCheckUpload(t *testing.T) {
	t.Parallel()

	storage := &fakeStorage{}
	app := newAnalysisApp(&fakeParser{text: sampleResume}, storage, 1024)

	resp := doUpload(t, app, "/api/ats-check-upload", "resume", "resume.pdf", []byte("%PDF-1.4 fake"))
	expectStatus(t, resp, fiber.StatusOK)

	body := decodeBody(t, resp)
	want := services.CheckATS(sampleResume)
	if body["score"] != float64(want.Score) || body["status"] != string(want.Status) {
		t.Fatalf("expected %d/%s, got %v/%v", want.Score, want.Status, body["score"], body["status"])
	}
	if len(storage.saved) != 1 || storage.saved[0] != "resume.pdf" {
		t.Fatalf("expected upload to be archived, got %v", storage.saved)
	}
}

func TestAtsCheckUploadArchiveFailureIsIgnored(t *testing.T) {
	t.Parallel()

	app := newAnalysisApp(&fakeParser{text: sampleResume}, &fakeStorage{err: errors.New("disk full")}, 0)

	resp := doUpload(t, app, "/api/ats-check-upload", "resume", "resume.pdf", []byte("%PDF-1.4 fake"))
	expectStatus(t, resp, fiber.StatusOK)
}

func TestAtsCheckUploadRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		parser   *fakeParser
		field    string
		filename string
		content  []byte
		want     string
	}{
		{name: "missing file", parser: &fakeParser{}, field: "cv", filename: "resume.pdf", content: []byte("%PDF"), want: "No file"},
		{name: "docx upload", parser: &fakeParser{}, field: "resume", filename: "resume.docx", content: []byte("PK"), want: "Only PDF files are accepted"},
		{name: "renamed text file", parser: &fakeParser{}, field: "resume", filename: "resume.pdf", content: []byte("plain text"), want: "Only PDF files are accepted"},
		{name: "too large", parser: &fakeParser{}, field: "resume", filename: "resume.pdf", content: []byte("%PDF" + strings.Repeat("x", 2048)), want: "Resume file too large. Max size: 1024 bytes"},
		{name: "unreadable", parser: &fakeParser{err: services.ErrInvalidPDF}, field: "resume", filename: "resume.pdf", content: []byte("%PDF-1.4"), want: services.ErrInvalidPDF.Error()},
		{name: "scanned image", parser: &fakeParser{err: services.ErrEmptyPDF}, field: "resume", filename: "resume.pdf", content: []byte("%PDF-1.4"), want: services.ErrEmptyPDF.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			storage := &fakeStorage{}
			app := newAnalysisApp(tt.parser, storage, 1024)

			resp := doUpload(t, app, "/api/ats-check-upload", tt.field, tt.filename, tt.content)
			expectStatus(t, resp, fiber.StatusBadRequest)
			if body := decodeBody(t, resp); body["error"] != tt.want {
				t.Fatalf("expected error %q, got %v", tt.want, body["error"])
			}
			if len(storage.saved) != 0 {
				t.Fatal("rejected uploads must not be archived")
			}
		})
	}
}

func TestImproveBulletsAndKeywords(t *testing.T) {
	t.Parallel()

	app := newAnalysisApp(&fakeParser{}, nil, 0)

	resp := doJSON(t, app, http.MethodPost, "/api/improve-bullets", models.ImproveBulletsRequest{
		Bullets: []string{"Led a team of 5 engineers", "  "},
	})
	expectStatus(t, resp, fiber.StatusOK)
	bullets := decodeBody(t, resp)["improved_bullets"].([]any)
	if len(bullets) != 1 || bullets[0] != "Led a team of 5 engineers" {
		t.Fatalf("unexpected bullets: %v", bullets)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/extract-keywords", models.ExtractKeywordsRequest{
		JobDescription: "Senior Golang engineer with Kubernetes experience",
	})
	expectStatus(t, resp, fiber.StatusOK)
	keywords := decodeBody(t, resp)["keywords"].([]any)
	if len(keywords) == 0 || keywords[0] != "senior" {
		t.Fatalf("unexpected keywords: %v", keywords)
	}
}

func TestOptimizeLinkedin(t *testing.T) {
	t.Parallel()

	app := newAnalysisApp(&fakeParser{}, nil, 0)
	resp := doJSON(t, app, http.MethodPost, "/api/optimize-linkedin", models.LinkedinRequest{
		Headline: "Senior Data Engineer",
		Summary:  "I build pipelines.",
	})
	expectStatus(t, resp, fiber.StatusOK)

	body := decodeBody(t, resp)
	if body["headline"] != "Senior Data Engineer | AI-Driven Professional | Open to Opportunities" {
		t.Fatalf("unexpected headline: %v", body["headline"])
	}
	if !strings.Contains(body["summary"].(string), "expertise in Data Engineer.") {
		t.Fatalf("unexpected summary: %v", body["summary"])
	}
}
