package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alfredoptarigan/resume-ats/internal/models"
)

func TestExtractTextRejectsNonPDF(t *testing.T) {
	t.Parallel()

	parser := NewPDFParserService()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "plain text", data: []byte("just a resume in plain text")},
		{name: "truncated header", data: []byte("%PDF-1.4\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := parser.ExtractText(tt.data); !errors.Is(err, ErrInvalidPDF) {
				t.Fatalf("expected ErrInvalidPDF, got %v", err)
			}
		})
	}
}

func TestExtractTextFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := NewPDFParserService().ExtractTextFromFile(filepath.Join(t.TempDir(), "missing.pdf"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestIsPDF(t *testing.T) {
	t.Parallel()

	if !IsPDF([]byte("%PDF-1.7 ...")) {
		t.Fatal("expected PDF header to be detected")
	}
	if IsPDF([]byte("PK\x03\x04")) {
		t.Fatal("zip archive must not be detected as PDF")
	}
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	got := CleanText("  Jane Doe \n\n\n  Engineer  \n ")
	if got != "Jane Doe\nEngineer" {
		t.Fatalf("unexpected cleaned text: %q", got)
	}
}

func TestExtractTextFromRenderedResume(t *testing.T) {
	t.Parallel()

	data, err := NewResumeRenderer().Render(models.ResumeProfile{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Location: "Austin, TX",
		Summary:  "Backend engineer who builds reliable payment and billing systems for growing teams.",
		Skills:   []string{"Go", "PostgreSQL", "Kubernetes"},
		Experiences: []models.Experience{
			{JobTitle: "Senior Engineer", Company: "Acme", Description: "Led the billing migration to Go, cutting latency by 40%."},
			{JobTitle: "Engineer", Company: "Globex", Description: "Built an event pipeline processing 2 million orders a day."},
		},
		Educations: []models.Education{{Degree: "BSc Computer Science", Institution: "UT Austin"}},
	})
	if err != nil {
		t.Fatalf("rendering resume: %v", err)
	}

	text, err := NewPDFParserService().ExtractText(data)
	if err != nil {
		t.Fatalf("extracting text: %v", err)
	}

	// Word spacing depends on how the PDF positions glyphs, so compare
	// without whitespace.
	flat := strings.ToLower(strings.Join(strings.Fields(text), ""))
	for _, want := range []string{"janedoe", "jane@example.com", "experience", "education", "skills"} {
		if !strings.Contains(flat, want) {
			t.Fatalf("extracted text is missing %q: %q", want, text)
		}
	}

	if result := CheckATS(text); result.Score < 70 {
		t.Fatalf("expected a rendered resume to pass the ATS check, got %d: %v", result.Score, result.Issues)
	}
}
