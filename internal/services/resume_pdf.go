package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"alfredoptarigan/resume-ats/internal/models"
)

var ErrMissingFullName = errors.New("fullName is required")

const (
	placeholderEmail      = "email@example.com"
	placeholderPhone      = "Phone not provided"
	placeholderLocation   = "Location not provided"
	placeholderSummary    = "Professional summary not provided."
	placeholderSkills     = "No skills listed."
	placeholderExperience = "No experience listed."
	placeholderEducation  = "No education listed."
)

type ResumeRenderer interface {
	Render(profile models.ResumeProfile) ([]byte, error)
}

type resumeRenderer struct{}

func NewResumeRenderer() ResumeRenderer {
	return &resumeRenderer{}
}

// Render lays out a single-column A4 resume using the core Helvetica font.
func (r *resumeRenderer) Render(profile models.ResumeProfile) ([]byte, error) {
	name := strings.TrimSpace(profile.FullName)
	if name == "" {
		return nil, ErrMissingFullName
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.SetTitle(name+" Resume", true)
	pdf.SetAuthor(name, true)
	pdf.SetCreator("resume-ats", false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(name), "", 1, "C", false, 0, "")

	contact := []string{
		orPlaceholder(profile.Email, placeholderEmail),
		orPlaceholder(profile.Phone, placeholderPhone),
		orPlaceholder(profile.Location, placeholderLocation),
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(strings.Join(contact, " | ")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeHeading(pdf, tr, "Professional Summary")
	writeParagraph(pdf, tr, orPlaceholder(profile.Summary, placeholderSummary))

	writeHeading(pdf, tr, "Skills")
	skills := cleanList(profile.Skills)
	if len(skills) == 0 {
		writeParagraph(pdf, tr, placeholderSkills)
	} else {
		writeParagraph(pdf, tr, strings.Join(skills, ", "))
	}

	writeHeading(pdf, tr, "Experience")
	written := 0
	for _, exp := range profile.Experiences {
		title := strings.TrimSpace(exp.JobTitle)
		company := strings.TrimSpace(exp.Company)
		if title == "" && company == "" && strings.TrimSpace(exp.Description) == "" {
			continue
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, tr(joinNonEmpty(" - ", title, company)), "", 1, "L", false, 0, "")
		if desc := strings.TrimSpace(exp.Description); desc != "" {
			writeParagraph(pdf, tr, desc)
		}
		written++
	}
	if written == 0 {
		writeParagraph(pdf, tr, placeholderExperience)
	}

	writeHeading(pdf, tr, "Education")
	written = 0
	for _, edu := range profile.Educations {
		line := joinNonEmpty(", ", strings.TrimSpace(edu.Degree), strings.TrimSpace(edu.Institution))
		if line == "" {
			continue
		}
		writeParagraph(pdf, tr, line)
		written++
	}
	if written == 0 {
		writeParagraph(pdf, tr, placeholderEducation)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render resume PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// ResumeFilename is the attachment name for a rendered resume.
func ResumeFilename(fullName string) string {
	return strings.Join(strings.Fields(fullName), "-") + "-Resume.pdf"
}

func writeHeading(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 7, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func writeParagraph(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(text), "", "L", false)
}

func orPlaceholder(value, placeholder string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return placeholder
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
