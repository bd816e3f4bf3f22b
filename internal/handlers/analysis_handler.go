package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/logger"
	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

const (
	archiveTimeout     = 10 * time.Second
	mimeApplicationPDF = "application/pdf"
)

// AnalysisHandler serves the rule-based checks: keyword gap, ATS score,
// bullet rewriting, keyword highlights and LinkedIn copy.
type AnalysisHandler struct {
	pdfParser   services.PDFParserService
	storage     services.StorageService
	maxFileSize int64
	logger      *zap.Logger
}

func NewAnalysisHandler(
	pdfParser services.PDFParserService,
	storage services.StorageService,
	maxFileSize int64,
	log *zap.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		pdfParser:   pdfParser,
		storage:     storage,
		maxFileSize: maxFileSize,
		logger:      logger.OrNop(log),
	}
}

func (h *AnalysisHandler) HandleAnalyzeGap(c *fiber.Ctx) error {
	var req models.GapRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if strings.TrimSpace(req.ResumeText) == "" || strings.TrimSpace(req.JobDescription) == "" {
		return badRequest(c, "resumeText and jobDescription are required")
	}

	return c.JSON(models.GapResponse{
		Success:   true,
		GapReport: services.AnalyzeGap(req.ResumeText, req.JobDescription),
	})
}

func (h *AnalysisHandler) HandleAtsCheck(c *fiber.Ctx) error {
	var req models.AtsCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		return badRequest(c, "resumeText is required")
	}

	return c.JSON(models.AtsResponse{
		Success:   true,
		AtsResult: services.CheckATS(req.ResumeText),
	})
}

func (h *AnalysisHandler) HandleAtsCheckUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return badRequest(c, "No file")
	}

	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		return badRequest(c, fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
		return badRequest(c, "Only PDF files are accepted")
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to open uploaded file: %v", err),
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read uploaded file: %v", err),
		})
	}

	if !services.IsPDF(data) {
		return badRequest(c, "Only PDF files are accepted")
	}

	text, err := h.pdfParser.ExtractText(data)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPDF) || errors.Is(err, services.ErrEmptyPDF) {
			return badRequest(c, err.Error())
		}
		h.logger.Error("pdf extraction failed", zap.String("filename", file.Filename), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.archive(c.UserContext(), file.Filename, data)

	return c.JSON(models.AtsResponse{
		Success:   true,
		AtsResult: services.CheckATS(text),
	})
}

// archive keeps a copy of the upload; failures never affect the response.
func (h *AnalysisHandler) archive(ctx context.Context, filename string, data []byte) {
	if h.storage == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, archiveTimeout)
	defer cancel()

	location, err := h.storage.Save(ctx, filename, data, mimeApplicationPDF)
	if err != nil {
		h.logger.Warn("failed to archive upload", zap.String("filename", filename), zap.Error(err))
		return
	}
	if location != "" {
		h.logger.Debug("archived upload", zap.String("filename", filename), zap.String("location", location))
	}
}

func (h *AnalysisHandler) HandleImproveBullets(c *fiber.Ctx) error {
	var req models.ImproveBulletsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	improved := services.ImproveBullets(req.Bullets)
	if len(improved) == 0 {
		return badRequest(c, "bullets are required")
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"improved_bullets": improved,
	})
}

func (h *AnalysisHandler) HandleExtractKeywords(c *fiber.Ctx) error {
	var req models.ExtractKeywordsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return badRequest(c, "jobDescription is required")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"keywords": services.HighlightKeywords(req.JobDescription),
	})
}

func (h *AnalysisHandler) HandleOptimizeLinkedin(c *fiber.Ctx) error {
	var req models.LinkedinRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if strings.TrimSpace(req.Headline) == "" || strings.TrimSpace(req.Summary) == "" {
		return badRequest(c, "headline and summary are required")
	}

	headline, summary := services.OptimizeLinkedin(req.Headline)

	return c.JSON(models.LinkedinResponse{
		Success:  true,
		Headline: headline,
		Summary:  summary,
	})
}
