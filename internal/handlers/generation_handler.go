package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/logger"
	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

// GenerationHandler serves AI drafted content and the PDF resume export.
// AI failures surface as fallback text with a 200 status.
type GenerationHandler struct {
	content  services.ContentService
	renderer services.ResumeRenderer
	logger   *zap.Logger
}

func NewGenerationHandler(content services.ContentService, renderer services.ResumeRenderer, log *zap.Logger) *GenerationHandler {
	return &GenerationHandler{
		content:  content,
		renderer: renderer,
		logger:   logger.OrNop(log),
	}
}

func (h *GenerationHandler) HandleGenerateContent(c *fiber.Ctx) error {
	var req models.GenerateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	section := strings.TrimSpace(req.Section)
	if section == "" {
		return badRequest(c, "section is required")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"content": h.content.GenerateSection(c.UserContext(), section, req.JobTitle),
	})
}

func (h *GenerationHandler) HandleGenerateCoverLetter(c *fiber.Ctx) error {
	var req models.CoverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	company := strings.TrimSpace(req.Company)
	jobTitle := strings.TrimSpace(req.JobTitle)
	if company == "" || jobTitle == "" {
		return badRequest(c, "company and jobTitle are required")
	}

	letter := h.content.GenerateCoverLetter(c.UserContext(), company, jobTitle, req.FullName, req.Skills)

	return c.JSON(fiber.Map{
		"success":      true,
		"cover_letter": letter,
	})
}

func (h *GenerationHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return badRequest(c, "message is required")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"response": h.content.Chat(c.UserContext(), message),
	})
}

func (h *GenerationHandler) HandleGenerateResume(c *fiber.Ctx) error {
	var profile models.ResumeProfile
	if err := c.BodyParser(&profile); err != nil {
		return badRequest(c, "invalid request body")
	}

	pdf, err := h.renderer.Render(profile)
	if err != nil {
		if errors.Is(err, services.ErrMissingFullName) {
			return badRequest(c, err.Error())
		}
		h.logger.Error("resume rendering failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Attachment(services.ResumeFilename(profile.FullName))
	c.Set(fiber.HeaderContentType, mimeApplicationPDF)
	return c.Send(pdf)
}
