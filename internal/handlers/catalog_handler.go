package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-ats/internal/services"
)

type CatalogHandler struct {
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) HandleIndustries(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"industries": h.catalog.Industries(),
	})
}

func (h *CatalogHandler) HandleJobTitles(c *fiber.Ctx) error {
	industry := c.Params("industry")

	titles, ok := h.catalog.JobTitles(industry)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown industry: " + industry,
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"industry":   industry,
		"job_titles": titles,
	})
}

func (h *CatalogHandler) HandleSkills(c *fiber.Ctx) error {
	industry := c.Params("industry")

	skills, ok := h.catalog.Skills(industry)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown industry: " + industry,
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"industry": industry,
		"skills":   skills,
	})
}
