package server

import (
	"mechmate/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

// GetMakes returns the known vehicle makes for the first dropdown.
func (s *Server) GetMakes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"options": catalog.Makes(),
	})
}

// GetModels returns the models for a make. An unknown make yields the
// "Unknown" sentinel option rather than an error so the dropdown always has
// something to show.
func (s *Server) GetModels(c *fiber.Ctx) error {
	makeName, err := unescapeParam(c, "make")
	if err != nil {
		return s.handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"options": catalog.Models(makeName),
	})
}

// GetYears returns the year options for a make/model pair.
func (s *Server) GetYears(c *fiber.Ctx) error {
	makeName, err := unescapeParam(c, "make")
	if err != nil {
		return s.handleServiceError(c, err)
	}
	model, err := unescapeParam(c, "model")
	if err != nil {
		return s.handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"options": catalog.Years(makeName, model),
	})
}
