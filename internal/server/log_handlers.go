package server

import (
	"mechmate/internal/middleware"
	"mechmate/internal/models"
	"mechmate/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetLogs lists a vehicle's repair history, most recent service date first.
func (s *Server) GetLogs(c *fiber.Ctx) error {
	vehicleID, err := parseID(c, "id")
	if err != nil {
		return s.handleServiceError(c, err)
	}

	logs, err := s.logService.List(c.UserContext(), currentUserID(c), vehicleID)
	if err != nil {
		return s.handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"logs":  logs,
		"count": len(logs),
	})
}

// CreateLog adds a repair log entry to a vehicle.
func (s *Server) CreateLog(c *fiber.Ctx) error {
	vehicleID, err := parseID(c, "id")
	if err != nil {
		return s.handleServiceError(c, err)
	}

	var sub service.LogSubmission
	if err := c.BodyParser(&sub); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	log, err := s.logService.Add(c.UserContext(), currentUserID(c), vehicleID, sub)
	if err != nil {
		return s.handleServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "repair log created",
		"vehicle_id", vehicleID,
		"log_id", log.ID,
	)

	return c.Status(fiber.StatusCreated).JSON(log)
}

// UpdateLog replaces a repair log entry.
func (s *Server) UpdateLog(c *fiber.Ctx) error {
	vehicleID, err := parseID(c, "id")
	if err != nil {
		return s.handleServiceError(c, err)
	}
	logID, err := parseID(c, "logId")
	if err != nil {
		return s.handleServiceError(c, err)
	}

	var sub service.LogSubmission
	if err := c.BodyParser(&sub); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	log, err := s.logService.Update(c.UserContext(), currentUserID(c), vehicleID, logID, sub)
	if err != nil {
		return s.handleServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "repair log updated",
		"vehicle_id", vehicleID,
		"log_id", log.ID,
	)

	return c.JSON(log)
}

// DeleteLog removes a single repair log entry.
func (s *Server) DeleteLog(c *fiber.Ctx) error {
	vehicleID, err := parseID(c, "id")
	if err != nil {
		return s.handleServiceError(c, err)
	}
	logID, err := parseID(c, "logId")
	if err != nil {
		return s.handleServiceError(c, err)
	}

	if err := s.logService.Delete(c.UserContext(), currentUserID(c), vehicleID, logID); err != nil {
		return s.handleServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "repair log deleted",
		"vehicle_id", vehicleID,
		"log_id", logID,
	)

	return c.JSON(fiber.Map{
		"message": "Repair log deleted successfully",
	})
}
