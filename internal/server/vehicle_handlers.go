package server

import (
	"mechmate/internal/middleware"
	"mechmate/internal/models"
	"mechmate/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Dashboard lists the caller's vehicles, newest first.
func (s *Server) Dashboard(c *fiber.Ctx) error {
	vehicles, err := s.vehicleService.List(c.UserContext(), currentUserID(c))
	if err != nil {
		return s.handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// CreateVehicle adds a vehicle for the caller.
func (s *Server) CreateVehicle(c *fiber.Ctx) error {
	var sub service.VehicleSubmission
	if err := c.BodyParser(&sub); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	vehicle, err := s.vehicleService.Create(c.UserContext(), currentUserID(c), sub)
	if err != nil {
		return s.handleServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "vehicle created",
		"vehicle_id", vehicle.ID,
		"custom", vehicle.IsCustom,
	)

	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

// GetVehicle returns one of the caller's vehicles.
func (s *Server) GetVehicle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return s.handleServiceError(c, err)
	}

	vehicle, err := s.vehicleService.Get(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return s.handleServiceError(c, err)
	}
	return c.JSON(vehicle)
}

// UpdateVehicle replaces a vehicle's details.
func (s *Server) UpdateVehicle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return s.handleServiceError(c, err)
	}

	var sub service.VehicleSubmission
	if err := c.BodyParser(&sub); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	vehicle, err := s.vehicleService.Update(c.UserContext(), currentUserID(c), id, sub)
	if err != nil {
		return s.handleServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "vehicle updated",
		"vehicle_id", vehicle.ID,
	)

	return c.JSON(vehicle)
}

// DeleteVehicle removes a vehicle and its repair history.
func (s *Server) DeleteVehicle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return s.handleServiceError(c, err)
	}

	if err := s.vehicleService.Delete(c.UserContext(), currentUserID(c), id); err != nil {
		return s.handleServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "vehicle deleted",
		"vehicle_id", id,
	)

	return c.JSON(fiber.Map{
		"message": "Vehicle deleted successfully",
	})
}
