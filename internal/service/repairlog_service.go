package service

import (
	"context"

	"mechmate/internal/models"
	"mechmate/internal/repository"
)

// RepairLogService owns the repair log flows. Every operation resolves the
// vehicle first and enforces the owner check before touching any log row, so
// a non-owner is denied without learning whether the log exists.
type RepairLogService struct {
	logRepo     repository.RepairLogRepository
	vehicleRepo repository.VehicleRepository
}

func NewRepairLogService(logRepo repository.RepairLogRepository, vehicleRepo repository.VehicleRepository) *RepairLogService {
	return &RepairLogService{logRepo: logRepo, vehicleRepo: vehicleRepo}
}

// requireOwnedVehicle loads the vehicle and verifies ownership.
func (s *RepairLogService) requireOwnedVehicle(ctx context.Context, ownerID, vehicleID uint) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID != ownerID {
		return nil, models.NewUnauthorizedError("You can only access logs for your own vehicles")
	}
	return vehicle, nil
}

// Add validates the submission and creates a log entry for the vehicle.
func (s *RepairLogService) Add(ctx context.Context, ownerID, vehicleID uint, sub LogSubmission) (*models.RepairLog, error) {
	if _, err := s.requireOwnedVehicle(ctx, ownerID, vehicleID); err != nil {
		return nil, err
	}

	validated, ferrs := ValidateLogFields(sub)
	if ferrs != nil {
		return nil, ferrs
	}

	log := &models.RepairLog{
		Date:        validated.Date,
		Mileage:     validated.Mileage,
		Description: validated.Description,
		VehicleID:   vehicleID,
	}

	if err := s.logRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// List returns the vehicle's logs ordered by service date descending.
func (s *RepairLogService) List(ctx context.Context, ownerID, vehicleID uint) ([]*models.RepairLog, error) {
	if _, err := s.requireOwnedVehicle(ctx, ownerID, vehicleID); err != nil {
		return nil, err
	}
	return s.logRepo.ListByVehicle(ctx, vehicleID)
}

// getLogForVehicle loads a log and verifies it belongs to the path vehicle.
// A log reached through the wrong vehicle id is reported as not found.
func (s *RepairLogService) getLogForVehicle(ctx context.Context, vehicleID, logID uint) (*models.RepairLog, error) {
	log, err := s.logRepo.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if log.VehicleID != vehicleID {
		return nil, models.NewNotFoundError("Repair log", logID)
	}
	return log, nil
}

// Update validates the submission and saves it over an existing log.
func (s *RepairLogService) Update(ctx context.Context, ownerID, vehicleID, logID uint, sub LogSubmission) (*models.RepairLog, error) {
	if _, err := s.requireOwnedVehicle(ctx, ownerID, vehicleID); err != nil {
		return nil, err
	}

	log, err := s.getLogForVehicle(ctx, vehicleID, logID)
	if err != nil {
		return nil, err
	}

	validated, ferrs := ValidateLogFields(sub)
	if ferrs != nil {
		return nil, ferrs
	}

	log.Date = validated.Date
	log.Mileage = validated.Mileage
	log.Description = validated.Description

	if err := s.logRepo.Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// Delete removes a single log entry.
func (s *RepairLogService) Delete(ctx context.Context, ownerID, vehicleID, logID uint) error {
	if _, err := s.requireOwnedVehicle(ctx, ownerID, vehicleID); err != nil {
		return err
	}

	log, err := s.getLogForVehicle(ctx, vehicleID, logID)
	if err != nil {
		return err
	}

	return s.logRepo.Delete(ctx, log.ID)
}
