package service

import (
	"context"

	"mechmate/internal/cache"
	"mechmate/internal/models"
	"mechmate/internal/repository"
)

// VehicleService owns the vehicle CRUD flows: field resolution, ownership
// enforcement and dashboard caching.
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// Create resolves the submission and persists a new vehicle owned by ownerID.
func (s *VehicleService) Create(ctx context.Context, ownerID uint, sub VehicleSubmission) (*models.Vehicle, error) {
	resolved, ferrs := ResolveVehicleFields(sub)
	if ferrs != nil {
		return nil, ferrs
	}

	vehicle := &models.Vehicle{
		Make:         resolved.Make,
		Model:        resolved.Model,
		Year:         resolved.Year,
		LicensePlate: resolved.LicensePlate,
		IsCustom:     resolved.Custom,
		OwnerID:      ownerID,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	cache.InvalidateVehicleList(ctx, ownerID)
	return vehicle, nil
}

// List returns the caller's vehicles, newest first, through the dashboard
// cache.
func (s *VehicleService) List(ctx context.Context, ownerID uint) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	err := cache.Aside(ctx, cache.VehicleListKey(ownerID), &vehicles, cache.VehicleListTTL, func() error {
		var fetchErr error
		vehicles, fetchErr = s.vehicleRepo.GetByOwner(ctx, ownerID)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Get returns a single vehicle after the owner check. The persisted IsCustom
// flag tells the edit form which input mode to default to.
func (s *VehicleService) Get(ctx context.Context, ownerID, id uint) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID != ownerID {
		return nil, models.NewUnauthorizedError("You can only access your own vehicles")
	}
	return vehicle, nil
}

// Update re-resolves the submission against the same rules as Create and
// saves the result. The owner is immutable; only the resolved fields change.
func (s *VehicleService) Update(ctx context.Context, ownerID, id uint, sub VehicleSubmission) (*models.Vehicle, error) {
	vehicle, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	resolved, ferrs := ResolveVehicleFields(sub)
	if ferrs != nil {
		return nil, ferrs
	}

	vehicle.Make = resolved.Make
	vehicle.Model = resolved.Model
	vehicle.Year = resolved.Year
	vehicle.LicensePlate = resolved.LicensePlate
	vehicle.IsCustom = resolved.Custom

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	cache.InvalidateVehicleList(ctx, ownerID)
	return vehicle, nil
}

// Delete removes the vehicle and all of its repair logs after the owner
// check. The cascade runs in one transaction in the repository.
func (s *VehicleService) Delete(ctx context.Context, ownerID, id uint) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.vehicleRepo.DeleteWithLogs(ctx, id); err != nil {
		return err
	}

	cache.InvalidateVehicleList(ctx, ownerID)
	return nil
}
