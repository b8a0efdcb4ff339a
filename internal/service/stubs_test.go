package service

import (
	"context"

	"mechmate/internal/models"
)

// stubVehicleRepo implements repository.VehicleRepository with overridable
// function fields. Unset operations fail the invariant that the service must
// not reach them.
type stubVehicleRepo struct {
	createFn         func(ctx context.Context, v *models.Vehicle) error
	getByIDFn        func(ctx context.Context, id uint) (*models.Vehicle, error)
	getByOwnerFn     func(ctx context.Context, ownerID uint) ([]*models.Vehicle, error)
	updateFn         func(ctx context.Context, v *models.Vehicle) error
	deleteWithLogsFn func(ctx context.Context, id uint) error

	createCalls int
	updateCalls int
	deleteCalls int
}

func (s *stubVehicleRepo) Create(ctx context.Context, v *models.Vehicle) error {
	s.createCalls++
	if s.createFn == nil {
		panic("unexpected VehicleRepository.Create call")
	}
	return s.createFn(ctx, v)
}

func (s *stubVehicleRepo) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	if s.getByIDFn == nil {
		panic("unexpected VehicleRepository.GetByID call")
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubVehicleRepo) GetByOwner(ctx context.Context, ownerID uint) ([]*models.Vehicle, error) {
	if s.getByOwnerFn == nil {
		panic("unexpected VehicleRepository.GetByOwner call")
	}
	return s.getByOwnerFn(ctx, ownerID)
}

func (s *stubVehicleRepo) Update(ctx context.Context, v *models.Vehicle) error {
	s.updateCalls++
	if s.updateFn == nil {
		panic("unexpected VehicleRepository.Update call")
	}
	return s.updateFn(ctx, v)
}

func (s *stubVehicleRepo) DeleteWithLogs(ctx context.Context, id uint) error {
	s.deleteCalls++
	if s.deleteWithLogsFn == nil {
		panic("unexpected VehicleRepository.DeleteWithLogs call")
	}
	return s.deleteWithLogsFn(ctx, id)
}

// stubLogRepo implements repository.RepairLogRepository the same way.
type stubLogRepo struct {
	createFn        func(ctx context.Context, l *models.RepairLog) error
	getByIDFn       func(ctx context.Context, id uint) (*models.RepairLog, error)
	listByVehicleFn func(ctx context.Context, vehicleID uint) ([]*models.RepairLog, error)
	updateFn        func(ctx context.Context, l *models.RepairLog) error
	deleteFn        func(ctx context.Context, id uint) error

	createCalls int
	updateCalls int
	deleteCalls int
}

func (s *stubLogRepo) Create(ctx context.Context, l *models.RepairLog) error {
	s.createCalls++
	if s.createFn == nil {
		panic("unexpected RepairLogRepository.Create call")
	}
	return s.createFn(ctx, l)
}

func (s *stubLogRepo) GetByID(ctx context.Context, id uint) (*models.RepairLog, error) {
	if s.getByIDFn == nil {
		panic("unexpected RepairLogRepository.GetByID call")
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubLogRepo) ListByVehicle(ctx context.Context, vehicleID uint) ([]*models.RepairLog, error) {
	if s.listByVehicleFn == nil {
		panic("unexpected RepairLogRepository.ListByVehicle call")
	}
	return s.listByVehicleFn(ctx, vehicleID)
}

func (s *stubLogRepo) Update(ctx context.Context, l *models.RepairLog) error {
	s.updateCalls++
	if s.updateFn == nil {
		panic("unexpected RepairLogRepository.Update call")
	}
	return s.updateFn(ctx, l)
}

func (s *stubLogRepo) Delete(ctx context.Context, id uint) error {
	s.deleteCalls++
	if s.deleteFn == nil {
		panic("unexpected RepairLogRepository.Delete call")
	}
	return s.deleteFn(ctx, id)
}
