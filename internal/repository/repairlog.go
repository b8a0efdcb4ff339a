package repository

import (
	"context"
	"errors"

	"mechmate/internal/models"

	"gorm.io/gorm"
)

// RepairLogRepository defines the interface for repair log data operations
type RepairLogRepository interface {
	Create(ctx context.Context, log *models.RepairLog) error
	GetByID(ctx context.Context, id uint) (*models.RepairLog, error)
	ListByVehicle(ctx context.Context, vehicleID uint) ([]*models.RepairLog, error)
	Update(ctx context.Context, log *models.RepairLog) error
	Delete(ctx context.Context, id uint) error
}

// repairLogRepository implements RepairLogRepository
type repairLogRepository struct {
	db *gorm.DB
}

// NewRepairLogRepository creates a new repair log repository
func NewRepairLogRepository(db *gorm.DB) RepairLogRepository {
	return &repairLogRepository{db: db}
}

func (r *repairLogRepository) Create(ctx context.Context, log *models.RepairLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *repairLogRepository) GetByID(ctx context.Context, id uint) (*models.RepairLog, error) {
	var log models.RepairLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Repair log", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &log, nil
}

// ListByVehicle returns a vehicle's logs newest-first by service date.
func (r *repairLogRepository) ListByVehicle(ctx context.Context, vehicleID uint) ([]*models.RepairLog, error) {
	var logs []*models.RepairLog
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return logs, nil
}

func (r *repairLogRepository) Update(ctx context.Context, log *models.RepairLog) error {
	if err := r.db.WithContext(ctx).Save(log).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *repairLogRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.RepairLog{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
