package repository

import (
	"context"
	"errors"

	"mechmate/internal/models"

	"gorm.io/gorm"
)

// VehicleRepository defines the interface for vehicle data operations
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id uint) (*models.Vehicle, error)
	GetByOwner(ctx context.Context, ownerID uint) ([]*models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) error
	DeleteWithLogs(ctx context.Context, id uint) error
}

// vehicleRepository implements VehicleRepository
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Vehicle", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &vehicle, nil
}

func (r *vehicleRepository) GetByOwner(ctx context.Context, ownerID uint) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&vehicles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteWithLogs removes a vehicle and all of its repair logs in a single
// transaction; any failure rolls back both deletes.
func (r *vehicleRepository) DeleteWithLogs(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.RepairLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Vehicle{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
