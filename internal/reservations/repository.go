package reservations

import (
	"context"

	"github.com/brasadourada/brasa-backend/pkg/db/models"
	"github.com/brasadourada/brasa-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListInput narrows admin reservation listings.
type ListInput struct {
	Status *enums.ReservationStatus
	Limit  int
	Offset int
}

const defaultListLimit = 50

// Repository provides persistence for table reservations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new reservation request.
func (r *Repository) Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	if err := r.db.WithContext(ctx).Create(reservation).Error; err != nil {
		return nil, err
	}
	return reservation, nil
}

// FindByID loads a single reservation.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// List returns reservations newest first, optionally filtered by status.
func (r *Repository) List(ctx context.Context, input ListInput) ([]models.Reservation, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(input.Offset)
	if input.Status != nil {
		query = query.Where("status = ?", *input.Status)
	}

	var result []models.Reservation
	if err := query.Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus persists the new lifecycle status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ReservationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of reservations.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Reservation{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus returns the number of reservations in the given status.
func (r *Repository) CountByStatus(ctx context.Context, status enums.ReservationStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
