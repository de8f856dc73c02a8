package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListByDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var list []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateStatus patches only the lifecycle columns, and only while the row
// still carries status from.
func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	b *models.Booking,
	from domain.Status,
) error {
	res := r.db.WithContext(ctx).
		Model(b).
		Where("status = ?", string(from)).
		Select("status", "confirmed_at", "cancelled_at", "completed_at", "updated_at").
		Updates(b)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStatusChanged
	}
	return nil
}
