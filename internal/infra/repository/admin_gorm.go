package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/everest-cuisine/booking-api/internal/models"
)

type AdminGormRepository struct {
	db *gorm.DB
}

func NewAdminGormRepository(db *gorm.DB) *AdminGormRepository {
	return &AdminGormRepository{db: db}
}

func (r *AdminGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.AdminUser, error) {

	var admin models.AdminUser
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
