package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {
	return findOne[models.User](r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.User, error) {
	return findOne[models.User](r.db.WithContext(ctx).Where("id = ?", id))
}

// CreateWithProfile inserts the user and exactly one of the two profiles.
func (r *UserGormRepository) CreateWithProfile(
	ctx context.Context,
	user *models.User,
	client *models.ClientProfile,
	pro *models.ProProfile,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if client != nil {
			client.UserID = user.ID
			return tx.Create(client).Error
		}
		if pro != nil {
			pro.UserID = user.ID
			return tx.Omit("Portfolio").Create(pro).Error
		}
		return nil
	})
}
