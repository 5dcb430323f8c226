package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/onboarding"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) FindClientProfile(
	ctx context.Context,
	userID string,
) (*models.ClientProfile, error) {
	return findOne[models.ClientProfile](r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *ProfileGormRepository) FindProProfile(
	ctx context.Context,
	userID string,
) (*models.ProProfile, error) {
	return findOne[models.ProProfile](r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *ProfileGormRepository) ListPortfolio(
	ctx context.Context,
	proID string,
) ([]models.ProPortfolioItem, error) {

	var out []models.ProPortfolioItem
	err := r.db.WithContext(ctx).
		Where("pro_id = ?", proID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *ProfileGormRepository) CountPortfolio(
	ctx context.Context,
	proID string,
) (int, error) {

	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.ProPortfolioItem{}).
		Where("pro_id = ?", proID).
		Count(&n).Error
	return int(n), err
}

// CompleteOnboarding saves the profile and appends the new portfolio rows in
// one transaction. The portfolio cap is checked again under the profile row
// lock so concurrent submissions cannot overshoot it.
func (r *ProfileGormRepository) CompleteOnboarding(
	ctx context.Context,
	profile *models.ProProfile,
	items []models.ProPortfolioItem,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lock := tx
		if tx.Dialector.Name() == "postgres" {
			lock = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var locked models.ProProfile
		if err := lock.Omit("Portfolio").
			Where("user_id = ?", profile.UserID).
			First(&locked).Error; err != nil {
			return err
		}

		if len(items) > 0 {
			var n int64
			if err := tx.Model(&models.ProPortfolioItem{}).
				Where("pro_id = ?", profile.UserID).
				Count(&n).Error; err != nil {
				return err
			}
			if int(n)+len(items) > domain.MaxPortfolio {
				return httperr.ErrBusiness("portfolio_limit_reached")
			}
		}

		profile.OnboardingComplete = true
		if err := tx.Omit("Portfolio").Save(profile).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// ListOnboardedPros returns the public directory, optionally narrowed to one
// specialty. Specialties are stored as a JSON array, matched on the quoted
// value.
func (r *ProfileGormRepository) ListOnboardedPros(
	ctx context.Context,
	specialty string,
) ([]models.ProProfile, error) {

	q := r.db.WithContext(ctx).
		Preload("Portfolio", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("onboarding_complete = ?", true)

	if specialty != "" {
		q = q.Where("specialties LIKE ?", `%"`+specialty+`"%`)
	}

	var out []models.ProProfile
	err := q.Order("rating DESC").Order("full_name ASC").Find(&out).Error
	return out, err
}
