package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type ProjectGormRepository struct {
	db *gorm.DB
}

func NewProjectGormRepository(db *gorm.DB) *ProjectGormRepository {
	return &ProjectGormRepository{db: db}
}

// --------------------------------------------------
// Project
// --------------------------------------------------

func (r *ProjectGormRepository) GetProject(
	ctx context.Context,
	id string,
) (*models.Project, error) {

	return findOne[models.Project](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *ProjectGormRepository) ListForClient(
	ctx context.Context,
	clientID string,
) ([]models.Project, error) {

	var out []models.Project
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("updated_at DESC").
		Find(&out).Error
	return out, err
}

func (r *ProjectGormRepository) ListForPro(
	ctx context.Context,
	proID string,
) ([]models.Project, error) {

	var out []models.Project
	err := r.db.WithContext(ctx).
		Where("pro_id = ?", proID).
		Order("updated_at DESC").
		Find(&out).Error
	return out, err
}

func (r *ProjectGormRepository) CreateProject(
	ctx context.Context,
	p *models.Project,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectGormRepository) UpdateProject(
	ctx context.Context,
	p *models.Project,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// --------------------------------------------------
// Phases
// --------------------------------------------------

func (r *ProjectGormRepository) ListPhases(
	ctx context.Context,
	projectID string,
) ([]models.ProjectPhase, error) {

	var out []models.ProjectPhase
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *ProjectGormRepository) GetPhase(
	ctx context.Context,
	projectID string,
	phaseID string,
) (*models.ProjectPhase, error) {

	return findOne[models.ProjectPhase](r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", phaseID, projectID))
}

func (r *ProjectGormRepository) CreatePhase(
	ctx context.Context,
	ph *models.ProjectPhase,
) error {
	return r.db.WithContext(ctx).Create(ph).Error
}

func (r *ProjectGormRepository) UpdatePhase(
	ctx context.Context,
	ph *models.ProjectPhase,
) error {
	return r.db.WithContext(ctx).Save(ph).Error
}

// --------------------------------------------------
// Photos / Costs
// --------------------------------------------------

func (r *ProjectGormRepository) ListPhotos(
	ctx context.Context,
	projectID string,
) ([]models.ProjectPhoto, error) {

	var out []models.ProjectPhoto
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *ProjectGormRepository) CreatePhoto(
	ctx context.Context,
	ph *models.ProjectPhoto,
) error {
	return r.db.WithContext(ctx).Create(ph).Error
}

func (r *ProjectGormRepository) ListCosts(
	ctx context.Context,
	projectID string,
) ([]models.ProjectCost, error) {

	var out []models.ProjectCost
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date DESC").
		Find(&out).Error
	return out, err
}

func (r *ProjectGormRepository) CreateCost(
	ctx context.Context,
	c *models.ProjectCost,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *ProjectGormRepository) GetClientProfile(
	ctx context.Context,
	userID string,
) (*models.ClientProfile, error) {
	return findOne[models.ClientProfile](r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *ProjectGormRepository) GetProProfile(
	ctx context.Context,
	userID string,
) (*models.ProProfile, error) {
	return findOne[models.ProProfile](r.db.WithContext(ctx).Where("user_id = ?", userID))
}
