package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/request"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type RequestGormRepository struct {
	db *gorm.DB
}

func NewRequestGormRepository(db *gorm.DB) *RequestGormRepository {
	return &RequestGormRepository{db: db}
}

func (r *RequestGormRepository) GetRequest(
	ctx context.Context,
	id string,
) (*models.ProjectRequest, error) {

	return findOne[models.ProjectRequest](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *RequestGormRepository) ListPendingForPro(
	ctx context.Context,
	proID string,
) ([]models.ProjectRequest, error) {

	var out []models.ProjectRequest
	err := r.db.WithContext(ctx).
		Where("pro_id = ? AND status = ?", proID, string(request.StatusPending)).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *RequestGormRepository) ListForClient(
	ctx context.Context,
	clientID string,
) ([]models.ProjectRequest, error) {

	var out []models.ProjectRequest
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *RequestGormRepository) CreateWithProject(
	ctx context.Context,
	p *models.Project,
	req *models.ProjectRequest,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		req.ProjectID = p.ID
		return tx.Create(req).Error
	})
}

// Transition updates the request only while it is still pending, so two
// concurrent answers cannot both win. On accept the project is assigned in
// the same transaction; a project already held by another professional
// rolls the whole thing back.
func (r *RequestGormRepository) Transition(
	ctx context.Context,
	req *models.ProjectRequest,
	to request.Status,
) (*models.Project, error) {

	var p models.Project

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ProjectRequest{}).
			Where("id = ? AND status = ?", req.ID, string(request.StatusPending)).
			Updates(map[string]any{
				"status":     string(to),
				"updated_at": tx.NowFunc(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("request_not_pending")
		}

		if to == request.StatusAccepted {
			res := tx.Model(&models.Project{}).
				Where("id = ?", req.ProjectID).
				Where("pro_id IS NULL OR pro_id = ?", req.ProID).
				Updates(map[string]any{
					"pro_id": req.ProID,
					"status": string(project.StatusInProgress),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrBusiness("project_already_assigned")
			}
		}

		if err := tx.Where("id = ?", req.ID).First(req).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", req.ProjectID).First(&p).Error
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *RequestGormRepository) GetProject(
	ctx context.Context,
	id string,
) (*models.Project, error) {
	return findOne[models.Project](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *RequestGormRepository) GetClientProfile(
	ctx context.Context,
	userID string,
) (*models.ClientProfile, error) {
	return findOne[models.ClientProfile](r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *RequestGormRepository) GetProProfile(
	ctx context.Context,
	userID string,
) (*models.ProProfile, error) {
	return findOne[models.ProProfile](r.db.WithContext(ctx).Where("user_id = ?", userID))
}
