package project

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
	"github.com/BruksfildServices01/renovation-marketplace/internal/timezone"
)

type CostInput struct {
	Label    string
	Amount   float64
	Category string
	Date     *time.Time
	Paid     bool
}

type AddCost struct {
	repo domain.Repository
	rt   realtime.Publisher
}

func NewAddCost(repo domain.Repository, rt realtime.Publisher) *AddCost {
	return &AddCost{repo: repo, rt: rt}
}

func (uc *AddCost) Execute(
	ctx context.Context,
	who *identity.Identity,
	projectID string,
	in CostInput,
) (*models.ProjectCost, error) {

	_, p, err := loadForParticipant(ctx, uc.repo, who, projectID)
	if err != nil {
		return nil, err
	}

	label := strings.TrimSpace(in.Label)
	if label == "" {
		return nil, httperr.ErrBusiness("label_required")
	}
	if in.Amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}
	category := domain.CostCategory(in.Category)
	if !category.Valid() {
		return nil, httperr.ErrBusiness("invalid_category")
	}

	date := timezone.Now()
	if in.Date != nil {
		date = *in.Date
	}

	c := &models.ProjectCost{
		ProjectID: p.ID,
		Label:     label,
		Amount:    in.Amount,
		Category:  string(category),
		Date:      date,
		Paid:      in.Paid,
	}

	if err := uc.repo.CreateCost(ctx, c); err != nil {
		return nil, err
	}

	uc.rt.PublishRow(ctx, realtime.TableCosts, realtime.OpInsert, c.ID, c)
	return c, nil
}
