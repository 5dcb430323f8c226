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
)

type PhaseInput struct {
	Name      *string
	Status    *string
	StartDate *time.Time
	EndDate   *time.Time
	SortOrder *int
}

type ManagePhases struct {
	repo domain.Repository
	rt   realtime.Publisher
}

func NewManagePhases(repo domain.Repository, rt realtime.Publisher) *ManagePhases {
	return &ManagePhases{repo: repo, rt: rt}
}

// Add appends a phase. Without an explicit sort order it goes last.
func (uc *ManagePhases) Add(
	ctx context.Context,
	who *identity.Identity,
	projectID string,
	in PhaseInput,
) (*models.ProjectPhase, error) {

	_, p, err := loadForParticipant(ctx, uc.repo, who, projectID)
	if err != nil {
		return nil, err
	}

	ph := &models.ProjectPhase{
		ProjectID: p.ID,
		Status:    string(domain.PhasePending),
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	if in.SortOrder == nil {
		existing, err := uc.repo.ListPhases(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		next := 0
		for _, e := range existing {
			if e.SortOrder >= next {
				next = e.SortOrder + 1
			}
		}
		in.SortOrder = &next
	}

	if err := applyPhase(ph, in); err != nil {
		return nil, err
	}

	if err := uc.repo.CreatePhase(ctx, ph); err != nil {
		return nil, err
	}

	uc.rt.PublishRow(ctx, realtime.TablePhases, realtime.OpInsert, ph.ID, ph)
	return ph, nil
}

func (uc *ManagePhases) Update(
	ctx context.Context,
	who *identity.Identity,
	projectID string,
	phaseID string,
	in PhaseInput,
) (*models.ProjectPhase, error) {

	_, p, err := loadForParticipant(ctx, uc.repo, who, projectID)
	if err != nil {
		return nil, err
	}

	ph, err := uc.repo.GetPhase(ctx, p.ID, phaseID)
	if err != nil {
		return nil, err
	}
	if ph == nil {
		return nil, httperr.ErrBusiness("phase_not_found")
	}

	if err := applyPhase(ph, in); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdatePhase(ctx, ph); err != nil {
		return nil, err
	}

	uc.rt.PublishRow(ctx, realtime.TablePhases, realtime.OpUpdate, ph.ID, ph)
	return ph, nil
}

func applyPhase(ph *models.ProjectPhase, in PhaseInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return httperr.ErrBusiness("name_required")
		}
		ph.Name = name
	}
	if in.Status != nil {
		s := domain.PhaseStatus(*in.Status)
		if !s.Valid() {
			return httperr.ErrBusiness("invalid_status")
		}
		ph.Status = string(s)
	}
	if in.StartDate != nil {
		ph.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		ph.EndDate = in.EndDate
	}
	if in.SortOrder != nil {
		ph.SortOrder = *in.SortOrder
	}
	if ph.StartDate != nil && ph.EndDate != nil && ph.EndDate.Before(*ph.StartDate) {
		return httperr.ErrBusiness("invalid_dates")
	}
	return nil
}
