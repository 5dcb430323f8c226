package dashboard

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/stats"
	"github.com/BruksfildServices01/renovation-marketplace/internal/dto"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	ucRequest "github.com/BruksfildServices01/renovation-marketplace/internal/usecase/request"
)

// ======================================================
// OUTPUT
// ======================================================

type Landing struct {
	Role               identity.Role `json:"role"`
	OnboardingComplete bool          `json:"onboarding_complete"`
	Redirect           string        `json:"redirect"`
}

type Client struct {
	Projects []dto.ProjectListItemDTO `json:"projects"`
	Summary  stats.Summary            `json:"summary"`
}

type Pro struct {
	Pending         []ucRequest.PendingRequest `json:"pending_requests"`
	Projects        []dto.ProjectListItemDTO   `json:"projects"`
	ActiveCount     int                        `json:"active_count"`
	CompletedCount  int                        `json:"completed_count"`
	AverageProgress int                        `json:"average_progress"`
	TotalRevenue    float64                    `json:"total_revenue"`
}

// ======================================================
// USE CASE
// ======================================================

type Dashboard struct {
	projects project.Repository
	pending  *ucRequest.ListPending
	resolver *identity.Resolver
}

func New(
	projects project.Repository,
	pending *ucRequest.ListPending,
	resolver *identity.Resolver,
) *Dashboard {
	return &Dashboard{projects: projects, pending: pending, resolver: resolver}
}

// Landing tells a signed-in caller which dashboard to open.
func (d *Dashboard) Landing(ctx context.Context, who *identity.Identity) (*Landing, error) {
	res, err := d.resolver.Resolve(ctx, who)
	if err != nil {
		return nil, err
	}
	return &Landing{
		Role:               res.Role,
		OnboardingComplete: res.OnboardingComplete,
		Redirect:           res.DashboardPath(),
	}, nil
}

func (d *Dashboard) Client(ctx context.Context, who *identity.Identity) (*Client, error) {
	res, err := d.resolver.Resolve(ctx, who)
	if err != nil {
		return nil, err
	}
	if res.Role != identity.RoleClient {
		return nil, httperr.ErrBusiness("not_client")
	}

	projects, err := d.projects.ListForClient(ctx, who.UserID)
	if err != nil {
		return nil, err
	}

	return &Client{
		Projects: dto.ProjectListItems(projects),
		Summary:  stats.Summarize(projects),
	}, nil
}

// Pro counts revenue as the sum of budgets of the assigned projects.
func (d *Dashboard) Pro(ctx context.Context, who *identity.Identity) (*Pro, error) {
	res, err := d.resolver.Resolve(ctx, who)
	if err != nil {
		return nil, err
	}
	if res.Role != identity.RoleProfessional {
		return nil, httperr.ErrBusiness("not_professional")
	}

	pending, err := d.pending.Execute(ctx, who)
	if err != nil {
		return nil, err
	}

	projects, err := d.projects.ListForPro(ctx, who.UserID)
	if err != nil {
		return nil, err
	}

	return &Pro{
		Pending:         pending,
		Projects:        dto.ProjectListItems(projects),
		ActiveCount:     stats.ActiveCount(projects),
		CompletedCount:  stats.CompletedCount(projects),
		AverageProgress: stats.AverageProgress(projects),
		TotalRevenue:    stats.TotalBudget(projects),
	}, nil
}
