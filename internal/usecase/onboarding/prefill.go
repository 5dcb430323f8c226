package onboarding

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/onboarding"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type PrefillResult struct {
	Draft              domain.Draft              `json:"draft"`
	AvatarURL          *string                   `json:"avatar_url"`
	Portfolio          []models.ProPortfolioItem `json:"portfolio"`
	PortfolioRemaining int                       `json:"portfolio_remaining"`
	OnboardingComplete bool                      `json:"onboarding_complete"`
}

type Prefill struct {
	repo domain.Repository
}

func NewPrefill(repo domain.Repository) *Prefill {
	return &Prefill{repo: repo}
}

// Execute returns what is already stored so re-entering the wizard never
// starts from blank fields.
func (uc *Prefill) Execute(
	ctx context.Context,
	who *identity.Identity,
) (*PrefillResult, error) {

	who, err := identity.Require(who)
	if err != nil {
		return nil, err
	}

	p, err := uc.repo.FindProProfile(ctx, who.UserID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httperr.ErrBusiness("not_professional")
	}

	portfolio, err := uc.repo.ListPortfolio(ctx, who.UserID)
	if err != nil {
		return nil, err
	}
	remaining, _ := domain.ClampPortfolio(len(portfolio), domain.MaxPortfolio)

	specialties := p.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return &PrefillResult{
		Draft: domain.Draft{
			CompanyName:     p.CompanyName,
			FullName:        p.FullName,
			Phone:           deref(p.Phone),
			LicenseNumber:   deref(p.LicenseNumber),
			YearsExperience: p.YearsExperience,
			ServiceArea:     deref(p.ServiceArea),
			HourlyRate:      p.HourlyRate,
			Specialties:     specialties,
			Bio:             deref(p.Description),
		},
		AvatarURL:          p.AvatarURL,
		Portfolio:          portfolio,
		PortfolioRemaining: remaining,
		OnboardingComplete: p.OnboardingComplete,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
