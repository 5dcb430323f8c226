package onboarding

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/renovation-marketplace/internal/audit"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/onboarding"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/media"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/storage"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
	"github.com/BruksfildServices01/renovation-marketplace/internal/monitoring"
)

const uploadConcurrency = 4

// ======================================================
// INPUT / OUTPUT
// ======================================================

type Image struct {
	Data    []byte
	Caption *string
}

type SubmitInput struct {
	Draft     domain.Draft
	Avatar    *Image
	Portfolio []Image

	// Skipped counts portfolio files the caller discarded unread.
	Skipped int
}

type SubmitResult struct {
	Profile   *models.ProProfile        `json:"profile"`
	Portfolio []models.ProPortfolioItem `json:"portfolio"`
	Dropped   int                       `json:"dropped"`
	Redirect  string                    `json:"redirect"`
}

type Buckets struct {
	Avatars   string
	Portfolio string
}

// ======================================================
// USE CASE
// ======================================================

type Submit struct {
	repo    domain.Repository
	store   storage.Storage
	buckets Buckets
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewSubmit(
	repo domain.Repository,
	store storage.Storage,
	buckets Buckets,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *Submit {
	return &Submit{repo: repo, store: store, buckets: buckets, audit: audit, log: log}
}

// uploaded remembers what this submission put in storage so a failure can
// remove it again.
type uploaded struct {
	mu   sync.Mutex
	keys [][2]string
}

func (u *uploaded) add(bucket, key string) {
	u.mu.Lock()
	u.keys = append(u.keys, [2]string{bucket, key})
	u.mu.Unlock()
}

func (uc *Submit) rollback(ctx context.Context, u *uploaded) {
	for _, k := range u.keys {
		if err := uc.store.Delete(context.WithoutCancel(ctx), k[0], k[1]); err != nil {
			uc.log.Warn("onboarding rollback failed",
				zap.String("bucket", k[0]),
				zap.String("key", k[1]),
				zap.Error(err),
			)
		}
	}
}

func (uc *Submit) Execute(
	ctx context.Context,
	who *identity.Identity,
	in SubmitInput,
) (*SubmitResult, error) {

	who, err := identity.Require(who)
	if err != nil {
		return nil, err
	}

	profile, err := uc.repo.FindProProfile(ctx, who.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, httperr.ErrBusiness("not_professional")
	}

	// --------------------------------------------------
	// 1️⃣ Validation of every step
	// --------------------------------------------------
	d := in.Draft
	d.Specialties = domain.NormalizeSpecialties(d.Specialties)
	d.PortfolioCount = len(in.Portfolio)
	if err := domain.Validate(d); err != nil {
		return nil, err
	}

	if in.Avatar != nil {
		if _, err := media.Decode(in.Avatar.Data); err != nil {
			return nil, &domain.ValidationError{Step: domain.StepMedia, Field: "avatar", Code: "invalid_image"}
		}
	}

	// --------------------------------------------------
	// 2️⃣ Portfolio cap, counting what is already stored
	// --------------------------------------------------
	stored, err := uc.repo.CountPortfolio(ctx, who.UserID)
	if err != nil {
		return nil, err
	}
	keep, dropped := domain.ClampPortfolio(stored, len(in.Portfolio))
	dropped += in.Skipped
	images := in.Portfolio[:keep]

	encoded := make([][]byte, len(images))
	for i, img := range images {
		out, err := media.ToWebP(img.Data)
		if err != nil {
			return nil, &domain.ValidationError{Step: domain.StepMedia, Field: fmt.Sprintf("portfolio[%d]", i), Code: "invalid_image"}
		}
		encoded[i] = out
	}

	// --------------------------------------------------
	// 3️⃣ Uploads: all or nothing
	// --------------------------------------------------
	var up uploaded

	avatarURL, err := uc.uploadAvatar(ctx, who.UserID, in.Avatar, &up)
	if err != nil {
		uc.rollback(ctx, &up)
		return nil, httperr.Upstream("storage", "The avatar could not be uploaded.", err)
	}

	items := make([]models.ProPortfolioItem, len(encoded))
	category := d.Specialties[0]

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	for i := range encoded {
		i := i
		g.Go(func() error {
			key := fmt.Sprintf("%s/%s.webp", who.UserID, uuid.NewString())
			url, err := uc.store.Put(gctx, storage.Object{
				Bucket:      uc.buckets.Portfolio,
				Key:         key,
				Body:        encoded[i],
				ContentType: "image/webp",
			})
			if err != nil {
				return fmt.Errorf("portfolio image %d: %w", i+1, err)
			}
			up.add(uc.buckets.Portfolio, key)

			cat := category
			items[i] = models.ProPortfolioItem{
				ProID:    who.UserID,
				URL:      url,
				Caption:  images[i].Caption,
				Category: &cat,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.rollback(ctx, &up)
		return nil, httperr.Upstream("storage", "A portfolio image could not be uploaded.", err)
	}

	// --------------------------------------------------
	// 4️⃣ Profile + portfolio rows in one transaction
	// --------------------------------------------------
	wasComplete := profile.OnboardingComplete
	previousAvatar := profile.AvatarURL
	applyDraft(profile, d)
	if avatarURL != "" {
		profile.AvatarURL = &avatarURL
	}

	if err := uc.repo.CompleteOnboarding(ctx, profile, items); err != nil {
		uc.rollback(ctx, &up)
		return nil, err
	}

	if avatarURL != "" && previousAvatar != nil {
		uc.removeAvatar(ctx, *previousAvatar)
	}

	if !wasComplete {
		monitoring.OnboardingCompleted.Inc()
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   who.UserID,
		Action:   "onboarding_completed",
		Entity:   "pro_profile",
		EntityID: profile.ID,
		Metadata: map[string]int{"portfolio_added": len(items), "portfolio_dropped": dropped},
	})

	portfolio, err := uc.repo.ListPortfolio(ctx, who.UserID)
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		Profile:   profile,
		Portfolio: portfolio,
		Dropped:   dropped,
		Redirect:  "/dashboard/pro",
	}, nil
}

func (uc *Submit) uploadAvatar(
	ctx context.Context,
	userID string,
	avatar *Image,
	up *uploaded,
) (string, error) {

	if avatar == nil {
		return "", nil
	}

	ct := media.ContentType(avatar.Data)
	key := fmt.Sprintf("%s/avatar-%s.%s", userID, uuid.NewString(), media.Extension(ct))

	url, err := uc.store.Put(ctx, storage.Object{
		Bucket:      uc.buckets.Avatars,
		Key:         key,
		Body:        avatar.Data,
		ContentType: ct,
	})
	if err != nil {
		return "", err
	}

	up.add(uc.buckets.Avatars, key)
	return url, nil
}

// removeAvatar deletes a replaced avatar once the new one is committed.
func (uc *Submit) removeAvatar(ctx context.Context, url string) {
	key, ok := storage.KeyFromURL(url, uc.buckets.Avatars)
	if !ok {
		return
	}
	if err := uc.store.Delete(context.WithoutCancel(ctx), uc.buckets.Avatars, key); err != nil {
		uc.log.Warn("old avatar not removed", zap.String("key", key), zap.Error(err))
	}
}

func applyDraft(p *models.ProProfile, d domain.Draft) {
	p.CompanyName = strings.TrimSpace(d.CompanyName)
	p.FullName = strings.TrimSpace(d.FullName)
	p.Phone = optional(d.Phone)
	p.LicenseNumber = optional(d.LicenseNumber)
	p.YearsExperience = d.YearsExperience
	p.ServiceArea = optional(d.ServiceArea)
	p.HourlyRate = d.HourlyRate
	p.Specialties = d.Specialties
	p.Description = optional(d.Bio)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
