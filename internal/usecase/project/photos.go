package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/media"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/storage"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
)

const MaxPhotoSize = 10 << 20

type PhotoInput struct {
	Data    []byte
	Caption *string
	Phase   *string
}

type AddPhoto struct {
	repo   domain.Repository
	store  storage.Storage
	bucket string
	rt     realtime.Publisher
	log    *zap.Logger
}

func NewAddPhoto(
	repo domain.Repository,
	store storage.Storage,
	bucket string,
	rt realtime.Publisher,
	log *zap.Logger,
) *AddPhoto {
	return &AddPhoto{repo: repo, store: store, bucket: bucket, rt: rt, log: log}
}

// Execute stores the image under <projectId>/<uuid>.<ext> and records it.
// The object is removed again if the row cannot be written.
func (uc *AddPhoto) Execute(
	ctx context.Context,
	who *identity.Identity,
	projectID string,
	in PhotoInput,
) (*models.ProjectPhoto, error) {

	_, p, err := loadForParticipant(ctx, uc.repo, who, projectID)
	if err != nil {
		return nil, err
	}

	if len(in.Data) == 0 {
		return nil, httperr.ErrBusiness("empty_file")
	}
	if len(in.Data) > MaxPhotoSize {
		return nil, httperr.ErrBusiness("file_too_large")
	}
	if _, err := media.Decode(in.Data); err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	ct := media.ContentType(in.Data)
	key := fmt.Sprintf("%s/%s.%s", p.ID, uuid.NewString(), media.Extension(ct))

	url, err := uc.store.Put(ctx, storage.Object{
		Bucket:      uc.bucket,
		Key:         key,
		Body:        in.Data,
		ContentType: ct,
	})
	if err != nil {
		return nil, httperr.Upstream("storage", "The photo could not be uploaded.", err)
	}

	photo := &models.ProjectPhoto{
		ProjectID: p.ID,
		URL:       url,
		Caption:   in.Caption,
		Phase:     in.Phase,
	}
	if err := uc.repo.CreatePhoto(ctx, photo); err != nil {
		if derr := uc.store.Delete(ctx, uc.bucket, key); derr != nil {
			uc.log.Warn("orphan photo left in storage", zap.String("key", key), zap.Error(derr))
		}
		return nil, err
	}

	uc.rt.PublishRow(ctx, realtime.TablePhotos, realtime.OpInsert, photo.ID, photo)
	return photo, nil
}
