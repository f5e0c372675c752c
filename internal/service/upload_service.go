package service

import (
	"context"
	"io"
	"time"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/repository"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/freshmart/catalog-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type UploadServiceImpl struct {
	imageUploadRepo repository.ImageUploadRepository
	objectStorage   repository.ObjectStorageRepository
	folder          string
}

func CreateUploadService(imageUploadRepo repository.ImageUploadRepository, objectStorage repository.ObjectStorageRepository, folder string) UploadService {
	return &UploadServiceImpl{imageUploadRepo: imageUploadRepo, objectStorage: objectStorage, folder: folder}
}

func (s *UploadServiceImpl) UploadImages(ctx context.Context, files []io.Reader) (assets []domain.Asset, err error) {
	if len(files) == 0 {
		return nil, errs.ErrClient
	}

	for _, file := range files {
		asset, uploadErr := s.objectStorage.UploadImage(ctx, file, s.folder)
		if uploadErr != nil {
			return nil, uploadErr
		}
		assets = append(assets, asset)
	}

	urls := make([]string, 0, len(assets))
	for _, asset := range assets {
		urls = append(urls, asset.URL)
	}

	_, err = s.imageUploadRepo.AddImageUpload(ctx, domain.ImageUpload{
		Images:    urls,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return assets, nil
}

func (s *UploadServiceImpl) GetImageUploads(ctx context.Context) (data []domain.ImageUpload, err error) {
	data, err = s.imageUploadRepo.GetImageUploads(ctx)
	if err != nil {
		return
	}

	if len(data) == 0 {
		return nil, errs.ErrNotFound
	}

	return data, nil
}

// DeleteImageByURL removes the binary from the object storage and pulls the
// URL out of every upload batch referencing it.
func (s *UploadServiceImpl) DeleteImageByURL(ctx context.Context, imageURL string) (err error) {
	publicID := utils.PublicIDFromURL(imageURL)

	if err := s.objectStorage.DeleteImage(ctx, publicID); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "DeleteImageByURL").Str("public_id", publicID).Msg("Failed to delete image")
	}

	return s.imageUploadRepo.PullImageURL(ctx, imageURL)
}

func (s *UploadServiceImpl) DeleteAllImageUploads(ctx context.Context) (deleted []domain.ImageUpload, err error) {
	uploads, err := s.imageUploadRepo.GetImageUploads(ctx)
	if err != nil {
		return
	}

	if len(uploads) == 0 {
		return nil, errs.ErrNotFound
	}

	for _, upload := range uploads {
		for _, imageURL := range upload.Images {
			publicID := utils.PublicIDFromURL(imageURL)
			if err := s.objectStorage.DeleteImage(ctx, publicID); err != nil {
				log.Ctx(ctx).Warn().Err(err).Str("component", "DeleteAllImageUploads").Str("public_id", publicID).Msg("Failed to delete image")
			}
		}

		if err = s.imageUploadRepo.DeleteImageUpload(ctx, upload.ID); err != nil {
			return
		}

		deleted = append(deleted, upload)
	}

	return deleted, nil
}
