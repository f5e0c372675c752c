package objectstorage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/freshmart/catalog-service/config"
	circuitbreaker "github.com/freshmart/catalog-service/internal/infrastructure/circuit-breaker"
	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/repository"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

type CloudinaryRepositoryImpl struct {
	client         *cloudinary.Cloudinary
	uploadBreaker  *gobreaker.CircuitBreaker[*uploader.UploadResult]
	destroyBreaker *gobreaker.CircuitBreaker[*uploader.DestroyResult]
}

func CreateCloudinaryRepository(conf config.CloudinaryConfig) (repository.ObjectStorageRepository, error) {
	client, err := cloudinary.NewFromParams(conf.CloudName, conf.APIKey, conf.APISecret)
	if err != nil {
		return nil, err
	}

	return &CloudinaryRepositoryImpl{
		client:         client,
		uploadBreaker:  circuitbreaker.CreateCircuitBreaker[*uploader.UploadResult]("cloudinary-upload"),
		destroyBreaker: circuitbreaker.CreateCircuitBreaker[*uploader.DestroyResult]("cloudinary-destroy"),
	}, nil
}

func (r *CloudinaryRepositoryImpl) UploadImage(ctx context.Context, file io.Reader, folder string) (asset domain.Asset, err error) {
	result, err := r.uploadBreaker.Execute(func() (*uploader.UploadResult, error) {
		return r.client.Upload.Upload(ctx, file, uploader.UploadParams{
			Folder:       folder,
			ResourceType: "auto",
		})
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadImage").Msg("")
		return asset, errs.ErrObjectStorageWriteFault
	}

	return domain.Asset{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}

func (r *CloudinaryRepositoryImpl) DeleteImage(ctx context.Context, publicID string) (err error) {
	result, err := r.destroyBreaker.Execute(func() (*uploader.DestroyResult, error) {
		return r.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteImage").Msg("")
		return err
	}

	if result.Result == "not found" {
		return errs.ErrNotFound
	}

	return nil
}
