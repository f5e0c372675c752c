package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUploadService(t *testing.T) (UploadService, *memImageUploadRepo, *memObjectStorage) {
	t.Helper()
	imageUploadRepo := newMemImageUploadRepo()
	storage := newMemObjectStorage()
	return CreateUploadService(imageUploadRepo, storage, "ecommerce"), imageUploadRepo, storage
}

func TestUploadImagesRecordsBatch(t *testing.T) {
	ctx := context.Background()
	svc, imageUploadRepo, storage := setupUploadService(t)

	assets, err := svc.UploadImages(ctx, []io.Reader{
		strings.NewReader("jpeg-bytes"),
		strings.NewReader("png-bytes"),
	})

	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, 2, storage.uploads)
	for _, asset := range assets {
		assert.NotEmpty(t, asset.URL)
		assert.True(t, strings.HasPrefix(asset.PublicID, "ecommerce/"))
	}

	uploads, err := imageUploadRepo.GetImageUploads(ctx)
	require.NoError(t, err)
	require.Len(t, uploads, 1)
	assert.Len(t, uploads[0].Images, 2)
}

func TestUploadImagesEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupUploadService(t)

	_, err := svc.UploadImages(ctx, nil)

	assert.ErrorIs(t, err, errs.ErrClient)
}

func TestGetImageUploadsEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupUploadService(t)

	_, err := svc.GetImageUploads(ctx)

	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteImageByURLPullsEveryBatch(t *testing.T) {
	ctx := context.Background()
	svc, imageUploadRepo, storage := setupUploadService(t)

	imageURL := "https://res.cloudinary.com/demo/image/upload/v1/ecommerce/banner.jpg"
	_, err := imageUploadRepo.AddImageUpload(ctx, domain.ImageUpload{Images: []string{imageURL, "https://cdn.example.com/other.jpg"}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteImageByURL(ctx, imageURL))

	assert.Equal(t, []string{"ecommerce/banner"}, storage.destroyedIDs())

	uploads, err := imageUploadRepo.GetImageUploads(ctx)
	require.NoError(t, err)
	require.Len(t, uploads, 1)
	assert.NotContains(t, uploads[0].Images, imageURL)
}

func TestDeleteImageByURLStorageFailureStillPulls(t *testing.T) {
	ctx := context.Background()
	svc, imageUploadRepo, storage := setupUploadService(t)

	imageURL := "https://res.cloudinary.com/demo/image/upload/v1/ecommerce/banner.jpg"
	_, err := imageUploadRepo.AddImageUpload(ctx, domain.ImageUpload{Images: []string{imageURL}})
	require.NoError(t, err)

	storage.failOn["ecommerce/banner"] = errs.ErrObjectStorageWriteFault

	require.NoError(t, svc.DeleteImageByURL(ctx, imageURL))

	uploads, err := imageUploadRepo.GetImageUploads(ctx)
	require.NoError(t, err)
	require.Len(t, uploads, 1)
	assert.Empty(t, uploads[0].Images)
}

func TestDeleteAllImageUploads(t *testing.T) {
	ctx := context.Background()
	svc, imageUploadRepo, storage := setupUploadService(t)

	_, err := imageUploadRepo.AddImageUpload(ctx, domain.ImageUpload{Images: []string{
		"https://cdn.example.com/v1/ecommerce/a.jpg",
		"https://cdn.example.com/v1/ecommerce/b.jpg",
	}})
	require.NoError(t, err)
	_, err = imageUploadRepo.AddImageUpload(ctx, domain.ImageUpload{Images: []string{
		"https://cdn.example.com/v1/ecommerce/c.jpg",
	}})
	require.NoError(t, err)

	deleted, err := svc.DeleteAllImageUploads(ctx)

	require.NoError(t, err)
	assert.Len(t, deleted, 2)
	assert.ElementsMatch(t, []string{"ecommerce/a", "ecommerce/b", "ecommerce/c"}, storage.destroyedIDs())

	_, err = svc.GetImageUploads(ctx)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
