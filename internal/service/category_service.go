package service

import (
	"context"
	"time"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/internal/repository"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/freshmart/catalog-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultCategoryColor = "#FFFFFF"

type CategoryServiceImpl struct {
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	objectStorage repository.ObjectStorageRepository
}

func CreateCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, objectStorage repository.ObjectStorageRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo, productRepo: productRepo, objectStorage: objectStorage}
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, data dto.CategoryRequest) (category domain.Category, err error) {
	_, err = s.categoryRepo.GetCategoryByName(ctx, data.Name)
	if err == nil {
		return category, errs.ErrDuplicateName
	}
	if err != errs.ErrNotFound {
		return
	}

	var parentID *primitive.ObjectID
	if data.ParentID != "" {
		parsed, idErr := primitive.ObjectIDFromHex(data.ParentID)
		if idErr != nil {
			return category, errs.ErrClient
		}

		if _, err = s.categoryRepo.GetCategoryByID(ctx, data.ParentID); err != nil {
			if err == errs.ErrNotFound {
				return category, errs.ErrParentCategoryNotFound
			}
			return
		}

		parentID = &parsed
	}

	slug := data.Slug
	if slug == "" {
		slug = utils.Slugify(data.Name)
	}

	color := data.Color
	if color == "" {
		color = defaultCategoryColor
	}

	now := time.Now()
	category = domain.Category{
		Name:          data.Name,
		Slug:          slug,
		Images:        data.Images,
		Color:         color,
		ParentID:      parentID,
		SubCategories: []primitive.ObjectID{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	categoryID, err := s.categoryRepo.AddCategory(ctx, category)
	if err != nil {
		return
	}

	category.ID = categoryID

	return category, nil
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	return s.categoryRepo.GetCategories(ctx)
}

func (s *CategoryServiceImpl) GetCategoryCounts(ctx context.Context) (counts dto.CategoryCountsResponse, err error) {
	parents, err := s.categoryRepo.CountCategories(ctx, true)
	if err != nil {
		return
	}

	children, err := s.categoryRepo.CountCategories(ctx, false)
	if err != nil {
		return
	}

	counts.ParentCategories = parents
	counts.SubCategories = children

	return counts, nil
}

func (s *CategoryServiceImpl) GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error) {
	return s.categoryRepo.GetCategoryByID(ctx, id)
}

func (s *CategoryServiceImpl) GetCategoryProductCount(ctx context.Context, id string) (count uint64, err error) {
	return s.productRepo.CountProductsByCategory(ctx, id)
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, data dto.CategoryUpdateRequest) (category domain.Category, err error) {
	category, err = s.categoryRepo.GetCategoryByID(ctx, data.ID)
	if err != nil {
		return
	}

	if data.Name != "" {
		category.Name = data.Name
	}

	if data.Slug != "" {
		category.Slug = utils.Slugify(data.Slug)
	}

	if data.Color != "" {
		category.Color = data.Color
	}

	// New images are appended to the existing set, never replacing it.
	category.Images = append(category.Images, data.Images...)

	if data.ParentID != "" {
		parsed, idErr := primitive.ObjectIDFromHex(data.ParentID)
		if idErr != nil {
			return category, errs.ErrClient
		}
		category.ParentID = &parsed
	}

	category.UpdatedAt = time.Now()

	if err = s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return
	}

	return category, nil
}

// DeleteCategory removes every owned image from the object storage
// (best-effort: a failed deletion is logged, never fatal) and then deletes
// the record. Subcategories keep a dangling parent reference; readers
// tolerate it.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return
	}

	for _, imageURL := range category.Images {
		publicID := utils.PublicIDFromURL(imageURL)
		if err := s.objectStorage.DeleteImage(ctx, publicID); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "DeleteCategory").Str("public_id", publicID).Msg("Failed to delete image")
		}
	}

	return s.categoryRepo.DeleteCategory(ctx, id)
}
