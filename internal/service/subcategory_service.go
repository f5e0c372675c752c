package service

import (
	"context"
	"strings"
	"time"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/internal/repository"
	"github.com/freshmart/catalog-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubCategoryServiceImpl struct {
	subCategoryRepo repository.SubCategoryRepository
	categoryRepo    repository.CategoryRepository
}

func CreateSubCategoryService(subCategoryRepo repository.SubCategoryRepository, categoryRepo repository.CategoryRepository) SubCategoryService {
	return &SubCategoryServiceImpl{subCategoryRepo: subCategoryRepo, categoryRepo: categoryRepo}
}

func (s *SubCategoryServiceImpl) AddSubCategory(ctx context.Context, data dto.SubCategoryRequest) (subCategory domain.SubCategory, err error) {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return subCategory, errs.ErrClient
	}

	var parentID *primitive.ObjectID
	if data.ParentID != "" {
		parsed, idErr := primitive.ObjectIDFromHex(data.ParentID)
		if idErr != nil {
			return subCategory, errs.ErrClient
		}

		if _, err = s.categoryRepo.GetCategoryByID(ctx, data.ParentID); err != nil {
			if err == errs.ErrNotFound {
				return subCategory, errs.ErrParentCategoryNotFound
			}
			return
		}

		parentID = &parsed
	}

	_, err = s.subCategoryRepo.GetSubCategoryByName(ctx, name, parentID)
	if err == nil {
		return subCategory, errs.ErrDuplicateName
	}
	if err != errs.ErrNotFound {
		return
	}

	now := time.Now()
	subCategory = domain.SubCategory{
		Name:      name,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	subCategoryID, err := s.subCategoryRepo.AddSubCategory(ctx, subCategory)
	if err != nil {
		return
	}

	subCategory.ID = subCategoryID

	if parentID != nil {
		if err = s.categoryRepo.PushSubCategory(ctx, *parentID, subCategoryID); err != nil {
			return
		}
	}

	return subCategory, nil
}

func (s *SubCategoryServiceImpl) GetSubCategories(ctx context.Context, param dto.SubCategoryFilter) (data []dto.SubCategoryResponse, err error) {
	subCategories, err := s.subCategoryRepo.GetSubCategories(ctx, param)
	if err != nil {
		return
	}

	data = make([]dto.SubCategoryResponse, 0, len(subCategories))
	for _, sub := range subCategories {
		var parent *domain.Category
		if sub.ParentID != nil {
			// A dangling parent reference renders as a null parent.
			if found, parentErr := s.categoryRepo.GetCategoryByID(ctx, sub.ParentID.Hex()); parentErr == nil {
				parent = &found
			}
		}

		data = append(data, dto.BuildSubCategoryResponse(sub, parent))
	}

	return data, nil
}

func (s *SubCategoryServiceImpl) GetSubCategoriesByParent(ctx context.Context, parentID string) (data []dto.SubCategoryResponse, err error) {
	parent, err := s.categoryRepo.GetCategoryByID(ctx, parentID)
	if err != nil {
		return
	}

	subCategories, err := s.subCategoryRepo.GetSubCategories(ctx, dto.SubCategoryFilter{ParentID: parentID})
	if err != nil {
		return
	}

	data = make([]dto.SubCategoryResponse, 0, len(subCategories))
	for _, sub := range subCategories {
		data = append(data, dto.BuildSubCategoryResponse(sub, &parent))
	}

	return data, nil
}

// DeleteSubCategory unlinks the subcategory from its parent before deleting
// the record. Order matters: a crash between the two steps leaves at most a
// dangling reference in the parent set, never a parent pointer to a deleted
// child. The unlink is an idempotent set removal.
func (s *SubCategoryServiceImpl) DeleteSubCategory(ctx context.Context, id string) (err error) {
	subCategory, err := s.subCategoryRepo.GetSubCategoryByID(ctx, id)
	if err != nil {
		return
	}

	if subCategory.ParentID != nil {
		err = s.categoryRepo.PullSubCategory(ctx, *subCategory.ParentID, subCategory.ID)
		if err != nil && err != errs.ErrNotFound {
			return
		}
	}

	err = s.subCategoryRepo.DeleteSubCategory(ctx, id)
	if err == errs.ErrNotFound {
		// Lost a race with a concurrent delete; the record is gone either way.
		return nil
	}

	return err
}
