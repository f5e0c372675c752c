package service

import (
	"context"
	"testing"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupCategoryService(t *testing.T) (CategoryService, *memCategoryRepo, *memProductRepo, *memObjectStorage) {
	t.Helper()
	categoryRepo := newMemCategoryRepo()
	productRepo := newMemProductRepo()
	storage := newMemObjectStorage()
	return CreateCategoryService(categoryRepo, productRepo, storage), categoryRepo, productRepo, storage
}

func TestAddCategoryDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := setupCategoryService(t)

	category, err := svc.AddCategory(ctx, dto.CategoryRequest{
		Name:   "Fresh Fruits",
		Images: []string{"https://cdn.example.com/v1/ecommerce/fruits.jpg"},
	})

	require.NoError(t, err)
	assert.False(t, category.ID.IsZero())
	assert.Equal(t, "fresh-fruits", category.Slug)
	assert.Equal(t, "#FFFFFF", category.Color)
	assert.NotNil(t, category.SubCategories)
	assert.Empty(t, category.SubCategories)
}

func TestAddCategoryDuplicateName(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := setupCategoryService(t)

	_, err := svc.AddCategory(ctx, dto.CategoryRequest{Name: "Dairy", Images: []string{"a.jpg"}})
	require.NoError(t, err)

	_, err = svc.AddCategory(ctx, dto.CategoryRequest{Name: "Dairy", Images: []string{"b.jpg"}})
	assert.ErrorIs(t, err, errs.ErrDuplicateName)
}

func TestAddCategoryParentNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := setupCategoryService(t)

	_, err := svc.AddCategory(ctx, dto.CategoryRequest{
		Name:     "Cheese",
		Images:   []string{"a.jpg"},
		ParentID: primitive.NewObjectID().Hex(),
	})

	assert.ErrorIs(t, err, errs.ErrParentCategoryNotFound)
}

func TestUpdateCategoryAppendsImages(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := setupCategoryService(t)

	category, err := svc.AddCategory(ctx, dto.CategoryRequest{
		Name:   "Dairy",
		Images: []string{"one.jpg"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(ctx, dto.CategoryUpdateRequest{
		ID:     category.ID.Hex(),
		Color:  "#00FF00",
		Images: []string{"two.jpg"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Dairy", updated.Name)
	assert.Equal(t, "#00FF00", updated.Color)
	assert.Equal(t, []string{"one.jpg", "two.jpg"}, updated.Images)
}

func TestGetCategoryCounts(t *testing.T) {
	ctx := context.Background()
	svc, categoryRepo, _, _ := setupCategoryService(t)

	parentID, err := categoryRepo.AddCategory(ctx, domain.Category{Name: "Dairy"})
	require.NoError(t, err)
	_, err = categoryRepo.AddCategory(ctx, domain.Category{Name: "Cheese", ParentID: &parentID})
	require.NoError(t, err)
	_, err = categoryRepo.AddCategory(ctx, domain.Category{Name: "Snacks"})
	require.NoError(t, err)

	counts, err := svc.GetCategoryCounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, uint64(2), counts.ParentCategories)
	assert.Equal(t, uint64(1), counts.SubCategories)
}

func TestDeleteCategoryDestroysEachImageOnce(t *testing.T) {
	ctx := context.Background()
	svc, categoryRepo, _, storage := setupCategoryService(t)

	category, err := svc.AddCategory(ctx, dto.CategoryRequest{
		Name: "Dairy",
		Images: []string{
			"https://res.cloudinary.com/demo/image/upload/v1/ecommerce/milk.jpg",
			"https://res.cloudinary.com/demo/image/upload/v1/ecommerce/cheese.png",
			"https://res.cloudinary.com/demo/image/upload/v1/ecommerce/yogurt.webp",
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID.Hex()))

	assert.ElementsMatch(t, []string{
		"ecommerce/milk",
		"ecommerce/cheese",
		"ecommerce/yogurt",
	}, storage.destroyedIDs())

	_, err = categoryRepo.GetCategoryByID(ctx, category.ID.Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteCategoryStorageFailureContinues(t *testing.T) {
	ctx := context.Background()
	svc, categoryRepo, _, storage := setupCategoryService(t)

	category, err := svc.AddCategory(ctx, dto.CategoryRequest{
		Name: "Dairy",
		Images: []string{
			"https://res.cloudinary.com/demo/image/upload/v1/ecommerce/milk.jpg",
			"https://res.cloudinary.com/demo/image/upload/v1/ecommerce/cheese.png",
		},
	})
	require.NoError(t, err)

	storage.failOn["ecommerce/milk"] = errs.ErrObjectStorageWriteFault

	require.NoError(t, svc.DeleteCategory(ctx, category.ID.Hex()))

	assert.Contains(t, storage.destroyedIDs(), "ecommerce/cheese")
	_, err = categoryRepo.GetCategoryByID(ctx, category.ID.Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteCategoryLeavesSubCategoryRecords(t *testing.T) {
	ctx := context.Background()
	svc, categoryRepo, _, _ := setupCategoryService(t)

	subCategoryRepo := newMemSubCategoryRepo()
	subSvc := CreateSubCategoryService(subCategoryRepo, categoryRepo)

	category, err := svc.AddCategory(ctx, dto.CategoryRequest{Name: "Dairy", Images: []string{"a.jpg"}})
	require.NoError(t, err)

	subCategory, err := subSvc.AddSubCategory(ctx, dto.SubCategoryRequest{Name: "Cheese", ParentID: category.ID.Hex()})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID.Hex()))

	// The subcategory survives with a dangling parent reference.
	survivor, err := subCategoryRepo.GetSubCategoryByID(ctx, subCategory.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, survivor.ParentID)
	assert.Equal(t, category.ID, *survivor.ParentID)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, storage := setupCategoryService(t)

	err := svc.DeleteCategory(ctx, primitive.NewObjectID().Hex())

	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Empty(t, storage.destroyedIDs())
}

func TestGetCategoryProductCount(t *testing.T) {
	ctx := context.Background()
	svc, categoryRepo, productRepo, _ := setupCategoryService(t)

	categoryID, err := categoryRepo.AddCategory(ctx, domain.Category{Name: "Dairy"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = productRepo.AddProduct(ctx, domain.Product{Name: "p", CategoryID: categoryID})
		require.NoError(t, err)
	}
	_, err = productRepo.AddProduct(ctx, domain.Product{Name: "q", CategoryID: primitive.NewObjectID()})
	require.NoError(t, err)

	count, err := svc.GetCategoryProductCount(ctx, categoryID.Hex())

	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}
