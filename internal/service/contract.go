package service

import (
	"context"
	"io"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/pkg/response"
)

type CategoryService interface {
	AddCategory(ctx context.Context, data dto.CategoryRequest) (category domain.Category, err error)
	GetCategories(ctx context.Context) (data []domain.Category, err error)
	GetCategoryCounts(ctx context.Context) (counts dto.CategoryCountsResponse, err error)
	GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error)
	GetCategoryProductCount(ctx context.Context, id string) (count uint64, err error)
	UpdateCategory(ctx context.Context, data dto.CategoryUpdateRequest) (category domain.Category, err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type SubCategoryService interface {
	AddSubCategory(ctx context.Context, data dto.SubCategoryRequest) (subCategory domain.SubCategory, err error)
	GetSubCategories(ctx context.Context, param dto.SubCategoryFilter) (data []dto.SubCategoryResponse, err error)
	GetSubCategoriesByParent(ctx context.Context, parentID string) (data []dto.SubCategoryResponse, err error)
	DeleteSubCategory(ctx context.Context, id string) (err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error)
	GetProducts(ctx context.Context, param dto.ProductFilter) (resp response.PaginationResponse, err error)
	GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error)
	GetProductBySlug(ctx context.Context, slug string) (resp dto.ProductDetailResponse, err error)
	UpdateProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	DeleteProductImage(ctx context.Context, productID string, publicID string) (err error)
}

type ReviewService interface {
	AddReview(ctx context.Context, data dto.ReviewRequest) (review domain.Review, err error)
	GetProductReviews(ctx context.Context, productID string) (resp dto.ProductReviewsResponse, err error)
	DeleteReview(ctx context.Context, id string) (err error)
}

type UserService interface {
	SignUp(ctx context.Context, data dto.SignUpRequest) (resp dto.LoginResponse, err error)
	Login(ctx context.Context, data dto.LoginRequest) (resp dto.LoginResponse, err error)
}

type UploadService interface {
	UploadImages(ctx context.Context, files []io.Reader) (assets []domain.Asset, err error)
	GetImageUploads(ctx context.Context) (data []domain.ImageUpload, err error)
	DeleteImageByURL(ctx context.Context, imageURL string) (err error)
	DeleteAllImageUploads(ctx context.Context) (deleted []domain.ImageUpload, err error)
}
