package repository

import (
	"context"
	"io"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryRepository interface {
	AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error)
	GetCategories(ctx context.Context) (data []domain.Category, err error)
	GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error)
	GetCategoryByName(ctx context.Context, name string) (category domain.Category, err error)
	CountCategories(ctx context.Context, parentsOnly bool) (count uint64, err error)
	UpdateCategory(ctx context.Context, data domain.Category) (err error)
	PushSubCategory(ctx context.Context, categoryID primitive.ObjectID, subCategoryID primitive.ObjectID) (err error)
	PullSubCategory(ctx context.Context, categoryID primitive.ObjectID, subCategoryID primitive.ObjectID) (err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type SubCategoryRepository interface {
	AddSubCategory(ctx context.Context, data domain.SubCategory) (id primitive.ObjectID, err error)
	GetSubCategoryByID(ctx context.Context, id string) (subCategory domain.SubCategory, err error)
	GetSubCategoryByName(ctx context.Context, name string, parentID *primitive.ObjectID) (subCategory domain.SubCategory, err error)
	GetSubCategories(ctx context.Context, param dto.SubCategoryFilter) (data []domain.SubCategory, err error)
	DeleteSubCategory(ctx context.Context, id string) (err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, param dto.ProductFilter) (data []domain.Product, total uint64, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetProductBySlug(ctx context.Context, slug string) (product domain.Product, err error)
	GetRelatedProducts(ctx context.Context, categoryID primitive.ObjectID, excludeID primitive.ObjectID, limit int64) (data []domain.Product, err error)
	CountProductsByCategory(ctx context.Context, categoryID string) (count uint64, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	UpdateRatingSummary(ctx context.Context, productID primitive.ObjectID, summary domain.RatingSummary) (err error)
	PullProductImage(ctx context.Context, productID primitive.ObjectID, publicID string) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type ReviewRepository interface {
	AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error)
	GetReviewByID(ctx context.Context, id string) (review domain.Review, err error)
	GetReviewsByProductID(ctx context.Context, productID primitive.ObjectID) (data []domain.Review, err error)
	DeleteReview(ctx context.Context, id string) (err error)
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
	GetUserByUsername(ctx context.Context, username string) (user domain.User, err error)
}

type ImageUploadRepository interface {
	AddImageUpload(ctx context.Context, data domain.ImageUpload) (id primitive.ObjectID, err error)
	GetImageUploads(ctx context.Context) (data []domain.ImageUpload, err error)
	PullImageURL(ctx context.Context, imageURL string) (err error)
	DeleteImageUpload(ctx context.Context, id primitive.ObjectID) (err error)
}

// ObjectStorageRepository is the remote asset service boundary. DeleteImage
// failures are the caller's best-effort concern: log and continue.
type ObjectStorageRepository interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (asset domain.Asset, err error)
	DeleteImage(ctx context.Context, publicID string) (err error)
}
