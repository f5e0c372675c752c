package dto

import "github.com/freshmart/catalog-service/internal/domain"

type ProductResponse struct {
	Product         domain.Product `json:"product"`
	CategoryName    string         `json:"categoryName,omitempty"`
	SubCategoryName string         `json:"subCategoryName,omitempty"`
}

type ProductDetailResponse struct {
	Product         domain.Product   `json:"product"`
	CategoryName    string           `json:"categoryName,omitempty"`
	SubCategoryName string           `json:"subCategoryName,omitempty"`
	RelatedProducts []domain.Product `json:"relatedProducts"`
}

type ProductReviewsResponse struct {
	Reviews       []domain.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	NumReviews    uint64          `json:"numReviews"`
}

type UploadedFilesResponse struct {
	Files []domain.Asset `json:"files"`
}
