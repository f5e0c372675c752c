package dto

type ProductRequest struct {
	ID            string              `json:"id" param:"id"`
	Name          string              `json:"name" validate:"required,max=100"`
	Description   string              `json:"description" validate:"required,max=2000"`
	Brand         string              `json:"brand" validate:"required,max=50"`
	Price         float64             `json:"price" validate:"required,gte=0"`
	OldPrice      float64             `json:"oldPrice" validate:"gte=0"`
	CategoryID    string              `json:"category" validate:"required"`
	SubCategoryID string              `json:"subCategory"`
	CountInStock  uint64              `json:"countInStock"`
	Discount      float64             `json:"discount" validate:"gte=0,lte=100"`
	Location      string              `json:"location" validate:"max=100"`
	IsFeatured    bool                `json:"isFeatured"`
	Images        []ProductImageInput `json:"images"`
}

type ProductImageInput struct {
	URL      string `json:"url" validate:"required"`
	PublicID string `json:"publicId" validate:"required"`
}

type ProductImageDeleteRequest struct {
	PublicID string `json:"publicId" validate:"required"`
}
