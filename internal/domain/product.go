package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name"`
	Slug          string              `bson:"slug" json:"slug"`
	Description   string              `bson:"description" json:"description"`
	Brand         string              `bson:"brand" json:"brand"`
	Price         float64             `bson:"price" json:"price"`
	OldPrice      float64             `bson:"old_price,omitempty" json:"oldPrice,omitempty"`
	CategoryID    primitive.ObjectID  `bson:"category_id" json:"categoryId"`
	SubCategoryID *primitive.ObjectID `bson:"subcategory_id,omitempty" json:"subCategoryId,omitempty"`
	CountInStock  uint64              `bson:"count_in_stock" json:"countInStock"`
	Discount      float64             `bson:"discount" json:"discount"`
	Location      string              `bson:"location,omitempty" json:"location,omitempty"`
	IsFeatured    bool                `bson:"is_featured" json:"isFeatured"`
	Images        []ProductImage      `bson:"images" json:"images"`

	// AverageRating and NumReviews are derived from the reviews collection
	// and written only by the rating aggregator.
	AverageRating float64 `bson:"average_rating" json:"averageRating"`
	NumReviews    uint64  `bson:"num_reviews" json:"numReviews"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type ProductImage struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"public_id" json:"publicId"`
}

// RatingSummary is the aggregate pair maintained on a product.
type RatingSummary struct {
	AverageRating float64
	NumReviews    uint64
}
