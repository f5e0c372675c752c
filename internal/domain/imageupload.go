package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageUpload is a standalone upload batch, not linked to any entity until
// a client attaches the URLs to a category or product.
type ImageUpload struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Images    []string           `bson:"images" json:"images"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// Asset is a stored binary on the remote asset service.
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
