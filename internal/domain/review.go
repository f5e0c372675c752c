package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID  `bson:"product_id" json:"productId"`
	UserID    *primitive.ObjectID `bson:"user_id,omitempty" json:"userId,omitempty"`
	Rating    int                 `bson:"rating" json:"rating"`
	Comment   string              `bson:"comment" json:"comment"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
}
