package repository

import (
	"context"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBReviewRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBReviewRepository(db *mongo.Database) ReviewRepository {
	return &MongoDBReviewRepositoryImpl{db: db}
}

func (r *MongoDBReviewRepositoryImpl) AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("reviews").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReview").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewByID(ctx context.Context, id string) (review domain.Review, err error) {
	reviewID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewByID").Msg("")
		return review, errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: reviewID}}

	err = r.db.Collection("reviews").FindOne(ctx, filter).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return review, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewByID").Msg("")
		return review, err
	}

	return review, nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewsByProductID(ctx context.Context, productID primitive.ObjectID) (data []domain.Review, err error) {
	filter := bson.D{{Key: "product_id", Value: productID}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("reviews").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBReviewRepositoryImpl) DeleteReview(ctx context.Context, id string) (err error) {
	reviewID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteReview").Msg("")
		return errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: reviewID}}

	result, err := r.db.Collection("reviews").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteReview").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
