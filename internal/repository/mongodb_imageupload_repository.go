package repository

import (
	"context"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBImageUploadRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBImageUploadRepository(db *mongo.Database) ImageUploadRepository {
	return &MongoDBImageUploadRepositoryImpl{db: db}
}

func (r *MongoDBImageUploadRepositoryImpl) AddImageUpload(ctx context.Context, data domain.ImageUpload) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("image_uploads").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddImageUpload").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBImageUploadRepositoryImpl) GetImageUploads(ctx context.Context) (data []domain.ImageUpload, err error) {
	cursor, err := r.db.Collection("image_uploads").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetImageUploads").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetImageUploads").Msg("")
		return
	}

	return data, nil
}

// PullImageURL removes a URL from every upload batch that references it.
func (r *MongoDBImageUploadRepositoryImpl) PullImageURL(ctx context.Context, imageURL string) (err error) {
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "images", Value: imageURL}}}}

	_, err = r.db.Collection("image_uploads").UpdateMany(ctx, bson.D{}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PullImageURL").Msg("")
		return
	}

	return nil
}

func (r *MongoDBImageUploadRepositoryImpl) DeleteImageUpload(ctx context.Context, id primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	result, err := r.db.Collection("image_uploads").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteImageUpload").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
