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

type MongoDBCategoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoDBCategoryRepositoryImpl{db: db}
}

func (r *MongoDBCategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("categories").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategory").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrDuplicateName
		}
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBCategoryRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	cursor, err := r.db.Collection("categories").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		return category, errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: categoryID}}

	err = r.db.Collection("categories").FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return category, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		return category, err
	}

	return category, nil
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryByName(ctx context.Context, name string) (category domain.Category, err error) {
	filter := bson.D{{Key: "name", Value: name}}

	err = r.db.Collection("categories").FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return category, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByName").Msg("")
		return category, err
	}

	return category, nil
}

func (r *MongoDBCategoryRepositoryImpl) CountCategories(ctx context.Context, parentsOnly bool) (count uint64, err error) {
	var filter bson.D
	if parentsOnly {
		filter = bson.D{{Key: "parent_id", Value: nil}}
	} else {
		filter = bson.D{{Key: "parent_id", Value: bson.D{{Key: "$ne", Value: nil}}}}
	}

	total, err := r.db.Collection("categories").CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountCategories").Msg("")
		return
	}

	return uint64(total), nil
}

func (r *MongoDBCategoryRepositoryImpl) UpdateCategory(ctx context.Context, data domain.Category) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "slug", Value: data.Slug},
		{Key: "color", Value: data.Color},
		{Key: "images", Value: data.Images},
		{Key: "parent_id", Value: data.ParentID},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("categories").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateCategory").Msg("Failed to update category")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCategoryRepositoryImpl) PushSubCategory(ctx context.Context, categoryID primitive.ObjectID, subCategoryID primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: categoryID}}

	update := bson.D{{Key: "$push", Value: bson.D{{Key: "subcategories", Value: subCategoryID}}}}

	result, err := r.db.Collection("categories").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PushSubCategory").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCategoryRepositoryImpl) PullSubCategory(ctx context.Context, categoryID primitive.ObjectID, subCategoryID primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: categoryID}}

	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "subcategories", Value: subCategoryID}}}}

	result, err := r.db.Collection("categories").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PullSubCategory").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCategoryRepositoryImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCategory").Msg("")
		return errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: categoryID}}

	result, err := r.db.Collection("categories").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCategory").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
