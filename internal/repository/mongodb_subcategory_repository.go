package repository

import (
	"context"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBSubCategoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBSubCategoryRepository(db *mongo.Database) SubCategoryRepository {
	return &MongoDBSubCategoryRepositoryImpl{db: db}
}

func (r *MongoDBSubCategoryRepositoryImpl) AddSubCategory(ctx context.Context, data domain.SubCategory) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("subcategories").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddSubCategory").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrDuplicateName
		}
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBSubCategoryRepositoryImpl) GetSubCategoryByID(ctx context.Context, id string) (subCategory domain.SubCategory, err error) {
	subCategoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSubCategoryByID").Msg("")
		return subCategory, errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: subCategoryID}}

	err = r.db.Collection("subcategories").FindOne(ctx, filter).Decode(&subCategory)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return subCategory, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetSubCategoryByID").Msg("")
		return subCategory, err
	}

	return subCategory, nil
}

func (r *MongoDBSubCategoryRepositoryImpl) GetSubCategoryByName(ctx context.Context, name string, parentID *primitive.ObjectID) (subCategory domain.SubCategory, err error) {
	filter := bson.D{{Key: "name", Value: name}, {Key: "parent_id", Value: parentID}}

	err = r.db.Collection("subcategories").FindOne(ctx, filter).Decode(&subCategory)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return subCategory, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetSubCategoryByName").Msg("")
		return subCategory, err
	}

	return subCategory, nil
}

func (r *MongoDBSubCategoryRepositoryImpl) GetSubCategories(ctx context.Context, param dto.SubCategoryFilter) (data []domain.SubCategory, err error) {
	filter := bson.D{}

	if param.ParentID != "" {
		parentID, idErr := primitive.ObjectIDFromHex(param.ParentID)
		if idErr != nil {
			return nil, errs.ErrClient
		}
		filter = append(filter, bson.E{Key: "parent_id", Value: parentID})
	}

	if param.Name != "" {
		filter = append(filter, bson.E{Key: "name", Value: bson.D{
			{Key: "$regex", Value: param.Name},
			{Key: "$options", Value: "i"},
		}})
	}

	sortField := "name"
	if param.Sort != "" {
		sortField = param.Sort
	}

	sortOrder := 1
	if param.Order == "desc" {
		sortOrder = -1
	}

	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: sortOrder}})

	cursor, err := r.db.Collection("subcategories").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSubCategories").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSubCategories").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBSubCategoryRepositoryImpl) DeleteSubCategory(ctx context.Context, id string) (err error) {
	subCategoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteSubCategory").Msg("")
		return errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: subCategoryID}}

	result, err := r.db.Collection("subcategories").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteSubCategory").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
