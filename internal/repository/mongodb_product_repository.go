package repository

import (
	"context"
	"strings"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrDuplicateSlug
		}
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func buildProductFilter(param dto.ProductFilter) (bson.D, error) {
	filter := bson.D{}

	if param.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(param.CategoryID)
		if err != nil {
			return nil, errs.ErrClient
		}
		filter = append(filter, bson.E{Key: "category_id", Value: categoryID})
	}

	if param.SubCategoryID != "" {
		subCategoryID, err := primitive.ObjectIDFromHex(param.SubCategoryID)
		if err != nil {
			return nil, errs.ErrClient
		}
		filter = append(filter, bson.E{Key: "subcategory_id", Value: subCategoryID})
	}

	if param.Brand != "" {
		filter = append(filter, bson.E{Key: "brand", Value: param.Brand})
	}

	if param.IsFeatured != "" {
		filter = append(filter, bson.E{Key: "is_featured", Value: param.IsFeatured == "true"})
	}

	if param.Search != "" {
		regex := bson.D{{Key: "$regex", Value: param.Search}, {Key: "$options", Value: "i"}}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: regex}},
			bson.D{{Key: "description", Value: regex}},
			bson.D{{Key: "brand", Value: regex}},
		}})
	}

	return filter, nil
}

func buildProductSort(sortBy string) bson.D {
	if sortBy == "" {
		return bson.D{{Key: "created_at", Value: -1}}
	}

	field := sortBy
	order := 1
	if parts := strings.SplitN(sortBy, ":", 2); len(parts) == 2 {
		field = parts[0]
		if parts[1] == "desc" {
			order = -1
		}
	}

	return bson.D{{Key: field, Value: order}}
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, param dto.ProductFilter) (data []domain.Product, total uint64, err error) {
	filter, err := buildProductFilter(param)
	if err != nil {
		return
	}

	opts := options.Find().SetSort(buildProductSort(param.SortBy))
	if param.Limit != 0 && param.Page != 0 {
		opts = opts.SetSkip((int64(param.Page) - 1) * int64(param.Limit)).SetLimit(int64(param.Limit))
	}

	cursor, err := r.db.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	count, err := r.db.Collection("products").CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, uint64(count), nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductBySlug(ctx context.Context, slug string) (product domain.Product, err error) {
	filter := bson.D{{Key: "slug", Value: slug}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductBySlug").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetRelatedProducts(ctx context.Context, categoryID primitive.ObjectID, excludeID primitive.ObjectID, limit int64) (data []domain.Product, err error) {
	filter := bson.D{
		{Key: "category_id", Value: categoryID},
		{Key: "_id", Value: bson.D{{Key: "$ne", Value: excludeID}}},
	}

	opts := options.Find().SetLimit(limit)

	cursor, err := r.db.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetRelatedProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetRelatedProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) CountProductsByCategory(ctx context.Context, categoryID string) (count uint64, err error) {
	id, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProductsByCategory").Msg("")
		return 0, errs.ErrClient
	}

	total, err := r.db.Collection("products").CountDocuments(ctx, bson.D{{Key: "category_id", Value: id}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProductsByCategory").Msg("")
		return
	}

	return uint64(total), nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "description", Value: data.Description},
		{Key: "brand", Value: data.Brand},
		{Key: "price", Value: data.Price},
		{Key: "old_price", Value: data.OldPrice},
		{Key: "category_id", Value: data.CategoryID},
		{Key: "subcategory_id", Value: data.SubCategoryID},
		{Key: "count_in_stock", Value: data.CountInStock},
		{Key: "discount", Value: data.Discount},
		{Key: "location", Value: data.Location},
		{Key: "is_featured", Value: data.IsFeatured},
		{Key: "images", Value: data.Images},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

// UpdateRatingSummary is the single write path for the derived aggregate
// pair. A missing product is reported as errs.ErrNotFound so callers can
// treat it as a benign no-op.
func (r *MongoDBProductRepositoryImpl) UpdateRatingSummary(ctx context.Context, productID primitive.ObjectID, summary domain.RatingSummary) (err error) {
	filter := bson.D{{Key: "_id", Value: productID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "average_rating", Value: summary.AverageRating},
		{Key: "num_reviews", Value: summary.NumReviews},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateRatingSummary").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) PullProductImage(ctx context.Context, productID primitive.ObjectID, publicID string) (err error) {
	filter := bson.D{{Key: "_id", Value: productID}}

	update := bson.D{{Key: "$pull", Value: bson.D{
		{Key: "images", Value: bson.D{{Key: "public_id", Value: publicID}}},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PullProductImage").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrClient
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	result, err := r.db.Collection("products").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
