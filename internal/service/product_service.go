package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/internal/repository"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/freshmart/catalog-service/pkg/response"
	"github.com/freshmart/catalog-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const relatedProductsLimit = 4

type ProductServiceImpl struct {
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	objectStorage   repository.ObjectStorageRepository
	kafkaProducer   *kafka.Conn
}

func CreateProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, subCategoryRepo repository.SubCategoryRepository, objectStorage repository.ObjectStorageRepository, kafkaProducer *kafka.Conn) ProductService {
	return &ProductServiceImpl{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		objectStorage:   objectStorage,
		kafkaProducer:   kafkaProducer,
	}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error) {
	categoryID, err := primitive.ObjectIDFromHex(data.CategoryID)
	if err != nil {
		return product, errs.ErrClient
	}

	if _, err = s.categoryRepo.GetCategoryByID(ctx, data.CategoryID); err != nil {
		return
	}

	var subCategoryID *primitive.ObjectID
	if data.SubCategoryID != "" {
		parsed, idErr := primitive.ObjectIDFromHex(data.SubCategoryID)
		if idErr != nil {
			return product, errs.ErrClient
		}
		subCategoryID = &parsed
	}

	images := make([]domain.ProductImage, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, domain.ProductImage{URL: img.URL, PublicID: img.PublicID})
	}

	now := time.Now()
	product = domain.Product{
		Name:          data.Name,
		Slug:          utils.SlugifyUnique(data.Name),
		Description:   data.Description,
		Brand:         data.Brand,
		Price:         data.Price,
		OldPrice:      data.OldPrice,
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
		CountInStock:  data.CountInStock,
		Discount:      data.Discount,
		Location:      data.Location,
		IsFeatured:    data.IsFeatured,
		Images:        images,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	productID, err := s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	product.ID = productID

	s.publishCatalogEvent(ctx, "product_created", product)

	return product, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, param dto.ProductFilter) (resp response.PaginationResponse, err error) {
	if param.Page == 0 {
		param.Page = 1
	}
	if param.Limit == 0 {
		param.Limit = 1000
	}

	products, total, err := s.productRepo.GetProducts(ctx, param)
	if err != nil {
		return
	}

	pages := total / param.Limit
	if total%param.Limit != 0 {
		pages++
	}

	resp.Metadata = response.PaginationMetadata{
		TotalCount: total,
		Page:       param.Page,
		Limit:      param.Limit,
		Pages:      pages,
	}
	resp.Records = products

	return resp, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	resp.Product = product
	resp.CategoryName, resp.SubCategoryName = s.resolveCategoryNames(ctx, product)

	return resp, nil
}

func (s *ProductServiceImpl) GetProductBySlug(ctx context.Context, slug string) (resp dto.ProductDetailResponse, err error) {
	product, err := s.productRepo.GetProductBySlug(ctx, slug)
	if err != nil {
		return
	}

	related, err := s.productRepo.GetRelatedProducts(ctx, product.CategoryID, product.ID, relatedProductsLimit)
	if err != nil {
		return
	}

	resp.Product = product
	resp.RelatedProducts = related
	resp.CategoryName, resp.SubCategoryName = s.resolveCategoryNames(ctx, product)

	return resp, nil
}

func (s *ProductServiceImpl) resolveCategoryNames(ctx context.Context, product domain.Product) (categoryName string, subCategoryName string) {
	if category, err := s.categoryRepo.GetCategoryByID(ctx, product.CategoryID.Hex()); err == nil {
		categoryName = category.Name
	}

	if product.SubCategoryID != nil {
		if subCategory, err := s.subCategoryRepo.GetSubCategoryByID(ctx, product.SubCategoryID.Hex()); err == nil {
			subCategoryName = subCategory.Name
		}
	}

	return categoryName, subCategoryName
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error) {
	product, err = s.productRepo.GetProductByID(ctx, data.ID)
	if err != nil {
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(data.CategoryID)
	if err != nil {
		return product, errs.ErrClient
	}

	var subCategoryID *primitive.ObjectID
	if data.SubCategoryID != "" {
		parsed, idErr := primitive.ObjectIDFromHex(data.SubCategoryID)
		if idErr != nil {
			return product, errs.ErrClient
		}
		subCategoryID = &parsed
	}

	product.Name = data.Name
	product.Description = data.Description
	product.Brand = data.Brand
	product.Price = data.Price
	product.OldPrice = data.OldPrice
	product.CategoryID = categoryID
	product.SubCategoryID = subCategoryID
	product.CountInStock = data.CountInStock
	product.Discount = data.Discount
	product.Location = data.Location
	product.IsFeatured = data.IsFeatured
	product.UpdatedAt = time.Now()

	if len(data.Images) > 0 {
		images := make([]domain.ProductImage, 0, len(data.Images))
		for _, img := range data.Images {
			images = append(images, domain.ProductImage{URL: img.URL, PublicID: img.PublicID})
		}
		product.Images = images
	}

	if err = s.productRepo.UpdateProduct(ctx, product); err != nil {
		return
	}

	s.publishCatalogEvent(ctx, "product_updated", product)

	return product, nil
}

// DeleteProduct removes every owned image from the object storage
// (best-effort) and then deletes the record. Reviews referencing the
// product are orphaned; their summaries have nothing left to land on.
func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	for _, image := range product.Images {
		if err := s.objectStorage.DeleteImage(ctx, image.PublicID); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "DeleteProduct").Str("public_id", image.PublicID).Msg("Failed to delete image")
		}
	}

	if err = s.productRepo.DeleteProduct(ctx, id); err != nil {
		return
	}

	s.publishCatalogEvent(ctx, "product_deleted", product)

	return nil
}

func (s *ProductServiceImpl) DeleteProductImage(ctx context.Context, productID string, publicID string) (err error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	found := false
	for _, image := range product.Images {
		if image.PublicID == publicID {
			found = true
			break
		}
	}

	if !found {
		return errs.ErrNotFound
	}

	if err := s.objectStorage.DeleteImage(ctx, publicID); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "DeleteProductImage").Str("public_id", publicID).Msg("Failed to delete image")
	}

	return s.productRepo.PullProductImage(ctx, product.ID, publicID)
}

// publishCatalogEvent is best-effort: the catalog write is already durable,
// so a publish failure is logged drift, not a request failure.
func (s *ProductServiceImpl) publishCatalogEvent(ctx context.Context, eventType string, product domain.Product) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      product,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishCatalogEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.kafkaProducer.WriteMessages(kafka.Message{
			Key:   []byte(product.ID.Hex()),
			Value: jsonMsg,
		})
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishCatalogEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Ctx(ctx).Error().Err(err).Str("component", "publishCatalogEvent").Msgf("failed to write Kafka message after %d attempts", maxRetries)
}
