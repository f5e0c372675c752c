package service

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes mirroring the MongoDB implementations' error
// contracts: bad hex ids map to ErrClient, missing documents to ErrNotFound.

type memCategoryRepo struct {
	mu   sync.Mutex
	data map[primitive.ObjectID]domain.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{data: map[primitive.ObjectID]domain.Category{}}
}

func (r *memCategoryRepo) AddCategory(ctx context.Context, data domain.Category) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	data.ID = id
	r.data[id] = data
	return id, nil
}

func (r *memCategoryRepo) GetCategories(ctx context.Context) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Category, 0, len(r.data))
	for _, c := range r.data {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCategoryRepo) GetCategoryByID(ctx context.Context, id string) (domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Category{}, errs.ErrClient
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.data[oid]
	if !ok {
		return domain.Category{}, errs.ErrNotFound
	}
	return c, nil
}

func (r *memCategoryRepo) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.data {
		if c.Name == name {
			return c, nil
		}
	}
	return domain.Category{}, errs.ErrNotFound
}

func (r *memCategoryRepo) CountCategories(ctx context.Context, parentsOnly bool) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count uint64
	for _, c := range r.data {
		if parentsOnly == (c.ParentID == nil) {
			count++
		}
	}
	return count, nil
}

func (r *memCategoryRepo) UpdateCategory(ctx context.Context, data domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[data.ID]; !ok {
		return errs.ErrNotFound
	}
	r.data[data.ID] = data
	return nil
}

func (r *memCategoryRepo) PushSubCategory(ctx context.Context, categoryID primitive.ObjectID, subCategoryID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.data[categoryID]
	if !ok {
		return errs.ErrNotFound
	}
	c.SubCategories = append(c.SubCategories, subCategoryID)
	r.data[categoryID] = c
	return nil
}

func (r *memCategoryRepo) PullSubCategory(ctx context.Context, categoryID primitive.ObjectID, subCategoryID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.data[categoryID]
	if !ok {
		return errs.ErrNotFound
	}

	kept := c.SubCategories[:0]
	for _, id := range c.SubCategories {
		if id != subCategoryID {
			kept = append(kept, id)
		}
	}
	c.SubCategories = kept
	r.data[categoryID] = c
	return nil
}

func (r *memCategoryRepo) DeleteCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[oid]; !ok {
		return errs.ErrNotFound
	}
	delete(r.data, oid)
	return nil
}

type memSubCategoryRepo struct {
	mu   sync.Mutex
	data map[primitive.ObjectID]domain.SubCategory
}

func newMemSubCategoryRepo() *memSubCategoryRepo {
	return &memSubCategoryRepo{data: map[primitive.ObjectID]domain.SubCategory{}}
}

func (r *memSubCategoryRepo) AddSubCategory(ctx context.Context, data domain.SubCategory) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	data.ID = id
	r.data[id] = data
	return id, nil
}

func (r *memSubCategoryRepo) GetSubCategoryByID(ctx context.Context, id string) (domain.SubCategory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.SubCategory{}, errs.ErrClient
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.data[oid]
	if !ok {
		return domain.SubCategory{}, errs.ErrNotFound
	}
	return s, nil
}

func (r *memSubCategoryRepo) GetSubCategoryByName(ctx context.Context, name string, parentID *primitive.ObjectID) (domain.SubCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.data {
		if !strings.EqualFold(s.Name, name) {
			continue
		}
		if (s.ParentID == nil) != (parentID == nil) {
			continue
		}
		if s.ParentID == nil || *s.ParentID == *parentID {
			return s, nil
		}
	}
	return domain.SubCategory{}, errs.ErrNotFound
}

func (r *memSubCategoryRepo) GetSubCategories(ctx context.Context, param dto.SubCategoryFilter) ([]domain.SubCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []domain.SubCategory{}
	for _, s := range r.data {
		if param.ParentID != "" {
			if s.ParentID == nil || s.ParentID.Hex() != param.ParentID {
				continue
			}
		}
		if param.Name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(param.Name)) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *memSubCategoryRepo) DeleteSubCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[oid]; !ok {
		return errs.ErrNotFound
	}
	delete(r.data, oid)
	return nil
}

type memProductRepo struct {
	mu   sync.Mutex
	data map[primitive.ObjectID]domain.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{data: map[primitive.ObjectID]domain.Product{}}
}

func (r *memProductRepo) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	data.ID = id
	r.data[id] = data
	return id, nil
}

func (r *memProductRepo) GetProducts(ctx context.Context, param dto.ProductFilter) ([]domain.Product, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []domain.Product{}
	for _, p := range r.data {
		if param.CategoryID != "" && p.CategoryID.Hex() != param.CategoryID {
			continue
		}
		if param.Brand != "" && p.Brand != param.Brand {
			continue
		}
		matched = append(matched, p)
	}

	total := uint64(len(matched))

	start := (param.Page - 1) * param.Limit
	if start >= total {
		return []domain.Product{}, total, nil
	}
	end := start + param.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *memProductRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Product{}, errs.ErrClient
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.data[oid]
	if !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return p, nil
}

func (r *memProductRepo) GetProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.data {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Product{}, errs.ErrNotFound
}

func (r *memProductRepo) GetRelatedProducts(ctx context.Context, categoryID primitive.ObjectID, excludeID primitive.ObjectID, limit int64) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []domain.Product{}
	for _, p := range r.data {
		if p.CategoryID != categoryID || p.ID == excludeID {
			continue
		}
		out = append(out, p)
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (r *memProductRepo) CountProductsByCategory(ctx context.Context, categoryID string) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count uint64
	for _, p := range r.data {
		if p.CategoryID.Hex() == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *memProductRepo) UpdateProduct(ctx context.Context, data domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[data.ID]; !ok {
		return errs.ErrNotFound
	}
	r.data[data.ID] = data
	return nil
}

func (r *memProductRepo) UpdateRatingSummary(ctx context.Context, productID primitive.ObjectID, summary domain.RatingSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.data[productID]
	if !ok {
		return errs.ErrNotFound
	}
	p.AverageRating = summary.AverageRating
	p.NumReviews = summary.NumReviews
	r.data[productID] = p
	return nil
}

func (r *memProductRepo) PullProductImage(ctx context.Context, productID primitive.ObjectID, publicID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.data[productID]
	if !ok {
		return errs.ErrNotFound
	}

	kept := p.Images[:0]
	for _, img := range p.Images {
		if img.PublicID != publicID {
			kept = append(kept, img)
		}
	}
	p.Images = kept
	r.data[productID] = p
	return nil
}

func (r *memProductRepo) DeleteProduct(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[oid]; !ok {
		return errs.ErrNotFound
	}
	delete(r.data, oid)
	return nil
}

type memReviewRepo struct {
	mu   sync.Mutex
	data map[primitive.ObjectID]domain.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{data: map[primitive.ObjectID]domain.Review{}}
}

func (r *memReviewRepo) AddReview(ctx context.Context, data domain.Review) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	data.ID = id
	r.data[id] = data
	return id, nil
}

func (r *memReviewRepo) GetReviewByID(ctx context.Context, id string) (domain.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Review{}, errs.ErrClient
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rv, ok := r.data[oid]
	if !ok {
		return domain.Review{}, errs.ErrNotFound
	}
	return rv, nil
}

func (r *memReviewRepo) GetReviewsByProductID(ctx context.Context, productID primitive.ObjectID) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []domain.Review{}
	for _, rv := range r.data {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *memReviewRepo) DeleteReview(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[oid]; !ok {
		return errs.ErrNotFound
	}
	delete(r.data, oid)
	return nil
}

type memUserRepo struct {
	mu   sync.Mutex
	data map[primitive.ObjectID]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{data: map[primitive.ObjectID]domain.User{}}
}

func (r *memUserRepo) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	data.ID = id
	r.data[id] = data
	return id, nil
}

func (r *memUserRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.data {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, errs.ErrNotFound
}

func (r *memUserRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.data {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, errs.ErrNotFound
}

type memImageUploadRepo struct {
	mu   sync.Mutex
	data map[primitive.ObjectID]domain.ImageUpload
}

func newMemImageUploadRepo() *memImageUploadRepo {
	return &memImageUploadRepo{data: map[primitive.ObjectID]domain.ImageUpload{}}
}

func (r *memImageUploadRepo) AddImageUpload(ctx context.Context, data domain.ImageUpload) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	data.ID = id
	r.data[id] = data
	return id, nil
}

func (r *memImageUploadRepo) GetImageUploads(ctx context.Context) ([]domain.ImageUpload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []domain.ImageUpload{}
	for _, u := range r.data {
		out = append(out, u)
	}
	return out, nil
}

func (r *memImageUploadRepo) PullImageURL(ctx context.Context, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.data {
		kept := u.Images[:0]
		for _, img := range u.Images {
			if img != imageURL {
				kept = append(kept, img)
			}
		}
		u.Images = kept
		r.data[id] = u
	}
	return nil
}

func (r *memImageUploadRepo) DeleteImageUpload(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// memObjectStorage records every destroy call and can be told to fail for
// specific public ids.
type memObjectStorage struct {
	mu        sync.Mutex
	uploads   int
	destroyed []string
	failOn    map[string]error
}

func newMemObjectStorage() *memObjectStorage {
	return &memObjectStorage{failOn: map[string]error{}}
}

func (s *memObjectStorage) UploadImage(ctx context.Context, file io.Reader, folder string) (domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uploads++
	publicID := folder + "/img" + primitive.NewObjectID().Hex()
	return domain.Asset{
		URL:      "https://res.cloudinary.com/demo/image/upload/v1/" + publicID + ".jpg",
		PublicID: publicID,
	}, nil
}

func (s *memObjectStorage) DeleteImage(ctx context.Context, publicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.destroyed = append(s.destroyed, publicID)
	if err, ok := s.failOn[publicID]; ok {
		return err
	}
	return nil
}

func (s *memObjectStorage) destroyedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.destroyed))
	copy(out, s.destroyed)
	return out
}
