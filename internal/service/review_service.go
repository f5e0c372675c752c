package service

import (
	"context"
	"time"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/internal/repository"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewServiceImpl struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	aggregator  *RatingAggregator
}

func CreateReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository, aggregator *RatingAggregator) ReviewService {
	return &ReviewServiceImpl{reviewRepo: reviewRepo, productRepo: productRepo, aggregator: aggregator}
}

func (s *ReviewServiceImpl) AddReview(ctx context.Context, data dto.ReviewRequest) (review domain.Review, err error) {
	productID, err := primitive.ObjectIDFromHex(data.ProductID)
	if err != nil {
		return review, errs.ErrClient
	}

	if data.Rating < 1 || data.Rating > 5 {
		return review, errs.ErrRatingOutOfRange
	}

	if _, err = s.productRepo.GetProductByID(ctx, data.ProductID); err != nil {
		return
	}

	// An absent or malformed user id degrades to an anonymous review.
	var userID *primitive.ObjectID
	if parsed, idErr := primitive.ObjectIDFromHex(data.UserID); idErr == nil {
		userID = &parsed
	}

	review = domain.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: time.Now(),
	}

	reviewID, err := s.reviewRepo.AddReview(ctx, review)
	if err != nil {
		return
	}

	review.ID = reviewID

	// The review is durable at this point; a failed recompute leaves a
	// stale summary that the next recompute heals.
	if err := s.aggregator.Recompute(ctx, productID); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "AddReview").Msg("Rating summary not updated")
	}

	return review, nil
}

func (s *ReviewServiceImpl) GetProductReviews(ctx context.Context, productID string) (resp dto.ProductReviewsResponse, err error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return resp, errs.ErrClient
	}

	reviews, err := s.reviewRepo.GetReviewsByProductID(ctx, id)
	if err != nil {
		return
	}

	resp.Reviews = reviews

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if err == errs.ErrNotFound {
			return resp, nil
		}
		return
	}

	resp.AverageRating = product.AverageRating
	resp.NumReviews = product.NumReviews

	return resp, nil
}

func (s *ReviewServiceImpl) DeleteReview(ctx context.Context, id string) (err error) {
	review, err := s.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return
	}

	if err = s.reviewRepo.DeleteReview(ctx, id); err != nil {
		return
	}

	// Recompute tolerates an already-deleted product; any other failure is
	// drift that heals on the next recompute.
	if err := s.aggregator.Recompute(ctx, review.ProductID); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "DeleteReview").Msg("Rating summary not updated")
	}

	return nil
}
