package service

import (
	"context"
	"hash/fnv"
	"math"
	"sync"

	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/repository"
	"github.com/freshmart/catalog-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const aggregatorLockStripes = 64

// RatingAggregator maintains the derived averageRating/numReviews pair on a
// product. The reviews collection is the single source of truth: every
// recompute reads the full review set and overwrites the summary, so the
// operation is idempotent and a stale summary heals on the next run.
type RatingAggregator struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository

	// Recomputes racing on the same product would lose updates; stripe
	// locks serialize them per product id.
	locks [aggregatorLockStripes]sync.Mutex
}

func CreateRatingAggregator(productRepo repository.ProductRepository, reviewRepo repository.ReviewRepository) *RatingAggregator {
	return &RatingAggregator{productRepo: productRepo, reviewRepo: reviewRepo}
}

func (a *RatingAggregator) lockFor(productID primitive.ObjectID) *sync.Mutex {
	h := fnv.New32a()
	h.Write(productID[:])
	return &a.locks[h.Sum32()%aggregatorLockStripes]
}

// Recompute re-derives the rating summary from the authoritative review set
// and persists it. A product that no longer exists is a benign no-op: the
// summary has nothing to land on.
func (a *RatingAggregator) Recompute(ctx context.Context, productID primitive.ObjectID) error {
	mu := a.lockFor(productID)
	mu.Lock()
	defer mu.Unlock()

	reviews, err := a.reviewRepo.GetReviewsByProductID(ctx, productID)
	if err != nil {
		return err
	}

	err = a.productRepo.UpdateRatingSummary(ctx, productID, SummarizeRatings(reviews))
	if err == errs.ErrNotFound {
		return nil
	}

	return err
}

// SummarizeRatings computes the canonical aggregate: mean rounded half-up
// to one decimal place, zero values for an empty set.
func SummarizeRatings(reviews []domain.Review) domain.RatingSummary {
	if len(reviews) == 0 {
		return domain.RatingSummary{}
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	avg := float64(sum) / float64(len(reviews))

	return domain.RatingSummary{
		AverageRating: math.Floor(avg*10+0.5) / 10,
		NumReviews:    uint64(len(reviews)),
	}
}
