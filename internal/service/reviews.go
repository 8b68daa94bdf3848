package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/google/uuid"
)

// ReviewService реализует domain.ReviewService
type ReviewService struct {
	reviewRepo domain.ReviewRepository
}

// NewReviewService создает новый ReviewService
func NewReviewService(reviewRepo domain.ReviewRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
	}
}

// Create создает отзыв покупателя о завершенном заказе
func (s *ReviewService) Create(ctx context.Context, reviewerID int64, orderID uuid.UUID, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review, err := s.reviewRepo.Create(ctx, orderID, reviewerID, rating, comment)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrOrderNotFound) ||
			errors.Is(err, domain.ErrInvalidOrderState) ||
			errors.Is(err, domain.ErrForbidden) ||
			errors.Is(err, domain.ErrReviewExists) {
			return nil, err
		}
		return nil, fmt.Errorf("review service: failed to create review for order %s: %w", orderID, err)
	}

	return review, nil
}

// GetForOrder получает отзыв по заказу
func (s *ReviewService) GetForOrder(ctx context.Context, orderID uuid.UUID) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("review service: failed to get review for order %s: %w", orderID, err)
	}

	return review, nil
}
