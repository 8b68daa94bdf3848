package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReviewRepository реализует domain.ReviewRepository
type ReviewRepository struct {
	db DBTX
}

// NewReviewRepository создает новый ReviewRepository
func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create создает отзыв покупателя о завершенном заказе.
// Проверки "только покупатель" и "не более одного отзыва" выполняются
// под блокировкой строки заказа
func (r *ReviewRepository) Create(ctx context.Context, orderID uuid.UUID, reviewerID int64, rating int, comment string) (*domain.Review, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin review transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	order, err := getOrderForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != reviewerID {
		return nil, domain.ErrForbidden
	}
	if order.Status != domain.OrderStatusCompleted {
		return nil, domain.ErrInvalidOrderState
	}

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE order_id = $1)`,
		orderID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to check existing review for order %s: %w", orderID, err)
	}
	if exists {
		return nil, domain.ErrReviewExists
	}

	review := &domain.Review{
		ID:         uuid.New(),
		OrderID:    orderID,
		ReviewerID: reviewerID,
		Rating:     rating,
		Comment:    comment,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO reviews (id, order_id, reviewer_id, rating, comment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		review.ID, review.OrderID, review.ReviewerID, review.Rating, review.Comment,
	).Scan(&review.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrReviewExists
		}
		return nil, fmt.Errorf("repository: failed to create review for order %s: %w", orderID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit review for order %s: %w", orderID, err)
	}

	return review, nil
}

// GetByOrderID получает отзыв по заказу
func (r *ReviewRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Review, error) {
	review := &domain.Review{}

	err := r.db.QueryRow(ctx,
		`SELECT id, order_id, reviewer_id, rating, comment, created_at
		 FROM reviews
		 WHERE order_id = $1`,
		orderID,
	).Scan(&review.ID, &review.OrderID, &review.ReviewerID, &review.Rating, &review.Comment, &review.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("repository: failed to get review for order %s: %w", orderID, err)
	}

	return review, nil
}
