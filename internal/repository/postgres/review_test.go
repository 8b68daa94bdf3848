package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		order := pendingOrder()
		order.Status = domain.OrderStatusCompleted

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		existsRows := pgxmock.NewRows([]string{"exists"}).AddRow(false)
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(order.ID).
			WillReturnRows(existsRows)

		createdRows := pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now())
		mock.ExpectQuery(`INSERT INTO reviews`).
			WithArgs(pgxmock.AnyArg(), order.ID, order.BuyerID, 5, "great pet").
			WillReturnRows(createdRows)

		mock.ExpectCommit()

		review, err := repo.Create(ctx, order.ID, order.BuyerID, 5, "great pet")
		require.NoError(t, err)
		assert.Equal(t, order.ID, review.OrderID)
		assert.Equal(t, 5, review.Rating)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not the buyer", func(t *testing.T) {
		order := pendingOrder()
		order.Status = domain.OrderStatusCompleted

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		mock.ExpectRollback()

		review, err := repo.Create(ctx, order.ID, order.SellerID, 5, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, review)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order not completed", func(t *testing.T) {
		order := pendingOrder()

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		mock.ExpectRollback()

		review, err := repo.Create(ctx, order.ID, order.BuyerID, 5, "")
		assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
		assert.Nil(t, review)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Review already exists", func(t *testing.T) {
		order := pendingOrder()
		order.Status = domain.OrderStatusCompleted

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		existsRows := pgxmock.NewRows([]string{"exists"}).AddRow(true)
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(order.ID).
			WillReturnRows(existsRows)

		mock.ExpectRollback()

		review, err := repo.Create(ctx, order.ID, order.BuyerID, 4, "")
		assert.ErrorIs(t, err, domain.ErrReviewExists)
		assert.Nil(t, review)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewRepository_GetByOrderID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orderID := uuid.New()

		rows := pgxmock.NewRows([]string{"id", "order_id", "reviewer_id", "rating", "comment", "created_at"}).
			AddRow(uuid.New(), orderID, int64(1), 5, "great pet", time.Now())

		mock.ExpectQuery(`SELECT id, order_id, reviewer_id, rating, comment, created_at\s+FROM reviews\s+WHERE order_id`).
			WithArgs(orderID).
			WillReturnRows(rows)

		review, err := repo.GetByOrderID(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, orderID, review.OrderID)
		assert.Equal(t, 5, review.Rating)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		orderID := uuid.New()

		mock.ExpectQuery(`SELECT id, order_id, reviewer_id, rating, comment, created_at\s+FROM reviews\s+WHERE order_id`).
			WithArgs(orderID).
			WillReturnError(pgx.ErrNoRows)

		review, err := repo.GetByOrderID(ctx, orderID)
		assert.ErrorIs(t, err, domain.ErrReviewNotFound)
		assert.Nil(t, review)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
