package service

import (
	"context"
	"testing"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	domainmocks "github.com/LuccasRage/ragemarketplace/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Create(t *testing.T) {
	mockRepo := domainmocks.NewReviewRepositoryMock(t)
	svc := NewReviewService(mockRepo)
	ctx := context.Background()

	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		expected := &domain.Review{
			ID:         uuid.New(),
			OrderID:    orderID,
			ReviewerID: 1,
			Rating:     5,
			Comment:    "Отличный питомец!",
		}
		mockRepo.EXPECT().Create(mock.Anything, orderID, int64(1), 5, "Отличный питомец!").
			Return(expected, nil).Once()

		review, err := svc.Create(ctx, 1, orderID, 5, "Отличный питомец!")
		require.NoError(t, err)
		assert.Equal(t, expected, review)
	})

	t.Run("Rating below range", func(t *testing.T) {
		review, err := svc.Create(ctx, 1, orderID, 0, "")
		assert.ErrorIs(t, err, ErrInvalidRating)
		assert.Nil(t, review)
	})

	t.Run("Rating above range", func(t *testing.T) {
		review, err := svc.Create(ctx, 1, orderID, 6, "")
		assert.ErrorIs(t, err, ErrInvalidRating)
		assert.Nil(t, review)
	})

	t.Run("Order not completed", func(t *testing.T) {
		mockRepo.EXPECT().Create(mock.Anything, orderID, int64(1), 4, "").
			Return(nil, domain.ErrInvalidOrderState).Once()

		review, err := svc.Create(ctx, 1, orderID, 4, "")
		assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
		assert.Nil(t, review)
	})

	t.Run("Not the buyer", func(t *testing.T) {
		mockRepo.EXPECT().Create(mock.Anything, orderID, int64(9), 4, "").
			Return(nil, domain.ErrForbidden).Once()

		review, err := svc.Create(ctx, 9, orderID, 4, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, review)
	})

	t.Run("Duplicate review", func(t *testing.T) {
		mockRepo.EXPECT().Create(mock.Anything, orderID, int64(1), 3, "").
			Return(nil, domain.ErrReviewExists).Once()

		review, err := svc.Create(ctx, 1, orderID, 3, "")
		assert.ErrorIs(t, err, domain.ErrReviewExists)
		assert.Nil(t, review)
	})
}

func TestReviewService_GetForOrder(t *testing.T) {
	mockRepo := domainmocks.NewReviewRepositoryMock(t)
	svc := NewReviewService(mockRepo)
	ctx := context.Background()

	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		expected := &domain.Review{ID: uuid.New(), OrderID: orderID, ReviewerID: 1, Rating: 4}
		mockRepo.EXPECT().GetByOrderID(mock.Anything, orderID).Return(expected, nil).Once()

		review, err := svc.GetForOrder(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, expected, review)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByOrderID(mock.Anything, orderID).Return(nil, domain.ErrReviewNotFound).Once()

		review, err := svc.GetForOrder(ctx, orderID)
		assert.ErrorIs(t, err, domain.ErrReviewNotFound)
		assert.Nil(t, review)
	})
}
