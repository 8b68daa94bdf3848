package service

import (
	"context"
	"errors"
	"testing"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	domainmocks "github.com/LuccasRage/ragemarketplace/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Buy(t *testing.T) {
	mockRepo := domainmocks.NewOrderRepositoryMock(t)
	svc := NewOrderService(mockRepo)
	ctx := context.Background()

	listingID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		expected := &domain.Order{
			ID:           uuid.New(),
			ListingID:    listingID,
			BuyerID:      1,
			SellerID:     2,
			Price:        decimal.RequireFromString("150.00"),
			EscrowAmount: decimal.RequireFromString("150.00"),
			Status:       domain.OrderStatusPendingDelivery,
		}
		mockRepo.EXPECT().CreateWithEscrow(mock.Anything, listingID, int64(1)).Return(expected, nil).Once()

		order, err := svc.Buy(ctx, 1, listingID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPendingDelivery, order.Status)
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		mockRepo.EXPECT().CreateWithEscrow(mock.Anything, listingID, int64(1)).Return(nil, domain.ErrInsufficientFunds).Once()

		order, err := svc.Buy(ctx, 1, listingID)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Nil(t, order)
	})

	t.Run("Own listing", func(t *testing.T) {
		mockRepo.EXPECT().CreateWithEscrow(mock.Anything, listingID, int64(2)).Return(nil, domain.ErrOwnListing).Once()

		order, err := svc.Buy(ctx, 2, listingID)
		assert.ErrorIs(t, err, domain.ErrOwnListing)
		assert.Nil(t, order)
	})

	t.Run("Listing not active", func(t *testing.T) {
		mockRepo.EXPECT().CreateWithEscrow(mock.Anything, listingID, int64(1)).Return(nil, domain.ErrListingNotActive).Once()

		order, err := svc.Buy(ctx, 1, listingID)
		assert.ErrorIs(t, err, domain.ErrListingNotActive)
		assert.Nil(t, order)
	})

	t.Run("Unexpected error is wrapped", func(t *testing.T) {
		mockRepo.EXPECT().CreateWithEscrow(mock.Anything, listingID, int64(1)).Return(nil, errors.New("db down")).Once()

		order, err := svc.Buy(ctx, 1, listingID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Nil(t, order)
	})
}

func TestOrderService_MarkDelivered(t *testing.T) {
	mockRepo := domainmocks.NewOrderRepositoryMock(t)
	svc := NewOrderService(mockRepo)
	ctx := context.Background()

	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		expected := &domain.Order{ID: orderID, SellerID: 2, Status: domain.OrderStatusDelivered}
		mockRepo.EXPECT().MarkDelivered(mock.Anything, orderID, int64(2)).Return(expected, nil).Once()

		order, err := svc.MarkDelivered(ctx, 2, orderID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusDelivered, order.Status)
	})

	t.Run("Not the seller", func(t *testing.T) {
		mockRepo.EXPECT().MarkDelivered(mock.Anything, orderID, int64(5)).Return(nil, domain.ErrForbidden).Once()

		order, err := svc.MarkDelivered(ctx, 5, orderID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, order)
	})

	t.Run("Wrong state", func(t *testing.T) {
		mockRepo.EXPECT().MarkDelivered(mock.Anything, orderID, int64(2)).Return(nil, domain.ErrInvalidOrderState).Once()

		order, err := svc.MarkDelivered(ctx, 2, orderID)
		assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
		assert.Nil(t, order)
	})
}

func TestOrderService_ConfirmReceipt(t *testing.T) {
	mockRepo := domainmocks.NewOrderRepositoryMock(t)
	svc := NewOrderService(mockRepo)
	ctx := context.Background()

	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		expected := &domain.Order{ID: orderID, BuyerID: 1, Status: domain.OrderStatusCompleted}
		mockRepo.EXPECT().ConfirmReceipt(mock.Anything, orderID, int64(1)).Return(expected, nil).Once()

		order, err := svc.ConfirmReceipt(ctx, 1, orderID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	})

	t.Run("Order not found", func(t *testing.T) {
		mockRepo.EXPECT().ConfirmReceipt(mock.Anything, orderID, int64(1)).Return(nil, domain.ErrOrderNotFound).Once()

		order, err := svc.ConfirmReceipt(ctx, 1, orderID)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Nil(t, order)
	})

	t.Run("Double release", func(t *testing.T) {
		mockRepo.EXPECT().ConfirmReceipt(mock.Anything, orderID, int64(1)).Return(nil, domain.ErrConflict).Once()

		order, err := svc.ConfirmReceipt(ctx, 1, orderID)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Nil(t, order)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	mockRepo := domainmocks.NewOrderRepositoryMock(t)
	svc := NewOrderService(mockRepo)
	ctx := context.Background()

	orderID := uuid.New()
	order := &domain.Order{ID: orderID, BuyerID: 1, SellerID: 2}

	t.Run("Buyer can read", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(mock.Anything, orderID).Return(order, nil).Once()

		got, err := svc.GetOrder(ctx, 1, domain.RoleUser, orderID)
		require.NoError(t, err)
		assert.Equal(t, orderID, got.ID)
	})

	t.Run("Seller can read", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(mock.Anything, orderID).Return(order, nil).Once()

		_, err := svc.GetOrder(ctx, 2, domain.RoleUser, orderID)
		require.NoError(t, err)
	})

	t.Run("Admin can read", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(mock.Anything, orderID).Return(order, nil).Once()

		_, err := svc.GetOrder(ctx, 99, domain.RoleAdmin, orderID)
		require.NoError(t, err)
	})

	t.Run("Stranger is forbidden", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(mock.Anything, orderID).Return(order, nil).Once()

		got, err := svc.GetOrder(ctx, 99, domain.RoleUser, orderID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, got)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	mockRepo := domainmocks.NewOrderRepositoryMock(t)
	svc := NewOrderService(mockRepo)
	ctx := context.Background()

	t.Run("Paging defaults", func(t *testing.T) {
		mockRepo.EXPECT().
			ListForUser(mock.Anything, int64(1), domain.OrderFilterAll, defaultPageSize, 0).
			Return([]*domain.Order{}, nil).Once()

		_, err := svc.ListOrders(ctx, 1, domain.OrderFilterAll, -1, -1)
		require.NoError(t, err)
	})

	t.Run("Filter passed through", func(t *testing.T) {
		mockRepo.EXPECT().
			ListForUser(mock.Anything, int64(1), domain.OrderFilterSales, 10, 0).
			Return([]*domain.Order{{ID: uuid.New()}}, nil).Once()

		orders, err := svc.ListOrders(ctx, 1, domain.OrderFilterSales, 10, 0)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})
}
