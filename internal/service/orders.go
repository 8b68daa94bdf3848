package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/google/uuid"
)

// Ограничения постраничной выборки
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// OrderService реализует domain.OrderService. Сами переходы машины
// состояний выполняет репозиторий в одной транзакции БД; сервис проверяет
// входные данные и сопоставляет ошибки
type OrderService struct {
	orderRepo domain.OrderRepository
}

// NewOrderService создает новый OrderService
func NewOrderService(orderRepo domain.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// sentinelOrderErrors содержит ошибки guard-условий, которые отдаются
// вызывающему как есть
func isOrderSentinel(err error) bool {
	return errors.Is(err, domain.ErrListingNotFound) ||
		errors.Is(err, domain.ErrListingNotActive) ||
		errors.Is(err, domain.ErrOwnListing) ||
		errors.Is(err, domain.ErrOrderNotFound) ||
		errors.Is(err, domain.ErrInvalidOrderState) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrInsufficientHeldFunds) ||
		errors.Is(err, domain.ErrConflict)
}

// Buy покупает объявление: создает заказ и удерживает средства в эскроу
func (s *OrderService) Buy(ctx context.Context, buyerID int64, listingID uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.CreateWithEscrow(ctx, listingID, buyerID)
	if err != nil {
		if isOrderSentinel(err) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to buy listing %s: %w", listingID, err)
	}

	return order, nil
}

// MarkDelivered помечает заказ доставленным от имени продавца
func (s *OrderService) MarkDelivered(ctx context.Context, sellerID int64, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.MarkDelivered(ctx, orderID, sellerID)
	if err != nil {
		if isOrderSentinel(err) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to mark order %s delivered: %w", orderID, err)
	}

	return order, nil
}

// ConfirmReceipt подтверждает получение от имени покупателя и выплачивает эскроу
func (s *OrderService) ConfirmReceipt(ctx context.Context, buyerID int64, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.ConfirmReceipt(ctx, orderID, buyerID)
	if err != nil {
		if isOrderSentinel(err) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to confirm order %s: %w", orderID, err)
	}

	return order, nil
}

// GetOrder получает заказ. Доступен только покупателю, продавцу и администрации
func (s *OrderService) GetOrder(ctx context.Context, callerID int64, role domain.Role, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get order %s: %w", orderID, err)
	}

	if order.BuyerID != callerID && order.SellerID != callerID && !role.CanResolveDisputes() {
		return nil, domain.ErrForbidden
	}

	return order, nil
}

// ListOrders получает заказы пользователя
func (s *OrderService) ListOrders(ctx context.Context, userID int64, filter domain.OrderFilter, limit, offset int) ([]*domain.Order, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	orders, err := s.orderRepo.ListForUser(ctx, userID, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get orders for user %d: %w", userID, err)
	}

	return orders, nil
}
