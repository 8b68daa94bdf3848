package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/google/uuid"
)

// DisputeService реализует domain.DisputeService: тонкий слой авторизации
// и валидации над переходами споров, которые выполняет репозиторий
type DisputeService struct {
	disputeRepo domain.DisputeRepository
	orderRepo   domain.OrderRepository
}

// NewDisputeService создает новый DisputeService
func NewDisputeService(disputeRepo domain.DisputeRepository, orderRepo domain.OrderRepository) *DisputeService {
	return &DisputeService{
		disputeRepo: disputeRepo,
		orderRepo:   orderRepo,
	}
}

func isDisputeSentinel(err error) bool {
	return errors.Is(err, domain.ErrOrderNotFound) ||
		errors.Is(err, domain.ErrDisputeNotFound) ||
		errors.Is(err, domain.ErrDisputeExists) ||
		errors.Is(err, domain.ErrDisputeResolved) ||
		errors.Is(err, domain.ErrInvalidResolution) ||
		errors.Is(err, domain.ErrInvalidOrderState) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrInsufficientHeldFunds) ||
		errors.Is(err, domain.ErrConflict)
}

// Open открывает спор по заказу от имени покупателя или продавца
func (s *DisputeService) Open(ctx context.Context, userID int64, orderID uuid.UUID, reason string) (*domain.Dispute, error) {
	dispute, err := s.disputeRepo.Create(ctx, orderID, userID, reason)
	if err != nil {
		if isDisputeSentinel(err) {
			return nil, err
		}
		return nil, fmt.Errorf("dispute service: failed to open dispute for order %s: %w", orderID, err)
	}

	return dispute, nil
}

// Resolve выносит вердикт по спору. Доступно только ролям ADMIN и SUPPORT
func (s *DisputeService) Resolve(ctx context.Context, role domain.Role, disputeID uuid.UUID, resolution domain.DisputeResolution, adminNotes string) (*domain.Dispute, error) {
	if !role.CanResolveDisputes() {
		return nil, domain.ErrForbidden
	}
	if !resolution.Valid() {
		return nil, domain.ErrInvalidResolution
	}

	dispute, err := s.disputeRepo.Resolve(ctx, disputeID, resolution, adminNotes)
	if err != nil {
		if isDisputeSentinel(err) {
			return nil, err
		}
		return nil, fmt.Errorf("dispute service: failed to resolve dispute %s: %w", disputeID, err)
	}

	return dispute, nil
}

// Get получает спор. Доступен инициатору, сторонам заказа и администрации
func (s *DisputeService) Get(ctx context.Context, callerID int64, role domain.Role, disputeID uuid.UUID) (*domain.Dispute, error) {
	dispute, err := s.disputeRepo.GetByID(ctx, disputeID)
	if err != nil {
		if errors.Is(err, domain.ErrDisputeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("dispute service: failed to get dispute %s: %w", disputeID, err)
	}

	if dispute.OpenedByID == callerID || role.CanResolveDisputes() {
		return dispute, nil
	}

	order, err := s.orderRepo.GetByID(ctx, dispute.OrderID)
	if err != nil {
		return nil, fmt.Errorf("dispute service: failed to get order for dispute %s: %w", disputeID, err)
	}
	if order.BuyerID != callerID && order.SellerID != callerID {
		return nil, domain.ErrForbidden
	}

	return dispute, nil
}

// List получает споры пользователя
func (s *DisputeService) List(ctx context.Context, userID int64, limit, offset int) ([]*domain.Dispute, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	disputes, err := s.disputeRepo.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("dispute service: failed to get disputes for user %d: %w", userID, err)
	}

	return disputes, nil
}
