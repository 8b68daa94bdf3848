package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/shopspring/decimal"
)

// BalanceService реализует domain.BalanceService
type BalanceService struct {
	ledgerRepo domain.LedgerRepository
}

// NewBalanceService создает новый BalanceService
func NewBalanceService(ledgerRepo domain.LedgerRepository) *BalanceService {
	return &BalanceService{
		ledgerRepo: ledgerRepo,
	}
}

// GetBalance получает баланс пользователя
func (s *BalanceService) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("balance service: failed to get balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// Deposit пополняет доступный баланс пользователя.
// Интеграции с платежным провайдером нет, пополнение имитируется
func (s *BalanceService) Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Balance, error) {
	if amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	balance, err := s.ledgerRepo.Credit(ctx, userID, amount, domain.TransactionTypeDeposit, nil, "Deposit")
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidAmount) {
			return nil, err
		}
		return nil, fmt.Errorf("balance service: failed to deposit %s for user %d: %w", amount, userID, err)
	}

	return balance, nil
}

// GetTransactions получает историю операций пользователя
func (s *BalanceService) GetTransactions(ctx context.Context, userID int64, limit, offset int) ([]*domain.Transaction, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	transactions, err := s.ledgerRepo.ListTransactions(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("balance service: failed to get transactions for user %d: %w", userID, err)
	}

	return transactions, nil
}
