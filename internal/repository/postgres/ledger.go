package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerRepository реализует domain.LedgerRepository.
// Каждое изменение баланса выполняется в транзакции БД под advisory lock
// по пользователю и вместе с записью в журнал транзакций
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Credit увеличивает доступный баланс пользователя и записывает транзакцию
func (r *LedgerRepository) Credit(ctx context.Context, userID int64, amount decimal.Decimal, txType domain.TransactionType, relatedOrderID *uuid.UUID, description string) (*domain.Balance, error) {
	if amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin credit transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	balance, err := lockAndGetBalance(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	newAvailable := balance.Available.Add(amount)
	if _, err = tx.Exec(ctx,
		`UPDATE users SET balance_available = $1 WHERE id = $2`,
		newAvailable, userID,
	); err != nil {
		return nil, fmt.Errorf("repository: failed to credit user %d: %w", userID, err)
	}

	if err = insertTransaction(ctx, tx, userID, txType, amount, balance.Available, newAvailable, relatedOrderID, description); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit credit for user %d: %w", userID, err)
	}

	return &domain.Balance{Available: newAvailable, Held: balance.Held}, nil
}

// Debit уменьшает доступный баланс пользователя и записывает транзакцию
// с отрицательной суммой. Возвращает ErrInsufficientFunds при нехватке средств
func (r *LedgerRepository) Debit(ctx context.Context, userID int64, amount decimal.Decimal, txType domain.TransactionType, relatedOrderID *uuid.UUID, description string) (*domain.Balance, error) {
	if amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin debit transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	balance, err := lockAndGetBalance(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	if balance.Available.LessThan(amount) {
		return nil, domain.ErrInsufficientFunds
	}

	newAvailable := balance.Available.Sub(amount)
	if _, err = tx.Exec(ctx,
		`UPDATE users SET balance_available = $1 WHERE id = $2`,
		newAvailable, userID,
	); err != nil {
		return nil, fmt.Errorf("repository: failed to debit user %d: %w", userID, err)
	}

	if err = insertTransaction(ctx, tx, userID, txType, amount.Neg(), balance.Available, newAvailable, relatedOrderID, description); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit debit for user %d: %w", userID, err)
	}

	return &domain.Balance{Available: newAvailable, Held: balance.Held}, nil
}

// GetBalance получает текущий баланс пользователя
func (r *LedgerRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance := &domain.Balance{}

	err := r.db.QueryRow(ctx,
		`SELECT balance_available, balance_held
		 FROM users
		 WHERE id = $1`,
		userID,
	).Scan(&balance.Available, &balance.Held)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// ListTransactions получает историю операций пользователя, новые первыми
func (r *LedgerRepository) ListTransactions(ctx context.Context, userID int64, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, type, amount, balance_before, balance_after, description, related_order_id, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		t := &domain.Transaction{}
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.BalanceBefore, &t.BalanceAfter, &t.Description, &t.RelatedOrderID, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return transactions, nil
}

// ReconstructBalance восстанавливает баланс пользователя из журнала транзакций.
// Используется для сверки с хранимым балансом
func (r *LedgerRepository) ReconstructBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance := &domain.Balance{}

	err := r.db.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN type IN ($2, $3, $4, $5, $6) THEN amount ELSE 0 END), 0) AS available,
			COALESCE(SUM(CASE
				WHEN type = $4 THEN -amount
				WHEN type = $7 THEN amount
				WHEN type = $6 THEN -amount
				ELSE 0 END), 0) AS held
		 FROM transactions
		 WHERE user_id = $1`,
		userID,
		domain.TransactionTypeDeposit,
		domain.TransactionTypePurchase,
		domain.TransactionTypeEscrowHold,
		domain.TransactionTypeSaleEarning,
		domain.TransactionTypeRefund,
		domain.TransactionTypeEscrowRelease,
	).Scan(&balance.Available, &balance.Held)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to reconstruct balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// lockAndGetBalance берет advisory lock по пользователю и читает его баланс.
// Должна вызываться внутри открытой транзакции БД
func lockAndGetBalance(ctx context.Context, tx pgx.Tx, userID int64) (*domain.Balance, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	balance := &domain.Balance{}
	err := tx.QueryRow(ctx,
		`SELECT balance_available, balance_held
		 FROM users
		 WHERE id = $1`,
		userID,
	).Scan(&balance.Available, &balance.Held)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// insertTransaction добавляет запись в журнал транзакций
func insertTransaction(ctx context.Context, tx pgx.Tx, userID int64, txType domain.TransactionType, amount, before, after decimal.Decimal, relatedOrderID *uuid.UUID, description string) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO transactions (user_id, type, amount, balance_before, balance_after, related_order_id, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		userID, txType, amount, before, after, relatedOrderID, description,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to insert %s transaction for user %d: %w", txType, userID, err)
	}

	return nil
}
