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

// Протоколы движения средств эскроу. Все три функции работают внутри уже
// открытой транзакции БД, чтобы переход заказа и движение денег были одним
// атомарным блоком. Суммы в журнале подписаны: balance_after = balance_before
// + amount для сегмента баланса (available или held), которого касается запись.

// holdEscrow переносит amount из доступного баланса покупателя в замороженный
func holdEscrow(ctx context.Context, tx pgx.Tx, buyerID int64, amount decimal.Decimal, orderID uuid.UUID) error {
	balance, err := lockAndGetBalance(ctx, tx, buyerID)
	if err != nil {
		return err
	}

	if balance.Available.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}

	newAvailable := balance.Available.Sub(amount)
	newHeld := balance.Held.Add(amount)

	if _, err = tx.Exec(ctx,
		`UPDATE users SET balance_available = $1, balance_held = $2 WHERE id = $3`,
		newAvailable, newHeld, buyerID,
	); err != nil {
		return fmt.Errorf("repository: failed to hold escrow for user %d: %w", buyerID, err)
	}

	return insertTransaction(ctx, tx, buyerID, domain.TransactionTypeEscrowHold,
		amount.Neg(), balance.Available, newAvailable, &orderID,
		fmt.Sprintf("Escrow hold for order %s", orderID))
}

// releaseEscrow списывает amount из замороженного баланса покупателя,
// зачисляет продавцу выручку за вычетом комиссии и фиксирует комиссию
// площадки как реализованный доход
func releaseEscrow(ctx context.Context, tx pgx.Tx, buyerID, sellerID int64, amount decimal.Decimal, fees domain.FeeBreakdown, orderID uuid.UUID) error {
	// Advisory lock в порядке возрастания id, чтобы исключить deadlock
	// при встречных release между одной парой пользователей
	first, second := buyerID, sellerID
	if second < first {
		first, second = second, first
	}
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, first); err != nil {
		return fmt.Errorf("repository: failed to acquire lock for user %d: %w", first, err)
	}
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, second); err != nil {
		return fmt.Errorf("repository: failed to acquire lock for user %d: %w", second, err)
	}

	buyer, err := getBalanceInTx(ctx, tx, buyerID)
	if err != nil {
		return err
	}

	// Защита от повторной обработки: удержание уже снято
	if buyer.Held.LessThan(amount) {
		return domain.ErrInsufficientHeldFunds
	}

	newHeld := buyer.Held.Sub(amount)
	if _, err = tx.Exec(ctx,
		`UPDATE users SET balance_held = $1 WHERE id = $2`,
		newHeld, buyerID,
	); err != nil {
		return fmt.Errorf("repository: failed to release escrow for user %d: %w", buyerID, err)
	}

	if err = insertTransaction(ctx, tx, buyerID, domain.TransactionTypeEscrowRelease,
		amount.Neg(), buyer.Held, newHeld, &orderID,
		fmt.Sprintf("Escrow released for order %s", orderID)); err != nil {
		return err
	}

	seller, err := getBalanceInTx(ctx, tx, sellerID)
	if err != nil {
		return err
	}

	newSellerAvailable := seller.Available.Add(fees.SellerEarnings)
	if _, err = tx.Exec(ctx,
		`UPDATE users SET balance_available = $1 WHERE id = $2`,
		newSellerAvailable, sellerID,
	); err != nil {
		return fmt.Errorf("repository: failed to credit seller %d: %w", sellerID, err)
	}

	if err = insertTransaction(ctx, tx, sellerID, domain.TransactionTypeSaleEarning,
		fees.SellerEarnings, seller.Available, newSellerAvailable, &orderID,
		fmt.Sprintf("Sale earnings for order %s (%s - %s fee)", orderID, amount, fees.PlatformFee)); err != nil {
		return err
	}

	// Комиссия площадки: одна запись на заказ, unique index по order_id
	// защищает от двойного release
	if _, err = tx.Exec(ctx,
		`INSERT INTO platform_revenue (order_id, amount) VALUES ($1, $2)`,
		orderID, fees.PlatformFee,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("repository: failed to record platform fee for order %s: %w", orderID, err)
	}

	return nil
}

// refundEscrow возвращает amount из замороженного баланса покупателя в доступный
func refundEscrow(ctx context.Context, tx pgx.Tx, buyerID int64, amount decimal.Decimal, orderID uuid.UUID) error {
	balance, err := lockAndGetBalance(ctx, tx, buyerID)
	if err != nil {
		return err
	}

	// Защита от повторной обработки: удержание уже снято или возвращено
	if balance.Held.LessThan(amount) {
		return domain.ErrInsufficientHeldFunds
	}

	newAvailable := balance.Available.Add(amount)
	newHeld := balance.Held.Sub(amount)

	if _, err = tx.Exec(ctx,
		`UPDATE users SET balance_available = $1, balance_held = $2 WHERE id = $3`,
		newAvailable, newHeld, buyerID,
	); err != nil {
		return fmt.Errorf("repository: failed to refund escrow for user %d: %w", buyerID, err)
	}

	return insertTransaction(ctx, tx, buyerID, domain.TransactionTypeRefund,
		amount, balance.Available, newAvailable, &orderID,
		fmt.Sprintf("Refund for order %s", orderID))
}

// getBalanceInTx читает баланс пользователя внутри открытой транзакции
func getBalanceInTx(ctx context.Context, tx pgx.Tx, userID int64) (*domain.Balance, error) {
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

// PlatformRevenue возвращает суммарный реализованный доход площадки
func (r *LedgerRepository) PlatformRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM platform_revenue`,
	).Scan(&total)

	if err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to get platform revenue: %w", err)
	}

	return total, nil
}
