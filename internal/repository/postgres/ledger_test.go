package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_Credit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := int64(1)
		amount := decimal.RequireFromString("100.50")
		currentAvailable := decimal.RequireFromString("500.00")
		currentHeld := decimal.RequireFromString("0.00")
		newAvailable := currentAvailable.Add(amount)

		mock.ExpectBegin()

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		balanceRows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(currentAvailable, currentHeld)
		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(userID).
			WillReturnRows(balanceRows)

		mock.ExpectExec(`UPDATE users SET balance_available`).
			WithArgs(newAvailable, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(userID, domain.TransactionTypeDeposit, amount, currentAvailable, newAvailable, (*uuid.UUID)(nil), "Deposit").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		mock.ExpectCommit()

		balance, err := repo.Credit(ctx, userID, amount, domain.TransactionTypeDeposit, nil, "Deposit")
		require.NoError(t, err)
		assert.True(t, balance.Available.Equal(newAvailable))
		assert.True(t, balance.Held.Equal(currentHeld))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invalid amount", func(t *testing.T) {
		balance, err := repo.Credit(ctx, 1, decimal.Zero, domain.TransactionTypeDeposit, nil, "Deposit")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		assert.Nil(t, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		userID := int64(999)
		amount := decimal.RequireFromString("50.00")

		mock.ExpectBegin()

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)

		mock.ExpectRollback()

		balance, err := repo.Credit(ctx, userID, amount, domain.TransactionTypeDeposit, nil, "Deposit")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin transaction error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("begin error"))

		balance, err := repo.Credit(ctx, 1, decimal.RequireFromString("10.00"), domain.TransactionTypeDeposit, nil, "Deposit")
		assert.Error(t, err)
		assert.Nil(t, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_Debit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := int64(1)
		orderID := uuid.New()
		amount := decimal.RequireFromString("150.00")
		currentAvailable := decimal.RequireFromString("500.00")
		currentHeld := decimal.RequireFromString("0.00")
		newAvailable := currentAvailable.Sub(amount)

		mock.ExpectBegin()

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		balanceRows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(currentAvailable, currentHeld)
		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(userID).
			WillReturnRows(balanceRows)

		mock.ExpectExec(`UPDATE users SET balance_available`).
			WithArgs(newAvailable, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(userID, domain.TransactionTypePurchase, amount.Neg(), currentAvailable, newAvailable, &orderID, "Purchase").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		mock.ExpectCommit()

		balance, err := repo.Debit(ctx, userID, amount, domain.TransactionTypePurchase, &orderID, "Purchase")
		require.NoError(t, err)
		assert.True(t, balance.Available.Equal(newAvailable))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		userID := int64(1)
		amount := decimal.RequireFromString("500.00")

		mock.ExpectBegin()

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		balanceRows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(decimal.RequireFromString("100.00"), decimal.Zero)
		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(userID).
			WillReturnRows(balanceRows)

		mock.ExpectRollback()

		balance, err := repo.Debit(ctx, userID, amount, domain.TransactionTypePurchase, nil, "Purchase")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Nil(t, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert transaction error", func(t *testing.T) {
		userID := int64(1)
		amount := decimal.RequireFromString("50.00")
		currentAvailable := decimal.RequireFromString("100.00")
		newAvailable := currentAvailable.Sub(amount)

		mock.ExpectBegin()

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		balanceRows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(currentAvailable, decimal.Zero)
		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(userID).
			WillReturnRows(balanceRows)

		mock.ExpectExec(`UPDATE users SET balance_available`).
			WithArgs(newAvailable, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(userID, domain.TransactionTypePurchase, amount.Neg(), currentAvailable, newAvailable, (*uuid.UUID)(nil), "Purchase").
			WillReturnError(errors.New("insert error"))

		mock.ExpectRollback()

		balance, err := repo.Debit(ctx, userID, amount, domain.TransactionTypePurchase, nil, "Purchase")
		assert.Error(t, err)
		assert.Nil(t, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_GetBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := int64(1)

		rows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(decimal.RequireFromString("350.50"), decimal.RequireFromString("150.00"))

		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(userID).
			WillReturnRows(rows)

		balance, err := repo.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.True(t, balance.Available.Equal(decimal.RequireFromString("350.50")))
		assert.True(t, balance.Held.Equal(decimal.RequireFromString("150.00")))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		userID := int64(999)

		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)

		balance, err := repo.GetBalance(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_ListTransactions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := int64(1)
		orderID := uuid.New()

		rows := pgxmock.NewRows([]string{"id", "user_id", "type", "amount", "balance_before", "balance_after", "description", "related_order_id", "created_at"}).
			AddRow(int64(2), userID, domain.TransactionTypePurchase, decimal.RequireFromString("-150.00"),
				decimal.RequireFromString("500.00"), decimal.RequireFromString("350.00"), "Purchase", &orderID, time.Now()).
			AddRow(int64(1), userID, domain.TransactionTypeDeposit, decimal.RequireFromString("500.00"),
				decimal.Zero, decimal.RequireFromString("500.00"), "Deposit", (*uuid.UUID)(nil), time.Now())

		mock.ExpectQuery(`SELECT id, user_id, type, amount, balance_before, balance_after, description, related_order_id, created_at\s+FROM transactions\s+WHERE user_id`).
			WithArgs(userID, 50, 0).
			WillReturnRows(rows)

		transactions, err := repo.ListTransactions(ctx, userID, 50, 0)
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, domain.TransactionTypePurchase, transactions[0].Type)
		assert.Equal(t, domain.TransactionTypeDeposit, transactions[1].Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No transactions", func(t *testing.T) {
		userID := int64(999)

		rows := pgxmock.NewRows([]string{"id", "user_id", "type", "amount", "balance_before", "balance_after", "description", "related_order_id", "created_at"})

		mock.ExpectQuery(`SELECT id, user_id, type, amount, balance_before, balance_after, description, related_order_id, created_at\s+FROM transactions\s+WHERE user_id`).
			WithArgs(userID, 50, 0).
			WillReturnRows(rows)

		transactions, err := repo.ListTransactions(ctx, userID, 50, 0)
		require.NoError(t, err)
		assert.Empty(t, transactions)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_ReconstructBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := int64(1)

		rows := pgxmock.NewRows([]string{"available", "held"}).
			AddRow(decimal.RequireFromString("350.00"), decimal.RequireFromString("150.00"))

		mock.ExpectQuery(`SELECT\s+COALESCE`).
			WithArgs(userID,
				domain.TransactionTypeDeposit,
				domain.TransactionTypePurchase,
				domain.TransactionTypeEscrowHold,
				domain.TransactionTypeSaleEarning,
				domain.TransactionTypeRefund,
				domain.TransactionTypeEscrowRelease).
			WillReturnRows(rows)

		balance, err := repo.ReconstructBalance(ctx, userID)
		require.NoError(t, err)
		assert.True(t, balance.Available.Equal(decimal.RequireFromString("350.00")))
		assert.True(t, balance.Held.Equal(decimal.RequireFromString("150.00")))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		userID := int64(1)

		mock.ExpectQuery(`SELECT\s+COALESCE`).
			WithArgs(userID,
				domain.TransactionTypeDeposit,
				domain.TransactionTypePurchase,
				domain.TransactionTypeEscrowHold,
				domain.TransactionTypeSaleEarning,
				domain.TransactionTypeRefund,
				domain.TransactionTypeEscrowRelease).
			WillReturnError(errors.New("database error"))

		balance, err := repo.ReconstructBalance(ctx, userID)
		assert.Error(t, err)
		assert.Nil(t, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
