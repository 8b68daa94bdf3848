package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/LuccasRage/ragemarketplace/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decimalEq сравнивает decimal-аргументы по числовому значению: у вычисленных
// кодом значений экспонента отличается от литералов теста, и reflect.DeepEqual
// внутри pgxmock считает их разными
type decimalEq struct{ d decimal.Decimal }

func (a decimalEq) Match(v interface{}) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(a.d)
}

func newOrderRepo(t *testing.T) (*OrderRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewOrderRepository(mock, service.NewEscrowService(decimal.NewFromInt(7))), mock
}

func TestOrderRepository_CreateWithEscrow(t *testing.T) {
	repo, mock := newOrderRepo(t)
	ctx := context.Background()

	listingID := uuid.New()
	buyerID := int64(1)
	sellerID := int64(2)
	price := decimal.RequireFromString("150.00")
	fee := decimal.RequireFromString("10.50")
	earnings := decimal.RequireFromString("139.50")

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()

		listingRows := pgxmock.NewRows([]string{"id", "seller_id", "price", "status"}).
			AddRow(listingID, sellerID, price, domain.ListingStatusActive)
		mock.ExpectQuery(`SELECT id, seller_id, price, status\s+FROM listings\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(listingID).
			WillReturnRows(listingRows)

		orderRows := pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now())
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(pgxmock.AnyArg(), listingID, buyerID, sellerID, price, decimalEq{fee}, decimalEq{earnings}, price, domain.OrderStatusPendingDelivery).
			WillReturnRows(orderRows)

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(buyerID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		buyerAvailable := decimal.RequireFromString("500.00")
		balanceRows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(buyerAvailable, decimal.Zero)
		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(buyerID).
			WillReturnRows(balanceRows)

		mock.ExpectExec(`UPDATE users SET balance_available = \$1, balance_held = \$2`).
			WithArgs(buyerAvailable.Sub(price), price, buyerID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(buyerID, domain.TransactionTypeEscrowHold, price.Neg(), buyerAvailable, buyerAvailable.Sub(price), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		mock.ExpectExec(`UPDATE listings SET status`).
			WithArgs(domain.ListingStatusSold, listingID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectCommit()

		order, err := repo.CreateWithEscrow(ctx, listingID, buyerID)
		require.NoError(t, err)
		assert.Equal(t, buyerID, order.BuyerID)
		assert.Equal(t, sellerID, order.SellerID)
		assert.Equal(t, domain.OrderStatusPendingDelivery, order.Status)
		assert.True(t, order.PlatformFee.Equal(fee))
		assert.True(t, order.SellerEarnings.Equal(earnings))
		assert.True(t, order.PlatformFee.Add(order.SellerEarnings).Equal(price))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Listing not found", func(t *testing.T) {
		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT id, seller_id, price, status\s+FROM listings\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(listingID).
			WillReturnError(pgx.ErrNoRows)

		mock.ExpectRollback()

		order, err := repo.CreateWithEscrow(ctx, listingID, buyerID)
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
		assert.Nil(t, order)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Listing already sold", func(t *testing.T) {
		mock.ExpectBegin()

		listingRows := pgxmock.NewRows([]string{"id", "seller_id", "price", "status"}).
			AddRow(listingID, sellerID, price, domain.ListingStatusSold)
		mock.ExpectQuery(`SELECT id, seller_id, price, status\s+FROM listings\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(listingID).
			WillReturnRows(listingRows)

		mock.ExpectRollback()

		order, err := repo.CreateWithEscrow(ctx, listingID, buyerID)
		assert.ErrorIs(t, err, domain.ErrListingNotActive)
		assert.Nil(t, order)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Own listing", func(t *testing.T) {
		mock.ExpectBegin()

		listingRows := pgxmock.NewRows([]string{"id", "seller_id", "price", "status"}).
			AddRow(listingID, sellerID, price, domain.ListingStatusActive)
		mock.ExpectQuery(`SELECT id, seller_id, price, status\s+FROM listings\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(listingID).
			WillReturnRows(listingRows)

		mock.ExpectRollback()

		order, err := repo.CreateWithEscrow(ctx, listingID, sellerID)
		assert.ErrorIs(t, err, domain.ErrOwnListing)
		assert.Nil(t, order)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		mock.ExpectBegin()

		listingRows := pgxmock.NewRows([]string{"id", "seller_id", "price", "status"}).
			AddRow(listingID, sellerID, price, domain.ListingStatusActive)
		mock.ExpectQuery(`SELECT id, seller_id, price, status\s+FROM listings\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(listingID).
			WillReturnRows(listingRows)

		orderRows := pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now())
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(pgxmock.AnyArg(), listingID, buyerID, sellerID, price, decimalEq{fee}, decimalEq{earnings}, price, domain.OrderStatusPendingDelivery).
			WillReturnRows(orderRows)

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(buyerID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		balanceRows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(decimal.RequireFromString("100.00"), decimal.Zero)
		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(buyerID).
			WillReturnRows(balanceRows)

		mock.ExpectRollback()

		order, err := repo.CreateWithEscrow(ctx, listingID, buyerID)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Nil(t, order)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func orderRows(order *domain.Order) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "listing_id", "buyer_id", "seller_id", "price", "platform_fee", "seller_earnings", "escrow_amount", "status", "seller_delivered_at", "buyer_confirmed_at", "created_at"}).
		AddRow(order.ID, order.ListingID, order.BuyerID, order.SellerID,
			order.Price, order.PlatformFee, order.SellerEarnings, order.EscrowAmount,
			order.Status, order.SellerDeliveredAt, order.BuyerConfirmedAt, order.CreatedAt)
}

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:             uuid.New(),
		ListingID:      uuid.New(),
		BuyerID:        1,
		SellerID:       2,
		Price:          decimal.RequireFromString("150.00"),
		PlatformFee:    decimal.RequireFromString("10.50"),
		SellerEarnings: decimal.RequireFromString("139.50"),
		EscrowAmount:   decimal.RequireFromString("150.00"),
		Status:         domain.OrderStatusPendingDelivery,
		CreatedAt:      time.Now(),
	}
}

func TestOrderRepository_MarkDelivered(t *testing.T) {
	repo, mock := newOrderRepo(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		order := pendingOrder()

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		deliveredAt := time.Now()
		updateRows := pgxmock.NewRows([]string{"seller_delivered_at"}).AddRow(&deliveredAt)
		mock.ExpectQuery(`UPDATE orders\s+SET status = \$1, seller_delivered_at = now\(\)`).
			WithArgs(domain.OrderStatusDelivered, order.ID).
			WillReturnRows(updateRows)

		mock.ExpectCommit()

		updated, err := repo.MarkDelivered(ctx, order.ID, order.SellerID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusDelivered, updated.Status)
		assert.NotNil(t, updated.SellerDeliveredAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not the seller", func(t *testing.T) {
		order := pendingOrder()

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		mock.ExpectRollback()

		updated, err := repo.MarkDelivered(ctx, order.ID, int64(99))
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, updated)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already delivered", func(t *testing.T) {
		order := pendingOrder()
		order.Status = domain.OrderStatusDelivered

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		mock.ExpectRollback()

		updated, err := repo.MarkDelivered(ctx, order.ID, order.SellerID)
		assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
		assert.Nil(t, updated)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order not found", func(t *testing.T) {
		orderID := uuid.New()

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(orderID).
			WillReturnError(pgx.ErrNoRows)

		mock.ExpectRollback()

		updated, err := repo.MarkDelivered(ctx, orderID, int64(2))
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Nil(t, updated)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_ConfirmReceipt(t *testing.T) {
	repo, mock := newOrderRepo(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		order := pendingOrder()
		order.Status = domain.OrderStatusDelivered
		deliveredAt := time.Now()
		order.SellerDeliveredAt = &deliveredAt

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		// Advisory locks берутся в порядке возрастания id
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(order.BuyerID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(order.SellerID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		// Замороженный баланс покрывает два заказа, после release остается 150.00
		buyerHeld := decimal.RequireFromString("300.00")
		newHeld := buyerHeld.Sub(order.EscrowAmount)
		buyerRows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(decimal.RequireFromString("350.00"), buyerHeld)
		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(order.BuyerID).
			WillReturnRows(buyerRows)

		mock.ExpectExec(`UPDATE users SET balance_held`).
			WithArgs(newHeld, order.BuyerID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(order.BuyerID, domain.TransactionTypeEscrowRelease, order.EscrowAmount.Neg(),
				buyerHeld, newHeld, &order.ID, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		sellerAvailable := decimal.RequireFromString("10.00")
		newSellerAvailable := sellerAvailable.Add(order.SellerEarnings)
		sellerRows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(sellerAvailable, decimal.Zero)
		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(order.SellerID).
			WillReturnRows(sellerRows)

		mock.ExpectExec(`UPDATE users SET balance_available`).
			WithArgs(decimalEq{newSellerAvailable}, order.SellerID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(order.SellerID, domain.TransactionTypeSaleEarning, decimalEq{order.SellerEarnings},
				sellerAvailable, decimalEq{newSellerAvailable}, &order.ID, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		mock.ExpectExec(`INSERT INTO platform_revenue`).
			WithArgs(order.ID, decimalEq{order.PlatformFee}).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		confirmedAt := time.Now()
		updateRows := pgxmock.NewRows([]string{"buyer_confirmed_at"}).AddRow(&confirmedAt)
		mock.ExpectQuery(`UPDATE orders\s+SET status = \$1, buyer_confirmed_at = now\(\)`).
			WithArgs(domain.OrderStatusCompleted, order.ID).
			WillReturnRows(updateRows)

		mock.ExpectCommit()

		updated, err := repo.ConfirmReceipt(ctx, order.ID, order.BuyerID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, updated.Status)
		assert.NotNil(t, updated.BuyerConfirmedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not yet delivered", func(t *testing.T) {
		order := pendingOrder()

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		mock.ExpectRollback()

		updated, err := repo.ConfirmReceipt(ctx, order.ID, order.BuyerID)
		assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
		assert.Nil(t, updated)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Double release rejected", func(t *testing.T) {
		order := pendingOrder()
		order.Status = domain.OrderStatusDelivered

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(order.BuyerID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(order.SellerID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		// Удержание уже снято предыдущим release
		buyerRows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(decimal.RequireFromString("350.00"), decimal.Zero)
		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(order.BuyerID).
			WillReturnRows(buyerRows)

		mock.ExpectRollback()

		updated, err := repo.ConfirmReceipt(ctx, order.ID, order.BuyerID)
		assert.ErrorIs(t, err, domain.ErrInsufficientHeldFunds)
		assert.Nil(t, updated)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate platform fee record", func(t *testing.T) {
		order := pendingOrder()
		order.Status = domain.OrderStatusDelivered

		mock.ExpectBegin()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id .+\s+FOR UPDATE`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(order.BuyerID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(order.SellerID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		buyerHeld := decimal.RequireFromString("300.00")
		newHeld := buyerHeld.Sub(order.EscrowAmount)
		buyerRows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(decimal.RequireFromString("350.00"), buyerHeld)
		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(order.BuyerID).
			WillReturnRows(buyerRows)

		mock.ExpectExec(`UPDATE users SET balance_held`).
			WithArgs(newHeld, order.BuyerID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(order.BuyerID, domain.TransactionTypeEscrowRelease, order.EscrowAmount.Neg(),
				buyerHeld, newHeld, &order.ID, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		sellerAvailable := decimal.RequireFromString("10.00")
		newSellerAvailable := sellerAvailable.Add(order.SellerEarnings)
		sellerRows := pgxmock.NewRows([]string{"balance_available", "balance_held"}).
			AddRow(sellerAvailable, decimal.Zero)
		mock.ExpectQuery(`SELECT balance_available, balance_held\s+FROM users\s+WHERE id`).
			WithArgs(order.SellerID).
			WillReturnRows(sellerRows)

		mock.ExpectExec(`UPDATE users SET balance_available`).
			WithArgs(decimalEq{newSellerAvailable}, order.SellerID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(order.SellerID, domain.TransactionTypeSaleEarning, decimalEq{order.SellerEarnings},
				sellerAvailable, decimalEq{newSellerAvailable}, &order.ID, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		mock.ExpectExec(`INSERT INTO platform_revenue`).
			WithArgs(order.ID, decimalEq{order.PlatformFee}).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		mock.ExpectRollback()

		updated, err := repo.ConfirmReceipt(ctx, order.ID, order.BuyerID)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Nil(t, updated)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetByID(t *testing.T) {
	repo, mock := newOrderRepo(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		order := pendingOrder()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
		assert.True(t, got.Price.Equal(order.Price))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		orderID := uuid.New()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE id`).
			WithArgs(orderID).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetByID(ctx, orderID)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Nil(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_ListForUser(t *testing.T) {
	repo, mock := newOrderRepo(t)
	ctx := context.Background()

	t.Run("Purchases filter", func(t *testing.T) {
		order := pendingOrder()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE buyer_id`).
			WithArgs(order.BuyerID, 50, 0).
			WillReturnRows(orderRows(order))

		orders, err := repo.ListForUser(ctx, order.BuyerID, domain.OrderFilterPurchases, 50, 0)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, order.ID, orders[0].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("All orders", func(t *testing.T) {
		order := pendingOrder()

		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE \(buyer_id = \$1 OR seller_id = \$1\)`).
			WithArgs(order.SellerID, 50, 0).
			WillReturnRows(orderRows(order))

		orders, err := repo.ListForUser(ctx, order.SellerID, domain.OrderFilterAll, 50, 0)
		require.NoError(t, err)
		require.Len(t, orders, 1)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+\s+FROM orders\s+WHERE seller_id`).
			WithArgs(int64(2), 50, 0).
			WillReturnError(errors.New("database error"))

		orders, err := repo.ListForUser(ctx, int64(2), domain.OrderFilterSales, 50, 0)
		assert.Error(t, err)
		assert.Nil(t, orders)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
