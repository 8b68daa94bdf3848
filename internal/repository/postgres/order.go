package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepository реализует domain.OrderRepository. Каждый переход машины
// состояний заказа выполняется в одной транзакции БД: проверка guard-условий
// под блокировкой строки, движение средств и смена статуса применяются
// целиком или не применяются вовсе
type OrderRepository struct {
	db   DBTX
	fees domain.FeeSplitter
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX, fees domain.FeeSplitter) *OrderRepository {
	return &OrderRepository{db: db, fees: fees}
}

const orderColumns = `id, listing_id, buyer_id, seller_id, price, platform_fee, seller_earnings, escrow_amount, status, seller_delivered_at, buyer_confirmed_at, created_at`

// CreateWithEscrow создает заказ по активному объявлению: удерживает средства
// покупателя в эскроу и помечает объявление проданным. Строка объявления
// блокируется на время транзакции, поэтому из двух конкурентных покупок
// успешной будет ровно одна
func (r *OrderRepository) CreateWithEscrow(ctx context.Context, listingID uuid.UUID, buyerID int64) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin purchase transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	listing := &domain.Listing{}
	err = tx.QueryRow(ctx,
		`SELECT id, seller_id, price, status
		 FROM listings
		 WHERE id = $1
		 FOR UPDATE`,
		listingID,
	).Scan(&listing.ID, &listing.SellerID, &listing.Price, &listing.Status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("repository: failed to lock listing %s: %w", listingID, err)
	}

	if listing.Status != domain.ListingStatusActive {
		return nil, domain.ErrListingNotActive
	}
	if listing.SellerID == buyerID {
		return nil, domain.ErrOwnListing
	}

	fees := r.fees.Split(listing.Price)

	order := &domain.Order{
		ID:             uuid.New(),
		ListingID:      listingID,
		BuyerID:        buyerID,
		SellerID:       listing.SellerID,
		Price:          listing.Price,
		PlatformFee:    fees.PlatformFee,
		SellerEarnings: fees.SellerEarnings,
		EscrowAmount:   listing.Price,
		Status:         domain.OrderStatusPendingDelivery,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (id, listing_id, buyer_id, seller_id, price, platform_fee, seller_earnings, escrow_amount, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at`,
		order.ID, order.ListingID, order.BuyerID, order.SellerID,
		order.Price, order.PlatformFee, order.SellerEarnings, order.EscrowAmount, order.Status,
	).Scan(&order.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("repository: failed to create order for listing %s: %w", listingID, err)
	}

	if err = holdEscrow(ctx, tx, buyerID, order.EscrowAmount, order.ID); err != nil {
		return nil, err
	}

	if _, err = tx.Exec(ctx,
		`UPDATE listings SET status = $1, updated_at = now() WHERE id = $2`,
		domain.ListingStatusSold, listingID,
	); err != nil {
		return nil, fmt.Errorf("repository: failed to mark listing %s sold: %w", listingID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit purchase of listing %s: %w", listingID, err)
	}

	return order, nil
}

// MarkDelivered переводит заказ PENDING_DELIVERY -> DELIVERED от имени продавца
func (r *OrderRepository) MarkDelivered(ctx context.Context, orderID uuid.UUID, sellerID int64) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin delivery transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	order, err := getOrderForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if order.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if order.Status != domain.OrderStatusPendingDelivery {
		return nil, domain.ErrInvalidOrderState
	}

	err = tx.QueryRow(ctx,
		`UPDATE orders
		 SET status = $1, seller_delivered_at = now()
		 WHERE id = $2
		 RETURNING seller_delivered_at`,
		domain.OrderStatusDelivered, orderID,
	).Scan(&order.SellerDeliveredAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to mark order %s delivered: %w", orderID, err)
	}
	order.Status = domain.OrderStatusDelivered

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit delivery of order %s: %w", orderID, err)
	}

	return order, nil
}

// ConfirmReceipt переводит заказ DELIVERED -> COMPLETED от имени покупателя
// и в той же транзакции выплачивает эскроу продавцу
func (r *OrderRepository) ConfirmReceipt(ctx context.Context, orderID uuid.UUID, buyerID int64) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin confirmation transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	order, err := getOrderForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != buyerID {
		return nil, domain.ErrForbidden
	}
	if order.Status != domain.OrderStatusDelivered {
		return nil, domain.ErrInvalidOrderState
	}

	fees := r.fees.Split(order.EscrowAmount)
	if err = releaseEscrow(ctx, tx, order.BuyerID, order.SellerID, order.EscrowAmount, fees, order.ID); err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx,
		`UPDATE orders
		 SET status = $1, buyer_confirmed_at = now()
		 WHERE id = $2
		 RETURNING buyer_confirmed_at`,
		domain.OrderStatusCompleted, orderID,
	).Scan(&order.BuyerConfirmedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to complete order %s: %w", orderID, err)
	}
	order.Status = domain.OrderStatusCompleted

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit confirmation of order %s: %w", orderID, err)
	}

	return order, nil
}

// GetByID получает заказ по идентификатору
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order := &domain.Order{}

	err := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE id = $1`,
		id,
	).Scan(&order.ID, &order.ListingID, &order.BuyerID, &order.SellerID,
		&order.Price, &order.PlatformFee, &order.SellerEarnings, &order.EscrowAmount,
		&order.Status, &order.SellerDeliveredAt, &order.BuyerConfirmedAt, &order.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %s: %w", id, err)
	}

	return order, nil
}

// ListForUser получает заказы пользователя: покупки, продажи или все
func (r *OrderRepository) ListForUser(ctx context.Context, userID int64, filter domain.OrderFilter, limit, offset int) ([]*domain.Order, error) {
	var condition string
	switch filter {
	case domain.OrderFilterPurchases:
		condition = `buyer_id = $1`
	case domain.OrderFilterSales:
		condition = `seller_id = $1`
	default:
		condition = `(buyer_id = $1 OR seller_id = $1)`
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE `+condition+`
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders for user %d: %w", userID, err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order := &domain.Order{}
		err := rows.Scan(&order.ID, &order.ListingID, &order.BuyerID, &order.SellerID,
			&order.Price, &order.PlatformFee, &order.SellerEarnings, &order.EscrowAmount,
			&order.Status, &order.SellerDeliveredAt, &order.BuyerConfirmedAt, &order.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

// getOrderForUpdate читает заказ под блокировкой строки внутри транзакции
func getOrderForUpdate(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Order, error) {
	order := &domain.Order{}

	err := tx.QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE id = $1
		 FOR UPDATE`,
		orderID,
	).Scan(&order.ID, &order.ListingID, &order.BuyerID, &order.SellerID,
		&order.Price, &order.PlatformFee, &order.SellerEarnings, &order.EscrowAmount,
		&order.Status, &order.SellerDeliveredAt, &order.BuyerConfirmedAt, &order.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to lock order %s: %w", orderID, err)
	}

	return order, nil
}
