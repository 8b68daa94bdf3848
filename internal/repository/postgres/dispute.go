package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DisputeRepository реализует domain.DisputeRepository
type DisputeRepository struct {
	db   DBTX
	fees domain.FeeSplitter
}

// NewDisputeRepository создает новый DisputeRepository
func NewDisputeRepository(db DBTX, fees domain.FeeSplitter) *DisputeRepository {
	return &DisputeRepository{db: db, fees: fees}
}

const disputeColumns = `id, order_id, opened_by_id, reason, admin_notes, status, resolved_at, created_at`

// Create открывает спор по заказу и переводит заказ в DISPUTED.
// Проверка "не более одного спора на заказ" выполняется под блокировкой
// строки заказа; unique index по order_id страхует от гонки
func (r *DisputeRepository) Create(ctx context.Context, orderID uuid.UUID, openedByID int64, reason string) (*domain.Dispute, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin dispute transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	order, err := getOrderForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != openedByID && order.SellerID != openedByID {
		return nil, domain.ErrForbidden
	}
	if order.Status != domain.OrderStatusPendingDelivery && order.Status != domain.OrderStatusDelivered {
		return nil, domain.ErrInvalidOrderState
	}

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM disputes WHERE order_id = $1)`,
		orderID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to check existing dispute for order %s: %w", orderID, err)
	}
	if exists {
		return nil, domain.ErrDisputeExists
	}

	dispute := &domain.Dispute{
		ID:         uuid.New(),
		OrderID:    orderID,
		OpenedByID: openedByID,
		Reason:     reason,
		Status:     domain.DisputeStatusOpen,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO disputes (id, order_id, opened_by_id, reason, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		dispute.ID, dispute.OrderID, dispute.OpenedByID, dispute.Reason, dispute.Status,
	).Scan(&dispute.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDisputeExists
		}
		return nil, fmt.Errorf("repository: failed to create dispute for order %s: %w", orderID, err)
	}

	if _, err = tx.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`,
		domain.OrderStatusDisputed, orderID,
	); err != nil {
		return nil, fmt.Errorf("repository: failed to mark order %s disputed: %w", orderID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit dispute for order %s: %w", orderID, err)
	}

	return dispute, nil
}

// Resolve закрывает спор вердиктом арбитра. RESOLVED_BUYER возвращает эскроу
// покупателю и переводит заказ в REFUNDED; RESOLVED_SELLER выплачивает эскроу
// продавцу и переводит заказ в COMPLETED; CLOSED не двигает деньги и
// возвращает заказ в состояние до спора. Вердикт и движение средств
// применяются в одной транзакции
func (r *DisputeRepository) Resolve(ctx context.Context, disputeID uuid.UUID, resolution domain.DisputeResolution, adminNotes string) (*domain.Dispute, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin resolution transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	dispute := &domain.Dispute{}
	err = tx.QueryRow(ctx,
		`SELECT `+disputeColumns+`
		 FROM disputes
		 WHERE id = $1
		 FOR UPDATE`,
		disputeID,
	).Scan(&dispute.ID, &dispute.OrderID, &dispute.OpenedByID, &dispute.Reason,
		&dispute.AdminNotes, &dispute.Status, &dispute.ResolvedAt, &dispute.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, fmt.Errorf("repository: failed to lock dispute %s: %w", disputeID, err)
	}

	if dispute.Status != domain.DisputeStatusOpen && dispute.Status != domain.DisputeStatusUnderReview {
		return nil, domain.ErrDisputeResolved
	}

	order, err := getOrderForUpdate(ctx, tx, dispute.OrderID)
	if err != nil {
		return nil, err
	}

	switch resolution {
	case domain.ResolutionBuyer:
		if err = refundEscrow(ctx, tx, order.BuyerID, order.EscrowAmount, order.ID); err != nil {
			return nil, err
		}
		if _, err = tx.Exec(ctx,
			`UPDATE orders SET status = $1 WHERE id = $2`,
			domain.OrderStatusRefunded, order.ID,
		); err != nil {
			return nil, fmt.Errorf("repository: failed to mark order %s refunded: %w", order.ID, err)
		}

	case domain.ResolutionSeller:
		fees := r.fees.Split(order.EscrowAmount)
		if err = releaseEscrow(ctx, tx, order.BuyerID, order.SellerID, order.EscrowAmount, fees, order.ID); err != nil {
			return nil, err
		}
		if _, err = tx.Exec(ctx,
			`UPDATE orders SET status = $1, buyer_confirmed_at = now() WHERE id = $2`,
			domain.OrderStatusCompleted, order.ID,
		); err != nil {
			return nil, fmt.Errorf("repository: failed to complete order %s: %w", order.ID, err)
		}

	case domain.ResolutionClosed:
		// Спор закрыт без вердикта: заказ возвращается в состояние до спора.
		// Факт доставки определяем по отметке продавца
		previous := domain.OrderStatusPendingDelivery
		if order.SellerDeliveredAt != nil {
			previous = domain.OrderStatusDelivered
		}
		if _, err = tx.Exec(ctx,
			`UPDATE orders SET status = $1 WHERE id = $2`,
			previous, order.ID,
		); err != nil {
			return nil, fmt.Errorf("repository: failed to reopen order %s: %w", order.ID, err)
		}

	default:
		return nil, domain.ErrInvalidResolution
	}

	err = tx.QueryRow(ctx,
		`UPDATE disputes
		 SET status = $1, admin_notes = $2, resolved_at = now()
		 WHERE id = $3
		 RETURNING resolved_at`,
		domain.DisputeStatus(resolution), adminNotes, disputeID,
	).Scan(&dispute.ResolvedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to resolve dispute %s: %w", disputeID, err)
	}
	dispute.Status = domain.DisputeStatus(resolution)
	dispute.AdminNotes = adminNotes

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit resolution of dispute %s: %w", disputeID, err)
	}

	return dispute, nil
}

// GetByID получает спор по идентификатору
func (r *DisputeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dispute, error) {
	dispute := &domain.Dispute{}

	err := r.db.QueryRow(ctx,
		`SELECT `+disputeColumns+`
		 FROM disputes
		 WHERE id = $1`,
		id,
	).Scan(&dispute.ID, &dispute.OrderID, &dispute.OpenedByID, &dispute.Reason,
		&dispute.AdminNotes, &dispute.Status, &dispute.ResolvedAt, &dispute.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, fmt.Errorf("repository: failed to get dispute %s: %w", id, err)
	}

	return dispute, nil
}

// ListForUser получает споры, в которых пользователь участвует как
// инициатор, покупатель или продавец
func (r *DisputeRepository) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.Dispute, error) {
	rows, err := r.db.Query(ctx,
		`SELECT d.id, d.order_id, d.opened_by_id, d.reason, d.admin_notes, d.status, d.resolved_at, d.created_at
		 FROM disputes d
		 JOIN orders o ON o.id = d.order_id
		 WHERE d.opened_by_id = $1 OR o.buyer_id = $1 OR o.seller_id = $1
		 ORDER BY d.created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get disputes for user %d: %w", userID, err)
	}
	defer rows.Close()

	var disputes []*domain.Dispute
	for rows.Next() {
		d := &domain.Dispute{}
		err := rows.Scan(&d.ID, &d.OrderID, &d.OpenedByID, &d.Reason,
			&d.AdminNotes, &d.Status, &d.ResolvedAt, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan dispute: %w", err)
		}
		disputes = append(disputes, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating disputes: %w", err)
	}

	return disputes, nil
}
