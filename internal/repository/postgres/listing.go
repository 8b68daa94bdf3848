package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListingRepository реализует domain.ListingRepository
type ListingRepository struct {
	db DBTX
}

// NewListingRepository создает новый ListingRepository
func NewListingRepository(db DBTX) *ListingRepository {
	return &ListingRepository{db: db}
}

const listingColumns = `id, seller_id, pet_name, pet_category, rarity, price, status, created_at, updated_at`

// Create создает новое объявление в статусе ACTIVE
func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO listings (id, seller_id, pet_name, pet_category, rarity, price, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		listing.ID, listing.SellerID, listing.PetName, listing.PetCategory,
		listing.Rarity, listing.Price, listing.Status,
	).Scan(&listing.CreatedAt, &listing.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create listing for seller %d: %w", listing.SellerID, err)
	}

	return listing, nil
}

// GetByID получает объявление по идентификатору
func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	listing := &domain.Listing{}

	err := r.db.QueryRow(ctx,
		`SELECT `+listingColumns+`
		 FROM listings
		 WHERE id = $1`,
		id,
	).Scan(&listing.ID, &listing.SellerID, &listing.PetName, &listing.PetCategory,
		&listing.Rarity, &listing.Price, &listing.Status, &listing.CreatedAt, &listing.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("repository: failed to get listing %s: %w", id, err)
	}

	return listing, nil
}

// ListActive получает активные объявления, новые первыми
func (r *ListingRepository) ListActive(ctx context.Context, limit, offset int) ([]*domain.Listing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+`
		 FROM listings
		 WHERE status = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		domain.ListingStatusActive, limit, offset,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get active listings: %w", err)
	}
	defer rows.Close()

	var listings []*domain.Listing
	for rows.Next() {
		listing := &domain.Listing{}
		err := rows.Scan(&listing.ID, &listing.SellerID, &listing.PetName, &listing.PetCategory,
			&listing.Rarity, &listing.Price, &listing.Status, &listing.CreatedAt, &listing.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan listing: %w", err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating listings: %w", err)
	}

	return listings, nil
}

// Cancel снимает объявление с продажи: ACTIVE -> CANCELLED.
// Проданное объявление отменить нельзя
func (r *ListingRepository) Cancel(ctx context.Context, id uuid.UUID, sellerID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin cancel transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	var ownerID int64
	var status domain.ListingStatus
	err = tx.QueryRow(ctx,
		`SELECT seller_id, status
		 FROM listings
		 WHERE id = $1
		 FOR UPDATE`,
		id,
	).Scan(&ownerID, &status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("repository: failed to lock listing %s: %w", id, err)
	}

	if ownerID != sellerID {
		return domain.ErrForbidden
	}
	if status != domain.ListingStatusActive {
		return domain.ErrListingNotActive
	}

	if _, err = tx.Exec(ctx,
		`UPDATE listings SET status = $1, updated_at = now() WHERE id = $2`,
		domain.ListingStatusCancelled, id,
	); err != nil {
		return fmt.Errorf("repository: failed to cancel listing %s: %w", id, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit cancellation of listing %s: %w", id, err)
	}

	return nil
}
