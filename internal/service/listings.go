package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/google/uuid"
)

// ListingService реализует domain.ListingService
type ListingService struct {
	listingRepo domain.ListingRepository
}

// NewListingService создает новый ListingService
func NewListingService(listingRepo domain.ListingRepository) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
	}
}

// Create создает новое объявление
func (s *ListingService) Create(ctx context.Context, sellerID int64, input domain.CreateListingInput) (*domain.Listing, error) {
	if strings.TrimSpace(input.PetName) == "" || strings.TrimSpace(input.PetCategory) == "" {
		return nil, ErrInvalidInput
	}
	if input.Price.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	listing := &domain.Listing{
		ID:          uuid.New(),
		SellerID:    sellerID,
		PetName:     input.PetName,
		PetCategory: input.PetCategory,
		Rarity:      input.Rarity,
		Price:       input.Price,
		Status:      domain.ListingStatusActive,
	}

	created, err := s.listingRepo.Create(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("listing service: failed to create listing for seller %d: %w", sellerID, err)
	}

	return created, nil
}

// Get получает объявление по идентификатору
func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("listing service: failed to get listing %s: %w", id, err)
	}

	return listing, nil
}

// Browse получает активные объявления
func (s *ListingService) Browse(ctx context.Context, limit, offset int) ([]*domain.Listing, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	listings, err := s.listingRepo.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing service: failed to browse listings: %w", err)
	}

	return listings, nil
}

// Cancel снимает объявление с продажи от имени продавца
func (s *ListingService) Cancel(ctx context.Context, sellerID int64, id uuid.UUID) error {
	err := s.listingRepo.Cancel(ctx, id, sellerID)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrListingNotFound) ||
			errors.Is(err, domain.ErrListingNotActive) ||
			errors.Is(err, domain.ErrForbidden) {
			return err
		}
		return fmt.Errorf("listing service: failed to cancel listing %s: %w", id, err)
	}

	return nil
}
