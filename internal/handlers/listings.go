package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/LuccasRage/ragemarketplace/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ListingsHandler struct {
	listingService domain.ListingService
	logger         *zap.Logger
}

func NewListingsHandler(listingService domain.ListingService, logger *zap.Logger) *ListingsHandler {
	return &ListingsHandler{
		listingService: listingService,
		logger:         logger,
	}
}

func (h *ListingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input domain.CreateListingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	listing, err := h.listingService.Create(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidAmount) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to create listing", zap.Error(err), zap.Int64("user_id", userID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(listing); err != nil {
		h.logger.Error("failed to encode listing response", zap.Error(err))
	}
}

func (h *ListingsHandler) Browse(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePaging(r)
	listings, err := h.listingService.Browse(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list listings", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(listings) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listings); err != nil {
		h.logger.Error("failed to encode listings response", zap.Error(err))
	}
}

func (h *ListingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	listing, err := h.listingService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get listing", zap.Error(err), zap.String("listing_id", id.String()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listing); err != nil {
		h.logger.Error("failed to encode listing response", zap.Error(err))
	}
}

func (h *ListingsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err = h.listingService.Cancel(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if errors.Is(err, domain.ErrListingNotActive) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("failed to cancel listing", zap.Error(err), zap.String("listing_id", id.String()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
