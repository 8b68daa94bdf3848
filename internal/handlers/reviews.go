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

type ReviewsHandler struct {
	reviewService domain.ReviewService
	logger        *zap.Logger
}

func NewReviewsHandler(reviewService domain.ReviewService, logger *zap.Logger) *ReviewsHandler {
	return &ReviewsHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

type createReviewRequest struct {
	OrderID uuid.UUID `json:"order_id"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
}

func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	review, err := h.reviewService.Create(r.Context(), userID, req.OrderID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if errors.Is(err, domain.ErrInvalidOrderState) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, domain.ErrReviewExists) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		h.logger.Error("failed to create review", zap.Error(err),
			zap.Int64("user_id", userID), zap.String("order_id", req.OrderID.String()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(review); err != nil {
		h.logger.Error("failed to encode review response", zap.Error(err))
	}
}

func (h *ReviewsHandler) GetForOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	review, err := h.reviewService.GetForOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get review", zap.Error(err), zap.String("order_id", orderID.String()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(review); err != nil {
		h.logger.Error("failed to encode review response", zap.Error(err))
	}
}
