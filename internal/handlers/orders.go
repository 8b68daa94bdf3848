package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrdersHandler struct {
	orderService domain.OrderService
	logger       *zap.Logger
}

func NewOrdersHandler(orderService domain.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

func (h *OrdersHandler) Buy(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.orderService.Buy(r.Context(), userID, listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrListingNotActive) || errors.Is(err, domain.ErrOwnListing) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, domain.ErrInsufficientFunds) {
			http.Error(w, "Payment Required", http.StatusPaymentRequired)
			return
		}
		h.logger.Error("failed to buy listing", zap.Error(err),
			zap.Int64("user_id", userID), zap.String("listing_id", listingID.String()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(order); err != nil {
		h.logger.Error("failed to encode order response", zap.Error(err))
	}
}

func (h *OrdersHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.MarkDelivered)
}

func (h *OrdersHandler) ConfirmReceipt(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.ConfirmReceipt)
}

// transition обрабатывает переходы заказа, у которых одинаковая сигнатура
func (h *OrdersHandler) transition(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, userID int64, orderID uuid.UUID) (*domain.Order, error),
) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := op(r.Context(), userID, orderID)
	if err != nil {
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
		if errors.Is(err, domain.ErrConflict) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		h.logger.Error("failed to transition order", zap.Error(err),
			zap.Int64("user_id", userID), zap.String("order_id", orderID.String()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(order); err != nil {
		h.logger.Error("failed to encode order response", zap.Error(err))
	}
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	role, _ := GetRole(r.Context())

	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), userID, role, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.logger.Error("failed to get order", zap.Error(err), zap.String("order_id", orderID.String()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(order); err != nil {
		h.logger.Error("failed to encode order response", zap.Error(err))
	}
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	filter := domain.OrderFilter(r.URL.Query().Get("filter"))
	switch filter {
	case "":
		filter = domain.OrderFilterAll
	case domain.OrderFilterAll, domain.OrderFilterPurchases, domain.OrderFilterSales:
	default:
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	limit, offset := parsePaging(r)
	orders, err := h.orderService.ListOrders(r.Context(), userID, filter, limit, offset)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		h.logger.Error("failed to encode orders response", zap.Error(err))
	}
}
