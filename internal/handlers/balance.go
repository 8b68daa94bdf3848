package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	balanceService domain.BalanceService
	logger         *zap.Logger
}

func NewBalanceHandler(balanceService domain.BalanceService, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		logger:         logger,
	}
}

func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get balance", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(balance); err != nil {
		h.logger.Error("failed to encode balance response", zap.Error(err))
	}
}

type depositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *BalanceHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	balance, err := h.balanceService.Deposit(r.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to deposit", zap.Error(err), zap.Int64("user_id", userID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(balance); err != nil {
		h.logger.Error("failed to encode deposit response", zap.Error(err))
	}
}

func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit, offset := parsePaging(r)
	transactions, err := h.balanceService.GetTransactions(r.Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("failed to get transactions", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(transactions); err != nil {
		h.logger.Error("failed to encode transactions response", zap.Error(err))
	}
}

// parsePaging читает limit и offset из query string.
// Некорректные значения игнорируются, сервис подставляет дефолты
func parsePaging(r *http.Request) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}
