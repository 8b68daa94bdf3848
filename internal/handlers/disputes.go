package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DisputesHandler struct {
	disputeService domain.DisputeService
	logger         *zap.Logger
}

func NewDisputesHandler(disputeService domain.DisputeService, logger *zap.Logger) *DisputesHandler {
	return &DisputesHandler{
		disputeService: disputeService,
		logger:         logger,
	}
}

type openDisputeRequest struct {
	OrderID uuid.UUID `json:"order_id"`
	Reason  string    `json:"reason"`
}

func (h *DisputesHandler) Open(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req openDisputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Reason) == "" || req.OrderID == uuid.Nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	dispute, err := h.disputeService.Open(r.Context(), userID, req.OrderID, req.Reason)
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
		if errors.Is(err, domain.ErrDisputeExists) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		h.logger.Error("failed to open dispute", zap.Error(err),
			zap.Int64("user_id", userID), zap.String("order_id", req.OrderID.String()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dispute); err != nil {
		h.logger.Error("failed to encode dispute response", zap.Error(err))
	}
}

func (h *DisputesHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	role, _ := GetRole(r.Context())

	disputeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	dispute, err := h.disputeService.Get(r.Context(), userID, role, disputeID)
	if err != nil {
		if errors.Is(err, domain.ErrDisputeNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.logger.Error("failed to get dispute", zap.Error(err), zap.String("dispute_id", disputeID.String()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dispute); err != nil {
		h.logger.Error("failed to encode dispute response", zap.Error(err))
	}
}

func (h *DisputesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit, offset := parsePaging(r)
	disputes, err := h.disputeService.List(r.Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("failed to list disputes", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(disputes) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(disputes); err != nil {
		h.logger.Error("failed to encode disputes response", zap.Error(err))
	}
}

type resolveDisputeRequest struct {
	Resolution domain.DisputeResolution `json:"resolution"`
	AdminNotes string                   `json:"admin_notes"`
}

func (h *DisputesHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	role, ok := GetRole(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	disputeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req resolveDisputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	dispute, err := h.disputeService.Resolve(r.Context(), role, disputeID, req.Resolution, req.AdminNotes)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidResolution) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if errors.Is(err, domain.ErrDisputeNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrDisputeResolved) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, domain.ErrConflict) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		h.logger.Error("failed to resolve dispute", zap.Error(err), zap.String("dispute_id", disputeID.String()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dispute); err != nil {
		h.logger.Error("failed to encode dispute response", zap.Error(err))
	}
}
