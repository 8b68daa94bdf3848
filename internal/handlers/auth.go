package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/LuccasRage/ragemarketplace/internal/service"
	"go.uber.org/zap"
)

// AuthHandler обрабатывает регистрацию и вход пользователей
type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type authRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register регистрирует пользователя и выдает JWT токен
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to register", zap.Error(err), zap.String("login", req.Login))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.writeToken(w, token)
}

// Login аутентифицирует пользователя и выдает JWT токен
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to login", zap.Error(err), zap.String("login", req.Login))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.writeToken(w, token)
}

// writeToken отдает токен и в заголовке Authorization, и в теле ответа
func (h *AuthHandler) writeToken(w http.ResponseWriter, token string) {
	w.Header().Set("Authorization", "Bearer "+token)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tokenResponse{Token: token}); err != nil {
		h.logger.Error("failed to encode token response", zap.Error(err))
	}
}
