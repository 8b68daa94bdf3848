package app

import (
	"github.com/LuccasRage/ragemarketplace/internal/handlers"
	"github.com/LuccasRage/ragemarketplace/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Публичные эндпоинты
	r.Post("/api/auth/register", deps.handlers.auth.Register)
	r.Post("/api/auth/login", deps.handlers.auth.Login)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Get("/api/users/me/balance", deps.handlers.balance.GetBalance)
		r.Post("/api/users/me/deposit", deps.handlers.balance.Deposit)
		r.Get("/api/users/me/transactions", deps.handlers.balance.GetTransactions)

		r.Post("/api/listings", deps.handlers.listings.Create)
		r.Get("/api/listings", deps.handlers.listings.Browse)
		r.Get("/api/listings/{id}", deps.handlers.listings.Get)
		r.Delete("/api/listings/{id}", deps.handlers.listings.Cancel)

		r.Post("/api/orders/buy/{listingID}", deps.handlers.orders.Buy)
		r.Get("/api/orders", deps.handlers.orders.ListOrders)
		r.Get("/api/orders/{id}", deps.handlers.orders.GetOrder)
		r.Put("/api/orders/{id}/deliver", deps.handlers.orders.MarkDelivered)
		r.Put("/api/orders/{id}/confirm", deps.handlers.orders.ConfirmReceipt)
		r.Get("/api/orders/{id}/review", deps.handlers.reviews.GetForOrder)

		r.Post("/api/disputes", deps.handlers.disputes.Open)
		r.Get("/api/disputes", deps.handlers.disputes.List)
		r.Get("/api/disputes/{id}", deps.handlers.disputes.Get)

		r.Post("/api/reviews", deps.handlers.reviews.Create)

		// Разрешение споров доступно только админам и поддержке
		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireResolverRole())
			r.Put("/api/disputes/{id}/resolve", deps.handlers.disputes.Resolve)
		})
	})
}
