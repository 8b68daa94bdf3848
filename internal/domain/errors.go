package domain

import "errors"

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Ошибки объявлений
var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrListingNotActive = errors.New("listing is not active")
	ErrOwnListing       = errors.New("cannot buy own listing")
)

// Ошибки заказов
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderState = errors.New("operation is not allowed in current order state")
)

// Ошибки споров и отзывов
var (
	ErrDisputeNotFound   = errors.New("dispute not found")
	ErrDisputeExists     = errors.New("dispute already exists for this order")
	ErrDisputeResolved   = errors.New("dispute is already resolved")
	ErrInvalidResolution = errors.New("invalid dispute resolution")
	ErrReviewNotFound    = errors.New("review not found")
	ErrReviewExists      = errors.New("review already exists for this order")
)

// Ошибки баланса и доступа
var (
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientHeldFunds = errors.New("insufficient held funds")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrForbidden             = errors.New("operation is not allowed for this user")
	ErrConflict              = errors.New("concurrent modification detected")
)
