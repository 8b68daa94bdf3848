package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeSplitter вычисляет разбиение суммы заказа на комиссию площадки и выручку продавца
type FeeSplitter interface {
	Split(amount decimal.Decimal) FeeBreakdown
}

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, login, passwordHash string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// LedgerRepository определяет примитивы счета: каждое изменение баланса
// атомарно записывает транзакцию
type LedgerRepository interface {
	Credit(ctx context.Context, userID int64, amount decimal.Decimal, txType TransactionType, relatedOrderID *uuid.UUID, description string) (*Balance, error)
	Debit(ctx context.Context, userID int64, amount decimal.Decimal, txType TransactionType, relatedOrderID *uuid.UUID, description string) (*Balance, error)
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	ListTransactions(ctx context.Context, userID int64, limit, offset int) ([]*Transaction, error)
	ReconstructBalance(ctx context.Context, userID int64) (*Balance, error)
}

// ListingRepository определяет методы для работы с объявлениями
type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) (*Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Listing, error)
	ListActive(ctx context.Context, limit, offset int) ([]*Listing, error)
	Cancel(ctx context.Context, id uuid.UUID, sellerID int64) error
}

// OrderRepository определяет переходы машины состояний заказа.
// Каждый переход выполняется в одной транзакции БД вместе с движением средств
type OrderRepository interface {
	CreateWithEscrow(ctx context.Context, listingID uuid.UUID, buyerID int64) (*Order, error)
	MarkDelivered(ctx context.Context, orderID uuid.UUID, sellerID int64) (*Order, error)
	ConfirmReceipt(ctx context.Context, orderID uuid.UUID, buyerID int64) (*Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListForUser(ctx context.Context, userID int64, filter OrderFilter, limit, offset int) ([]*Order, error)
}

// DisputeRepository определяет методы для работы со спорами
type DisputeRepository interface {
	Create(ctx context.Context, orderID uuid.UUID, openedByID int64, reason string) (*Dispute, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Dispute, error)
	ListForUser(ctx context.Context, userID int64, limit, offset int) ([]*Dispute, error)
	Resolve(ctx context.Context, disputeID uuid.UUID, resolution DisputeResolution, adminNotes string) (*Dispute, error)
}

// ReviewRepository определяет методы для работы с отзывами
type ReviewRepository interface {
	Create(ctx context.Context, orderID uuid.UUID, reviewerID int64, rating int, comment string) (*Review, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*Review, error)
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}

// BalanceService определяет методы работы с балансом
type BalanceService interface {
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (*Balance, error)
	GetTransactions(ctx context.Context, userID int64, limit, offset int) ([]*Transaction, error)
}

// CreateListingInput содержит данные нового объявления
type CreateListingInput struct {
	PetName     string          `json:"pet_name"`
	PetCategory string          `json:"pet_category"`
	Rarity      string          `json:"rarity"`
	Price       decimal.Decimal `json:"price"`
}

// ListingService определяет методы работы с объявлениями
type ListingService interface {
	Create(ctx context.Context, sellerID int64, input CreateListingInput) (*Listing, error)
	Get(ctx context.Context, id uuid.UUID) (*Listing, error)
	Browse(ctx context.Context, limit, offset int) ([]*Listing, error)
	Cancel(ctx context.Context, sellerID int64, id uuid.UUID) error
}

// OrderService определяет операции жизненного цикла заказа
type OrderService interface {
	Buy(ctx context.Context, buyerID int64, listingID uuid.UUID) (*Order, error)
	MarkDelivered(ctx context.Context, sellerID int64, orderID uuid.UUID) (*Order, error)
	ConfirmReceipt(ctx context.Context, buyerID int64, orderID uuid.UUID) (*Order, error)
	GetOrder(ctx context.Context, callerID int64, role Role, orderID uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context, userID int64, filter OrderFilter, limit, offset int) ([]*Order, error)
}

// DisputeService определяет операции над спорами
type DisputeService interface {
	Open(ctx context.Context, userID int64, orderID uuid.UUID, reason string) (*Dispute, error)
	Resolve(ctx context.Context, role Role, disputeID uuid.UUID, resolution DisputeResolution, adminNotes string) (*Dispute, error)
	Get(ctx context.Context, callerID int64, role Role, disputeID uuid.UUID) (*Dispute, error)
	List(ctx context.Context, userID int64, limit, offset int) ([]*Dispute, error)
}

// ReviewService определяет операции над отзывами
type ReviewService interface {
	Create(ctx context.Context, reviewerID int64, orderID uuid.UUID, rating int, comment string) (*Review, error)
	GetForOrder(ctx context.Context, orderID uuid.UUID) (*Review, error)
}
