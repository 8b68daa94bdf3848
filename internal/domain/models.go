package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role представляет роль пользователя
type Role string

const (
	RoleUser    Role = "USER"
	RoleAdmin   Role = "ADMIN"
	RoleSupport Role = "SUPPORT"
)

// CanResolveDisputes сообщает, может ли роль разрешать споры
func (r Role) CanResolveDisputes() bool {
	return r == RoleAdmin || r == RoleSupport
}

// ListingStatus представляет статус объявления
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "ACTIVE"
	ListingStatusSold      ListingStatus = "SOLD"
	ListingStatusCancelled ListingStatus = "CANCELLED"
)

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPendingDelivery OrderStatus = "PENDING_DELIVERY"
	OrderStatusDelivered       OrderStatus = "DELIVERED"
	OrderStatusCompleted       OrderStatus = "COMPLETED"
	OrderStatusDisputed        OrderStatus = "DISPUTED"
	OrderStatusRefunded        OrderStatus = "REFUNDED"
)

// DisputeStatus представляет статус спора
type DisputeStatus string

const (
	DisputeStatusOpen           DisputeStatus = "OPEN"
	DisputeStatusUnderReview    DisputeStatus = "UNDER_REVIEW"
	DisputeStatusResolvedBuyer  DisputeStatus = "RESOLVED_BUYER"
	DisputeStatusResolvedSeller DisputeStatus = "RESOLVED_SELLER"
	DisputeStatusClosed         DisputeStatus = "CLOSED"
)

// TransactionType представляет тип транзакции
type TransactionType string

const (
	TransactionTypeDeposit       TransactionType = "DEPOSIT"
	TransactionTypePurchase      TransactionType = "PURCHASE"
	TransactionTypeEscrowHold    TransactionType = "ESCROW_HOLD"
	TransactionTypeEscrowRelease TransactionType = "ESCROW_RELEASE"
	TransactionTypeSaleEarning   TransactionType = "SALE_EARNING"
	TransactionTypeRefund        TransactionType = "REFUND"
)

// User представляет пользователя системы
type User struct {
	ID           int64           `json:"id"`
	Login        string          `json:"login"`
	PasswordHash string          `json:"-"` // Не отправляем хеш в JSON
	Role         Role            `json:"role"`
	Available    decimal.Decimal `json:"available"`
	Held         decimal.Decimal `json:"held"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Balance представляет баланс пользователя: доступные и замороженные средства
type Balance struct {
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
}

// Transaction представляет операцию на счете. Записи неизменяемы:
// balance_after = balance_before + amount для затронутого сегмента баланса
type Transaction struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"-"`
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	BalanceBefore  decimal.Decimal `json:"balance_before"`
	BalanceAfter   decimal.Decimal `json:"balance_after"`
	Description    string          `json:"description,omitempty"`
	RelatedOrderID *uuid.UUID      `json:"related_order_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Listing представляет объявление о продаже питомца
type Listing struct {
	ID          uuid.UUID       `json:"id"`
	SellerID    int64           `json:"seller_id"`
	PetName     string          `json:"pet_name"`
	PetCategory string          `json:"pet_category"`
	Rarity      string          `json:"rarity,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Status      ListingStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Order представляет покупку объявления с удержанием средств в эскроу
type Order struct {
	ID                uuid.UUID       `json:"id"`
	ListingID         uuid.UUID       `json:"listing_id"`
	BuyerID           int64           `json:"buyer_id"`
	SellerID          int64           `json:"seller_id"`
	Price             decimal.Decimal `json:"price"`
	PlatformFee       decimal.Decimal `json:"platform_fee"`
	SellerEarnings    decimal.Decimal `json:"seller_earnings"`
	EscrowAmount      decimal.Decimal `json:"escrow_amount"`
	Status            OrderStatus     `json:"status"`
	SellerDeliveredAt *time.Time      `json:"seller_delivered_at,omitempty"`
	BuyerConfirmedAt  *time.Time      `json:"buyer_confirmed_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Dispute представляет спор по заказу. На заказ допускается не более одного спора
type Dispute struct {
	ID         uuid.UUID     `json:"id"`
	OrderID    uuid.UUID     `json:"order_id"`
	OpenedByID int64         `json:"opened_by_id"`
	Reason     string        `json:"reason"`
	AdminNotes string        `json:"admin_notes,omitempty"`
	Status     DisputeStatus `json:"status"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// DisputeResolution представляет вердикт арбитра по спору
type DisputeResolution string

const (
	ResolutionBuyer  DisputeResolution = "RESOLVED_BUYER"
	ResolutionSeller DisputeResolution = "RESOLVED_SELLER"
	ResolutionClosed DisputeResolution = "CLOSED"
)

// Valid проверяет, что вердикт является одним из допустимых
func (r DisputeResolution) Valid() bool {
	switch r {
	case ResolutionBuyer, ResolutionSeller, ResolutionClosed:
		return true
	}
	return false
}

// Review представляет отзыв покупателя о завершенном заказе
type Review struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	ReviewerID int64     `json:"reviewer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// FeeBreakdown представляет разбиение суммы заказа на комиссию и выручку продавца.
// Инвариант: PlatformFee + SellerEarnings равно сумме заказа
type FeeBreakdown struct {
	PlatformFee    decimal.Decimal `json:"platform_fee"`
	SellerEarnings decimal.Decimal `json:"seller_earnings"`
}

// OrderFilter задает выборку заказов пользователя
type OrderFilter string

const (
	OrderFilterAll       OrderFilter = "all"
	OrderFilterPurchases OrderFilter = "purchases"
	OrderFilterSales     OrderFilter = "sales"
)
