package service

import (
	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultFeePercent комиссия площадки по умолчанию, в процентах
var DefaultFeePercent = decimal.NewFromInt(7)

// EscrowService вычисляет разбиение суммы заказа на комиссию площадки и
// выручку продавца. Ставка комиссии фиксируется при создании сервиса,
// чтобы расчет был детерминированным
type EscrowService struct {
	feePercent decimal.Decimal
}

// NewEscrowService создает новый EscrowService с заданной ставкой комиссии
func NewEscrowService(feePercent decimal.Decimal) *EscrowService {
	if feePercent.Sign() < 0 || feePercent.GreaterThan(decimal.NewFromInt(100)) {
		feePercent = DefaultFeePercent
	}
	return &EscrowService{feePercent: feePercent}
}

// Split делит сумму на комиссию и выручку продавца.
// Комиссия округляется вниз до копеек, остаток достается продавцу,
// поэтому PlatformFee + SellerEarnings всегда в точности равно amount
func (s *EscrowService) Split(amount decimal.Decimal) domain.FeeBreakdown {
	fee := amount.Mul(s.feePercent).Div(decimal.NewFromInt(100)).RoundDown(2)
	return domain.FeeBreakdown{
		PlatformFee:    fee,
		SellerEarnings: amount.Sub(fee),
	}
}

// FeePercent возвращает текущую ставку комиссии
func (s *EscrowService) FeePercent() decimal.Decimal {
	return s.feePercent
}
