package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost стоимость хеширования по умолчанию
const DefaultCost = bcrypt.DefaultCost

// ErrMismatch возвращается, когда пароль не соответствует хешу
var ErrMismatch = errors.New("password does not match hash")

// Hasher интерфейс для хеширования паролей
type Hasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) error
}

// BCryptHasher реализация хеширования через bcrypt
type BCryptHasher struct {
	cost int
}

// NewBCryptHasher создает hasher с заданной стоимостью; значения вне
// допустимого диапазона bcrypt заменяются на DefaultCost
func NewBCryptHasher(cost int) *BCryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BCryptHasher{cost: cost}
}

// Hash хеширует пароль
func (h *BCryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// Check проверяет соответствие пароля хешу; при несоответствии
// возвращает ErrMismatch
func (h *BCryptHasher) Check(hash, password string) error {
	if hash == "" || password == "" {
		return ErrMismatch
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("failed to check password: %w", err)
	}

	return nil
}
