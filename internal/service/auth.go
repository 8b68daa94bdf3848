package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/LuccasRage/ragemarketplace/internal/utils/jwt"
	"github.com/LuccasRage/ragemarketplace/internal/utils/password"
)

// AuthServiceConfig содержит настройки AuthService
type AuthServiceConfig struct {
	MinPasswordLength int
}

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
	config         AuthServiceConfig
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
	config AuthServiceConfig,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
		config:         config,
	}
}

// Register регистрирует нового пользователя и возвращает JWT токен
func (s *AuthService) Register(ctx context.Context, login, userPassword string) (string, error) {
	// Валидация входных данных
	if login == "" || userPassword == "" {
		return "", ErrInvalidInput
	}
	if len(userPassword) < s.config.MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, s.config.MinPasswordLength)
	}

	// Хеширование пароля
	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to hash password for user %q: %w", login, err)
	}

	// Создание пользователя
	user, err := s.userRepo.CreateUser(ctx, login, hash)
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrUserExists) {
			return "", err
		}
		return "", fmt.Errorf("auth service: failed to register user %q: %w", login, err)
	}

	// Генерация JWT токена
	token, err := s.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}

	return token, nil
}

// Login аутентифицирует пользователя и возвращает JWT токен
func (s *AuthService) Login(ctx context.Context, login, userPassword string) (string, error) {
	if login == "" || userPassword == "" {
		return "", ErrInvalidInput
	}

	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Не раскрываем, существует ли пользователь
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get user %q: %w", login, err)
	}

	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to check password for user %d: %w", user.ID, err)
	}

	token, err := s.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}

	return token, nil
}
