package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена
	LogLevel    string        // Уровень логирования

	// Комиссия площадки в процентах от цены заказа
	PlatformFeePercent decimal.Decimal

	// Конфигурация фонового сверщика балансов
	WorkerPoolSize    int           // Количество воркеров
	WorkerQueueSize   int           // Размер очереди пользователей
	ReconcileInterval time.Duration // Интервал сверки балансов

	// Валидация
	MinPasswordLength int // Минимальная длина пароля
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		PlatformFeePercent: decimal.NewFromInt(7),
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		ReconcileInterval:  time.Minute,
		MinPasswordLength:  6,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Комиссия площадки
	if envFee, ok := os.LookupEnv("PLATFORM_FEE_PERCENT"); ok {
		fee, err := decimal.NewFromString(envFee)
		if err != nil {
			return nil, fmt.Errorf("invalid PLATFORM_FEE_PERCENT: %w", err)
		}
		if fee.IsNegative() || fee.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("PLATFORM_FEE_PERCENT must be between 0 and 100, got %s", fee)
		}
		cfg.PlatformFeePercent = fee
	}

	// Конфигурация сверщика балансов из env
	if envWorkerPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envWorkerQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	if envInterval, ok := os.LookupEnv("RECONCILE_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envInterval); err == nil && interval > 0 {
			cfg.ReconcileInterval = interval
		}
	}

	if envMinPassword, ok := os.LookupEnv("MIN_PASSWORD_LENGTH"); ok {
		if length, err := strconv.Atoi(envMinPassword); err == nil && length > 0 {
			cfg.MinPasswordLength = length
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	return cfg, nil
}
