package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/LuccasRage/ragemarketplace/internal/config"
	"github.com/LuccasRage/ragemarketplace/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool
	router     *chi.Mux
	workerPool *worker.Pool
	server     *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных и миграции
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	// Инициализация зависимостей
	deps := initDependencies(cfg, dbPool, logger)

	// Настройка роутера
	router := setupRouter(deps, deps.jwtManager, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         dbPool,
		router:     router,
		workerPool: deps.workerPool,
		server:     server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск фоновой сверки балансов
	a.workerPool.Start(ctx)
	a.logger.Info("balance reconciler started",
		zap.Int("workers", a.config.WorkerPoolSize),
		zap.Duration("interval", a.config.ReconcileInterval),
	)

	// Запуск HTTP сервера и ожидание сигнала завершения
	err := a.runServer(ctx)

	// Graceful shutdown выполняется и при штатном сигнале, и при ошибке сервера
	a.shutdown(cancel)

	return err
}
