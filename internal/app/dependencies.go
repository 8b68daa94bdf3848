package app

import (
	"github.com/LuccasRage/ragemarketplace/internal/config"
	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"github.com/LuccasRage/ragemarketplace/internal/handlers"
	"github.com/LuccasRage/ragemarketplace/internal/repository/postgres"
	"github.com/LuccasRage/ragemarketplace/internal/service"
	"github.com/LuccasRage/ragemarketplace/internal/utils/jwt"
	"github.com/LuccasRage/ragemarketplace/internal/utils/password"
	"github.com/LuccasRage/ragemarketplace/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user    domain.UserRepository
	ledger  domain.LedgerRepository
	listing domain.ListingRepository
	order   domain.OrderRepository
	dispute domain.DisputeRepository
	review  domain.ReviewRepository
}

// services содержит все сервисы приложения
type services struct {
	auth    domain.AuthService
	balance domain.BalanceService
	listing domain.ListingService
	order   domain.OrderService
	dispute domain.DisputeService
	review  domain.ReviewService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	balance  *handlers.BalanceHandler
	listings *handlers.ListingsHandler
	orders   *handlers.OrdersHandler
	disputes *handlers.DisputesHandler
	reviews  *handlers.ReviewsHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	// Сервис комиссии нужен репозиториям: комиссия считается внутри
	// транзакции БД от заблокированной цены заказа
	escrowService := service.NewEscrowService(cfg.PlatformFeePercent)

	// Создание репозиториев
	repos := &repositories{
		user:    postgres.NewUserRepository(dbPool),
		ledger:  postgres.NewLedgerRepository(dbPool),
		listing: postgres.NewListingRepository(dbPool),
		order:   postgres.NewOrderRepository(dbPool, escrowService),
		dispute: postgres.NewDisputeRepository(dbPool, escrowService),
		review:  postgres.NewReviewRepository(dbPool),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Создание сервисов
	authServiceConfig := service.AuthServiceConfig{
		MinPasswordLength: cfg.MinPasswordLength,
	}
	svcs := &services{
		auth:    service.NewAuthService(repos.user, passwordHasher, jwtManager, authServiceConfig),
		balance: service.NewBalanceService(repos.ledger),
		listing: service.NewListingService(repos.listing),
		order:   service.NewOrderService(repos.order),
		dispute: service.NewDisputeService(repos.dispute, repos.order),
		review:  service.NewReviewService(repos.review),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, logger),
		balance:  handlers.NewBalanceHandler(svcs.balance, logger),
		listings: handlers.NewListingsHandler(svcs.listing, logger),
		orders:   handlers.NewOrdersHandler(svcs.order, logger),
		disputes: handlers.NewDisputesHandler(svcs.dispute, logger),
		reviews:  handlers.NewReviewsHandler(svcs.review, logger),
		health:   handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание сверщика балансов
	workerPoolConfig := worker.PoolConfig{
		Workers:      cfg.WorkerPoolSize,
		QueueSize:    cfg.WorkerQueueSize,
		ScanInterval: cfg.ReconcileInterval,
	}
	workerPool := worker.NewPool(workerPoolConfig, repos.user, repos.ledger, logger)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
