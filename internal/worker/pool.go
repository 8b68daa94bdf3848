package worker

import (
	"context"
	"sync"
	"time"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	"go.uber.org/zap"
)

// Pool представляет пул воркеров фоновой сверки балансов.
// Сканер периодически ставит пользователей в очередь, воркеры пересчитывают
// баланс каждого из журнала транзакций и сравнивают с сохраненным
type Pool struct {
	workers      int
	queue        chan int64
	userRepo     domain.UserRepository
	ledgerRepo   domain.LedgerRepository
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
}

// PoolConfig содержит конфигурацию worker pool
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
}

// NewPool создает новый worker pool
func NewPool(
	cfg PoolConfig,
	userRepo domain.UserRepository,
	ledgerRepo domain.LedgerRepository,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:      cfg.Workers,
		queue:        make(chan int64, cfg.QueueSize),
		userRepo:     userRepo,
		ledgerRepo:   ledgerRepo,
		logger:       logger,
		scanInterval: cfg.ScanInterval,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер пользователей
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// worker сверяет балансы пользователей из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case userID, ok := <-p.queue:
			if !ok {
				return
			}
			p.reconcileUser(ctx, userID)
		}
	}
}

// scanner периодически ставит всех пользователей в очередь на сверку
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.enqueueUsers(ctx)
		}
	}
}

// enqueueUsers ставит всех пользователей в очередь на сверку
func (p *Pool) enqueueUsers(ctx context.Context) {
	userIDs, err := p.userRepo.ListUserIDs(ctx)
	if err != nil {
		p.logger.Error("failed to list users for reconciliation", zap.Error(err))
		return
	}

	for _, userID := range userIDs {
		select {
		case p.queue <- userID:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, пропускаем до следующего цикла
			p.logger.Warn("queue is full, skipping user", zap.Int64("user_id", userID))
		}
	}
}

// reconcileUser пересчитывает баланс пользователя из журнала транзакций
// и сравнивает с сохраненным. Расхождение означает ошибку в движении
// средств и требует ручного разбирательства
func (p *Pool) reconcileUser(ctx context.Context, userID int64) {
	stored, err := p.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		p.logger.Error("failed to get stored balance",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return
	}

	computed, err := p.ledgerRepo.ReconstructBalance(ctx, userID)
	if err != nil {
		p.logger.Error("failed to reconstruct balance",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return
	}

	if !stored.Available.Equal(computed.Available) || !stored.Held.Equal(computed.Held) {
		p.logger.Error("balance drift detected",
			zap.Int64("user_id", userID),
			zap.String("stored_available", stored.Available.String()),
			zap.String("computed_available", computed.Available.String()),
			zap.String("stored_held", stored.Held.String()),
			zap.String("computed_held", computed.Held.String()),
		)
		return
	}

	p.logger.Debug("balance reconciled", zap.Int64("user_id", userID))
}
