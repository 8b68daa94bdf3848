package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LuccasRage/ragemarketplace/internal/domain"
	domainmocks "github.com/LuccasRage/ragemarketplace/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestPool(t *testing.T) (*Pool, *domainmocks.UserRepositoryMock, *domainmocks.LedgerRepositoryMock) {
	t.Helper()
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
	logger, _ := zap.NewDevelopment()

	cfg := PoolConfig{Workers: 1, QueueSize: 10, ScanInterval: time.Minute}
	return NewPool(cfg, mockUserRepo, mockLedgerRepo, logger), mockUserRepo, mockLedgerRepo
}

func TestPool_ReconcileUser_Match(t *testing.T) {
	pool, _, mockLedgerRepo := newTestPool(t)
	ctx := context.Background()

	balance := &domain.Balance{
		Available: decimal.RequireFromString("350.00"),
		Held:      decimal.RequireFromString("150.00"),
	}

	mockLedgerRepo.EXPECT().GetBalance(mock.Anything, int64(1)).Return(balance, nil).Once()
	mockLedgerRepo.EXPECT().ReconstructBalance(mock.Anything, int64(1)).Return(&domain.Balance{
		Available: decimal.RequireFromString("350.00"),
		Held:      decimal.RequireFromString("150.00"),
	}, nil).Once()

	pool.reconcileUser(ctx, 1)
}

func TestPool_ReconcileUser_Drift(t *testing.T) {
	pool, _, mockLedgerRepo := newTestPool(t)
	ctx := context.Background()

	stored := &domain.Balance{
		Available: decimal.RequireFromString("350.00"),
		Held:      decimal.RequireFromString("150.00"),
	}
	// Журнал восстанавливает другую сумму
	computed := &domain.Balance{
		Available: decimal.RequireFromString("340.00"),
		Held:      decimal.RequireFromString("150.00"),
	}

	mockLedgerRepo.EXPECT().GetBalance(mock.Anything, int64(1)).Return(stored, nil).Once()
	mockLedgerRepo.EXPECT().ReconstructBalance(mock.Anything, int64(1)).Return(computed, nil).Once()

	pool.reconcileUser(ctx, 1)
}

func TestPool_ReconcileUser_StoredBalanceError(t *testing.T) {
	pool, _, mockLedgerRepo := newTestPool(t)
	ctx := context.Background()

	mockLedgerRepo.EXPECT().GetBalance(mock.Anything, int64(1)).
		Return(nil, errors.New("database error")).Once()

	// Пересчет не вызывается при ошибке чтения сохраненного баланса
	pool.reconcileUser(ctx, 1)
}

func TestPool_EnqueueUsers(t *testing.T) {
	pool, mockUserRepo, _ := newTestPool(t)
	ctx := context.Background()

	mockUserRepo.EXPECT().ListUserIDs(mock.Anything).Return([]int64{1, 2}, nil).Once()

	pool.enqueueUsers(ctx)

	// Проверяем, что пользователи добавлены в очередь
	select {
	case userID := <-pool.queue:
		if userID != 1 && userID != 2 {
			t.Errorf("unexpected user id in queue: %d", userID)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("expected user in queue, got timeout")
	}
}

func TestPool_EnqueueUsers_ListError(t *testing.T) {
	pool, mockUserRepo, _ := newTestPool(t)
	ctx := context.Background()

	mockUserRepo.EXPECT().ListUserIDs(mock.Anything).
		Return(nil, errors.New("database error")).Once()

	pool.enqueueUsers(ctx)

	select {
	case userID := <-pool.queue:
		t.Errorf("queue should be empty, got user %d", userID)
	default:
	}
}

func TestPool_StartStop(t *testing.T) {
	pool, _, _ := newTestPool(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool.Start(ctx)

	// Воркеры завершаются после закрытия очереди
	done := make(chan struct{})
	go func() {
		cancel()
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("pool did not stop in time")
	}
}
