package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v8"
)

const (
	postQuotaLockExpiry = 8 * time.Second
	postQuotaLockTries  = 32
	postQuotaRetryDelay = 50 * time.Millisecond
)

// Locker 基于 redis 的分布式互斥锁，按用户维度串行化 check-then-write 流程
type Locker struct {
	rs *redsync.Redsync
}

func New(client *redis.Client) *Locker {
	pool := goredis.NewPool(client)
	return &Locker{rs: redsync.New(pool)}
}

// PostQuota 发帖配额锁：同一用户的配额检查和发帖写入必须互斥
func (l *Locker) PostQuota(userID int64) *redsync.Mutex {
	return l.rs.NewMutex(
		fmt.Sprintf("lock:post_quota:%d", userID),
		redsync.WithExpiry(postQuotaLockExpiry),
		redsync.WithTries(postQuotaLockTries),
		redsync.WithRetryDelay(postQuotaRetryDelay),
	)
}

// WithPostQuota 在持有用户发帖锁的情况下执行 fn
func (l *Locker) WithPostQuota(ctx context.Context, userID int64, fn func() error) error {
	mutex := l.PostQuota(userID)
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("acquire post quota lock: %w", err)
	}
	defer mutex.UnlockContext(ctx)

	return fn()
}
