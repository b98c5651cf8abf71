package redislock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"github.com/hellolocal/shopads-service/internal/domain"
)

const (
	lockKeyPrefix = "adslot:day:"
	lockExpiry    = 15 * time.Second
	lockRetries   = 8
)

// DayLockGuard serializes slot bookings with one redsync mutex per
// calendar day. Days are locked in chronological order so two bookings
// over overlapping ranges never deadlock.
type DayLockGuard struct {
	rs *redsync.Redsync
}

func NewDayLockGuard(client *redis.Client) *DayLockGuard {
	pool := goredis.NewPool(client)
	return &DayLockGuard{rs: redsync.New(pool)}
}

func (g *DayLockGuard) LockDays(ctx context.Context, days []time.Time) (domain.UnlockFunc, error) {
	mutexes := make([]*redsync.Mutex, 0, len(days))
	for _, day := range days {
		key := lockKeyPrefix + day.Format("2006-01-02")
		mutexes = append(mutexes, g.rs.NewMutex(
			key,
			redsync.WithExpiry(lockExpiry),
			redsync.WithTries(lockRetries),
		))
	}

	acquired := make([]*redsync.Mutex, 0, len(mutexes))
	release := func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			if _, err := acquired[i].UnlockContext(context.WithoutCancel(ctx)); err != nil {
				slog.Error("failed to release day lock", "name", acquired[i].Name(), "error", err)
			}
		}
	}

	for _, mutex := range mutexes {
		if err := mutex.LockContext(ctx); err != nil {
			release()
			return nil, fmt.Errorf("failed to lock %s: %w", mutex.Name(), err)
		}
		acquired = append(acquired, mutex)
	}

	return release, nil
}
