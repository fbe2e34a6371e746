package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

//go:generate mockgen -source=lock.go -destination=lock_mock_test.go -package=services

// Retry schedule of TryAcquireWithRetry: 50ms, 100ms, 200ms, 400ms, then 500ms.
const (
	minLockBackoff = 50 * time.Millisecond
	maxLockBackoff = 500 * time.Millisecond
)

// cleanupTimeout bounds release and abandon calls issued after the caller's context is gone.
const cleanupTimeout = 2 * time.Second

// LockStore is the key-value store contract the lock is built on.
type LockStore interface {
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Delete(ctx context.Context, key string) (bool, error)
	CompareAndDelete(ctx context.Context, key, value string) (bool, error)
	CompareAndExpire(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}

// LockOption configures a LockService.
type LockOption func(*LockService)

// WithLockNamespace prefixes every key with namespace + ":".
func WithLockNamespace(namespace string) LockOption {
	return func(s *LockService) {
		s.namespace = namespace
	}
}

// WithLockRenewal enables extending the lease every ttl/3 while ExecuteUnderLock runs its action.
func WithLockRenewal(enabled bool) LockOption {
	return func(s *LockService) {
		s.renew = enabled
	}
}

// LockService hands out exclusive leases on keys of a shared store.
// A lease is held while the store maps the key to the lease token; it expires after its TTL.
type LockService struct {
	store     LockStore
	namespace string
	renew     bool

	newToken func() string
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewLockService creates a new LockService.
func NewLockService(store LockStore, opts ...LockOption) *LockService {
	s := &LockService{
		store:    store,
		newToken: uuid.NewString,
		now:      time.Now,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TryAcquire makes a single attempt to take key for ttl.
// Store failures are reported as busy; the returned error is set only for invalid arguments.
func (s *LockService) TryAcquire(ctx context.Context, key string, ttl time.Duration) (models.AcquireResult, error) {
	if err := validateLock(key, ttl); err != nil {
		return models.AcquireResult{}, err
	}
	return s.attempt(ctx, key, ttl), nil
}

// TryAcquireWithRetry retries TryAcquire with exponential backoff until maxWait elapses.
// It returns a timeout result once the deadline passes. If ctx is cancelled while waiting
// it returns a timeout result together with the context error.
func (s *LockService) TryAcquireWithRetry(ctx context.Context, key string, ttl, maxWait time.Duration) (models.AcquireResult, error) {
	if err := validateLock(key, ttl); err != nil {
		return models.AcquireResult{}, err
	}
	if maxWait <= 0 {
		return models.AcquireResult{}, ErrInvalidLockWait
	}

	timeout := models.AcquireResult{Status: models.LockTimeout}
	if err := ctx.Err(); err != nil {
		return timeout, err
	}

	deadline := s.now().Add(maxWait)
	for attempt := 0; ; attempt++ {
		if res := s.attempt(ctx, key, ttl); res.Acquired() {
			return res, nil
		}

		remaining := deadline.Sub(s.now())
		if remaining <= 0 {
			break
		}

		delay := lockBackoff(attempt)
		last := delay >= remaining
		if last {
			delay = remaining
		}

		if err := s.sleep(ctx, delay); err != nil {
			logger.FromContext(ctx).Warnw("lock wait cancelled", "key", s.storeKey(key), "attempts", attempt+1, "error", err)
			return timeout, err
		}
		if last {
			break
		}
	}

	logger.FromContext(ctx).Warnw("lock wait timed out", "key", s.storeKey(key), "max_wait", maxWait)
	return timeout, nil
}

// Release deletes key only if it is still held under token.
// Store errors are logged and reported as not-owner; the lease then ends by expiry.
func (s *LockService) Release(ctx context.Context, key, token string) models.ReleaseStatus {
	storeKey := s.storeKey(key)

	ok, err := s.store.CompareAndDelete(ctx, storeKey, token)
	if err != nil {
		logger.FromContext(ctx).Errorw("lock release failed, leaving it to expire", "key", storeKey, "error", err)
		return models.LockNotOwner
	}
	if !ok {
		logger.FromContext(ctx).Warnw("lock not released: expired or held by another owner", "key", storeKey)
		return models.LockNotOwner
	}

	logger.FromContext(ctx).Debugw("lock released", "key", storeKey)
	return models.LockReleased
}

// ExecuteUnderLock runs action while holding key.
// A zero maxWait makes a single attempt, a positive one retries with backoff.
// If the lock cannot be taken the action is not run and the error matches ErrLockAcquisitionFailed.
// The lease is released on every exit path of action, panics included.
func (s *LockService) ExecuteUnderLock(
	ctx context.Context,
	key string,
	ttl, maxWait time.Duration,
	action func(ctx context.Context) error,
) error {
	if err := validateLock(key, ttl); err != nil {
		return err
	}
	if maxWait < 0 {
		return ErrInvalidLockWait
	}

	var (
		res models.AcquireResult
		err error
	)
	if maxWait == 0 {
		res, err = s.TryAcquire(ctx, key, ttl)
	} else {
		res, err = s.TryAcquireWithRetry(ctx, key, ttl, maxWait)
	}
	if err != nil {
		return fmt.Errorf("acquire %s: %w: %w", key, ErrLockTimeout, err)
	}

	switch res.Status {
	case models.LockAcquired:
	case models.LockBusy:
		return fmt.Errorf("acquire %s: %w", key, ErrLockBusy)
	default:
		return fmt.Errorf("acquire %s: %w", key, ErrLockTimeout)
	}

	lease := res.Lease
	stopRenewal := s.startRenewal(ctx, lease)
	defer func() {
		stopRenewal()

		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
		defer cancel()
		s.Release(releaseCtx, lease.Key, lease.Token)
	}()

	return action(ctx)
}

// IsHeld reports whether key currently exists in the store.
// The answer may be stale by the time it is returned; use it for monitoring only.
func (s *LockService) IsHeld(ctx context.Context, key string) bool {
	storeKey := s.storeKey(key)

	_, found, err := s.store.Get(ctx, storeKey)
	if err != nil {
		logger.FromContext(ctx).Errorw("lock check failed", "key", storeKey, "error", err)
		return false
	}
	return found
}

// ForceRelease deletes key regardless of its owner. Operator use only: it can break mutual exclusion.
func (s *LockService) ForceRelease(ctx context.Context, key string) bool {
	storeKey := s.storeKey(key)

	ok, err := s.store.Delete(ctx, storeKey)
	if err != nil {
		logger.FromContext(ctx).Errorw("lock force release failed", "key", storeKey, "error", err)
		return false
	}
	if ok {
		logger.FromContext(ctx).Warnw("lock force released", "key", storeKey)
	}
	return ok
}

func (s *LockService) attempt(ctx context.Context, key string, ttl time.Duration) models.AcquireResult {
	storeKey := s.storeKey(key)
	token := s.newToken()

	ok, err := s.store.SetIfAbsent(ctx, storeKey, token, ttl)
	if err != nil {
		logger.FromContext(ctx).Errorw("lock acquire failed, treating as busy", "key", storeKey, "error", err)
		s.abandon(ctx, storeKey, token)
		return models.AcquireResult{Status: models.LockBusy}
	}
	if !ok {
		return models.AcquireResult{Status: models.LockBusy}
	}

	logger.FromContext(ctx).Debugw("lock acquired", "key", storeKey, "ttl", ttl)
	return models.AcquireResult{
		Status: models.LockAcquired,
		Lease:  &models.Lease{Key: key, Token: token, TTL: ttl},
	}
}

// abandon removes a lease that may have been written by a SET whose reply was lost.
func (s *LockService) abandon(ctx context.Context, storeKey, token string) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if _, err := s.store.CompareAndDelete(cleanupCtx, storeKey, token); err != nil {
		logger.FromContext(ctx).Warnw("lock abandon failed, leaving it to expire", "key", storeKey, "error", err)
	}
}

// startRenewal extends the lease every ttl/3 until the returned stop func is called.
func (s *LockService) startRenewal(ctx context.Context, lease *models.Lease) (stop func()) {
	if !s.renew {
		return func() {}
	}

	storeKey := s.storeKey(lease.Key)
	interval := max(lease.TTL/3, time.Millisecond)
	renewCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-renewCtx.Done():
				return
			case <-ticker.C:
				ok, err := s.store.CompareAndExpire(renewCtx, storeKey, lease.Token, lease.TTL)
				if err != nil {
					logger.FromContext(ctx).Warnw("lock renewal failed", "key", storeKey, "error", err)
					continue
				}
				if !ok {
					logger.FromContext(ctx).Warnw("lock lost before renewal", "key", storeKey)
					return
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func (s *LockService) storeKey(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + ":" + key
}

// lockBackoff returns the pause after the given zero-based failed attempt.
func lockBackoff(attempt int) time.Duration {
	if attempt >= 4 {
		return maxLockBackoff
	}
	return min(minLockBackoff<<attempt, maxLockBackoff)
}

func validateLock(key string, ttl time.Duration) error {
	if key == "" {
		return ErrInvalidLockKey
	}
	if ttl <= 0 {
		return ErrInvalidLockTTL
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
