package repository

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debate-hall/backend/internal/domain"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestRepo() (*verificationRepository, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return newVerificationRepository(clock.Now), clock
}

func TestVerificationRepository_PutAndGet(t *testing.T) {
	repo, clock := newTestRepo()

	record := repo.Put("a@x.com", "123456", 10*time.Minute)

	assert.Equal(t, "a@x.com", record.Email)
	assert.Equal(t, "123456", record.Code)
	assert.Equal(t, clock.Now().Add(10*time.Minute), record.ExpiresAt)

	got, err := repo.Get("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestVerificationRepository_GetMissing(t *testing.T) {
	repo, _ := newTestRepo()

	_, err := repo.Get("nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerificationRepository_PutOverwrites(t *testing.T) {
	repo, _ := newTestRepo()

	repo.Put("a@x.com", "111111", 10*time.Minute)
	repo.Put("a@x.com", "222222", 10*time.Minute)

	got, err := repo.Get("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "222222", got.Code)
	assert.Zero(t, got.Attempts)
}

func TestVerificationRepository_PutDoesNotTouchOtherEmails(t *testing.T) {
	repo, _ := newTestRepo()

	repo.Put("a@x.com", "111111", 10*time.Minute)
	repo.Put("b@x.com", "222222", 10*time.Minute)

	got, err := repo.Get("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "111111", got.Code)
}

func TestVerificationRepository_DeleteIdempotent(t *testing.T) {
	repo, _ := newTestRepo()

	repo.Put("a@x.com", "111111", 10*time.Minute)
	repo.Delete("a@x.com")
	repo.Delete("a@x.com")

	_, err := repo.Get("a@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerificationRepository_SweepExpired(t *testing.T) {
	repo, clock := newTestRepo()

	repo.Put("old@x.com", "111111", 10*time.Minute)
	clock.Advance(11 * time.Minute)
	repo.Put("fresh@x.com", "222222", 10*time.Minute)

	// the insert above already swept the expired record
	_, err := repo.Get("old@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Get("fresh@x.com")
	assert.NoError(t, err)

	assert.Zero(t, repo.SweepExpired())

	clock.Advance(11 * time.Minute)
	assert.Equal(t, 1, repo.SweepExpired())
}

func TestVerificationRepository_ExpiryBoundary(t *testing.T) {
	repo, clock := newTestRepo()

	repo.Put("a@x.com", "111111", 10*time.Minute)
	clock.Advance(10 * time.Minute)

	// expiresAt == now counts as expired
	assert.Equal(t, 1, repo.SweepExpired())
}

func TestVerificationRepository_ConsumeMatch(t *testing.T) {
	repo, _ := newTestRepo()

	repo.Put("a@x.com", "111111", 10*time.Minute)

	_, err := repo.Consume("a@x.com", "111111", 5)
	require.NoError(t, err)

	// a match removes the record, so replay fails
	_, err = repo.Consume("a@x.com", "111111", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerificationRepository_ConsumeMismatchCountsAttempts(t *testing.T) {
	repo, _ := newTestRepo()

	repo.Put("a@x.com", "111111", 10*time.Minute)

	attempts, err := repo.Consume("a@x.com", "000000", 5)
	assert.ErrorIs(t, err, domain.ErrMismatch)
	assert.Equal(t, 1, attempts)

	attempts, err = repo.Consume("a@x.com", "000000", 5)
	assert.ErrorIs(t, err, domain.ErrMismatch)
	assert.Equal(t, 2, attempts)

	got, err := repo.Get("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Attempts)
}

func TestVerificationRepository_ConsumeAtAttemptLimitDeletes(t *testing.T) {
	repo, _ := newTestRepo()

	repo.Put("a@x.com", "111111", 10*time.Minute)

	_, err := repo.Consume("a@x.com", "000000", 1)
	assert.ErrorIs(t, err, domain.ErrMismatch)

	_, err = repo.Get("a@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerificationRepository_ConsumeExpiredDeletes(t *testing.T) {
	repo, clock := newTestRepo()

	repo.Put("a@x.com", "111111", 10*time.Minute)
	clock.Advance(10 * time.Minute)

	_, err := repo.Consume("a@x.com", "111111", 5)
	assert.ErrorIs(t, err, domain.ErrExpired)

	_, err = repo.Get("a@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerificationRepository_ConsumeIsAtomic(t *testing.T) {
	const workers = 8

	repo, _ := newTestRepo()
	repo.Put("a@x.com", "111111", 10*time.Minute)

	var (
		start     = make(chan struct{})
		wg        sync.WaitGroup
		successes atomic.Int32
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			if _, err := repo.Consume("a@x.com", "111111", 5); err == nil {
				successes.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}
