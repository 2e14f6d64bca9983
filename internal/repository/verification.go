package repository

import (
	"sync"
	"time"

	"github.com/debate-hall/backend/internal/domain"
)

// verificationRepository keeps one pending code per email address in
// process memory. Expiry is enforced lazily: Put sweeps the whole
// table, Get returns whatever is stored and lets the caller judge.
type verificationRepository struct {
	mu      sync.RWMutex
	records map[string]domain.VerificationRecord
	now     func() time.Time
}

func newVerificationRepository(now func() time.Time) *verificationRepository {
	if now == nil {
		now = time.Now
	}

	return &verificationRepository{
		records: make(map[string]domain.VerificationRecord),
		now:     now,
	}
}

// Put overwrites any previous record for email and sweeps expired
// entries while it holds the lock.
func (r *verificationRepository) Put(email, code string, ttl time.Duration) domain.VerificationRecord {
	now := r.now()

	record := domain.VerificationRecord{
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[email] = record
	r.sweepLocked(now)

	return record
}

func (r *verificationRepository) Get(email string) (domain.VerificationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[email]
	if !ok {
		return domain.VerificationRecord{}, domain.ErrNotFound
	}

	return record, nil
}

// Delete is idempotent.
func (r *verificationRepository) Delete(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, email)
}

// Consume checks and consumes the record for email in one critical
// section, so two concurrent confirms with the correct code cannot
// both succeed. A match deletes the record and returns nil. A
// mismatch bumps the attempt counter, deletes the record once the
// counter reaches maxAttempts, and reports the new count either way.
func (r *verificationRepository) Consume(email, code string, maxAttempts int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[email]
	if !ok {
		return 0, domain.ErrNotFound
	}

	if record.Expired(r.now()) {
		// drop eagerly so a stale record can never match later
		delete(r.records, email)
		return record.Attempts, domain.ErrExpired
	}

	if record.Code != code {
		record.Attempts++
		if record.Attempts >= maxAttempts {
			delete(r.records, email)
		} else {
			r.records[email] = record
		}

		return record.Attempts, domain.ErrMismatch
	}

	delete(r.records, email)

	return record.Attempts, nil
}

// SweepExpired drops every record past its expiry and reports how
// many were removed.
func (r *verificationRepository) SweepExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sweepLocked(r.now())
}

func (r *verificationRepository) sweepLocked(now time.Time) int {
	// a record at exactly expiresAt == now goes too; Consume already
	// treats it as expired, so it could never match anyway
	removed := 0
	for email, record := range r.records {
		if record.Expired(now) {
			delete(r.records, email)
			removed++
		}
	}

	return removed
}
