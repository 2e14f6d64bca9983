package repository

import (
	"time"

	"github.com/debate-hall/backend/internal/domain"
)

type Verifications interface {
	Put(email, code string, ttl time.Duration) domain.VerificationRecord
	Get(email string) (domain.VerificationRecord, error)
	Delete(email string)
	Consume(email, code string, maxAttempts int) (int, error)
	SweepExpired() int
}

type Repositories struct {
	Verifications Verifications
}

// NewRepositories wires the in-memory stores. All state is
// process-lifetime only and is lost on restart.
func NewRepositories(now func() time.Time) *Repositories {
	return &Repositories{
		Verifications: newVerificationRepository(now),
	}
}
