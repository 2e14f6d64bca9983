package domain

import (
	"time"
)

// VerificationRecord is the single pending code for an email address.
// A new request for the same address overwrites the previous record.
type VerificationRecord struct {
	Email     string
	Code      string
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (r VerificationRecord) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}
