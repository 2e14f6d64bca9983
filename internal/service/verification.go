package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/debate-hall/backend/internal/config"
	"github.com/debate-hall/backend/internal/domain"
	"github.com/debate-hall/backend/internal/repository"
	emailProvider "github.com/debate-hall/backend/pkg/email"
	"github.com/debate-hall/backend/pkg/logger"
	"github.com/debate-hall/backend/pkg/otp"
)

type VerificationService struct {
	repo        repository.Verifications
	otp         otp.Generator
	sender      emailProvider.Sender
	authConfig  config.AuthConfig
	emailConfig config.EmailConfig
}

func newVerificationService(
	repo repository.Verifications,
	otpGenerator otp.Generator,
	sender emailProvider.Sender,
	authConfig config.AuthConfig,
	emailConfig config.EmailConfig,
) *VerificationService {
	return &VerificationService{
		repo:        repo,
		otp:         otpGenerator,
		sender:      sender,
		authConfig:  authConfig,
		emailConfig: emailConfig,
	}
}

type verificationEmailInput struct {
	VerificationCode string
}

// Request generates a fresh code for email, stores it with the
// configured TTL and mails it out. The stored code stays valid even
// when delivery fails, so the user can simply request again.
func (s *VerificationService) Request(ctx context.Context, email string) error {
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}

	code := s.otp.RandomCode(s.authConfig.VerificationCodeLength)

	record := s.repo.Put(email, code, s.authConfig.VerificationCodeTTL)

	subject := "智能辯論所 - Email驗證碼"

	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}
	if err := sendInput.GenerateBodyFromHTML(s.emailConfig.Templates.Verification, verificationEmailInput{code}); err != nil {
		return errors.Wrap(err, "generate verification email failed")
	}

	if err := s.sender.Send(sendInput); err != nil {
		logger.Error("verification email delivery failed",
			zap.String("email", email),
			zap.Time("expires_at", record.ExpiresAt),
			zap.Error(err),
		)

		return errors.Wrap(ErrDeliveryFailed, err.Error())
	}

	return nil
}

// Confirm runs the single-use check. The compare-and-consume happens
// atomically inside the store, so a correct code is accepted exactly
// once even under concurrent confirms: a match removes the record, a
// mismatch keeps it (until the attempt limit), and an expired record
// is dropped even if the sweep has not reached it yet.
func (s *VerificationService) Confirm(ctx context.Context, email string, code string) error {
	attempts, err := s.repo.Consume(email, code, s.authConfig.VerificationMaxAttempts)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, domain.ErrExpired):
		return ErrCodeExpired
	case errors.Is(err, domain.ErrMismatch):
		if attempts >= s.authConfig.VerificationMaxAttempts {
			logger.Warn("verification attempt limit reached", zap.String("email", email))
		}

		return ErrCodeMismatch
	default:
		return err
	}
}
