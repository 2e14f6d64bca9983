package service

import (
	"context"

	"github.com/debate-hall/backend/internal/config"
	"github.com/debate-hall/backend/internal/domain"
	"github.com/debate-hall/backend/internal/repository"
	"github.com/debate-hall/backend/pkg/email"
	"github.com/debate-hall/backend/pkg/otp"
)

type Services struct {
	Verification Verification
	Debate       Debate
}

type Deps struct {
	Config       *config.Config
	OtpGenerator otp.Generator
	EmailSender  email.Sender
	Repos        *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		Verification: newVerificationService(
			deps.Repos.Verifications,
			deps.OtpGenerator,
			deps.EmailSender,
			deps.Config.Auth,
			deps.Config.Email,
		),
		Debate: newDebateService(deps.EmailSender, deps.Config.Email),
	}
}

type Verification interface {
	Request(ctx context.Context, email string) error
	Confirm(ctx context.Context, email string, code string) error
}

type Debate interface {
	SendResult(ctx context.Context, email string, report domain.DebateReport) error
}
