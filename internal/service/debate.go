package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/debate-hall/backend/internal/config"
	"github.com/debate-hall/backend/internal/domain"
	emailProvider "github.com/debate-hall/backend/pkg/email"
	"github.com/debate-hall/backend/pkg/logger"
)

type DebateService struct {
	sender      emailProvider.Sender
	emailConfig config.EmailConfig
}

func newDebateService(sender emailProvider.Sender, emailConfig config.EmailConfig) *DebateService {
	return &DebateService{
		sender:      sender,
		emailConfig: emailConfig,
	}
}

type debateMessageView struct {
	Speaker   string
	Badge     string
	Color     string
	Content   string
	Timestamp string
}

type debateResultInput struct {
	Topic        string
	Date         string
	MessageCount int
	Messages     []debateMessageView
}

// SendResult renders the transcript into the debate-result template
// and relays it. The payload is display data only; an empty message
// list still produces a mail with a placeholder block.
func (s *DebateService) SendResult(ctx context.Context, email string, report domain.DebateReport) error {
	subject := fmt.Sprintf("智能辯論所 - 您的辯論成果《%s》", report.Topic)

	templateInput := debateResultInput{
		Topic:        report.Topic,
		Date:         report.Date,
		MessageCount: len(report.Messages),
		Messages:     make([]debateMessageView, 0, len(report.Messages)),
	}

	for _, msg := range report.Messages {
		badge, color := sideDecoration(msg.Side)
		templateInput.Messages = append(templateInput.Messages, debateMessageView{
			Speaker:   msg.SpeakerName(),
			Badge:     badge,
			Color:     color,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}

	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}
	if err := sendInput.GenerateBodyFromHTML(s.emailConfig.Templates.DebateResult, templateInput); err != nil {
		return errors.Wrap(err, "generate debate result email failed")
	}

	if err := s.sender.Send(sendInput); err != nil {
		logger.Error("debate result delivery failed",
			zap.String("email", email),
			zap.String("topic", report.Topic),
			zap.Error(err),
		)

		return errors.Wrap(ErrDeliveryFailed, err.Error())
	}

	return nil
}

func sideDecoration(side string) (badge string, color string) {
	switch side {
	case domain.SidePro:
		return "🌟", "#10B981"
	case domain.SideCon:
		return "🌙", "#6B7280"
	default:
		return "⚖️", "#7C3AED"
	}
}
