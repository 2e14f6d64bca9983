package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/debate-hall/backend/internal/config"
	"github.com/debate-hall/backend/internal/domain"
	emailProvider "github.com/debate-hall/backend/pkg/email"
	mock_email "github.com/debate-hall/backend/pkg/email/mock"
)

func newDebateFixture() (*DebateService, *mock_email.EmailSender) {
	sender := new(mock_email.EmailSender)
	svc := newDebateService(sender, config.EmailConfig{
		Templates: config.EmailTemplates{
			Verification: "../../templates/verification.html",
			DebateResult: "../../templates/debate_result.html",
		},
	})

	return svc, sender
}

func TestDebate_SendResult(t *testing.T) {
	svc, sender := newDebateFixture()

	var sent emailProvider.SendEmailInput
	sender.On("Send", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).(emailProvider.SendEmailInput)
	}).Return(nil)

	report := domain.DebateReport{
		Topic: "遠距工作是否應成為未來主流工作模式？",
		Date:  "2025-06-01",
		Messages: []domain.DebateMessage{
			{Spirit: &domain.SpiritRef{Name: "晨星"}, Side: domain.SidePro, Content: "數據顯示產值上升", Timestamp: "10:00"},
			{Spirit: &domain.SpiritRef{Name: "月影"}, Side: domain.SideCon, Content: "團隊凝聚力下降", Timestamp: "10:01"},
			{Spirit: &domain.SpiritRef{Name: "天平"}, Side: domain.SideJudge, Content: "雙方各有道理", Timestamp: "10:02"},
		},
	}

	require.NoError(t, svc.SendResult(context.Background(), "a@x.com", report))

	assert.Equal(t, "a@x.com", sent.To)
	assert.Equal(t, "智能辯論所 - 您的辯論成果《遠距工作是否應成為未來主流工作模式？》", sent.Subject)
	assert.Contains(t, sent.Body, "晨星 🌟")
	assert.Contains(t, sent.Body, "月影 🌙")
	assert.Contains(t, sent.Body, "天平 ⚖️")
	assert.Contains(t, sent.Body, "#10B981")
	assert.Contains(t, sent.Body, "3 則")
	assert.NotContains(t, sent.Body, "暫無辯論記錄")
}

func TestDebate_EmptyTranscriptGetsPlaceholder(t *testing.T) {
	svc, sender := newDebateFixture()

	var sent emailProvider.SendEmailInput
	sender.On("Send", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).(emailProvider.SendEmailInput)
	}).Return(nil)

	report := domain.DebateReport{Topic: "測試主題", Date: "2025-06-01"}

	require.NoError(t, svc.SendResult(context.Background(), "a@x.com", report))

	assert.Contains(t, sent.Body, "暫無辯論記錄")
	assert.Contains(t, sent.Body, "0 則")
}

func TestDebate_MissingSpiritFallsBackToSystem(t *testing.T) {
	svc, sender := newDebateFixture()

	var sent emailProvider.SendEmailInput
	sender.On("Send", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).(emailProvider.SendEmailInput)
	}).Return(nil)

	report := domain.DebateReport{
		Topic:    "測試主題",
		Date:     "2025-06-01",
		Messages: []domain.DebateMessage{{Side: "other", Content: "開場", Timestamp: "10:00"}},
	}

	require.NoError(t, svc.SendResult(context.Background(), "a@x.com", report))

	assert.Contains(t, sent.Body, "系統 ⚖️")
}

func TestDebate_DeliveryFailure(t *testing.T) {
	svc, sender := newDebateFixture()
	sender.On("Send", mock.Anything).Return(assert.AnError)

	err := svc.SendResult(context.Background(), "a@x.com", domain.DebateReport{Topic: "x"})
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}
