package bot

import (
	"net/http"
	"strings"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"go.uber.org/zap"

	"github.com/debate-hall/backend/internal/config"
	"github.com/debate-hall/backend/pkg/auth"
	"github.com/debate-hall/backend/pkg/logger"
)

// Bot answers LINE text commands with scripted replies. There is no
// conversation state; every event is handled on its own.
type Bot struct {
	client    *linebot.Client
	tokens    auth.TokenManager
	debateURL string
}

var ErrInvalidSignature = linebot.ErrInvalidSignature

func New(cfg config.LineConfig, tokens auth.TokenManager) (*Bot, error) {
	client, err := linebot.New(cfg.ChannelSecret, cfg.ChannelAccessToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		client:    client,
		tokens:    tokens,
		debateURL: cfg.DebateURL,
	}, nil
}

// HandleRequest verifies the webhook signature, parses the event
// envelope and dispatches every event. The first reply error aborts
// the batch.
func (b *Bot) HandleRequest(r *http.Request) error {
	events, err := b.client.ParseRequest(r)
	if err != nil {
		return err
	}

	for _, event := range events {
		if err := b.handleEvent(event); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bot) handleEvent(event *linebot.Event) error {
	if event.Type != linebot.EventTypeMessage {
		return nil
	}

	message, ok := event.Message.(*linebot.TextMessage)
	if !ok {
		return nil
	}

	var userID string
	if event.Source != nil {
		userID = event.Source.UserID
	}

	text := strings.ToLower(strings.TrimSpace(message.Text))
	logger.Debug("line message received", zap.String("user_id", userID), zap.String("text", text))

	switch text {
	case "start", "開始", "辯論":
		return b.replyStartDebate(event.ReplyToken, userID)
	case "help", "幫助", "說明":
		return b.replyHelp(event.ReplyToken)
	default:
		return b.replyDefault(event.ReplyToken)
	}
}
