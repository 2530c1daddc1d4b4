package contract

//go:generate mockgen -destination=../../../mocks/messenger_mock.go -package=mocks . Messenger,SlackClient,TelegramClient

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/slack-go/slack"
)

// Messenger delivers a text message to a single destination. Best effort, no retries.
type Messenger interface {
	Send(ctx context.Context, destination, text string) error
}

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessageContext sends a message to a Slack channel or user
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// TelegramClient is the subset of the Telegram bot API used to push messages.
type TelegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}
