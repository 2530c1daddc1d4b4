package messenger

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/clockin-bot/internal/domain"
	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type messenger struct {
	slackClient    contract.SlackClient
	telegramClient contract.TelegramClient
	log            *zap.Logger
}

// New returns a Messenger routing "slack:<id>" and "telegram:<chat id>" destinations.
// Either client may be nil when that platform is not configured. Send never
// waits: callers that fan out in bulk pace themselves.
func New(slackClient contract.SlackClient, telegramClient contract.TelegramClient, log *zap.Logger) contract.Messenger {
	return &messenger{
		slackClient:    slackClient,
		telegramClient: telegramClient,
		log:            log,
	}
}

func (m *messenger) Send(ctx context.Context, destination, text string) error {
	platform, id := ParseTarget(destination)
	if id == "" {
		return fmt.Errorf("%w: empty destination %q", domain.ErrUnknownTarget, destination)
	}

	switch platform {
	case domain.TelegramTargetPrefix:
		return m.sendTelegram(id, text)
	default:
		return m.sendSlack(ctx, id, text)
	}
}

func (m *messenger) sendSlack(ctx context.Context, channelID, text string) error {
	if m.slackClient == nil {
		return fmt.Errorf("%w: slack is not configured", domain.ErrUnknownTarget)
	}

	_, _, err := m.slackClient.PostMessageContext(ctx,
		channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	m.log.Debug("slack message sent", zap.String("channel", channelID))
	return nil
}

func (m *messenger) sendTelegram(chat, text string) error {
	if m.telegramClient == nil {
		return fmt.Errorf("%w: telegram is not configured", domain.ErrUnknownTarget)
	}

	chatID, err := strconv.ParseInt(chat, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid telegram chat id %q", domain.ErrUnknownTarget, chat)
	}

	if _, err := m.telegramClient.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("failed to send Telegram message: %w", err)
	}

	m.log.Debug("telegram message sent", zap.Int64("chat_id", chatID))
	return nil
}

// ParseTarget splits a destination into its platform prefix and id.
// Destinations without a known prefix are Slack ids.
func ParseTarget(destination string) (platform, id string) {
	destination = strings.TrimSpace(destination)
	for _, prefix := range []string{domain.SlackTargetPrefix, domain.TelegramTargetPrefix} {
		if strings.HasPrefix(destination, prefix) {
			return prefix, strings.TrimSpace(strings.TrimPrefix(destination, prefix))
		}
	}
	return domain.SlackTargetPrefix, destination
}
