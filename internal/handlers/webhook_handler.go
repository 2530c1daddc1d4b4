package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/clockin-bot/internal/domain/slack"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	eventTypeMessage   = "message"
	messageTypeText    = "text"
	unknownRecipientID = "unknown"

	maxConcurrentEvents = 8
)

type webhookRequest struct {
	Events []webhookEvent `json:"events"`
}

// webhookEvent is one chat event. ReplyTo is a messenger destination,
// e.g. "slack:D0123" or "telegram:42".
type webhookEvent struct {
	Type   string `json:"type"`
	Source struct {
		UserID string `json:"user_id"`
	} `json:"source"`
	Message struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"message"`
	ReplyTo string `json:"reply_to"`
}

type WebhookHandler struct {
	attendanceService contract.AttendanceService
	messenger         contract.Messenger
	signingSecret     string
	log               *zap.Logger
}

func NewWebhook(attendanceService contract.AttendanceService, messenger contract.Messenger, signingSecret string, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		attendanceService: attendanceService,
		messenger:         messenger,
		signingSecret:     signingSecret,
		log:               log.Named("webhook_handler"),
	}
}

// HandleWebhook processes a signed batch of chat events concurrently. Once the
// batch is accepted it always answers 200 so the sender does not redeliver it.
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := verifyRequest(w, r, h.signingSecret)
	if err != nil {
		h.log.Warn("rejected webhook", zap.Error(err))
		w.WriteHeader(verifyStatus(err))
		return
	}

	var req webhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.Warn("malformed webhook body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrentEvents)
	for _, ev := range req.Events {
		g.Go(func() error {
			return h.handleEvent(r.Context(), ev)
		})
	}
	if err := g.Wait(); err != nil {
		h.log.Error("webhook event failed", zap.Int("events", len(req.Events)), zap.Error(err))
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

func (h *WebhookHandler) handleEvent(ctx context.Context, ev webhookEvent) error {
	if ev.Type != eventTypeMessage || ev.Message.Type != messageTypeText {
		return h.reply(ctx, ev, slackcmd.TextOnlyHint())
	}

	cmd := slackcmd.ParseKeyword(ev.Message.Text)
	if cmd == slackcmd.CmdUnknown {
		return h.reply(ctx, ev, slackcmd.MenuHint())
	}

	recipientID := ev.Source.UserID
	if recipientID == "" {
		recipientID = unknownRecipientID
	}

	text, err := runCommand(ctx, h.attendanceService, cmd, recipientID)
	if err != nil {
		h.log.Error("command failed",
			zap.String("command", string(cmd)),
			zap.String("recipient_id", recipientID),
			zap.Error(err),
		)
		text = errorText("Something went wrong, please try again")
	}

	return h.reply(ctx, ev, text)
}

func (h *WebhookHandler) reply(ctx context.Context, ev webhookEvent, text string) error {
	if ev.ReplyTo == "" {
		return nil
	}

	if err := h.messenger.Send(ctx, ev.ReplyTo, text); err != nil {
		return fmt.Errorf("failed to reply to %s: %w", ev.ReplyTo, err)
	}
	return nil
}
