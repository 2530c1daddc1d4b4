package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/clockin-bot/internal/handlers"
	"github.com/diegoclair/clockin-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	SigningSecret = "test-signing-secret"
	AdminSecret   = "test-admin-secret"
)

type ServiceMocks struct {
	AttendanceServiceMock *mocks.MockAttendanceService
	ReminderServiceMock   *mocks.MockReminderService
	MessengerMock         *mocks.MockMessenger
}

// Handlers bundles every HTTP surface registered on one mux.
type Handlers struct {
	Slack   *handlers.SlackHandler
	Webhook *handlers.WebhookHandler
	Admin   *handlers.AdminHandler
	Mux     *http.ServeMux
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, h Handlers, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		AttendanceServiceMock: mocks.NewMockAttendanceService(ctrl),
		ReminderServiceMock:   mocks.NewMockReminderService(ctrl),
		MessengerMock:         mocks.NewMockMessenger(ctrl),
	}

	log := zap.NewNop()
	h = Handlers{
		Slack:   handlers.New(m.AttendanceServiceMock, SigningSecret, log),
		Webhook: handlers.NewWebhook(m.AttendanceServiceMock, m.MessengerMock, SigningSecret, log),
		Admin:   handlers.NewAdmin(m.ReminderServiceMock, AdminSecret, log),
		Mux:     http.NewServeMux(),
	}
	handlers.Register(h.Mux, h.Slack, h.Webhook, h.Admin)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, signingSecret string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"test-channel"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	req := newSignedRequest(t, "/slack/commands", form.Encode(), signingSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

// CreateWebhookRequest creates a signed webhook request carrying body as JSON.
func CreateWebhookRequest(t *testing.T, body, signingSecret string) *http.Request {
	t.Helper()

	req := newSignedRequest(t, "/webhook", body, signingSecret)
	req.Header.Set("Content-Type", "application/json")

	return req
}

func newSignedRequest(t *testing.T, path, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
