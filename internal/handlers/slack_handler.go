package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/clockin-bot/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	attendanceService contract.AttendanceService
	signingSecret     string
	log               *zap.Logger
}

func New(attendanceService contract.AttendanceService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		attendanceService: attendanceService,
		signingSecret:     signingSecret,
		log:               log.Named("slack_handler"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, err := verifyRequest(w, r, h.signingSecret); err != nil {
		h.log.Warn("rejected slash command", zap.Error(err))
		w.WriteHeader(verifyStatus(err))
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	text, err := runCommand(r.Context(), h.attendanceService, cmd.Type, slashCmd.UserID)
	if err != nil {
		h.log.Error("slash command failed",
			zap.String("command", string(cmd.Type)),
			zap.String("user_id", slashCmd.UserID),
			zap.Error(err),
		)
		return h.createErrorResponse("Something went wrong, please try again")
	}

	responseType := slack.ResponseTypeEphemeral
	if cmd.Type == slackcmd.CmdClockIn || cmd.Type == slackcmd.CmdLeave {
		responseType = slack.ResponseTypeInChannel
	}

	return &slack.Msg{
		ResponseType: responseType,
		Text:         text,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         errorText(message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
