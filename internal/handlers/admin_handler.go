package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type AdminHandler struct {
	reminderService contract.ReminderService
	secret          string
	log             *zap.Logger
}

// NewAdmin guards the admin endpoints with secret. An empty secret leaves them open.
func NewAdmin(reminderService contract.ReminderService, secret string, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		reminderService: reminderService,
		secret:          secret,
		log:             log.Named("admin_handler"),
	}
}

// HandleScan runs one scan synchronously, alongside any timer-driven scan.
func (h *AdminHandler) HandleScan(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		h.log.Warn("rejected admin scan", zap.String("remote_addr", r.RemoteAddr))
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	result, err := h.reminderService.Scan(r.Context())
	if err != nil {
		h.log.Error("admin scan failed", zap.String("scan_id", result.ScanID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "scan failed", "scan_id": result.ScanID})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *AdminHandler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return true
	}
	got := r.URL.Query().Get("secret")
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) == 1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
