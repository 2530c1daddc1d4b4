package handlers

import (
	"fmt"
	"net/http"
)

func Register(mux *http.ServeMux, slackHandler *SlackHandler, webhookHandler *WebhookHandler, adminHandler *AdminHandler) {
	mux.HandleFunc("POST /slack/commands", slackHandler.HandleSlashCommand)
	mux.HandleFunc("POST /webhook", webhookHandler.HandleWebhook)
	mux.HandleFunc("GET /admin/scan", adminHandler.HandleScan)
	mux.HandleFunc("POST /admin/scan", adminHandler.HandleScan)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
}
