package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/clockin-bot/internal/handlers"
	"github.com/diegoclair/clockin-bot/internal/scheduler"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(a.services.Reminder, a.cfg.ScanInterval, a.log)
	sched.Start(ctx)
	defer sched.Stop()

	mux := http.NewServeMux()
	handlers.Register(mux,
		handlers.New(a.services.Attendance, a.cfg.SlackSigningSecret, a.log),
		handlers.NewWebhook(a.services.Attendance, a.messenger, a.cfg.SlackSigningSecret, a.log),
		handlers.NewAdmin(a.services.Reminder, a.cfg.AdminSecret, a.log),
	)

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server starting", zap.String("port", a.cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.log.Error("server failed", zap.Error(err))
			return err
		}
	case <-ctx.Done():
		a.log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
