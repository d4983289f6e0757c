package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/container"
)

// @title        Quiz Generator API
// @version      1.0
// @description  Generates multiple-choice quizzes with Gemini and scores submitted answers.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx)
	if err != nil {
		config.Logger().WithError(err).Fatal("Failed to start")
	}
	log := config.Logger()

	srv := &http.Server{
		Addr:              ":" + c.Config.Port,
		Handler:           c.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Quiz service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
