package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lawchat-backend/config"
	"lawchat-backend/controller"
	"lawchat-backend/dao"
	"lawchat-backend/router"
	"lawchat-backend/service/chat"
	"lawchat-backend/service/dify"
	"lawchat-backend/service/titling"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := dao.Open(cfg.Database.DSN)
	if err != nil {
		slog.Error("Failed to open database", "err", err)
		os.Exit(1)
	}

	sessions := dao.NewSessionDAO(db)
	messages := dao.NewMessageDAO(db)
	gateway := dify.NewClient(cfg.Dify.APIURL, cfg.Dify.APIKey)

	var titleQueue chat.TitleQueue
	if cfg.Model.APIKey != "" {
		titler, err := titling.New(cfg.Model, sessions, messages)
		if err != nil {
			slog.Warn("Failed to create titler, session titling disabled", "err", err)
		} else {
			titler.Run()
			defer titler.Shutdown()
			titleQueue = titler
		}
	} else {
		slog.Info("Session titling disabled: no model api key configured")
	}

	chatSvc := chat.NewService(sessions, messages, gateway, titleQueue)
	ctrl := controller.New(sessions, messages, chatSvc, gateway)
	engine := router.Register(ctrl, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	go func() {
		slog.Info("Server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "err", err)
	}
}
