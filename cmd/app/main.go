package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	apiHttp "github.com/debate-hall/backend/internal/api/http"
	"github.com/debate-hall/backend/internal/bot"
	"github.com/debate-hall/backend/internal/config"
	"github.com/debate-hall/backend/internal/repository"
	"github.com/debate-hall/backend/internal/server"
	"github.com/debate-hall/backend/internal/service"
	"github.com/debate-hall/backend/pkg/auth"
	"github.com/debate-hall/backend/pkg/email/smtp"
	"github.com/debate-hall/backend/pkg/logger"
	"github.com/debate-hall/backend/pkg/otp"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env)

	appLogger.Info("starting debate hall backend", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.SendTimeout)
	if err != nil {
		appLogger.Error("smtp sender creation failed", zap.Error(err))
		os.Exit(1)
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Error("auth manager creation err", zap.Error(err))
		os.Exit(1)
	}

	lineBot, err := bot.New(cfg.Line, tokenManager)
	if err != nil {
		appLogger.Error("line bot creation failed", zap.Error(err))
		os.Exit(1)
	}

	otpGenerator := otp.NewGOTPGenerator()

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(time.Now)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		OtpGenerator: otpGenerator,
		EmailSender:  emailSender,
		Repos:        repos,
	})
	handlers := apiHttp.NewHandlers(services, lineBot, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
