package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact_service/internal/config"
	"contact_service/internal/http_server/handlers/email"
	"contact_service/internal/http_server/handlers/redirect"
	mailSender "contact_service/internal/mail-sender"
	"contact_service/internal/mailer"
	"contact_service/internal/middleware/recoverer"
	"contact_service/internal/recaptcha"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting contact service", slog.String("env", cfg.Env))

	verifier := recaptcha.New(
		log,
		&http.Client{Timeout: cfg.Recaptcha.Timeout},
		cfg.Recaptcha.VerifyURL,
		cfg.Recaptcha.Secret,
	)

	transport := &mailSender.Mailer{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.Address,
		Password: cfg.Email.Password,
		FromName: cfg.Email.SenderName,
	}

	mailService := mailer.New(log, verifier, transport, cfg.Recaptcha.VerifyOnSend)

	router := setupRouter(log, cfg, mailService)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.ListenAddress(),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server is running", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed", slog.String("err", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down HTTP server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", slog.String("err", err.Error()))
	} else {
		log.Info("Server stopped gracefully")
	}

	log.Info("Contact service stopped")
}

func setupRouter(
	log *slog.Logger,
	cfg *config.Config,
	adapter email.Adapter,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(recoverer.New(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.HTTPServer.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", redirect.New(log, cfg.RedirectURL))
	r.Post("/email",
		email.New(
			log,
			email.NewValidator(),
			adapter,
			cfg.Email.Address,
			cfg.Email.SenderName,
			cfg.HTTPServer.RequestTimeout,
		),
	)

	return r
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
