package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hamoodahalabed/book-network/config"
	"github.com/hamoodahalabed/book-network/db"
	authhandler "github.com/hamoodahalabed/book-network/internal/auth/handler"
	authrepo "github.com/hamoodahalabed/book-network/internal/auth/repository/postgres"
	authservice "github.com/hamoodahalabed/book-network/internal/auth/service"
	bookhandler "github.com/hamoodahalabed/book-network/internal/book/handler"
	bookrepo "github.com/hamoodahalabed/book-network/internal/book/repository/postgres"
	bookservice "github.com/hamoodahalabed/book-network/internal/book/service"
	feedbackhandler "github.com/hamoodahalabed/book-network/internal/feedback/handler"
	feedbackrepo "github.com/hamoodahalabed/book-network/internal/feedback/repository/postgres"
	feedbackservice "github.com/hamoodahalabed/book-network/internal/feedback/service"
	"github.com/hamoodahalabed/book-network/internal/mail"
	"github.com/hamoodahalabed/book-network/internal/metrics"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:   "book-network",
		Short: "Book lending platform backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			return db.Migrate(cmd.Context(), cfg.DBURL)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func serve(ctx context.Context) error {
	cfg := config.Load()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		return err
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	mailer, err := mail.NewSMTPDispatcher(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFromAddress,
	})
	if err != nil {
		return err
	}

	userRepo := authrepo.NewPostgresRepository(dbPool)
	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.JWTExpiryMin)
	authService := authservice.NewAuthService(userRepo, tokenService, mailer, cfg.ActivationURL)
	authHandler := authhandler.NewAuthHandler(authService, tokenService)

	bookRepo := bookrepo.NewPostgresRepository(dbPool)
	bookService := bookservice.NewBookService(bookRepo)
	bookHandler := bookhandler.NewBookHandler(bookService)

	feedbackRepo := feedbackrepo.NewPostgresRepository(dbPool)
	feedbackService := feedbackservice.NewFeedbackService(feedbackRepo, bookRepo)
	feedbackHandler := feedbackhandler.NewFeedbackHandler(feedbackService)

	app := fiber.New()
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	authhandler.RegisterRoutes(app, authHandler)
	requireAuth := authHandler.RequireAuth()
	bookhandler.RegisterRoutes(app, bookHandler, requireAuth)
	feedbackhandler.RegisterRoutes(app, feedbackHandler, requireAuth)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = app.Shutdown()
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting book-network")

	return app.Listen(":" + cfg.Port)
}
