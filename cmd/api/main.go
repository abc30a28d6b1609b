package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spa12/spa-api/internal/config"
	"github.com/spa12/spa-api/internal/domain/booking"
	"github.com/spa12/spa-api/internal/domain/payment"
	"github.com/spa12/spa-api/internal/domain/testimonial"
	"github.com/spa12/spa-api/internal/middleware"
	"github.com/spa12/spa-api/internal/pkg/database"
	pkgresponse "github.com/spa12/spa-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Spa Booking API")

	db, err := database.NewPostgres(database.PostgresConfig{
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		User:       cfg.DBUser,
		Password:   cfg.DBPassword,
		Name:       cfg.DBName,
		RequireTLS: cfg.IsProduction(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open PostgreSQL pool")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	// ---------- Repositories ----------
	bookingRepo := booking.NewRepository(db)
	testimonialRepo := testimonial.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	transactionStore := payment.NewTransactionStore(redis, 15*time.Minute)

	// ---------- Handlers ----------
	bookingHandler := booking.NewHandler(bookingRepo)
	testimonialHandler := testimonial.NewHandler(testimonialRepo)
	paymentHandler := payment.NewHandler(paymentRepo, transactionStore, cfg.PaymentDelay)

	r := newRouter(cfg, bookingHandler, testimonialHandler, paymentHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func newRouter(cfg *config.Config, bookingHandler *booking.Handler, testimonialHandler *testimonial.Handler, paymentHandler *payment.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Mount("/booking_spa12", booking.Routes(bookingHandler))

	r.Route("/api", func(r chi.Router) {
		r.Mount("/payments", payment.Routes(paymentHandler))
		r.Mount("/testimonials", testimonial.Routes(testimonialHandler))
	})

	return r
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
