package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techscene/config"
	_ "techscene/docs"
	"techscene/internal/adapters/auth"
	"techscene/internal/adapters/demo"
	deliveryhttp "techscene/internal/delivery/http"
	"techscene/internal/delivery/http/controllers"
	"techscene/internal/domain"
	"techscene/internal/lib/logger/sl"
	"techscene/internal/metrics"
	"techscene/internal/repository/postgres"
	"techscene/internal/services"

	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

// @title Tech Scene Directory API
// @version 1.0
// @description Events and people of the local tech scene. Submissions are moderated before they are listed.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg)
	logger.Info("starting application", slog.String("env", cfg.Environment))

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	// The directory still serves (empty or demo listings) while the database is down.
	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warn("database unreachable at startup", sl.Err(err))
	}
	cancel()

	var (
		eventCatalog  domain.EventCatalog
		personCatalog domain.PersonCatalog
	)
	if cfg.DemoFallback {
		catalog, err := demo.Load()
		if err != nil {
			logger.Error("failed to load demo catalog", sl.Err(err))
			os.Exit(1)
		}
		eventCatalog, personCatalog = catalog, catalog
	}

	m := metrics.New()
	clock := func() time.Time { return time.Now().In(cfg.Location) }
	verifier := auth.NewJWTVerifier(cfg.SessionSecret, cfg.SessionIssuer)
	if cfg.SessionSecret == "" {
		logger.Warn("SESSION_JWT_SECRET is not set, submissions will be rejected as unauthenticated")
	}

	eventService := services.NewEventService(logger, postgres.NewEventRepository(db), eventCatalog, m, clock, cfg.RequestTimeout)
	personService := services.NewPersonService(logger, postgres.NewPersonRepository(db), personCatalog, m, clock, cfg.RequestTimeout)

	router := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Events:  controllers.NewEventController(logger, eventService),
		People:  controllers.NewPersonController(logger, personService),
		Session: controllers.NewSessionController(logger, verifier, cfg.SignInURL),
		Health:  controllers.NewHealthController(logger, db),
	}, verifier, logger, m, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", sl.Err(err))
			os.Exit(1)
		}
	}()

	//graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGTERM, syscall.SIGINT)

	sign := <-stopChan
	logger.Info("stopping application", slog.String("signal", sign.String()))
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("failed to stop application", slog.String("signal", sign.String()), sl.Err(err))
		return
	}
	logger.Info("application stopped", slog.String("signal", sign.String()))
}
