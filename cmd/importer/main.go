package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techscene/config"
	"techscene/internal/adapters/ical"
	"techscene/internal/domain"
	"techscene/internal/lib/logger/sl"
	"techscene/internal/metrics"
	"techscene/internal/repository/postgres"
	"techscene/internal/services"

	_ "github.com/lib/pq"
)

// Imports every configured ICS feed once as pending events and exits.
// A failing feed is logged and the remaining feeds still run; the exit code is 1 if any feed failed.
func main() {
	var feedsPath, pushGateway string
	var fetchTimeout time.Duration
	flag.StringVar(&feedsPath, "feeds", "feeds.yaml", "path to the feeds file")
	flag.StringVar(&pushGateway, "pushgateway", os.Getenv("PUSHGATEWAY_URL"), "Prometheus Pushgateway URL for run metrics (default $PUSHGATEWAY_URL, empty disables)")
	flag.DurationVar(&fetchTimeout, "timeout", 30*time.Second, "per-feed fetch and import timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg)

	feeds, err := config.LoadFeeds(feedsPath)
	if err != nil {
		logger.Error("failed to load feeds", slog.String("path", feedsPath), sl.Err(err))
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	m := metrics.New()
	importer := services.NewFeedImporter(
		logger,
		ical.NewHTTPFetcher(&http.Client{Timeout: fetchTimeout}, logger),
		postgres.NewEventRepository(db),
		m,
		func() time.Time { return time.Now().In(cfg.Location) },
	)

	var total domain.ImportResult
	failed := 0
	for _, feed := range feeds {
		if ctx.Err() != nil {
			break
		}
		feedCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		result, err := importer.Import(feedCtx, feed)
		cancel()
		if err != nil {
			failed++
			logger.Error("feed import failed", slog.String("feed", feed.Name), sl.Err(err))
			continue
		}
		total.Fetched += result.Fetched
		total.Imported += result.Imported
		total.Skipped += result.Skipped
		total.Failed += result.Failed
	}
	logger.Info("import run finished",
		slog.Int("feeds", len(feeds)),
		slog.Int("failed_feeds", failed),
		slog.Int("imported", total.Imported),
		slog.Int("skipped", total.Skipped),
		slog.Int("failed_entries", total.Failed),
	)

	if pushGateway != "" {
		pushCtx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		if err := m.Push(pushCtx, pushGateway, "techscene_importer"); err != nil {
			logger.Warn("failed to push run metrics", sl.Err(err))
		}
		cancel()
	}

	if failed > 0 {
		db.Close()
		os.Exit(1)
	}
}
