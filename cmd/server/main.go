package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/fanmateapp/fanmate/internal/assistant"
	"github.com/fanmateapp/fanmate/internal/config"
	"github.com/fanmateapp/fanmate/internal/database"
	"github.com/fanmateapp/fanmate/internal/dataset"
	"github.com/fanmateapp/fanmate/internal/fancontext"
	"github.com/fanmateapp/fanmate/internal/migrations"
	"github.com/fanmateapp/fanmate/internal/server"
	"github.com/fanmateapp/fanmate/internal/worldcup"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	// .env is optional; real environments set variables directly.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Domain data ---
	collections, warnings, err := dataset.Load(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	for _, warn := range warnings {
		logger.Warn("dataset", "issue", warn)
	}

	store, err := worldcup.NewStore(collections, cfg.SimulatedDate)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}
	logger.Info("dataset loaded",
		"games", len(collections.Games),
		"fans", len(collections.Fans),
		"simulated_date", cfg.SimulatedDate,
	)

	// --- SQLite (admin accounts and sessions) ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if err := server.SeedAdmin(ctx, logger, db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Redis (chat history) ---
	var rdb *redis.Client
	var history assistant.History = assistant.NewMemoryHistory()
	if cfg.RedisURL != "" {
		rdb, err = openRedis(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rdb.Close()
		history = assistant.NewRedisHistory(rdb)
		logger.Info("connected to redis")
	} else {
		logger.Info("redis not configured, chat history is in-memory")
	}

	// --- Assistant ---
	if cfg.OpenAIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, chat requests will fail")
	}
	completer := assistant.NewOpenAICompleter(assistant.OpenAIConfig{
		APIKey:  cfg.OpenAIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
	})
	agg := fancontext.New(store)
	bot := assistant.New(store, agg, completer, history, logger)

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Store:     store,
		Assistant: bot,
		DB:        db,
		RDB:       rdb,
		CORS:      cfg.CORSOrigin,
		SPADir:    cfg.SPADir,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func openRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}
