package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/runicvine/vinequiz/internal/config"
	"github.com/runicvine/vinequiz/internal/database"
	"github.com/runicvine/vinequiz/internal/game"
	"github.com/runicvine/vinequiz/internal/geo"
	"github.com/runicvine/vinequiz/internal/kv"
	"github.com/runicvine/vinequiz/internal/leaderboard"
	"github.com/runicvine/vinequiz/internal/migrations"
	"github.com/runicvine/vinequiz/internal/server"
	"github.com/runicvine/vinequiz/internal/vinequiz"
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
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Quiz data ---
	items, err := vinequiz.LoadItems(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("loading quiz data: %w", err)
	}
	logger.Info("quiz data loaded", "items", len(items))

	resolver, warnings := geo.New(items)
	for _, w := range warnings {
		logger.Warn("geography configuration", "detail", w)
	}

	sequencer, err := game.NewSequencer(items, rand.NewSource(time.Now().UnixNano()), logger)
	if err != nil {
		return fmt.Errorf("building sequencer: %w", err)
	}

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Leaderboard persistence: Redis when configured, SQLite otherwise ---
	var store kv.Store = kv.NewSQLiteStore(db)
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = openRedis(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rdb.Close()
		store = kv.NewRedisStore(rdb)
		logger.Info("connected to redis")
	}
	board := leaderboard.NewStore(store, logger)

	// --- Admin ---
	admin := server.NewAdminStore(db)
	if err := admin.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPass); err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}

	// --- Rounds ---
	broker := server.NewBroker()
	rounds := server.NewRegistry(game.Config{
		Resolver:     resolver,
		Sequencer:    sequencer,
		Logger:       logger,
		RoundSeconds: cfg.RoundSeconds,
	}, board, broker, logger)

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Rounds:      rounds,
		Broker:      broker,
		Leaderboard: board,
		Admin:       admin,
		DB:          db,
		Redis:       rdb,
		MapsDir:     cfg.MapsDir,
		SPADir:      cfg.SPADir,
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
