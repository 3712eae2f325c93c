package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/gagliardetto/solana-go/rpc"

	"github.com/daoplays/LetsCook-sub002/cook"
	"github.com/daoplays/LetsCook-sub002/internal/cache"
	"github.com/daoplays/LetsCook-sub002/internal/config"
	"github.com/daoplays/LetsCook-sub002/internal/server"
)

// loadEnv loads .env from the project root before anything reads os.Getenv.
func loadEnv(logger *logrus.Logger) {
	_, filename, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(filename), "../..")
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		logger.Warnf("no .env file found at %s, using system environment variables", envPath)
	} else {
		logger.Infof("loaded .env from %s", envPath)
	}
}

// main starts the quote API server with graceful shutdown.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(logrus.InfoLevel)

	loadEnv(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	client, err := cook.NewCook(rpc.New(cfg.RPCUrl))
	if err != nil {
		logger.WithError(err).Fatal("failed to create rpc client")
	}

	// Redis quote cache is optional; the server quotes straight from RPC
	// without it.
	var quoteCache *cache.QuoteCache
	rclient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   0,
	})
	if err := rclient.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("redis unavailable, quote caching disabled")
	} else {
		qc, err := cache.NewQuoteCache(rclient, cfg.PoolCacheTTL)
		if err != nil {
			logger.WithError(err).Fatal("failed to create quote cache")
		}
		quoteCache = qc
	}

	// ClickHouse history sink is optional too.
	var history *cache.QuoteLog
	if cfg.ClickHouseAddr != "" {
		ch, err := cache.NewQuoteLog(cfg.ClickHouseAddr, cfg.ClickHouseDatabase, cfg.ClickHouseUsername, cfg.ClickHousePassword)
		if err != nil {
			logger.WithError(err).Warn("clickhouse unavailable, quote history disabled")
		} else {
			history = ch
			defer func() {
				_ = history.Close()
			}()
		}
	}

	h := &server.Handlers{
		Quoter:             client,
		Quotes:             quoteCache,
		History:            history,
		DefaultSlippageBps: cfg.DefaultSlippageBps,
		DevMode:            cfg.DevMode,
		Logger:             logger,
	}

	srv, err := server.NewServer(server.ServerDeps{
		Handlers: h,
		Config: server.ServerConfig{
			Addr:    cfg.APIAddr,
			DevMode: cfg.DevMode,
			APIKey:  cfg.APIKey,
		},
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create http server")
	}

	go func() {
		<-sigCh
		logger.Info("shutting down")
		cancel()
		_ = srv.Shutdown(context.Background())
	}()

	logger.WithField("addr", cfg.APIAddr).Info("quote server starting")
	if err := srv.Start(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
		logger.WithError(err).Fatal("quote server failed")
	}

	if err := srv.WaitClosed(context.Background()); err != nil {
		fmt.Println(err)
	}
}
