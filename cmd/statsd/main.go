package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/solopool-hq/payouts-backend/internal/model"
	"github.com/solopool-hq/payouts-backend/internal/pool"
	"github.com/solopool-hq/payouts-backend/internal/stats"
)

type coinConfig struct {
	Enabled  bool   `long:"enabled" env:"ENABLED" description:"collect stats for this coin"`
	PoolKind string `long:"pool-kind" env:"POOL_KIND" description:"pool backend (moneropool|mergeproxy|ckpool)"`
	PoolAddr string `long:"pool-addr" env:"POOL_ADDR" description:"pool API base URL, or socket directory for ckpool"`
}

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"STATS_CLICKHOUSE_DSN" default:"clickhouse://localhost:9000/default" description:"ClickHouse DSN for sample storage"`
	RedisAddr     string `long:"redis-addr" env:"STATS_REDIS_ADDR" default:"localhost:6379" description:"redis address for the snapshot cache"`
	RedisPassword string `long:"redis-password" env:"STATS_REDIS_PASSWORD" description:"redis password"`
	RedisDB       int    `long:"redis-db" env:"STATS_REDIS_DB" default:"0" description:"redis database"`
	HTTPAddr      string `long:"http-addr" env:"STATS_HTTP_ADDR" default:":8081" description:"dashboard API listen address"`
	CronSpec      string `long:"cron-spec" env:"STATS_CRON_SPEC" default:"@every 30s" description:"collection schedule"`

	XMR coinConfig `group:"monero" namespace:"xmr" env-namespace:"STATS_XMR"`
	XTM coinConfig `group:"tari" namespace:"xtm" env-namespace:"STATS_XTM"`
	BTC coinConfig `group:"bitcoin" namespace:"btc" env-namespace:"STATS_BTC"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("statsd failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	store, err := stats.NewClickHouseStore(cfg.ClickhouseDSN)
	if err != nil {
		return fmt.Errorf("init sample store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	cache, err := stats.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("init snapshot cache: %w", err)
	}
	defer func() {
		_ = cache.Close()
	}()

	sources, err := buildSources(cfg, logger)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return errors.New("no coins enabled")
	}

	collector := stats.NewCollector(sources, store, cache, logger)

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.CronSpec, func() {
		if err := collector.CollectAll(ctx); err != nil {
			logger.Warn("collection run finished with errors", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule collector: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Prime the cache before the first tick.
	if err := collector.CollectAll(ctx); err != nil {
		logger.Warn("initial collection finished with errors", zap.Error(err))
	}

	server := stats.NewServer(store, cache, logger)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Serve(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("stats server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	wg.Wait()
	return nil
}

func buildSources(cfg config, logger *zap.Logger) (map[model.Coin]pool.Source, error) {
	coinCfgs := map[model.Coin]coinConfig{
		model.CoinXMR: cfg.XMR,
		model.CoinXTM: cfg.XTM,
		model.CoinBTC: cfg.BTC,
	}

	sources := make(map[model.Coin]pool.Source)
	for coin, cc := range coinCfgs {
		if !cc.Enabled {
			continue
		}
		src, err := pool.New(pool.Kind(cc.PoolKind), cc.PoolAddr, logger)
		if err != nil {
			return nil, fmt.Errorf("init %s pool source: %w", coin, err)
		}
		sources[coin] = src
	}
	return sources, nil
}
