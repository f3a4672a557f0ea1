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
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/solopool-hq/payouts-backend/internal/ledger"
	"github.com/solopool-hq/payouts-backend/internal/metrics"
	"github.com/solopool-hq/payouts-backend/internal/model"
	"github.com/solopool-hq/payouts-backend/internal/pool"
	"github.com/solopool-hq/payouts-backend/internal/settlement"
	"github.com/solopool-hq/payouts-backend/internal/transport"
	"github.com/solopool-hq/payouts-backend/internal/wallet"
)

type coinConfig struct {
	Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable settlement for this coin"`
	PoolKind   string `long:"pool-kind" env:"POOL_KIND" description:"pool backend (moneropool|mergeproxy|ckpool)"`
	PoolAddr   string `long:"pool-addr" env:"POOL_ADDR" description:"pool API base URL, or socket directory for ckpool"`
	WalletKind string `long:"wallet-kind" env:"WALLET_KIND" description:"wallet backend (monero|tari|bitcoin)"`
	WalletURL  string `long:"wallet-url" env:"WALLET_URL" description:"wallet RPC endpoint"`
	RPCUser    string `long:"rpc-user" env:"RPC_USER" description:"wallet RPC username (bitcoin)"`
	RPCPass    string `long:"rpc-pass" env:"RPC_PASS" description:"wallet RPC password (bitcoin)"`
	Network    string `long:"network" env:"NETWORK" description:"chain network (bitcoin)"`
	Mixin      uint32 `long:"mixin" env:"MIXIN" default:"15" description:"ring size minus one (monero)"`
	MinPayout  string `long:"min-payout" env:"MIN_PAYOUT" default:"0" description:"payout threshold in atomic units"`
}

type config struct {
	PostgresDSN     string        `long:"postgres-dsn" env:"PAYOUTS_POSTGRES_DSN" default:"postgres://localhost:5432/payouts?sslmode=disable" description:"Postgres DSN for the ledger"`
	APIAddr         string        `long:"api-addr" env:"PAYOUTS_API_ADDR" default:":8080" description:"reporting API listen address"`
	APIToken        string        `long:"api-token" env:"PAYOUTS_API_TOKEN" description:"bearer token for the reporting API; empty disables auth"`
	MetricsAddr     string        `long:"metrics-addr" env:"PAYOUTS_METRICS_ADDR" default:":9090" description:"prometheus listen address"`
	SettleInterval  time.Duration `long:"settle-interval" env:"PAYOUTS_SETTLE_INTERVAL" default:"30s" description:"settlement cycle interval"`
	PaymentInterval time.Duration `long:"payment-interval" env:"PAYOUTS_PAYMENT_INTERVAL" default:"1h" description:"payout cycle interval"`

	XMR coinConfig `group:"monero" namespace:"xmr" env-namespace:"PAYOUTS_XMR"`
	XTM coinConfig `group:"tari" namespace:"xtm" env-namespace:"PAYOUTS_XTM"`
	BTC coinConfig `group:"bitcoin" namespace:"btc" env-namespace:"PAYOUTS_BTC"`
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
		logger.Fatal("payoutd failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	store, err := ledger.New(ctx, cfg.PostgresDSN, logger)
	if err != nil {
		return fmt.Errorf("init ledger: %w", err)
	}
	defer store.Close()

	coinCfgs := map[model.Coin]coinConfig{
		model.CoinXMR: cfg.XMR,
		model.CoinXTM: cfg.XTM,
		model.CoinBTC: cfg.BTC,
	}

	settlementMetrics := metrics.NewSettlement()

	var enabled []model.Coin
	var processors []*settlement.Processor
	for _, coin := range []model.Coin{model.CoinXMR, model.CoinXTM, model.CoinBTC} {
		cc := coinCfgs[coin]
		if !cc.Enabled {
			continue
		}

		proc, err := buildProcessor(coin, cc, store, settlementMetrics, logger)
		if err != nil {
			return fmt.Errorf("init %s processor: %w", coin, err)
		}
		enabled = append(enabled, coin)
		processors = append(processors, proc)
	}

	if len(processors) == 0 {
		return errors.New("no coins enabled")
	}

	var wg sync.WaitGroup
	for _, proc := range processors {
		proc := proc
		wg.Add(2)
		go func() {
			defer wg.Done()
			proc.RunSettlementLoop(ctx, cfg.SettleInterval)
		}()
		go func() {
			defer wg.Done()
			proc.RunPaymentLoop(ctx, cfg.PaymentInterval)
		}()
	}

	api := transport.NewServer(store, enabled, cfg.APIToken, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := api.Serve(ctx, cfg.APIAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server failed", zap.Error(err))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := serveMetrics(ctx, cfg.MetricsAddr, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	wg.Wait()
	return nil
}

func buildProcessor(
	coin model.Coin,
	cc coinConfig,
	store *ledger.Store,
	m settlement.Metrics,
	logger *zap.Logger,
) (*settlement.Processor, error) {
	src, err := pool.New(pool.Kind(cc.PoolKind), cc.PoolAddr, logger)
	if err != nil {
		return nil, err
	}

	w, err := wallet.New(wallet.Config{
		Kind:    wallet.Kind(cc.WalletKind),
		URL:     cc.WalletURL,
		Mixin:   cc.Mixin,
		RPCUser: cc.RPCUser,
		RPCPass: cc.RPCPass,
		Network: cc.Network,
	}, logger)
	if err != nil {
		return nil, err
	}

	minPayout, err := decimal.NewFromString(cc.MinPayout)
	if err != nil {
		return nil, fmt.Errorf("parse min payout %q: %w", cc.MinPayout, err)
	}

	return settlement.NewProcessor(coin, src, w, store, m, minPayout, logger), nil
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
