package stats

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/solopool-hq/payouts-backend/internal/metrics"
	"github.com/solopool-hq/payouts-backend/internal/model"
	"github.com/solopool-hq/payouts-backend/internal/pool"
	"github.com/solopool-hq/payouts-backend/pkg/workerpool"
)

const collectWorkers = 4

// Collector polls every enabled coin's pool backend and fans the samples
// out to the store and the cache.
type Collector struct {
	sources map[model.Coin]pool.Source
	store   SampleStore
	cache   SnapshotCache
	logger  *zap.Logger
}

func NewCollector(
	sources map[model.Coin]pool.Source,
	store SampleStore,
	cache SnapshotCache,
	logger *zap.Logger,
) *Collector {
	return &Collector{sources: sources, store: store, cache: cache, logger: logger}
}

// CollectAll samples every coin concurrently. One failing coin never
// blocks the others; the joined errors come back for logging.
func (c *Collector) CollectAll(ctx context.Context) error {
	coins := make([]model.Coin, 0, len(c.sources))
	for coin := range c.sources {
		coins = append(coins, coin)
	}
	return workerpool.Process(ctx, collectWorkers, coins, c.CollectCoin)
}

// CollectCoin samples one coin: pool stats and the miner list go to the
// sample store, and the combined snapshot replaces the cached one.
func (c *Collector) CollectCoin(ctx context.Context, coin model.Coin) (err error) {
	started := time.Now()
	defer func() { metrics.ObserveStatsCollection(coin.String(), err, started) }()

	src := c.sources[coin]
	now := time.Now().UTC()

	if !src.IsOnline(ctx) {
		// Cache the offline state so the dashboard shows it.
		snap := Snapshot{Coin: coin.String(), Online: false, UpdatedAt: now}
		if cacheErr := c.cache.SetSnapshot(ctx, snap); cacheErr != nil {
			c.logger.Warn("failed to cache offline snapshot",
				zap.String("coin", coin.String()), zap.Error(cacheErr))
		}
		return fmt.Errorf("%s: %w", coin, pool.ErrOffline)
	}

	poolStats, err := src.PoolStats(ctx)
	if err != nil {
		return fmt.Errorf("%s pool stats: %w", coin, err)
	}

	miners, err := src.AllMiners(ctx)
	if err != nil {
		return fmt.Errorf("%s miner list: %w", coin, err)
	}

	difficulty, _ := poolStats.NetworkDifficulty.Float64()
	poolSample := PoolSample{
		Coin:              coin.String(),
		SampledAt:         now,
		Hashrate:          poolStats.Hashrate,
		Miners:            poolStats.Miners,
		BlocksFound:       poolStats.BlocksFound,
		CurrentHeight:     poolStats.CurrentHeight,
		NetworkDifficulty: difficulty,
	}

	minerSamples := make([]MinerSample, 0, len(miners))
	for _, m := range miners {
		minerSamples = append(minerSamples, MinerSample{
			Coin:          coin.String(),
			SampledAt:     now,
			WalletAddress: m.WalletAddress,
			Hashrate:      m.Hashrate,
			ValidShares:   m.ValidShares,
			InvalidShares: m.InvalidShares,
		})
	}

	if err := c.store.InsertPoolSample(ctx, poolSample); err != nil {
		return fmt.Errorf("%s store pool sample: %w", coin, err)
	}
	if err := c.store.InsertMinerSamples(ctx, minerSamples); err != nil {
		return fmt.Errorf("%s store miner samples: %w", coin, err)
	}

	snap := Snapshot{
		Coin:      coin.String(),
		Online:    true,
		UpdatedAt: now,
		Pool:      poolSample,
		Miners:    minerSamples,
	}
	if err := c.cache.SetSnapshot(ctx, snap); err != nil {
		c.logger.Warn("failed to cache snapshot",
			zap.String("coin", coin.String()), zap.Error(err))
	}

	c.logger.Debug("collected pool sample",
		zap.String("coin", coin.String()),
		zap.Float64("hashrate", poolSample.Hashrate),
		zap.Uint32("miners", poolSample.Miners))
	return nil
}
