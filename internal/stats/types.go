// Package stats feeds the dashboard: it samples pool state on a schedule,
// keeps history in ClickHouse and the latest snapshot in redis. No money
// moves through here.
package stats

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=pool_mocks_test.go -package=stats github.com/solopool-hq/payouts-backend/internal/pool Source

// PoolSample is one scheduled observation of pool-wide state.
type PoolSample struct {
	Coin              string    `json:"coin"`
	SampledAt         time.Time `json:"sampled_at"`
	Hashrate          float64   `json:"hashrate"`
	Miners            uint32    `json:"miners"`
	BlocksFound       uint64    `json:"blocks_found"`
	CurrentHeight     int64     `json:"current_height"`
	NetworkDifficulty float64   `json:"network_difficulty"`
}

// MinerSample is one observation of a single miner.
type MinerSample struct {
	Coin          string    `json:"coin"`
	SampledAt     time.Time `json:"sampled_at"`
	WalletAddress string    `json:"wallet_address"`
	Hashrate      float64   `json:"hashrate"`
	ValidShares   uint64    `json:"valid_shares"`
	InvalidShares uint64    `json:"invalid_shares"`
}

// Snapshot is the latest full picture of one coin's pool, cached for the
// dashboard.
type Snapshot struct {
	Coin      string        `json:"coin"`
	Online    bool          `json:"online"`
	UpdatedAt time.Time     `json:"updated_at"`
	Pool      PoolSample    `json:"pool"`
	Miners    []MinerSample `json:"miners"`
}

// SampleStore persists observations and serves history queries.
type SampleStore interface {
	InsertPoolSample(ctx context.Context, sample PoolSample) error
	InsertMinerSamples(ctx context.Context, samples []MinerSample) error
	PoolHistory(ctx context.Context, coin string, since time.Time) ([]PoolSample, error)
	LatestPoolSample(ctx context.Context, coin string) (*PoolSample, error)
}

// SnapshotCache holds the newest snapshot per coin with a TTL.
type SnapshotCache interface {
	SetSnapshot(ctx context.Context, snap Snapshot) error
	GetSnapshot(ctx context.Context, coin string) (*Snapshot, error)
}
