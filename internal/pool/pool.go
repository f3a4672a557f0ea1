// Package pool talks to the mining pool software that accepts shares and
// finds blocks. Adapters normalize three very different local APIs into
// one Source capability.
package pool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrOffline marks a pool daemon that cannot be reached.
var ErrOffline = errors.New("pool offline")

// PoolStats is a pool-wide snapshot.
type PoolStats struct {
	Hashrate          float64
	HashrateUnit      string
	Miners            uint32
	BlocksFound       uint64
	CurrentHeight     int64
	NetworkDifficulty decimal.Decimal
	LastBlockTime     *int64
}

// MinerStats is a per-wallet snapshot.
type MinerStats struct {
	WalletAddress string
	Hashrate      float64
	HashrateUnit  string
	TotalShares   uint64
	ValidShares   uint64
	InvalidShares uint64
	LastShare     *int64
}

// Share is one accepted share as reported by the pool.
type Share struct {
	WalletAddress string
	WorkerName    string
	Difficulty    decimal.Decimal
	BlockHeight   *int64
	IsBlock       bool
	Timestamp     int64
}

// Block is a block the pool found.
type Block struct {
	Height       int64
	Hash         string
	Reward       decimal.Decimal
	FinderWallet string
	FinderWorker string
	Timestamp    int64
}

// Source is the read-only capability the settlement engine and the stats
// collector need from a pool backend.
type Source interface {
	IsOnline(ctx context.Context) bool
	PoolStats(ctx context.Context) (*PoolStats, error)
	MinerStats(ctx context.Context, walletAddress string) (*MinerStats, error)
	AllMiners(ctx context.Context) ([]MinerStats, error)
	SharesSince(ctx context.Context, sinceUnix int64) ([]Share, error)
	BlocksSinceHeight(ctx context.Context, height int64) ([]Block, error)
}

// Kind selects a pool adapter.
type Kind string

const (
	KindMoneroPool Kind = "moneropool"
	KindMergeProxy Kind = "mergeproxy"
	KindCKPool     Kind = "ckpool"
)

// New builds the adapter for kind. addr is an HTTP base URL for moneropool
// and mergeproxy, and a socket directory for ckpool.
func New(kind Kind, addr string, logger *zap.Logger) (Source, error) {
	switch kind {
	case KindMoneroPool:
		return NewMoneroPool(addr, logger), nil
	case KindMergeProxy:
		return NewMergeProxy(addr, logger), nil
	case KindCKPool:
		return NewCKPool(addr, logger), nil
	default:
		return nil, fmt.Errorf("unknown pool kind: %s", kind)
	}
}

// splitUsername breaks a pool username in wallet.worker form apart. Without
// a dot the whole string is the wallet and the worker is "default".
func splitUsername(username string) (wallet, worker string) {
	if i := strings.IndexByte(username, '.'); i >= 0 {
		return username[:i], username[i+1:]
	}
	return username, "default"
}
