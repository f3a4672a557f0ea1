package pool

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MoneroPool reads the jtgrassie/monero-pool local HTTP API, usually at
// http://127.0.0.1:4243. All data comes from GET /stats.
type MoneroPool struct {
	client *httpClient
	logger *zap.Logger
}

func NewMoneroPool(baseURL string, logger *zap.Logger) *MoneroPool {
	return &MoneroPool{client: newHTTPClient(baseURL), logger: logger}
}

type moneroPoolStats struct {
	PoolHashrate      uint64            `json:"pool_hashrate"`
	ConnectedMiners   uint32            `json:"connected_miners"`
	PoolBlocksFound   uint64            `json:"pool_blocks_found"`
	NetworkHeight     uint64            `json:"network_height"`
	NetworkDifficulty uint64            `json:"network_difficulty"`
	LastBlockFound    *int64            `json:"last_block_found"`
	Miners            []moneroPoolMiner `json:"miners"`
	Blocks            []moneroPoolBlock `json:"blocks"`
}

type moneroPoolMiner struct {
	Address       string  `json:"address"`
	Hashrate      uint64  `json:"hashrate"`
	Hashes        uint64  `json:"hashes"`
	ValidShares   *uint64 `json:"valid_shares"`
	InvalidShares *uint64 `json:"invalid_shares"`
	LastShare     *int64  `json:"last_share"`
}

type moneroPoolBlock struct {
	Height    uint64  `json:"height"`
	Hash      string  `json:"hash"`
	Reward    uint64  `json:"reward"`
	Address   *string `json:"address"`
	Timestamp uint64  `json:"timestamp"`
}

func (p *MoneroPool) stats(ctx context.Context) (*moneroPoolStats, error) {
	var s moneroPoolStats
	if err := p.client.getJSON(ctx, "/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (p *MoneroPool) IsOnline(ctx context.Context) bool {
	_, err := p.stats(ctx)
	return err == nil
}

func (p *MoneroPool) PoolStats(ctx context.Context) (*PoolStats, error) {
	s, err := p.stats(ctx)
	if err != nil {
		return nil, err
	}
	return &PoolStats{
		Hashrate:          float64(s.PoolHashrate),
		HashrateUnit:      "H/s",
		Miners:            s.ConnectedMiners,
		BlocksFound:       s.PoolBlocksFound,
		CurrentHeight:     int64(s.NetworkHeight),
		NetworkDifficulty: decimal.NewFromUint64(s.NetworkDifficulty),
		LastBlockTime:     s.LastBlockFound,
	}, nil
}

func (p *MoneroPool) MinerStats(ctx context.Context, walletAddress string) (*MinerStats, error) {
	s, err := p.stats(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range s.Miners {
		if m.Address == walletAddress {
			ms := minerStatsFromMoneroPool(m)
			return &ms, nil
		}
	}
	return nil, fmt.Errorf("miner %s not found", walletAddress)
}

func (p *MoneroPool) AllMiners(ctx context.Context) ([]MinerStats, error) {
	s, err := p.stats(ctx)
	if err != nil {
		return nil, err
	}
	miners := make([]MinerStats, 0, len(s.Miners))
	for _, m := range s.Miners {
		miners = append(miners, minerStatsFromMoneroPool(m))
	}
	return miners, nil
}

// SharesSince synthesizes share records from the miner list: monero-pool
// keeps raw shares in LMDB and only exposes per-miner totals, so one share
// per recently active miner stands in for the real feed, carrying the
// miner's hashrate as difficulty.
func (p *MoneroPool) SharesSince(ctx context.Context, sinceUnix int64) ([]Share, error) {
	s, err := p.stats(ctx)
	if err != nil {
		return nil, err
	}
	height := int64(s.NetworkHeight)

	var shares []Share
	for _, m := range s.Miners {
		if m.LastShare == nil || *m.LastShare < sinceUnix {
			continue
		}
		h := height
		shares = append(shares, Share{
			WalletAddress: m.Address,
			WorkerName:    "default",
			Difficulty:    decimal.NewFromUint64(m.Hashrate),
			BlockHeight:   &h,
			Timestamp:     *m.LastShare,
		})
	}
	return shares, nil
}

func (p *MoneroPool) BlocksSinceHeight(ctx context.Context, height int64) ([]Block, error) {
	s, err := p.stats(ctx)
	if err != nil {
		return nil, err
	}

	var blocks []Block
	for _, b := range s.Blocks {
		if int64(b.Height) <= height {
			continue
		}
		finder := "unknown"
		if b.Address != nil {
			finder = *b.Address
		}
		blocks = append(blocks, Block{
			Height:       int64(b.Height),
			Hash:         b.Hash,
			Reward:       decimal.NewFromUint64(b.Reward),
			FinderWallet: finder,
			FinderWorker: "monero-pool",
			Timestamp:    int64(b.Timestamp),
		})
	}
	return blocks, nil
}

func minerStatsFromMoneroPool(m moneroPoolMiner) MinerStats {
	valid := m.Hashes
	if m.ValidShares != nil {
		valid = *m.ValidShares
	}
	var invalid uint64
	if m.InvalidShares != nil {
		invalid = *m.InvalidShares
	}
	return MinerStats{
		WalletAddress: m.Address,
		Hashrate:      float64(m.Hashrate),
		HashrateUnit:  "H/s",
		TotalShares:   m.Hashes,
		ValidShares:   valid,
		InvalidShares: invalid,
		LastShare:     m.LastShare,
	}
}
