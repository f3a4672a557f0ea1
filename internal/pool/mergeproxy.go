package pool

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MergeProxy reads the Minotari merge mining proxy JSON-RPC API, usually
// at http://127.0.0.1:18081.
type MergeProxy struct {
	client *httpClient
	logger *zap.Logger
}

func NewMergeProxy(baseURL string, logger *zap.Logger) *MergeProxy {
	return &MergeProxy{client: newHTTPClient(baseURL), logger: logger}
}

type proxyStatus struct {
	Hashrate          *float64 `json:"hashrate"`
	ConnectedMiners   *uint32  `json:"connected_miners"`
	BlocksFound       *uint64  `json:"blocks_found"`
	ChainHeight       *uint64  `json:"chain_height"`
	NetworkDifficulty *uint64  `json:"network_difficulty"`
	LastBlockTime     *int64   `json:"last_block_time"`
}

type proxyMinerInfo struct {
	WalletAddress  *string  `json:"wallet_address"`
	Hashrate       *float64 `json:"hashrate"`
	TotalShares    *uint64  `json:"total_shares"`
	AcceptedShares *uint64  `json:"accepted_shares"`
	RejectedShares *uint64  `json:"rejected_shares"`
	LastShareTime  *int64   `json:"last_share_time"`
}

type proxyShare struct {
	Username    string `json:"username"`
	Difficulty  uint64 `json:"difficulty"`
	BlockHeight *int64 `json:"block_height"`
	IsBlock     *bool  `json:"is_block"`
	Timestamp   int64  `json:"timestamp"`
}

type proxyBlock struct {
	Height    int64  `json:"height"`
	Hash      string `json:"hash"`
	Reward    uint64 `json:"reward"`
	Miner     string `json:"miner"`
	Timestamp int64  `json:"timestamp"`
}

func (p *MergeProxy) IsOnline(ctx context.Context) bool {
	var out map[string]any
	return p.client.call(ctx, "get_status", struct{}{}, &out) == nil
}

func (p *MergeProxy) PoolStats(ctx context.Context) (*PoolStats, error) {
	var status proxyStatus
	if err := p.client.call(ctx, "get_status", struct{}{}, &status); err != nil {
		return nil, err
	}

	stats := &PoolStats{HashrateUnit: "H/s", LastBlockTime: status.LastBlockTime}
	if status.Hashrate != nil {
		stats.Hashrate = *status.Hashrate
	}
	if status.ConnectedMiners != nil {
		stats.Miners = *status.ConnectedMiners
	}
	if status.BlocksFound != nil {
		stats.BlocksFound = *status.BlocksFound
	}
	if status.ChainHeight != nil {
		stats.CurrentHeight = int64(*status.ChainHeight)
	}
	if status.NetworkDifficulty != nil {
		stats.NetworkDifficulty = decimal.NewFromUint64(*status.NetworkDifficulty)
	} else {
		stats.NetworkDifficulty = decimal.Zero
	}
	return stats, nil
}

// MinerStats queries get_miner_info. Unknown miners come back as zeroed
// stats rather than an error; not every proxy build carries the method.
func (p *MergeProxy) MinerStats(ctx context.Context, walletAddress string) (*MinerStats, error) {
	params := map[string]string{"wallet_address": walletAddress}

	var info proxyMinerInfo
	if err := p.client.call(ctx, "get_miner_info", params, &info); err != nil {
		p.logger.Debug("get_miner_info failed, returning empty stats",
			zap.String("wallet", walletAddress), zap.Error(err))
		return &MinerStats{WalletAddress: walletAddress, HashrateUnit: "H/s"}, nil
	}
	ms := minerStatsFromProxy(info)
	ms.WalletAddress = walletAddress
	return &ms, nil
}

func (p *MergeProxy) AllMiners(ctx context.Context) ([]MinerStats, error) {
	var infos []proxyMinerInfo
	if err := p.client.call(ctx, "get_connected_miners", struct{}{}, &infos); err != nil {
		p.logger.Debug("get_connected_miners failed", zap.Error(err))
		return nil, nil
	}
	miners := make([]MinerStats, 0, len(infos))
	for _, info := range infos {
		miners = append(miners, minerStatsFromProxy(info))
	}
	return miners, nil
}

func (p *MergeProxy) SharesSince(ctx context.Context, sinceUnix int64) ([]Share, error) {
	params := map[string]int64{"since": sinceUnix}

	var raw []proxyShare
	if err := p.client.call(ctx, "get_shares", params, &raw); err != nil {
		p.logger.Debug("get_shares failed", zap.Error(err))
		return nil, nil
	}

	shares := make([]Share, 0, len(raw))
	for _, s := range raw {
		wallet, worker := splitUsername(s.Username)
		isBlock := s.IsBlock != nil && *s.IsBlock
		shares = append(shares, Share{
			WalletAddress: wallet,
			WorkerName:    worker,
			Difficulty:    decimal.NewFromUint64(s.Difficulty),
			BlockHeight:   s.BlockHeight,
			IsBlock:       isBlock,
			Timestamp:     s.Timestamp,
		})
	}
	return shares, nil
}

func (p *MergeProxy) BlocksSinceHeight(ctx context.Context, height int64) ([]Block, error) {
	params := map[string]int64{"since_height": height}

	var raw []proxyBlock
	if err := p.client.call(ctx, "get_blocks_since", params, &raw); err != nil {
		p.logger.Debug("get_blocks_since failed", zap.Error(err))
		return nil, nil
	}

	blocks := make([]Block, 0, len(raw))
	for _, b := range raw {
		wallet, worker := splitUsername(b.Miner)
		blocks = append(blocks, Block{
			Height:       b.Height,
			Hash:         b.Hash,
			Reward:       decimal.NewFromUint64(b.Reward),
			FinderWallet: wallet,
			FinderWorker: worker,
			Timestamp:    b.Timestamp,
		})
	}
	return blocks, nil
}

func minerStatsFromProxy(info proxyMinerInfo) MinerStats {
	ms := MinerStats{HashrateUnit: "H/s", LastShare: info.LastShareTime}
	if info.WalletAddress != nil {
		ms.WalletAddress = *info.WalletAddress
	}
	if info.Hashrate != nil {
		ms.Hashrate = *info.Hashrate
	}
	if info.TotalShares != nil {
		ms.TotalShares = *info.TotalShares
	}
	if info.AcceptedShares != nil {
		ms.ValidShares = *info.AcceptedShares
	}
	if info.RejectedShares != nil {
		ms.InvalidShares = *info.RejectedShares
	}
	return ms
}
