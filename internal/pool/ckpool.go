package pool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CKPool reads the ckpool stratifier unix-socket API. Each instance has
// its own socket directory (ckpool -s), with the stratifier socket inside.
//
// The socket only exposes counters, not a block feed, so BlocksSinceHeight
// always returns nothing; ckpool deployments pay the pool wallet directly
// via the coinbase and block crediting is recorded out of band.
type CKPool struct {
	socketPath string
	logger     *zap.Logger
}

func NewCKPool(socketDir string, logger *zap.Logger) *CKPool {
	return &CKPool{
		socketPath: filepath.Join(strings.TrimRight(socketDir, "/"), "stratifier"),
		logger:     logger,
	}
}

type ckpoolStats struct {
	Runtime     uint64  `json:"runtime"`
	Users       uint64  `json:"users"`
	Workers     uint64  `json:"workers"`
	Idle        uint64  `json:"idle"`
	Hashrate1m  float64 `json:"hashrate1m"`
	Hashrate5m  float64 `json:"hashrate5m"`
	Hashrate1hr float64 `json:"hashrate1hr"`
	Diff        float64 `json:"diff"`
	Accepted    uint64  `json:"accepted"`
	Rejected    uint64  `json:"rejected"`
	BestShare   float64 `json:"bestshare"`
}

type ckpoolWorker struct {
	User       string  `json:"user"`
	Worker     string  `json:"worker"`
	Hashrate1m float64 `json:"hashrate1m"`
	Hashrate5m float64 `json:"hashrate5m"`
	Shares     uint64  `json:"shares"`
	BestShare  float64 `json:"bestshare"`
	BestEver   float64 `json:"bestever"`
	LastShare  int64   `json:"lastshare"`
	Idle       bool    `json:"idle"`
}

// command writes one line to the stratifier socket and reads the whole
// response.
func (p *CKPool) command(ctx context.Context, cmd string) ([]byte, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", p.socketPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOffline, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(10 * time.Second)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set socket deadline: %w", err)
	}

	if _, err := conn.Write([]byte(cmd + "\n")); err != nil {
		return nil, fmt.Errorf("write %s command: %w", cmd, err)
	}

	var buf bytes.Buffer
	chunk := make([]byte, 8192)
	for {
		n, err := conn.Read(chunk)
		buf.Write(chunk[:n])
		if err != nil {
			break
		}
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("empty %s response", cmd)
	}
	return buf.Bytes(), nil
}

func (p *CKPool) workers(ctx context.Context) ([]ckpoolWorker, error) {
	raw, err := p.command(ctx, "workers")
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var ws []ckpoolWorker
		if err := json.Unmarshal(trimmed, &ws); err != nil {
			return nil, fmt.Errorf("decode workers: %w", err)
		}
		return ws, nil
	}

	// Older builds emit newline-separated objects.
	var ws []ckpoolWorker
	for _, line := range bytes.Split(trimmed, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var w ckpoolWorker
		if err := json.Unmarshal(line, &w); err != nil {
			p.logger.Debug("skipping unparsable worker line", zap.Error(err))
			continue
		}
		ws = append(ws, w)
	}
	return ws, nil
}

func (p *CKPool) IsOnline(ctx context.Context) bool {
	_, err := p.command(ctx, "stats")
	return err == nil
}

func (p *CKPool) PoolStats(ctx context.Context) (*PoolStats, error) {
	raw, err := p.command(ctx, "stats")
	if err != nil {
		return nil, err
	}
	var s ckpoolStats
	if err := json.Unmarshal(bytes.TrimSpace(raw), &s); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}

	stats := &PoolStats{
		Hashrate:          s.Hashrate5m,
		HashrateUnit:      "H/s",
		Miners:            uint32(s.Workers),
		NetworkDifficulty: decimal.NewFromFloat(s.Diff),
	}

	// Block count lives in the users response when present.
	if raw, err := p.command(ctx, "users"); err == nil {
		var users struct {
			Blocks uint64 `json:"blocks"`
		}
		if json.Unmarshal(bytes.TrimSpace(raw), &users) == nil {
			stats.BlocksFound = users.Blocks
		}
	}
	return stats, nil
}

func (p *CKPool) MinerStats(ctx context.Context, walletAddress string) (*MinerStats, error) {
	ws, err := p.workers(ctx)
	if err != nil {
		return nil, err
	}

	agg := MinerStats{WalletAddress: walletAddress, HashrateUnit: "H/s"}
	for _, w := range ws {
		if w.User != walletAddress {
			continue
		}
		agg.Hashrate += w.Hashrate5m
		agg.TotalShares += w.Shares
		agg.ValidShares += w.Shares
		if w.LastShare > 0 && (agg.LastShare == nil || w.LastShare > *agg.LastShare) {
			last := w.LastShare
			agg.LastShare = &last
		}
	}
	return &agg, nil
}

func (p *CKPool) AllMiners(ctx context.Context) ([]MinerStats, error) {
	ws, err := p.workers(ctx)
	if err != nil {
		return nil, err
	}

	byWallet := make(map[string]*MinerStats)
	var order []string
	for _, w := range ws {
		m, ok := byWallet[w.User]
		if !ok {
			m = &MinerStats{WalletAddress: w.User, HashrateUnit: "H/s"}
			byWallet[w.User] = m
			order = append(order, w.User)
		}
		m.Hashrate += w.Hashrate5m
		m.TotalShares += w.Shares
		m.ValidShares += w.Shares
		if w.LastShare > 0 && (m.LastShare == nil || w.LastShare > *m.LastShare) {
			last := w.LastShare
			m.LastShare = &last
		}
	}

	miners := make([]MinerStats, 0, len(order))
	for _, wallet := range order {
		miners = append(miners, *byWallet[wallet])
	}
	return miners, nil
}

// SharesSince synthesizes one share per recently active worker; ckpool
// exposes per-worker counters, not a share feed.
func (p *CKPool) SharesSince(ctx context.Context, sinceUnix int64) ([]Share, error) {
	ws, err := p.workers(ctx)
	if err != nil {
		return nil, err
	}

	var shares []Share
	for _, w := range ws {
		if w.LastShare < sinceUnix || w.LastShare == 0 {
			continue
		}
		worker := w.Worker
		if worker == "" {
			worker = "default"
		}
		shares = append(shares, Share{
			WalletAddress: w.User,
			WorkerName:    worker,
			Difficulty:    decimal.NewFromFloat(w.Hashrate5m),
			Timestamp:     w.LastShare,
		})
	}
	return shares, nil
}

func (p *CKPool) BlocksSinceHeight(ctx context.Context, _ int64) ([]Block, error) {
	return nil, nil
}
