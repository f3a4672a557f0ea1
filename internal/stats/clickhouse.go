package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// ClickHouseStore keeps pool and miner samples in ClickHouse.
type ClickHouseStore struct {
	conn clickhouse.Conn
}

func NewClickHouseStore(dsn string) (*ClickHouseStore, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &ClickHouseStore{conn: conn}, nil
}

// NewClickHouseStoreWithConn wires an existing connection, used by tests.
func NewClickHouseStoreWithConn(conn clickhouse.Conn) *ClickHouseStore {
	return &ClickHouseStore{conn: conn}
}

func (s *ClickHouseStore) Close() error {
	return s.conn.Close()
}

func (s *ClickHouseStore) InsertPoolSample(ctx context.Context, sample PoolSample) error {
	const query = `
INSERT INTO pool_samples (coin, sampled_at, hashrate, miners, blocks_found, current_height, network_difficulty)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	err := s.conn.Exec(ctx, query,
		sample.Coin, sample.SampledAt, sample.Hashrate, sample.Miners,
		sample.BlocksFound, sample.CurrentHeight, sample.NetworkDifficulty)
	if err != nil {
		return fmt.Errorf("insert pool sample: %w", err)
	}
	return nil
}

func (s *ClickHouseStore) InsertMinerSamples(ctx context.Context, samples []MinerSample) error {
	if len(samples) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
INSERT INTO miner_samples (coin, sampled_at, wallet_address, hashrate, valid_shares, invalid_shares)`)
	if err != nil {
		return fmt.Errorf("prepare miner samples batch: %w", err)
	}

	for _, m := range samples {
		err := batch.Append(m.Coin, m.SampledAt, m.WalletAddress, m.Hashrate, m.ValidShares, m.InvalidShares)
		if err != nil {
			return fmt.Errorf("append miner sample: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send miner samples batch: %w", err)
	}
	return nil
}

func (s *ClickHouseStore) PoolHistory(ctx context.Context, coin string, since time.Time) ([]PoolSample, error) {
	const query = `
SELECT coin, sampled_at, hashrate, miners, blocks_found, current_height, network_difficulty
FROM pool_samples
WHERE coin = ? AND sampled_at >= ?
ORDER BY sampled_at ASC`

	rows, err := s.conn.Query(ctx, query, coin, since)
	if err != nil {
		return nil, fmt.Errorf("query pool history: %w", err)
	}
	defer rows.Close()

	var samples []PoolSample
	for rows.Next() {
		var p PoolSample
		err := rows.Scan(&p.Coin, &p.SampledAt, &p.Hashrate, &p.Miners,
			&p.BlocksFound, &p.CurrentHeight, &p.NetworkDifficulty)
		if err != nil {
			return nil, fmt.Errorf("scan pool sample: %w", err)
		}
		samples = append(samples, p)
	}
	return samples, rows.Err()
}

func (s *ClickHouseStore) LatestPoolSample(ctx context.Context, coin string) (*PoolSample, error) {
	const query = `
SELECT coin, sampled_at, hashrate, miners, blocks_found, current_height, network_difficulty
FROM pool_samples
WHERE coin = ?
ORDER BY sampled_at DESC
LIMIT 1`

	rows, err := s.conn.Query(ctx, query, coin)
	if err != nil {
		return nil, fmt.Errorf("query latest pool sample: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var p PoolSample
	err = rows.Scan(&p.Coin, &p.SampledAt, &p.Hashrate, &p.Miners,
		&p.BlocksFound, &p.CurrentHeight, &p.NetworkDifficulty)
	if err != nil {
		return nil, fmt.Errorf("scan latest pool sample: %w", err)
	}
	return &p, nil
}
