package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solopool-hq/payouts-backend/internal/model"
)

const insertShareSQL = `
INSERT INTO shares (coin, wallet_address, worker_name, difficulty, timestamp, block_height, is_block)
VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)
RETURNING id`

const touchBalanceSQL = `
INSERT INTO balances (wallet_address, coin, pending_balance, total_paid, total_shares, last_share)
VALUES ($1, $2, 0, 0, 1, $3)
ON CONFLICT (wallet_address, coin) DO UPDATE
SET total_shares = balances.total_shares + 1,
    last_share   = EXCLUDED.last_share`

// RecordShare appends one accepted share and bumps the miner's share
// counter in the same transaction. The stored timestamp is the ingestion
// time, not the pool-reported one.
func (s *Store) RecordShare(
	ctx context.Context,
	coin model.Coin,
	walletAddress, workerName string,
	difficulty decimal.Decimal,
	blockHeight *int64,
	isBlock bool,
) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin record share: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()

	var id int64
	err = tx.QueryRow(ctx, insertShareSQL,
		coin.String(), walletAddress, workerName, difficulty.String(), now, blockHeight, isBlock,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert share: %w", err)
	}

	if _, err := tx.Exec(ctx, touchBalanceSQL, walletAddress, coin.String(), now); err != nil {
		return 0, fmt.Errorf("touch balance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit record share: %w", err)
	}
	return id, nil
}

const shareCountInRangeSQL = `
SELECT COUNT(*)
FROM shares
WHERE coin = $1 AND wallet_address = $2 AND timestamp >= $3 AND timestamp <= $4`

// ShareCountInRange counts one miner's shares inside [from, to].
func (s *Store) ShareCountInRange(
	ctx context.Context, coin model.Coin, walletAddress string, from, to time.Time,
) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, shareCountInRangeSQL, coin.String(), walletAddress, from, to).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count miner shares: %w", err)
	}
	return n, nil
}

const totalSharesInRangeSQL = `
SELECT COUNT(*)
FROM shares
WHERE coin = $1 AND timestamp >= $2 AND timestamp <= $3`

// TotalSharesInRange counts all shares for a coin inside [from, to].
func (s *Store) TotalSharesInRange(
	ctx context.Context, coin model.Coin, from, to time.Time,
) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, totalSharesInRangeSQL, coin.String(), from, to).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count total shares: %w", err)
	}
	return n, nil
}

const minersInRangeSQL = `
SELECT DISTINCT wallet_address
FROM shares
WHERE coin = $1 AND timestamp >= $2 AND timestamp <= $3`

// MinersInRange lists the distinct wallet addresses that submitted shares
// inside [from, to].
func (s *Store) MinersInRange(
	ctx context.Context, coin model.Coin, from, to time.Time,
) ([]string, error) {
	rows, err := s.pool.Query(ctx, minersInRangeSQL, coin.String(), from, to)
	if err != nil {
		return nil, fmt.Errorf("select miners in range: %w", err)
	}
	defer rows.Close()

	var wallets []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan miner wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}
