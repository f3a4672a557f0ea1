package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/solopool-hq/payouts-backend/internal/model"
)

const insertBlockSQL = `
INSERT INTO blocks (coin, block_height, block_hash, reward, finder_wallet, finder_worker, timestamp, distributed)
VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, FALSE)
ON CONFLICT (block_hash) DO NOTHING
RETURNING id`

const selectBlockIDByHashSQL = `SELECT id FROM blocks WHERE block_hash = $1`

// RecordBlock inserts a found block keyed by hash. Re-recording the same
// hash is a no-op that returns the existing row id.
func (s *Store) RecordBlock(
	ctx context.Context,
	coin model.Coin,
	blockHeight int64,
	blockHash string,
	reward decimal.Decimal,
	finderWallet, finderWorker string,
	foundAt time.Time,
) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id int64
	err := s.pool.QueryRow(ctx, insertBlockSQL,
		coin.String(), blockHeight, blockHash, reward.String(), finderWallet, finderWorker, foundAt.UTC(),
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("insert block: %w", err)
	}

	// Conflict path: the hash is already recorded.
	if err := s.pool.QueryRow(ctx, selectBlockIDByHashSQL, blockHash).Scan(&id); err != nil {
		return 0, fmt.Errorf("select existing block: %w", err)
	}
	return id, nil
}

const undistributedBlocksSQL = `
SELECT id, coin, block_height, block_hash, reward::text, finder_wallet, finder_worker, timestamp, distributed
FROM blocks
WHERE coin = $1 AND NOT distributed
ORDER BY block_height ASC`

// UndistributedBlocks returns blocks whose rewards have not been credited
// yet, oldest first.
func (s *Store) UndistributedBlocks(ctx context.Context, coin model.Coin) ([]model.BlockFound, error) {
	rows, err := s.pool.Query(ctx, undistributedBlocksSQL, coin.String())
	if err != nil {
		return nil, fmt.Errorf("select undistributed blocks: %w", err)
	}
	defer rows.Close()

	var blocks []model.BlockFound
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

const markBlockDistributedSQL = `UPDATE blocks SET distributed = TRUE WHERE id = $1`

// MarkBlockDistributed flips the distributed flag. Idempotent.
func (s *Store) MarkBlockDistributed(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.pool.Exec(ctx, markBlockDistributedSQL, id); err != nil {
		return fmt.Errorf("mark block distributed: %w", err)
	}
	return nil
}

const recentBlocksSQL = `
SELECT id, coin, block_height, block_hash, reward::text, finder_wallet, finder_worker, timestamp, distributed
FROM blocks
WHERE coin = $1
ORDER BY block_height DESC
LIMIT $2`

// RecentBlocks returns the newest blocks for a coin, for reporting.
func (s *Store) RecentBlocks(ctx context.Context, coin model.Coin, limit int) ([]model.BlockFound, error) {
	rows, err := s.pool.Query(ctx, recentBlocksSQL, coin.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("select recent blocks: %w", err)
	}
	defer rows.Close()

	var blocks []model.BlockFound
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func scanBlock(rows pgx.Rows) (model.BlockFound, error) {
	var (
		b          model.BlockFound
		coin       string
		rewardText string
	)
	err := rows.Scan(&b.ID, &coin, &b.BlockHeight, &b.BlockHash, &rewardText,
		&b.FinderWallet, &b.FinderWorker, &b.Timestamp, &b.Distributed)
	if err != nil {
		return model.BlockFound{}, fmt.Errorf("scan block: %w", err)
	}
	b.Coin = model.Coin(coin)
	if b.Reward, err = parseAmount(rewardText); err != nil {
		return model.BlockFound{}, err
	}
	return b, nil
}
