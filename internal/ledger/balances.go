package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/solopool-hq/payouts-backend/internal/model"
)

const addPendingBalanceSQL = `
INSERT INTO balances (wallet_address, coin, pending_balance, total_paid, total_shares)
VALUES ($1, $2, $3::numeric, 0, 0)
ON CONFLICT (wallet_address, coin) DO UPDATE
SET pending_balance = balances.pending_balance + EXCLUDED.pending_balance`

// AddPendingBalance credits amount to the miner's pending balance,
// creating the row if it does not exist. Addition happens inside NUMERIC.
func (s *Store) AddPendingBalance(
	ctx context.Context, coin model.Coin, walletAddress string, amount decimal.Decimal,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.pool.Exec(ctx, addPendingBalanceSQL, walletAddress, coin.String(), amount.String()); err != nil {
		return fmt.Errorf("add pending balance: %w", err)
	}
	return nil
}

const payableBalancesSQL = `
SELECT wallet_address, coin, pending_balance::text, total_paid::text, total_shares, last_share, last_payment
FROM balances
WHERE coin = $1 AND pending_balance >= $2::numeric
ORDER BY pending_balance DESC`

// PayableBalances lists miners at or above the payout threshold, largest
// balance first.
func (s *Store) PayableBalances(
	ctx context.Context, coin model.Coin, minPayout decimal.Decimal,
) ([]model.MinerBalance, error) {
	rows, err := s.pool.Query(ctx, payableBalancesSQL, coin.String(), minPayout.String())
	if err != nil {
		return nil, fmt.Errorf("select payable balances: %w", err)
	}
	defer rows.Close()

	var balances []model.MinerBalance
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

const minerBalanceSQL = `
SELECT wallet_address, coin, pending_balance::text, total_paid::text, total_shares, last_share, last_payment
FROM balances
WHERE coin = $1 AND wallet_address = $2`

// MinerBalance returns one miner's balance row, or nil when the miner has
// never been seen.
func (s *Store) MinerBalance(
	ctx context.Context, coin model.Coin, walletAddress string,
) (*model.MinerBalance, error) {
	rows, err := s.pool.Query(ctx, minerBalanceSQL, coin.String(), walletAddress)
	if err != nil {
		return nil, fmt.Errorf("select miner balance: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("select miner balance: %w", err)
		}
		return nil, nil
	}
	b, err := scanBalance(rows)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBalance(rows pgx.Rows) (model.MinerBalance, error) {
	var (
		b           model.MinerBalance
		coin        string
		pendingText string
		paidText    string
	)
	err := rows.Scan(&b.WalletAddress, &coin, &pendingText, &paidText,
		&b.TotalShares, &b.LastShare, &b.LastPayment)
	if err != nil {
		return model.MinerBalance{}, fmt.Errorf("scan balance: %w", err)
	}
	b.Coin = model.Coin(coin)
	if b.PendingBalance, err = parseAmount(pendingText); err != nil {
		return model.MinerBalance{}, err
	}
	if b.TotalPaid, err = parseAmount(paidText); err != nil {
		return model.MinerBalance{}, err
	}
	return b, nil
}

// CoinStats aggregates the ledger for the reporting API.
type CoinStats struct {
	Coin            model.Coin
	Miners          int64
	PendingTotal    decimal.Decimal
	PaidTotal       decimal.Decimal
	BlocksFound     int64
	LastBlockHeight int64
}

const balanceStatsSQL = `
SELECT COUNT(*), COALESCE(SUM(pending_balance), 0)::text, COALESCE(SUM(total_paid), 0)::text
FROM balances
WHERE coin = $1`

const blockStatsSQL = `
SELECT COUNT(*), COALESCE(MAX(block_height), 0)
FROM blocks
WHERE coin = $1`

// Stats aggregates balances and blocks for one coin.
func (s *Store) Stats(ctx context.Context, coin model.Coin) (*CoinStats, error) {
	st := &CoinStats{Coin: coin}

	var pendingText, paidText string
	err := s.pool.QueryRow(ctx, balanceStatsSQL, coin.String()).Scan(&st.Miners, &pendingText, &paidText)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("select balance stats: %w", err)
	}
	if pendingText != "" {
		if st.PendingTotal, err = parseAmount(pendingText); err != nil {
			return nil, err
		}
	}
	if paidText != "" {
		if st.PaidTotal, err = parseAmount(paidText); err != nil {
			return nil, err
		}
	}

	err = s.pool.QueryRow(ctx, blockStatsSQL, coin.String()).Scan(&st.BlocksFound, &st.LastBlockHeight)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("select block stats: %w", err)
	}
	return st, nil
}
