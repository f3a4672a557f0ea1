package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/solopool-hq/payouts-backend/internal/model"
)

// ErrPaymentNotFound is returned when a payment id does not exist.
var ErrPaymentNotFound = errors.New("payment not found")

const insertPaymentSQL = `
INSERT INTO payments (id, coin, wallet_address, amount, status, created_at)
VALUES ($1, $2, $3, $4::numeric, 'pending', NOW())`

// CreatePayment records a payout attempt in the pending state and returns
// its id.
func (s *Store) CreatePayment(
	ctx context.Context, coin model.Coin, walletAddress string, amount decimal.Decimal,
) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	if _, err := s.pool.Exec(ctx, insertPaymentSQL, id, coin.String(), walletAddress, amount.String()); err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}
	return id, nil
}

const updatePaymentSQL = `
UPDATE payments
SET status        = $2,
    tx_hash       = COALESCE($3, tx_hash),
    error_message = COALESCE($4, error_message),
    confirmed_at  = CASE WHEN $2 = 'confirmed' THEN NOW() ELSE confirmed_at END
WHERE id = $1 AND status IN ('pending', 'processing')
RETURNING coin, wallet_address, amount::text`

const selectPaymentStatusSQL = `SELECT status FROM payments WHERE id = $1`

const settleBalanceSQL = `
UPDATE balances
SET pending_balance = pending_balance - $3::numeric,
    total_paid      = total_paid + $3::numeric,
    last_payment    = NOW()
WHERE wallet_address = $1 AND coin = $2`

// UpdatePaymentStatus moves a payment forward through its lifecycle.
// Terminal rows are left untouched. When the new status is confirmed the
// miner's balance settles in the same transaction: pending decreases and
// total paid increases by the payment amount.
func (s *Store) UpdatePaymentStatus(
	ctx context.Context, id string, status model.PaymentStatus, txHash, errorMessage string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin payment update: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var (
		coin          string
		walletAddress string
		amountText    string
	)
	err = tx.QueryRow(ctx, updatePaymentSQL, id, status.String(), textOrNil(txHash), textOrNil(errorMessage)).
		Scan(&coin, &walletAddress, &amountText)
	if errors.Is(err, pgx.ErrNoRows) {
		var current string
		if err := s.pool.QueryRow(ctx, selectPaymentStatusSQL, id).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("update payment %s: %w", id, ErrPaymentNotFound)
			}
			return fmt.Errorf("select payment status: %w", err)
		}
		// Already terminal; the update is dropped.
		s.logger.Warn("ignoring status update for terminal payment",
			zap.String("payment_id", id),
			zap.String("current", current),
			zap.String("requested", status.String()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	if status == model.PaymentConfirmed {
		if _, err := tx.Exec(ctx, settleBalanceSQL, walletAddress, coin, amountText); err != nil {
			return fmt.Errorf("settle balance: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit payment update: %w", err)
	}
	return nil
}

const pendingPaymentsSQL = `
SELECT id, coin, wallet_address, amount::text, tx_hash, status, created_at, confirmed_at, error_message
FROM payments
WHERE coin = $1 AND status IN ('pending', 'processing')
ORDER BY created_at ASC`

// PendingPayments returns non-terminal payments for a coin, oldest first.
func (s *Store) PendingPayments(ctx context.Context, coin model.Coin) ([]model.Payment, error) {
	rows, err := s.pool.Query(ctx, pendingPaymentsSQL, coin.String())
	if err != nil {
		return nil, fmt.Errorf("select pending payments: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

const minerPaymentsSQL = `
SELECT id, coin, wallet_address, amount::text, tx_hash, status, created_at, confirmed_at, error_message
FROM payments
WHERE coin = $1 AND wallet_address = $2
ORDER BY created_at DESC
LIMIT $3`

// MinerPayments returns a miner's newest payments, capped at limit.
func (s *Store) MinerPayments(
	ctx context.Context, coin model.Coin, walletAddress string, limit int,
) ([]model.Payment, error) {
	rows, err := s.pool.Query(ctx, minerPaymentsSQL, coin.String(), walletAddress, limit)
	if err != nil {
		return nil, fmt.Errorf("select miner payments: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

const recentPaymentsSQL = `
SELECT id, coin, wallet_address, amount::text, tx_hash, status, created_at, confirmed_at, error_message
FROM payments
WHERE coin = $1
ORDER BY created_at DESC
LIMIT $2`

// RecentPayments returns the newest payments for a coin, for reporting.
func (s *Store) RecentPayments(ctx context.Context, coin model.Coin, limit int) ([]model.Payment, error) {
	rows, err := s.pool.Query(ctx, recentPaymentsSQL, coin.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("select recent payments: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]model.Payment, error) {
	var payments []model.Payment
	for rows.Next() {
		var (
			p          model.Payment
			coin       string
			amountText string
			status     string
		)
		err := rows.Scan(&p.ID, &coin, &p.WalletAddress, &amountText, &p.TxHash,
			&status, &p.CreatedAt, &p.ConfirmedAt, &p.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.Coin = model.Coin(coin)
		p.Status = model.PaymentStatus(status)
		if p.Amount, err = parseAmount(amountText); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
