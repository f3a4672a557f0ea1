// Package settlement runs the per-coin money cycle: share ingestion, block
// detection, reward distribution, payment dispatch and confirmation.
package settlement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/solopool-hq/payouts-backend/internal/model"
	"github.com/solopool-hq/payouts-backend/internal/pool"
	"github.com/solopool-hq/payouts-backend/internal/wallet"
)

// rewardLookback is the share window credited when a block lands: shares
// submitted within this duration before the block timestamp take part in
// the proportional split.
const rewardLookback = time.Hour

// Processor settles one coin against one pool backend and one wallet.
// Cursors are process-local and start from zero on every boot; backends
// answer since-the-beginning queries with their current window, so a
// restart re-reads at most that window and the ledger's idempotent block
// recording absorbs the overlap.
type Processor struct {
	coin      model.Coin
	pool      pool.Source
	wallet    wallet.Wallet
	ledger    Ledger
	metrics   Metrics
	minPayout decimal.Decimal
	logger    *zap.Logger

	mu              sync.Mutex
	lastBlockHeight int64
	lastShareSync   int64
}

func NewProcessor(
	coin model.Coin,
	src pool.Source,
	w wallet.Wallet,
	ledger Ledger,
	metrics Metrics,
	minPayout decimal.Decimal,
	logger *zap.Logger,
) *Processor {
	return &Processor{
		coin:      coin,
		pool:      src,
		wallet:    w,
		ledger:    ledger,
		metrics:   metrics,
		minPayout: minPayout,
		logger:    logger.With(zap.String("coin", coin.String())),
	}
}

// SyncShares pulls shares reported since the watermark and records them.
// The watermark only ever moves forward.
func (p *Processor) SyncShares(ctx context.Context) (int, error) {
	p.mu.Lock()
	since := p.lastShareSync
	p.mu.Unlock()

	shares, err := p.pool.SharesSince(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("fetch shares: %w", err)
	}

	count := 0
	latest := since
	for _, s := range shares {
		_, err := p.ledger.RecordShare(ctx, p.coin, s.WalletAddress, s.WorkerName, s.Difficulty, s.BlockHeight, s.IsBlock)
		if err != nil {
			return count, fmt.Errorf("record share: %w", err)
		}
		count++
		if s.Timestamp > latest {
			latest = s.Timestamp
		}
	}

	p.mu.Lock()
	if latest > p.lastShareSync {
		p.lastShareSync = latest
	}
	p.mu.Unlock()

	if count > 0 {
		p.logger.Info("synced shares", zap.Int("count", count), zap.Int64("watermark", latest))
	}
	return count, nil
}

// ProcessBlocks records blocks the pool found above the height cursor.
// Recording is keyed by hash, so replaying a block after a restart is
// harmless.
func (p *Processor) ProcessBlocks(ctx context.Context) (int, error) {
	p.mu.Lock()
	lastHeight := p.lastBlockHeight
	p.mu.Unlock()

	blocks, err := p.pool.BlocksSinceHeight(ctx, lastHeight)
	if err != nil {
		return 0, fmt.Errorf("fetch blocks: %w", err)
	}
	if len(blocks) == 0 {
		return 0, nil
	}

	processed := 0
	highest := lastHeight
	for _, b := range blocks {
		_, err := p.ledger.RecordBlock(ctx, p.coin, b.Height, b.Hash, b.Reward,
			b.FinderWallet, b.FinderWorker, time.Unix(b.Timestamp, 0).UTC())
		if err != nil {
			return processed, fmt.Errorf("record block %d: %w", b.Height, err)
		}

		p.logger.Info("new block found",
			zap.Int64("height", b.Height),
			zap.String("hash", b.Hash),
			zap.String("reward", b.Reward.String()),
			zap.String("finder", b.FinderWallet))

		processed++
		if b.Height > highest {
			highest = b.Height
		}
	}

	p.mu.Lock()
	if highest > p.lastBlockHeight {
		p.lastBlockHeight = highest
	}
	p.mu.Unlock()

	return processed, nil
}

// DistributeRewards credits every undistributed block. Each miner active
// in the lookback window gets reward * (miner shares / total shares),
// floored to whole atomic units; the rounding remainder goes to the block
// finder. A window with no shares sends the whole reward to the finder.
func (p *Processor) DistributeRewards(ctx context.Context) error {
	blocks, err := p.ledger.UndistributedBlocks(ctx, p.coin)
	if err != nil {
		return fmt.Errorf("fetch undistributed blocks: %w", err)
	}

	for _, block := range blocks {
		windowEnd := block.Timestamp
		windowStart := windowEnd.Add(-rewardLookback)

		totalShares, err := p.ledger.TotalSharesInRange(ctx, p.coin, windowStart, windowEnd)
		if err != nil {
			return fmt.Errorf("total shares for block %d: %w", block.BlockHeight, err)
		}

		if totalShares == 0 {
			if err := p.ledger.AddPendingBalance(ctx, p.coin, block.FinderWallet, block.Reward); err != nil {
				return fmt.Errorf("credit finder: %w", err)
			}
			p.logger.Info("full block reward assigned to finder, no shares in window",
				zap.Int64("height", block.BlockHeight),
				zap.String("recipient", block.FinderWallet),
				zap.String("amount", block.Reward.String()))
		} else {
			miners, err := p.ledger.MinersInRange(ctx, p.coin, windowStart, windowEnd)
			if err != nil {
				return fmt.Errorf("miners for block %d: %w", block.BlockHeight, err)
			}

			totalD := decimal.NewFromInt(totalShares)
			distributed := decimal.Zero
			for _, miner := range miners {
				minerShares, err := p.ledger.ShareCountInRange(ctx, p.coin, miner, windowStart, windowEnd)
				if err != nil {
					return fmt.Errorf("share count for %s: %w", miner, err)
				}
				if minerShares == 0 {
					continue
				}

				reward := block.Reward.Mul(decimal.NewFromInt(minerShares)).Div(totalD).Floor()
				if err := p.ledger.AddPendingBalance(ctx, p.coin, miner, reward); err != nil {
					return fmt.Errorf("credit miner %s: %w", miner, err)
				}
				distributed = distributed.Add(reward)

				p.logger.Info("reward distributed",
					zap.Int64("height", block.BlockHeight),
					zap.String("miner", miner),
					zap.Int64("shares", minerShares),
					zap.String("reward", reward.String()))
			}

			remainder := block.Reward.Sub(distributed)
			if remainder.IsPositive() {
				if err := p.ledger.AddPendingBalance(ctx, p.coin, block.FinderWallet, remainder); err != nil {
					return fmt.Errorf("credit remainder: %w", err)
				}
			}
		}

		if err := p.ledger.MarkBlockDistributed(ctx, block.ID); err != nil {
			return fmt.Errorf("mark block %d distributed: %w", block.BlockHeight, err)
		}
	}
	return nil
}

// ConfirmPayments polls the wallet for every non-terminal payment that has
// a tx hash. Confirmed settles the balance through the store; Failed is
// terminal and leaves the pending balance untouched, so the amount is paid
// again on a later cycle.
func (p *Processor) ConfirmPayments(ctx context.Context) (int, error) {
	pending, err := p.ledger.PendingPayments(ctx, p.coin)
	if err != nil {
		return 0, fmt.Errorf("fetch pending payments: %w", err)
	}

	confirmed := 0
	for _, payment := range pending {
		if payment.TxHash == nil {
			continue
		}
		txHash := *payment.TxHash

		status, err := p.wallet.TxStatus(ctx, txHash)
		if err != nil {
			p.logger.Error("tx status check failed",
				zap.String("payment_id", payment.ID),
				zap.String("tx_hash", txHash),
				zap.Error(err))
			continue
		}

		switch status.State {
		case wallet.TxConfirmed:
			if err := p.ledger.UpdatePaymentStatus(ctx, payment.ID, model.PaymentConfirmed, "", ""); err != nil {
				return confirmed, fmt.Errorf("confirm payment %s: %w", payment.ID, err)
			}
			p.logger.Info("payment confirmed",
				zap.String("payment_id", payment.ID),
				zap.String("tx_hash", txHash),
				zap.String("address", payment.WalletAddress),
				zap.String("amount", payment.Amount.String()))
			confirmed++
		case wallet.TxConfirming:
			p.logger.Info("payment confirming",
				zap.String("payment_id", payment.ID),
				zap.Uint64("confirmations", status.Confirmations),
				zap.Uint64("required", p.wallet.RequiredConfirmations()))
		case wallet.TxFailed:
			if err := p.ledger.UpdatePaymentStatus(ctx, payment.ID, model.PaymentFailed, "", status.Reason); err != nil {
				return confirmed, fmt.Errorf("fail payment %s: %w", payment.ID, err)
			}
			p.logger.Warn("payment failed",
				zap.String("payment_id", payment.ID),
				zap.String("tx_hash", txHash),
				zap.String("reason", status.Reason))
		case wallet.TxNotFound:
			p.logger.Warn("transaction not found, may still be pending",
				zap.String("payment_id", payment.ID),
				zap.String("tx_hash", txHash))
		case wallet.TxPending:
		}
	}
	return confirmed, nil
}

// ProcessPayments pays every balance at or above the payout threshold.
// With enough wallet funds the whole set goes out as one batch, falling
// back to individual sends if the batch call fails. With a shortfall it
// degrades to paying the largest balances that still fit, one by one.
func (p *Processor) ProcessPayments(ctx context.Context) (int, error) {
	payable, err := p.ledger.PayableBalances(ctx, p.coin, p.minPayout)
	if err != nil {
		return 0, fmt.Errorf("fetch payable balances: %w", err)
	}
	if len(payable) == 0 {
		return 0, nil
	}

	walletBalance, err := p.wallet.Balance(ctx)
	if err != nil {
		return 0, fmt.Errorf("wallet balance: %w", err)
	}

	totalPayout := decimal.Zero
	for _, b := range payable {
		totalPayout = totalPayout.Add(b.PendingBalance)
	}

	if walletBalance.LessThan(totalPayout) {
		p.logger.Warn("insufficient wallet balance for all payments",
			zap.String("wallet_balance", walletBalance.String()),
			zap.String("total_payout", totalPayout.String()))
		return p.payGreedy(ctx, payable, walletBalance), nil
	}

	payouts := make([]wallet.Payout, 0, len(payable))
	amounts := make(map[string]decimal.Decimal, len(payable))
	for _, b := range payable {
		payouts = append(payouts, wallet.Payout{Address: b.WalletAddress, Amount: b.PendingBalance})
		amounts[b.WalletAddress] = b.PendingBalance
	}

	receipts, err := p.wallet.SendBatchPayment(ctx, payouts)
	if err != nil {
		p.logger.Warn("batch payment failed, falling back to individual payments", zap.Error(err))
		processed := 0
		for _, b := range payable {
			if p.sendPayment(ctx, b.WalletAddress, b.PendingBalance) == nil {
				processed++
			}
		}
		return processed, nil
	}

	processed := 0
	for _, r := range receipts {
		amount := amounts[r.Address]
		paymentID, err := p.ledger.CreatePayment(ctx, p.coin, r.Address, amount)
		if err != nil {
			return processed, fmt.Errorf("create payment: %w", err)
		}
		if err := p.ledger.UpdatePaymentStatus(ctx, paymentID, model.PaymentProcessing, r.TxHash, ""); err != nil {
			return processed, fmt.Errorf("mark payment processing: %w", err)
		}
		p.logger.Info("payment sent",
			zap.String("address", r.Address),
			zap.String("amount", amount.String()),
			zap.String("tx_hash", r.TxHash))
		processed++
	}
	return processed, nil
}

// payGreedy pays balances largest-first while the remaining wallet funds
// cover them. payable arrives sorted by the store, largest balance first.
func (p *Processor) payGreedy(ctx context.Context, payable []model.MinerBalance, available decimal.Decimal) int {
	remaining := available
	processed := 0
	for _, b := range payable {
		if remaining.LessThan(b.PendingBalance) {
			continue
		}
		if p.sendPayment(ctx, b.WalletAddress, b.PendingBalance) == nil {
			remaining = remaining.Sub(b.PendingBalance)
			processed++
		}
	}
	return processed
}

// sendPayment records the attempt, dispatches it and moves the record to
// Processing or Failed. The balance is untouched until confirmation.
func (p *Processor) sendPayment(ctx context.Context, address string, amount decimal.Decimal) error {
	paymentID, err := p.ledger.CreatePayment(ctx, p.coin, address, amount)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	txHash, err := p.wallet.SendPayment(ctx, address, amount)
	if err != nil {
		if uerr := p.ledger.UpdatePaymentStatus(ctx, paymentID, model.PaymentFailed, "", err.Error()); uerr != nil {
			p.logger.Error("failed to record payment failure",
				zap.String("payment_id", paymentID), zap.Error(uerr))
		}
		p.logger.Error("payment failed",
			zap.String("address", address),
			zap.String("amount", amount.String()),
			zap.Error(err))
		return err
	}

	if err := p.ledger.UpdatePaymentStatus(ctx, paymentID, model.PaymentProcessing, txHash, ""); err != nil {
		return fmt.Errorf("mark payment processing: %w", err)
	}

	p.logger.Info("payment sent",
		zap.String("address", address),
		zap.String("amount", amount.String()),
		zap.String("tx_hash", txHash))
	return nil
}

// RunCycle runs one settlement pass. Step failures are logged and counted
// but never abort the remaining steps; a broken pool API must not stall
// payment confirmation.
func (p *Processor) RunCycle(ctx context.Context) error {
	if !p.pool.IsOnline(ctx) {
		p.logger.Warn("pool is offline, skipping cycle")
		return nil
	}

	p.step(ctx, "sync_shares", func(ctx context.Context) error {
		_, err := p.SyncShares(ctx)
		return err
	})
	p.step(ctx, "process_blocks", func(ctx context.Context) error {
		_, err := p.ProcessBlocks(ctx)
		return err
	})
	p.step(ctx, "distribute_rewards", p.DistributeRewards)
	p.step(ctx, "confirm_payments", func(ctx context.Context) error {
		_, err := p.ConfirmPayments(ctx)
		return err
	})
	return nil
}

// RunPaymentCycle runs one payout pass.
func (p *Processor) RunPaymentCycle(ctx context.Context) error {
	p.step(ctx, "process_payments", func(ctx context.Context) error {
		_, err := p.ProcessPayments(ctx)
		return err
	})
	return nil
}

func (p *Processor) step(ctx context.Context, name string, fn func(ctx context.Context) error) {
	started := time.Now()
	err := fn(ctx)
	p.metrics.ObserveStep(p.coin.String(), name, err, started)
	if err != nil {
		p.logger.Error("settlement step failed", zap.String("step", name), zap.Error(err))
	}
}
