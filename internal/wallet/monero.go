package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const moneroConfirmations = 10

// Monero pays out through monero-wallet-rpc. Amounts are piconero.
type Monero struct {
	client *rpcClient
	mixin  uint32
	logger *zap.Logger
}

func NewMonero(rpcURL string, mixin uint32, logger *zap.Logger) *Monero {
	return &Monero{
		client: newRPCClient(strings.TrimRight(rpcURL, "/") + "/json_rpc"),
		mixin:  mixin,
		logger: logger,
	}
}

type moneroBalance struct {
	Balance         uint64 `json:"balance"`
	UnlockedBalance uint64 `json:"unlocked_balance"`
}

type moneroValidateAddress struct {
	Valid bool `json:"valid"`
}

type moneroTransfer struct {
	TxHash string  `json:"tx_hash"`
	Fee    *uint64 `json:"fee"`
}

type moneroTransferByTxid struct {
	Transfer struct {
		Confirmations *uint64 `json:"confirmations"`
		Height        *uint64 `json:"height"`
	} `json:"transfer"`
}

type moneroDestination struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

func (w *Monero) Balance(ctx context.Context) (decimal.Decimal, error) {
	var out moneroBalance
	if err := w.client.call(ctx, "get_balance", map[string]any{"account_index": 0}, &out); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromUint64(out.UnlockedBalance), nil
}

func (w *Monero) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	var out moneroBalance
	if err := w.client.call(ctx, "get_balance", map[string]any{"account_index": 0}, &out); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromUint64(out.Balance), nil
}

func (w *Monero) ValidateAddress(ctx context.Context, address string) (bool, error) {
	var out moneroValidateAddress
	if err := w.client.call(ctx, "validate_address", map[string]string{"address": address}, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}

func (w *Monero) SendPayment(ctx context.Context, toAddress string, amount decimal.Decimal) (string, error) {
	receipts, err := w.SendBatchPayment(ctx, []Payout{{Address: toAddress, Amount: amount}})
	if err != nil {
		return "", err
	}
	return receipts[0].TxHash, nil
}

// SendBatchPayment sends all payouts in a single transfer. Every receipt
// carries the same tx hash.
func (w *Monero) SendBatchPayment(ctx context.Context, payouts []Payout) ([]Receipt, error) {
	if len(payouts) == 0 {
		return nil, nil
	}

	destinations := make([]moneroDestination, 0, len(payouts))
	for _, p := range payouts {
		valid, err := w.ValidateAddress(ctx, p.Address)
		if err != nil {
			return nil, err
		}
		if !valid {
			return nil, fmt.Errorf("%w: %s", ErrInvalidAddress, p.Address)
		}
		atomic, err := atomicAmount(p.Amount)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, moneroDestination{Address: p.Address, Amount: atomic})
	}

	params := map[string]any{
		"destinations": destinations,
		"priority":     1,
		"ring_size":    w.mixin + 1,
		"get_tx_key":   true,
	}

	var out moneroTransfer
	if err := w.client.call(ctx, "transfer", params, &out); err != nil {
		if strings.Contains(err.Error(), "not enough") {
			return nil, fmt.Errorf("%w: %v", ErrInsufficientBalance, err)
		}
		return nil, err
	}

	receipts := make([]Receipt, 0, len(payouts))
	for _, p := range payouts {
		receipts = append(receipts, Receipt{Address: p.Address, TxHash: out.TxHash})
	}
	return receipts, nil
}

func (w *Monero) TxStatus(ctx context.Context, txHash string) (TxStatus, error) {
	var out moneroTransferByTxid
	err := w.client.call(ctx, "get_transfer_by_txid", map[string]string{"txid": txHash}, &out)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return TxStatus{State: TxNotFound}, nil
		}
		return TxStatus{}, err
	}

	var confirmations uint64
	if out.Transfer.Confirmations != nil {
		confirmations = *out.Transfer.Confirmations
	}
	switch {
	case confirmations >= moneroConfirmations:
		return TxStatus{State: TxConfirmed, Confirmations: confirmations}, nil
	case confirmations > 0:
		return TxStatus{State: TxConfirming, Confirmations: confirmations}, nil
	default:
		return TxStatus{State: TxPending}, nil
	}
}

func (w *Monero) RequiredConfirmations() uint64 { return moneroConfirmations }
