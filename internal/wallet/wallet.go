// Package wallet dispatches payouts through coin wallet daemons. Amounts
// are always atomic units (piconero, microTari, satoshi) carried as exact
// decimals.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// ErrInsufficientBalance means the wallet cannot cover the requested
	// amount right now.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	// ErrInvalidAddress means the destination failed validation.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrTxRejected means the network refused the transaction.
	ErrTxRejected = errors.New("transaction rejected")
	// ErrUnreachable means the wallet daemon cannot be reached.
	ErrUnreachable = errors.New("wallet unreachable")
)

// TxState is the coarse transaction lifecycle state.
type TxState string

const (
	TxPending    TxState = "pending"
	TxConfirming TxState = "confirming"
	TxConfirmed  TxState = "confirmed"
	TxFailed     TxState = "failed"
	TxNotFound   TxState = "notfound"
)

// TxStatus reports where a dispatched transaction stands.
type TxStatus struct {
	State         TxState
	Confirmations uint64
	Reason        string
}

// Payout is one destination in a batch.
type Payout struct {
	Address string
	Amount  decimal.Decimal
}

// Receipt pairs a destination with the transaction that pays it. A batch
// produces one receipt per payout, all sharing the same tx hash.
type Receipt struct {
	Address string
	TxHash  string
}

// Wallet is the payout capability the settlement engine depends on.
type Wallet interface {
	Balance(ctx context.Context) (decimal.Decimal, error)
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
	ValidateAddress(ctx context.Context, address string) (bool, error)
	SendPayment(ctx context.Context, toAddress string, amount decimal.Decimal) (string, error)
	SendBatchPayment(ctx context.Context, payouts []Payout) ([]Receipt, error)
	TxStatus(ctx context.Context, txHash string) (TxStatus, error)
	RequiredConfirmations() uint64
}

// Kind selects a wallet adapter.
type Kind string

const (
	KindMonero  Kind = "monero"
	KindTari    Kind = "tari"
	KindBitcoin Kind = "bitcoin"
)

// Config carries adapter construction parameters. URL is the wallet RPC
// endpoint; RPCUser/RPCPass and Network only apply to bitcoin; Mixin only
// to monero.
type Config struct {
	Kind    Kind
	URL     string
	Mixin   uint32
	RPCUser string
	RPCPass string
	Network string
}

// New builds the adapter for cfg.Kind.
func New(cfg Config, logger *zap.Logger) (Wallet, error) {
	switch cfg.Kind {
	case KindMonero:
		return NewMonero(cfg.URL, cfg.Mixin, logger), nil
	case KindTari:
		return NewTari(cfg.URL, logger), nil
	case KindBitcoin:
		return NewBitcoin(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown wallet kind: %s", cfg.Kind)
	}
}
