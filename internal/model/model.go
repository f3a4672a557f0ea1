// Package model defines the rows and enums shared by the ledger and the
// settlement engine.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Coin identifies a settled currency.
type Coin string

const (
	CoinXMR Coin = "xmr"
	CoinXTM Coin = "xtm"
	CoinBTC Coin = "btc"
)

// ParseCoin maps a short coin code to a Coin.
func ParseCoin(s string) (Coin, error) {
	switch Coin(strings.ToLower(s)) {
	case CoinXMR:
		return CoinXMR, nil
	case CoinXTM:
		return CoinXTM, nil
	case CoinBTC:
		return CoinBTC, nil
	default:
		return "", fmt.Errorf("unknown coin: %s", s)
	}
}

func (c Coin) String() string { return string(c) }

// PaymentStatus is the lifecycle state of a payout attempt.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentConfirmed  PaymentStatus = "confirmed"
	PaymentFailed     PaymentStatus = "failed"
)

// Terminal reports whether no further status transitions are allowed.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentConfirmed || s == PaymentFailed
}

func (s PaymentStatus) String() string { return string(s) }

// Share is one accepted proof-of-work submission. Rows are append-only.
type Share struct {
	ID            int64
	Coin          Coin
	WalletAddress string
	WorkerName    string
	Difficulty    decimal.Decimal
	Timestamp     time.Time
	BlockHeight   *int64
	IsBlock       bool
}

// MinerBalance is the per-(wallet, coin) money state.
type MinerBalance struct {
	WalletAddress  string
	Coin           Coin
	PendingBalance decimal.Decimal
	TotalPaid      decimal.Decimal
	TotalShares    int64
	LastShare      *time.Time
	LastPayment    *time.Time
}

// Payment is one payout attempt. Identity fields never change after
// creation; only status, tx hash, confirmation time and error do.
type Payment struct {
	ID            string
	Coin          Coin
	WalletAddress string
	Amount        decimal.Decimal
	TxHash        *string
	Status        PaymentStatus
	CreatedAt     time.Time
	ConfirmedAt   *time.Time
	ErrorMessage  *string
}

// BlockFound is a block detected at the pool, keyed uniquely by hash.
type BlockFound struct {
	ID           int64
	Coin         Coin
	BlockHeight  int64
	BlockHash    string
	Reward       decimal.Decimal
	FinderWallet string
	FinderWorker string
	Timestamp    time.Time
	Distributed  bool
}
