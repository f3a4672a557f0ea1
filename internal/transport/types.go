package transport

import (
	"context"

	"github.com/solopool-hq/payouts-backend/internal/ledger"
	"github.com/solopool-hq/payouts-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Ledger is the read-only slice of the store the reporting API serves.
type Ledger interface {
	Stats(ctx context.Context, coin model.Coin) (*ledger.CoinStats, error)
	MinerBalance(ctx context.Context, coin model.Coin, walletAddress string) (*model.MinerBalance, error)
	MinerPayments(ctx context.Context, coin model.Coin, walletAddress string, limit int) ([]model.Payment, error)
	RecentPayments(ctx context.Context, coin model.Coin, limit int) ([]model.Payment, error)
}
