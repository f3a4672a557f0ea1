package settlement

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solopool-hq/payouts-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=pool_mocks_test.go -package=settlement github.com/solopool-hq/payouts-backend/internal/pool Source
//go:generate mockgen -destination=wallet_mocks_test.go -package=settlement github.com/solopool-hq/payouts-backend/internal/wallet Wallet

// Ledger is the slice of the store the settlement engine mutates and reads.
type Ledger interface {
	RecordShare(ctx context.Context, coin model.Coin, walletAddress, workerName string,
		difficulty decimal.Decimal, blockHeight *int64, isBlock bool) (int64, error)
	RecordBlock(ctx context.Context, coin model.Coin, blockHeight int64, blockHash string,
		reward decimal.Decimal, finderWallet, finderWorker string, foundAt time.Time) (int64, error)
	UndistributedBlocks(ctx context.Context, coin model.Coin) ([]model.BlockFound, error)
	MarkBlockDistributed(ctx context.Context, id int64) error
	AddPendingBalance(ctx context.Context, coin model.Coin, walletAddress string, amount decimal.Decimal) error
	PayableBalances(ctx context.Context, coin model.Coin, minPayout decimal.Decimal) ([]model.MinerBalance, error)
	CreatePayment(ctx context.Context, coin model.Coin, walletAddress string, amount decimal.Decimal) (string, error)
	UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, txHash, errorMessage string) error
	PendingPayments(ctx context.Context, coin model.Coin) ([]model.Payment, error)
	ShareCountInRange(ctx context.Context, coin model.Coin, walletAddress string, from, to time.Time) (int64, error)
	TotalSharesInRange(ctx context.Context, coin model.Coin, from, to time.Time) (int64, error)
	MinersInRange(ctx context.Context, coin model.Coin, from, to time.Time) ([]string, error)
}

// Metrics records the outcome of one cycle step.
type Metrics interface {
	ObserveStep(coin, step string, err error, started time.Time)
}
