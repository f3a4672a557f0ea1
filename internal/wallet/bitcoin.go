package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const bitcoinConfirmations = 6

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// BitcoinRPC is the slice of the bitcoind RPC surface the adapter needs.
// *rpcclient.Client satisfies it.
type BitcoinRPC interface {
	GetBalance(account string) (btcutil.Amount, error)
	SendToAddress(address btcutil.Address, amount btcutil.Amount) (*chainhash.Hash, error)
	SendMany(fromAccount string, amounts map[btcutil.Address]btcutil.Amount) (*chainhash.Hash, error)
	GetTransaction(txHash *chainhash.Hash) (*btcjson.GetTransactionResult, error)
	Shutdown()
}

// Bitcoin pays out through bitcoind. Amounts are satoshi. Batch payouts
// use sendmany, so the whole batch lands in one transaction.
type Bitcoin struct {
	rpc    BitcoinRPC
	params *chaincfg.Params
	logger *zap.Logger
}

func NewBitcoin(cfg Config, logger *zap.Logger) (*Bitcoin, error) {
	params, err := bitcoinNetParams(cfg.Network)
	if err != nil {
		return nil, err
	}

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         strings.TrimPrefix(strings.TrimPrefix(cfg.URL, "http://"), "https://"),
		User:         cfg.RPCUser,
		Pass:         cfg.RPCPass,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create bitcoind client: %w", err)
	}

	return &Bitcoin{rpc: client, params: params, logger: logger}, nil
}

// NewBitcoinWithRPC wires an existing RPC client, used by tests.
func NewBitcoinWithRPC(rpc BitcoinRPC, params *chaincfg.Params, logger *zap.Logger) *Bitcoin {
	return &Bitcoin{rpc: rpc, params: params, logger: logger}
}

func bitcoinNetParams(network string) (*chaincfg.Params, error) {
	switch network {
	case "", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	default:
		return nil, fmt.Errorf("unknown bitcoin network: %s", network)
	}
}

func (w *Bitcoin) Balance(_ context.Context) (decimal.Decimal, error) {
	amount, err := w.rpc.GetBalance("*")
	if err != nil {
		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}
	return decimal.NewFromInt(int64(amount)), nil
}

// TotalBalance equals Balance; bitcoind's getbalance already includes
// everything spendable and immature coinbase outputs never appear.
func (w *Bitcoin) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	return w.Balance(ctx)
}

func (w *Bitcoin) ValidateAddress(_ context.Context, address string) (bool, error) {
	addr, err := btcutil.DecodeAddress(address, w.params)
	if err != nil {
		return false, nil
	}
	return addr.IsForNet(w.params), nil
}

func (w *Bitcoin) SendPayment(ctx context.Context, toAddress string, amount decimal.Decimal) (string, error) {
	addr, satoshi, err := w.destination(ctx, toAddress, amount)
	if err != nil {
		return "", err
	}

	hash, err := w.rpc.SendToAddress(addr, satoshi)
	if err != nil {
		return "", mapBitcoinSendErr(err)
	}
	return hash.String(), nil
}

func (w *Bitcoin) SendBatchPayment(ctx context.Context, payouts []Payout) ([]Receipt, error) {
	if len(payouts) == 0 {
		return nil, nil
	}

	amounts := make(map[btcutil.Address]btcutil.Amount, len(payouts))
	for _, p := range payouts {
		addr, satoshi, err := w.destination(ctx, p.Address, p.Amount)
		if err != nil {
			return nil, err
		}
		amounts[addr] = satoshi
	}

	hash, err := w.rpc.SendMany("", amounts)
	if err != nil {
		return nil, mapBitcoinSendErr(err)
	}

	receipts := make([]Receipt, 0, len(payouts))
	for _, p := range payouts {
		receipts = append(receipts, Receipt{Address: p.Address, TxHash: hash.String()})
	}
	return receipts, nil
}

func (w *Bitcoin) destination(ctx context.Context, address string, amount decimal.Decimal) (btcutil.Address, btcutil.Amount, error) {
	valid, err := w.ValidateAddress(ctx, address)
	if err != nil {
		return nil, 0, err
	}
	if !valid {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidAddress, address)
	}
	addr, err := btcutil.DecodeAddress(address, w.params)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidAddress, address)
	}
	satoshi, err := atomicAmount(amount)
	if err != nil {
		return nil, 0, err
	}
	return addr, btcutil.Amount(satoshi), nil
}

func (w *Bitcoin) TxStatus(_ context.Context, txHash string) (TxStatus, error) {
	hash, err := chainhash.NewHashFromStr(txHash)
	if err != nil {
		return TxStatus{State: TxNotFound}, nil
	}

	result, err := w.rpc.GetTransaction(hash)
	if err != nil {
		if strings.Contains(err.Error(), "Invalid or non-wallet transaction") {
			return TxStatus{State: TxNotFound}, nil
		}
		return TxStatus{}, fmt.Errorf("get transaction: %w", err)
	}

	switch {
	case result.Confirmations < 0:
		// Conflicted: a double spend replaced it.
		return TxStatus{State: TxFailed, Reason: "transaction conflicted"}, nil
	case result.Confirmations >= bitcoinConfirmations:
		return TxStatus{State: TxConfirmed, Confirmations: uint64(result.Confirmations)}, nil
	case result.Confirmations > 0:
		return TxStatus{State: TxConfirming, Confirmations: uint64(result.Confirmations)}, nil
	default:
		return TxStatus{State: TxPending}, nil
	}
}

func (w *Bitcoin) RequiredConfirmations() uint64 { return bitcoinConfirmations }

func (w *Bitcoin) Close() {
	w.rpc.Shutdown()
}

func mapBitcoinSendErr(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Insufficient funds"):
		return fmt.Errorf("%w: %v", ErrInsufficientBalance, err)
	case strings.Contains(msg, "rejected"):
		return fmt.Errorf("%w: %v", ErrTxRejected, err)
	default:
		return fmt.Errorf("send: %w", err)
	}
}
