package wallet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const tariConfirmations = 3

// Tari pays out through the minotari console wallet JSON-RPC endpoint.
// Amounts are microTari. Transaction ids are numeric and travel as their
// decimal string form.
type Tari struct {
	client *rpcClient
	logger *zap.Logger
}

func NewTari(rpcURL string, logger *zap.Logger) *Tari {
	return &Tari{client: newRPCClient(rpcURL), logger: logger}
}

type tariBalance struct {
	AvailableBalance       uint64 `json:"available_balance"`
	PendingIncomingBalance uint64 `json:"pending_incoming_balance"`
	PendingOutgoingBalance uint64 `json:"pending_outgoing_balance"`
}

type tariTransfer struct {
	TransactionID uint64 `json:"transaction_id"`
	IsSuccess     bool   `json:"is_success"`
}

type tariTransactionInfo struct {
	Status        string  `json:"status"`
	Confirmations *uint64 `json:"confirmations"`
	Message       *string `json:"message"`
}

type tariDestination struct {
	Address    string `json:"address"`
	Amount     uint64 `json:"amount"`
	FeePerGram uint64 `json:"fee_per_gram"`
}

func (w *Tari) Balance(ctx context.Context) (decimal.Decimal, error) {
	var out tariBalance
	if err := w.client.call(ctx, "get_balance", struct{}{}, &out); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromUint64(out.AvailableBalance), nil
}

func (w *Tari) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	var out tariBalance
	if err := w.client.call(ctx, "get_balance", struct{}{}, &out); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromUint64(out.AvailableBalance + out.PendingIncomingBalance), nil
}

// ValidateAddress checks structure only. Tari addresses are emoji strings
// of at least 33 runes or 64 hex characters; full validation needs a node.
func (w *Tari) ValidateAddress(_ context.Context, address string) (bool, error) {
	if len(address) == 64 {
		for _, c := range address {
			if !isHexDigit(c) {
				return false, nil
			}
		}
		return true, nil
	}
	return len(address) >= 33, nil
}

func (w *Tari) SendPayment(ctx context.Context, toAddress string, amount decimal.Decimal) (string, error) {
	receipts, err := w.sendTransfer(ctx, []Payout{{Address: toAddress, Amount: amount}}, "Solo Pool Payment")
	if err != nil {
		return "", err
	}
	return receipts[0].TxHash, nil
}

func (w *Tari) SendBatchPayment(ctx context.Context, payouts []Payout) ([]Receipt, error) {
	if len(payouts) == 0 {
		return nil, nil
	}
	return w.sendTransfer(ctx, payouts, "Solo Pool Batch Payment")
}

func (w *Tari) sendTransfer(ctx context.Context, payouts []Payout, message string) ([]Receipt, error) {
	destinations := make([]tariDestination, 0, len(payouts))
	for _, p := range payouts {
		atomic, err := atomicAmount(p.Amount)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, tariDestination{
			Address:    p.Address,
			Amount:     atomic,
			FeePerGram: 5,
		})
	}

	params := map[string]any{"destinations": destinations, "message": message}

	var out tariTransfer
	if err := w.client.call(ctx, "transfer", params, &out); err != nil {
		if strings.Contains(err.Error(), "not enough") {
			return nil, fmt.Errorf("%w: %v", ErrInsufficientBalance, err)
		}
		return nil, err
	}

	txID := strconv.FormatUint(out.TransactionID, 10)
	receipts := make([]Receipt, 0, len(payouts))
	for _, p := range payouts {
		receipts = append(receipts, Receipt{Address: p.Address, TxHash: txID})
	}
	return receipts, nil
}

func (w *Tari) TxStatus(ctx context.Context, txHash string) (TxStatus, error) {
	txID, err := strconv.ParseUint(txHash, 10, 64)
	if err != nil {
		return TxStatus{State: TxNotFound}, nil
	}

	var out tariTransactionInfo
	err = w.client.call(ctx, "get_transaction_info", map[string]uint64{"transaction_id": txID}, &out)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return TxStatus{State: TxNotFound}, nil
		}
		return TxStatus{}, err
	}

	var confirmations uint64
	if out.Confirmations != nil {
		confirmations = *out.Confirmations
	}

	switch out.Status {
	case "MinedConfirmed":
		return TxStatus{State: TxConfirmed, Confirmations: confirmations}, nil
	case "Rejected", "Cancelled":
		reason := out.Status
		if out.Message != nil && *out.Message != "" {
			reason = *out.Message
		}
		return TxStatus{State: TxFailed, Confirmations: confirmations, Reason: reason}, nil
	case "Completed", "Broadcast", "MinedUnconfirmed":
		switch {
		case confirmations >= tariConfirmations:
			return TxStatus{State: TxConfirmed, Confirmations: confirmations}, nil
		case confirmations > 0:
			return TxStatus{State: TxConfirming, Confirmations: confirmations}, nil
		default:
			return TxStatus{State: TxPending}, nil
		}
	default:
		return TxStatus{State: TxPending, Confirmations: confirmations}, nil
	}
}

func (w *Tari) RequiredConfirmations() uint64 { return tariConfirmations }

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
